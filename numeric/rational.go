package numeric

import "math/big"

// Rational is an exact multi-precision rational number, the final fallback
// tier used when even extended [BigInt] arithmetic would overflow its
// capacity ceiling. It wraps [math/big.Rat], which reduces numerator and
// denominator to lowest terms after every arithmetic operation; reduction
// is not deferred, so each step of a chain of additions/multiplications
// pays its cost.
type Rational struct {
	v big.Rat
}

// NewRational returns the exact rational num/den. den must be non-zero.
func NewRational(num, den int64) Rational {
	var r Rational
	r.v.SetFrac64(num, den)
	return r
}

// NewRationalInt returns the exact rational n/1.
func NewRationalInt(n int64) Rational {
	var r Rational
	r.v.SetInt64(n)
	return r
}

// Add returns a+b.
func (a Rational) Add(b Rational) Rational {
	var r Rational
	r.v.Add(&a.v, &b.v)
	return r
}

// Sub returns a-b.
func (a Rational) Sub(b Rational) Rational {
	var r Rational
	r.v.Sub(&a.v, &b.v)
	return r
}

// Mul returns a*b.
func (a Rational) Mul(b Rational) Rational {
	var r Rational
	r.v.Mul(&a.v, &b.v)
	return r
}

// Div returns a/b. b must be non-zero.
func (a Rational) Div(b Rational) Rational {
	var r Rational
	r.v.Quo(&a.v, &b.v)
	return r
}

// Neg returns -a.
func (a Rational) Neg() Rational {
	var r Rational
	r.v.Neg(&a.v)
	return r
}

// Cmp compares a and b, returning -1, 0, or +1 as a<b, a==b, a>b, via
// cross-multiplication inside math/big.Rat.Cmp.
func (a Rational) Cmp(b Rational) int {
	return a.v.Cmp(&b.v)
}

// Sign returns -1, 0, or +1 depending on the sign of a.
func (a Rational) Sign() int {
	return a.v.Sign()
}

// Float64 returns the nearest float64 to a, and whether the conversion was
// exact.
func (a Rational) Float64() (float64, bool) {
	return a.v.Float64()
}

// String returns a's representation as "num/den".
func (a Rational) String() string {
	return a.v.String()
}

// BitLen returns the larger of a's numerator and denominator magnitudes,
// in bits. Callers escalating to Rational as a fallback tier use this to
// enforce a configured precision ceiling (options.MaxRationalBits)
// instead of letting math/big.Rat grow without bound.
func (a Rational) BitLen() int {
	numBits := a.v.Num().BitLen()
	denBits := a.v.Denom().BitLen()
	if numBits > denBits {
		return numBits
	}
	return denBits
}
