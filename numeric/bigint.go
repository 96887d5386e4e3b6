package numeric

import "math/big"

// MaxBits is the default capacity ceiling for a [BigInt], in bits of
// magnitude (sign excluded). Boost.Polygon's extended-integer tier uses a
// small fixed number of 32-bit limbs; this package uses the same idea but
// sets the ceiling per value (see [NewBigIntCap]) instead of hard-coding a
// limb count, since math/big already grows its internal limb slice on
// demand. The predicate layer uses this default ceiling.
const MaxBits = 384

// BigInt is a signed, fixed-capacity extended-precision integer. It wraps
// [math/big.Int] and adds an explicit bit-capacity ceiling: operations that
// would overflow that ceiling report it via the second return value instead
// of silently growing without bound, so callers (the predicate layer) can
// escalate to [Rational] rather than pay for unbounded precision on every
// comparison.
type BigInt struct {
	v         big.Int
	maxBits   int
	overflows bool
}

// NewBigInt returns a BigInt initialized to n, with the default capacity
// ceiling [MaxBits].
func NewBigInt(n int64) BigInt {
	return NewBigIntCap(n, MaxBits)
}

// NewBigIntCap returns a BigInt initialized to n, with capacity ceiling
// maxBits.
func NewBigIntCap(n int64, maxBits int) BigInt {
	b := BigInt{maxBits: maxBits}
	b.v.SetInt64(n)
	return b
}

// capOf returns the larger of the two operands' capacity ceilings, so mixed-
// capacity arithmetic doesn't silently narrow.
func capOf(a, b BigInt) int {
	if a.maxBits > b.maxBits {
		return a.maxBits
	}
	return b.maxBits
}

// checkOverflow reports whether v's magnitude exceeds maxBits of capacity.
func checkOverflow(v *big.Int, maxBits int) bool {
	return v.BitLen() > maxBits
}

// Add returns a+b. Overflows reports whether the result exceeds the
// operands' capacity ceiling; the returned value is still the exact sum
// (math/big never truncates), but callers MUST treat an overflowing result
// as untrustworthy for further fixed-capacity arithmetic and escalate to
// [Rational] instead.
func (a BigInt) Add(b BigInt) (sum BigInt, overflows bool) {
	sum.maxBits = capOf(a, b)
	sum.v.Add(&a.v, &b.v)
	sum.overflows = checkOverflow(&sum.v, sum.maxBits)
	return sum, sum.overflows
}

// Sub returns a-b. See [BigInt.Add] for the overflow contract.
func (a BigInt) Sub(b BigInt) (diff BigInt, overflows bool) {
	diff.maxBits = capOf(a, b)
	diff.v.Sub(&a.v, &b.v)
	diff.overflows = checkOverflow(&diff.v, diff.maxBits)
	return diff, diff.overflows
}

// Mul returns a*b. See [BigInt.Add] for the overflow contract.
func (a BigInt) Mul(b BigInt) (product BigInt, overflows bool) {
	product.maxBits = capOf(a, b)
	product.v.Mul(&a.v, &b.v)
	product.overflows = checkOverflow(&product.v, product.maxBits)
	return product, product.overflows
}

// Neg returns -a.
func (a BigInt) Neg() BigInt {
	var r BigInt
	r.maxBits = a.maxBits
	r.v.Neg(&a.v)
	return r
}

// Cmp compares a and b, returning -1, 0, or +1 as a<b, a==b, a>b.
func (a BigInt) Cmp(b BigInt) int {
	return a.v.Cmp(&b.v)
}

// Sign returns -1, 0, or +1 depending on the sign of a.
func (a BigInt) Sign() int {
	return a.v.Sign()
}

// Overflowed reports whether this value was produced by an operation that
// exceeded its capacity ceiling.
func (a BigInt) Overflowed() bool {
	return a.overflows
}

// Int64 returns a as an int64, and whether the conversion was exact.
func (a BigInt) Int64() (int64, bool) {
	if !a.v.IsInt64() {
		return 0, false
	}
	return a.v.Int64(), true
}

// Float64 converts a to the nearest float64, along with the rounding
// direction that [math/big.Int.Float64] reports (big.Exact, big.Below, or
// big.Above), so callers can fold the conversion's own error into a
// [RobustFloat]'s error bound rather than treat the float as exact.
func (a BigInt) Float64() (float64, big.Accuracy) {
	f := new(big.Float).SetInt(&a.v)
	return f.Float64()
}

// Rat returns a as an exact [Rational].
func (a BigInt) Rat() Rational {
	var r Rational
	r.v.SetInt(&a.v)
	return r
}

// String returns a's decimal representation.
func (a BigInt) String() string {
	return a.v.String()
}
