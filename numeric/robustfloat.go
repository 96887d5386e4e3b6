package numeric

import "math"

// ulpErrorUnit is the base per-operation error contribution, in units of
// the result's own ULP, for a single rounded floating-point operation under
// IEEE 754 round-to-nearest. Boost.Polygon's robust_fpt uses the same
// constant (it calls it "ROUNDING_ERROR") to bound the worst case error
// introduced by one add/sub/mul/div.
const ulpErrorUnit = 0.5

// RobustFloat is a float64 value carrying a conservative running bound on
// its own relative error, expressed in units of the value's ULP. Each
// arithmetic method combines the operands' error bounds and adds the
// rounding error of the operation itself; only Sqrt can shrink the bound,
// since it halves the operand's error before adding its own rounding.
//
// A RobustFloat is "reliable" for a given decision (is it zero? is it less
// than another RobustFloat?) only when its error bound is tight enough that
// the true value cannot have crossed the decision boundary. When it isn't,
// callers escalate to exact arithmetic ([BigInt] or [Rational]) rather than
// trust the float.
type RobustFloat struct {
	value float64
	ulps  float64 // running error bound, in ULPs of value
}

// NewRobustFloat returns a RobustFloat for an exact input value (e.g. a
// direct conversion from an integer site coordinate), with zero error.
func NewRobustFloat(value float64) RobustFloat {
	return RobustFloat{value: value}
}

// NewRobustFloatWithError returns a RobustFloat for a value that already
// carries ulps of accumulated error (e.g. the result of a BigInt-to-float64
// conversion that rounded).
func NewRobustFloatWithError(value, ulps float64) RobustFloat {
	return RobustFloat{value: value, ulps: ulps}
}

// Value returns the underlying float64 approximation.
func (r RobustFloat) Value() float64 {
	return r.value
}

// ErrorBound returns the running error bound, in ULPs.
func (r RobustFloat) ErrorBound() float64 {
	return r.ulps
}

// AbsoluteBound returns the running error bound converted to the same
// units as Value: the interval [Value()-AbsoluteBound(), Value()+AbsoluteBound()]
// is guaranteed to contain the true value.
func (r RobustFloat) AbsoluteBound() float64 {
	return r.ulps * ulp(r.value)
}

func ulp(v float64) float64 {
	if v == 0 {
		return math.SmallestNonzeroFloat64
	}
	return math.Nextafter(math.Abs(v), math.Inf(1)) - math.Abs(v)
}

// Add returns r+other, with the error bound conservatively propagated.
func (r RobustFloat) Add(other RobustFloat) RobustFloat {
	sum := r.value + other.value
	return RobustFloat{
		value: sum,
		ulps:  propagateSum(r, other, sum) + ulpErrorUnit,
	}
}

// Sub returns r-other, with the error bound conservatively propagated.
func (r RobustFloat) Sub(other RobustFloat) RobustFloat {
	return r.Add(other.Neg())
}

// Neg returns -r; negation is exact and does not add error.
func (r RobustFloat) Neg() RobustFloat {
	return RobustFloat{value: -r.value, ulps: r.ulps}
}

// Mul returns r*other, with the error bound conservatively propagated.
func (r RobustFloat) Mul(other RobustFloat) RobustFloat {
	return RobustFloat{
		value: r.value * other.value,
		ulps:  r.ulps + other.ulps + ulpErrorUnit,
	}
}

// Div returns r/other. other must be non-zero.
func (r RobustFloat) Div(other RobustFloat) RobustFloat {
	return RobustFloat{
		value: r.value / other.value,
		ulps:  r.ulps + other.ulps + ulpErrorUnit,
	}
}

// Sqrt returns sqrt(r). r must be non-negative.
func (r RobustFloat) Sqrt() RobustFloat {
	return RobustFloat{
		value: math.Sqrt(r.value),
		// sqrt halves the operand's relative error; the result then
		// gains one more rounding unit, like the other operations above.
		ulps: r.ulps/2 + ulpErrorUnit,
	}
}

// propagateSum bounds the error contribution of the two ULP-denominated
// operand errors, rebased onto the magnitude of the sum, which is what
// makes cancellation (a sum much smaller than either operand) blow the
// bound up the way it should: the result's ULP is much smaller than the
// operands', so the same absolute error is a much larger number of the
// result's ULPs.
func propagateSum(a, b RobustFloat, sum float64) float64 {
	if sum == 0 {
		return a.ulps + b.ulps
	}
	resultUlp := ulp(sum)
	absErr := a.ulps*ulp(a.value) + b.ulps*ulp(b.value)
	return absErr / resultUlp
}

// IsReliablyNonzero reports whether r's error interval excludes zero, i.e.
// whether |r.value| / ulp(r.value) > r.ulps. When false, the sign of r
// cannot be trusted and the caller must escalate to exact arithmetic.
func (r RobustFloat) IsReliablyNonzero() bool {
	if r.value == 0 {
		return false
	}
	return math.Abs(r.value)/ulp(r.value) > r.ulps
}

// Sign returns the sign of r's value (-1, 0, +1). Callers must check
// [RobustFloat.IsReliablyNonzero] first; Sign makes no reliability claim on
// its own.
func (r RobustFloat) Sign() int {
	switch {
	case r.value < 0:
		return -1
	case r.value > 0:
		return 1
	default:
		return 0
	}
}

// Compare attempts to order r against other. The second return value
// reports whether the comparison's error bound was tight enough to trust;
// when false, the caller must escalate to exact arithmetic and the first
// return value should be discarded.
func (r RobustFloat) Compare(other RobustFloat) (ordering int, reliable bool) {
	diff := r.Sub(other)
	if !diff.IsReliablyNonzero() {
		if diff.value == 0 {
			return 0, true
		}
		return 0, false
	}
	return diff.Sign(), true
}
