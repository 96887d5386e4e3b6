package predicate

import "github.com/sweepgeom/voronoi/numeric"

// Limits bounds the exact-rational escalation tier (spec §4.A, §7): when
// a Rational computed while resolving a near-tie would need more than
// MaxRationalBits bits for either its numerator or denominator, the
// predicate reports an overflow instead of trusting that value, so the
// caller (the sweep driver) can fail the build with a NumericOverflow
// error rather than silently pay unbounded precision cost.
type Limits struct {
	MaxRationalBits int
}

// withinCeiling reports whether r fits within l's configured ceiling. A
// zero MaxRationalBits means no ceiling is configured (the caller didn't
// thread one through); treat that as unbounded rather than always
// overflowing.
func (l Limits) withinCeiling(r numeric.Rational) bool {
	if l.MaxRationalBits <= 0 {
		return true
	}
	return r.BitLen() <= l.MaxRationalBits
}
