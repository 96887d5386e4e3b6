package predicate

import (
	"github.com/sweepgeom/voronoi/numeric"
	"github.com/sweepgeom/voronoi/site"
	"github.com/sweepgeom/voronoi/types"
)

// CompareArc implements P2: given a new site's query x coordinate at the
// current sweep position sweepY, and an existing arc bounded by
// (left, right), decide whether the query lies left of, on, or right of
// the breakpoint between them. overflowed reports whether resolving a
// near-tie needed a Rational that exceeded limits.MaxRationalBits (spec
// §7 NumericOverflow); the caller must not trust the returned ordering
// when it does.
//
// A query exactly on the breakpoint returns [types.Equal] per spec
// §4.F's tie-break. Neither this predicate nor beachline.Split flags
// anything on Equal: the sweep driver marks each emitted half-edge pair
// primary or secondary from the two sites alone, via site.IsPrimaryEdge.
func CompareArc(queryX, sweepY float64, left, right site.Site, limits Limits) (ord types.Ordering, overflowed bool) {
	bp := breakpointX(sweepY, left, right)
	if ord, ok := compareFloatReliable(queryX, bp); ok {
		return types.FromInt(ord), false
	}
	// Undecided within the robust-float error band: for the point/point
	// case we can escalate to exact integer/rational polynomial
	// comparison; segment-involving cases fall back to the raw
	// (un-escalated) float comparison per the package's documented
	// scoping decision.
	if left.IsPoint() && right.IsPoint() {
		return compareArcPointPointExact(queryX, sweepY, left, right, limits)
	}
	return types.FromInt(cmpFloat(queryX, bp.Value())), false
}

// compareArcPointPointExact resolves a near-tie point/point arc
// comparison using exact rational arithmetic: it compares queryX against
// the true breakpoint by clearing denominators and comparing squared
// distances as integers/rationals instead of relying on sqrt-free but
// still floating-point parabola algebra.
//
// The breakpoint x between foci (x1,y1) and (x2,y2) with directrix
// sweepY satisfies: the query point (queryX, sweepY) is equidistant from
// whichever side is closer exactly when queryX sits at the boundary.
// Rather than solve the quadratic exactly (expensive to keep fully
// generalized), this evaluates both parabolas' y value at x=queryX using
// exact rationals and compares them: the arc whose parabola is lower at
// queryX is the one the query point currently sits above.
func compareArcPointPointExact(queryX, sweepY float64, left, right site.Site, limits Limits) (types.Ordering, bool) {
	lx, ly := left.UpperPoint().X, left.UpperPoint().Y
	rx, ry := right.UpperPoint().X, right.UpperPoint().Y
	qx := numeric.NewRationalInt(int64(queryX))
	sy := numeric.NewRationalInt(int64(sweepY))

	leftY, leftOK := parabolaYRational(qx, sy, lx, ly)
	rightY, rightOK := parabolaYRational(qx, sy, rx, ry)
	if !leftOK || !rightOK {
		// One of the foci sits exactly on the directrix: degenerate,
		// treat as not reliably separable, report Equal.
		return types.Equal, false
	}
	if !limits.withinCeiling(leftY) || !limits.withinCeiling(rightY) {
		return types.Equal, true
	}

	// The lower-envelope arc at x=queryX is the one the query point
	// currently sits above; if that's the left arc, queryX hasn't
	// reached the breakpoint yet.
	switch leftY.Cmp(rightY) {
	case -1:
		return types.Less, false
	case 1:
		return types.Greater, false
	default:
		return types.Equal, false
	}
}

// parabolaYRational evaluates the parabola with focus (fx,fy) and
// directrix y=directrixY at x=qx, exactly, returning ok=false if the
// directrix passes through the focus (zero-width arc, degenerate here).
func parabolaYRational(qx, directrixY numeric.Rational, fx, fy int64) (numeric.Rational, bool) {
	fyR := numeric.NewRationalInt(fy)
	denom := fyR.Sub(directrixY)
	if denom.Sign() == 0 {
		return numeric.Rational{}, false
	}
	dx := qx.Sub(numeric.NewRationalInt(fx))
	numerator := dx.Mul(dx).Add(fyR.Mul(fyR)).Sub(directrixY.Mul(directrixY))
	return numerator.Div(denom.Mul(numeric.NewRationalInt(2))), true
}
