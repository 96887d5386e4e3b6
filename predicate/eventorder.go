package predicate

import (
	"github.com/sweepgeom/voronoi/numeric"
	"github.com/sweepgeom/voronoi/site"
	"github.com/sweepgeom/voronoi/types"
)

// CompareSites orders two site events by P1's site-vs-site rule. This is
// exact integer comparison (site.Compare already implements it); it is
// re-exported here so callers that only import predicate, not site, get
// the full P1 surface from one place.
func CompareSites(a, b site.Site) types.Ordering {
	return site.Compare(a, b)
}

// CompareSiteToCircle decides, per P1, whether the sweep reaches circle
// event trigger (triggerY, triggerX) before it reaches site s's event
// point. Equal-key ties favor the site event (spec §4.H: "site events
// win"), so this returns [types.Less] (site precedes circle) on an exact
// tie.
//
// triggerY/triggerX are given as [numeric.RobustFloat] so the caller
// (the circle-event queue) can carry forward whatever error bound P3
// already computed instead of re-deriving it; when that bound is too
// loose to resolve the comparison against s's integer coordinates, this
// escalates to an exact rational comparison using triggerRat (supplied
// by the caller whenever it had to compute one — spec §4.E: "comparison
// between queue entries uses P1's site-vs-circle logic when needed").
func CompareSiteToCircle(s site.Site, triggerY, triggerX numeric.RobustFloat, triggerRat *triggerRational) types.Ordering {
	sy := float64(s.UpperPoint().Y)
	sx := float64(s.UpperPoint().X)

	if ord, ok := compareFloatReliable(sy, triggerY); ok {
		if ord != 0 {
			return types.FromInt(ord)
		}
		if ord2, ok2 := compareFloatReliable(sx, triggerX); ok2 {
			if ord2 == 0 {
				return types.Less // tie: site wins
			}
			return types.FromInt(ord2)
		}
	}

	if triggerRat != nil {
		return compareSiteToCircleRational(s, triggerRat)
	}

	// No exact fallback available: fall back to the raw float comparison,
	// which is the best information we have.
	if sy != triggerY.Value() {
		return types.FromInt(cmpFloat(sy, triggerY.Value()))
	}
	if sx != triggerX.Value() {
		return types.FromInt(cmpFloat(sx, triggerX.Value()))
	}
	return types.Less
}

// triggerRational carries an exact rational circle-event trigger point,
// computed by P3 when the robust-float apex wasn't reliable.
type triggerRational struct {
	Y, X numeric.Rational
}

// NewTriggerRational builds a [triggerRational] from P3's exact apex.
func NewTriggerRational(y, x numeric.Rational) *triggerRational {
	return &triggerRational{Y: y, X: x}
}

func compareSiteToCircleRational(s site.Site, t *triggerRational) types.Ordering {
	sy := numeric.NewRationalInt(s.UpperPoint().Y)
	if c := sy.Cmp(t.Y); c != 0 {
		return types.FromInt(c)
	}
	sx := numeric.NewRationalInt(s.UpperPoint().X)
	if c := sx.Cmp(t.X); c != 0 {
		return types.FromInt(c)
	}
	return types.Less
}

// compareFloatReliable compares a an exact float (derived from an integer
// site coordinate) against a robust-float value b, returning ok=false
// when b's error bound straddles a.
func compareFloatReliable(a float64, b numeric.RobustFloat) (int, bool) {
	bound := b.AbsoluteBound()
	lo := b.Value() - bound
	hi := b.Value() + bound
	switch {
	case a < lo:
		return -1, true
	case a > hi:
		return 1, true
	default:
		return 0, false
	}
}

func cmpFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
