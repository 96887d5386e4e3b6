package site

import "github.com/sweepgeom/voronoi/types"

// Compare orders two sites under the total event order from spec §3: first
// by the lower endpoint's (y ascending, x ascending); ties are broken so a
// point site precedes a segment site sharing that coordinate, and among
// segment sites a non-inverse (forward) site precedes an inverse site. This
// is pure integer comparison — exact, no escalation ever required, since
// input coordinates are already integers (this is P1's "site vs site" half;
// predicate.CompareSiteToCircle handles the harder "site vs circle event"
// half, which does need the layered numeric stack).
func Compare(a, b Site) types.Ordering {
	pa, pb := a.UpperPoint(), b.UpperPoint()
	if pa.Y != pb.Y {
		return types.FromInt(cmpInt64(pa.Y, pb.Y))
	}
	if pa.X != pb.X {
		return types.FromInt(cmpInt64(pa.X, pb.X))
	}

	// Same event point: points precede segments.
	if a.IsPoint() != b.IsPoint() {
		if a.IsPoint() {
			return types.Less
		}
		return types.Greater
	}

	// Both points, or both segments sharing an upper endpoint: forward
	// (non-inverse) sites precede inverse sites.
	if a.IsInverse() != b.IsInverse() {
		if !a.IsInverse() {
			return types.Less
		}
		return types.Greater
	}

	return types.Equal
}

func cmpInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
