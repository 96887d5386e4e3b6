package predicate

import (
	"math"

	"github.com/sweepgeom/voronoi/numeric"
	"github.com/sweepgeom/voronoi/site"
)

// breakpointX returns the x coordinate of the breakpoint between the two
// arcs bounding left and right sites, at sweep position sweepY (spec
// §4.F). It dispatches on the four (point, segment) combinations P2
// names, each with its own closed form: point/point intersects two
// parabolas; point/segment intersects a parabola with the segment's
// linear arc; segment/segment intersects two linear arcs directly.
func breakpointX(sweepY float64, left, right site.Site) numeric.RobustFloat {
	switch {
	case left.IsPoint() && right.IsPoint():
		return pointPointBreakpointX(sweepY, left, right)
	case left.IsPoint() && right.IsSegment():
		return pointSegmentBreakpointX(sweepY, left, right, true)
	case left.IsSegment() && right.IsPoint():
		return pointSegmentBreakpointX(sweepY, right, left, false)
	default:
		return segmentSegmentBreakpointX(sweepY, left, right)
	}
}

// pointPointBreakpointX solves for the x where the two parabolas with
// foci left/right and common directrix y=sweepY meet. Each parabola with
// focus (fx,fy) and directrix y=l is y = ((x-fx)^2 + fy^2 - l^2) /
// (2*(fy-l)); equating the two and solving the resulting quadratic for x
// gives the formula below. When the two foci share the same y (both
// arcs became active on the same sweep position), the breakpoint is
// simply their perpendicular bisector's x, the midpoint.
func pointPointBreakpointX(sweepY float64, left, right site.Site) numeric.RobustFloat {
	x1, y1 := float64(left.UpperPoint().X), float64(left.UpperPoint().Y)
	x2, y2 := float64(right.UpperPoint().X), float64(right.UpperPoint().Y)

	if y1 == y2 {
		x := (x1 + x2) / 2
		return numeric.NewRobustFloatWithError(x, 4)
	}

	d1 := y1 - sweepY
	d2 := y2 - sweepY

	// Degenerate directrix coincident with a focus: that arc has zero
	// width there: the breakpoint is that focus's x.
	if d1 == 0 {
		return numeric.NewRobustFloatWithError(x1, 4)
	}
	if d2 == 0 {
		return numeric.NewRobustFloatWithError(x2, 4)
	}

	a := 1/d1 - 1/d2
	b := -2 * (x1/d1 - x2/d2)
	c := (x1*x1+y1*y1-sweepY*sweepY)/d1 - (x2*x2+y2*y2-sweepY*sweepY)/d2

	if a == 0 {
		x := -c / b
		return numeric.NewRobustFloatWithError(x, 8)
	}

	disc := b*b - 4*a*c
	if disc < 0 {
		disc = 0
	}
	sq := math.Sqrt(disc)

	// The two parabolas cross at two x values in general; the one
	// between the foci's x range (or matching the wider parabola) is
	// the beach-line breakpoint. Picking the root by comparing d1 with
	// d2 (which focus sits closer to the directrix) is the
	// disambiguation used here for a sweep moving in increasing-y
	// direction.
	var x float64
	if d1 < d2 {
		x = (-b - sq) / (2 * a)
	} else {
		x = (-b + sq) / (2 * a)
	}
	return numeric.NewRobustFloatWithError(x, 16)
}

// pointSegmentBreakpointX solves for the x where the point site's
// parabolic arc (focus=point, directrix=sweepY) meets the segment site's
// linear arc (lineEq.arcLine). pointIsLeft records which side of the
// pair the point site occupies, so the quadratic's two roots can be
// disambiguated the same way pointPointBreakpointX picks between its
// two roots. Equating
//
//	((x-fx)^2 + fy^2 - sweepY^2) / (2*(fy-sweepY)) = m*x + k
//
// and clearing the denominator gives a quadratic in x.
func pointSegmentBreakpointX(sweepY float64, point, segment site.Site, pointIsLeft bool) numeric.RobustFloat {
	fx, fy := float64(point.UpperPoint().X), float64(point.UpperPoint().Y)
	ln := siteLine(segment)

	d := fy - sweepY
	if d == 0 {
		// Point sits exactly on the directrix: its arc has zero width,
		// the breakpoint is the point's own x.
		return numeric.NewRobustFloatWithError(fx, 4)
	}

	m, k, ok := ln.arcLine(sweepY)
	if !ok {
		return pointSegmentBreakpointDegenerate(fx, fy, sweepY, ln, pointIsLeft)
	}

	a := 1.0
	b := -2*fx - 2*d*m
	c := fx*fx + fy*fy - sweepY*sweepY - 2*d*k

	disc := b*b - 4*a*c
	if disc < 0 {
		disc = 0
	}
	sq := math.Sqrt(disc)

	var x float64
	if pointIsLeft {
		x = (-b - sq) / (2 * a)
	} else {
		x = (-b + sq) / (2 * a)
	}
	return numeric.NewRobustFloatWithError(x, 32)
}

// pointSegmentBreakpointDegenerate handles the one orientation
// lineEq.arcLine can't express directly — the segment's supporting line
// is horizontal and oriented so its signed-distance equation collapses
// to a constant. It falls back to projecting the point onto the
// segment's line and reusing the point/point formula against that
// projection, with a correspondingly wide error band.
func pointSegmentBreakpointDegenerate(px, py, sweepY float64, ln lineEq, pointIsLeft bool) numeric.RobustFloat {
	fx, fy := ln.project(px, py)
	point := site.NewPoint(site.IPoint{X: int64(px), Y: int64(py)}, 0)
	proj := site.NewPoint(site.IPoint{X: int64(fx), Y: int64(fy)}, 0)

	var x float64
	if pointIsLeft {
		x = pointPointBreakpointX(sweepY, point, proj).Value()
	} else {
		x = pointPointBreakpointX(sweepY, proj, point).Value()
	}
	return numeric.NewRobustFloatWithError(x, 128)
}

// segmentSegmentBreakpointX intersects the two segments' linear arcs
// directly (site.IsLinearEdge: segment/segment edges are always
// straight). Falls back to a coarser approximation when either side's
// arc degenerates (arcLine) or the two arcs are parallel at this sweep
// height, in which case no single finite breakpoint exists in this
// linear model.
func segmentSegmentBreakpointX(sweepY float64, left, right site.Site) numeric.RobustFloat {
	lm, lk, lok := siteLine(left).arcLine(sweepY)
	rm, rk, rok := siteLine(right).arcLine(sweepY)
	if !lok || !rok || lm == rm {
		return segmentSegmentBreakpointApprox(sweepY, left, right)
	}
	x := (rk - lk) / (lm - rm)
	return numeric.NewRobustFloatWithError(x, 16)
}

// segmentSegmentBreakpointApprox is the fallback for the degenerate
// cases segmentSegmentBreakpointX can't solve directly: it projects each
// segment's closest point to the sweep onto itself and reuses the
// point/point breakpoint formula against those projections, carrying a
// correspondingly wide error band.
func segmentSegmentBreakpointApprox(sweepY float64, left, right site.Site) numeric.RobustFloat {
	lx0, ly0 := float64(left.Point0().X), float64(left.Point0().Y)
	lx1, ly1 := float64(left.Point1().X), float64(left.Point1().Y)
	rx0, ry0 := float64(right.Point0().X), float64(right.Point0().Y)
	rx1, ry1 := float64(right.Point1().X), float64(right.Point1().Y)

	lfx, lfy := closestPointOnSegment(lx0, sweepY, lx0, ly0, lx1, ly1)
	rfx, rfy := closestPointOnSegment(rx0, sweepY, rx0, ry0, rx1, ry1)

	lp := site.NewPoint(site.IPoint{X: int64(lfx), Y: int64(lfy)}, 0)
	rp := site.NewPoint(site.IPoint{X: int64(rfx), Y: int64(rfy)}, 0)
	x := pointPointBreakpointX(sweepY, lp, rp).Value()
	return numeric.NewRobustFloatWithError(x, 256)
}
