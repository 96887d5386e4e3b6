package predicate

import (
	"math"

	"github.com/sweepgeom/voronoi/site"
)

// lineEq is a segment site's supporting line in unit-normal form: for any
// point (x,y), a*x+b*y+c is the signed perpendicular distance from (x,y)
// to the line, positive on the left of the directed segment
// Point0->Point1. A segment's forward and inverse sites swap Point0/Point1
// and therefore report opposite orientations for the same line — the two
// sides a segment contributes to the beach line (site.Site.Inverse).
type lineEq struct {
	a, b, c float64
}

// siteLine returns s's supporting line. s must be a segment site.
func siteLine(s site.Site) lineEq {
	p0, p1 := s.Point0(), s.Point1()
	dx, dy := float64(p1.X-p0.X), float64(p1.Y-p0.Y)
	length := math.Hypot(dx, dy)
	a, b := -dy/length, dx/length
	c := -(a*float64(p0.X) + b*float64(p0.Y))
	return lineEq{a: a, b: b, c: c}
}

// dist returns the signed distance from (x,y) to ln.
func (ln lineEq) dist(x, y float64) float64 {
	return ln.a*x + ln.b*y + ln.c
}

// project returns the closest point on ln to (x,y).
func (ln lineEq) project(x, y float64) (float64, float64) {
	d := ln.dist(x, y)
	return x - d*ln.a, y - d*ln.b
}

// arcLine returns the segment arc's representation as y = m*x + k at
// sweep height sweepY: the locus equidistant from ln and the horizontal
// sweep line, found by equating signed distance to ln with distance to
// the directrix (y - sweepY). Unlike a point's parabolic arc, a segment's
// arc is linear in x (segment/segment edges are always straight,
// [site.IsLinearEdge]). ok is false when ln is horizontal (b == 1): that
// orientation's equation degenerates to a constant independent of x, so
// it isn't representable as y = m*x + k.
func (ln lineEq) arcLine(sweepY float64) (m, k float64, ok bool) {
	denom := ln.b - 1
	if denom == 0 {
		return 0, 0, false
	}
	m = -ln.a / denom
	k = -(ln.c + sweepY) / denom
	return m, k, true
}

func closestPointOnSegment(px, py, ax, ay, bx, by float64) (float64, float64) {
	dx, dy := bx-ax, by-ay
	len2 := dx*dx + dy*dy
	if len2 == 0 {
		return ax, ay
	}
	t := ((px-ax)*dx + (py-ay)*dy) / len2
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return ax + t*dx, ay + t*dy
}
