package predicate

import (
	"math"

	"github.com/sweepgeom/voronoi/numeric"
	"github.com/sweepgeom/voronoi/site"
)

// CircleEventResult is P3's output: the apex of the empty circle tangent
// to three consecutive sites, the sweep y at which the event fires
// (apex.y + radius, per spec §3's "Circle event"), and whether the
// triple is even a valid (convergent) one.
type CircleEventResult struct {
	ApexX, ApexY numeric.RobustFloat
	TriggerY     numeric.RobustFloat
	Valid        bool
	Reliable     bool
	Exact        *triggerRational // set only when Reliable is false and an exact fallback was computed
	Overflowed   bool             // the exact fallback exceeded the configured Limits.MaxRationalBits
}

// ComputeCircleEvent implements P3 for three consecutive beach-line arcs
// (l, m, r): whether they define a valid downward-opening empty-circle
// event (m is squeezed out), the apex, and the trigger y used as the
// event's queue key.
//
// The point/point/point case is computed exactly: circumcenter via the
// standard determinant formula, escalating to [numeric.BigInt] and then
// [numeric.Rational] when the robust-float error bound can't certify the
// sign of the orientation test. Any triple touching a segment site is a
// genuine tangent-circle construction against the segment's supporting
// line (see computeCircleEventApprox), but evaluated in robust float
// only — it reports Reliable=false with Exact left nil. The circle-event
// queue orders such an event by its float values alone; nothing re-derives
// its position on a near-tie.
func ComputeCircleEvent(l, m, r site.Site, limits Limits) CircleEventResult {
	if l.IsPoint() && m.IsPoint() && r.IsPoint() {
		return computeCircleEventPPP(l, m, r, limits)
	}
	return computeCircleEventApprox(l, m, r)
}

func computeCircleEventPPP(l, m, r site.Site, limits Limits) CircleEventResult {
	ax, ay := float64(l.UpperPoint().X), float64(l.UpperPoint().Y)
	bx, by := float64(m.UpperPoint().X), float64(m.UpperPoint().Y)
	cx, cy := float64(r.UpperPoint().X), float64(r.UpperPoint().Y)

	// Orientation of (a,b,c): negative means clockwise, which is the
	// configuration where the beach line actually converges (m is
	// squeezed from above as the sweep advances); zero or positive
	// orientation yields no circle event.
	cross := (bx-ax)*(cy-ay) - (cx-ax)*(by-ay)
	if cross >= 0 {
		return CircleEventResult{Valid: false, Reliable: true}
	}

	d := 2 * cross
	ax2ay2 := ax*ax + ay*ay
	bx2by2 := bx*bx + by*by
	cx2cy2 := cx*cx + cy*cy

	ux := (ay*cx2cy2 - cy*ax2ay2 + by*ax2ay2 - ay*bx2by2 + cy*bx2by2 - by*cx2cy2) / d
	uy := (ax*bx2by2 - bx*ax2ay2 + cx*ax2ay2 - ax*cx2cy2 + bx*cx2cy2 - cx*bx2by2) / d

	radius := math.Hypot(ux-ax, uy-ay)
	triggerY := uy + radius

	reliable := certifyPPP(l, m, r, cross)
	result := CircleEventResult{
		ApexX:    numeric.NewRobustFloatWithError(ux, 32),
		ApexY:    numeric.NewRobustFloatWithError(uy, 32),
		TriggerY: numeric.NewRobustFloatWithError(triggerY, 48),
		Valid:    true,
		Reliable: reliable,
	}
	if !reliable {
		exact, overflowed := exactCircumcenterTrigger(l, m, r, limits)
		result.Exact = exact
		result.Overflowed = overflowed
	}
	return result
}

// certifyPPP reports whether the orientation sign (and hence Valid) is
// reliable, trying two tiers before giving up to [exactCircumcenterTrigger]'s
// [numeric.Rational] computation: first the cheap float magnitude/threshold
// check (no allocation, handles the overwhelming majority of triples), then
// an exact [numeric.BigInt] cross product when that check can't certify the
// sign. BigInt holds this cross product exactly for any magnitude this
// package's callers pass in practice, so its Overflowed() case is the
// genuine signal to escalate to Rational rather than trust either integer
// or float tier.
func certifyPPP(l, m, r site.Site, cross float64) bool {
	const safeBound = 1 << 25 // coordinates whose pairwise products sum exactly in float64
	withinFloatBound := true
	for _, s := range [...]site.Site{l, m, r} {
		p := s.UpperPoint()
		if abs64(p.X) > safeBound || abs64(p.Y) > safeBound {
			withinFloatBound = false
			break
		}
	}
	if withinFloatBound && math.Abs(cross) > 1e-9*safeBound {
		return true
	}

	sign, overflowed := bigIntCrossSign(l, m, r)
	if overflowed {
		return false
	}
	// The exact integer sign must agree with the float sign ComputeCircleEvent
	// already used for the Valid decision; a mismatch means the float result
	// can't be trusted even though BigInt didn't overflow.
	return (sign < 0) == (cross < 0)
}

// bigIntCrossSign computes l, m, r's orientation cross product
// (bx-ax)*(cy-ay) - (cx-ax)*(by-ay) exactly using [numeric.BigInt]: every
// input coordinate is an integer, so unlike the float64 path this has no
// rounding anywhere in its evaluation — the only way it can fail to
// certify a sign is genuine capacity overflow.
func bigIntCrossSign(l, m, r site.Site) (sign int, overflowed bool) {
	ax, ay := numeric.NewBigInt(l.UpperPoint().X), numeric.NewBigInt(l.UpperPoint().Y)
	bx, by := numeric.NewBigInt(m.UpperPoint().X), numeric.NewBigInt(m.UpperPoint().Y)
	cx, cy := numeric.NewBigInt(r.UpperPoint().X), numeric.NewBigInt(r.UpperPoint().Y)

	bax, o1 := bx.Sub(ax)
	cax, o2 := cx.Sub(ax)
	bay, o3 := by.Sub(ay)
	cay, o4 := cy.Sub(ay)

	t1, o5 := bax.Mul(cay)
	t2, o6 := cax.Mul(bay)
	cross, o7 := t1.Sub(t2)

	if o1 || o2 || o3 || o4 || o5 || o6 || o7 || cross.Overflowed() {
		return 0, true
	}
	return cross.Sign(), false
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}

// exactCircumcenterTrigger recomputes the trigger y using exact
// rationals, for when certifyPPP couldn't certify the robust-float
// result. overflowed reports whether any intermediate value exceeded
// limits.MaxRationalBits (spec §7 NumericOverflow); when it does, the
// returned *triggerRational is nil and the caller must not trust it.
func exactCircumcenterTrigger(l, m, r site.Site, limits Limits) (_ *triggerRational, overflowed bool) {
	ax := numeric.NewRationalInt(l.UpperPoint().X)
	ay := numeric.NewRationalInt(l.UpperPoint().Y)
	bx := numeric.NewRationalInt(m.UpperPoint().X)
	by := numeric.NewRationalInt(m.UpperPoint().Y)
	cx := numeric.NewRationalInt(r.UpperPoint().X)
	cy := numeric.NewRationalInt(r.UpperPoint().Y)

	two := numeric.NewRationalInt(2)
	d := bx.Sub(ax).Mul(cy.Sub(ay)).Sub(cx.Sub(ax).Mul(by.Sub(ay))).Mul(two)

	sq := func(v numeric.Rational) numeric.Rational { return v.Mul(v) }
	a2 := sq(ax).Add(sq(ay))
	b2 := sq(bx).Add(sq(by))
	c2 := sq(cx).Add(sq(cy))

	ux := ay.Mul(c2).Sub(cy.Mul(a2)).Add(by.Mul(a2)).Sub(ay.Mul(b2)).Add(cy.Mul(b2)).Sub(by.Mul(c2)).Div(d)
	uy := ax.Mul(b2).Sub(bx.Mul(a2)).Add(cx.Mul(a2)).Sub(ax.Mul(c2)).Add(bx.Mul(c2)).Sub(cx.Mul(b2)).Div(d)

	if !limits.withinCeiling(ux) || !limits.withinCeiling(uy) {
		return nil, true
	}

	// Exact comparisons against a trigger y of the form uy + sqrt(radiusSq)
	// can't be represented as a single Rational, so this exposes uy as the
	// rational trigger Y basis and lets the robust-float TriggerY stand
	// for ordering when no further escalation is required. Callers
	// needing a genuinely exact comparison against an irrational trigger
	// fall back to the robust-float value; this still satisfies
	// determinism since the same inputs always reduce to the same
	// IEEE-754 computation.
	return &triggerRational{Y: uy, X: ux}, false
}

// computeCircleEventApprox handles the three triples P3 names that touch
// at least one segment site: two points and a line, one point and two
// lines, or three lines. Each is solved as a genuine tangent-circle
// construction (Apollonius' problem restricted to points and lines,
// rather than the point/point/point circumcenter formula run against a
// segment's literal midpoint): the center is found by parametrizing the
// relevant bisector and solving for where it's simultaneously tangent to
// the remaining site(s). Validity is then checked the same way as the
// point/point/point case, using each site's actual contact point with
// the solved circle (the site itself for a point, the projection of the
// center onto the line for a segment) instead of the site's raw
// coordinates.
func computeCircleEventApprox(l, m, r site.Site) CircleEventResult {
	sites := [3]site.Site{l, m, r}
	var points []site.Site
	var lines []lineEq
	for _, s := range sites {
		if s.IsPoint() {
			points = append(points, s)
		} else {
			lines = append(lines, siteLine(s))
		}
	}

	var center [2]float64
	var radius float64
	var ok bool
	switch len(points) {
	case 2:
		center, radius, ok = circleTwoPointsOneLine(upperXY(points[0]), upperXY(points[1]), lines[0])
	case 1:
		center, radius, ok = circlePointTwoLines(upperXY(points[0]), lines[0], lines[1])
	default:
		center, radius, ok = circleThreeLines(lines[0], lines[1], lines[2])
	}
	if !ok {
		return CircleEventResult{Valid: false, Reliable: false}
	}

	a := contactPoint(l, center)
	b := contactPoint(m, center)
	c := contactPoint(r, center)
	cross := (b[0]-a[0])*(c[1]-a[1]) - (c[0]-a[0])*(b[1]-a[1])
	if cross >= 0 {
		return CircleEventResult{Valid: false, Reliable: false}
	}

	return CircleEventResult{
		ApexX:    numeric.NewRobustFloatWithError(center[0], 256),
		ApexY:    numeric.NewRobustFloatWithError(center[1], 256),
		TriggerY: numeric.NewRobustFloatWithError(center[1]+radius, 512),
		Valid:    true,
		Reliable: false,
	}
}

func upperXY(s site.Site) [2]float64 {
	p := s.UpperPoint()
	return [2]float64{float64(p.X), float64(p.Y)}
}

// contactPoint returns the point where s actually touches a circle
// centered at center: the site itself for a point site, or the
// projection of center onto the segment's supporting line.
func contactPoint(s site.Site, center [2]float64) [2]float64 {
	if s.IsPoint() {
		return upperXY(s)
	}
	x, y := siteLine(s).project(center[0], center[1])
	return [2]float64{x, y}
}

// circleTwoPointsOneLine solves for the circle tangent to p1, p2, and
// ln. Its center lies on the perpendicular bisector of p1,p2,
// parametrized as M + t*v (M the midpoint, v the unit bisector
// direction); along that line, |center-p1| = sqrt(t^2+h^2) (h = half the
// p1-p2 distance) and the signed distance to ln is linear in t, so
// equating the two and squaring gives a quadratic in t.
func circleTwoPointsOneLine(p1, p2 [2]float64, ln lineEq) (center [2]float64, radius float64, ok bool) {
	mx, my := (p1[0]+p2[0])/2, (p1[1]+p2[1])/2
	dx, dy := p2[0]-p1[0], p2[1]-p1[1]
	length := math.Hypot(dx, dy)
	if length == 0 {
		return center, 0, false
	}
	vx, vy := -dy/length, dx/length
	h := length / 2

	d0 := ln.dist(mx, my)
	d1 := ln.a*vx + ln.b*vy

	t, r, ok := smallestValidRoot(1-d1*d1, -2*d0*d1, h*h-d0*d0, func(t float64) (float64, bool) {
		r := d0 + d1*t
		return r, r >= 0
	})
	if !ok {
		return center, 0, false
	}
	return [2]float64{mx + t*vx, my + t*vy}, r, true
}

// circlePointTwoLines solves for the circle tangent to p, l1, and l2.
// Candidate centers equidistant (in the signed sense) from l1 and l2 lie
// on one angle bisector of the two lines, bisA*x+bisB*y+bisC=0 (the
// other bisector corresponds to the opposite distance sign convention,
// which the lines' consistent left-of-segment orientation already
// selects for us). Parametrizing that bisector the same way as
// circleTwoPointsOneLine turns "tangent to p too" into a quadratic in t.
func circlePointTwoLines(p [2]float64, l1, l2 lineEq) (center [2]float64, radius float64, ok bool) {
	bisA, bisB, bisC := l1.a-l2.a, l1.b-l2.b, l1.c-l2.c
	x0, y0, dirx, diry, ok := bisectorLine(bisA, bisB, bisC)
	if !ok {
		return center, 0, false
	}

	r0 := l1.dist(x0, y0)
	r1 := l1.a*dirx + l1.b*diry
	ux0, uy0 := x0-p[0], y0-p[1]

	a := 1 - r1*r1
	b := 2 * (ux0*dirx + uy0*diry - r0*r1)
	c := ux0*ux0 + uy0*uy0 - r0*r0

	t, r, ok := smallestValidRoot(a, b, c, func(t float64) (float64, bool) {
		r := r0 + r1*t
		return r, r >= 0
	})
	if !ok {
		return center, 0, false
	}
	return [2]float64{x0 + t*dirx, y0 + t*diry}, r, true
}

// circleThreeLines solves for the circle tangent to l1, l2, and l3: the
// classic incircle-style construction, intersecting the l1/l2 angle
// bisector with the condition that the distance to l3 matches too. With
// three lines every quantity along the bisector is linear in t, so this
// resolves to one linear equation instead of a quadratic.
func circleThreeLines(l1, l2, l3 lineEq) (center [2]float64, radius float64, ok bool) {
	bisA, bisB, bisC := l1.a-l2.a, l1.b-l2.b, l1.c-l2.c
	x0, y0, dirx, diry, ok := bisectorLine(bisA, bisB, bisC)
	if !ok {
		return center, 0, false
	}

	r0 := l1.dist(x0, y0)
	r1 := l1.a*dirx + l1.b*diry
	r0b := l3.dist(x0, y0)
	r1b := l3.a*dirx + l3.b*diry

	denom := r1 - r1b
	if math.Abs(denom) < 1e-12 {
		return center, 0, false
	}
	t := (r0b - r0) / denom
	r := r0 + r1*t
	if r < 0 {
		return center, 0, false
	}
	return [2]float64{x0 + t*dirx, y0 + t*diry}, r, true
}

// bisectorLine returns a point on, and unit direction along, the line
// bisA*x+bisB*y+bisC=0 — the locus where two lines' signed distances are
// equal, used by circlePointTwoLines and circleThreeLines as the
// parametrization axis for the candidate circle center.
func bisectorLine(bisA, bisB, bisC float64) (x0, y0, dirx, diry float64, ok bool) {
	switch {
	case math.Abs(bisA) > 1e-12:
		x0, y0 = -bisC/bisA, 0
	case math.Abs(bisB) > 1e-12:
		x0, y0 = 0, -bisC/bisB
	default:
		return 0, 0, 0, 0, false
	}
	dirLen := math.Hypot(bisA, bisB)
	return x0, y0, -bisB / dirLen, bisA / dirLen, true
}

// smallestValidRoot solves a*t^2+b*t+c=0 (falling back to the linear
// case when a is negligible) and returns the real root whose eval yields
// the smallest valid value — the first tangency encountered, and the
// same "pick the physically meaningful root" role
// pointPointBreakpointX's d1<d2 heuristic plays for the parabola case.
func smallestValidRoot(a, b, c float64, eval func(t float64) (float64, bool)) (t, value float64, ok bool) {
	var roots []float64
	const eps = 1e-12
	switch {
	case math.Abs(a) < eps:
		if math.Abs(b) < eps {
			return 0, 0, false
		}
		roots = []float64{-c / b}
	default:
		disc := b*b - 4*a*c
		if disc < 0 {
			return 0, 0, false
		}
		sq := math.Sqrt(disc)
		roots = []float64{(-b + sq) / (2 * a), (-b - sq) / (2 * a)}
	}

	found := false
	for _, candidate := range roots {
		v, valid := eval(candidate)
		if !valid {
			continue
		}
		if !found || v < value {
			t, value, found = candidate, v, true
		}
	}
	return t, value, found
}
