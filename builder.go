package voronoi

import (
	"math"

	"github.com/sweepgeom/voronoi/dcel"
	"github.com/sweepgeom/voronoi/options"
	"github.com/sweepgeom/voronoi/predicate"
	"github.com/sweepgeom/voronoi/site"
)

// maxCoordinate is the largest magnitude a coordinate may have: signed
// 32-bit, matching the text input format's declared range (spec §6).
const maxCoordinate = math.MaxInt32

// Builder accumulates point and segment sites and produces a [Diagram].
// It follows the teacher's demo CLI's build-then-run shape
// (cmd/genlinesegments/main.go accumulates flags before constructing
// its LineSegment set) generalized into a stateful accumulator, since
// spec §6 requires add_point/add_segment/build rather than a one-shot
// constructor.
//
// A Builder must not be reused after [Builder.Build] returns an error
// or after it succeeds once (spec §7: "Errors from build() consume the
// builder"); the zero value is ready to use.
type Builder struct {
	points   []site.IPoint
	segments []site.Segment
	consumed bool
}

// AddPoint adds a point site at (x, y). It returns an
// [InvalidInputError] if either coordinate exceeds the signed-32-bit
// range the text input format declares (spec §6); it does not
// deduplicate coincident points (spec §6: "idempotent on duplicate
// coordinates only up to producing a duplicate cell").
func (b *Builder) AddPoint(x, y int64) error {
	if b.consumed {
		return &InvalidInputError{Reason: "builder already consumed by Build"}
	}
	if !inRange(x) || !inRange(y) {
		return &InvalidInputError{Reason: "coordinate out of signed 32-bit range"}
	}
	b.points = append(b.points, site.IPoint{X: x, Y: y})
	return nil
}

// AddSegment adds a segment site with endpoints (x1,y1)-(x2,y2). The
// endpoints must differ (spec §6: "endpoints must differ"); segments
// may share endpoints with other segments or points.
func (b *Builder) AddSegment(x1, y1, x2, y2 int64) error {
	if b.consumed {
		return &InvalidInputError{Reason: "builder already consumed by Build"}
	}
	if !inRange(x1) || !inRange(y1) || !inRange(x2) || !inRange(y2) {
		return &InvalidInputError{Reason: "coordinate out of signed 32-bit range"}
	}
	a := site.IPoint{X: x1, Y: y1}
	c := site.IPoint{X: x2, Y: y2}
	if a.Eq(c) {
		return &InvalidInputError{Reason: "zero-length segment"}
	}
	b.segments = append(b.segments, site.Segment{A: a, B: c})
	return nil
}

// Build consumes the builder and returns the constructed [Diagram], or
// an error if construction failed (spec §6 build() → Diagram | Error).
// On error, no diagram is produced and the builder's internal state is
// dropped (spec §7): the Builder must not be used again either way.
func (b *Builder) Build(opts ...options.GeometryOptionsFunc) (*Diagram, error) {
	if b.consumed {
		return nil, &InvalidInputError{Reason: "builder already consumed by Build"}
	}
	b.consumed = true

	resolved := options.ApplyGeometryOptions(options.GeometryOptions{
		MaxRationalBits: options.DefaultMaxRationalBits,
	}, opts...)
	limits := predicate.Limits{MaxRationalBits: resolved.MaxRationalBits}

	sites := site.BuildEvents(b.points, b.segments)
	logDebugf("built %d site events from %d points, %d segments", len(sites), len(b.points), len(b.segments))

	g := dcel.NewGraph()
	if err := runDriver(g, sites, limits); err != nil {
		return nil, err
	}
	if err := finalize(g); err != nil {
		return nil, err
	}

	return &Diagram{graph: g}, nil
}

func inRange(v int64) bool {
	return v >= -maxCoordinate-1 && v <= maxCoordinate
}
