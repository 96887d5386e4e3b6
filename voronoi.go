// Package voronoi constructs a Voronoi diagram over a mixed set of point
// and line-segment sites with integer coordinates, using Fortune's
// sweepline algorithm with exact geometric predicates (an integer-input
// generalization of the algorithm Boost.Polygon's voronoi_builder
// implements; see the original_source reference material retained in
// this repository's pack for the Rust port this package's site model
// descends from).
//
// # Usage
//
// Construct a [Builder], add point and segment sites, then call
// [Builder.Build] to obtain a read-only [Diagram]:
//
//	var b voronoi.Builder
//	b.AddPoint(10, 11)
//	b.AddPoint(1, 3)
//	diagram, err := b.Build()
//
// # Coordinate system
//
// Input coordinates are signed integers; this library assumes a
// standard Cartesian coordinate system where the x-axis increases to
// the right and the y-axis increases upward, matching the convention
// the wider example corpus's geometry libraries use.
//
// # Precision
//
// Geometric decisions among point sites are made exactly: fast
// floating-point arithmetic is attempted first (tracked with an explicit
// error bound, [numeric.RobustFloat]), escalating to exact arithmetic only
// when the fast path can't certify its answer. Decisions involving a
// segment site are evaluated in robust float only (see the predicate
// package). Construction either succeeds with a
// fully consistent diagram or fails with an error; it never produces a
// partially-built result.
package voronoi

func init() {
	logDebugf("debug logging enabled")
}
