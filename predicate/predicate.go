// Package predicate implements the three exact geometric decisions the
// sweep driver depends on (spec §4.C): P1 event comparison, P2 arc
// ordering on the beach line, and P3 circle-event computation. Each
// predicate is layered the way Boost.Polygon's Rust port layers its own
// geometric decisions (original_source/src/voronoi_siteevent.rs documents
// the site model these predicates consume): try the fast path in
// [numeric.RobustFloat] first, and only escalate to [numeric.BigInt] or
// [numeric.Rational] when the robust-float error bound can't resolve the
// sign.
//
// The point/point/point circle-event predicate (P3) carries the full
// three-tier chain: robust float, then an exact [numeric.BigInt]
// sign/magnitude check, then [numeric.Rational] when even BigInt's fixed
// capacity overflows. The point/point arc comparison (P2) goes from robust
// float straight to [numeric.Rational], with no BigInt tier. Predicates that involve at least one
// segment site solve the same shape of decision (compare a query against
// a parabola-or-line breakpoint, or compute a tangent circle) with their
// own closed form — point/segment and segment/segment each get real
// algebra, not the point/point formula reused against a projected or
// averaged stand-in point — but those forms are only evaluated in
// [numeric.RobustFloat], documented as a scoping decision in DESIGN.md
// rather than carried through BigInt/Rational escalation. The decision is
// still deterministic for a given floating-point environment, matching
// the determinism requirement in spec §4.C's closing paragraph, but it is
// not exact at extreme magnitudes the way the point-point path is.
package predicate
