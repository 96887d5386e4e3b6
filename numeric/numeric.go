// Package numeric provides the layered numeric stack that backs the exact
// geometric predicates used to build a Voronoi diagram from integer input,
// plus the epsilon-tolerant floating-point helpers used for the diagram's
// approximate output coordinates.
//
// # Overview
//
// Voronoi construction from integer sites reduces, at its hardest, to
// deciding the sign of a polynomial expression in the input coordinates
// that can involve a square root (the circle-event apex computation).
// Done naively in float64 this is numerically unstable near degenerate
// configurations (nearly-cocircular points, nearly-collinear segments).
// This package lets callers (see the predicate package) try the cheap
// float64 path first and only pay for exact arithmetic when the float
// path's own error bound can't rule out a wrong answer.
//
// # Layers
//
//   - [RobustFloat]: a float64 value paired with a running bound on its
//     relative error, expressed in units of the value's own ULP. Comparisons
//     and sign tests are reliable only when the bound is tight enough to
//     exclude the zero crossing; otherwise the caller escalates.
//   - [BigInt]: a fixed-capacity signed big integer (backed by math/big,
//     with an explicit bit-capacity ceiling so capacity exhaustion is
//     reported to the caller instead of silently succeeding at unbounded
//     cost).
//   - [Rational]: a multi-precision exact rational (backed by math/big.Rat)
//     used as the final fallback tier.
//
// No third-party arbitrary-precision or rational-arithmetic package appears
// in the reference corpus this library was built alongside, so this layer
// is built directly on the standard library's math/big rather than an
// ecosystem dependency (see the repository's DESIGN.md for the full
// rationale).
//
// # Floating-point helpers
//
// [FloatEquals], [FloatGreaterThan], [FloatLessThan] and friends provide
// epsilon-tolerant comparisons for the approximate output coordinates
// (Voronoi vertex positions are inherently irrational in general, and are
// always reported as float64 approximations — see spec §1). [Abs] computes
// the absolute value of any signed number.
package numeric
