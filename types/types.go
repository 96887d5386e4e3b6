// Package types defines the small shared value types used across the
// Voronoi construction packages: SignedNumber (a generic constraint kept
// from the teacher library), Ordering (the universal exact-predicate
// comparison result), and SourceCategory (what kind of input site a
// site value descends from).
//
// # Usage
//
// This package is imported by numeric, site, predicate, and the
// top-level voronoi package to keep these small cross-cutting types
// defined in exactly one place.
package types
