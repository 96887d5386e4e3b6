// Package options provides configurable settings for Voronoi construction.
//
// This package defines a functional options pattern, allowing users to modify the behavior
// of various geometric functions without changing their signatures. The options
// are applied using functional parameters that modify a GeometryOptions struct.
//
// # Key Features
//
//   - Floating-Point Precision Control: The Epsilon parameter records a tolerance
//     for numerical comparisons; Builder.Build does not read it.
//   - Exact-Arithmetic Ceiling: The MaxRationalBits parameter bounds the
//     exact-rational fallback tier used during construction.
//   - Functional Options Pattern: The GeometryOptionsFunc type provides a way to apply
//     optional configurations without requiring additional parameters in function signatures.
//
// # Functional Options
//
// The package provides the following functional options:
//
// - WithEpsilon(epsilon float64) GeometryOptionsFunc: Sets a small tolerance value for floating-point operations.
// - WithMaxRationalBits(maxBits int) GeometryOptionsFunc: Sets the precision ceiling of the exact-rational tier.
//
// These options are applied using ApplyGeometryOptions, which takes a default GeometryOptions struct
// and modifies it based on the provided options.
//
// This approach ensures a clean API while allowing flexible configuration for numerical stability
// in geometric computations.
package options
