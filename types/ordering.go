package types

import "fmt"

// Ordering is the result of an exact predicate comparison: two sweep-line
// keys, two beach-line breakpoints, or a site against a circle event. It is
// the value every tier of the numeric stack (robust float, extended
// integer, exact rational) eventually agrees on; predicate escalation
// (see the numeric package) is an internal implementation detail that never
// leaks this type into an "undecided" state — callers always get a decisive
// Ordering.
type Ordering int8

// Valid values for Ordering.
const (
	Less Ordering = iota - 1
	Equal
	Greater
)

// String returns a human-readable name for o.
func (o Ordering) String() string {
	switch o {
	case Less:
		return "Less"
	case Equal:
		return "Equal"
	case Greater:
		return "Greater"
	default:
		panic(fmt.Errorf("unsupported Ordering: %d", o))
	}
}

// FromInt converts the sign of a comparator-style int (negative/zero/
// positive, as returned by big.Int.Cmp and friends) into an Ordering.
func FromInt(n int) Ordering {
	switch {
	case n < 0:
		return Less
	case n > 0:
		return Greater
	default:
		return Equal
	}
}

// Reverse flips Less and Greater, leaving Equal unchanged.
func (o Ordering) Reverse() Ordering {
	return -o
}
