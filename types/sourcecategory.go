package types

import "fmt"

// SourceCategory records what kind of input site a [Site]-like value was
// built from. It is a small enum whose values mirror the categories in the
// Boost.Polygon voronoi builder's flag word (point vs. segment-start vs.
// segment-end vs. segment), so a segment's two endpoint sites can be told
// apart from a plain point site sharing the same coordinate.
type SourceCategory uint8

// Valid values for SourceCategory.
const (
	// SourceSinglePoint marks a site built from a standalone input point.
	SourceSinglePoint SourceCategory = iota

	// SourceSegmentStart marks the site synthesized for a segment's start
	// endpoint (under the canonical start ≺ end order).
	SourceSegmentStart

	// SourceSegmentEnd marks the site synthesized for a segment's end
	// endpoint.
	SourceSegmentEnd

	// SourceSegment marks a site built from a segment's interior (the
	// forward or inverse site event that sweeps the segment itself).
	SourceSegment
)

// String returns a human-readable name for s.
func (s SourceCategory) String() string {
	switch s {
	case SourceSinglePoint:
		return "SourceSinglePoint"
	case SourceSegmentStart:
		return "SourceSegmentStart"
	case SourceSegmentEnd:
		return "SourceSegmentEnd"
	case SourceSegment:
		return "SourceSegment"
	default:
		panic(fmt.Errorf("unsupported SourceCategory: %d", s))
	}
}

// IsSegment reports whether the category belongs to a segment site (its
// interior, not one of the two synthesized endpoint-point sites).
func (s SourceCategory) IsSegment() bool {
	return s == SourceSegment
}
