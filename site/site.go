// Package site defines the canonical representation of Voronoi input sites
// — points and line segments with integer coordinates — and the total
// order used to feed them to the sweepline as site events (spec §3, §4.D).
//
// # Overview
//
// Every input point becomes one [Site] with category [types.SourceSinglePoint].
// Every input segment becomes a point site for each distinct endpoint
// (see [BuildEvents]) plus two segment sites sharing the same underlying
// endpoints: a forward site ordered start≺end ([types.SourceSegment], not
// inverse) and an inverse site ordered end≺start ([types.SourceSegment],
// inverse). The inverse is derived from the forward site by swapping its
// two endpoints and flipping a bit, not built independently from raw
// coordinates — see [Site.Inverse] — mirroring how Boost.Polygon's Rust
// port (voronoi_siteevent.rs, kept in this repository's original_source
// reference material) implements SiteEvent::inverse.
//
// [Compare] defines the total order new sites are fed to the sweep driver
// in: primary key (y ascending, x ascending) of the site's lower endpoint,
// with point sites preceding segment sites at a shared coordinate, and
// (for segment sites) forward preceding inverse.
package site

import (
	"fmt"
	"image"

	"github.com/sweepgeom/voronoi/types"
)

// IPoint is an integer point in the plane — the coordinate representation
// for every input site. Voronoi construction works from these exactly;
// float64 approximations only appear on the output vertices.
type IPoint struct {
	X, Y int64
}

// String returns a human-readable "(x,y)" representation of p.
func (p IPoint) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Eq reports whether p and q have identical integer coordinates.
func (p IPoint) Eq(q IPoint) bool {
	return p.X == q.X && p.Y == q.Y
}

// FromImagePoint converts an [image.Point] into an IPoint, the same
// graphics-interop convenience the teacher's point package offers via
// NewFromImagePoint.
func FromImagePoint(q image.Point) IPoint {
	return IPoint{X: int64(q.X), Y: int64(q.Y)}
}

// lessEventOrder reports whether p sorts before q under the sweep's
// primary key: lower y first, then lower x. This is exact integer
// comparison — no precision concerns arise for comparing two raw input
// coordinates.
func lessEventOrder(p, q IPoint) bool {
	if p.Y != q.Y {
		return p.Y < q.Y
	}
	return p.X < q.X
}

// Site is either a point site (point0 == point1, category SourceSinglePoint)
// or a segment site (point0 != point1). For a segment site, point0 is the
// "upper"/start endpoint under [lessEventOrder] when the site is not
// inverse, and the "lower"/end endpoint when it is.
//
// Each site additionally carries bookkeeping used by the sweep driver and
// diagnostics: initialIndex (position among the caller's original Add*
// calls) and sortedIndex (position in the sorted site-event stream,
// assigned by [Sort]).
type Site struct {
	point0, point1 IPoint
	sourceFlags    uint32
	initialIndex   int
	sortedIndex    int
}

// Bits packed into sourceFlags. The low bits hold the SourceCategory value;
// the next bit records whether the site has been inverted. This matches the
// bit-packed flag word used by the original Boost.Polygon port instead of
// tracking inversion as a separate bool field.
const (
	sourceCategoryMask = 0x0F
	inverseBit         = 0x10
)

// NewPoint builds a point site from a standalone input point.
func NewPoint(p IPoint, initialIndex int) Site {
	return Site{
		point0:       p,
		point1:       p,
		sourceFlags:  uint32(types.SourceSinglePoint),
		initialIndex: initialIndex,
	}
}

// NewSegmentEndpoint builds the point site synthesized for one distinct
// endpoint of an input segment (glossary: "a segment seeds one cell for
// its interior and one for each endpoint"). It behaves exactly like a
// [NewPoint] site to every predicate that dispatches on IsPoint/IsSegment
// — category is bookkeeping only. [IsPrimaryEdge] does not read it: it
// recognizes a segment meeting its own endpoint by comparing coordinates,
// exactly as for a [NewPoint] site coinciding with a segment endpoint.
// category must be [types.SourceSegmentStart] or
// [types.SourceSegmentEnd].
func NewSegmentEndpoint(p IPoint, initialIndex int, category types.SourceCategory) Site {
	return Site{
		point0:       p,
		point1:       p,
		sourceFlags:  uint32(category),
		initialIndex: initialIndex,
	}
}

// NewSegment builds the forward site for an input segment with endpoints a
// and b. The endpoints are canonicalized so point0≺point1 under the event
// order (lessEventOrder); if a and b are already in that order, a is kept
// as point0. Use [Site.Inverse] to derive the paired inverse site. The
// source category is [types.SourceSegment]; a and b must differ (InvalidInput
// is the caller's responsibility to reject zero-length segments before
// calling this).
func NewSegment(a, b IPoint, initialIndex int) Site {
	if !lessEventOrder(a, b) {
		a, b = b, a
	}
	return Site{
		point0:       a,
		point1:       b,
		sourceFlags:  uint32(types.SourceSegment),
		initialIndex: initialIndex,
	}
}

// Inverse returns the inverse of a non-inverse segment site: the same two
// endpoints with point0/point1 swapped and the inverse bit set. The two
// sites (forward and inverse) reference "the same underlying segment" per
// spec §3; in the beach line, segment sites of the forward kind precede
// sites of the inverse kind for the same segment (spec §4.D).
func (s Site) Inverse() Site {
	inv := s
	inv.point0, inv.point1 = s.point1, s.point0
	inv.sourceFlags ^= inverseBit
	return inv
}

// IsPoint reports whether s is a point site.
func (s Site) IsPoint() bool {
	return s.point0 == s.point1
}

// IsSegment reports whether s is a segment site (forward or inverse).
func (s Site) IsSegment() bool {
	return !s.IsPoint()
}

// IsInverse reports whether s is the inverse (end→start) site of a segment.
func (s Site) IsInverse() bool {
	return s.sourceFlags&inverseBit != 0
}

// SourceCategory returns s's source category.
func (s Site) SourceCategory() types.SourceCategory {
	return types.SourceCategory(s.sourceFlags & sourceCategoryMask)
}

// Point0 returns s's first endpoint: the site itself for a point site; the
// start endpoint of a forward segment site, or the end endpoint of an
// inverse segment site.
func (s Site) Point0() IPoint {
	return s.point0
}

// Point1 returns s's second endpoint (equal to Point0 for a point site).
func (s Site) Point1() IPoint {
	return s.point1
}

// UpperPoint returns the endpoint of s that precedes the other under the
// sweep's event order — the "upper" endpoint used as the site's event
// point, and the endpoint stored in the sweep's event queue (spec §4.D).
func (s Site) UpperPoint() IPoint {
	if s.IsInverse() {
		return s.point1
	}
	return s.point0
}

// LowerPoint returns the endpoint of s that the sweep encounters later.
func (s Site) LowerPoint() IPoint {
	if s.IsInverse() {
		return s.point0
	}
	return s.point1
}

// InitialIndex returns s's position among the original Add* calls that
// produced it.
func (s Site) InitialIndex() int {
	return s.initialIndex
}

// SortedIndex returns s's position in the sorted site-event stream.
func (s Site) SortedIndex() int {
	return s.sortedIndex
}

// SetSortedIndex is called by [Sort] to record s's position in the sorted
// stream.
func (s *Site) SetSortedIndex(i int) {
	s.sortedIndex = i
}

// Key returns a comparable value uniquely identifying s's coordinates and
// orientation, suitable for equality checks and Go map keys. The sweep
// driver uses it to skip a circle-event candidate whose two outer arcs
// share the same site.
func (s Site) Key() [5]int64 {
	return [5]int64{s.point0.X, s.point0.Y, s.point1.X, s.point1.Y, int64(s.sourceFlags)}
}

// String returns a debug representation of s.
func (s Site) String() string {
	if s.IsPoint() {
		return fmt.Sprintf("#%d %s ii:%d %s", s.sortedIndex, s.point0, s.initialIndex, s.SourceCategory())
	}
	arrow := "->"
	if s.IsInverse() {
		arrow = "<-¿"
	}
	return fmt.Sprintf("#%d %s%s%s ii:%d %s", s.sortedIndex, s.point0, arrow, s.point1, s.initialIndex, s.SourceCategory())
}

// IsPrimaryEdge reports whether the edge separating the cells of site1 and
// site2 is primary: it separates two genuinely distinct geometric sites,
// rather than a segment and one of its own endpoints. Ported directly from
// the original SiteEvent::is_primary_edge (original_source/src/voronoi_siteevent.rs):
// when exactly one side is a segment, the edge is secondary exactly when
// the segment's own endpoint coincides with the point site.
func IsPrimaryEdge(site1, site2 Site) bool {
	seg1, seg2 := site1.IsSegment(), site2.IsSegment()
	switch {
	case seg1 && !seg2:
		return !site1.point0.Eq(site2.point0) && !site1.point1.Eq(site2.point0)
	case !seg1 && seg2:
		return !site2.point0.Eq(site1.point0) && !site2.point1.Eq(site1.point0)
	default:
		return true
	}
}

// IsLinearEdge reports whether the edge separating the cells of site1 and
// site2 is a straight line rather than a parabolic arc: a secondary edge
// is always linear; otherwise it's linear exactly when both sides are the
// same kind of site (point/point or segment/segment).
func IsLinearEdge(site1, site2 Site) bool {
	if !IsPrimaryEdge(site1, site2) {
		return true
	}
	return site1.IsSegment() == site2.IsSegment()
}
