package site

import (
	"sort"

	"github.com/sweepgeom/voronoi/types"
)

// Segment is a raw input segment with integer endpoints, as accepted by the
// builder's AddSegment (spec §6). A and B must differ; the caller (the
// top-level Builder) is responsible for rejecting zero-length segments as
// InvalidInput before reaching this package.
type Segment struct {
	A, B IPoint
}

// BuildEvents constructs the canonical site-event stream (spec §4.D) from a
// set of input points and segments: one SinglePoint site per point; one
// point site per distinct segment endpoint (glossary: "a segment seeds one
// cell for its interior and one for each endpoint"), deduplicated across
// segments that share a coordinate; and a forward+inverse pair of
// SourceSegment sites per segment (forward derived first via NewSegment,
// inverse derived from it via Site.Inverse so the two always agree on
// endpoints). Standalone points get initial indices first, then distinct
// segment endpoints in the order first encountered, then segment
// interiors. The diagram's cell ids do not follow this order: the sweep
// driver creates each cell when its site is first reached in sweep order.
func BuildEvents(points []IPoint, segments []Segment) []Site {
	sites := make([]Site, 0, len(points)+3*len(segments))

	index := 0
	for _, p := range points {
		sites = append(sites, NewPoint(p, index))
		index++
	}

	type endpoint struct {
		point    IPoint
		category types.SourceCategory
	}
	endpointIndex := make(map[IPoint]int)
	var endpoints []endpoint

	recordEndpoint := func(p IPoint, category types.SourceCategory) {
		if _, ok := endpointIndex[p]; ok {
			return
		}
		endpointIndex[p] = index
		endpoints = append(endpoints, endpoint{point: p, category: category})
		index++
	}

	for _, seg := range segments {
		start, end := seg.A, seg.B
		if !lessEventOrder(start, end) {
			start, end = end, start
		}
		recordEndpoint(start, types.SourceSegmentStart)
		recordEndpoint(end, types.SourceSegmentEnd)
	}
	for _, e := range endpoints {
		sites = append(sites, NewSegmentEndpoint(e.point, endpointIndex[e.point], e.category))
	}

	for _, seg := range segments {
		forward := NewSegment(seg.A, seg.B, index)
		sites = append(sites, forward, forward.Inverse())
		index++
	}

	Sort(sites)
	return sites
}

// Sort orders sites in place by [Compare] (stable, so sites that tie under
// Compare keep their relative input order) and assigns each site's
// sortedIndex to its resulting position, per spec §4.D.
func Sort(sites []Site) {
	sort.SliceStable(sites, func(i, j int) bool {
		return Compare(sites[i], sites[j]) == types.Less
	})
	for i := range sites {
		sites[i].SetSortedIndex(i)
	}
}
