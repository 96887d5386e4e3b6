package site

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/sweepgeom/voronoi/types"
)

func TestNewPoint(t *testing.T) {
	s := NewPoint(IPoint{X: 3, Y: 4}, 0)
	assert.True(t, s.IsPoint())
	assert.False(t, s.IsSegment())
	assert.Equal(t, types.SourceSinglePoint, s.SourceCategory())
	assert.False(t, s.IsInverse())
}

func TestNewSegmentCanonicalOrder(t *testing.T) {
	a := IPoint{X: 5, Y: 10}
	b := IPoint{X: 1, Y: 1}

	// b has the lower y, so it should become point0 regardless of
	// argument order.
	s1 := NewSegment(a, b, 0)
	s2 := NewSegment(b, a, 0)

	assert.Equal(t, b, s1.Point0())
	assert.Equal(t, a, s1.Point1())
	assert.Equal(t, s1.Point0(), s2.Point0())
	assert.Equal(t, s1.Point1(), s2.Point1())
	assert.True(t, s1.IsSegment())
	assert.Equal(t, types.SourceSegment, s1.SourceCategory())
}

func TestInverseSwapsEndpointsAndFlag(t *testing.T) {
	forward := NewSegment(IPoint{X: 0, Y: 0}, IPoint{X: 5, Y: 5}, 2)
	inverse := forward.Inverse()

	assert.False(t, forward.IsInverse())
	assert.True(t, inverse.IsInverse())
	assert.Equal(t, forward.Point0(), inverse.Point1())
	assert.Equal(t, forward.Point1(), inverse.Point0())
	assert.Equal(t, forward.UpperPoint(), inverse.UpperPoint())
	assert.Equal(t, forward.LowerPoint(), inverse.LowerPoint())

	// Inverting twice must return to the original bit state.
	assert.False(t, inverse.Inverse().IsInverse())
	assert.Equal(t, forward, inverse.Inverse())
}

func TestCompareOrdersByLowerYThenX(t *testing.T) {
	low := NewPoint(IPoint{X: 9, Y: 1}, 0)
	high := NewPoint(IPoint{X: 0, Y: 5}, 1)
	assert.Equal(t, types.Less, Compare(low, high))
	assert.Equal(t, types.Greater, Compare(high, low))
	assert.Equal(t, types.Equal, Compare(low, low))
}

func TestComparePointPrecedesSegmentAtSharedCoordinate(t *testing.T) {
	p := NewPoint(IPoint{X: 2, Y: 2}, 0)
	seg := NewSegment(IPoint{X: 2, Y: 2}, IPoint{X: 9, Y: 9}, 1)
	assert.Equal(t, types.Less, Compare(p, seg))
	assert.Equal(t, types.Greater, Compare(seg, p))
}

func TestCompareForwardPrecedesInverseAtSharedUpperPoint(t *testing.T) {
	forward := NewSegment(IPoint{X: 0, Y: 0}, IPoint{X: 9, Y: 9}, 0)
	// An inverse site keeps its underlying forward site's UpperPoint, so
	// the inverse of a segment starting at (0,0) shares forward's
	// UpperPoint.
	inverseSharingUpper := NewSegment(IPoint{X: -5, Y: 5}, IPoint{X: 0, Y: 0}, 1).Inverse()

	assert.Equal(t, IPoint{X: 0, Y: 0}, inverseSharingUpper.UpperPoint())
	assert.Equal(t, types.Less, Compare(forward, inverseSharingUpper))
	assert.Equal(t, types.Greater, Compare(inverseSharingUpper, forward))
}

func TestKeyDistinguishesForwardAndInverse(t *testing.T) {
	forward := NewSegment(IPoint{X: 0, Y: 0}, IPoint{X: 5, Y: 5}, 0)
	inverse := forward.Inverse()
	assert.NotEqual(t, forward.Key(), inverse.Key())
}

func TestBuildEventsOrdersAndIndexes(t *testing.T) {
	points := []IPoint{{X: 10, Y: 11}, {X: 1, Y: 3}}
	segments := []Segment{{A: IPoint{X: 0, Y: 0}, B: IPoint{X: 2, Y: 2}}}

	sites := BuildEvents(points, segments)
	// 2 standalone points + 2 distinct segment endpoints + 2 (forward/inverse)
	// interior sites for the one segment.
	assert.Len(t, sites, 6)

	for i := 1; i < len(sites); i++ {
		assert.NotEqual(t, types.Greater, Compare(sites[i-1], sites[i]))
		assert.Equal(t, i, sites[i].SortedIndex())
	}
}

func TestBuildEventsDedupesSharedSegmentEndpoints(t *testing.T) {
	segments := []Segment{
		{A: IPoint{X: 0, Y: 0}, B: IPoint{X: 10, Y: 0}},
		{A: IPoint{X: 10, Y: 0}, B: IPoint{X: 10, Y: 10}},
	}
	sites := BuildEvents(nil, segments)

	pointSites := 0
	for _, s := range sites {
		if s.IsPoint() {
			pointSites++
		}
	}
	// Two segments sharing endpoint (10,0): 3 distinct endpoints, not 4.
	assert.Equal(t, 3, pointSites)
	assert.Len(t, sites, 3+2*len(segments))
}

func TestIsPrimaryAndLinearEdge(t *testing.T) {
	segA := NewSegment(IPoint{X: 0, Y: 0}, IPoint{X: 10, Y: 0}, 0)
	segB := NewSegment(IPoint{X: 10, Y: 0}, IPoint{X: 10, Y: 10}, 1)
	pointOnSegA := NewPoint(IPoint{X: 0, Y: 0}, 2)
	pointElsewhere := NewPoint(IPoint{X: 5, Y: 5}, 3)

	// point coincides with segment's own endpoint -> secondary, linear.
	assert.False(t, IsPrimaryEdge(segA, pointOnSegA))
	assert.True(t, IsLinearEdge(segA, pointOnSegA))

	// point/segment, primary -> curved (not linear).
	assert.True(t, IsPrimaryEdge(segA, pointElsewhere))
	assert.False(t, IsLinearEdge(segA, pointElsewhere))

	// segment/segment, primary -> linear.
	assert.True(t, IsPrimaryEdge(segA, segB))
	assert.True(t, IsLinearEdge(segA, segB))
}
