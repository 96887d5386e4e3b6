package voronoi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sweepgeom/voronoi/dcel"
)

// assertTwinClosure checks that every half-edge's twin points back to it,
// and that twins belong to different cells (spec §3 invariant 1).
func assertTwinClosure(t *testing.T, d *Diagram) {
	t.Helper()
	for _, he := range d.HalfEdges() {
		twin := d.HalfEdges()[d.Twin(he.ID)-1]
		assert.Equal(t, he.ID, twin.Twin, "twin of twin must be the original edge")
		assert.NotEqual(t, he.Cell, twin.Cell, "twins must bound different cells")
	}
}

// assertFaceCyclesClose checks that following Next from any half-edge
// with Next set returns to itself after a finite number of steps, and
// that Next/Prev agree (spec §3 invariant 2).
func assertFaceCyclesClose(t *testing.T, d *Diagram) {
	t.Helper()
	for _, he := range d.HalfEdges() {
		if he.Next != 0 {
			assert.Equal(t, he.ID, d.Prev(he.Next), "prev(next(e)) == e")
		}
		if he.Prev != 0 {
			assert.Equal(t, he.ID, d.Next(he.Prev), "next(prev(e)) == e")
		}
	}

	seen := make(map[dcel.HalfEdgeID]bool)
	for _, he := range d.HalfEdges() {
		if he.Next == 0 || seen[he.ID] {
			continue
		}
		cur := he.ID
		steps := 0
		for {
			seen[cur] = true
			cur = d.Next(cur)
			steps++
			if cur == he.ID || cur == 0 || steps > d.HalfEdgeCount()+1 {
				break
			}
		}
		assert.Equal(t, he.ID, cur, "face cycle starting at %d must close", he.ID)
	}
}

func TestSinglePointProducesOneCellNoEdges(t *testing.T) {
	var b Builder
	require.NoError(t, b.AddPoint(5, 5))
	d, err := b.Build()
	require.NoError(t, err)

	assert.Equal(t, 1, d.CellCount())
	assert.Equal(t, 0, d.HalfEdgeCount())
	assert.Equal(t, 0, d.VertexCount())
}

func TestTwoPointsProduceOneUnboundedEdgePair(t *testing.T) {
	var b Builder
	require.NoError(t, b.AddPoint(0, 0))
	require.NoError(t, b.AddPoint(10, 0))
	d, err := b.Build()
	require.NoError(t, err)

	assert.Equal(t, 2, d.CellCount())
	require.Equal(t, 2, d.HalfEdgeCount())
	assert.Equal(t, 0, d.VertexCount())

	he := d.HalfEdges()[0]
	assert.True(t, d.IsPrimary(he.ID))
	assert.False(t, d.IsCurved(he.ID), "point/point bisector is a straight line")
	assert.Equal(t, dcel.VertexID(0), d.Vertex0(he.ID))
	assert.Equal(t, dcel.VertexID(0), d.Vertex1(he.ID))
	assertTwinClosure(t, d)
}

func TestThreeGeneralPointsProduceOneVertex(t *testing.T) {
	var b Builder
	require.NoError(t, b.AddPoint(0, 0))
	require.NoError(t, b.AddPoint(10, 0))
	require.NoError(t, b.AddPoint(5, 10))
	d, err := b.Build()
	require.NoError(t, err)

	assert.Equal(t, 3, d.CellCount())
	assert.Equal(t, 1, d.VertexCount())
	assert.Equal(t, 6, d.HalfEdgeCount(), "three bisectors => three edge pairs")
	assertTwinClosure(t, d)
	assertFaceCyclesClose(t, d)
}

func TestThreeCollinearPointsProduceNoVertex(t *testing.T) {
	var b Builder
	require.NoError(t, b.AddPoint(0, 0))
	require.NoError(t, b.AddPoint(10, 0))
	require.NoError(t, b.AddPoint(20, 0))
	d, err := b.Build()
	require.NoError(t, err)

	assert.Equal(t, 3, d.CellCount())
	assert.Equal(t, 0, d.VertexCount(), "collinear sites never converge to a circle event")
	assertTwinClosure(t, d)
}

// TestUnitSquareOfFourSegmentsIsConsistent is spec §8 scenario 5: a closed
// loop of 4 segments sharing corners. One cell per segment plus one per
// distinct corner (the corners are shared pairwise by adjacent segments,
// so 4 segments contribute only 4 distinct endpoint cells, not 8).
func TestUnitSquareOfFourSegmentsIsConsistent(t *testing.T) {
	var b Builder
	require.NoError(t, b.AddSegment(300, 300, 300, 500))
	require.NoError(t, b.AddSegment(300, 500, 500, 500))
	require.NoError(t, b.AddSegment(500, 500, 500, 300))
	require.NoError(t, b.AddSegment(500, 300, 300, 300))
	d, err := b.Build()
	require.NoError(t, err)

	assert.Equal(t, 8, d.CellCount(), "4 segment-interior cells + 4 distinct corner cells")
	assert.Equal(t, 5, d.VertexCount(), "4 corners + 1 centroid")
	assert.Equal(t, 24, d.HalfEdgeCount())
	assertTwinClosure(t, d)
}

// TestTwoNonIntersectingSegmentsAreConsistent is spec §8 scenario 6: two
// segments with no shared endpoints, so every endpoint gets its own cell.
func TestTwoNonIntersectingSegmentsAreConsistent(t *testing.T) {
	var b Builder
	require.NoError(t, b.AddSegment(1, 2, 3, 4))
	require.NoError(t, b.AddSegment(2, 2, 5, 4))
	d, err := b.Build()
	require.NoError(t, err)

	assert.Equal(t, 6, d.CellCount(), "2 segment-interior cells + 4 distinct endpoint cells")
	assert.Equal(t, 4, d.VertexCount())
	assert.Equal(t, 18, d.HalfEdgeCount())
	assertTwinClosure(t, d)
}

func TestConstructionIsDeterministicAcrossRuns(t *testing.T) {
	build := func() *Diagram {
		var b Builder
		_ = b.AddPoint(0, 0)
		_ = b.AddPoint(10, 0)
		_ = b.AddPoint(5, 10)
		_ = b.AddPoint(5, 3)
		d, err := b.Build()
		require.NoError(t, err)
		return d
	}

	d1 := build()
	d2 := build()

	assert.Equal(t, d1.CellCount(), d2.CellCount())
	assert.Equal(t, d1.HalfEdgeCount(), d2.HalfEdgeCount())
	assert.Equal(t, d1.VertexCount(), d2.VertexCount())
	for i, v1 := range d1.Vertices() {
		v2 := d2.Vertices()[i]
		assert.InDelta(t, v1.X, v2.X, 1e-9)
		assert.InDelta(t, v1.Y, v2.Y, 1e-9)
	}
}
