package dcel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/sweepgeom/voronoi/site"
)

func TestNewCellAndEdgePair(t *testing.T) {
	g := NewGraph()
	s1 := site.NewPoint(site.IPoint{X: 0, Y: 0}, 0)
	s2 := site.NewPoint(site.IPoint{X: 5, Y: 5}, 1)

	c1 := g.NewCell(s1)
	c2 := g.NewCell(s2)
	assert.Equal(t, 2, g.CellCount())

	he, heTwin := g.NewEdgePair(c1, c2, true, false)
	assert.Equal(t, heTwin, g.Twin(he))
	assert.Equal(t, he, g.Twin(heTwin))
	assert.Equal(t, c1, g.HalfEdge(he).Cell)
	assert.Equal(t, c2, g.HalfEdge(heTwin).Cell)
}

func TestAttachOriginAndVertex(t *testing.T) {
	g := NewGraph()
	c1 := g.NewCell(site.NewPoint(site.IPoint{X: 0, Y: 0}, 0))
	c2 := g.NewCell(site.NewPoint(site.IPoint{X: 1, Y: 1}, 1))
	he, _ := g.NewEdgePair(c1, c2, true, true)

	v := g.NewVertex(3.5, -2)
	g.AttachOrigin(he, v)
	assert.Equal(t, v, g.HalfEdge(he).Origin)
	assert.Equal(t, 3.5, g.Vertex(v).X)
}

func TestSetNextPrevLinksBothSides(t *testing.T) {
	g := NewGraph()
	c1 := g.NewCell(site.NewPoint(site.IPoint{X: 0, Y: 0}, 0))
	c2 := g.NewCell(site.NewPoint(site.IPoint{X: 1, Y: 1}, 1))
	he1, _ := g.NewEdgePair(c1, c2, true, true)
	he2, _ := g.NewEdgePair(c1, c2, true, true)

	g.SetNextPrev(he1, he2)
	assert.Equal(t, he2, g.HalfEdge(he1).Next)
	assert.Equal(t, he1, g.HalfEdge(he2).Prev)
}

func TestMarkSecondaryFlagsBothSides(t *testing.T) {
	g := NewGraph()
	c1 := g.NewCell(site.NewPoint(site.IPoint{X: 0, Y: 0}, 0))
	c2 := g.NewCell(site.NewPoint(site.IPoint{X: 1, Y: 1}, 1))
	he, heTwin := g.NewEdgePair(c1, c2, true, true)

	g.MarkSecondary(he)
	assert.False(t, g.HalfEdge(he).Primary)
	assert.False(t, g.HalfEdge(heTwin).Primary)
}

func TestIncidentAssignment(t *testing.T) {
	g := NewGraph()
	c1 := g.NewCell(site.NewPoint(site.IPoint{X: 0, Y: 0}, 0))
	c2 := g.NewCell(site.NewPoint(site.IPoint{X: 1, Y: 1}, 1))
	he, _ := g.NewEdgePair(c1, c2, true, true)
	v := g.NewVertex(0, 0)

	g.SetCellIncident(c1, he)
	g.SetVertexIncident(v, he)
	assert.Equal(t, he, g.Cell(c1).Incident)
	assert.Equal(t, he, g.Vertex(v).Incident)
}

func TestAllIDsInCreationOrder(t *testing.T) {
	g := NewGraph()
	c1 := g.NewCell(site.NewPoint(site.IPoint{X: 0, Y: 0}, 0))
	c2 := g.NewCell(site.NewPoint(site.IPoint{X: 1, Y: 1}, 1))
	assert.Equal(t, []CellID{c1, c2}, g.AllCellIDs())
}
