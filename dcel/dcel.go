// Package dcel implements the doubly connected edge list that Voronoi
// construction builds incrementally and finalizes in one post-processing
// pass (spec §3 "DCEL", §4.G, §4.I). Cells, half-edges, and vertices
// live in flat, append-only arenas indexed by small integer handles
// (spec §5: "no entity is ever removed ... no pointer-identity to
// host"), mirroring the append-only id-indexed slice pattern the
// teacher's polytree.go uses for its node store rather than a
// pointer-linked graph.
package dcel

import (
	"encoding/json"

	"github.com/sweepgeom/voronoi/numeric"
	"github.com/sweepgeom/voronoi/site"
)

// CellID, HalfEdgeID, and VertexID are handles into their respective
// arenas. The zero value is never a valid handle (arenas are 1-indexed)
// so a zero handle reliably means "absent" — e.g. a half-edge with no
// Origin (an edge unbounded on that side, spec §3).
type CellID int
type HalfEdgeID int
type VertexID int

// Cell is one per input site (spec §3). Incident is set during
// post-processing (§4.I "incident-edge assignment") to any half-edge
// bounding the cell, bounded or not; it stays zero only for a cell with
// no half-edge at all (a single point with no neighbors, the
// Non-goal-adjacent single-site case).
type Cell struct {
	ID       CellID
	Site     site.Site
	Incident HalfEdgeID
}

// HalfEdge is one side of an edge between two cells (spec §3). Origin
// is zero when the edge is unbounded on this side. Next/Prev are set
// during post-processing (§4.I); until then they are zero.
type HalfEdge struct {
	ID       HalfEdgeID
	Cell     CellID
	Origin   VertexID
	Twin     HalfEdgeID
	Next     HalfEdgeID
	Prev     HalfEdgeID
	Primary  bool
	Linear   bool
	Color    uint32 // user-writable bits, spec §3 "external/color-bits"
}

// Vertex is a DCEL vertex with exact or approximated coordinates (the
// apex computed by predicate.ComputeCircleEvent) and one incident
// outgoing half-edge, assigned during post-processing.
type Vertex struct {
	ID       VertexID
	X, Y     float64
	Incident HalfEdgeID
}

// Graph is the append-only arena holding every cell, half-edge, and
// vertex created during construction. Nothing is ever removed from
// these slices; secondary-edge cleanup rewires Next/Prev pointers but
// leaves every entity in place (spec §4.G, §4.I).
type Graph struct {
	cells     []Cell
	halfEdges []HalfEdge
	vertices  []Vertex
}

// NewGraph returns an empty DCEL arena.
func NewGraph() *Graph {
	return &Graph{}
}

// NewCell appends a new cell for s and returns its id.
func (g *Graph) NewCell(s site.Site) CellID {
	id := CellID(len(g.cells) + 1)
	g.cells = append(g.cells, Cell{ID: id, Site: s})
	return id
}

// NewEdgePair appends a twin pair of half-edges between cellL and
// cellR, with primary/linear flags shared by both sides (spec §4.G
// new_edge_pair). The two returned ids are already twins of each other;
// Next/Prev are left zero for post-processing to fill in.
func (g *Graph) NewEdgePair(cellL, cellR CellID, primary, linear bool) (he, heTwin HalfEdgeID) {
	id1 := HalfEdgeID(len(g.halfEdges) + 1)
	id2 := id1 + 1
	g.halfEdges = append(g.halfEdges,
		HalfEdge{ID: id1, Cell: cellL, Twin: id2, Primary: primary, Linear: linear},
		HalfEdge{ID: id2, Cell: cellR, Twin: id1, Primary: primary, Linear: linear},
	)
	return id1, id2
}

// vertexSnapEpsilon snaps a circle-event apex coordinate to the nearest
// integer lattice point when it's within float64 rounding noise of one.
// Point-site-only triples with a rational circumcenter routinely land
// exactly on an integer in exact arithmetic (e.g. three sites symmetric
// about a lattice point) but pick up a few ULPs of error going through
// predicate.computeCircleEventPPP's robust-float tier; snapping here
// turns that noise back into the exact value without having to carry a
// Rational through every apex the fast tier already certified.
const vertexSnapEpsilon = 1e-6

// NewVertex appends a new vertex at (x, y) and returns its id, snapping
// each coordinate independently per [vertexSnapEpsilon].
func (g *Graph) NewVertex(x, y float64) VertexID {
	id := VertexID(len(g.vertices) + 1)
	x = numeric.SnapToEpsilon(x, vertexSnapEpsilon)
	y = numeric.SnapToEpsilon(y, vertexSnapEpsilon)
	g.vertices = append(g.vertices, Vertex{ID: id, X: x, Y: y})
	return id
}

// AttachOrigin sets he's origin vertex (spec §4.G attach_origin).
func (g *Graph) AttachOrigin(he HalfEdgeID, v VertexID) {
	g.halfEdge(he).Origin = v
}

// SetNextPrev links he.Next = next and next.Prev = he, keeping both
// sides of the doubly-linked cycle consistent in one call.
func (g *Graph) SetNextPrev(he, next HalfEdgeID) {
	g.halfEdge(he).Next = next
	g.halfEdge(next).Prev = he
}

// SetCellIncident assigns cell's incident half-edge.
func (g *Graph) SetCellIncident(c CellID, he HalfEdgeID) {
	g.cell(c).Incident = he
}

// SetVertexIncident assigns vertex's incident outgoing half-edge.
func (g *Graph) SetVertexIncident(v VertexID, he HalfEdgeID) {
	g.vertex(v).Incident = he
}

// Cell returns a copy of the cell with id c.
func (g *Graph) Cell(c CellID) Cell {
	return *g.cell(c)
}

// HalfEdge returns a copy of the half-edge with id he.
func (g *Graph) HalfEdge(he HalfEdgeID) HalfEdge {
	return *g.halfEdge(he)
}

// Vertex returns a copy of the vertex with id v.
func (g *Graph) Vertex(v VertexID) Vertex {
	return *g.vertex(v)
}

// Twin returns he's twin half-edge id.
func (g *Graph) Twin(he HalfEdgeID) HalfEdgeID {
	return g.halfEdge(he).Twin
}

// CellCount, HalfEdgeCount, and VertexCount report the current arena
// sizes, used by post-processing to iterate every entity.
func (g *Graph) CellCount() int     { return len(g.cells) }
func (g *Graph) HalfEdgeCount() int { return len(g.halfEdges) }
func (g *Graph) VertexCount() int   { return len(g.vertices) }

// AllCellIDs, AllHalfEdgeIDs, and AllVertexIDs return every live handle
// in creation order, for post-processing passes that must visit every
// entity exactly once.
func (g *Graph) AllCellIDs() []CellID {
	ids := make([]CellID, len(g.cells))
	for i, c := range g.cells {
		ids[i] = c.ID
	}
	return ids
}

func (g *Graph) AllHalfEdgeIDs() []HalfEdgeID {
	ids := make([]HalfEdgeID, len(g.halfEdges))
	for i, he := range g.halfEdges {
		ids[i] = he.ID
	}
	return ids
}

func (g *Graph) AllVertexIDs() []VertexID {
	ids := make([]VertexID, len(g.vertices))
	for i, v := range g.vertices {
		ids[i] = v.ID
	}
	return ids
}

func (g *Graph) cell(c CellID) *Cell {
	return &g.cells[c-1]
}

func (g *Graph) halfEdge(he HalfEdgeID) *HalfEdge {
	return &g.halfEdges[he-1]
}

func (g *Graph) vertex(v VertexID) *Vertex {
	return &g.vertices[v-1]
}

// MarkSecondary flags he and its twin as secondary (spec §3 invariant
// 4: "secondary edges ... emitted only when required").
func (g *Graph) MarkSecondary(he HalfEdgeID) {
	g.halfEdge(he).Primary = false
	twin := g.halfEdge(he).Twin
	g.halfEdge(twin).Primary = false
}

// MarshalJSON serializes Cell as JSON, following the teacher's
// point.Point convention of a plain field-named struct.
func (c Cell) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID       CellID `json:"id"`
		Site     string `json:"site"`
		Incident int    `json:"incident"`
	}{
		ID:       c.ID,
		Site:     c.Site.String(),
		Incident: int(c.Incident),
	})
}

// MarshalJSON serializes HalfEdge as JSON.
func (he HalfEdge) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID      HalfEdgeID `json:"id"`
		Cell    CellID     `json:"cell"`
		Origin  VertexID   `json:"origin"`
		Twin    HalfEdgeID `json:"twin"`
		Next    HalfEdgeID `json:"next"`
		Prev    HalfEdgeID `json:"prev"`
		Primary bool       `json:"primary"`
		Linear  bool       `json:"linear"`
	}{
		ID:      he.ID,
		Cell:    he.Cell,
		Origin:  he.Origin,
		Twin:    he.Twin,
		Next:    he.Next,
		Prev:    he.Prev,
		Primary: he.Primary,
		Linear:  he.Linear,
	})
}

// MarshalJSON serializes Vertex as JSON.
func (v Vertex) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID VertexID `json:"id"`
		X  float64  `json:"x"`
		Y  float64  `json:"y"`
	}{
		ID: v.ID,
		X:  v.X,
		Y:  v.Y,
	})
}
