package voronoi

import (
	"encoding/json"

	"github.com/sweepgeom/voronoi/dcel"
)

// Diagram is the read-only result of a successful [Builder.Build]: a
// complete DCEL (spec §3, §6 "Diagram accessors").
type Diagram struct {
	graph *dcel.Graph
}

// CellCount, HalfEdgeCount, and VertexCount report the diagram's arena
// sizes.
func (d *Diagram) CellCount() int     { return d.graph.CellCount() }
func (d *Diagram) HalfEdgeCount() int { return d.graph.HalfEdgeCount() }
func (d *Diagram) VertexCount() int   { return d.graph.VertexCount() }

// Cells, HalfEdges, and Vertices return every entity of that kind, in
// creation order.
func (d *Diagram) Cells() []dcel.Cell {
	ids := d.graph.AllCellIDs()
	out := make([]dcel.Cell, len(ids))
	for i, id := range ids {
		out[i] = d.graph.Cell(id)
	}
	return out
}

func (d *Diagram) HalfEdges() []dcel.HalfEdge {
	ids := d.graph.AllHalfEdgeIDs()
	out := make([]dcel.HalfEdge, len(ids))
	for i, id := range ids {
		out[i] = d.graph.HalfEdge(id)
	}
	return out
}

func (d *Diagram) Vertices() []dcel.Vertex {
	ids := d.graph.AllVertexIDs()
	out := make([]dcel.Vertex, len(ids))
	for i, id := range ids {
		out[i] = d.graph.Vertex(id)
	}
	return out
}

// Twin returns he's twin half-edge (spec §6 edge.twin).
func (d *Diagram) Twin(he dcel.HalfEdgeID) dcel.HalfEdgeID { return d.graph.Twin(he) }

// Next returns he's next half-edge around its cell (spec §6 edge.next),
// valid only after [Builder.Build] has run post-processing.
func (d *Diagram) Next(he dcel.HalfEdgeID) dcel.HalfEdgeID { return d.graph.HalfEdge(he).Next }

// Prev returns he's previous half-edge around its cell (spec §6
// edge.prev).
func (d *Diagram) Prev(he dcel.HalfEdgeID) dcel.HalfEdgeID { return d.graph.HalfEdge(he).Prev }

// Cell returns the cell he belongs to (spec §6 edge.cell).
func (d *Diagram) Cell(he dcel.HalfEdgeID) dcel.CellID { return d.graph.HalfEdge(he).Cell }

// Vertex0 returns he's origin vertex, or zero if he is unbounded on
// this side (spec §6 edge.vertex0).
func (d *Diagram) Vertex0(he dcel.HalfEdgeID) dcel.VertexID { return d.graph.HalfEdge(he).Origin }

// Vertex1 returns he's destination vertex: the origin of its twin
// (spec §6 edge_get_vertex1(e) = twin(e).vertex0).
func (d *Diagram) Vertex1(he dcel.HalfEdgeID) dcel.VertexID {
	return d.graph.HalfEdge(d.graph.Twin(he)).Origin
}

// IncidentEdge returns vertex v's one incident outgoing half-edge (spec
// §6 vertex.incident_edge).
func (d *Diagram) IncidentEdge(v dcel.VertexID) dcel.HalfEdgeID { return d.graph.Vertex(v).Incident }

// RotNext returns the next half-edge in CCW rotation order around he's
// origin vertex (spec §6 edge_rot_next(e) = next(twin(e))).
func (d *Diagram) RotNext(he dcel.HalfEdgeID) dcel.HalfEdgeID {
	return d.graph.HalfEdge(d.graph.Twin(he)).Next
}

// RotPrev returns the previous half-edge in CCW rotation order around
// he's origin vertex (spec §6 edge_rot_prev(e) = twin(prev(e))).
func (d *Diagram) RotPrev(he dcel.HalfEdgeID) dcel.HalfEdgeID {
	return d.graph.Twin(d.graph.HalfEdge(he).Prev)
}

// IsFinite reports whether he is bounded on both ends (spec §6
// edge.is_finite).
func (d *Diagram) IsFinite(he dcel.HalfEdgeID) bool {
	return d.Vertex0(he) != 0 && d.Vertex1(he) != 0
}

// IsPrimary reports whether he is a primary edge (spec §6
// edge.is_primary).
func (d *Diagram) IsPrimary(he dcel.HalfEdgeID) bool { return d.graph.HalfEdge(he).Primary }

// IsCurved reports whether he is a curved (parabolic) edge rather than
// a straight line segment (spec §6 edge.is_curved).
func (d *Diagram) IsCurved(he dcel.HalfEdgeID) bool { return !d.graph.HalfEdge(he).Linear }

// MarshalJSON serializes the diagram as its three entity arrays, for
// cmd/vorocli's output and for golden-file testing.
func (d *Diagram) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Cells     []dcel.Cell     `json:"cells"`
		HalfEdges []dcel.HalfEdge `json:"half_edges"`
		Vertices  []dcel.Vertex   `json:"vertices"`
	}{
		Cells:     d.Cells(),
		HalfEdges: d.HalfEdges(),
		Vertices:  d.Vertices(),
	})
}
