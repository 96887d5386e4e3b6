package voronoi

import (
	"sort"

	"github.com/sweepgeom/voronoi/dcel"
)

// finalize runs the post-processing passes spec §4.I requires once the
// sweep driver has consumed every site and circle event and the DCEL
// arena holds every cell, half-edge, and vertex it ever will: rotational
// linking of half-edges around each vertex into closed face cycles,
// linking the two open ends of each unbounded cell's boundary, splicing
// degenerate secondary edges out of their face cycles, and finally
// assigning one incident half-edge to every cell and vertex.
func finalize(g *dcel.Graph) error {
	linkFaceCycles(g)
	linkInfiniteEdges(g)
	rewireSecondaryEdges(g)
	assignIncidentEdges(g)
	return nil
}

// linkFaceCycles sets Next/Prev for every half-edge whose destination is a
// real (finite) vertex, by sorting the half-edges leaving each vertex
// angularly and threading each arriving half-edge to the next departing
// one in rotation order — the standard planar-subdivision face-linking
// rule: continuing a face boundary always takes the next edge clockwise
// (or counter-clockwise, consistently) around the vertex it just arrived
// at, never crossing another edge. Half-edges whose far end is unbounded
// (their twin has no origin) are included as "departing" edges here but
// receive no Next of their own until [linkInfiniteEdges] runs, since
// nothing arrives at a point at infinity.
//
// Per spec §4.I, the sort key comes from each edge's site references
// rather than the floating-point vertex coordinates the sweep computed,
// and the comparison itself is the quadrant/cross-product orientation
// test ([angleLess]) instead of math.Atan2, so two edges departing the
// same vertex at a near-identical angle are still ordered by an exact
// sign, not by subtracting two already-rounded transcendental values.
func linkFaceCycles(g *dcel.Graph) {
	type departing struct {
		he  dcel.HalfEdgeID
		dir direction
	}
	byVertex := make(map[dcel.VertexID][]departing)

	for _, id := range g.AllHalfEdgeIDs() {
		he := g.HalfEdge(id)
		if he.Origin == 0 {
			continue
		}
		byVertex[he.Origin] = append(byVertex[he.Origin], departing{he: id, dir: edgeDirection(g, id)})
	}

	for _, outs := range byVertex {
		sort.Slice(outs, func(i, j int) bool { return angleLess(outs[i].dir, outs[j].dir) })
		n := len(outs)
		for i, o := range outs {
			prior := outs[(i-1+n)%n]
			arriving := g.Twin(prior.he)
			g.SetNextPrev(arriving, o.he)
		}
	}
}

// direction is the outgoing direction a half-edge departs its origin in,
// used only to order edges angularly around a shared vertex: its
// magnitude is never significant, only which quadrant it falls in and its
// cross-product sign against another direction.
type direction struct {
	dx, dy float64
}

// quadrant buckets d into one of four half-open angular ranges, matching
// the cyclic order atan2 would give without calling it: [0, 90), [90,
// 180), [180, 270), [270, 360).
func quadrant(d direction) int {
	switch {
	case d.dx > 0 && d.dy >= 0:
		return 0
	case d.dx <= 0 && d.dy > 0:
		return 1
	case d.dx < 0 && d.dy <= 0:
		return 2
	default:
		return 3
	}
}

// angleLess orders two directions the way sorting by atan2(dy, dx) would,
// but as an exact predicate: a quadrant bucket comparison, then (within a
// quadrant) the sign of the cross product, never a transcendental
// function or a subtraction of two already-lossy angle values.
func angleLess(a, b direction) bool {
	qa, qb := quadrant(a), quadrant(b)
	if qa != qb {
		return qa < qb
	}
	return a.dx*b.dy-a.dy*b.dx > 0
}

// edgeDirection returns the direction he departs its origin in. For an
// edge between two point sites, this is derived entirely from the two
// cells' site references — the exact integer perpendicular to the
// segment joining them, per spec §4.I — rather than from the (possibly
// irrational, float-rounded) vertex coordinates the sweep computed for
// he's endpoints; the known origin vertex is used only to pick which of
// the perpendicular's two opposite senses this particular half-edge
// carries, a single sign check rather than the angle itself. An edge
// touching a segment site uses the same construction with the segment
// site's UpperPoint standing in for the site, exactly as for a point;
// the segment's line is not consulted.
func edgeDirection(g *dcel.Graph, he dcel.HalfEdgeID) direction {
	e := g.HalfEdge(he)
	twin := g.HalfEdge(e.Twin)
	origin := g.Vertex(e.Origin)

	siteA := g.Cell(e.Cell).Site.UpperPoint()
	siteB := g.Cell(twin.Cell).Site.UpperPoint()
	ax, ay := float64(siteA.X), float64(siteA.Y)
	bx, by := float64(siteB.X), float64(siteB.Y)
	px, py := -(by - ay), bx-ax

	if twin.Origin != 0 {
		dest := g.Vertex(twin.Origin)
		if px*(dest.X-origin.X)+py*(dest.Y-origin.Y) < 0 {
			px, py = -px, -py
		}
		return direction{dx: px, dy: py}
	}

	mx, my := (ax+bx)/2, (ay+by)/2
	if px*(origin.X-mx)+py*(origin.Y-my) < 0 {
		px, py = -px, -py
	}
	return direction{dx: px, dy: py}
}

// linkInfiniteEdges closes the one gap each unbounded cell's boundary has
// at the point at infinity: the half-edge leaving its last finite vertex
// toward infinity is linked directly to the half-edge arriving from
// infinity at its first finite vertex, both belonging to the same cell.
// A cell with anything other than exactly one outgoing and one incoming
// ray is left unlinked at that gap rather than guessed at — this can only
// arise from the approximate segment-site breakpoint geometry documented
// in predicate/predicate.go, not from point-only diagrams.
type cellGap struct {
	outgoing []dcel.HalfEdgeID
	incoming []dcel.HalfEdgeID
}

func linkInfiniteEdges(g *dcel.Graph) {
	byCell := make(map[dcel.CellID]*cellGap)

	for _, id := range g.AllHalfEdgeIDs() {
		he := g.HalfEdge(id)
		twin := g.HalfEdge(he.Twin)
		if he.Origin == 0 && twin.Origin == 0 {
			continue
		}
		gp, ok := byCell[he.Cell]
		if !ok {
			gp = &cellGap{}
			byCell[he.Cell] = gp
		}
		switch {
		case he.Origin != 0 && twin.Origin == 0:
			gp.outgoing = append(gp.outgoing, id)
		case he.Origin == 0 && twin.Origin != 0:
			gp.incoming = append(gp.incoming, id)
		}
	}

	for _, gp := range byCell {
		if len(gp.outgoing) != 1 || len(gp.incoming) != 1 {
			continue
		}
		g.SetNextPrev(gp.outgoing[0], gp.incoming[0])
	}
}

// rewireSecondaryEdges splices zero-length secondary edges — the
// degenerate half-edges produced at a segment site's own endpoints (spec
// §3 invariant 4) — out of the face cycles their Next/Prev were just
// linked into, without removing them from the arena (spec §5: entities are
// never removed). A secondary half-edge whose origin and destination
// coincide contributes nothing to its face's shape, so its cycle neighbors
// are relinked directly to each other.
func rewireSecondaryEdges(g *dcel.Graph) {
	for _, id := range g.AllHalfEdgeIDs() {
		he := g.HalfEdge(id)
		if he.Primary || he.Origin == 0 || he.Next == 0 || he.Prev == 0 {
			continue
		}
		dest := g.HalfEdge(he.Twin).Origin
		if dest == 0 || dest != he.Origin {
			continue
		}
		g.SetNextPrev(he.Prev, he.Next)
	}
}

// assignIncidentEdges gives every cell and every vertex one representative
// incident half-edge (spec §4.I), preferring a primary, non-bypassed edge
// for a cell so that walking its face from the incident edge traverses the
// cell's actual boundary rather than starting on a spliced-out secondary
// edge.
func assignIncidentEdges(g *dcel.Graph) {
	assignedPrimary := make(map[dcel.CellID]bool)
	for _, id := range g.AllHalfEdgeIDs() {
		he := g.HalfEdge(id)
		if g.Cell(he.Cell).Incident == 0 || (!assignedPrimary[he.Cell] && he.Primary) {
			g.SetCellIncident(he.Cell, id)
			assignedPrimary[he.Cell] = assignedPrimary[he.Cell] || he.Primary
		}
		if he.Origin != 0 && g.Vertex(he.Origin).Incident == 0 {
			g.SetVertexIncident(he.Origin, id)
		}
	}
}
