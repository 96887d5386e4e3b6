package voronoi

import (
	"github.com/sweepgeom/voronoi/beachline"
	"github.com/sweepgeom/voronoi/circleevent"
	"github.com/sweepgeom/voronoi/dcel"
	"github.com/sweepgeom/voronoi/predicate"
	"github.com/sweepgeom/voronoi/site"
	"github.com/sweepgeom/voronoi/types"
)

// Arc.EdgeRef convention: every live arc's EdgeRef names the half-edge
// bounding it on the RIGHT, whose Cell equals the arc's own focus
// site's cell (arc.Left, per [beachline.Arc]'s doc). An arc's LEFT
// boundary is therefore always identically its left neighbor's
// EdgeRef — the same edge, seen from the other side — so the driver
// never needs a separate "left edge" field.
//
// runDriver implements the main sweep loop (spec §4.H): it consumes the
// sorted site-event stream and the circle-event queue in P1 order,
// growing the beach line and the DCEL arena in lockstep, until both
// queues are empty. limits bounds the exact-rational escalation tier
// (spec §7 NumericOverflow); exhausting it aborts the build with a
// [NumericOverflowError].
func runDriver(g *dcel.Graph, sites []site.Site, limits predicate.Limits) error {
	if len(sites) == 0 {
		return nil
	}

	bl := beachline.New(limits)
	cq := circleevent.NewQueue()
	cellByIndex := make(map[int]dcel.CellID)

	getCell := func(s site.Site) dcel.CellID {
		idx := s.InitialIndex()
		if id, ok := cellByIndex[idx]; ok {
			return id
		}
		id := g.NewCell(s)
		cellByIndex[idx] = id
		return id
	}

	first := sites[0]
	getCell(first)
	bl.Init(first)

	idx := 1
	for idx < len(sites) || cq.Len() > 0 {
		var nextSite site.Site
		haveSite := idx < len(sites)
		if haveSite {
			nextSite = sites[idx]
		}
		circleResult, haveCircle := cq.PeekMinTrigger()

		processSite := haveSite
		if haveSite && haveCircle {
			ord := predicate.CompareSiteToCircle(nextSite, circleResult.TriggerY, circleResult.ApexX, circleResult.Exact)
			processSite = ord != types.Greater
		} else if !haveSite {
			processSite = false
		}

		if processSite {
			idx++
			if err := handleSiteEvent(g, bl, cq, getCell, nextSite, limits); err != nil {
				return err
			}
		} else {
			result, arc, ok := cq.PopMin()
			if !ok {
				break
			}
			if err := handleCircleEvent(g, bl, cq, getCell, result, arc, limits); err != nil {
				return err
			}
		}

		if bl.Overflowed() {
			return &NumericOverflowError{Reason: "beach-line ordering exceeded the configured rational precision ceiling"}
		}
	}
	return nil
}

func handleSiteEvent(g *dcel.Graph, bl *beachline.BeachLine, cq *circleevent.Queue, getCell func(site.Site) dcel.CellID, s site.Site, limits predicate.Limits) error {
	cellID := getCell(s)
	sweepY := float64(s.UpperPoint().Y)
	queryX := float64(s.UpperPoint().X)

	arc, ok := bl.Find(queryX, sweepY)
	if !ok {
		return &InternalInconsistencyError{Reason: "beach line empty while site events remain"}
	}
	if arc.CircleEvent != 0 {
		cq.Invalidate(circleevent.Handle(arc.CircleEvent))
	}

	splitCellID := getCell(arc.Left)
	originalEdgeRef := arc.EdgeRef

	left, mid, right := bl.Split(arc, s)
	right.EdgeRef = originalEdgeRef

	primary := site.IsPrimaryEdge(arc.Left, s)
	linear := site.IsLinearEdge(arc.Left, s)
	he, heTwin := g.NewEdgePair(cellID, splitCellID, primary, linear)
	left.EdgeRef = heTwin
	mid.EdgeRef = he

	if err := scheduleCircleEvent(g, bl, cq, sweepY, left, limits); err != nil {
		return err
	}
	return scheduleCircleEvent(g, bl, cq, sweepY, mid, limits)
}

func handleCircleEvent(g *dcel.Graph, bl *beachline.BeachLine, cq *circleevent.Queue, getCell func(site.Site) dcel.CellID, result predicate.CircleEventResult, arc *beachline.Arc, limits predicate.Limits) error {
	prev, next := bl.Neighbors(arc)
	if prev == nil || next == nil {
		return nil
	}

	v := g.NewVertex(result.ApexX.Value(), result.ApexY.Value())

	leftBoundEdge := prev.EdgeRef
	rightBoundEdge := arc.EdgeRef
	g.AttachOrigin(leftBoundEdge, v)
	g.AttachOrigin(g.Twin(rightBoundEdge), v)

	if prev.CircleEvent != 0 {
		cq.Invalidate(circleevent.Handle(prev.CircleEvent))
	}
	if next.CircleEvent != 0 {
		cq.Invalidate(circleevent.Handle(next.CircleEvent))
	}

	bl.Remove(arc)

	leftCell := getCell(prev.Left)
	rightCell := getCell(next.Left)
	primary := site.IsPrimaryEdge(prev.Left, next.Left)
	linear := site.IsLinearEdge(prev.Left, next.Left)
	newHe, newHeTwin := g.NewEdgePair(leftCell, rightCell, primary, linear)
	g.AttachOrigin(newHeTwin, v)
	prev.EdgeRef = newHe

	sweepY := result.TriggerY.Value()
	if err := scheduleCircleEvent(g, bl, cq, sweepY, prev, limits); err != nil {
		return err
	}
	return scheduleCircleEvent(g, bl, cq, sweepY, next, limits)
}

// scheduleCircleEvent computes P3 for arc's current neighbor triple and
// schedules the resulting event if it's a valid, forward-in-time
// convergence (spec §4.H: "schedule new circle events on the new
// triples").
func scheduleCircleEvent(g *dcel.Graph, bl *beachline.BeachLine, cq *circleevent.Queue, sweepY float64, arc *beachline.Arc, limits predicate.Limits) error {
	prev, next := bl.Neighbors(arc)
	if prev == nil || next == nil {
		return nil
	}
	if prev.Left.Key() == next.Left.Key() {
		return nil
	}
	result := predicate.ComputeCircleEvent(prev.Left, arc.Left, next.Left, limits)
	if result.Overflowed {
		return &NumericOverflowError{Reason: "circle-event apex exceeded the configured rational precision ceiling"}
	}
	if !result.Valid {
		return nil
	}
	if result.TriggerY.Value() < sweepY {
		return nil
	}
	cq.Insert(arc, result)
	return nil
}
