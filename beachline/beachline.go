// Package beachline implements the sweep driver's ordered set of active
// parabolic arcs (spec §4.F): the status structure that tracks, at the
// current sweep position, which site's distance function forms the
// lower envelope at each x.
//
// Grounded on the teacher's status structure for the Bentley-Ottmann
// sweep (linesegment/sweepline_statusstructure_rbt.go and
// sweepline_eventqueue_rbt.go), this keeps the same red-black tree
// backing (github.com/emirpasic/gods/trees/redblacktree) but the key is
// no longer a line segment's current x under the sweep: it is an arc,
// an ordered pair of sites, compared via [predicate.CompareArc] instead
// of a segment-vs-segment x comparator.
package beachline

import (
	"fmt"

	rbt "github.com/emirpasic/gods/trees/redblacktree"

	"github.com/sweepgeom/voronoi/dcel"
	"github.com/sweepgeom/voronoi/predicate"
	"github.com/sweepgeom/voronoi/site"
)

// ArcID identifies a live arc. Arcs are never reused once removed; a
// stale ArcID simply won't be found by [BeachLine.Find].
type ArcID int

// Arc is one contiguous piece of the beach line's lower envelope. Its
// fields follow the (ownFocus, rightNeighborFocus) convention: Left is
// the site whose parabola forms this arc, and Right is the focus of the
// arc's right neighbor, so (Left, Right) names the breakpoint on the
// arc's right side. An arc with no right neighbor (as seeded by Init)
// has Right equal to Left. EdgeRef is the half-edge, on the
// arc's right side, whose origin will be set when this arc is split or
// removed; CircleEvent is non-zero while a pending circle event
// references this arc as its middle arc.
type Arc struct {
	ID          ArcID
	Left        site.Site
	Right       site.Site
	EdgeRef     dcel.HalfEdgeID
	CircleEvent uint64 // 0 means "no pending circle event"; see circleevent.Handle

	// Prev and Next thread the arcs into a doubly-linked list in
	// left-to-right beach-line order, maintained alongside the
	// red-black tree so the sweep driver can find an arc's immediate
	// neighbors in O(1) without a tree traversal. Zero means "no
	// neighbor on this side" (the arc is the leftmost/rightmost).
	Prev, Next ArcID
}

// BeachLine is the ordered set of live arcs, keyed by position via
// [predicate.CompareArc] evaluated at the supplied sweep y. The same
// arc's key changes continuously as the sweep advances, but P2 is
// monotone for a fixed pair of sites (spec §4.F), so relative order
// between arcs already in the tree never needs to change between
// operations — only the query point used to [BeachLine.Find] a new
// site moves.
type BeachLine struct {
	tree       *rbt.Tree
	arcs       map[ArcID]*Arc
	nextID     ArcID
	limits     predicate.Limits
	overflowed bool
}

// New returns an empty beach line whose P2 comparisons enforce limits
// (spec §7 NumericOverflow).
func New(limits predicate.Limits) *BeachLine {
	bl := &BeachLine{
		arcs:   make(map[ArcID]*Arc),
		limits: limits,
	}
	bl.tree = rbt.NewWith(nil) // comparator supplied per-operation via arcComparator closures
	return bl
}

// Overflowed reports whether any P2 comparison since New exceeded the
// configured precision ceiling; sticky once set, since a beach line
// ordered with an untrustworthy comparison can't be trusted afterward
// either. The sweep driver checks this after operations that call
// [predicate.CompareArc] and fails the build with a NumericOverflowError
// when it's set.
func (bl *BeachLine) Overflowed() bool {
	return bl.overflowed
}

// arcKey is the red-black tree key: an arc plus the sweep y active when
// it's compared. Every key stored in the same tree must compare
// consistently with the same sweepY baked into the comparator at
// construction time, so BeachLine rebuilds its tree's comparator
// closure each time an operation needs a fresh sweep position (see
// withSweepY).
type arcKey struct {
	arc *Arc
}

func (bl *BeachLine) arcComparator(sweepY float64) func(a, b interface{}) int {
	return func(a, b interface{}) int {
		ka, kb := a.(arcKey), b.(arcKey)
		if ka.arc.ID == kb.arc.ID {
			return 0
		}
		ord, overflowed := predicate.CompareArc(queryXFor(ka.arc), sweepY, kb.arc.Left, kb.arc.Right, bl.limits)
		if overflowed {
			bl.overflowed = true
		}
		switch ord {
		case -1:
			return -1
		case 1:
			return 1
		default:
			// Exact tie between two distinct arcs can't persist as
			// Equal in a set keyed by distinct entities; break by
			// insertion order to keep the tree a total order.
			return int(ka.arc.ID) - int(kb.arc.ID)
		}
	}
}

// queryXFor is a placeholder hook: in the tree's internal comparisons
// between two already-inserted arcs, the "query" side of CompareArc is
// the candidate arc's own left/right breakpoint representative (its
// left site's upper point x), which is sufficient to order arcs that
// don't overlap in x range.
func queryXFor(a *Arc) float64 {
	return float64(a.Left.UpperPoint().X)
}

// withSweepY builds a fresh red-black tree with a comparator bound to
// sweepY and inserts all live arcs into it, then returns that tree.
// gods' Tree has no way to swap a comparator on an existing tree, so
// every call costs O(n log n); [BeachLine.Find], the only caller, then
// scans the rebuilt tree linearly, so a Find is not O(log n).
func (bl *BeachLine) withSweepY(sweepY float64) *rbt.Tree {
	t := rbt.NewWith(bl.arcComparator(sweepY))
	for _, a := range bl.arcs {
		t.Put(arcKey{arc: a}, struct{}{})
	}
	return t
}

// Init seeds the beach line with a single arc for the first site. It
// always creates exactly one arc; two first sites sharing the minimum y
// are not seeded as a pair here, and the second one reaches the beach
// line through the driver's ordinary Find and Split path.
func (bl *BeachLine) Init(first site.Site) *Arc {
	arc := &Arc{ID: bl.allocID(), Left: first, Right: first}
	bl.arcs[arc.ID] = arc
	return arc
}

func (bl *BeachLine) allocID() ArcID {
	bl.nextID++
	return bl.nextID
}

// Find locates the arc whose interval (under CompareArc at sweepY)
// contains queryX: the arc directly above the new site (spec §4.F
// locate(s)).
func (bl *BeachLine) Find(queryX, sweepY float64) (*Arc, bool) {
	if len(bl.arcs) == 0 {
		return nil, false
	}
	if len(bl.arcs) == 1 {
		for _, a := range bl.arcs {
			return a, true
		}
	}
	tree := bl.withSweepY(sweepY)
	var found *Arc
	it := tree.Iterator()
	for it.Next() {
		k := it.Key().(arcKey)
		ord, overflowed := predicate.CompareArc(queryX, sweepY, k.arc.Left, k.arc.Right, bl.limits)
		if overflowed {
			bl.overflowed = true
		}
		if ord != 1 {
			found = k.arc
			break
		}
		found = k.arc
	}
	if found == nil {
		return nil, false
	}
	return found, true
}

// Split replaces arc (whose own focus is arc.Left, per the [Arc] doc's
// (ownFocus, rightNeighborFocus) convention) with three arcs: two
// retaining the original focus on either side of a new middle arc
// focused on s — the classic Fortune (F, S, F) split (spec §4.F split).
// It returns the three resulting arcs, threaded into the beach-line's
// neighbor list in place of arc; the caller (the sweep driver) is
// responsible for wiring new half-edges between them and scheduling
// circle events.
func (bl *BeachLine) Split(arc *Arc, s site.Site) (left, mid, right *Arc) {
	prevID, nextID := arc.Prev, arc.Next
	ownFocus, rightNeighborFocus := arc.Left, arc.Right
	delete(bl.arcs, arc.ID)

	left = &Arc{ID: bl.allocID(), Left: ownFocus, Right: s}
	mid = &Arc{ID: bl.allocID(), Left: s, Right: ownFocus}
	right = &Arc{ID: bl.allocID(), Left: ownFocus, Right: rightNeighborFocus}

	left.Prev, left.Next = prevID, mid.ID
	mid.Prev, mid.Next = left.ID, right.ID
	right.Prev, right.Next = mid.ID, nextID

	bl.arcs[left.ID] = left
	bl.arcs[mid.ID] = mid
	bl.arcs[right.ID] = right

	if a, ok := bl.arcs[prevID]; ok {
		a.Next = left.ID
	}
	if a, ok := bl.arcs[nextID]; ok {
		a.Prev = right.ID
	}
	return left, mid, right
}

// Remove collapses a disappearing middle arc, per spec §4.F remove: the
// arc is deleted from the live set and its left/right neighbors are
// relinked to be directly adjacent.
func (bl *BeachLine) Remove(arc *Arc) {
	if prev, ok := bl.arcs[arc.Prev]; ok {
		prev.Next = arc.Next
		// prev's right neighbor is now arc's right neighbor.
		prev.Right = arc.Right
	}
	if next, ok := bl.arcs[arc.Next]; ok {
		next.Prev = arc.Prev
	}
	delete(bl.arcs, arc.ID)
}

// Get returns the live arc with id, and whether it is still live.
func (bl *BeachLine) Get(id ArcID) (*Arc, bool) {
	a, ok := bl.arcs[id]
	return a, ok
}

// Neighbors returns arc's immediate left and right neighbors, or nil
// when arc is the leftmost/rightmost live arc.
func (bl *BeachLine) Neighbors(arc *Arc) (prev, next *Arc) {
	return bl.arcs[arc.Prev], bl.arcs[arc.Next]
}

// Len returns the number of live arcs.
func (bl *BeachLine) Len() int {
	return len(bl.arcs)
}

// String returns a debug dump of the beach line's live arcs.
func (bl *BeachLine) String() string {
	out := fmt.Sprintf("BeachLine(%d arcs): ", len(bl.arcs))
	for id, a := range bl.arcs {
		out += fmt.Sprintf("[#%d %v|%v] ", id, a.Left, a.Right)
	}
	return out
}
