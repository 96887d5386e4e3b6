// Package circleevent implements the sweep driver's circle-event
// priority queue (spec §4.E): a set of pending "empty circle" triggers
// ordered by event key, supporting insert, pop-minimum, and lazy
// invalidation.
//
// Grounded on the teacher's B-tree-backed event queue
// (linesegment/sweepline_eventqueue.go, which wraps
// github.com/google/btree's generic BTreeG the same way), this package
// keeps that dependency and its NewG/ReplaceOrInsert/Min/Delete surface,
// swapping the teacher's (point, segment-list) entries for circle-event
// keys built from [predicate.CircleEventResult].
package circleevent

import (
	"github.com/google/btree"

	"github.com/sweepgeom/voronoi/beachline"
	"github.com/sweepgeom/voronoi/predicate"
)

// Handle uniquely identifies a scheduled circle event; it is stored on
// the [beachline.Arc] that would vanish if the event fires
// (beachline.Arc.CircleEvent), so the sweep driver can invalidate it in
// O(1) when that arc is split or removed before the event is reached.
type Handle uint64

// entry is one item in the priority queue.
type entry struct {
	handle  Handle
	key     predicate.CircleEventResult
	arc     *beachline.Arc
	invalid bool
}

func entryLess(a, b entry) bool {
	ay := a.key.TriggerY.Value()
	by := b.key.TriggerY.Value()
	if ay != by {
		return ay < by
	}
	ax := a.key.ApexX.Value()
	bx := b.key.ApexX.Value()
	if ax != bx {
		return ax < bx
	}
	return a.handle < b.handle
}

// Queue is the circle-event priority queue (spec §4.E).
type Queue struct {
	tree    *btree.BTreeG[entry]
	byArc   map[*beachline.Arc]Handle
	entries map[Handle]entry
	next    Handle
}

// NewQueue returns an empty circle-event queue.
func NewQueue() *Queue {
	return &Queue{
		tree:    btree.NewG[entry](32, entryLess),
		byArc:   make(map[*beachline.Arc]Handle),
		entries: make(map[Handle]entry),
	}
}

// Insert schedules a circle event for arc's triple with the computed
// key, per spec §4.E insert(key, arc_ref). If arc already has a pending
// event, that event is invalidated first (a middle arc can only
// meaningfully anticipate one circle event at a time).
func (q *Queue) Insert(arc *beachline.Arc, key predicate.CircleEventResult) Handle {
	if h, ok := q.byArc[arc]; ok {
		q.Invalidate(h)
	}
	q.next++
	h := q.next
	e := entry{handle: h, key: key, arc: arc}
	q.tree.ReplaceOrInsert(e)
	q.entries[h] = e
	q.byArc[arc] = h
	arc.CircleEvent = uint64(h)
	return h
}

// Invalidate marks the event at h as invalid; it stays in the tree
// (removal from a btree.BTreeG mid-iteration is the expensive part) and
// is discarded lazily on [Queue.PopMin] instead, per spec §4.E "An
// invalidated event is lazily discarded on pop."
func (q *Queue) Invalidate(h Handle) {
	e, ok := q.entries[h]
	if !ok || e.invalid {
		return
	}
	e.invalid = true
	q.entries[h] = e
	if e.arc != nil {
		e.arc.CircleEvent = 0
		delete(q.byArc, e.arc)
	}
}

// PopMin removes and returns the smallest non-invalidated event, and
// whether one existed.
func (q *Queue) PopMin() (predicate.CircleEventResult, *beachline.Arc, bool) {
	for {
		min, ok := q.tree.Min()
		if !ok {
			return predicate.CircleEventResult{}, nil, false
		}
		q.tree.Delete(min)
		delete(q.entries, min.handle)
		if min.invalid {
			continue
		}
		if min.arc != nil {
			delete(q.byArc, min.arc)
			min.arc.CircleEvent = 0
		}
		return min.key, min.arc, true
	}
}

// PeekMinTrigger returns the trigger y/x of the smallest non-invalidated
// event without removing it, and whether one existed; used by the sweep
// driver to compare the next circle event against the next site event
// via P1 before committing to pop either queue (spec §4.H step 2).
func (q *Queue) PeekMinTrigger() (predicate.CircleEventResult, bool) {
	// btree.BTreeG has no non-destructive peek-while-skipping-invalid
	// primitive, so this pops and immediately re-inserts valid entries
	// it skips past; invalid entries are dropped for good, same as
	// PopMin.
	var skipped []entry
	var result predicate.CircleEventResult
	found := false
	for {
		min, ok := q.tree.Min()
		if !ok {
			break
		}
		q.tree.Delete(min)
		if min.invalid {
			delete(q.entries, min.handle)
			continue
		}
		result = min.key
		found = true
		skipped = append(skipped, min)
		break
	}
	for _, e := range skipped {
		q.tree.ReplaceOrInsert(e)
	}
	return result, found
}

// Len returns the number of entries still in the queue, including any
// not-yet-discarded invalidated ones.
func (q *Queue) Len() int {
	return q.tree.Len()
}
