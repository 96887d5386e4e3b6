package circleevent

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sweepgeom/voronoi/beachline"
	"github.com/sweepgeom/voronoi/numeric"
	"github.com/sweepgeom/voronoi/predicate"
)

func resultAt(triggerY, apexX float64) predicate.CircleEventResult {
	return predicate.CircleEventResult{
		ApexX:    numeric.NewRobustFloat(apexX),
		ApexY:    numeric.NewRobustFloat(0),
		TriggerY: numeric.NewRobustFloat(triggerY),
		Valid:    true,
		Reliable: true,
	}
}

func TestInsertAndPopMinOrdersByTriggerY(t *testing.T) {
	q := NewQueue()
	arcA := &beachline.Arc{ID: 1}
	arcB := &beachline.Arc{ID: 2}

	q.Insert(arcA, resultAt(10, 0))
	q.Insert(arcB, resultAt(5, 0))

	key, arc, ok := q.PopMin()
	assert.True(t, ok)
	assert.Same(t, arcB, arc)
	assert.Equal(t, 5.0, key.TriggerY.Value())

	key, arc, ok = q.PopMin()
	assert.True(t, ok)
	assert.Same(t, arcA, arc)
	assert.Equal(t, 10.0, key.TriggerY.Value())

	_, _, ok = q.PopMin()
	assert.False(t, ok)
}

func TestInvalidateSkipsOnPop(t *testing.T) {
	q := NewQueue()
	arcA := &beachline.Arc{ID: 1}
	arcB := &beachline.Arc{ID: 2}

	h := q.Insert(arcA, resultAt(1, 0))
	q.Insert(arcB, resultAt(2, 0))
	q.Invalidate(h)

	_, arc, ok := q.PopMin()
	assert.True(t, ok)
	assert.Same(t, arcB, arc)

	_, _, ok = q.PopMin()
	assert.False(t, ok)
}

func TestInsertReplacesPriorEventOnSameArc(t *testing.T) {
	q := NewQueue()
	arc := &beachline.Arc{ID: 1}

	q.Insert(arc, resultAt(10, 0))
	q.Insert(arc, resultAt(3, 0))

	// The stale entry is invalidated, not removed, until popped.
	assert.Equal(t, 2, q.Len())
	key, poppedArc, ok := q.PopMin()
	assert.True(t, ok)
	assert.Same(t, arc, poppedArc)
	assert.Equal(t, 3.0, key.TriggerY.Value())
}

func TestPeekMinTriggerDoesNotRemove(t *testing.T) {
	q := NewQueue()
	arc := &beachline.Arc{ID: 1}
	q.Insert(arc, resultAt(7, 0))

	peeked, ok := q.PeekMinTrigger()
	assert.True(t, ok)
	assert.Equal(t, 7.0, peeked.TriggerY.Value())

	_, _, ok = q.PopMin()
	assert.True(t, ok)
}
