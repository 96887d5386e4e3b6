package predicate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/sweepgeom/voronoi/site"
	"github.com/sweepgeom/voronoi/types"
)

func TestCompareSitesDelegatesToSitePackage(t *testing.T) {
	a := site.NewPoint(site.IPoint{X: 0, Y: 0}, 0)
	b := site.NewPoint(site.IPoint{X: 0, Y: 5}, 1)
	assert.Equal(t, types.Less, CompareSites(a, b))
}

func TestCompareArcSymmetricFociMidpoint(t *testing.T) {
	left := site.NewPoint(site.IPoint{X: -10, Y: 0}, 0)
	right := site.NewPoint(site.IPoint{X: 10, Y: 0}, 1)

	// At sweepY below both foci, the breakpoint sits at x=0 by symmetry.
	noLimit := Limits{}
	ord, overflowed := CompareArc(-1, -5, left, right, noLimit)
	assert.Equal(t, types.Less, ord)
	assert.False(t, overflowed)
	ord, overflowed = CompareArc(1, -5, left, right, noLimit)
	assert.Equal(t, types.Greater, ord)
	assert.False(t, overflowed)
}

func TestCompareArcQueryFarLeftIsLessThanBreakpoint(t *testing.T) {
	left := site.NewPoint(site.IPoint{X: 0, Y: 0}, 0)
	right := site.NewPoint(site.IPoint{X: 100, Y: 0}, 1)
	noLimit := Limits{}
	ord, overflowed := CompareArc(-1000, -50, left, right, noLimit)
	assert.Equal(t, types.Less, ord)
	assert.False(t, overflowed)
	ord, overflowed = CompareArc(1000, -50, left, right, noLimit)
	assert.Equal(t, types.Greater, ord)
	assert.False(t, overflowed)
}

func TestComputeCircleEventPointTripleNonConvergentInvalid(t *testing.T) {
	// Middle site below the l-r chord: beach line diverges, not a valid
	// circle event.
	l := site.NewPoint(site.IPoint{X: 0, Y: 0}, 0)
	m := site.NewPoint(site.IPoint{X: 10, Y: -10}, 1)
	r := site.NewPoint(site.IPoint{X: 20, Y: 0}, 2)
	result := ComputeCircleEvent(l, m, r, Limits{})
	assert.False(t, result.Valid)
}

func TestComputeCircleEventPointTripleValid(t *testing.T) {
	// Middle site above the l-r chord: convergent, valid circle event.
	l := site.NewPoint(site.IPoint{X: 0, Y: 0}, 0)
	m := site.NewPoint(site.IPoint{X: 10, Y: 10}, 1)
	r := site.NewPoint(site.IPoint{X: 20, Y: 0}, 2)
	result := ComputeCircleEvent(l, m, r, Limits{})
	assert.True(t, result.Valid)
	assert.InDelta(t, 10.0, result.ApexX.Value(), 1e-6)
	assert.True(t, result.Reliable)
}

func TestComputeCircleEventSegmentTripleApproximate(t *testing.T) {
	l := site.NewPoint(site.IPoint{X: 0, Y: 0}, 0)
	m := site.NewSegment(site.IPoint{X: 5, Y: -20}, site.IPoint{X: 15, Y: -10}, 1)
	r := site.NewPoint(site.IPoint{X: 20, Y: 0}, 2)
	result := ComputeCircleEvent(l, m, r, Limits{})
	assert.False(t, result.Reliable)
}
