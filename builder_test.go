package voronoi

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sweepgeom/voronoi/options"
)

func TestBuilderAddPointRejectsOutOfRange(t *testing.T) {
	var b Builder
	err := b.AddPoint(math.MaxInt32+1, 0)
	require.Error(t, err)
	assert.IsType(t, &InvalidInputError{}, err)
}

func TestBuilderAddPointAcceptsBoundary(t *testing.T) {
	var b Builder
	assert.NoError(t, b.AddPoint(math.MaxInt32, math.MinInt32))
}

func TestBuilderAddSegmentRejectsZeroLength(t *testing.T) {
	var b Builder
	err := b.AddSegment(1, 1, 1, 1)
	require.Error(t, err)
	assert.IsType(t, &InvalidInputError{}, err)
}

func TestBuilderAddSegmentRejectsOutOfRange(t *testing.T) {
	var b Builder
	err := b.AddSegment(0, 0, math.MaxInt32+1, 0)
	require.Error(t, err)
}

func TestBuilderRejectsUseAfterBuild(t *testing.T) {
	var b Builder
	require.NoError(t, b.AddPoint(0, 0))
	require.NoError(t, b.AddPoint(10, 10))
	_, err := b.Build()
	require.NoError(t, err)

	assert.Error(t, b.AddPoint(1, 1))
	assert.Error(t, b.AddSegment(0, 0, 1, 1))
	_, err = b.Build()
	assert.Error(t, err)
}

// TestBuilderThreadsMaxRationalBitsWithoutOverflow confirms a build with
// a custom precision ceiling succeeds: a handful of generic point sites
// should need at most a few bits of exact rational precision to resolve
// any near-tie, so a 64-bit ceiling causes no NumericOverflowError. The
// build would also succeed if options.WithMaxRationalBits were discarded,
// since the default ceiling is larger.
func TestBuilderThreadsMaxRationalBitsWithoutOverflow(t *testing.T) {
	var b Builder
	require.NoError(t, b.AddPoint(0, 0))
	require.NoError(t, b.AddPoint(10, 0))
	require.NoError(t, b.AddPoint(5, 10))
	require.NoError(t, b.AddPoint(-5, 10))

	d, err := b.Build(options.WithMaxRationalBits(64))
	require.NoError(t, err)
	assert.Equal(t, 4, d.CellCount())
}

func TestBuilderEmptyInputProducesEmptyDiagram(t *testing.T) {
	var b Builder
	d, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, 0, d.CellCount())
	assert.Equal(t, 0, d.HalfEdgeCount())
	assert.Equal(t, 0, d.VertexCount())
}
