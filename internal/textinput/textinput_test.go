package textinput

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadPointsAndSegments(t *testing.T) {
	input := "2\n0 0\n10 5\n1\n-3 -3 3 3\n"
	sites, err := Read(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, [][2]int64{{0, 0}, {10, 5}}, sites.Points)
	assert.Equal(t, [][4]int64{{-3, -3, 3, 3}}, sites.Segments)
}

func TestReadZeroCounts(t *testing.T) {
	input := "0\n0\n"
	sites, err := Read(strings.NewReader(input))
	require.NoError(t, err)
	assert.Empty(t, sites.Points)
	assert.Empty(t, sites.Segments)
}

func TestReadRejectsWrongFieldCount(t *testing.T) {
	input := "1\n0 0 0\n0\n"
	_, err := Read(strings.NewReader(input))
	require.Error(t, err)
}

func TestReadRejectsOutOfRangeCoordinate(t *testing.T) {
	input := "1\n5000000000 0\n0\n"
	_, err := Read(strings.NewReader(input))
	require.Error(t, err)
}

func TestReadRejectsTruncatedInput(t *testing.T) {
	input := "2\n0 0\n"
	_, err := Read(strings.NewReader(input))
	require.Error(t, err)
}
