package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrtroute/mrtroute_core/internal/models"
)

func TestHaversineDistance(t *testing.T) {
	bukitTimahHillSummit := models.Coordinates{Latitude: 1.354681, Longitude: 103.776375}
	parliamentHouse := models.Coordinates{Latitude: 1.2891, Longitude: 103.8504}

	d := HaversineDistance(bukitTimahHillSummit, parliamentHouse)
	assert.InDelta(t, 11000, d, 25)

	// Symmetric, and zero for coincident points.
	assert.InDelta(t, d, HaversineDistance(parliamentHouse, bukitTimahHillSummit), 1e-9)
	assert.Zero(t, HaversineDistance(parliamentHouse, parliamentHouse))
}

func TestPathAndHaversineDistance(t *testing.T) {
	g, err := New(testConfig())
	require.NoError(t, err)

	path, err := g.FindShortestPath("AA1", "BB2", false)
	require.NoError(t, err)

	pathDistance, haversineDistance, err := g.PathAndHaversineDistance(path)
	require.NoError(t, err)
	assert.Positive(t, haversineDistance)
	// The travelled route can never be shorter than the straight line.
	assert.GreaterOrEqual(t, pathDistance, haversineDistance)
}

func TestPathAndHaversineDistanceErrors(t *testing.T) {
	g, err := New(testConfig())
	require.NoError(t, err)

	_, _, err = g.PathAndHaversineDistance(models.Path{Nodes: []string{"AA1"}})
	assert.ErrorIs(t, err, ErrInsufficientNodes)

	bare := testConfig()
	bare.Coordinates = nil
	noCoords, err := New(bare)
	require.NoError(t, err)
	path, err := noCoords.FindShortestPath("AA1", "AA3", false)
	require.NoError(t, err)
	_, _, err = noCoords.PathAndHaversineDistance(path)
	assert.ErrorIs(t, err, ErrNoCoordinates)
	assert.NotErrorIs(t, err, ErrUnknownStation)
}

func TestCircuityRatio(t *testing.T) {
	assert.Equal(t, 1.5, CircuityRatio(300, 200))
	assert.Equal(t, 1.0, CircuityRatio(300, 0))
}
