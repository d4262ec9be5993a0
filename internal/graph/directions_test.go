package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrtroute/mrtroute_core/internal/models"
)

func TestMakeDirectionsWithTransfer(t *testing.T) {
	g, err := New(testConfig())
	require.NoError(t, err)

	path, err := g.FindShortestPath("AA1", "BB2", false)
	require.NoError(t, err)

	steps, err := g.MakeDirections(path)
	require.NoError(t, err)
	require.Len(t, steps, 8)
	assert.Equal(t, []string{
		"Start at AA1 Alpha",
		"Board train towards terminus AA3 Gamma",
		"Alight at AA3 Gamma",
		"Transfer to BB1 Gamma",
		"Board train towards terminus BB2 Delta",
		"Alight at BB2 Delta",
		"Total duration: 16 minutes",
	}, steps[:7])
	assert.Contains(t, steps[7], "Approximate path distance")
	assert.Contains(t, steps[7], "Circuity ratio")
}

func TestMakeDirectionsWithWalking(t *testing.T) {
	g, err := New(testConfig())
	require.NoError(t, err)

	path, err := g.FindShortestPath("AA1", "BB2", true)
	require.NoError(t, err)

	steps, err := g.MakeDirections(path)
	require.NoError(t, err)
	require.Len(t, steps, 6)
	assert.Equal(t, []string{
		"Start at AA1 Alpha",
		"Board train towards terminus AA3 Gamma",
		"Alight at AA2 Beta",
		"Walk to BB2 Delta",
		"Total duration: 8 minutes",
	}, steps[:5])
}

func TestMakeDirectionsWithoutCoordinates(t *testing.T) {
	cfg := testConfig()
	cfg.Coordinates = nil
	g, err := New(cfg)
	require.NoError(t, err)

	path, err := g.FindShortestPath("AA1", "BB2", false)
	require.NoError(t, err)

	steps, err := g.MakeDirections(path)
	require.NoError(t, err)
	require.Len(t, steps, 7)
	assert.Equal(t, "Total duration: 16 minutes", steps[6])
	for _, step := range steps {
		assert.NotContains(t, step, "Approximate path distance")
	}
}

// walkConfig joins two short lines by a walking route only, so any journey
// across it alights, walks, and boards a second train.
func walkConfig() Config {
	return Config{
		Stations: map[string]string{
			"AA1": "Alpha", "AA2": "Beta",
			"BB2": "Delta", "BB3": "Epsilon",
		},
		Segments: []models.SegmentSpec{
			{From: "AA1", To: "AA2", DurationAsc: 100, DurationDesc: 100, DwellAsc: 28, DwellDesc: 28},
			{From: "AA2", To: "BB2", DurationAsc: 300, DurationDesc: 300, Mode: models.ModeWalk},
			{From: "BB2", To: "BB3", DurationAsc: 90, DurationDesc: 90, DwellAsc: 28, DwellDesc: 28},
		},
	}
}

func TestMakeDirectionsBoardsTrainAfterWalking(t *testing.T) {
	g, err := New(walkConfig())
	require.NoError(t, err)

	path, err := g.FindShortestPath("AA1", "BB3", true)
	require.NoError(t, err)
	require.Equal(t, []string{"AA1", "AA2", "BB2", "BB3"}, path.Nodes)

	steps, err := g.MakeDirections(path)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"Start at AA1 Alpha",
		"Board train towards terminus AA2 Beta",
		"Alight at AA2 Beta",
		"Walk to BB2 Delta",
		"Board train towards terminus BB3 Epsilon",
		"Alight at BB3 Epsilon",
		"Total duration: 10 minutes",
	}, steps)
}

func TestMakeDirectionsSwitchOver(t *testing.T) {
	g, err := New(conditionalConfig())
	require.NoError(t, err)

	path, err := g.FindShortestPath("CC1", "CC3", false)
	require.NoError(t, err)

	steps, err := g.MakeDirections(path)
	require.NoError(t, err)
	require.Len(t, steps, 7)
	assert.Equal(t, []string{
		"Start at CC1 Pasir",
		"Board train towards terminus CC3 Batok",
		"Switch over at CC2 Tengah",
		"Board train towards terminus CC3 Batok",
		"Alight at CC3 Batok",
		"Total duration: 11 minutes",
	}, steps[:6])
}

func TestMakeDirectionsNoSwitchOverInThroughDirection(t *testing.T) {
	g, err := New(conditionalConfig())
	require.NoError(t, err)

	path, err := g.FindShortestPath("CC3", "CC1", false)
	require.NoError(t, err)

	steps, err := g.MakeDirections(path)
	require.NoError(t, err)
	assert.NotContains(t, steps, "Switch over at CC2 Tengah")
}

func TestMakeDirectionsRejectsShortPaths(t *testing.T) {
	g, err := New(testConfig())
	require.NoError(t, err)

	_, err = g.MakeDirections(models.Path{Nodes: []string{"AA1"}})
	assert.ErrorIs(t, err, ErrInsufficientNodes)
}
