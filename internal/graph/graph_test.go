package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrtroute/mrtroute_core/internal/models"
	"github.com/mrtroute/mrtroute_core/internal/network"
)

// testConfig is a 2-line toy network. Gamma (AA3/BB1) is an interchange,
// AA2 and BB2 are linked by a walking route, and DD1 is an isolated
// station on its own line.
func testConfig() Config {
	return Config{
		Stations: map[string]string{
			"AA1": "Alpha",
			"AA2": "Beta",
			"AA3": "Gamma",
			"BB1": "Gamma",
			"BB2": "Delta",
			"DD1": "Omega",
		},
		Segments: []models.SegmentSpec{
			{From: "AA1", To: "AA2", DurationAsc: 100, DurationDesc: 100, DwellAsc: 60, DwellDesc: 28},
			{From: "AA2", To: "AA3", DurationAsc: 120, DurationDesc: 120, DwellAsc: 28, DwellDesc: 45},
			{From: "BB1", To: "BB2", DurationAsc: 90, DurationDesc: 90, DwellAsc: 45, DwellDesc: 60},
			{From: "AA2", To: "BB2", DurationAsc: 300, DurationDesc: 300, Mode: models.ModeWalk},
		},
		TransferDurations: map[string]int{"Gamma": 420},
		Coordinates: map[string]models.Coordinates{
			"AA1": {Latitude: 1.30, Longitude: 103.80},
			"AA2": {Latitude: 1.31, Longitude: 103.81},
			"AA3": {Latitude: 1.32, Longitude: 103.82},
			"BB1": {Latitude: 1.32, Longitude: 103.82},
			"BB2": {Latitude: 1.32, Longitude: 103.83},
			"DD1": {Latitude: 1.40, Longitude: 103.90},
		},
	}
}

// conditionalConfig models a junction station CC2 where continuing from an
// "east" tagged segment onto a "west" tagged one requires changing trains.
func conditionalConfig() Config {
	return Config{
		Stations: map[string]string{"CC1": "Pasir", "CC2": "Tengah", "CC3": "Batok"},
		Segments: []models.SegmentSpec{
			{From: "CC1", To: "CC2", DurationAsc: 100, DurationDesc: 100, DwellAsc: 28, DwellDesc: 28, EdgeType: "east"},
			{From: "CC2", To: "CC3", DurationAsc: 100, DurationDesc: 100, DwellAsc: 28, DwellDesc: 28, EdgeType: "west"},
		},
		ConditionalTransfers: network.ConditionalTransferTable{"east": {"west": 360}},
		Coordinates: map[string]models.Coordinates{
			"CC1": {Latitude: 1.37, Longitude: 103.94},
			"CC2": {Latitude: 1.37, Longitude: 103.95},
			"CC3": {Latitude: 1.36, Longitude: 103.95},
		},
	}
}

func TestNewRejectsBadConfig(t *testing.T) {
	t.Run("no stations", func(t *testing.T) {
		_, err := New(Config{})
		assert.ErrorIs(t, err, ErrEmptyStations)
	})

	t.Run("unparseable station code", func(t *testing.T) {
		cfg := testConfig()
		cfg.Stations["not a code"] = "Nowhere"
		_, err := New(cfg)
		assert.ErrorIs(t, err, models.ErrInvalidStationCode)
	})

	t.Run("duration out of range", func(t *testing.T) {
		cfg := testConfig()
		cfg.Segments[0].DurationAsc = 4000
		_, err := New(cfg)
		assert.ErrorIs(t, err, ErrInvalidDuration)
	})

	t.Run("segment endpoint without station", func(t *testing.T) {
		cfg := testConfig()
		cfg.Segments = append(cfg.Segments, models.SegmentSpec{From: "ZZ1", To: "ZZ2", DurationAsc: 10, DurationDesc: 10})
		_, err := New(cfg)
		assert.ErrorIs(t, err, ErrUnnamedStation)
	})

	t.Run("interchange without transfer duration", func(t *testing.T) {
		cfg := testConfig()
		cfg.TransferDurations = nil
		_, err := New(cfg)
		assert.ErrorIs(t, err, ErrMissingTransferEntry)
	})
}

func TestFindShortestPathTrainOnly(t *testing.T) {
	g, err := New(testConfig())
	require.NoError(t, err)

	path, err := g.FindShortestPath("AA1", "BB2", false)
	require.NoError(t, err)

	assert.Equal(t, []string{"AA1", "AA2", "AA3", "BB1", "BB2"}, path.Nodes)
	// Each hop costs duration plus dwell; the AA3 -> BB1 hop is the
	// interchange transfer.
	assert.Equal(t, []int{160, 148, 465, 135}, path.EdgeCosts)
	assert.Equal(t, 908, path.TotalCost)
	assert.True(t, path.Edges[2].IsTransfer())
}

func TestFindShortestPathWithWalking(t *testing.T) {
	g, err := New(testConfig())
	require.NoError(t, err)

	path, err := g.FindShortestPath("AA1", "BB2", true)
	require.NoError(t, err)

	// Walking from Beta to Delta beats riding around via the interchange,
	// and walking legs carry no dwell time.
	assert.Equal(t, []string{"AA1", "AA2", "BB2"}, path.Nodes)
	assert.Equal(t, []int{160, 300}, path.EdgeCosts)
	assert.Equal(t, 460, path.TotalCost)
	assert.Equal(t, models.ModeWalk, path.Edges[1].Mode)
}

func TestFindShortestPathTrimsEndpointTransfers(t *testing.T) {
	g, err := New(testConfig())
	require.NoError(t, err)

	t.Run("journey ending at interchange", func(t *testing.T) {
		path, err := g.FindShortestPath("AA1", "BB1", false)
		require.NoError(t, err)
		assert.Equal(t, []string{"AA1", "AA2", "AA3", "BB1"}, path.Nodes)
		// The final AA3 -> BB1 hop is the same physical station; its
		// transfer cost is refunded.
		assert.Equal(t, []int{160, 148, 0}, path.EdgeCosts)
		assert.Equal(t, 308, path.TotalCost)
	})

	t.Run("journey starting at interchange", func(t *testing.T) {
		path, err := g.FindShortestPath("BB1", "AA1", false)
		require.NoError(t, err)
		assert.Equal(t, []string{"BB1", "AA3", "AA2", "AA1"}, path.Nodes)
		// The transfer itself is refunded but the departure dwell at AA3
		// is still paid.
		assert.Equal(t, []int{45, 165, 128}, path.EdgeCosts)
		assert.Equal(t, 338, path.TotalCost)
	})
}

func TestFindShortestPathSameStation(t *testing.T) {
	g, err := New(testConfig())
	require.NoError(t, err)

	path, err := g.FindShortestPath("AA2", "AA2", false)
	require.NoError(t, err)
	assert.Equal(t, []string{"AA2"}, path.Nodes)
	assert.Zero(t, path.TotalCost)
	assert.Empty(t, path.Edges)
}

func TestFindShortestPathErrors(t *testing.T) {
	g, err := New(testConfig())
	require.NoError(t, err)

	_, err = g.FindShortestPath("AA1", "ZZ9", false)
	assert.ErrorIs(t, err, ErrUnknownStation)

	_, err = g.FindShortestPath("CE0X", "AA1", false)
	assert.ErrorIs(t, err, models.ErrInvalidStationCode)

	_, err = g.FindShortestPath("AA1", "DD1", false)
	assert.ErrorIs(t, err, ErrNoPath)
}

func TestFindShortestPathConditionalTransferIsDirectional(t *testing.T) {
	g, err := New(conditionalConfig())
	require.NoError(t, err)

	// Passing CC2 from the east segment onto the west one costs the
	// conditional transfer on top of travel and dwell.
	path, err := g.FindShortestPath("CC1", "CC3", false)
	require.NoError(t, err)
	assert.Equal(t, []int{128, 488}, path.EdgeCosts)
	assert.Equal(t, 616, path.TotalCost)

	// The opposite direction is through-running.
	back, err := g.FindShortestPath("CC3", "CC1", false)
	require.NoError(t, err)
	assert.Equal(t, []int{128, 128}, back.EdgeCosts)
	assert.Equal(t, 256, back.TotalCost)
}

func TestNeighbours(t *testing.T) {
	g, err := New(testConfig())
	require.NoError(t, err)

	// Train segments only: the walking link to BB2 and the transfer to
	// AA3's twin are not adjacency.
	assert.ElementsMatch(t, []string{"AA1", "AA3"}, g.Neighbours("AA2"))
	assert.ElementsMatch(t, []string{"BB2"}, g.Neighbours("BB1"))
	assert.Empty(t, g.Neighbours("DD1"))
}

func TestRealCode(t *testing.T) {
	cfg := testConfig()
	cfg.Pseudonyms = map[string]string{"CE0X": "AA3"}
	g, err := New(cfg)
	require.NoError(t, err)

	assert.Equal(t, "AA3", g.RealCode("CE0X"))
	assert.Equal(t, "AA1", g.RealCode("AA1"))
}

func TestStationsIsACopy(t *testing.T) {
	g, err := New(testConfig())
	require.NoError(t, err)

	stations := g.Stations()
	stations["AA1"] = "Tampered"
	name, ok := g.StationName("AA1")
	require.True(t, ok)
	assert.Equal(t, "Alpha", name)
}
