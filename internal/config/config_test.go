package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrtroute/mrtroute_core/internal/models"
)

const sampleSnapshot = `
schema: 1
stations:
  NS1: Jurong East
  NS2: Bukit Batok
  EW24: Jurong East
segments:
  - from: NS1
    to: NS2
    duration_asc: 120
    duration_desc: 120
    dwell_asc: 60
    dwell_desc: 28
transfers:
  Jurong East: 420
`

func TestLoadSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "network.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleSnapshot), 0o644))

	cfg, err := LoadSnapshot(path)
	require.NoError(t, err)

	assert.Equal(t, "Jurong East", cfg.Stations["NS1"])
	require.Len(t, cfg.Segments, 1)
	assert.Equal(t, "NS1", cfg.Segments[0].From)
	assert.Equal(t, 120, cfg.Segments[0].DurationAsc)
	assert.Equal(t, 60, cfg.Segments[0].DwellAsc)
	assert.Equal(t, 420, cfg.TransferDurations["Jurong East"])
}

func TestLoadSnapshotRejectsBadFiles(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"wrong schema", "schema: 2\nstations:\n  NS1: Jurong East\nsegments:\n  - {from: NS1, to: NS2}\n"},
		{"no stations", "schema: 1\nsegments:\n  - {from: NS1, to: NS2}\n"},
		{"bad mode", "schema: 1\nstations:\n  NS1: Jurong East\n  NS2: Bukit Batok\nsegments:\n  - {from: NS1, to: NS2, mode: teleport}\n"},
		{"not yaml", "{{{{"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "network.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tc.body), 0o644))
			_, err := LoadSnapshot(path)
			assert.Error(t, err)
		})
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "network.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleSnapshot), 0o644))
	cfg, err := LoadSnapshot(path)
	require.NoError(t, err)

	out := filepath.Join(t.TempDir(), "saved.yaml")
	require.NoError(t, SaveSnapshot(out, cfg))
	loaded, err := LoadSnapshot(out)
	require.NoError(t, err)
	assert.Equal(t, cfg.Stations, loaded.Stations)
	assert.Equal(t, cfg.Segments, loaded.Segments)
	assert.Equal(t, cfg.TransferDurations, loaded.TransferDurations)
}

func TestLoadCoordinates(t *testing.T) {
	body := "station_code,station_name,latitude,longitude\n" +
		"NS1,Jurong East,1.333153,103.742286\n" +
		"CC5,Nicoll Highway,1.299697,103.863611\n"
	path := filepath.Join(t.TempDir(), "coordinates.csv")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	coordinates, err := LoadCoordinates(path, map[string]string{"CE0Y": "CC5"})
	require.NoError(t, err)

	assert.Equal(t, models.Coordinates{Latitude: 1.333153, Longitude: 103.742286}, coordinates["NS1"])
	assert.Equal(t, coordinates["CC5"], coordinates["CE0Y"], "alias shares real code's position")
	_, ok := coordinates["NS2"]
	assert.False(t, ok)
}

func TestLoadCoordinatesRejectsBadRows(t *testing.T) {
	body := "station_code,station_name,latitude,longitude\nNS1,Jurong East,not-a-number,103.742286\n"
	path := filepath.Join(t.TempDir(), "coordinates.csv")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	_, err := LoadCoordinates(path, nil)
	assert.ErrorIs(t, err, ErrBadCoordinatesRow)
}
