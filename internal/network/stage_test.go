package network

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrtroute/mrtroute_core/internal/models"
)

func mustStation(t *testing.T, code, name string) models.Station {
	t.Helper()
	s, err := models.NewStation(code, name)
	require.NoError(t, err)
	return s
}

func TestFoldStages(t *testing.T) {
	changes := []StageChange{
		{
			Name: "opening",
			Added: []models.Station{
				mustStation(t, "NS1", "Jurong East"),
				mustStation(t, "NS2", "Bukit Batok"),
			},
		},
		{
			Name:  "extension",
			Added: []models.Station{mustStation(t, "NS3", "Bukit Gombak")},
		},
		{
			Name:    "rebuild",
			Added:   []models.Station{mustStation(t, "NS2", "Bukit Batok Interim")},
			Removed: []models.Station{mustStation(t, "NS2", "Bukit Batok")},
		},
	}

	early, err := FoldStages(changes, "opening")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"NS1": "Jurong East", "NS2": "Bukit Batok"}, early)

	late, err := FoldStages(changes, "rebuild")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"NS1": "Jurong East",
		"NS2": "Bukit Batok Interim",
		"NS3": "Bukit Gombak",
	}, late)
}

func TestFoldStagesUnknownStage(t *testing.T) {
	changes := []StageChange{{Name: "opening"}}
	_, err := FoldStages(changes, "phase_99")
	assert.ErrorIs(t, err, ErrUnknownStage)
}

func TestFoldStagesIntegrity(t *testing.T) {
	jurong := mustStation(t, "NS1", "Jurong East")

	t.Run("readded station", func(t *testing.T) {
		changes := []StageChange{
			{Name: "a", Added: []models.Station{jurong}},
			{Name: "b", Added: []models.Station{jurong}},
		}
		_, err := FoldStages(changes, "b")
		assert.ErrorIs(t, err, ErrStationReadded)
	})

	t.Run("removing absent station", func(t *testing.T) {
		changes := []StageChange{
			{Name: "a", Removed: []models.Station{jurong}},
		}
		_, err := FoldStages(changes, "a")
		assert.ErrorIs(t, err, ErrStationNotPresent)
	})

	t.Run("added and removed in same stage", func(t *testing.T) {
		changes := []StageChange{
			{Name: "a", Added: []models.Station{jurong}},
			{Name: "b", Added: []models.Station{jurong}, Removed: []models.Station{jurong}},
		}
		_, err := FoldStages(changes, "b")
		assert.ErrorIs(t, err, ErrAddRemoveConflict)
	})

	t.Run("code mapped to two names", func(t *testing.T) {
		changes := []StageChange{
			{Name: "a", Added: []models.Station{
				jurong,
				mustStation(t, "NS1", "Somewhere Else"),
			}},
		}
		_, err := FoldStages(changes, "a")
		assert.ErrorIs(t, err, ErrDuplicateStationCode)
	})
}
