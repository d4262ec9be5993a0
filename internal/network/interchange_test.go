package network

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrtroute/mrtroute_core/internal/models"
)

func testStations(t *testing.T, pairs ...[2]string) []models.Station {
	t.Helper()
	stations := make([]models.Station, 0, len(pairs))
	for _, p := range pairs {
		s, err := models.NewStation(p[0], p[1])
		require.NoError(t, err)
		stations = append(stations, s)
	}
	return stations
}

func TestBuildInterchangeIndex(t *testing.T) {
	stations := testStations(t,
		[2]string{"NS24", "Dhoby Ghaut"},
		[2]string{"NE6", "Dhoby Ghaut"},
		[2]string{"CC1", "Dhoby Ghaut"},
		[2]string{"NS25", "City Hall"},
		[2]string{"EW13", "City Hall"},
		[2]string{"NS26", "Raffles Place"},
	)
	idx, err := BuildInterchangeIndex(stations)
	require.NoError(t, err)

	assert.True(t, idx.IsBoundary("NS24", "CC1"))
	assert.True(t, idx.IsBoundary("NE6", "NS24"))
	assert.False(t, idx.IsBoundary("NS24", "NS25"))
	assert.False(t, idx.IsBoundary("NS24", "NS24"))
	assert.False(t, idx.IsBoundary("NS26", "NS25"))

	assert.True(t, idx.IsInterchange("EW13"))
	assert.False(t, idx.IsInterchange("NS26"))

	assert.True(t, idx.HasName("City Hall"))
	assert.False(t, idx.HasName("Raffles Place"))

	// Group members in ascending code order, groups in name order.
	assert.Equal(t, [][]string{
		{"EW13", "NS25"},
		{"CC1", "NE6", "NS24"},
	}, idx.Groups())

	members := idx.MemberCodes()
	assert.Len(t, members, 5)
	assert.Contains(t, members, "NE6")
	assert.NotContains(t, members, "NS26")
}

func TestBuildInterchangeIndexRejectsDuplicateLine(t *testing.T) {
	stations := testStations(t,
		[2]string{"NS24", "Dhoby Ghaut"},
		[2]string{"NS25", "Dhoby Ghaut"},
	)
	_, err := BuildInterchangeIndex(stations)
	assert.ErrorIs(t, err, ErrDuplicateLineAtInterchange)
}
