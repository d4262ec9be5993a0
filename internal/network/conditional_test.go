package network

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConditionalSegmentValidate(t *testing.T) {
	good := ConditionalSegment{
		Pair:        [2]string{"STC", "SE1"},
		EdgeType:    "sengkang_east_loop",
		Interchange: "STC",
	}
	assert.NoError(t, good.Validate())

	bad := []ConditionalSegment{
		{Pair: [2]string{"STC", "SE1"}, Interchange: "STC"},
		{Pair: [2]string{"STC", "STC"}, EdgeType: "x", Interchange: "STC"},
		{Pair: [2]string{"SE1", "SE2"}, EdgeType: "x", Interchange: "STC"},
	}
	for _, seg := range bad {
		assert.ErrorIs(t, seg.Validate(), ErrInvalidConditionalSegment)
	}
}

func TestConditionalTransferTableIsDirectional(t *testing.T) {
	table := ConditionalTransferTable{
		"bahar_east": {"bahar_west": 360, "bahar_south": 360},
		"bahar_west": {"bahar_south": 360},
	}

	d, ok := table.ExtraDuration("bahar_east", "bahar_west")
	require.True(t, ok)
	assert.Equal(t, 360, d)

	// Reverse direction is through-running.
	assert.False(t, table.IsTransfer("bahar_south", "bahar_west"))
	assert.False(t, table.IsTransfer("bahar_west", "bahar_east"))

	// Untagged edges never trigger a conditional transfer.
	assert.False(t, table.IsTransfer("", "bahar_west"))
	assert.False(t, table.IsTransfer("bahar_east", ""))
}

func TestConditionalTransferTableRestrict(t *testing.T) {
	table := ConditionalTransferTable{
		"bahar_east": {"bahar_west": 360, "bahar_south": 360},
		"bahar_west": {"bahar_east": 360},
	}
	present := map[string]struct{}{"bahar_east": {}, "bahar_west": {}}

	restricted := table.Restrict(present)
	assert.True(t, restricted.IsTransfer("bahar_east", "bahar_west"))
	assert.True(t, restricted.IsTransfer("bahar_west", "bahar_east"))
	assert.False(t, restricted.IsTransfer("bahar_east", "bahar_south"))

	assert.Empty(t, table.Restrict(nil))
}

func TestActiveConditionalSegments(t *testing.T) {
	segments := []ConditionalSegment{
		{Pair: [2]string{"STC", "SE1"}, EdgeType: "sengkang_east_loop", Interchange: "STC"},
		{Pair: [2]string{"STC", "SW2"}, EdgeType: "sengkang_west_loop", Interchange: "STC", DefunctWith: "SW1"},
		{Pair: [2]string{"STC", "SW4"}, EdgeType: "sengkang_west_loop", Interchange: "STC", DefunctWith: "SW2"},
	}
	stations := map[string]string{
		"STC": "Sengkang",
		"SE1": "Compassvale",
		"SW2": "Fernvale",
		"SW4": "Thanggam",
	}

	active := ActiveConditionalSegments(segments, stations)
	require.Len(t, active, 2)
	assert.Equal(t, [2]string{"STC", "SE1"}, active[0].Pair)
	// STC-SW2 survives because SW1 has not opened; STC-SW4 is defunct
	// because SW2 exists.
	assert.Equal(t, [2]string{"STC", "SW2"}, active[1].Pair)

	// A segment whose far endpoint is absent is dropped.
	delete(stations, "SE1")
	active = ActiveConditionalSegments(segments, stations)
	require.Len(t, active, 1)
	assert.Equal(t, [2]string{"STC", "SW2"}, active[0].Pair)
}
