package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrtroute/mrtroute_core/internal/graph"
	"github.com/mrtroute/mrtroute_core/internal/models"
	"github.com/mrtroute/mrtroute_core/internal/network"
)

func TestValidate(t *testing.T) {
	require.NoError(t, Validate())
}

func TestStages(t *testing.T) {
	stages := Stages()
	require.NotEmpty(t, stages)
	assert.Equal(t, "phase_1_1", stages[0])
	assert.Equal(t, "future", stages[len(stages)-1])
}

func TestSnapshotUnknownStage(t *testing.T) {
	_, err := Snapshot("phase_99")
	require.ErrorIs(t, err, network.ErrUnknownStage)
}

func TestSnapshotPhase11(t *testing.T) {
	cfg, err := Snapshot("phase_1_1")
	require.NoError(t, err)

	assert.Len(t, cfg.Stations, 5)
	assert.Equal(t, "Yio Chu Kang", cfg.Stations["NS15"])
	assert.Equal(t, "Toa Payoh", cfg.Stations["NS19"])
	require.Len(t, cfg.Segments, 4)

	first := findSegment(t, cfg.Segments, "NS15", "NS16")
	assert.Equal(t, 115, first.DurationAsc)
	assert.Equal(t, network.DwellTerminal, first.DwellAsc, "NS15 is a terminal")
	assert.Equal(t, network.DwellNonInterchange, first.DwellDesc)
	assert.Empty(t, cfg.ConditionalTransfers)
}

func TestSnapshotCombinedNorthSouthEastWest(t *testing.T) {
	// Before the East-West Line opened, EWL stations ran through as part
	// of the North-South Line.
	cfg, err := Snapshot("phase_1_2")
	require.NoError(t, err)

	seg := findSegment(t, cfg.Segments, "EW15", "NS26")
	assert.Equal(t, 105, seg.DurationAsc)
	assert.True(t, cfg.NonLinearTerminals.Contains("EW", "EW16"))
	assert.True(t, cfg.NonLinearTerminals.Contains("NS", "NS15"))

	// Once EW14 opens the lines split and the through-segment disappears.
	cfg, err = Snapshot("phase_2a_1")
	require.NoError(t, err)
	for _, seg := range cfg.Segments {
		assert.False(t, seg.From == "EW15" && seg.To == "NS26")
	}
	assert.False(t, cfg.NonLinearTerminals.Contains("EW", "EW16"))
}

func TestSnapshotBukitPanjangLRT(t *testing.T) {
	cfg, err := Snapshot("bplrt")
	require.NoError(t, err)

	tests := []struct {
		from, to           string
		edgeType           string
		dwellAsc, dwellDesc int
	}{
		// BP6 behaves as an interchange on conditional segments, and BP1
		// and BP14 are looped-line terminals.
		{"BP5", "BP6", "bukit_panjang_main", network.DwellNonInterchange, network.DwellInterchange},
		{"BP6", "BP13", "bukit_panjang_service_a", network.DwellInterchange, network.DwellNonInterchange},
		{"BP6", "BP7", "bukit_panjang_service_b", network.DwellInterchange, network.DwellNonInterchange},
		{"BP6", "BP14", "bukit_panjang_service_c", network.DwellInterchange, network.DwellTerminal},
	}
	for _, tc := range tests {
		t.Run(tc.from+"-"+tc.to, func(t *testing.T) {
			seg := findSegment(t, cfg.Segments, tc.from, tc.to)
			assert.Equal(t, tc.edgeType, seg.EdgeType)
			assert.Equal(t, tc.dwellAsc, seg.DwellAsc)
			assert.Equal(t, tc.dwellDesc, seg.DwellDesc)
		})
	}

	// BP13 and BP14 are adjacent by code only.
	for _, seg := range cfg.Segments {
		assert.False(t, seg.From == "BP13" && seg.To == "BP14")
	}

	assert.True(t, cfg.ConditionalTransfers.IsTransfer("bukit_panjang_service_a", "bukit_panjang_service_b"))
	extra, ok := cfg.ConditionalTransfers.ExtraDuration("bukit_panjang_main", "bukit_panjang_service_c")
	require.True(t, ok)
	assert.Equal(t, 420, extra)
}

func TestSnapshotRestrictsConditionalTransfers(t *testing.T) {
	// Sengkang LRT east loop exists alone: no west loop edge types yet,
	// so no conditional transfers either.
	cfg, err := Snapshot("sklrt_east_loop")
	require.NoError(t, err)
	assert.Empty(t, cfg.ConditionalTransfers)

	cfg, err = Snapshot("pglrt_east_loop_and_sklrt_west_loop")
	require.NoError(t, err)
	assert.True(t, cfg.ConditionalTransfers.IsTransfer("sengkang_east_loop", "sengkang_west_loop"))
}

func TestSnapshotWalkingRoutes(t *testing.T) {
	cfg, err := Snapshot("dtl_3")
	require.NoError(t, err)

	var walks int
	for _, seg := range cfg.Segments {
		if seg.Mode == models.ModeWalk {
			walks++
			assert.Zero(t, seg.DwellAsc)
			assert.Zero(t, seg.DwellDesc)
		}
	}
	assert.Positive(t, walks)
}

func TestSnapshotCircleLineLoop(t *testing.T) {
	cfg, err := Snapshot("ccl_6")
	require.NoError(t, err)
	assert.True(t, cfg.NonLinearTerminals.Contains("CC", "CC1"))

	seg := findSegment(t, cfg.Segments, "CC4", "CC34")
	assert.Equal(t, "promenade_south", seg.EdgeType)
}

func TestEveryStageBuildsAGraph(t *testing.T) {
	for _, stage := range Stages() {
		t.Run(stage, func(t *testing.T) {
			cfg, err := Snapshot(stage)
			require.NoError(t, err)
			_, err = graph.New(cfg)
			require.NoError(t, err)
		})
	}
}

func findSegment(t *testing.T, segments []models.SegmentSpec, from, to string) models.SegmentSpec {
	t.Helper()
	for _, seg := range segments {
		if seg.From == from && seg.To == to {
			return seg
		}
	}
	t.Fatalf("segment %s-%s not found", from, to)
	return models.SegmentSpec{}
}
