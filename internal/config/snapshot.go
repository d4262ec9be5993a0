// Package config loads network snapshot files and station coordinates.
package config

import (
	"fmt"
	"os"
	"sort"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/mrtroute/mrtroute_core/internal/graph"
	"github.com/mrtroute/mrtroute_core/internal/models"
	"github.com/mrtroute/mrtroute_core/internal/network"
)

// SchemaVersion is the current snapshot file schema.
const SchemaVersion = 1

// SnapshotFile is the on-disk YAML form of a network snapshot.
type SnapshotFile struct {
	Schema   int               `yaml:"schema" validate:"eq=1"`
	Stations map[string]string `yaml:"stations" validate:"required,min=1"`
	Segments []SegmentEntry    `yaml:"segments" validate:"required,min=1,dive"`
	// Transfers maps interchange station names to transfer durations.
	Transfers map[string]int `yaml:"transfers"`
	// ConditionalTransfers maps ordered (previous, next) edge type pairs
	// to the extra transfer duration through a conditional interchange.
	ConditionalTransfers map[string]map[string]int `yaml:"conditional_transfers,omitempty"`
	// NonLinearLineTerminals lists the terminals of looped lines.
	NonLinearLineTerminals map[string][]string `yaml:"non_linear_line_terminals,omitempty"`
	// Pseudonyms maps pseudo station codes to the real codes they stand for.
	Pseudonyms map[string]string `yaml:"pseudonyms,omitempty"`
}

// SegmentEntry is one train or walking link in a snapshot file.
type SegmentEntry struct {
	From         string `yaml:"from" validate:"required"`
	To           string `yaml:"to" validate:"required"`
	DurationAsc  int    `yaml:"duration_asc" validate:"min=0,max=3600"`
	DurationDesc int    `yaml:"duration_desc" validate:"min=0,max=3600"`
	DwellAsc     int    `yaml:"dwell_asc" validate:"min=0,max=3600"`
	DwellDesc    int    `yaml:"dwell_desc" validate:"min=0,max=3600"`
	EdgeType     string `yaml:"edge_type,omitempty"`
	Mode         string `yaml:"mode,omitempty" validate:"omitempty,oneof=walk"`
}

// LoadSnapshot reads and validates a YAML snapshot file and converts it
// into a graph config. Coordinates are loaded separately; see
// LoadCoordinates.
func LoadSnapshot(path string) (graph.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return graph.Config{}, fmt.Errorf("read snapshot: %w", err)
	}
	var file SnapshotFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return graph.Config{}, fmt.Errorf("parse snapshot %s: %w", path, err)
	}
	if err := validator.New().Struct(file); err != nil {
		return graph.Config{}, fmt.Errorf("invalid snapshot %s: %w", path, err)
	}
	return file.ToGraphConfig(), nil
}

// ToGraphConfig converts the file form into graph.Config.
func (f SnapshotFile) ToGraphConfig() graph.Config {
	segments := make([]models.SegmentSpec, len(f.Segments))
	for i, s := range f.Segments {
		segments[i] = models.SegmentSpec{
			From:         s.From,
			To:           s.To,
			DurationAsc:  s.DurationAsc,
			DurationDesc: s.DurationDesc,
			DwellAsc:     s.DwellAsc,
			DwellDesc:    s.DwellDesc,
			EdgeType:     s.EdgeType,
			Mode:         models.EdgeMode(s.Mode),
		}
	}
	nonLinear := make(network.NonLinearTerminals, len(f.NonLinearLineTerminals))
	for line, codes := range f.NonLinearLineTerminals {
		set := make(map[string]struct{}, len(codes))
		for _, code := range codes {
			set[code] = struct{}{}
		}
		nonLinear[line] = set
	}
	conditional := make(network.ConditionalTransferTable, len(f.ConditionalTransfers))
	for prev, inner := range f.ConditionalTransfers {
		conditional[prev] = inner
	}
	return graph.Config{
		Stations:             f.Stations,
		Segments:             segments,
		TransferDurations:    f.Transfers,
		ConditionalTransfers: conditional,
		NonLinearTerminals:   nonLinear,
		Pseudonyms:           f.Pseudonyms,
	}
}

// FromGraphConfig converts a graph config into its file form, ready to be
// marshalled. The inverse of ToGraphConfig.
func FromGraphConfig(cfg graph.Config) SnapshotFile {
	segments := make([]SegmentEntry, len(cfg.Segments))
	for i, s := range cfg.Segments {
		segments[i] = SegmentEntry{
			From:         s.From,
			To:           s.To,
			DurationAsc:  s.DurationAsc,
			DurationDesc: s.DurationDesc,
			DwellAsc:     s.DwellAsc,
			DwellDesc:    s.DwellDesc,
			EdgeType:     s.EdgeType,
			Mode:         string(s.Mode),
		}
	}
	nonLinear := make(map[string][]string, len(cfg.NonLinearTerminals))
	for line, codes := range cfg.NonLinearTerminals {
		for code := range codes {
			nonLinear[line] = append(nonLinear[line], code)
		}
		sort.Strings(nonLinear[line])
	}
	return SnapshotFile{
		Schema:                 SchemaVersion,
		Stations:               cfg.Stations,
		Segments:               segments,
		Transfers:              cfg.TransferDurations,
		ConditionalTransfers:   cfg.ConditionalTransfers,
		NonLinearLineTerminals: nonLinear,
		Pseudonyms:             cfg.Pseudonyms,
	}
}

// SaveSnapshot writes a snapshot file in YAML form.
func SaveSnapshot(path string, cfg graph.Config) error {
	data, err := yaml.Marshal(FromGraphConfig(cfg))
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}
