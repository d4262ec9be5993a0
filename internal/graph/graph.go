package graph

import (
	"errors"
	"fmt"
	"sort"

	"github.com/mrtroute/mrtroute_core/internal/models"
	"github.com/mrtroute/mrtroute_core/internal/network"
)

// Durations and dwell times are wall-clock seconds; nothing on the network
// takes longer than an hour.
const maxSegmentSeconds = 3600

var (
	// ErrEmptyStations is returned when the snapshot has no stations.
	ErrEmptyStations = errors.New("stations must not be empty")
	// ErrInvalidDuration is returned for a segment duration or dwell time
	// outside [0, 3600] seconds.
	ErrInvalidDuration = errors.New("duration out of range")
	// ErrUnnamedStation is returned when a segment endpoint has no entry
	// in the station map.
	ErrUnnamedStation = errors.New("station has no name")
	// ErrMissingTransferEntry is returned when an interchange has no
	// configured transfer duration.
	ErrMissingTransferEntry = errors.New("missing transfer duration entry")
	// ErrUnknownStation is returned for query endpoints not in the graph.
	ErrUnknownStation = errors.New("unknown station")
	// ErrNoCoordinates is returned by distance metrics when a station on
	// the path has no registered position.
	ErrNoCoordinates = errors.New("no coordinates for station")
	// ErrNoPath is returned when the requested stations are not connected
	// in the selected graph.
	ErrNoPath = errors.New("no path between stations")
	// ErrInsufficientNodes is returned when a degenerate path of fewer
	// than 2 stations is passed to rendering or distance functions.
	ErrInsufficientNodes = errors.New("at least 2 stations needed for journey")
)

// Config is the immutable input of a RailGraph. All durations are seconds.
type Config struct {
	// Stations maps station code to station name. Must not be empty.
	Stations map[string]string
	// Segments are the train and walking links between adjacent stations,
	// keyed in ascending station-code order.
	Segments []models.SegmentSpec
	// TransferDurations maps an interchange station name to the time taken
	// to switch lines there.
	TransferDurations map[string]int
	// ConditionalTransfers is the ordered edge-type pair table for
	// conditional interchange transfers.
	ConditionalTransfers network.ConditionalTransferTable
	// NonLinearTerminals registers terminals of looped/branching lines.
	NonLinearTerminals network.NonLinearTerminals
	// Pseudonyms maps pseudo/missing station codes to the real codes used
	// for coordinate lookup and display, e.g. CE0Y -> CC5.
	Pseudonyms map[string]string
	// Coordinates maps station codes to positions for distance metrics.
	Coordinates map[string]models.Coordinates
}

// RailGraph is a directed weighted multigraph over station codes, built
// once from a network snapshot. All queries are pure reads; a single
// instance is safe for unlimited concurrent queries.
type RailGraph struct {
	stations          map[string]string
	full              map[string][]models.Edge // includes walking edges
	trainOnly         map[string][]models.Edge
	interchanges      *network.InterchangeIndex
	conditional       network.ConditionalTransferTable
	nonLinear         network.NonLinearTerminals
	pseudonyms        map[string]string
	coordinates       map[string]models.Coordinates
	transferDurations map[string]int
}

// New validates the snapshot and builds the graph. Construction either
// completes or fails; a partially built graph is never returned.
func New(cfg Config) (*RailGraph, error) {
	if len(cfg.Stations) == 0 {
		return nil, ErrEmptyStations
	}

	stations := make([]models.Station, 0, len(cfg.Stations))
	for code, name := range cfg.Stations {
		station, err := models.NewStation(code, name)
		if err != nil {
			return nil, err
		}
		stations = append(stations, station)
	}
	sort.Slice(stations, func(i, j int) bool {
		return stations[i].Code.Less(stations[j].Code)
	})

	interchanges, err := network.BuildInterchangeIndex(stations)
	if err != nil {
		return nil, err
	}

	g := &RailGraph{
		stations:          cfg.Stations,
		full:              make(map[string][]models.Edge),
		trainOnly:         make(map[string][]models.Edge),
		interchanges:      interchanges,
		conditional:       cfg.ConditionalTransfers,
		nonLinear:         cfg.NonLinearTerminals,
		pseudonyms:        cfg.Pseudonyms,
		coordinates:       resolveCoordinates(cfg.Coordinates, cfg.Pseudonyms),
		transferDurations: cfg.TransferDurations,
	}

	for _, seg := range cfg.Segments {
		if err := g.addSegment(seg); err != nil {
			return nil, err
		}
	}

	// Fully connect every interchange with symmetric transfer edges.
	// Direction-specific interchange transfer times are not modeled yet.
	for _, group := range interchanges.Groups() {
		name := cfg.Stations[group[0]]
		duration, ok := cfg.TransferDurations[name]
		if !ok {
			return nil, fmt.Errorf("%w: interchange %s", ErrMissingTransferEntry, name)
		}
		for _, a := range group {
			for _, b := range group {
				if a == b {
					continue
				}
				edge := models.Edge{
					To:       b,
					Duration: duration,
					Dwell:    network.DwellInterchange,
					EdgeType: models.TransferEdgeType,
				}
				g.full[a] = append(g.full[a], edge)
				g.trainOnly[a] = append(g.trainOnly[a], edge)
			}
		}
	}

	return g, nil
}

func (g *RailGraph) addSegment(seg models.SegmentSpec) error {
	for _, field := range []struct {
		name  string
		value int
	}{
		{"duration_asc", seg.DurationAsc},
		{"duration_desc", seg.DurationDesc},
		{"dwell_asc", seg.DwellAsc},
		{"dwell_desc", seg.DwellDesc},
	} {
		if field.value < 0 || field.value > maxSegmentSeconds {
			return fmt.Errorf("%w: segment %s-%s %s = %d",
				ErrInvalidDuration, seg.From, seg.To, field.name, field.value)
		}
	}
	for _, code := range []string{seg.From, seg.To} {
		if _, ok := g.stations[code]; !ok {
			return fmt.Errorf("%w: %s in segment %s-%s", ErrUnnamedStation, code, seg.From, seg.To)
		}
	}
	if g.interchanges.IsBoundary(seg.From, seg.To) {
		if _, ok := g.transferDurations[g.stations[seg.From]]; !ok {
			return fmt.Errorf("%w: segment %s-%s crosses interchange %s",
				ErrMissingTransferEntry, seg.From, seg.To, g.stations[seg.From])
		}
	}

	lower, higher := seg.From, seg.To
	if models.CompareStationCodes(lower, higher) > 0 {
		lower, higher = higher, lower
	}
	ascending := models.Edge{
		To:       higher,
		Duration: seg.DurationAsc,
		Dwell:    seg.DwellAsc,
		EdgeType: seg.EdgeType,
		Mode:     seg.Mode,
	}
	descending := models.Edge{
		To:       lower,
		Duration: seg.DurationDesc,
		Dwell:    seg.DwellDesc,
		EdgeType: seg.EdgeType,
		Mode:     seg.Mode,
	}
	g.full[lower] = append(g.full[lower], ascending)
	g.full[higher] = append(g.full[higher], descending)
	if seg.Mode != models.ModeWalk {
		g.trainOnly[lower] = append(g.trainOnly[lower], ascending)
		g.trainOnly[higher] = append(g.trainOnly[higher], descending)
	}
	return nil
}

func resolveCoordinates(coordinates map[string]models.Coordinates, pseudonyms map[string]string) map[string]models.Coordinates {
	resolved := make(map[string]models.Coordinates, len(coordinates)+len(pseudonyms))
	for code, c := range coordinates {
		resolved[code] = c
	}
	for alias, real := range pseudonyms {
		if _, ok := resolved[alias]; ok {
			continue
		}
		if c, ok := resolved[real]; ok {
			resolved[alias] = c
		}
	}
	return resolved
}

// StationName returns the display name of a station code.
func (g *RailGraph) StationName(code string) (string, bool) {
	name, ok := g.stations[code]
	return name, ok
}

// Stations returns the station map of the underlying snapshot.
func (g *RailGraph) Stations() map[string]string {
	out := make(map[string]string, len(g.stations))
	for code, name := range g.stations {
		out[code] = name
	}
	return out
}

// RealCode resolves pseudo station codes to the real code they stand for.
// Other codes map to themselves.
func (g *RailGraph) RealCode(code string) string {
	if real, ok := g.pseudonyms[code]; ok {
		return real
	}
	return code
}

// IsInterchangeBoundary reports whether the two codes belong to the same
// interchange.
func (g *RailGraph) IsInterchangeBoundary(a, b string) bool {
	return g.interchanges.IsBoundary(a, b)
}

// Interchanges exposes the snapshot's interchange index.
func (g *RailGraph) Interchanges() *network.InterchangeIndex {
	return g.interchanges
}

// NonLinearTerminals exposes the registered terminals of non-linear lines.
func (g *RailGraph) NonLinearTerminals() network.NonLinearTerminals {
	return g.nonLinear
}

// ConditionalTransfers exposes the active conditional transfer table.
func (g *RailGraph) ConditionalTransfers() network.ConditionalTransferTable {
	return g.conditional
}

// Neighbours returns the stations reachable from code over train segments,
// excluding interchange transfer links. Implements network.Neighbourhood
// for terminal resolution.
func (g *RailGraph) Neighbours(code string) []string {
	edges := g.trainOnly[code]
	out := make([]string, 0, len(edges))
	seen := make(map[string]struct{}, len(edges))
	for _, e := range edges {
		if e.IsTransfer() {
			continue
		}
		if _, ok := seen[e.To]; ok {
			continue
		}
		seen[e.To] = struct{}{}
		out = append(out, e.To)
	}
	return out
}

// ApproachingTerminal resolves the terminal a train through start towards
// end is heading for. See network.ApproachingTerminal.
func (g *RailGraph) ApproachingTerminal(start, end string) (string, error) {
	return network.ApproachingTerminal(g, g.nonLinear, start, end)
}

func (g *RailGraph) edges(code string, walk bool) []models.Edge {
	if walk {
		return g.full[code]
	}
	return g.trainOnly[code]
}
