package network

import (
	"errors"
	"fmt"
	"sort"

	"github.com/mrtroute/mrtroute_core/internal/models"
)

var (
	// ErrSameStation is returned when a directional terminal query names
	// the same station twice.
	ErrSameStation = errors.New("start and end must be different stations")
	// ErrLineMismatch is returned when a directional terminal query on a
	// linear line spans two different line codes.
	ErrLineMismatch = errors.New("start and end must be on the same line")
)

// Neighbourhood provides station adjacency for terminal resolution. The
// rail graph implements it over its train-only edges.
type Neighbourhood interface {
	// Neighbours returns every station directly linked to code.
	Neighbours(code string) []string
}

// NonLinearTerminals maps a non-linear (looped or branching) line code to
// its fixed terminal station codes. For such lines the degree heuristic is
// meaningless: every station on a loop has exactly two neighbours.
type NonLinearTerminals map[string]map[string]struct{}

// Contains reports whether station code is a registered terminal of line.
func (t NonLinearTerminals) Contains(line, code string) bool {
	codes, ok := t[line]
	if !ok {
		return false
	}
	_, ok = codes[code]
	return ok
}

// ApproachingTerminal walks the line from start in the direction implied by
// the ordering of start and end, and returns the dead-end station a train
// through start towards end is heading for. It returns "" with no error on
// non-linear lines, where a directional walk would never terminate.
func ApproachingTerminal(graph Neighbourhood, nonLinear NonLinearTerminals, start, end string) (string, error) {
	if start == end {
		return "", fmt.Errorf("%w: got %s twice", ErrSameStation, start)
	}
	startCode, err := models.ParseStationCode(start)
	if err != nil {
		return "", err
	}
	endCode, err := models.ParseStationCode(end)
	if err != nil {
		return "", err
	}
	if _, ok := nonLinear[startCode.Line]; ok {
		return "", nil
	}
	if startCode.Line != endCode.Line {
		return "", fmt.Errorf("%w: got %s and %s", ErrLineMismatch, startCode.Line, endCode.Line)
	}
	ascending := startCode.Less(endCode)

	// Greedy walk through same-line neighbours until a dead end. Only
	// well-defined on acyclic line topologies; the non-linear check above
	// rules the cyclic ones out.
	current := start
	for {
		stations := []string{current}
		for _, neighbour := range graph.Neighbours(current) {
			code, err := models.ParseStationCode(neighbour)
			if err != nil {
				continue
			}
			if code.Line == startCode.Line {
				stations = append(stations, neighbour)
			}
		}
		sort.Slice(stations, func(i, j int) bool {
			return models.CompareStationCodes(stations[i], stations[j]) < 0
		})
		pos := -1
		for i, s := range stations {
			if s == current {
				pos = i
				break
			}
		}
		if ascending {
			pos++
		} else {
			pos--
		}
		if pos < 0 || pos >= len(stations) {
			return current, nil
		}
		current = stations[pos]
	}
}

// Terminals identifies terminal stations from a uni-directional adjacency
// matrix. After bidirectionalizing, a station with fewer than 2 neighbours
// is a terminal, as is any purely alphabetic station code. For non-linear
// lines the explicit terminal registration is authoritative instead.
func Terminals(nonLinear NonLinearTerminals, adjacency map[string][]string) map[string]struct{} {
	bidirectional := make(map[string]map[string]struct{})
	link := func(a, b string) {
		if bidirectional[a] == nil {
			bidirectional[a] = make(map[string]struct{})
		}
		bidirectional[a][b] = struct{}{}
	}
	for from, tos := range adjacency {
		for _, to := range tos {
			link(from, to)
			link(to, from)
		}
	}

	terminals := make(map[string]struct{})
	for code, neighbours := range bidirectional {
		parsed, err := models.ParseStationCode(code)
		if err != nil {
			continue
		}
		if _, ok := nonLinear[parsed.Line]; ok {
			if nonLinear.Contains(parsed.Line, code) {
				terminals[code] = struct{}{}
			}
			continue
		}
		if len(neighbours) < 2 || parsed.Number == -1 {
			terminals[code] = struct{}{}
		}
	}
	return terminals
}
