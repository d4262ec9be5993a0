package models

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

// ErrInvalidStationCode is returned when a station code string cannot be
// parsed into (line code, number, suffix).
var ErrInvalidStationCode = errors.New("invalid station code")

var stationCodeExpr = regexp.MustCompile(`^([A-Z]{2})([0-9]|[1-9][0-9]?)([A-Z]?)$`)

// StationCode is a parsed station code such as NS1, NS3A or STC.
//
// Number is -1 for purely alphabetic codes like "CG" or "STC", and 0 for
// pseudo station codes like "CE0Y" that stand in for a real station during
// a transitional network stage.
type StationCode struct {
	Line   string `json:"line"`
	Number int    `json:"number"`
	Suffix string `json:"suffix"`
}

// ParseStationCode splits a station code into its line code, station number
// and station number suffix. Purely alphabetic codes of 2 or 3 letters are
// valid and get number -1.
func ParseStationCode(code string) (StationCode, error) {
	if len(code) == 2 || len(code) == 3 {
		alphabetic := true
		for i := 0; i < len(code); i++ {
			if code[i] < 'A' || code[i] > 'Z' {
				alphabetic = false
				break
			}
		}
		if alphabetic {
			return StationCode{Line: code, Number: -1}, nil
		}
	}
	m := stationCodeExpr.FindStringSubmatch(code)
	if m == nil {
		return StationCode{}, fmt.Errorf("%w: %q", ErrInvalidStationCode, code)
	}
	number, err := strconv.Atoi(m[2])
	if err != nil {
		return StationCode{}, fmt.Errorf("%w: %q", ErrInvalidStationCode, code)
	}
	return StationCode{Line: m[1], Number: number, Suffix: m[3]}, nil
}

// String formats the code back into its compact form, e.g. NS3A.
func (c StationCode) String() string {
	if c.Number == -1 {
		return c.Line
	}
	return c.Line + strconv.Itoa(c.Number) + c.Suffix
}

// IsPseudo reports whether the code is a pseudo station code standing in
// for a real station under a different code, e.g. CE0Y for CC5.
func (c StationCode) IsPseudo() bool {
	return c.Number == 0
}

// Compare orders codes lexicographically on (line, number, suffix). This
// ordering defines the ascending travel direction along a line.
func (c StationCode) Compare(other StationCode) int {
	if c.Line != other.Line {
		if c.Line < other.Line {
			return -1
		}
		return 1
	}
	if c.Number != other.Number {
		if c.Number < other.Number {
			return -1
		}
		return 1
	}
	if c.Suffix != other.Suffix {
		if c.Suffix < other.Suffix {
			return -1
		}
		return 1
	}
	return 0
}

// Less reports whether c sorts before other in ascending line order.
func (c StationCode) Less(other StationCode) bool {
	return c.Compare(other) < 0
}

// CompareStationCodes orders two raw code strings the same way
// StationCode.Compare does. Unparseable codes fall back to plain string
// order; callers that must reject them already have.
func CompareStationCodes(a, b string) int {
	ca, errA := ParseStationCode(a)
	cb, errB := ParseStationCode(b)
	if errA != nil || errB != nil {
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		default:
			return 0
		}
	}
	return ca.Compare(cb)
}

// Station pairs a station code with its display name. A name shared by
// several codes marks an interchange.
type Station struct {
	Code StationCode `json:"code"`
	Name string      `json:"name"`
}

// NewStation parses code and attaches the name.
func NewStation(code, name string) (Station, error) {
	parsed, err := ParseStationCode(code)
	if err != nil {
		return Station{}, err
	}
	return Station{Code: parsed, Name: name}, nil
}

// EdgeMode distinguishes train segments from walking links. The zero value
// means travel by train.
type EdgeMode string

const (
	ModeTrain EdgeMode = ""
	ModeWalk  EdgeMode = "walk"
)

// SegmentSpec describes one undirected segment from the configuration,
// keyed by ascending station-code order. It is instantiated as two directed
// graph edges with direction-specific durations and dwell times, all in
// seconds.
type SegmentSpec struct {
	From         string   `json:"from"`
	To           string   `json:"to"`
	DurationAsc  int      `json:"duration_asc"`
	DurationDesc int      `json:"duration_desc"`
	DwellAsc     int      `json:"dwell_asc"`
	DwellDesc    int      `json:"dwell_desc"`
	EdgeType     string   `json:"edge_type,omitempty"`
	Mode         EdgeMode `json:"mode,omitempty"`
}

// Edge is one directed, weighted graph edge. Duration and Dwell are in
// seconds; EdgeType tags segments adjacent to conditional interchanges, or
// is "transfer" for interchange clique edges.
type Edge struct {
	To       string   `json:"to"`
	Duration int      `json:"duration"`
	Dwell    int      `json:"dwell"`
	EdgeType string   `json:"edge_type,omitempty"`
	Mode     EdgeMode `json:"mode,omitempty"`
}

// TransferEdgeType tags the directed clique edges inserted between the
// member stations of an interchange.
const TransferEdgeType = "transfer"

// IsTransfer reports whether the edge is an interchange transfer link
// rather than a train segment or walking link.
func (e Edge) IsTransfer() bool {
	return e.EdgeType == TransferEdgeType
}

// Path is the result of one shortest-path query. Owned by the caller; the
// graph never retains it.
type Path struct {
	Nodes     []string `json:"nodes"`
	Edges     []Edge   `json:"edges"`
	EdgeCosts []int    `json:"edge_costs"`
	TotalCost int      `json:"total_cost"`
}

// Coordinates is a station's position in decimal degrees.
type Coordinates struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lon"`
}
