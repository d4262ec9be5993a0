package network

import (
	"errors"
	"fmt"
	"sort"

	"github.com/mrtroute/mrtroute_core/internal/models"
)

// ErrDuplicateLineAtInterchange is returned when two stations sharing a
// name also share a line code. An interchange has at most one platform set
// per line.
var ErrDuplicateLineAtInterchange = errors.New("duplicate line at interchange")

// InterchangeIndex groups stations sharing a name into interchange sets.
// Built once per network snapshot and read-only afterwards.
type InterchangeIndex struct {
	groups [][]string          // member codes per interchange, ascending
	member map[string]int      // code -> index into groups
	names  map[string]struct{} // interchange station names
}

// BuildInterchangeIndex groups stations by name. Any group of two or more
// codes is an interchange.
func BuildInterchangeIndex(stations []models.Station) (*InterchangeIndex, error) {
	byName := make(map[string][]models.Station)
	for _, s := range stations {
		byName[s.Name] = append(byName[s.Name], s)
	}

	idx := &InterchangeIndex{
		member: make(map[string]int),
		names:  make(map[string]struct{}),
	}
	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		group := byName[name]
		if len(group) < 2 {
			continue
		}
		lines := make(map[string]string, len(group))
		codes := make([]string, 0, len(group))
		for _, s := range group {
			if prev, ok := lines[s.Code.Line]; ok {
				return nil, fmt.Errorf("%w: %s and %s both serve line %s at %s",
					ErrDuplicateLineAtInterchange, prev, s.Code, s.Code.Line, name)
			}
			lines[s.Code.Line] = s.Code.String()
			codes = append(codes, s.Code.String())
		}
		sort.Slice(codes, func(i, j int) bool {
			return models.CompareStationCodes(codes[i], codes[j]) < 0
		})
		groupIdx := len(idx.groups)
		idx.groups = append(idx.groups, codes)
		for _, code := range codes {
			idx.member[code] = groupIdx
		}
		idx.names[name] = struct{}{}
	}
	return idx, nil
}

// IsBoundary reports whether {a, b} is a subset of some interchange, i.e.
// moving from a to b is a transfer between lines at the same named station.
func (idx *InterchangeIndex) IsBoundary(a, b string) bool {
	ia, ok := idx.member[a]
	if !ok {
		return false
	}
	ib, ok := idx.member[b]
	return ok && ia == ib && a != b
}

// IsInterchange reports whether code belongs to any interchange.
func (idx *InterchangeIndex) IsInterchange(code string) bool {
	_, ok := idx.member[code]
	return ok
}

// HasName reports whether the given station name is an interchange name.
func (idx *InterchangeIndex) HasName(name string) bool {
	_, ok := idx.names[name]
	return ok
}

// Groups returns the member station codes of every interchange, each group
// in ascending station-code order.
func (idx *InterchangeIndex) Groups() [][]string {
	out := make([][]string, len(idx.groups))
	for i, g := range idx.groups {
		out[i] = append([]string(nil), g...)
	}
	return out
}

// MemberCodes returns every station code that belongs to an interchange.
func (idx *InterchangeIndex) MemberCodes() map[string]struct{} {
	out := make(map[string]struct{}, len(idx.member))
	for code := range idx.member {
		out[code] = struct{}{}
	}
	return out
}
