package network

import (
	"errors"
	"fmt"

	"github.com/mrtroute/mrtroute_core/internal/models"
)

var (
	// ErrUnknownStage is returned when folding up to a stage that does not
	// exist in the change list.
	ErrUnknownStage = errors.New("no such stage")
	// ErrStationReadded is returned when a stage adds a station already
	// present in the network.
	ErrStationReadded = errors.New("station already present")
	// ErrStationNotPresent is returned when a stage removes a station that
	// is not in the network.
	ErrStationNotPresent = errors.New("station not present")
	// ErrAddRemoveConflict is returned when one stage both adds and
	// removes the same station.
	ErrAddRemoveConflict = errors.New("station added and removed in same stage")
	// ErrDuplicateStationCode is returned when a fold leaves one station
	// code mapped to two different names.
	ErrDuplicateStationCode = errors.New("station code mapped to multiple names")
)

// StageChange is one step of network build-out: the stations opened and the
// stations closed at a named point in the network's history. Changes are
// cumulative and applied in chronological order.
type StageChange struct {
	Name    string
	Added   []models.Station
	Removed []models.Station
}

// FoldStages applies changes in order up to and including the stage named
// upTo, and returns the station map (code -> name) of the resulting network
// snapshot. The fold is pure; integrity violations abort it.
func FoldStages(changes []StageChange, upTo string) (map[string]string, error) {
	found := false
	for _, change := range changes {
		if change.Name == upTo {
			found = true
			break
		}
	}
	if !found {
		return nil, fmt.Errorf("%w: %s", ErrUnknownStage, upTo)
	}

	type identity struct {
		code string
		name string
	}
	present := make(map[identity]struct{})
	for _, change := range changes {
		removed := make(map[identity]struct{}, len(change.Removed))
		for _, s := range change.Removed {
			removed[identity{s.Code.String(), s.Name}] = struct{}{}
		}
		for _, s := range change.Added {
			id := identity{s.Code.String(), s.Name}
			if _, ok := removed[id]; ok {
				return nil, fmt.Errorf("%w: %s %s at stage %s",
					ErrAddRemoveConflict, id.code, id.name, change.Name)
			}
			if _, ok := present[id]; ok {
				return nil, fmt.Errorf("%w: %s %s at stage %s",
					ErrStationReadded, id.code, id.name, change.Name)
			}
			present[id] = struct{}{}
		}
		for id := range removed {
			if _, ok := present[id]; !ok {
				return nil, fmt.Errorf("%w: %s %s at stage %s",
					ErrStationNotPresent, id.code, id.name, change.Name)
			}
			delete(present, id)
		}

		codeNames := make(map[string]string, len(present))
		for id := range present {
			if name, ok := codeNames[id.code]; ok && name != id.name {
				return nil, fmt.Errorf("%w: %s is both %q and %q after stage %s",
					ErrDuplicateStationCode, id.code, name, id.name, change.Name)
			}
			codeNames[id.code] = id.name
		}

		if change.Name == upTo {
			return codeNames, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownStage, upTo)
}
