// Package dataset carries the preset Singapore MRT/LRT network data:
// every station ever opened or closed, train segment and walking durations,
// interchange transfer times, and the conditional transfer rules for looped
// lines. Snapshot assembles the data into a graph.Config for any stage of
// the network build-out.
package dataset

import (
	"errors"
	"fmt"

	"github.com/mrtroute/mrtroute_core/internal/models"
	"github.com/mrtroute/mrtroute_core/internal/network"
)

var (
	// ErrMissingSegmentDuration is returned when two stations are adjacent
	// at the requested stage but no travel duration is on record.
	ErrMissingSegmentDuration = errors.New("no duration on record for segment")
)

type stationDef struct {
	Code string
	Name string
}

type stageDef struct {
	Name    string
	Added   []stationDef
	Removed []stationDef
}

type walkRoute struct {
	From     string // station name
	To       string // station name
	Duration int    // seconds
}

// Stages returns the stage names in chronological order, from phase_1_1
// to future.
func Stages() []string {
	names := make([]string, len(stageDefs))
	for i, def := range stageDefs {
		names[i] = def.Name
	}
	return names
}

// StageChanges converts the station tables into fold-ready stage changes.
func StageChanges() ([]network.StageChange, error) {
	changes := make([]network.StageChange, 0, len(stageDefs))
	for _, def := range stageDefs {
		change := network.StageChange{Name: def.Name}
		for _, s := range def.Added {
			station, err := models.NewStation(s.Code, s.Name)
			if err != nil {
				return nil, fmt.Errorf("stage %s: %w", def.Name, err)
			}
			change.Added = append(change.Added, station)
		}
		for _, s := range def.Removed {
			station, err := models.NewStation(s.Code, s.Name)
			if err != nil {
				return nil, fmt.Errorf("stage %s: %w", def.Name, err)
			}
			change.Removed = append(change.Removed, station)
		}
		changes = append(changes, change)
	}
	return changes, nil
}

// Pseudonyms maps pseudo station codes to the real codes they stand in
// for: the temporary Circle Line Extension and the Jurong Region Line
// East Branch.
func Pseudonyms() map[string]string {
	return map[string]string{
		"CE0X": "CC6",
		"CE0Y": "CC5",
		"CE0Z": "CC4",
		"JE0":  "JS3",
	}
}

// CodeEquivalences maps missing, future and pseudo station codes to codes
// that share the same physical location. Used to fill in coordinates for
// codes absent from the coordinates file.
func CodeEquivalences() map[string]string {
	equivalences := map[string]string{
		"CG":   "EW4",
		"TE33": "CG2",
		"TE34": "CG1",
		"TE35": "EW4",
		"CC33": "CE2",
		"CC34": "CE1",
	}
	for pseudo, real := range Pseudonyms() {
		equivalences[pseudo] = real
	}
	return equivalences
}
