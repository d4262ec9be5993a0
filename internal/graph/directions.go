package graph

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mrtroute/mrtroute_core/internal/models"
)

type journeyStatus int

const (
	atStation journeyStatus = iota
	inTrain
	walking
)

// MakeDirections renders a shortest path as human-readable step-by-step
// directions. Pseudo station codes are displayed under the real code they
// stand for.
func (g *RailGraph) MakeDirections(path models.Path) ([]string, error) {
	if len(path.Nodes) < 2 {
		return nil, ErrInsufficientNodes
	}

	status := atStation
	steps := []string{fmt.Sprintf("Start at %s", g.displayName(path.Nodes[0]))}

	for i, edge := range path.Edges {
		u, v := path.Nodes[i], path.Nodes[i+1]
		atPseudo := isPseudoCode(u) || isPseudoCode(v)

		switch {
		case g.interchanges.IsBoundary(u, v):
			if status == inTrain {
				steps = append(steps, fmt.Sprintf("Alight at %s", g.displayName(u)))
			}
			verb := "Transfer to"
			if atPseudo {
				verb = "Switch over at"
			}
			steps = append(steps, fmt.Sprintf("%s %s", verb, g.displayName(v)))
			status = atStation

		case edge.Mode == models.ModeWalk:
			if status == inTrain {
				steps = append(steps, fmt.Sprintf("Alight at %s", g.displayName(u)))
			}
			if status == walking && len(steps) > 0 && strings.HasPrefix(steps[len(steps)-1], "Walk to") {
				steps = steps[:len(steps)-1] // collapse consecutive walking legs
			}
			steps = append(steps, fmt.Sprintf("Walk to %s", g.displayName(v)))
			status = walking

		case i > 0 && g.conditional.IsTransfer(path.Edges[i-1].EdgeType, edge.EdgeType):
			steps = append(steps, fmt.Sprintf("Switch over at %s", g.displayName(u)))
			steps = append(steps, g.boardStep(u, v))
			status = inTrain

		case status == walking || status == atStation:
			steps = append(steps, g.boardStep(u, v))
			status = inTrain
		}
	}

	// A final interchange hop from a pseudo code, like JE0 -> JS3, is the
	// same physical station; drop the dangling switch-over.
	if len(steps) > 0 && strings.HasPrefix(steps[len(steps)-1], "Switch over") {
		steps = steps[:len(steps)-1]
	}
	if status == inTrain {
		steps = append(steps, fmt.Sprintf("Alight at %s", g.displayName(path.Nodes[len(path.Nodes)-1])))
	}

	steps = append(steps, fmt.Sprintf("Total duration: %d minutes", (path.TotalCost+59)/60))

	// Distance metrics need station positions, which snapshots built from
	// the preset tables alone do not carry; without them the directions
	// simply end at the total duration.
	pathDistance, haversineDistance, err := g.PathAndHaversineDistance(path)
	switch {
	case errors.Is(err, ErrNoCoordinates):
	case err != nil:
		return nil, err
	default:
		steps = append(steps, fmt.Sprintf(
			"Approximate path distance: %.1f km, Haversine distance: %.1f km, Circuity ratio: %.1f",
			pathDistance/1000, haversineDistance/1000, CircuityRatio(pathDistance, haversineDistance)))
	}

	return steps, nil
}

func (g *RailGraph) boardStep(u, v string) string {
	terminal, err := g.ApproachingTerminal(u, v)
	if err != nil || terminal == "" {
		// No single terminal for this direction; name the next station.
		return fmt.Sprintf("Board train in direction of %s", g.displayName(v))
	}
	return fmt.Sprintf("Board train towards terminus %s", g.displayName(terminal))
}

// displayName renders "CODE Name" with pseudo codes resolved to the real
// station code they alias.
func (g *RailGraph) displayName(code string) string {
	real := g.RealCode(code)
	name, ok := g.stations[real]
	if !ok {
		name = g.stations[code]
	}
	return fmt.Sprintf("%s %s", real, name)
}

func isPseudoCode(code string) bool {
	parsed, err := models.ParseStationCode(code)
	return err == nil && parsed.IsPseudo()
}
