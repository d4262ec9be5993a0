package dataset

import (
	"fmt"
	"sort"

	"github.com/mrtroute/mrtroute_core/internal/graph"
	"github.com/mrtroute/mrtroute_core/internal/models"
	"github.com/mrtroute/mrtroute_core/internal/network"
)

// Snapshot assembles the network as it stood at the named stage into a
// graph.Config. Coordinates are not part of the preset data; callers wire
// them in separately before building the graph.
func Snapshot(stage string) (graph.Config, error) {
	changes, err := StageChanges()
	if err != nil {
		return graph.Config{}, err
	}
	stations, err := network.FoldStages(changes, stage)
	if err != nil {
		return graph.Config{}, err
	}

	byLine, err := groupStations(stations)
	if err != nil {
		return graph.Config{}, err
	}

	nonLinear := nonLinearTerminals(stations, byLine)

	segments, edgeTypes, err := buildSegments(stations, byLine, nonLinear)
	if err != nil {
		return graph.Config{}, err
	}

	return graph.Config{
		Stations:             stations,
		Segments:             segments,
		TransferDurations:    interchangeTransferDurations,
		ConditionalTransfers: conditionalTransferDurations.Restrict(edgeTypes),
		NonLinearTerminals:   nonLinear,
		Pseudonyms:           Pseudonyms(),
	}, nil
}

// groupStations groups the stage's stations by line code, each group
// sorted in ascending code order.
func groupStations(stations map[string]string) (map[string][]models.StationCode, error) {
	byLine := make(map[string][]models.StationCode)
	for code := range stations {
		sc, err := models.ParseStationCode(code)
		if err != nil {
			return nil, err
		}
		byLine[sc.Line] = append(byLine[sc.Line], sc)
	}
	for _, line := range byLine {
		sort.Slice(line, func(i, j int) bool { return line[i].Less(line[j]) })
	}
	return byLine, nil
}

// nonLinearTerminals maps each looped or branching line present at this
// stage to its terminal stations.
func nonLinearTerminals(stations map[string]string, byLine map[string][]models.StationCode) network.NonLinearTerminals {
	nonLinear := make(network.NonLinearTerminals)
	for line, terminals := range loopedLineTerminals {
		if _, ok := byLine[line]; !ok {
			continue
		}
		present := make(map[string]struct{})
		for _, code := range terminals {
			if _, ok := stations[code]; ok {
				present[code] = struct{}{}
			}
		}
		if len(present) > 0 {
			nonLinear[line] = present
		}
	}

	// The Circle Line closes into a loop once CC34 opens.
	if _, ok := stations["CC34"]; ok {
		nonLinear["CC"] = map[string]struct{}{"CC1": {}}
	}

	// Before the East-West Line opened, its stations ran through as part
	// of the North-South Line; treat the combined line as non-linear with
	// the highest EW and lowest NS codes as terminals.
	if combinedNorthSouthEastWest(stations) {
		ew, ns := byLine["EW"], byLine["NS"]
		terminals := map[string]struct{}{
			ew[len(ew)-1].String(): {},
			ns[0].String():         {},
		}
		nonLinear["EW"] = terminals
		nonLinear["NS"] = cloneSet(terminals)
	}
	return nonLinear
}

func combinedNorthSouthEastWest(stations map[string]string) bool {
	_, ew14 := stations["EW14"]
	_, ew15 := stations["EW15"]
	_, ns26 := stations["NS26"]
	return !ew14 && ew15 && ns26
}

func cloneSet(set map[string]struct{}) map[string]struct{} {
	out := make(map[string]struct{}, len(set))
	for k := range set {
		out[k] = struct{}{}
	}
	return out
}

// buildSegments links up the stations of each line in ascending code order,
// attaches walking routes and conditional edge types, and assigns dwell
// times. It also reports the set of conditional edge types in use.
func buildSegments(
	stations map[string]string,
	byLine map[string][]models.StationCode,
	nonLinear network.NonLinearTerminals,
) ([]models.SegmentSpec, map[string]struct{}, error) {
	type pair struct{ from, to string }
	var order []pair
	adjacency := make(map[string][]string)

	link := func(from, to string) {
		order = append(order, pair{from, to})
		adjacency[from] = append(adjacency[from], to)
	}

	lines := make([]string, 0, len(byLine))
	for line := range byLine {
		lines = append(lines, line)
	}
	sort.Strings(lines)
	for _, line := range lines {
		codes := byLine[line]
		for i := 0; i+1 < len(codes); i++ {
			from, to := codes[i].String(), codes[i+1].String()
			// BP13/BP14 and NS4/NS13 are adjacent by code only, never by track.
			if from == "BP13" && to == "BP14" {
				continue
			}
			if from == "NS4" && to == "NS13" {
				continue
			}
			link(from, to)
		}
	}
	if combinedNorthSouthEastWest(stations) {
		link("EW15", "NS26")
	}

	terminals := network.Terminals(nonLinear, adjacency)
	interchangeIndex, err := network.BuildInterchangeIndex(stationList(stations))
	if err != nil {
		return nil, nil, err
	}
	interchanges := interchangeIndex.MemberCodes()

	specs := make(map[pair]*models.SegmentSpec, len(order))
	for _, p := range order {
		duration, ok := trainSegmentDurations[p.from+"-"+p.to]
		if !ok {
			return nil, nil, fmt.Errorf("%w: %s-%s", ErrMissingSegmentDuration, p.from, p.to)
		}
		dwellAsc, dwellDesc := network.DwellTimes(terminals, interchanges, p.from, p.to)
		specs[p] = &models.SegmentSpec{
			From:         p.from,
			To:           p.to,
			DurationAsc:  duration,
			DurationDesc: duration,
			DwellAsc:     dwellAsc,
			DwellDesc:    dwellDesc,
		}
	}

	// Walking routes from the LTA Walking Train Map connect every code
	// pair sharing the route's station names. No dwell time on foot.
	codesByName := make(map[string][]string)
	for code, name := range stations {
		codesByName[name] = append(codesByName[name], code)
	}
	for _, codes := range codesByName {
		sort.Slice(codes, func(i, j int) bool {
			return models.CompareStationCodes(codes[i], codes[j]) < 0
		})
	}
	for _, route := range walkingRoutes {
		for _, from := range codesByName[route.From] {
			for _, to := range codesByName[route.To] {
				p := pair{from, to}
				if _, ok := specs[p]; !ok {
					order = append(order, p)
				}
				specs[p] = &models.SegmentSpec{
					From:         from,
					To:           to,
					DurationAsc:  route.Duration,
					DurationDesc: route.Duration,
					Mode:         models.ModeWalk,
				}
			}
		}
	}

	// Mark segments adjacent to a conditional interchange with their edge
	// type. Dwell times are recomputed treating the junction station as an
	// interchange.
	edgeTypes := make(map[string]struct{})
	for _, seg := range network.ActiveConditionalSegments(conditionalSegments, stations) {
		from, to := seg.Pair[0], seg.Pair[1]
		p := pair{from, to}
		duration, ok := trainSegmentDurations[from+"-"+to]
		if !ok {
			return nil, nil, fmt.Errorf("%w: %s-%s", ErrMissingSegmentDuration, from, to)
		}
		junction := map[string]struct{}{seg.Interchange: {}}
		for code := range interchanges {
			junction[code] = struct{}{}
		}
		dwellAsc, dwellDesc := network.DwellTimes(terminals, junction, from, to)
		if _, ok := specs[p]; !ok {
			order = append(order, p)
		}
		specs[p] = &models.SegmentSpec{
			From:         from,
			To:           to,
			DurationAsc:  duration,
			DurationDesc: duration,
			DwellAsc:     dwellAsc,
			DwellDesc:    dwellDesc,
			EdgeType:     seg.EdgeType,
		}
		edgeTypes[seg.EdgeType] = struct{}{}
	}

	segments := make([]models.SegmentSpec, 0, len(order))
	for _, p := range order {
		segments = append(segments, *specs[p])
	}
	return segments, edgeTypes, nil
}

func stationList(stations map[string]string) []models.Station {
	list := make([]models.Station, 0, len(stations))
	for code, name := range stations {
		station, err := models.NewStation(code, name)
		if err != nil {
			continue // validated upstream by FoldStages input parsing
		}
		list = append(list, station)
	}
	return list
}
