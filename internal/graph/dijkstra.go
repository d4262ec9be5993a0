package graph

import (
	"container/heap"
	"fmt"

	"github.com/mrtroute/mrtroute_core/internal/models"
)

// The cost of entering an edge depends on the edge immediately preceding it
// in the path being extended (conditional interchange transfers), so the
// relaxation is keyed by (station, incoming edge type) instead of station
// alone. Flattening this into plain node-keyed weights would merge paths
// that must stay distinct.
type searchState struct {
	node     string
	prevType string
}

type searchItem struct {
	state searchState
	cost  int
	index int // for heap
}

type priorityQueue []*searchItem

func (pq priorityQueue) Len() int { return len(pq) }

func (pq priorityQueue) Less(i, j int) bool {
	return pq[i].cost < pq[j].cost
}

func (pq priorityQueue) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].index = i
	pq[j].index = j
}

func (pq *priorityQueue) Push(x interface{}) {
	item := x.(*searchItem)
	item.index = len(*pq)
	*pq = append(*pq, item)
}

func (pq *priorityQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*pq = old[0 : n-1]
	return item
}

type cameFrom struct {
	state searchState
	edge  models.Edge
	valid bool
}

// edgeCost is the contextual cost function: the base cost of an edge is its
// travel duration plus dwell time (no dwell when walking away from a
// station), plus the conditional transfer duration when the previous and
// next edge types form a configured ordered pair.
func (g *RailGraph) edgeCost(prevType string, e models.Edge) int {
	cost := e.Duration
	if e.Mode != models.ModeWalk {
		cost += e.Dwell
	}
	if extra, ok := g.conditional.ExtraDuration(prevType, e.EdgeType); ok {
		cost += extra
	}
	return cost
}

// FindShortestPath returns the minimum-cost path from start to end. With
// walk true the walking links are available, otherwise the search runs on
// the train-only graph. Pseudo station codes are not valid endpoints.
func (g *RailGraph) FindShortestPath(start, end string, walk bool) (models.Path, error) {
	for _, code := range []string{start, end} {
		parsed, err := models.ParseStationCode(code)
		if err != nil {
			return models.Path{}, err
		}
		if parsed.IsPseudo() {
			return models.Path{}, fmt.Errorf("%w: pseudo code %q cannot be a journey endpoint",
				models.ErrInvalidStationCode, code)
		}
		if _, ok := g.stations[code]; !ok {
			return models.Path{}, fmt.Errorf("%w: %s", ErrUnknownStation, code)
		}
	}
	if start == end {
		return models.Path{Nodes: []string{start}}, nil
	}

	dist := make(map[searchState]int)
	prev := make(map[searchState]cameFrom)

	origin := searchState{node: start}
	dist[origin] = 0
	pq := &priorityQueue{{state: origin, cost: 0}}
	heap.Init(pq)

	for pq.Len() > 0 {
		current := heap.Pop(pq).(*searchItem)
		if current.cost > dist[current.state] {
			continue // stale entry
		}
		if current.state.node == end {
			return g.buildPath(start, current.state, prev, dist), nil
		}
		for _, edge := range g.edges(current.state.node, walk) {
			next := searchState{node: edge.To, prevType: edge.EdgeType}
			tentative := current.cost + g.edgeCost(current.state.prevType, edge)
			if best, ok := dist[next]; ok && tentative >= best {
				continue
			}
			dist[next] = tentative
			prev[next] = cameFrom{state: current.state, edge: edge, valid: true}
			heap.Push(pq, &searchItem{state: next, cost: tentative})
		}
	}

	return models.Path{}, fmt.Errorf("%w: %s to %s (walk=%t)", ErrNoPath, start, end, walk)
}

func (g *RailGraph) buildPath(start string, goal searchState, prev map[searchState]cameFrom, dist map[searchState]int) models.Path {
	var nodes []string
	var edges []models.Edge
	var costs []int

	state := goal
	for state.node != start || state.prevType != "" {
		from, ok := prev[state]
		if !ok || !from.valid {
			break
		}
		nodes = append(nodes, state.node)
		edges = append(edges, from.edge)
		costs = append(costs, dist[state]-dist[from.state])
		state = from.state
	}
	nodes = append(nodes, start)

	reverseStrings(nodes)
	reverseEdges(edges)
	reverseInts(costs)

	path := models.Path{
		Nodes:     nodes,
		Edges:     edges,
		EdgeCosts: costs,
		TotalCost: dist[goal],
	}
	g.trimEndpointTransfers(&path)
	return path
}

// trimEndpointTransfers corrects the boundary effect of interchange costs:
// transfer charges model passing through a station, so a journey that truly
// starts or ends at an interchange should not pay them. A journey ending at
// an interchange also skips the dwell there; one starting at an interchange
// still waits for its first train to depart. The correction is applied to
// the returned path rather than encoded in the graph, which would need
// endpoint-specific edges.
func (g *RailGraph) trimEndpointTransfers(path *models.Path) {
	n := len(path.Nodes)
	if n < 2 || len(path.EdgeCosts) == 0 {
		return
	}
	if g.interchanges.IsBoundary(path.Nodes[n-2], path.Nodes[n-1]) {
		last := len(path.EdgeCosts) - 1
		unit := path.Edges[last].Duration + path.Edges[last].Dwell
		path.EdgeCosts[last] -= unit
		path.TotalCost -= unit
	}
	if n > 2 && g.interchanges.IsBoundary(path.Nodes[0], path.Nodes[1]) {
		unit := path.Edges[0].Duration
		path.EdgeCosts[0] -= unit
		path.TotalCost -= unit
	}
}

func reverseStrings(s []string) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

func reverseEdges(s []models.Edge) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

func reverseInts(s []int) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
