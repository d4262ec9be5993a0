package graph

import (
	"fmt"
	"math"

	"github.com/mrtroute/mrtroute_core/internal/models"
)

// EarthRadiusMetres is the mean Earth radius used for great-circle
// distances.
const EarthRadiusMetres = 6373000.0

// HaversineDistance is the great-circle (shortest) distance between two
// points on Earth, in metres.
func HaversineDistance(a, b models.Coordinates) float64 {
	lat1 := a.Latitude * math.Pi / 180
	lon1 := a.Longitude * math.Pi / 180
	lat2 := b.Latitude * math.Pi / 180
	lon2 := b.Longitude * math.Pi / 180

	dlat := lat2 - lat1
	dlon := lon2 - lon1

	h := math.Sin(dlat/2)*math.Sin(dlat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dlon/2)*math.Sin(dlon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return EarthRadiusMetres * c
}

// PathAndHaversineDistance estimates the travelled distance of a path by
// treating each hop between adjacent stations as a great-circle arc, and
// returns it together with the direct great-circle distance between the
// journey's first and last stations. Pseudo and missing station codes use
// their registered alias coordinates.
func (g *RailGraph) PathAndHaversineDistance(path models.Path) (pathDistance, haversineDistance float64, err error) {
	if len(path.Nodes) < 2 {
		return 0, 0, ErrInsufficientNodes
	}

	first, err := g.coordinatesOf(path.Nodes[0])
	if err != nil {
		return 0, 0, err
	}
	last, err := g.coordinatesOf(path.Nodes[len(path.Nodes)-1])
	if err != nil {
		return 0, 0, err
	}
	haversineDistance = HaversineDistance(first, last)

	for i := 0; i+1 < len(path.Nodes); i++ {
		from, err := g.coordinatesOf(path.Nodes[i])
		if err != nil {
			return 0, 0, err
		}
		to, err := g.coordinatesOf(path.Nodes[i+1])
		if err != nil {
			return 0, 0, err
		}
		pathDistance += HaversineDistance(from, to)
	}
	return pathDistance, haversineDistance, nil
}

// CircuityRatio is path distance over haversine distance, or 1 when the
// endpoints coincide.
func CircuityRatio(pathDistance, haversineDistance float64) float64 {
	if haversineDistance <= 0 {
		return 1
	}
	return pathDistance / haversineDistance
}

func (g *RailGraph) coordinatesOf(code string) (models.Coordinates, error) {
	if c, ok := g.coordinates[code]; ok {
		return c, nil
	}
	return models.Coordinates{}, fmt.Errorf("%w: %s", ErrNoCoordinates, code)
}
