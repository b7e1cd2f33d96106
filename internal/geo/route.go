package geo

import (
	"math"

	"ridehail/internal/domain/entities"
)

const (
	routeSteps     = 20
	curveAmplitude = 0.002 // degrees of lateral bulge at the path midpoint
)

// SynthesizeRoute builds the path drawn between pickup and destination:
// linear interpolation over 21 points with a sinusoidal offset added to both
// axes, peaking mid-path and vanishing at the endpoints. Deterministic for
// identical inputs and purely cosmetic — not a road-network path.
func SynthesizeRoute(start, end entities.Coordinate) []entities.Coordinate {
	points := make([]entities.Coordinate, 0, routeSteps+1)

	for i := 0; i <= routeSteps; i++ {
		if i == 0 {
			points = append(points, start)
			continue
		}
		if i == routeSteps {
			// sin(π) is not exactly zero in floating point; pin the endpoint.
			points = append(points, end)
			continue
		}

		t := float64(i) / routeSteps
		curve := math.Sin(t*math.Pi) * curveAmplitude

		points = append(points, entities.Coordinate{
			Latitude:  start.Latitude + (end.Latitude-start.Latitude)*t + curve,
			Longitude: start.Longitude + (end.Longitude-start.Longitude)*t + curve,
		})
	}

	return points
}
