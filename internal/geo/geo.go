// Package geo holds the pure geographic math behind the ride-request flow:
// haversine distance, travel-time estimates and the cosmetic route path drawn
// on the map. None of it is a routing engine; the values only need to look
// plausible and stay stable for identical inputs.
package geo

import (
	"math"

	"ridehail/internal/domain/entities"
)

const (
	earthRadiusKm = 6371.0

	// Assumed average urban speed used for time estimates.
	averageSpeedKmH = 30.0
)

// Distance returns the haversine great-circle distance in kilometres between
// two coordinates, rounded to 2 decimal places. Symmetric in its arguments;
// zero for identical points.
func Distance(a, b entities.Coordinate) float64 {
	dLat := toRadians(b.Latitude - a.Latitude)
	dLon := toRadians(b.Longitude - a.Longitude)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(a.Latitude))*math.Cos(toRadians(b.Latitude))*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return math.Round(earthRadiusKm*c*100) / 100
}

// EstimateTravelTime converts a distance into whole minutes at city speed.
// Monotonic non-decreasing in distance.
func EstimateTravelTime(distanceKm float64) int {
	return int(math.Round(distanceKm / averageSpeedKmH * 60))
}

// DefaultCenter is the map fallback coordinate (Dhaka) used when geolocation
// is denied or unavailable.
func DefaultCenter() entities.Coordinate {
	return entities.Coordinate{Latitude: 23.8103, Longitude: 90.4125}
}

func toRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
