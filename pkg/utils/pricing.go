// Package utils provides shared helpers: the fare model and ID generation.
package utils

import (
	"errors"
	"math"

	"ridehail/internal/domain/entities"
)

var ErrUnknownVehicleClass = errors.New("unknown vehicle class")

// Rate is the pricing pair for one vehicle class.
type Rate struct {
	Base  int
	PerKm int
}

// fareRates is fixed for compatibility with the deployed backend; a changed
// table would make client-side estimates diverge from server fares.
var fareRates = map[entities.VehicleClass]Rate{
	entities.VehicleBike:    {Base: 50, PerKm: 15},
	entities.VehicleCar:     {Base: 100, PerKm: 25},
	entities.VehiclePremium: {Base: 200, PerKm: 40},
}

// EstimateFare prices a trip: base + perKm × distance, rounded to the nearest
// integer currency unit. Monotonic non-decreasing in distance for a fixed
// class.
func EstimateFare(distanceKm float64, class entities.VehicleClass) (int, error) {
	rate, ok := fareRates[class]
	if !ok {
		return 0, ErrUnknownVehicleClass
	}
	return int(math.Round(float64(rate.Base) + float64(rate.PerKm)*distanceKm)), nil
}
