// Package services implements the demo-mode service layer: session-scoped
// operations over in-memory state, each simulating network latency and
// returning the uniform response envelope the UI expects from the real
// backend.
package services

import (
	"context"
	"fmt"

	"ridehail/internal/config"
	"ridehail/internal/domain/entities"
	"ridehail/internal/geo"
	"ridehail/internal/repository"
	"ridehail/pkg/apierror"
	"ridehail/pkg/utils"
)

// Placeholder values echoed by CreateRide regardless of the submitted pickup
// and destination. The deployed demo behaves this way and callers
// regression-lock against it, so it is preserved rather than computed.
// Callers must not assume these are realistic; Estimate gives honest numbers.
const (
	placeholderFare       = 150
	placeholderDistanceKm = 5.2
)

type RideService struct {
	rides   repository.RideRepository
	latency config.LatencyConfig
	delay   Delay
}

func NewRideService(rides repository.RideRepository, latency config.LatencyConfig, delay Delay) *RideService {
	if delay == nil {
		delay = Sleep
	}
	return &RideService{rides: rides, latency: latency, delay: delay}
}

// CreateRide builds a ride in the "requested" state and prepends it to the
// session list, after the simulated request latency.
func (s *RideService) CreateRide(ctx context.Context, riderID string, req entities.CreateRideRequest) (*entities.Response[entities.RideData], error) {
	s.delay(s.latency.CreateRide)

	class := entities.VehicleClass(req.VehicleType)
	if class == "" {
		class = entities.VehicleBike
	}

	ride := entities.NewRide(
		utils.GenerateRideID(),
		riderID,
		req.PickupLocation,
		req.Destination,
		class,
		placeholderFare,
		placeholderDistanceKm,
	)

	if err := s.rides.Prepend(ctx, ride); err != nil {
		return nil, fmt.Errorf("store ride: %w", err)
	}

	return entities.OK("Ride requested successfully", entities.RideData{Ride: ride}), nil
}

// RiderHistory returns every ride of the session, most recent first.
func (s *RideService) RiderHistory(ctx context.Context) (*entities.Response[entities.RidesData], error) {
	s.delay(s.latency.RideHistory)

	rides, err := s.rides.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list rides: %w", err)
	}

	return entities.OK("Ride history retrieved", entities.RidesData{Rides: rides}), nil
}

// AvailableRides returns only rides still waiting for a driver, preserving
// list order.
func (s *RideService) AvailableRides(ctx context.Context) (*entities.Response[entities.RidesData], error) {
	s.delay(s.latency.AvailableRides)

	rides, err := s.rides.ListByStatus(ctx, entities.RideStatusRequested)
	if err != nil {
		return nil, fmt.Errorf("list requested rides: %w", err)
	}

	return entities.OK("Available rides retrieved", entities.RidesData{Rides: rides}), nil
}

// AcceptRide assigns the driver to a requested ride.
func (s *RideService) AcceptRide(ctx context.Context, driverID, rideID string) (*entities.Response[entities.RideData], error) {
	s.delay(s.latency.AvailableRides)

	ride, err := s.rides.GetByID(ctx, rideID)
	if err != nil {
		return nil, &apierror.APIError{Status: 404, Message: "Ride not found"}
	}

	if err := ride.Accept(driverID); err != nil {
		return nil, &apierror.APIError{Status: 409, Message: "Ride is no longer available"}
	}

	if err := s.rides.Update(ctx, ride); err != nil {
		return nil, fmt.Errorf("update ride: %w", err)
	}

	return entities.OK("Ride accepted", entities.RideData{Ride: ride}), nil
}

// EstimateRequest is the input of the live fare/route estimate shown on the
// request form.
type EstimateRequest struct {
	Pickup      entities.Coordinate `json:"pickupLocation" binding:"required"`
	Destination entities.Coordinate `json:"destination" binding:"required"`
	VehicleType string              `json:"vehicleType,omitempty"`
}

// EstimateData is the computed estimate: fare and distance always derive
// together from the same pickup/destination pair and class.
type EstimateData struct {
	Fare            int                   `json:"fare"`
	DistanceKm      float64               `json:"distance"`
	DurationMinutes int                   `json:"durationMinutes"`
	Route           []entities.Coordinate `json:"route"`
}

// Estimate computes distance, fare, travel time and the cosmetic route path
// for a pickup/destination pair. Pure and synchronous: no latency simulation.
func (s *RideService) Estimate(req EstimateRequest) (*entities.Response[EstimateData], error) {
	if !req.Pickup.Valid() || !req.Destination.Valid() {
		return nil, &apierror.APIError{Status: 400, Message: "Coordinates are out of range"}
	}

	class := entities.VehicleClass(req.VehicleType)
	if class == "" {
		class = entities.VehicleBike
	}

	distanceKm := geo.Distance(req.Pickup, req.Destination)
	fare, err := utils.EstimateFare(distanceKm, class)
	if err != nil {
		return nil, &apierror.APIError{Status: 400, Message: "Unknown vehicle type"}
	}

	data := EstimateData{
		Fare:            fare,
		DistanceKm:      distanceKm,
		DurationMinutes: geo.EstimateTravelTime(distanceKm),
		Route:           geo.SynthesizeRoute(req.Pickup, req.Destination),
	}
	return entities.OK("Estimate calculated", data), nil
}
