// Package client gives UI callers one API surface with two backends: the
// in-process demo services and the real HTTP backend. Both return the same
// envelope and throw the same normalized failure shape, so nothing upstream
// branches on transport.
package client

import (
	"context"

	"ridehail/internal/domain/entities"
	"ridehail/internal/services"
)

// RideAPI is the rider/driver-facing ride surface.
type RideAPI interface {
	CreateRide(ctx context.Context, req entities.CreateRideRequest) (*entities.Response[entities.RideData], error)
	RiderHistory(ctx context.Context) (*entities.Response[entities.RidesData], error)
	AvailableRides(ctx context.Context) (*entities.Response[entities.RidesData], error)
}

// DriverAPI is the driver availability surface.
type DriverAPI interface {
	UpdateAvailability(ctx context.Context, req entities.AvailabilityUpdate) (*entities.Response[entities.DriverData], error)
	IncomingRequests(ctx context.Context) (*entities.Response[[]*entities.Ride], error)
}

// DemoBackend serves the API surface from the in-memory simulation layer,
// bound to one session user the way a browser session is.
type DemoBackend struct {
	Rides   *services.RideService
	Drivers *services.DriverService
	UserID  string
}

var (
	_ RideAPI   = (*DemoBackend)(nil)
	_ DriverAPI = (*DemoBackend)(nil)
)

func (d *DemoBackend) CreateRide(ctx context.Context, req entities.CreateRideRequest) (*entities.Response[entities.RideData], error) {
	return d.Rides.CreateRide(ctx, d.UserID, req)
}

func (d *DemoBackend) RiderHistory(ctx context.Context) (*entities.Response[entities.RidesData], error) {
	return d.Rides.RiderHistory(ctx)
}

func (d *DemoBackend) AvailableRides(ctx context.Context) (*entities.Response[entities.RidesData], error) {
	return d.Rides.AvailableRides(ctx)
}

func (d *DemoBackend) UpdateAvailability(ctx context.Context, req entities.AvailabilityUpdate) (*entities.Response[entities.DriverData], error) {
	return d.Drivers.UpdateAvailability(ctx, d.UserID, req)
}

func (d *DemoBackend) IncomingRequests(ctx context.Context) (*entities.Response[[]*entities.Ride], error) {
	return d.Drivers.IncomingRequests(ctx)
}
