package services

import (
	"context"
	"testing"

	"ridehail/internal/config"
	"ridehail/internal/domain/entities"
	"ridehail/internal/repository/memory"
	"ridehail/pkg/apierror"
)

func setupRideService() (*RideService, *memory.RideRepository) {
	repo := memory.NewRideRepository()
	cfg := config.NewDefaultConfig()
	return NewRideService(repo, cfg.Latency, NoDelay), repo
}

func rideRequest() entities.CreateRideRequest {
	return entities.CreateRideRequest{
		PickupLocation: entities.Location{Address: "Gulshan 1, Dhaka", Latitude: 23.7808, Longitude: 90.4152},
		Destination:    entities.Location{Address: "Dhanmondi 27, Dhaka", Latitude: 23.7461, Longitude: 90.3742},
		VehicleType:    "car",
	}
}

func TestCreateRide(t *testing.T) {
	service, _ := setupRideService()
	ctx := context.Background()

	resp, err := service.CreateRide(ctx, "demo-rider-1", rideRequest())
	if err != nil {
		t.Fatalf("CreateRide failed: %v", err)
	}

	if !resp.Success {
		t.Error("expected success envelope")
	}
	if resp.Message != "Ride requested successfully" {
		t.Errorf("message = %q", resp.Message)
	}

	ride := resp.Data.Ride
	if ride.ID == "" {
		t.Error("expected a generated ride id")
	}
	if ride.Status != entities.RideStatusRequested {
		t.Errorf("status = %s, want requested", ride.Status)
	}
	if ride.RiderID != "demo-rider-1" {
		t.Errorf("riderId = %s", ride.RiderID)
	}
	if ride.VehicleClass != entities.VehicleCar {
		t.Errorf("vehicle class = %s, want car", ride.VehicleClass)
	}
	if ride.RequestedAt.IsZero() {
		t.Error("expected requestedAt to be set")
	}

	// The demo layer echoes fixed placeholder values, not values derived
	// from the submitted pickup/destination.
	if ride.Fare != 150 {
		t.Errorf("fare = %d, want placeholder 150", ride.Fare)
	}
	if ride.DistanceKm != 5.2 {
		t.Errorf("distance = %v, want placeholder 5.2", ride.DistanceKm)
	}
}

func TestCreateRideDefaultsToBike(t *testing.T) {
	service, _ := setupRideService()

	req := rideRequest()
	req.VehicleType = ""

	resp, err := service.CreateRide(context.Background(), "demo-rider-1", req)
	if err != nil {
		t.Fatalf("CreateRide failed: %v", err)
	}
	if resp.Data.Ride.VehicleClass != entities.VehicleBike {
		t.Errorf("vehicle class = %s, want bike", resp.Data.Ride.VehicleClass)
	}
}

func TestCreateRideUniqueIDs(t *testing.T) {
	service, _ := setupRideService()
	ctx := context.Background()

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		resp, err := service.CreateRide(ctx, "demo-rider-1", rideRequest())
		if err != nil {
			t.Fatalf("CreateRide failed: %v", err)
		}
		id := resp.Data.Ride.ID
		if seen[id] {
			t.Fatalf("duplicate ride id %s", id)
		}
		seen[id] = true
	}
}

func TestRiderHistoryMostRecentFirst(t *testing.T) {
	service, _ := setupRideService()
	ctx := context.Background()

	first, _ := service.CreateRide(ctx, "demo-rider-1", rideRequest())
	second, _ := service.CreateRide(ctx, "demo-rider-1", rideRequest())

	resp, err := service.RiderHistory(ctx)
	if err != nil {
		t.Fatalf("RiderHistory failed: %v", err)
	}
	if resp.Message != "Ride history retrieved" {
		t.Errorf("message = %q", resp.Message)
	}

	rides := resp.Data.Rides
	if len(rides) != 2 {
		t.Fatalf("expected 2 rides, got %d", len(rides))
	}
	if rides[0].ID != second.Data.Ride.ID {
		t.Errorf("first history entry = %s, want the newest ride %s", rides[0].ID, second.Data.Ride.ID)
	}
	if rides[0].Status != entities.RideStatusRequested {
		t.Errorf("newest ride status = %s, want requested", rides[0].Status)
	}
	if rides[1].ID != first.Data.Ride.ID {
		t.Errorf("second history entry = %s, want %s", rides[1].ID, first.Data.Ride.ID)
	}
}

func TestAvailableRidesFiltersNonRequested(t *testing.T) {
	service, repo := setupRideService()
	ctx := context.Background()

	kept, _ := service.CreateRide(ctx, "demo-rider-1", rideRequest())
	taken, _ := service.CreateRide(ctx, "demo-rider-1", rideRequest())

	// Another flow moves one ride out of "requested".
	if err := repo.SetStatus(ctx, taken.Data.Ride.ID, entities.RideStatusAccepted); err != nil {
		t.Fatalf("SetStatus failed: %v", err)
	}

	resp, err := service.AvailableRides(ctx)
	if err != nil {
		t.Fatalf("AvailableRides failed: %v", err)
	}
	if resp.Message != "Available rides retrieved" {
		t.Errorf("message = %q", resp.Message)
	}

	rides := resp.Data.Rides
	if len(rides) != 1 {
		t.Fatalf("expected 1 available ride, got %d", len(rides))
	}
	if rides[0].ID != kept.Data.Ride.ID {
		t.Errorf("available ride = %s, want %s", rides[0].ID, kept.Data.Ride.ID)
	}
}

func TestAcceptRide(t *testing.T) {
	service, _ := setupRideService()
	ctx := context.Background()

	created, _ := service.CreateRide(ctx, "demo-rider-1", rideRequest())
	rideID := created.Data.Ride.ID

	resp, err := service.AcceptRide(ctx, "demo-driver-1", rideID)
	if err != nil {
		t.Fatalf("AcceptRide failed: %v", err)
	}
	if resp.Data.Ride.Status != entities.RideStatusAccepted {
		t.Errorf("status = %s, want accepted", resp.Data.Ride.Status)
	}
	if resp.Data.Ride.DriverID != "demo-driver-1" {
		t.Errorf("driverId = %s", resp.Data.Ride.DriverID)
	}

	// A second accept must fail: the ride left "requested".
	if _, err := service.AcceptRide(ctx, "demo-driver-1", rideID); err == nil {
		t.Error("expected second accept to fail")
	}

	if _, err := service.AcceptRide(ctx, "demo-driver-1", "missing"); err == nil {
		t.Error("expected accept of unknown ride to fail")
	} else if ae, ok := err.(*apierror.APIError); !ok || ae.Status != 404 {
		t.Errorf("expected 404 APIError, got %v", err)
	}
}

func TestEstimate(t *testing.T) {
	service, _ := setupRideService()

	req := EstimateRequest{
		Pickup:      entities.Coordinate{Latitude: 23.7808, Longitude: 90.4152},
		Destination: entities.Coordinate{Latitude: 23.7461, Longitude: 90.3742},
		VehicleType: "car",
	}

	resp, err := service.Estimate(req)
	if err != nil {
		t.Fatalf("Estimate failed: %v", err)
	}

	data := resp.Data
	if data.DistanceKm < 4.6 || data.DistanceKm > 4.8 {
		t.Errorf("distance = %v, want ~4.6-4.8", data.DistanceKm)
	}
	// Fare and distance derive together: base + perKm*d for the car tier.
	wantFare := 100 + int(25*data.DistanceKm+0.5)
	if data.Fare != wantFare {
		t.Errorf("fare = %d, want %d", data.Fare, wantFare)
	}
	if data.DurationMinutes <= 0 {
		t.Error("expected positive duration")
	}
	if len(data.Route) != 21 {
		t.Errorf("route has %d points, want 21", len(data.Route))
	}
	if data.Route[0] != req.Pickup || data.Route[20] != req.Destination {
		t.Error("route endpoints do not match the request")
	}
}

func TestEstimateRejectsBadInput(t *testing.T) {
	service, _ := setupRideService()

	_, err := service.Estimate(EstimateRequest{
		Pickup:      entities.Coordinate{Latitude: 120, Longitude: 0},
		Destination: entities.Coordinate{Latitude: 0, Longitude: 0},
	})
	if err == nil {
		t.Fatal("expected out-of-range coordinates to fail")
	}

	_, err = service.Estimate(EstimateRequest{
		Pickup:      entities.Coordinate{Latitude: 23.78, Longitude: 90.41},
		Destination: entities.Coordinate{Latitude: 23.74, Longitude: 90.37},
		VehicleType: "rickshaw",
	})
	if err == nil {
		t.Fatal("expected unknown vehicle type to fail")
	}
}
