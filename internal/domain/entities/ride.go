package entities

import (
	"errors"
	"time"
)

// VehicleClass is the pricing tier a rider picks when requesting a trip.
type VehicleClass string

const (
	VehicleBike    VehicleClass = "bike"
	VehicleCar     VehicleClass = "car"
	VehiclePremium VehicleClass = "premium"
)

// Valid reports whether the class is one of the known pricing tiers.
func (v VehicleClass) Valid() bool {
	switch v {
	case VehicleBike, VehicleCar, VehiclePremium:
		return true
	}
	return false
}

// RideStatus represents the current lifecycle state of a ride.
//
// The lifecycle is:
//
//	requested → accepted → in_transit → completed
//	    (any non-terminal state can also transition to cancelled)
//
// This core only ever produces rides in the "requested" state; the later
// transitions are owned by driver and admin actions.
type RideStatus string

const (
	RideStatusRequested RideStatus = "requested"
	RideStatusAccepted  RideStatus = "accepted"
	RideStatusInTransit RideStatus = "in_transit"
	RideStatusCompleted RideStatus = "completed"
	RideStatusCancelled RideStatus = "cancelled"
)

// validTransitions defines which status changes are allowed from each state.
// Terminal states have empty slices. This map IS the state machine.
var validTransitions = map[RideStatus][]RideStatus{
	RideStatusRequested: {RideStatusAccepted, RideStatusCancelled},
	RideStatusAccepted:  {RideStatusInTransit, RideStatusCancelled},
	RideStatusInTransit: {RideStatusCompleted, RideStatusCancelled},
	RideStatusCompleted: {},
	RideStatusCancelled: {},
}

// Ride tracks a trip from request through completion. Field names follow the
// wire format the browser client already speaks, so demo and real backends
// serialize identically.
type Ride struct {
	ID             string       `json:"_id"`
	RiderID        string       `json:"riderId"`
	DriverID       string       `json:"driverId,omitempty"`
	PickupLocation Location     `json:"pickupLocation"`
	Destination    Location     `json:"destination"`
	VehicleClass   VehicleClass `json:"vehicleType,omitempty"`
	Fare           int          `json:"fare"`
	DistanceKm     float64      `json:"distance"`
	Status         RideStatus   `json:"status"`
	RequestedAt    time.Time    `json:"requestedAt"`
}

// NewRide creates a Ride in the "requested" state, timestamped now.
func NewRide(id, riderID string, pickup, destination Location, class VehicleClass, fare int, distanceKm float64) *Ride {
	return &Ride{
		ID:             id,
		RiderID:        riderID,
		PickupLocation: pickup,
		Destination:    destination,
		VehicleClass:   class,
		Fare:           fare,
		DistanceKm:     distanceKm,
		Status:         RideStatusRequested,
		RequestedAt:    time.Now(),
	}
}

// CanTransitionTo checks if moving to newStatus is a legal state change.
func (r *Ride) CanTransitionTo(newStatus RideStatus) bool {
	allowed, exists := validTransitions[r.Status]
	if !exists {
		return false
	}
	for _, s := range allowed {
		if s == newStatus {
			return true
		}
	}
	return false
}

// TransitionTo moves the ride to newStatus or returns an error if the state
// machine forbids it.
func (r *Ride) TransitionTo(newStatus RideStatus) error {
	if !r.CanTransitionTo(newStatus) {
		return errors.New("invalid status transition from " + string(r.Status) + " to " + string(newStatus))
	}
	r.Status = newStatus
	return nil
}

// Accept assigns a driver and transitions the ride to accepted.
func (r *Ride) Accept(driverID string) error {
	if err := r.TransitionTo(RideStatusAccepted); err != nil {
		return err
	}
	r.DriverID = driverID
	return nil
}
