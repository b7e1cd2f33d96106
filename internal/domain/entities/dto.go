package entities

// Wire contracts shared by the demo service layer, the gin handlers and the
// real-backend client. Field names match what the browser client sends.

// CreateRideRequest is the body of POST rides/request.
type CreateRideRequest struct {
	PickupLocation Location `json:"pickupLocation" binding:"required"`
	Destination    Location `json:"destination" binding:"required"`
	VehicleType    string   `json:"vehicleType,omitempty"`
}

// AvailabilityUpdate is the body of PATCH drivers/availability.
type AvailabilityUpdate struct {
	Status   Availability `json:"status" binding:"required"`
	Location Coordinate   `json:"location"`
}

// RideData is the payload of single-ride envelopes.
type RideData struct {
	Ride *Ride `json:"ride"`
}

// RidesData is the payload of ride-list envelopes.
type RidesData struct {
	Rides []*Ride `json:"rides"`
}

// DriverData is the payload of driver-snapshot envelopes.
type DriverData struct {
	Driver *DriverSnapshot `json:"driver"`
}

// AuthData is the payload of login envelopes.
type AuthData struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

// LocationsData is the payload of location-search envelopes.
type LocationsData struct {
	Locations []Location `json:"locations"`
}
