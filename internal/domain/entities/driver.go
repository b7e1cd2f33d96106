package entities

// Availability is what a driver toggles in the UI.
type Availability string

const (
	AvailabilityOnline  Availability = "online"
	AvailabilityOffline Availability = "offline"
)

func (a Availability) Valid() bool {
	return a == AvailabilityOnline || a == AvailabilityOffline
}

// DriverActivity is the backend's view of an availability toggle:
// online maps to active, offline to inactive.
type DriverActivity string

const (
	DriverActive   DriverActivity = "active"
	DriverInactive DriverActivity = "inactive"
)

// ActivityFor maps the UI-facing availability flag to the stored activity.
func ActivityFor(a Availability) DriverActivity {
	if a == AvailabilityOnline {
		return DriverActive
	}
	return DriverInactive
}

// DriverSnapshot is the driver profile echoed back after an availability
// toggle: the driver's identity plus the mapped activity and last-known
// coordinate. It lives only for the session; nothing is persisted.
type DriverSnapshot struct {
	ID       string         `json:"_id"`
	Name     string         `json:"name"`
	Email    string         `json:"email"`
	Role     Role           `json:"role"`
	Phone    string         `json:"phone,omitempty"`
	Verified bool           `json:"isVerified"`
	Status   DriverActivity `json:"status"`
	Location Coordinate     `json:"location"`
}
