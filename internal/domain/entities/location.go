package entities

// Coordinate is a geographic point in decimal degrees.
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Valid reports whether the coordinate lies within the representable
// latitude/longitude ranges. Service calls stay permissive; validation is
// applied at the request-binding edge only.
func (c Coordinate) Valid() bool {
	return c.Latitude >= -90 && c.Latitude <= 90 &&
		c.Longitude >= -180 && c.Longitude <= 180
}

// Location is a coordinate carrying a human-readable address label. Produced
// by search and geolocation, consumed by fare/distance math and ride creation.
type Location struct {
	Address   string  `json:"address"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Coordinate strips the address label.
func (l Location) Coordinate() Coordinate {
	return Coordinate{Latitude: l.Latitude, Longitude: l.Longitude}
}
