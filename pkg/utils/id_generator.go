package utils

import (
	"github.com/google/uuid"
)

// GenerateRideID returns a fresh unique ride identifier. UUID v4 rather than
// a timestamp: two rides created in the same millisecond must not collide.
func GenerateRideID() string {
	return "ride-" + uuid.New().String()
}

// GenerateToken returns an opaque demo bearer token bound to a user ID. The
// middleware splits on ':' to recover the subject; the suffix only keeps
// tokens from repeating across logins.
func GenerateToken(userID string) string {
	return "demo:" + userID + ":" + uuid.New().String()
}
