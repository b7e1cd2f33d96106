package geo

import (
	"context"
	"errors"

	"ridehail/internal/domain/entities"
)

// Geolocation failure classes. Providers translate their native errors into
// these so calling flows can degrade uniformly.
var (
	ErrPermissionDenied = errors.New("location permission denied")
	ErrUnavailable      = errors.New("location information unavailable")
	ErrTimeout          = errors.New("location request timed out")
)

// Locator is a source of the caller's current position. The browser client
// backs this with the device geolocation API; tests and the demo backend use
// a static one.
type Locator interface {
	CurrentLocation(ctx context.Context) (entities.Coordinate, error)
}

// StaticLocator always reports a fixed coordinate.
type StaticLocator struct {
	Position entities.Coordinate
}

func (s StaticLocator) CurrentLocation(ctx context.Context) (entities.Coordinate, error) {
	return s.Position, nil
}

// FailingLocator always fails with the given error. Useful for exercising
// degraded flows.
type FailingLocator struct {
	Err error
}

func (f FailingLocator) CurrentLocation(ctx context.Context) (entities.Coordinate, error) {
	return entities.Coordinate{}, f.Err
}

// Resolve asks the locator for a position and falls back to the default
// center on any failure, so flows proceed degraded rather than fail outright.
// The returned bool reports whether the position is real.
func Resolve(ctx context.Context, l Locator) (entities.Coordinate, bool) {
	if l == nil {
		return DefaultCenter(), false
	}
	pos, err := l.CurrentLocation(ctx)
	if err != nil {
		return DefaultCenter(), false
	}
	return pos, true
}
