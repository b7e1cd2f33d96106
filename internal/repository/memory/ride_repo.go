// Package memory holds the session-scoped in-memory stores backing demo
// mode. Nothing here survives process exit, and a reload starts empty.
package memory

import (
	"context"
	"errors"
	"sync"

	"ridehail/internal/domain/entities"
)

var ErrRideNotFound = errors.New("ride not found")

// RideRepository stores rides in a most-recent-first slice. All mutations are
// single-step under the lock, so concurrent callers never observe a partial
// write; reads copy the backing slice out.
type RideRepository struct {
	mu    sync.RWMutex
	rides []*entities.Ride
}

func NewRideRepository() *RideRepository {
	return &RideRepository{}
}

// Prepend inserts the ride at the head of the list.
func (r *RideRepository) Prepend(ctx context.Context, ride *entities.Ride) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.rides = append([]*entities.Ride{ride}, r.rides...)
	return nil
}

// List returns every ride, newest first.
func (r *RideRepository) List(ctx context.Context) ([]*entities.Ride, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*entities.Ride, len(r.rides))
	copy(out, r.rides)
	return out, nil
}

// ListByStatus returns rides with the given status, list order preserved.
func (r *RideRepository) ListByStatus(ctx context.Context, status entities.RideStatus) ([]*entities.Ride, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*entities.Ride, 0)
	for _, ride := range r.rides {
		if ride.Status == status {
			out = append(out, ride)
		}
	}
	return out, nil
}

func (r *RideRepository) GetByID(ctx context.Context, id string) (*entities.Ride, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, ride := range r.rides {
		if ride.ID == id {
			return ride, nil
		}
	}
	return nil, ErrRideNotFound
}

// Update replaces the stored ride with the same ID.
func (r *RideRepository) Update(ctx context.Context, ride *entities.Ride) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, existing := range r.rides {
		if existing.ID == ride.ID {
			r.rides[i] = ride
			return nil
		}
	}
	return ErrRideNotFound
}

// SetStatus moves a ride to the given status without transition checks.
// Status ownership lives with driver/admin actions outside this core; this
// is the hook those flows (and tests) use.
func (r *RideRepository) SetStatus(ctx context.Context, id string, status entities.RideStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, ride := range r.rides {
		if ride.ID == id {
			ride.Status = status
			return nil
		}
	}
	return ErrRideNotFound
}
