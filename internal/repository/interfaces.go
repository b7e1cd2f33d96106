package repository

import (
	"context"

	"ridehail/internal/domain/entities"
)

// RideRepository is the session-scoped ride store. Ordering contract:
// most-recent-first — Prepend puts the new ride at the head and both listing
// calls preserve that order.
type RideRepository interface {
	Prepend(ctx context.Context, ride *entities.Ride) error
	List(ctx context.Context) ([]*entities.Ride, error)
	ListByStatus(ctx context.Context, status entities.RideStatus) ([]*entities.Ride, error)
	GetByID(ctx context.Context, id string) (*entities.Ride, error)
	Update(ctx context.Context, ride *entities.Ride) error
	SetStatus(ctx context.Context, id string, status entities.RideStatus) error
}

// DriverRepository keeps the last availability snapshot per driver for the
// life of the session.
type DriverRepository interface {
	Save(ctx context.Context, snapshot *entities.DriverSnapshot) error
	Get(ctx context.Context, driverID string) (*entities.DriverSnapshot, error)
}

// UserRepository looks up the fixed demo accounts.
type UserRepository interface {
	GetByID(ctx context.Context, id string) (entities.User, error)
	GetByEmail(ctx context.Context, email string) (entities.User, error)
}
