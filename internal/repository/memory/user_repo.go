package memory

import (
	"context"
	"errors"
	"sync"

	"ridehail/internal/domain/entities"
)

var ErrUserNotFound = errors.New("user not found")

// UserRepository serves the fixed demo accounts. It is seeded once at
// construction and read-only afterwards; the mutex exists for parallel tests.
type UserRepository struct {
	mu      sync.RWMutex
	byID    map[string]entities.User
	byEmail map[string]entities.User
}

// NewUserRepository seeds the store with the demo rider, driver and admin.
func NewUserRepository() *UserRepository {
	r := &UserRepository{
		byID:    make(map[string]entities.User),
		byEmail: make(map[string]entities.User),
	}
	for _, u := range entities.DemoUsers() {
		r.byID[u.ID] = u
		r.byEmail[u.Email] = u
	}
	return r
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (entities.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, exists := r.byID[id]
	if !exists {
		return entities.User{}, ErrUserNotFound
	}
	return u, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (entities.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, exists := r.byEmail[email]
	if !exists {
		return entities.User{}, ErrUserNotFound
	}
	return u, nil
}
