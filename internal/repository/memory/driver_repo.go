package memory

import (
	"context"
	"errors"
	"sync"

	"ridehail/internal/domain/entities"
)

var ErrDriverNotFound = errors.New("driver not found")

// DriverRepository keeps the last-written availability snapshot per driver.
// Session-scoped only: nothing outlives the process.
type DriverRepository struct {
	mu        sync.RWMutex
	snapshots map[string]*entities.DriverSnapshot
}

func NewDriverRepository() *DriverRepository {
	return &DriverRepository{
		snapshots: make(map[string]*entities.DriverSnapshot),
	}
}

func (r *DriverRepository) Save(ctx context.Context, snapshot *entities.DriverSnapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.snapshots[snapshot.ID] = snapshot
	return nil
}

func (r *DriverRepository) Get(ctx context.Context, driverID string) (*entities.DriverSnapshot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snapshot, exists := r.snapshots[driverID]
	if !exists {
		return nil, ErrDriverNotFound
	}
	return snapshot, nil
}
