package services

import (
	"context"
	"fmt"

	"ridehail/internal/config"
	"ridehail/internal/domain/entities"
	"ridehail/internal/repository"
	"ridehail/pkg/apierror"
)

type DriverService struct {
	users   repository.UserRepository
	drivers repository.DriverRepository
	latency config.LatencyConfig
	delay   Delay
}

func NewDriverService(users repository.UserRepository, drivers repository.DriverRepository, latency config.LatencyConfig, delay Delay) *DriverService {
	if delay == nil {
		delay = Sleep
	}
	return &DriverService{users: users, drivers: drivers, latency: latency, delay: delay}
}

// UpdateAvailability records a driver's availability toggle and echoes the
// resulting snapshot: online maps to active, offline to inactive, with the
// given last-known location. Session-scoped only.
func (s *DriverService) UpdateAvailability(ctx context.Context, driverID string, update entities.AvailabilityUpdate) (*entities.Response[entities.DriverData], error) {
	s.delay(s.latency.DriverStatus)

	if !update.Status.Valid() {
		return nil, &apierror.APIError{Status: 400, Message: "Status must be online or offline"}
	}

	user, err := s.users.GetByID(ctx, driverID)
	if err != nil {
		return nil, &apierror.APIError{Status: 404, Message: "Driver not found"}
	}

	snapshot := &entities.DriverSnapshot{
		ID:       user.ID,
		Name:     user.Name,
		Email:    user.Email,
		Role:     user.Role,
		Phone:    user.Phone,
		Verified: user.Verified,
		Status:   entities.ActivityFor(update.Status),
		Location: update.Location,
	}

	if err := s.drivers.Save(ctx, snapshot); err != nil {
		return nil, fmt.Errorf("save driver snapshot: %w", err)
	}

	message := fmt.Sprintf("Status updated to %s", update.Status)
	return entities.OK(message, entities.DriverData{Driver: snapshot}), nil
}

// IncomingRequests always resolves to an empty list in demo mode: no
// matching engine is simulated, intentionally.
func (s *DriverService) IncomingRequests(ctx context.Context) (*entities.Response[[]*entities.Ride], error) {
	s.delay(s.latency.DriverStatus)

	return entities.OK("Incoming requests retrieved", []*entities.Ride{}), nil
}
