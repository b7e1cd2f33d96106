package services

import (
	"context"

	"ridehail/internal/config"
	"ridehail/internal/domain/entities"
	"ridehail/internal/repository"
	"ridehail/pkg/apierror"
	"ridehail/pkg/utils"
)

// demoPassword is the shared password of the fixed demo accounts.
const demoPassword = "password"

// AuthService issues the mock bearer tokens demo mode runs on. Failures are
// thrown with the normalized shape, never swallowed.
type AuthService struct {
	users   repository.UserRepository
	latency config.LatencyConfig
	delay   Delay
}

func NewAuthService(users repository.UserRepository, latency config.LatencyConfig, delay Delay) *AuthService {
	if delay == nil {
		delay = Sleep
	}
	return &AuthService{users: users, latency: latency, delay: delay}
}

// Login checks the demo credentials and returns the user with a fresh token.
func (s *AuthService) Login(ctx context.Context, email, password string) (*entities.Response[entities.AuthData], error) {
	s.delay(s.latency.Login)

	if password != demoPassword {
		return nil, &apierror.APIError{
			Status:  401,
			Message: `Invalid password. Use "password" for demo accounts.`,
		}
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, &apierror.APIError{
			Status:  401,
			Message: "User not found. Try test@rider.com, test@driver.com, or test@admin.com",
		}
	}

	data := entities.AuthData{
		User:  user,
		Token: utils.GenerateToken(user.ID),
	}
	return entities.OK("Login successful", data), nil
}
