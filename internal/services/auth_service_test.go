package services

import (
	"context"
	"strings"
	"testing"

	"ridehail/internal/config"
	"ridehail/internal/domain/entities"
	"ridehail/internal/repository/memory"
	"ridehail/pkg/apierror"
)

func setupAuthService() *AuthService {
	return NewAuthService(memory.NewUserRepository(), config.NewDefaultConfig().Latency, NoDelay)
}

func TestLogin(t *testing.T) {
	service := setupAuthService()

	resp, err := service.Login(context.Background(), "test@rider.com", "password")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if resp.Message != "Login successful" {
		t.Errorf("message = %q", resp.Message)
	}
	if resp.Data.User.Role != entities.RoleRider {
		t.Errorf("role = %s, want rider", resp.Data.User.Role)
	}
	if !strings.HasPrefix(resp.Data.Token, "demo:demo-rider-1:") {
		t.Errorf("token %q not bound to the user", resp.Data.Token)
	}
}

func TestLoginTokensDiffer(t *testing.T) {
	service := setupAuthService()
	ctx := context.Background()

	first, _ := service.Login(ctx, "test@driver.com", "password")
	second, _ := service.Login(ctx, "test@driver.com", "password")
	if first.Data.Token == second.Data.Token {
		t.Error("expected distinct tokens per login")
	}
}

func TestLoginWrongPassword(t *testing.T) {
	service := setupAuthService()

	_, err := service.Login(context.Background(), "test@rider.com", "hunter2")
	ae, ok := err.(*apierror.APIError)
	if !ok || ae.Status != 401 {
		t.Fatalf("expected 401 APIError, got %v", err)
	}
	if !strings.Contains(ae.Message, "Invalid password") {
		t.Errorf("message = %q", ae.Message)
	}
}

func TestLoginUnknownUser(t *testing.T) {
	service := setupAuthService()

	_, err := service.Login(context.Background(), "nobody@example.com", "password")
	ae, ok := err.(*apierror.APIError)
	if !ok || ae.Status != 401 {
		t.Fatalf("expected 401 APIError, got %v", err)
	}
	if !strings.Contains(ae.Message, "User not found") {
		t.Errorf("message = %q", ae.Message)
	}
}
