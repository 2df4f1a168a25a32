package handlers

import (
	"context"

	"github.com/Jeevaranjani21/vdart-backend/internal/services"
)

// MockAuthService implements AuthServiceInterface for testing
type MockAuthService struct {
	RegisterFunc  func(ctx context.Context, fullName, email, password string) error
	LoginFunc     func(ctx context.Context, email, password string) error
	ResendOTPFunc func(ctx context.Context, email string) error
	VerifyOTPFunc func(ctx context.Context, email, code string) (*services.VerifyResult, error)
}

func (m *MockAuthService) Register(ctx context.Context, fullName, email, password string) error {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, fullName, email, password)
	}
	return nil
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) error {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, email, password)
	}
	return nil
}

func (m *MockAuthService) ResendOTP(ctx context.Context, email string) error {
	if m.ResendOTPFunc != nil {
		return m.ResendOTPFunc(ctx, email)
	}
	return nil
}

func (m *MockAuthService) VerifyOTP(ctx context.Context, email, code string) (*services.VerifyResult, error) {
	if m.VerifyOTPFunc != nil {
		return m.VerifyOTPFunc(ctx, email, code)
	}
	return &services.VerifyResult{
		Token: "f1e2d3c4b5a69788f1e2d3c4b5a69788f1e2d3c4b5a69788f1e2d3c4b5a69788",
		User:  services.UserSummary{ID: "user123", FullName: "Alice", Email: "alice@example.com"},
	}, nil
}
