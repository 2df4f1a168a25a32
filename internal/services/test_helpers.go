package services

import (
	"context"
	"time"

	"github.com/Jeevaranjani21/vdart-backend/internal/models"
)

// MockUserRepository implements UserRepository for testing
type MockUserRepository struct {
	CreateFunc     func(ctx context.Context, user *models.User) (*models.User, error)
	GetByIDFunc    func(ctx context.Context, id string) (*models.User, error)
	GetByEmailFunc func(ctx context.Context, email string) (*models.User, error)
	SetOTPFunc     func(ctx context.Context, id, code string, expiresAt time.Time) error
	ConsumeOTPFunc func(ctx context.Context, id string) error
	DeleteFunc     func(ctx context.Context, id string) error
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	return nil, models.ErrInternalServer
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, models.ErrNotFound
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return nil, models.ErrNotFound
}

func (m *MockUserRepository) SetOTP(ctx context.Context, id, code string, expiresAt time.Time) error {
	if m.SetOTPFunc != nil {
		return m.SetOTPFunc(ctx, id, code, expiresAt)
	}
	return nil
}

func (m *MockUserRepository) ConsumeOTP(ctx context.Context, id string) error {
	if m.ConsumeOTPFunc != nil {
		return m.ConsumeOTPFunc(ctx, id)
	}
	return nil
}

func (m *MockUserRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// MockSessionRepository implements SessionRepository for testing
type MockSessionRepository struct {
	CreateFunc func(ctx context.Context, userID, tokenHash string, expiresAt time.Time) (*models.Session, error)
}

func (m *MockSessionRepository) Create(ctx context.Context, userID, tokenHash string, expiresAt time.Time) (*models.Session, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, userID, tokenHash, expiresAt)
	}
	return &models.Session{
		ID:        "session_123",
		UserID:    userID,
		TokenHash: tokenHash,
		ExpiresAt: expiresAt,
		CreatedAt: time.Now(),
	}, nil
}

// MockOTPIssuer implements OTPIssuer for testing
type MockOTPIssuer struct {
	IssueFunc func() (string, time.Time, error)
}

func (m *MockOTPIssuer) Issue() (string, time.Time, error) {
	if m.IssueFunc != nil {
		return m.IssueFunc()
	}
	return "483920", time.Now().Add(10 * time.Minute), nil
}

// MockEmailSender implements EmailSender for testing
type MockEmailSender struct {
	SendOTPEmailFunc func(ctx context.Context, toAddress, displayName, code string, expiry time.Duration) error
}

func (m *MockEmailSender) SendOTPEmail(ctx context.Context, toAddress, displayName, code string, expiry time.Duration) error {
	if m.SendOTPEmailFunc != nil {
		return m.SendOTPEmailFunc(ctx, toAddress, displayName, code, expiry)
	}
	return nil
}

// Test data builders

func NewTestUser(id, fullName, email string) *models.User {
	now := time.Now()
	return &models.User{
		ID:           id,
		FullName:     fullName,
		Email:        email,
		PasswordHash: "$2a$12$invalidhashfortestingonly",
		IsVerified:   true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// NewTestUserWithOTP creates an unverified user with a pending code
func NewTestUserWithOTP(id, fullName, email, code string, expiresAt time.Time) *models.User {
	user := NewTestUser(id, fullName, email)
	user.IsVerified = false
	user.OTP = &code
	user.OTPExpiresAt = &expiresAt
	return user
}
