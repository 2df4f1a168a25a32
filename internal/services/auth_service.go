package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/Jeevaranjani21/vdart-backend/internal/auth"
	"github.com/Jeevaranjani21/vdart-backend/internal/models"
	pkgauth "github.com/Jeevaranjani21/vdart-backend/pkg/auth"
	pkglogger "github.com/Jeevaranjani21/vdart-backend/pkg/logger"
)

// UserRepository defines the credential store operations the auth flow needs
type UserRepository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	SetOTP(ctx context.Context, id, code string, expiresAt time.Time) error
	ConsumeOTP(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

// SessionRepository defines server-side session storage
type SessionRepository interface {
	Create(ctx context.Context, userID, tokenHash string, expiresAt time.Time) (*models.Session, error)
}

// OTPIssuer generates a fresh code and its expiry
type OTPIssuer interface {
	Issue() (string, time.Time, error)
}

// AuthService orchestrates the register/login/resend/verify flow
type AuthService struct {
	users         UserRepository
	sessions      SessionRepository
	otp           OTPIssuer
	email         EmailSender
	logger        *slog.Logger
	otpExpiry     time.Duration
	sessionExpiry time.Duration
	now           func() time.Time
}

// NewAuthService creates a new AuthService
func NewAuthService(
	users UserRepository,
	sessions SessionRepository,
	otp OTPIssuer,
	email EmailSender,
	logger *slog.Logger,
	otpExpiry time.Duration,
	sessionExpiry time.Duration,
) *AuthService {
	return &AuthService{
		users:         users,
		sessions:      sessions,
		otp:           otp,
		email:         email,
		logger:        logger,
		otpExpiry:     otpExpiry,
		sessionExpiry: sessionExpiry,
		now:           time.Now,
	}
}

// UserSummary is the minimal identity returned after verification
type UserSummary struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
}

// VerifyResult is returned on successful OTP verification
type VerifyResult struct {
	Token string
	User  UserSummary
}

// Register creates an unverified user with a pending OTP and emails
// the code. A delivery failure rolls the new record back so no
// unverifiable account is left behind.
func (s *AuthService) Register(ctx context.Context, fullName, email, password string) error {
	_, err := s.users.GetByEmail(ctx, email)
	if err == nil {
		s.logger.Info("registration failed: email already registered",
			slog.String("email", pkglogger.SanitizedEmail(email)))
		return models.ErrConflict
	}
	if !errors.Is(err, models.ErrNotFound) {
		s.logger.Error("failed to check for existing user", slog.Any("error", err))
		return models.ErrInternalServer
	}

	if err := pkgauth.ValidatePassword(password); err != nil {
		return models.ErrBadRequest
	}

	hashedPassword, err := pkgauth.HashPassword(password)
	if err != nil {
		s.logger.Error("failed to hash password", slog.Any("error", err))
		return models.ErrInternalServer
	}

	code, expiresAt, err := s.otp.Issue()
	if err != nil {
		s.logger.Error("failed to issue otp", slog.Any("error", err))
		return models.ErrInternalServer
	}

	user := &models.User{
		FullName:     fullName,
		Email:        email,
		PasswordHash: hashedPassword,
		IsVerified:   false,
		OTP:          &code,
		OTPExpiresAt: &expiresAt,
	}

	createdUser, err := s.users.Create(ctx, user)
	if err != nil {
		if errors.Is(err, models.ErrConflict) {
			return models.ErrConflict
		}
		s.logger.Error("failed to create user", slog.Any("error", err))
		return models.ErrInternalServer
	}

	if err := s.email.SendOTPEmail(ctx, email, fullName, code, s.otpExpiry); err != nil {
		// Roll back so the account doesn't linger without a usable code
		if delErr := s.users.Delete(ctx, createdUser.ID); delErr != nil {
			s.logger.Error("failed to roll back user after delivery failure",
				slog.String("user_id", createdUser.ID),
				slog.Any("error", delErr))
		}
		s.logger.Error("failed to deliver registration otp",
			slog.String("email", pkglogger.SanitizedEmail(email)),
			slog.Any("error", err))
		return models.ErrDeliveryFailed
	}

	s.logger.Info("user registered", slog.String("user_id", createdUser.ID))
	return nil
}

// Login checks credentials and re-issues a fresh OTP. Unknown email
// and wrong password fail identically so callers cannot probe for
// account existence.
func (s *AuthService) Login(ctx context.Context, email, password string) error {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			s.logger.Info("login failed: invalid credentials")
			return models.ErrUnauthorized
		}
		s.logger.Error("failed to get user by email", slog.Any("error", err))
		return models.ErrInternalServer
	}

	if err := pkgauth.ComparePassword(user.PasswordHash, password); err != nil {
		s.logger.Info("login failed: invalid credentials")
		return models.ErrUnauthorized
	}

	if err := s.issueAndSend(ctx, user); err != nil {
		return err
	}

	s.logger.Info("login otp issued", slog.String("user_id", user.ID))
	return nil
}

// ResendOTP replaces any pending code with a fresh one and emails it.
func (s *AuthService) ResendOTP(ctx context.Context, email string) error {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return models.ErrNotFound
		}
		s.logger.Error("failed to get user by email", slog.Any("error", err))
		return models.ErrInternalServer
	}

	if err := s.issueAndSend(ctx, user); err != nil {
		return err
	}

	s.logger.Info("otp resent", slog.String("user_id", user.ID))
	return nil
}

// issueAndSend stores a fresh code (invalidating any prior one, even
// if unexpired) and delivers it.
func (s *AuthService) issueAndSend(ctx context.Context, user *models.User) error {
	code, expiresAt, err := s.otp.Issue()
	if err != nil {
		s.logger.Error("failed to issue otp", slog.Any("error", err))
		return models.ErrInternalServer
	}

	if err := s.users.SetOTP(ctx, user.ID, code, expiresAt); err != nil {
		s.logger.Error("failed to store otp", slog.String("user_id", user.ID), slog.Any("error", err))
		return models.ErrInternalServer
	}

	if err := s.email.SendOTPEmail(ctx, user.Email, user.FullName, code, s.otpExpiry); err != nil {
		s.logger.Error("failed to deliver otp",
			slog.String("user_id", user.ID),
			slog.Any("error", err))
		return models.ErrDeliveryFailed
	}

	return nil
}

// VerifyOTP checks a submitted code against the stored one. On match
// before expiry it marks the user verified, consumes the code and
// issues a session token bound to the user server-side.
func (s *AuthService) VerifyOTP(ctx context.Context, email, code string) (*VerifyResult, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, models.ErrNotFound
		}
		s.logger.Error("failed to get user by email", slog.Any("error", err))
		return nil, models.ErrInternalServer
	}

	// No pending code behaves like a mismatch: a consumed or never
	// issued code can't be redeemed.
	if !user.HasPendingOTP() || *user.OTP != code {
		s.logger.Info("otp verification failed: mismatch", slog.String("user_id", user.ID))
		return nil, models.ErrOTPMismatch
	}

	if user.OTPExpired(s.now()) {
		s.logger.Info("otp verification failed: expired",
			slog.String("user_id", user.ID),
			slog.Time("expires_at", *user.OTPExpiresAt))
		return nil, models.ErrOTPExpired
	}

	// Single statement: flips is_verified and clears the code, so a
	// concurrent verify of the same code loses here.
	if err := s.users.ConsumeOTP(ctx, user.ID); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, models.ErrOTPMismatch
		}
		s.logger.Error("failed to consume otp", slog.String("user_id", user.ID), slog.Any("error", err))
		return nil, models.ErrInternalServer
	}

	plainToken, tokenHash, err := auth.GenerateSessionToken()
	if err != nil {
		s.logger.Error("failed to generate session token", slog.Any("error", err))
		return nil, models.ErrInternalServer
	}

	if _, err := s.sessions.Create(ctx, user.ID, tokenHash, s.now().Add(s.sessionExpiry)); err != nil {
		s.logger.Error("failed to create session", slog.String("user_id", user.ID), slog.Any("error", err))
		return nil, models.ErrInternalServer
	}

	s.logger.Info("user verified", slog.String("user_id", user.ID))

	return &VerifyResult{
		Token: plainToken,
		User: UserSummary{
			ID:       user.ID,
			FullName: user.FullName,
			Email:    user.Email,
		},
	}, nil
}
