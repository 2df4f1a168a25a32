package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/Jeevaranjani21/vdart-backend/internal/auth"
	"github.com/Jeevaranjani21/vdart-backend/internal/models"
	"github.com/Jeevaranjani21/vdart-backend/internal/services"
	pkghttp "github.com/Jeevaranjani21/vdart-backend/pkg/http"
)

// AuthServiceInterface defines the interface for auth business logic
type AuthServiceInterface interface {
	Register(ctx context.Context, fullName, email, password string) error
	Login(ctx context.Context, email, password string) error
	ResendOTP(ctx context.Context, email string) error
	VerifyOTP(ctx context.Context, email, code string) (*services.VerifyResult, error)
}

// AuthHandler handles the signup and login HTTP endpoints
type AuthHandler struct {
	service AuthServiceInterface
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(service AuthServiceInterface) *AuthHandler {
	return &AuthHandler{service: service}
}

// Request DTOs

// RegisterRequest represents the request body for registration
type RegisterRequest struct {
	FullName        string `json:"full_name" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=8,max=128"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=Password"`
}

// LoginRequest represents the request body for login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ResendOTPRequest represents the request body for resending a code
type ResendOTPRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// VerifyOTPRequest represents the request body for code verification
type VerifyOTPRequest struct {
	Email string `json:"email" validate:"required,email"`
	OTP   string `json:"otp" validate:"required,len=6,numeric"`
}

// Register handles user registration
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkghttp.WriteBadRequest(w, "Invalid request body.")
		return
	}

	// Email case is preserved as submitted; only whitespace is trimmed
	req.FullName = strings.TrimSpace(req.FullName)
	req.Email = strings.TrimSpace(req.Email)

	if messages := ValidateRequest(req); messages != nil {
		pkghttp.WriteValidationErrors(w, messages)
		return
	}

	err := h.service.Register(r.Context(), req.FullName, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrConflict):
			pkghttp.WriteConflict(w, "An account with this email already exists.")
		case errors.Is(err, models.ErrBadRequest):
			pkghttp.WriteValidationErrors(w, []string{"Password must be at least 8 characters."})
		case errors.Is(err, models.ErrDeliveryFailed):
			pkghttp.WriteInternalError(w, "Failed to send verification email. Please try again.")
		default:
			pkghttp.WriteInternalError(w, "Internal server error.")
		}
		return
	}

	pkghttp.WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"message": "Registration successful! Check your email for the verification code.",
		"email":   req.Email,
	})
}

// Login handles credential checks; success sends a fresh OTP rather
// than a session, which is only issued after verification
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkghttp.WriteBadRequest(w, "Invalid request body.")
		return
	}

	req.Email = strings.TrimSpace(req.Email)

	if messages := ValidateRequest(req); messages != nil {
		pkghttp.WriteValidationErrors(w, messages)
		return
	}

	err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrUnauthorized):
			pkghttp.WriteUnauthorized(w, "Invalid email or password.")
		case errors.Is(err, models.ErrDeliveryFailed):
			pkghttp.WriteInternalError(w, "Failed to send verification email. Please try again.")
		default:
			pkghttp.WriteInternalError(w, "Internal server error.")
		}
		return
	}

	pkghttp.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "OTP sent to your email.",
		"email":   req.Email,
	})
}

// ResendOTP handles replacing a pending code with a fresh one
func (h *AuthHandler) ResendOTP(w http.ResponseWriter, r *http.Request) {
	var req ResendOTPRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkghttp.WriteBadRequest(w, "Invalid request body.")
		return
	}

	req.Email = strings.TrimSpace(req.Email)

	if messages := ValidateRequest(req); messages != nil {
		pkghttp.WriteValidationErrors(w, messages)
		return
	}

	err := h.service.ResendOTP(r.Context(), req.Email)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrNotFound):
			pkghttp.WriteNotFound(w, "User not found.")
		case errors.Is(err, models.ErrDeliveryFailed):
			pkghttp.WriteInternalError(w, "Failed to send verification email. Please try again.")
		default:
			pkghttp.WriteInternalError(w, "Internal server error.")
		}
		return
	}

	pkghttp.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "A new OTP has been sent to your email.",
	})
}

// VerifyOTP handles code verification and issues the session token
func (h *AuthHandler) VerifyOTP(w http.ResponseWriter, r *http.Request) {
	var req VerifyOTPRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkghttp.WriteBadRequest(w, "Invalid request body.")
		return
	}

	req.Email = strings.TrimSpace(req.Email)
	req.OTP = strings.TrimSpace(req.OTP)

	if messages := ValidateRequest(req); messages != nil {
		pkghttp.WriteValidationErrors(w, messages)
		return
	}

	result, err := h.service.VerifyOTP(r.Context(), req.Email, req.OTP)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrOTPMismatch):
			pkghttp.WriteUnprocessable(w, "Incorrect OTP. Please try again.")
		case errors.Is(err, models.ErrOTPExpired):
			pkghttp.WriteGone(w, "OTP has expired. Please request a new one.")
		case errors.Is(err, models.ErrNotFound):
			pkghttp.WriteNotFound(w, "User not found.")
		default:
			pkghttp.WriteInternalError(w, "Internal server error.")
		}
		return
	}

	pkghttp.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Email verified successfully!",
		"token":   result.Token,
		"user":    result.User,
	})
}

// Me returns the identity bound to the presented session token
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user := auth.GetUserFromContext(r)
	if user == nil {
		pkghttp.WriteUnauthorized(w, "Authentication required.")
		return
	}

	pkghttp.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"user": services.UserSummary{
			ID:       user.ID,
			FullName: user.FullName,
			Email:    user.Email,
		},
	})
}
