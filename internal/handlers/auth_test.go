package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Jeevaranjani21/vdart-backend/internal/models"
	"github.com/Jeevaranjani21/vdart-backend/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postJSON(t *testing.T, handler http.HandlerFunc, body map[string]interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func validRegisterBody() map[string]interface{} {
	return map[string]interface{}{
		"full_name":        "Alice Smith",
		"email":            "alice@example.com",
		"password":         "password1",
		"confirm_password": "password1",
	}
}

func TestRegister_Success(t *testing.T) {
	handler := NewAuthHandler(&MockAuthService{})

	rec := postJSON(t, handler.Register, validRegisterBody())

	assert.Equal(t, http.StatusCreated, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Registration successful! Check your email for the verification code.", body["message"])
	assert.Equal(t, "alice@example.com", body["email"])
}

func TestRegister_ValidationErrors(t *testing.T) {
	handler := NewAuthHandler(&MockAuthService{
		RegisterFunc: func(ctx context.Context, fullName, email, password string) error {
			t.Fatal("service must not be called on validation failure")
			return nil
		},
	})

	rec := postJSON(t, handler.Register, map[string]interface{}{
		"full_name":        "",
		"email":            "not-an-email",
		"password":         "short",
		"confirm_password": "different",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, false, body["success"])

	errs, ok := body["errors"].([]interface{})
	require.True(t, ok)
	assert.Contains(t, errs, "Full name is required.")
	assert.Contains(t, errs, "Invalid email address.")
	assert.Contains(t, errs, "Password must be at least 8 characters.")
	assert.Contains(t, errs, "Passwords do not match.")
}

func TestRegister_DuplicateEmail(t *testing.T) {
	handler := NewAuthHandler(&MockAuthService{
		RegisterFunc: func(ctx context.Context, fullName, email, password string) error {
			return models.ErrConflict
		},
	})

	rec := postJSON(t, handler.Register, validRegisterBody())

	assert.Equal(t, http.StatusConflict, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "An account with this email already exists.", body["message"])
}

func TestRegister_DeliveryFailure(t *testing.T) {
	handler := NewAuthHandler(&MockAuthService{
		RegisterFunc: func(ctx context.Context, fullName, email, password string) error {
			return models.ErrDeliveryFailed
		},
	})

	rec := postJSON(t, handler.Register, validRegisterBody())

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Failed to send verification email. Please try again.", body["message"])
}

func TestRegister_InvalidBody(t *testing.T) {
	handler := NewAuthHandler(&MockAuthService{})

	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	handler.Register(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLogin_Success(t *testing.T) {
	handler := NewAuthHandler(&MockAuthService{})

	rec := postJSON(t, handler.Login, map[string]interface{}{
		"email":    "alice@example.com",
		"password": "password1",
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "OTP sent to your email.", body["message"])
	assert.Equal(t, "alice@example.com", body["email"])
}

func TestLogin_InvalidCredentials(t *testing.T) {
	handler := NewAuthHandler(&MockAuthService{
		LoginFunc: func(ctx context.Context, email, password string) error {
			return models.ErrUnauthorized
		},
	})

	rec := postJSON(t, handler.Login, map[string]interface{}{
		"email":    "alice@example.com",
		"password": "wrongpassword",
	})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Invalid email or password.", body["message"])
}

func TestLogin_MissingFields(t *testing.T) {
	handler := NewAuthHandler(&MockAuthService{})

	rec := postJSON(t, handler.Login, map[string]interface{}{
		"email": "alice@example.com",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestResendOTP_Success(t *testing.T) {
	handler := NewAuthHandler(&MockAuthService{})

	rec := postJSON(t, handler.ResendOTP, map[string]interface{}{
		"email": "alice@example.com",
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "A new OTP has been sent to your email.", body["message"])
}

func TestResendOTP_UnknownUser(t *testing.T) {
	handler := NewAuthHandler(&MockAuthService{
		ResendOTPFunc: func(ctx context.Context, email string) error {
			return models.ErrNotFound
		},
	})

	rec := postJSON(t, handler.ResendOTP, map[string]interface{}{
		"email": "nobody@example.com",
	})

	assert.Equal(t, http.StatusNotFound, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "User not found.", body["message"])
}

func TestVerifyOTP_Success(t *testing.T) {
	handler := NewAuthHandler(&MockAuthService{
		VerifyOTPFunc: func(ctx context.Context, email, code string) (*services.VerifyResult, error) {
			assert.Equal(t, "483920", code)
			return &services.VerifyResult{
				Token: "f1e2d3c4b5a69788f1e2d3c4b5a69788f1e2d3c4b5a69788f1e2d3c4b5a69788",
				User:  services.UserSummary{ID: "user123", FullName: "Alice Smith", Email: email},
			}, nil
		},
	})

	rec := postJSON(t, handler.VerifyOTP, map[string]interface{}{
		"email": "alice@example.com",
		"otp":   "483920",
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Email verified successfully!", body["message"])
	assert.NotEmpty(t, body["token"])

	user, ok := body["user"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "user123", user["id"])
	assert.Equal(t, "Alice Smith", user["full_name"])
	assert.Equal(t, "alice@example.com", user["email"])
}

func TestVerifyOTP_Mismatch(t *testing.T) {
	handler := NewAuthHandler(&MockAuthService{
		VerifyOTPFunc: func(ctx context.Context, email, code string) (*services.VerifyResult, error) {
			return nil, models.ErrOTPMismatch
		},
	})

	rec := postJSON(t, handler.VerifyOTP, map[string]interface{}{
		"email": "alice@example.com",
		"otp":   "000000",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Incorrect OTP. Please try again.", body["message"])
}

func TestVerifyOTP_Expired(t *testing.T) {
	handler := NewAuthHandler(&MockAuthService{
		VerifyOTPFunc: func(ctx context.Context, email, code string) (*services.VerifyResult, error) {
			return nil, models.ErrOTPExpired
		},
	})

	rec := postJSON(t, handler.VerifyOTP, map[string]interface{}{
		"email": "alice@example.com",
		"otp":   "483920",
	})

	assert.Equal(t, http.StatusGone, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "OTP has expired. Please request a new one.", body["message"])
}

func TestVerifyOTP_BadFormat(t *testing.T) {
	handler := NewAuthHandler(&MockAuthService{
		VerifyOTPFunc: func(ctx context.Context, email, code string) (*services.VerifyResult, error) {
			t.Fatal("service must not be called on validation failure")
			return nil, nil
		},
	})

	for _, otp := range []string{"", "1234", "12345678", "abc123"} {
		rec := postJSON(t, handler.VerifyOTP, map[string]interface{}{
			"email": "alice@example.com",
			"otp":   otp,
		})
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code, "otp %q", otp)
	}
}
