package models

import "errors"

// Sentinel errors for common failure conditions
var (
	ErrNotFound       = errors.New("resource not found")
	ErrConflict       = errors.New("resource already exists")
	ErrUnauthorized   = errors.New("unauthorized")
	ErrBadRequest     = errors.New("bad request")
	ErrInternalServer = errors.New("internal server error")

	// OTP flow errors
	ErrOTPMismatch    = errors.New("otp does not match")
	ErrOTPExpired     = errors.New("otp has expired")
	ErrDeliveryFailed = errors.New("verification email could not be delivered")
)
