package models

import (
	"time"
)

// User is a landing-page account. OTP and OTPExpiresAt are always both
// nil or both set: a pending code cannot exist without its expiry.
type User struct {
	ID           string
	FullName     string
	Email        string
	PasswordHash string
	IsVerified   bool
	OTP          *string
	OTPExpiresAt *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// HasPendingOTP reports whether a code is stored for the user,
// regardless of whether it has expired.
func (u *User) HasPendingOTP() bool {
	return u.OTP != nil && u.OTPExpiresAt != nil
}

// OTPExpired reports whether the stored code's window has passed.
// Returns false when no code is pending.
func (u *User) OTPExpired(now time.Time) bool {
	return u.OTPExpiresAt != nil && now.After(*u.OTPExpiresAt)
}
