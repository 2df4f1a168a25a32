package models

import (
	"time"
)

// Session binds an issued opaque token to a user server-side. Only the
// SHA-256 hash of the token is stored; the plain token goes to the
// client once and is never persisted.
type Session struct {
	ID        string
	UserID    string
	TokenHash string `json:"-"`
	ExpiresAt time.Time
	CreatedAt time.Time
}

// IsExpired checks whether the session has passed its expiry.
func (s *Session) IsExpired() bool {
	return time.Now().After(s.ExpiresAt)
}
