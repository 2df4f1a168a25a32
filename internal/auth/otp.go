package auth

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

// OTPLength is the fixed width of issued codes.
const OTPLength = 6

var otpMax = big.NewInt(1_000_000)

// OTPIssuer generates fixed-width numeric one-time codes with an
// expiry window. Codes come from crypto/rand, never math/rand.
type OTPIssuer struct {
	window time.Duration
	now    func() time.Time
}

// NewOTPIssuer creates an issuer with the given validity window.
func NewOTPIssuer(window time.Duration) *OTPIssuer {
	return &OTPIssuer{window: window, now: time.Now}
}

// NewOTPIssuerWithClock allows tests to control the issuance time.
func NewOTPIssuerWithClock(window time.Duration, now func() time.Time) *OTPIssuer {
	return &OTPIssuer{window: window, now: now}
}

// Issue returns a zero-padded 6-digit code and its expiry, which is
// exactly issuance time plus the configured window.
func (i *OTPIssuer) Issue() (string, time.Time, error) {
	n, err := rand.Int(rand.Reader, otpMax)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to generate otp: %w", err)
	}

	code := fmt.Sprintf("%0*d", OTPLength, n.Int64())
	return code, i.now().Add(i.window), nil
}
