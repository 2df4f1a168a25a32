package auth

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOTPIssuer_Issue_Format(t *testing.T) {
	issuer := NewOTPIssuer(10 * time.Minute)

	for i := 0; i < 100; i++ {
		code, _, err := issuer.Issue()
		require.NoError(t, err)
		assert.Len(t, code, OTPLength)

		n, err := strconv.Atoi(code)
		require.NoError(t, err, "code must be numeric: %q", code)
		assert.GreaterOrEqual(t, n, 0)
		assert.Less(t, n, 1_000_000)
	}
}

func TestOTPIssuer_Issue_ExpiryWindow(t *testing.T) {
	fixed := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	issuer := NewOTPIssuerWithClock(10*time.Minute, func() time.Time { return fixed })

	_, expiresAt, err := issuer.Issue()
	require.NoError(t, err)
	assert.Equal(t, fixed.Add(10*time.Minute), expiresAt)
}

func TestOTPIssuer_Issue_CodesVary(t *testing.T) {
	issuer := NewOTPIssuer(10 * time.Minute)

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		code, _, err := issuer.Issue()
		require.NoError(t, err)
		seen[code] = true
	}

	// 50 draws from a million values colliding down to 1 would mean a
	// broken source.
	assert.Greater(t, len(seen), 1)
}
