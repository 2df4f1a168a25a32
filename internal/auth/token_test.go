package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSessionToken(t *testing.T) {
	plain, hash, err := GenerateSessionToken()
	require.NoError(t, err)

	assert.Len(t, plain, 64) // 32 bytes hex encoded
	assert.Len(t, hash, 64)  // sha256 hex encoded
	assert.NotEqual(t, plain, hash)
	assert.Equal(t, HashSessionToken(plain), hash)
}

func TestGenerateSessionToken_Unique(t *testing.T) {
	a, _, err := GenerateSessionToken()
	require.NoError(t, err)
	b, _, err := GenerateSessionToken()
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}
