package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndComparePassword(t *testing.T) {
	hash, err := HashPassword("password1")
	require.NoError(t, err)
	assert.NotEqual(t, "password1", hash)

	assert.NoError(t, ComparePassword(hash, "password1"))
	assert.Error(t, ComparePassword(hash, "password2"))
}

func TestHashPassword_Empty(t *testing.T) {
	_, err := HashPassword("")
	assert.Error(t, err)
}

func TestHashPassword_Salted(t *testing.T) {
	a, err := HashPassword("password1")
	require.NoError(t, err)
	b, err := HashPassword("password1")
	require.NoError(t, err)

	// bcrypt embeds a random salt, identical inputs must not collide
	assert.NotEqual(t, a, b)
}

func TestValidatePassword(t *testing.T) {
	assert.Error(t, ValidatePassword("short"))
	assert.Error(t, ValidatePassword(strings.Repeat("a", MaxPasswordLen+1)))
	assert.NoError(t, ValidatePassword("password1"))
}
