package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

const sessionTokenBytes = 32 // 256 bits of entropy

// GenerateSessionToken returns an opaque session token and the SHA-256
// hash under which it is stored. The plain token is returned to the
// client exactly once; lookups re-hash the presented token.
func GenerateSessionToken() (plain, hash string, err error) {
	buf := make([]byte, sessionTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", "", fmt.Errorf("failed to generate session token: %w", err)
	}

	plain = hex.EncodeToString(buf)
	return plain, HashSessionToken(plain), nil
}

// HashSessionToken derives the storage key for a presented token.
func HashSessionToken(plain string) string {
	sum := sha256.Sum256([]byte(plain))
	return hex.EncodeToString(sum[:])
}
