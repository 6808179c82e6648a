package keygen

import (
	"crypto/rand"
	"encoding/base64"

	"github.com/google/uuid"
)

// GenerateUUID generates a random UUID v4
func GenerateUUID() string {
	return uuid.New().String()
}

// GenerateAPIKey generates a 32-byte URL-safe credential for agent
// authentication.
func GenerateAPIKey() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
