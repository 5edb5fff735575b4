package utils

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"

	"github.com/hyuga/course-scheduler-api/internal/constants"
)

// GenerateShareToken generates a random URL-safe share token with 128 bits
// of entropy.
func GenerateShareToken() (string, error) {
	bytes := make([]byte, constants.ShareTokenBytes)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}

	return base64.RawURLEncoding.EncodeToString(bytes), nil
}
