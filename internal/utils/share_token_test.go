package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateShareToken(t *testing.T) {
	token, err := GenerateShareToken()
	require.NoError(t, err)

	// 16 random bytes encode to 22 base64url characters.
	require.Len(t, token, 22)
	require.NotContains(t, token, "+")
	require.NotContains(t, token, "/")
	require.NotContains(t, token, "=")
}

func TestGenerateShareToken_Unique(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		token, err := GenerateShareToken()
		require.NoError(t, err)

		_, duplicate := seen[token]
		require.False(t, duplicate, "duplicate token generated: %s", token)
		seen[token] = struct{}{}
	}
}
