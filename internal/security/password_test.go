package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	digest, err := HashPassword("secret123")
	require.NoError(t, err)
	require.NotEmpty(t, digest)
	assert.NotContains(t, string(digest), "secret123")

	assert.True(t, VerifyPassword("secret123", digest))
	assert.False(t, VerifyPassword("wrongpass", digest))
	assert.False(t, VerifyPassword("", digest))
}

func TestHashPasswordSalted(t *testing.T) {
	first, err := HashPassword("secret123")
	require.NoError(t, err)
	second, err := HashPassword("secret123")
	require.NoError(t, err)

	// Same input, different salt, different digest; both still verify.
	assert.NotEqual(t, first, second)
	assert.True(t, VerifyPassword("secret123", first))
	assert.True(t, VerifyPassword("secret123", second))
}

func TestVerifyPasswordMalformedDigest(t *testing.T) {
	assert.False(t, VerifyPassword("secret123", nil))
	assert.False(t, VerifyPassword("secret123", []byte{}))
	assert.False(t, VerifyPassword("secret123", []byte("not-a-bcrypt-digest")))
	assert.False(t, VerifyPassword("secret123", []byte("$2a$garbage")))
}

func TestNewSessionToken(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		token := NewSessionToken()
		require.NotEmpty(t, token)
		_, dup := seen[token]
		require.False(t, dup, "token collision")
		seen[token] = struct{}{}
	}
}
