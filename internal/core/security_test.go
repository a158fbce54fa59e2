// AngelaMos | 2026
// security_test.go

package core

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("correct horse battery")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(hash, "$argon2id$"))
	require.NotContains(t, hash, "correct horse battery")

	match, err := VerifyPassword("correct horse battery", hash)
	require.NoError(t, err)
	require.True(t, match)

	match, err = VerifyPassword("wrong", hash)
	require.NoError(t, err)
	require.False(t, match)
}

func TestHashPasswordUniqueSalts(t *testing.T) {
	first, err := HashPassword("same password")
	require.NoError(t, err)
	second, err := HashPassword("same password")
	require.NoError(t, err)
	require.NotEqual(t, first, second)
}

func TestVerifyPasswordTimingSafeNilHash(t *testing.T) {
	valid, newHash, err := VerifyPasswordTimingSafe("anything", nil)
	require.NoError(t, err)
	require.False(t, valid)
	require.Empty(t, newHash)

	empty := ""
	valid, _, err = VerifyPasswordTimingSafe("anything", &empty)
	require.NoError(t, err)
	require.False(t, valid)
}

func TestVerifyPasswordMalformedHash(t *testing.T) {
	_, err := VerifyPassword("password", "not-a-hash")
	require.Error(t, err)
}

func TestGenerateSessionToken(t *testing.T) {
	first, err := GenerateSessionToken()
	require.NoError(t, err)
	require.NotEmpty(t, first)

	second, err := GenerateSessionToken()
	require.NoError(t, err)
	require.NotEqual(t, first, second)

	// Tokens must be cookie-safe: unpadded base64url, no delimiters.
	require.Len(t, first, 43)
	require.NotContains(t, first, "=")
	require.NotContains(t, first, ";")
	require.NotContains(t, first, "+")
	require.NotContains(t, first, "/")
}

func TestHashTokenDeterministic(t *testing.T) {
	hash := HashToken("some-token")
	require.Len(t, hash, 64)
	require.Equal(t, hash, HashToken("some-token"))
	require.NotEqual(t, hash, HashToken("other-token"))
	require.NotEqual(t, "some-token", hash)
}

func TestCompareTokenHash(t *testing.T) {
	hash := HashToken("some-token")
	require.True(t, CompareTokenHash("some-token", hash))
	require.False(t, CompareTokenHash("other-token", hash))
}
