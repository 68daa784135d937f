package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPasswordGeneratesSalt(t *testing.T) {
	digest, salt, err := HashPassword("Hidalgoajhb41", "")
	require.NoError(t, err)
	assert.NotEmpty(t, digest)
	// 32 bytes of entropy as hex
	assert.Len(t, salt, 64)
}

func TestHashPasswordDeterministicWithSalt(t *testing.T) {
	d1, s1, err := HashPassword("secreto", "abc123")
	require.NoError(t, err)
	d2, s2, err := HashPassword("secreto", "abc123")
	require.NoError(t, err)

	assert.Equal(t, d1, d2)
	assert.Equal(t, s1, s2)
	assert.Equal(t, "abc123", s1)
}

func TestVerifyPasswordRoundTrip(t *testing.T) {
	digest, salt, err := HashPassword("Secretosajhb42", "")
	require.NoError(t, err)

	assert.True(t, VerifyPassword("Secretosajhb42", digest, salt))
	assert.False(t, VerifyPassword("Secretosajhb43", digest, salt))
	assert.False(t, VerifyPassword("", digest, salt))
}

func TestVerifyPasswordWrongSalt(t *testing.T) {
	digest, _, err := HashPassword("clave", "")
	require.NoError(t, err)

	_, otherSalt, err := HashPassword("clave", "")
	require.NoError(t, err)

	assert.False(t, VerifyPassword("clave", digest, otherSalt))
}

func TestHashPasswordDifferentSaltsDifferentDigests(t *testing.T) {
	d1, s1, err := HashPassword("mismaClave", "")
	require.NoError(t, err)
	d2, s2, err := HashPassword("mismaClave", "")
	require.NoError(t, err)

	assert.NotEqual(t, s1, s2)
	assert.NotEqual(t, d1, d2)
}
