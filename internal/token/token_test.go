package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTTL = 24 * time.Hour

func TestIssueAndVerify(t *testing.T) {
	s := NewSigner([]byte("clave-de-firma-de-prueba"), testTTL)

	tok, err := s.Issue(7, "DirectorEjecutivoAndres", "director")
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, ok := s.Verify(tok)
	require.True(t, ok)
	assert.Equal(t, int64(7), claims.UserID)
	assert.Equal(t, "DirectorEjecutivoAndres", claims.Username)
	assert.Equal(t, "director", claims.Role)
	assert.WithinDuration(t, time.Now().Add(testTTL), claims.ExpiresAt.Time, 5*time.Second)
}

func TestVerifyWrongSecret(t *testing.T) {
	issuer := NewSigner([]byte("secreto-uno"), testTTL)
	verifier := NewSigner([]byte("secreto-dos"), testTTL)

	tok, err := issuer.Issue(1, "usuario", "secretario")
	require.NoError(t, err)

	_, ok := verifier.Verify(tok)
	assert.False(t, ok)
}

func TestVerifyMalformedToken(t *testing.T) {
	s := NewSigner([]byte("clave"), testTTL)

	for _, bad := range []string{"", "no-es-un-jwt", "a.b.c", "eyJhbGciOiJIUzI1NiJ9..x"} {
		_, ok := s.Verify(bad)
		assert.False(t, ok, "token %q", bad)
	}
}

func TestVerifyExpiry(t *testing.T) {
	s := NewSigner([]byte("clave-de-firma"), testTTL)

	issuedAt := time.Now()
	s.now = func() time.Time { return issuedAt }

	tok, err := s.Issue(3, "secretario", "secretario")
	require.NoError(t, err)

	// Immediately after issuance: valid.
	_, ok := s.Verify(tok)
	assert.True(t, ok)

	// One second before expiry: still valid.
	s.now = func() time.Time { return issuedAt.Add(testTTL - time.Second) }
	_, ok = s.Verify(tok)
	assert.True(t, ok)

	// At the exact expiry instant the token is already invalid: exp is an
	// exclusive bound and no leeway is applied.
	s.now = func() time.Time { return issuedAt.Add(testTTL) }
	_, ok = s.Verify(tok)
	assert.False(t, ok)

	// Well past expiry: invalid.
	s.now = func() time.Time { return issuedAt.Add(testTTL + time.Hour) }
	_, ok = s.Verify(tok)
	assert.False(t, ok)
}

func TestVerifyTamperedClaims(t *testing.T) {
	s := NewSigner([]byte("clave-de-firma"), testTTL)

	tok, err := s.Issue(2, "secretario", "secretario")
	require.NoError(t, err)

	// Swap the payload for one claiming director; the signature no longer
	// matches.
	elevated, err := s.Issue(2, "secretario", "director")
	require.NoError(t, err)

	parts := func(t string) []string { return splitToken(t) }
	tampered := parts(tok)[0] + "." + parts(elevated)[1] + "." + parts(tok)[2]

	_, ok := s.Verify(tampered)
	assert.False(t, ok)
}

func splitToken(tok string) []string {
	var parts []string
	start := 0
	for i := 0; i < len(tok); i++ {
		if tok[i] == '.' {
			parts = append(parts, tok[start:i])
			start = i + 1
		}
	}
	return append(parts, tok[start:])
}
