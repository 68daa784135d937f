package crypto

import (
	"encoding/hex"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mekas12/AJHB/internal/config"
)

func TestSecurityContextPersistsCipherKey(t *testing.T) {
	keyPath := filepath.Join(t.TempDir(), "auth.key")
	cfg := &config.Config{JWTSecret: "secreto-de-prueba", KeyPath: keyPath}

	sc1, err := NewSecurityContext(cfg)
	require.NoError(t, err)
	assert.Len(t, sc1.CipherKey, 32)

	// Key file created with restrictive permissions
	info, err := os.Stat(keyPath)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	// A second boot reuses the same key: data encrypted before a restart stays
	// readable.
	sc2, err := NewSecurityContext(cfg)
	require.NoError(t, err)
	assert.Equal(t, sc1.CipherKey, sc2.CipherKey)
}

func TestSecurityContextExplicitAESKey(t *testing.T) {
	key := strings.Repeat("ab", 32)
	cfg := &config.Config{
		JWTSecret: "secreto-de-prueba",
		AESKeyHex: key,
		KeyPath:   filepath.Join(t.TempDir(), "unused.key"),
	}

	sc, err := NewSecurityContext(cfg)
	require.NoError(t, err)

	want, _ := hex.DecodeString(key)
	assert.Equal(t, want, sc.CipherKey)
	// Explicit key must win: no keyfile gets written.
	_, statErr := os.Stat(cfg.KeyPath)
	assert.True(t, os.IsNotExist(statErr))
}

func TestSecurityContextRejectsBadAESKey(t *testing.T) {
	for _, bad := range []string{"zz", strings.Repeat("ab", 8)} {
		cfg := &config.Config{JWTSecret: "s", AESKeyHex: bad}
		_, err := NewSecurityContext(cfg)
		assert.Error(t, err, bad)
	}
}

func TestSecurityContextKeysAreDistinct(t *testing.T) {
	cfg := &config.Config{
		JWTSecret: strings.Repeat("x", 32),
		KeyPath:   filepath.Join(t.TempDir(), "auth.key"),
	}
	sc, err := NewSecurityContext(cfg)
	require.NoError(t, err)
	assert.NotEqual(t, sc.JWTSecret, sc.CipherKey)
}

func TestSecurityContextCipherKeyWorksWithCipher(t *testing.T) {
	cfg := &config.Config{
		JWTSecret: "secreto",
		KeyPath:   filepath.Join(t.TempDir(), "auth.key"),
	}
	sc, err := NewSecurityContext(cfg)
	require.NoError(t, err)

	c, err := NewCipher(sc.CipherKey)
	require.NoError(t, err)

	tok, err := c.Encrypt("campo confidencial")
	require.NoError(t, err)
	got, err := c.Decrypt(tok)
	require.NoError(t, err)
	assert.Equal(t, "campo confidencial", got)
}
