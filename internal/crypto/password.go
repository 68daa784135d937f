// Package crypto implements the credential hasher, the symmetric cipher helper
// and the SecurityContext that owns the process keys.
package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// saltBytes of entropy; the salt travels as a hex string.
	saltBytes = 32
	// pbkdf2Iterations matches the cost the stored digests were created with.
	// Changing it invalidates every existing password_hash.
	pbkdf2Iterations = 100_000
	digestBytes      = sha256.Size
)

// HashPassword derives a base64 PBKDF2-HMAC-SHA256 digest of password.
// When salt is empty a fresh random hex salt is generated and returned
// alongside the digest.
func HashPassword(password, salt string) (digest string, usedSalt string, err error) {
	if salt == "" {
		raw := make([]byte, saltBytes)
		if _, err := rand.Read(raw); err != nil {
			return "", "", fmt.Errorf("generar salt: %w", err)
		}
		salt = hex.EncodeToString(raw)
	}
	key := pbkdf2.Key([]byte(password), []byte(salt), pbkdf2Iterations, digestBytes, sha256.New)
	return base64.StdEncoding.EncodeToString(key), salt, nil
}

// VerifyPassword recomputes the digest with the stored salt and compares in
// constant time.
func VerifyPassword(password, digest, salt string) bool {
	computed, _, err := HashPassword(password, salt)
	if err != nil {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(computed), []byte(digest)) == 1
}
