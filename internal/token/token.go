// Package token issues and verifies the HMAC-signed bearer tokens that carry
// identity and role claims between the auth service and its consumers.
package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims are the identity claims embedded in every access token.
type Claims struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// Signer signs and verifies tokens with an HS256 process secret distinct from
// the cipher key. Expiry is absolute — there is no refresh or grace window.
type Signer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewSigner(secret []byte, ttl time.Duration) *Signer {
	return &Signer{secret: secret, ttl: ttl, now: time.Now}
}

// TTL is the validity window applied to every issued token. Session rows use
// the same window so that token expiry and session expiry always agree.
func (s *Signer) TTL() time.Duration { return s.ttl }

// Issue signs a token for the given identity, valid for the configured window.
func (s *Signer) Issue(userID int64, username, role string) (string, error) {
	now := s.now()
	claims := Claims{
		UserID:   userID,
		Username: username,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Verify parses and validates a token. It fails closed: any signature
// mismatch, malformed structure or expired timestamp yields ok=false, never an
// error for the caller to mishandle.
func (s *Signer) Verify(tokenStr string) (*Claims, bool) {
	claims := &Claims{}
	tok, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(func() time.Time { return s.now() }), jwt.WithExpirationRequired())
	if err != nil || !tok.Valid {
		return nil, false
	}
	return claims, true
}
