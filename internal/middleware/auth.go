package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Mekas12/AJHB/internal/apierror"
	"github.com/Mekas12/AJHB/internal/token"
)

const ClaimsKey = "claims"

// TokenVerifier validates a bearer token and returns its claims. Implemented
// by the auth service, which layers session revocation on top of the signature
// check.
type TokenVerifier interface {
	Verify(ctx context.Context, tokenStr string) (*token.Claims, bool)
}

// BearerToken extracts the token from an "Authorization: Bearer <token>"
// header; empty string when absent.
func BearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" || !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(header, "Bearer ")
}

// RequireRole gates a route group: the request must carry a valid bearer token
// whose role is in the allowed list. Missing token, failed verification and
// role mismatch all terminate with a single 403 response, deliberately
// indistinguishable to the caller.
func RequireRole(verifier TokenVerifier, roles ...string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(c *gin.Context) {
		tokenStr := BearerToken(c)
		if tokenStr == "" {
			c.AbortWithStatusJSON(http.StatusForbidden, apierror.New("No autorizado"))
			return
		}

		claims, ok := verifier.Verify(c.Request.Context(), tokenStr)
		if !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, apierror.New("No autorizado"))
			return
		}

		if !allowed[claims.Role] {
			c.AbortWithStatusJSON(http.StatusForbidden, apierror.New("No autorizado"))
			return
		}

		c.Set(ClaimsKey, claims)
		c.Next()
	}
}

// GetClaims retrieves typed claims previously stored by RequireRole.
func GetClaims(c *gin.Context) *token.Claims {
	claims, _ := c.MustGet(ClaimsKey).(*token.Claims)
	return claims
}
