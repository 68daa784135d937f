package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Mekas12/AJHB/internal/apierror"
	"github.com/Mekas12/AJHB/internal/dto"
	"github.com/Mekas12/AJHB/internal/middleware"
	"github.com/Mekas12/AJHB/internal/service"
)

type AuthHandler struct{ svc service.AuthService }

func NewAuthHandler(svc service.AuthService) *AuthHandler { return &AuthHandler{svc: svc} }

// Login handles POST /api/login and its /api/auth/login alias.
// Unknown username and wrong password return the exact same 401 body so the
// endpoint cannot be used to enumerate usernames.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Username == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, apierror.New("Credenciales incompletas"))
		return
	}

	resp, err := h.svc.Login(c.Request.Context(), req, c.ClientIP(), c.Request.UserAgent())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCredencialesInvalidas):
			c.JSON(http.StatusUnauthorized, apierror.New(err.Error()))
		case errors.Is(err, service.ErrAlmacenNoDisponible):
			c.JSON(http.StatusServiceUnavailable, apierror.New(err.Error()))
		default:
			_ = c.Error(err)
		}
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Verify handles GET/POST /api/verify and the /api/auth/verify alias.
// The token comes from the Authorization header or, failing that, the body.
func (h *AuthHandler) Verify(c *gin.Context) {
	tokenStr := middleware.BearerToken(c)
	if tokenStr == "" {
		var req dto.VerifyRequest
		if err := c.ShouldBindJSON(&req); err == nil {
			tokenStr = req.Token
		}
	}
	if tokenStr == "" {
		c.JSON(http.StatusBadRequest, dto.VerifyResponse{Valid: false, Error: "Token no proporcionado"})
		return
	}

	claims, ok := h.svc.Verify(c.Request.Context(), tokenStr)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.VerifyResponse{Valid: false, Error: "Token inválido o expirado"})
		return
	}

	c.JSON(http.StatusOK, dto.VerifyResponse{
		Valid: true,
		User: &dto.VerifyClaims{
			UserID:   claims.UserID,
			Username: claims.Username,
			Role:     claims.Role,
			Exp:      claims.ExpiresAt.Unix(),
		},
	})
}

// Logout handles POST /api/auth/logout. It always reports success: the token
// arrives in the body and deactivating an unknown or already-inactive session
// is a no-op.
func (h *AuthHandler) Logout(c *gin.Context) {
	var req dto.LogoutRequest
	_ = c.ShouldBindJSON(&req)

	_ = h.svc.Logout(c.Request.Context(), req.Token)
	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}
