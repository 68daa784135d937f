package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Mekas12/AJHB/internal/apierror"
	"github.com/Mekas12/AJHB/internal/dto"
	"github.com/Mekas12/AJHB/internal/middleware"
	"github.com/Mekas12/AJHB/internal/service"
)

// UsuariosHandler exposes director-only user management.
type UsuariosHandler struct{ svc service.AuthService }

func NewUsuariosHandler(svc service.AuthService) *UsuariosHandler {
	return &UsuariosHandler{svc: svc}
}

func (h *UsuariosHandler) Listar(c *gin.Context) {
	data, err := h.svc.ListarUsuarios(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.ListaUsuariosResponse{Success: true, Data: data})
}

func (h *UsuariosHandler) Crear(c *gin.Context) {
	var req dto.CrearUsuarioRequest
	if !bindAndValidate(c, &req) {
		return
	}

	claims := middleware.GetClaims(c)
	id, err := h.svc.CrearUsuario(c.Request.Context(), req, claims.UserID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUsuarioExiste):
			c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		case errors.Is(err, service.ErrAlmacenNoDisponible):
			c.JSON(http.StatusServiceUnavailable, apierror.New(err.Error()))
		default:
			_ = c.Error(err)
		}
		return
	}
	c.JSON(http.StatusOK, dto.CrearUsuarioResponse{Success: true, ID: id})
}

func (h *UsuariosHandler) Actualizar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.ActualizarUsuarioRequest
	if !bindAndValidate(c, &req) {
		return
	}

	if err := h.svc.ActualizarUsuario(c.Request.Context(), id, req); err != nil {
		switch {
		case errors.Is(err, service.ErrUsuarioNoEncontrado):
			c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		case errors.Is(err, service.ErrDirectorProtegido):
			c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		case errors.Is(err, service.ErrAlmacenNoDisponible):
			c.JSON(http.StatusServiceUnavailable, apierror.New(err.Error()))
		default:
			_ = c.Error(err)
		}
		return
	}
	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}

func (h *UsuariosHandler) Eliminar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.svc.EliminarUsuario(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, service.ErrDirectorProtegido):
			c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		case errors.Is(err, service.ErrAlmacenNoDisponible):
			c.JSON(http.StatusServiceUnavailable, apierror.New(err.Error()))
		default:
			_ = c.Error(err)
		}
		return
	}
	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return 0, false
	}
	return id, true
}
