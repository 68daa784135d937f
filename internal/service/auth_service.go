package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/Mekas12/AJHB/internal/crypto"
	"github.com/Mekas12/AJHB/internal/dto"
	"github.com/Mekas12/AJHB/internal/model"
	"github.com/Mekas12/AJHB/internal/repository"
	"github.com/Mekas12/AJHB/internal/token"
)

// Sentinel errors mapped to HTTP statuses by the handlers.
var (
	// ErrCredencialesInvalidas covers both unknown username and wrong password:
	// the caller must never be able to tell them apart (the audit log can).
	ErrCredencialesInvalidas = errors.New("Credenciales inválidas")
	ErrUsuarioExiste         = errors.New("El usuario ya existe")
	ErrUsuarioNoEncontrado   = errors.New("Usuario no encontrado")
	ErrDirectorProtegido     = errors.New("No se puede eliminar al director")
	ErrAlmacenNoDisponible   = errors.New("Base de datos no disponible")
)

type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest, ip, userAgent string) (*dto.LoginResponse, error)
	// Verify fails closed: ok=false on bad signature, malformed structure,
	// expiry, or a session revoked by logout.
	Verify(ctx context.Context, tokenStr string) (*token.Claims, bool)
	Logout(ctx context.Context, tokenStr string) error
	CrearUsuario(ctx context.Context, req dto.CrearUsuarioRequest, creadoPor int64) (int64, error)
	ListarUsuarios(ctx context.Context) ([]dto.UsuarioResponse, error)
	ActualizarUsuario(ctx context.Context, id int64, req dto.ActualizarUsuarioRequest) error
	EliminarUsuario(ctx context.Context, id int64) error
}

type authService struct {
	usuarios repository.UsuarioRepository
	sesiones repository.SesionRepository
	logs     repository.LogAccesoRepository
	signer   *token.Signer
}

func NewAuthService(
	usuarios repository.UsuarioRepository,
	sesiones repository.SesionRepository,
	logs repository.LogAccesoRepository,
	signer *token.Signer,
) AuthService {
	return &authService{usuarios: usuarios, sesiones: sesiones, logs: logs, signer: signer}
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest, ip, userAgent string) (*dto.LoginResponse, error) {
	user, err := s.usuarios.FindActivoByUsername(ctx, req.Username)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Error().Err(err).Msg("error consultando usuario en login")
		}
		s.registrarAcceso(ctx, nil, req.Username, model.AccionLoginFallido, ip, false)
		return nil, ErrCredencialesInvalidas
	}

	if !crypto.VerifyPassword(req.Password, user.PasswordHash, user.Salt) {
		s.registrarAcceso(ctx, &user.ID, req.Username, model.AccionLoginFallido, ip, false)
		return nil, ErrCredencialesInvalidas
	}

	tokenStr, err := s.signer.Issue(user.ID, user.Username, user.Role)
	if err != nil {
		return nil, fmt.Errorf("firmar token: %w", err)
	}

	now := time.Now()
	if err := s.usuarios.TouchUltimoAcceso(ctx, user.ID, now); err != nil {
		// Last-access is informational only.
		log.Warn().Err(err).Int64("user_id", user.ID).Msg("no se pudo actualizar ultimo_acceso")
	}

	// Session expiry mirrors the token's own exp claim on purpose (audit
	// redundancy, not a second source of truth).
	sesion := &model.Sesion{
		UserID:          user.ID,
		Token:           tokenStr,
		IPAddress:       ip,
		UserAgent:       userAgent,
		FechaInicio:     now,
		FechaExpiracion: now.Add(s.signer.TTL()),
		Activa:          true,
	}
	if err := s.sesiones.Create(ctx, sesion); err != nil {
		if repository.IsBusy(err) {
			return nil, ErrAlmacenNoDisponible
		}
		return nil, fmt.Errorf("crear sesión: %w", err)
	}

	s.registrarAcceso(ctx, &user.ID, user.Username, model.AccionLoginExitoso, ip, true)

	return &dto.LoginResponse{
		Success: true,
		Token:   tokenStr,
		User: dto.LoginUsuario{
			ID:             user.ID,
			Username:       user.Username,
			NombreCompleto: user.NombreCompleto,
			Role:           user.Role,
			Permisos:       user.Permisos,
		},
	}, nil
}

func (s *authService) Verify(ctx context.Context, tokenStr string) (*token.Claims, bool) {
	claims, ok := s.signer.Verify(tokenStr)
	if !ok {
		return nil, false
	}

	// Logout revocation: a signed, unexpired token is still rejected once its
	// session row was deactivated. A storage error here degrades to
	// signature-only verification so a flaky disk cannot lock every caller out.
	revocada, err := s.sesiones.IsRevocada(ctx, tokenStr)
	if err != nil {
		log.Warn().Err(err).Msg("no se pudo consultar revocación de sesión")
		return claims, true
	}
	if revocada {
		return nil, false
	}
	return claims, true
}

func (s *authService) Logout(ctx context.Context, tokenStr string) error {
	if tokenStr == "" {
		return nil
	}
	if err := s.sesiones.Deactivate(ctx, tokenStr); err != nil {
		// Logout always reports success to the client; the failure only matters
		// operationally.
		log.Error().Err(err).Msg("error desactivando sesión en logout")
	}
	return nil
}

func (s *authService) CrearUsuario(ctx context.Context, req dto.CrearUsuarioRequest, creadoPor int64) (int64, error) {
	digest, salt, err := crypto.HashPassword(req.Password, "")
	if err != nil {
		return 0, err
	}

	u := &model.Usuario{
		Username:       req.Username,
		PasswordHash:   digest,
		Salt:           salt,
		NombreCompleto: req.NombreCompleto,
		Email:          req.Email,
		Role:           req.Role,
		Permisos:       req.Permisos,
		Activo:         true,
		FechaCreacion:  time.Now(),
		CreadoPor:      &creadoPor,
	}
	if err := s.usuarios.Create(ctx, u); err != nil {
		switch {
		case repository.IsDuplicate(err):
			return 0, ErrUsuarioExiste
		case repository.IsBusy(err):
			return 0, ErrAlmacenNoDisponible
		default:
			return 0, fmt.Errorf("crear usuario: %w", err)
		}
	}
	log.Info().Str("username", u.Username).Str("role", u.Role).Msg("usuario creado")
	return u.ID, nil
}

func (s *authService) ListarUsuarios(ctx context.Context) ([]dto.UsuarioResponse, error) {
	users, err := s.usuarios.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listar usuarios: %w", err)
	}
	resp := make([]dto.UsuarioResponse, len(users))
	for i, u := range users {
		resp[i] = usuarioToResponse(u)
	}
	return resp, nil
}

func (s *authService) ActualizarUsuario(ctx context.Context, id int64, req dto.ActualizarUsuarioRequest) error {
	if _, err := s.usuarios.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUsuarioNoEncontrado
		}
		return fmt.Errorf("buscar usuario: %w", err)
	}

	// Fixed column set — patch keys are chosen here, never taken from input.
	updates := map[string]interface{}{}
	if req.NombreCompleto != nil {
		updates["nombre_completo"] = *req.NombreCompleto
	}
	if req.Email != nil {
		updates["email"] = *req.Email
	}
	if req.Role != nil {
		updates["role"] = *req.Role
	}
	if req.Permisos != nil {
		updates["permisos"] = *req.Permisos
	}
	if req.Activo != nil {
		if id == model.DirectorBootstrapID && !*req.Activo {
			return ErrDirectorProtegido
		}
		updates["activo"] = *req.Activo
	}
	if req.Password != nil {
		digest, salt, err := crypto.HashPassword(*req.Password, "")
		if err != nil {
			return err
		}
		updates["password_hash"] = digest
		updates["salt"] = salt
	}

	if err := s.usuarios.ApplyPatch(ctx, id, updates); err != nil {
		if repository.IsBusy(err) {
			return ErrAlmacenNoDisponible
		}
		return fmt.Errorf("actualizar usuario: %w", err)
	}
	log.Info().Int64("user_id", id).Msg("usuario actualizado")
	return nil
}

func (s *authService) EliminarUsuario(ctx context.Context, id int64) error {
	if id == model.DirectorBootstrapID {
		return ErrDirectorProtegido
	}
	if err := s.usuarios.SoftDelete(ctx, id); err != nil {
		if repository.IsBusy(err) {
			return ErrAlmacenNoDisponible
		}
		return fmt.Errorf("desactivar usuario: %w", err)
	}
	log.Info().Int64("user_id", id).Msg("usuario desactivado")
	return nil
}

// registrarAcceso appends an audit row. It never fails the surrounding
// operation: errors are logged and swallowed.
func (s *authService) registrarAcceso(ctx context.Context, userID *int64, username, accion, ip string, exitoso bool) {
	entry := &model.LogAcceso{
		UserID:    userID,
		Username:  username,
		Accion:    accion,
		IPAddress: ip,
		Fecha:     time.Now(),
		Exitoso:   exitoso,
	}
	if err := s.logs.Insert(ctx, entry); err != nil {
		log.Error().Err(err).Str("accion", accion).Msg("error registrando log de acceso")
	}
}

func usuarioToResponse(u model.Usuario) dto.UsuarioResponse {
	const layout = "2006-01-02 15:04:05"
	resp := dto.UsuarioResponse{
		ID:             u.ID,
		Username:       u.Username,
		NombreCompleto: u.NombreCompleto,
		Email:          u.Email,
		Role:           u.Role,
		Permisos:       u.Permisos,
		Activo:         u.Activo,
		FechaCreacion:  u.FechaCreacion.Format(layout),
	}
	if u.UltimoAcceso != nil {
		formatted := u.UltimoAcceso.Format(layout)
		resp.UltimoAcceso = &formatted
	}
	return resp
}
