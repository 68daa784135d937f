package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type LoginRequest struct {
	Username string `json:"username" validate:"required,min=1"`
	Password string `json:"password" validate:"required,min=1"`
}

type VerifyRequest struct {
	Token string `json:"token"`
}

type LogoutRequest struct {
	Token string `json:"token"`
}

type CrearUsuarioRequest struct {
	Username       string  `json:"username"        validate:"required,min=1,max=150"`
	Password       string  `json:"password"        validate:"required,min=8"`
	NombreCompleto string  `json:"nombre_completo" validate:"required,min=2,max=100"`
	Email          *string `json:"email"           validate:"omitempty,email"`
	Role           string  `json:"role"            validate:"required,oneof=director secretario contador vendedor"`
	Permisos       string  `json:"permisos"        validate:"required"`
}

// ActualizarUsuarioRequest is an explicit patch: only the fields present in the
// JSON body are applied, against a fixed column set — field names never come
// from request input. Username is immutable and deliberately absent.
type ActualizarUsuarioRequest struct {
	NombreCompleto *string `json:"nombre_completo" validate:"omitempty,min=2,max=100"`
	Email          *string `json:"email"           validate:"omitempty,email"`
	Role           *string `json:"role"            validate:"omitempty,oneof=director secretario contador vendedor"`
	Permisos       *string `json:"permisos"`
	Activo         *bool   `json:"activo"`
	Password       *string `json:"password"        validate:"omitempty,min=8"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type UsuarioResponse struct {
	ID             int64   `json:"id"`
	Username       string  `json:"username"`
	NombreCompleto string  `json:"nombre_completo"`
	Email          *string `json:"email,omitempty"`
	Role           string  `json:"role"`
	Permisos       string  `json:"permisos"`
	Activo         bool    `json:"activo"`
	FechaCreacion  string  `json:"fecha_creacion,omitempty"`
	UltimoAcceso   *string `json:"ultimo_acceso,omitempty"`
}

type LoginResponse struct {
	Success bool         `json:"success"`
	Token   string       `json:"token"`
	User    LoginUsuario `json:"user"`
}

// LoginUsuario is the trimmed profile embedded in a login response.
type LoginUsuario struct {
	ID             int64  `json:"id"`
	Username       string `json:"username"`
	NombreCompleto string `json:"nombre_completo"`
	Role           string `json:"role"`
	Permisos       string `json:"permisos"`
}

type VerifyResponse struct {
	Valid bool          `json:"valid"`
	User  *VerifyClaims `json:"user,omitempty"`
	Error string        `json:"error,omitempty"`
}

// VerifyClaims mirrors the token claims returned to /api/verify consumers.
type VerifyClaims struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	Exp      int64  `json:"exp"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}

type CrearUsuarioResponse struct {
	Success bool  `json:"success"`
	ID      int64 `json:"id"`
}

type ListaUsuariosResponse struct {
	Success bool              `json:"success"`
	Data    []UsuarioResponse `json:"data"`
}
