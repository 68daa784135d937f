package model

import "time"

// Role values stored in usuarios.role.
const (
	RolDirector   = "director"
	RolSecretario = "secretario"
)

// PermisosAll is the sentinel capability set granting every permission.
const PermisosAll = "all"

// DirectorBootstrapID is the seeded executive director. That row can never be
// deactivated or deleted through the management API.
const DirectorBootstrapID int64 = 1

// Usuario stores system users with role-based access. Username is unique and
// immutable after creation; "deleting" a user only clears Activo (soft delete).
type Usuario struct {
	ID             int64  `gorm:"primaryKey"`
	Username       string `gorm:"uniqueIndex;not null"`
	PasswordHash   string `gorm:"not null"`
	Salt           string `gorm:"not null"`
	NombreCompleto string `gorm:"not null"`
	Email          *string
	Role           string `gorm:"not null"`
	// Permisos is a comma-separated capability list, or "all".
	Permisos      string `gorm:"not null"`
	Activo        bool   `gorm:"not null;default:true"`
	FechaCreacion time.Time
	UltimoAcceso  *time.Time
	// CreadoPor references the creating user; nil for seeded accounts.
	CreadoPor *int64
}

func (Usuario) TableName() string { return "usuarios" }
