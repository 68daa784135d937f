package model

import "time"

// Sesion records one issued token: who requested it, from where, and its
// validity window. FechaExpiracion always equals FechaInicio plus the token
// validity window — the duplication with the token's own exp claim is
// intentional bookkeeping, not a second source of truth.
// Rows are deactivated on logout, never deleted.
type Sesion struct {
	ID              int64  `gorm:"primaryKey"`
	UserID          int64  `gorm:"not null;index"`
	Token           string `gorm:"not null;index"`
	IPAddress       string
	UserAgent       string
	FechaInicio     time.Time `gorm:"not null"`
	FechaExpiracion time.Time `gorm:"not null"`
	Activa          bool      `gorm:"not null;default:true"`
}

func (Sesion) TableName() string { return "sesiones" }
