package model

import "time"

// Audit action tags recorded in logs_acceso.accion.
const (
	AccionLoginExitoso = "login_exitoso"
	AccionLoginFallido = "login_fallido"
)

// LogAcceso is an append-only audit record. Username is kept as a string so the
// entry stays meaningful even after the user is deactivated. Rows are never
// mutated or deleted.
type LogAcceso struct {
	ID        int64 `gorm:"primaryKey"`
	UserID    *int64
	Username  string
	Accion    string `gorm:"not null"`
	IPAddress string
	Fecha     time.Time `gorm:"not null"`
	Exitoso   bool      `gorm:"not null;default:true"`
}

func (LogAcceso) TableName() string { return "logs_acceso" }
