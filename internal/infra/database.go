package infra

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Mekas12/AJHB/internal/crypto"
	"github.com/Mekas12/AJHB/internal/model"
)

// NewDatabase opens the service's SQLite file in WAL mode (concurrent readers
// during a writer) with a busy timeout, then creates the schema idempotently
// via AutoMigrate.
func NewDatabase(path string) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"file:%s?_busy_timeout=5000&_journal_mode=WAL&_synchronous=NORMAL&_foreign_keys=on",
		path,
	)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	// SQLite serializes writers anyway; a small pool keeps readers concurrent
	// without piling up lock contention.
	sqlDB.SetMaxOpenConns(4)
	sqlDB.SetMaxIdleConns(2)

	if err := db.AutoMigrate(
		&model.Usuario{},
		&model.Sesion{},
		&model.LogAcceso{},
	); err != nil {
		return nil, fmt.Errorf("AutoMigrate: %w", err)
	}

	return db, nil
}

// seedAccount describes one bootstrap user created on first boot.
type seedAccount struct {
	username, password, nombre, email, role, permisos string
}

// SeedUsuarios inserts the two bootstrap accounts when absent: the executive
// director (full capability) and the secretary (scoped capability). Existing
// rows are never touched, so re-running on every boot is safe.
func SeedUsuarios(ctx context.Context, db *gorm.DB) error {
	seeds := []seedAccount{
		{
			username: "DirectorEjecutivoAndres",
			password: "Hidalgoajhb41",
			nombre:   "Andrés Hidalgo - Director Ejecutivo",
			email:    "andres@ajhb.com",
			role:     model.RolDirector,
			permisos: model.PermisosAll,
		},
		{
			username: "Secretariosajhb1a",
			password: "Secretosajhb42",
			nombre:   "Secretario General",
			email:    "secretario@ajhb.com",
			role:     model.RolSecretario,
			permisos: "ventas,secretarios",
		},
	}

	for _, s := range seeds {
		var count int64
		if err := db.WithContext(ctx).
			Model(&model.Usuario{}).
			Where("username = ?", s.username).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}

		digest, salt, err := crypto.HashPassword(s.password, "")
		if err != nil {
			return err
		}
		email := s.email
		u := &model.Usuario{
			Username:       s.username,
			PasswordHash:   digest,
			Salt:           salt,
			NombreCompleto: s.nombre,
			Email:          &email,
			Role:           s.role,
			Permisos:       s.permisos,
			Activo:         true,
			FechaCreacion:  time.Now(),
		}
		if err := db.WithContext(ctx).Create(u).Error; err != nil {
			return err
		}
		log.Info().Str("username", s.username).Str("role", s.role).Msg("usuario inicial creado")
	}
	return nil
}
