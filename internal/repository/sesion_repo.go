package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Mekas12/AJHB/internal/model"
)

type SesionRepository interface {
	Create(ctx context.Context, s *model.Sesion) error
	// Deactivate is idempotent: deactivating an already-inactive or unknown
	// token is a no-op success.
	Deactivate(ctx context.Context, token string) error
	// IsRevocada reports whether the token has a session row that was
	// explicitly deactivated (logout). Tokens without any row are not revoked.
	IsRevocada(ctx context.Context, token string) (bool, error)
}

type sesionRepo struct{ db *gorm.DB }

func NewSesionRepository(db *gorm.DB) SesionRepository { return &sesionRepo{db: db} }

func (r *sesionRepo) Create(ctx context.Context, s *model.Sesion) error {
	return withWriteRetry(ctx, func(ctx context.Context) error {
		return r.db.WithContext(ctx).Create(s).Error
	})
}

func (r *sesionRepo) Deactivate(ctx context.Context, token string) error {
	return withWriteRetry(ctx, func(ctx context.Context) error {
		return r.db.WithContext(ctx).
			Model(&model.Sesion{}).
			Where("token = ?", token).
			Update("activa", false).Error
	})
}

func (r *sesionRepo) IsRevocada(ctx context.Context, token string) (bool, error) {
	var s model.Sesion
	err := r.db.WithContext(ctx).
		Where("token = ?", token).
		Order("id DESC").
		First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return !s.Activa, nil
}
