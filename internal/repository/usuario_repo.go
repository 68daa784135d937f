package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/Mekas12/AJHB/internal/model"
)

type UsuarioRepository interface {
	Create(ctx context.Context, u *model.Usuario) error
	FindActivoByUsername(ctx context.Context, username string) (*model.Usuario, error)
	FindByID(ctx context.Context, id int64) (*model.Usuario, error)
	List(ctx context.Context) ([]model.Usuario, error)
	// ApplyPatch updates a fixed set of columns; keys are column names chosen
	// by the service layer, never by request input.
	ApplyPatch(ctx context.Context, id int64, updates map[string]interface{}) error
	SoftDelete(ctx context.Context, id int64) error
	TouchUltimoAcceso(ctx context.Context, id int64, t time.Time) error
}

type usuarioRepo struct{ db *gorm.DB }

func NewUsuarioRepository(db *gorm.DB) UsuarioRepository { return &usuarioRepo{db: db} }

func (r *usuarioRepo) Create(ctx context.Context, u *model.Usuario) error {
	return withWriteRetry(ctx, func(ctx context.Context) error {
		return r.db.WithContext(ctx).Create(u).Error
	})
}

func (r *usuarioRepo) FindActivoByUsername(ctx context.Context, username string) (*model.Usuario, error) {
	var u model.Usuario
	err := r.db.WithContext(ctx).
		Where("username = ? AND activo = ?", username, true).
		First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *usuarioRepo) FindByID(ctx context.Context, id int64) (*model.Usuario, error) {
	var u model.Usuario
	if err := r.db.WithContext(ctx).First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *usuarioRepo) List(ctx context.Context) ([]model.Usuario, error) {
	var users []model.Usuario
	err := r.db.WithContext(ctx).Order("fecha_creacion DESC").Find(&users).Error
	return users, err
}

func (r *usuarioRepo) ApplyPatch(ctx context.Context, id int64, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}
	return withWriteRetry(ctx, func(ctx context.Context) error {
		return r.db.WithContext(ctx).
			Model(&model.Usuario{}).
			Where("id = ?", id).
			Updates(updates).Error
	})
}

func (r *usuarioRepo) SoftDelete(ctx context.Context, id int64) error {
	return withWriteRetry(ctx, func(ctx context.Context) error {
		return r.db.WithContext(ctx).
			Model(&model.Usuario{}).
			Where("id = ?", id).
			Update("activo", false).Error
	})
}

func (r *usuarioRepo) TouchUltimoAcceso(ctx context.Context, id int64, t time.Time) error {
	return withWriteRetry(ctx, func(ctx context.Context) error {
		return r.db.WithContext(ctx).
			Model(&model.Usuario{}).
			Where("id = ?", id).
			Update("ultimo_acceso", t).Error
	})
}
