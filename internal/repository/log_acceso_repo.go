package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Mekas12/AJHB/internal/model"
)

// LogAccesoRepository appends audit rows. Entries are never updated or deleted.
type LogAccesoRepository interface {
	Insert(ctx context.Context, entry *model.LogAcceso) error
}

type logAccesoRepo struct{ db *gorm.DB }

func NewLogAccesoRepository(db *gorm.DB) LogAccesoRepository { return &logAccesoRepo{db: db} }

func (r *logAccesoRepo) Insert(ctx context.Context, entry *model.LogAcceso) error {
	return withWriteRetry(ctx, func(ctx context.Context) error {
		return r.db.WithContext(ctx).Create(entry).Error
	})
}
