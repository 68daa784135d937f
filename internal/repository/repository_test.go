package repository

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Mekas12/AJHB/internal/infra"
	"github.com/Mekas12/AJHB/internal/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := infra.NewDatabase(filepath.Join(t.TempDir(), "auth_test.db"))
	require.NoError(t, err)
	return db
}

func TestUsuarioCreateAndFind(t *testing.T) {
	db := newTestDB(t)
	repo := NewUsuarioRepository(db)
	ctx := context.Background()

	u := &model.Usuario{
		Username: "prueba", PasswordHash: "h", Salt: "s",
		NombreCompleto: "Usuario Prueba", Role: model.RolSecretario,
		Permisos: "ventas", Activo: true, FechaCreacion: time.Now(),
	}
	require.NoError(t, repo.Create(ctx, u))
	assert.NotZero(t, u.ID)

	found, err := repo.FindActivoByUsername(ctx, "prueba")
	require.NoError(t, err)
	assert.Equal(t, u.ID, found.ID)

	// Duplicate username violates the unique index.
	dup := &model.Usuario{
		Username: "prueba", PasswordHash: "h", Salt: "s",
		NombreCompleto: "Otro", Role: model.RolSecretario,
		Permisos: "ventas", Activo: true, FechaCreacion: time.Now(),
	}
	err = repo.Create(ctx, dup)
	require.Error(t, err)
	assert.True(t, IsDuplicate(err))
}

func TestUsuarioSoftDeleteHidesFromLogin(t *testing.T) {
	db := newTestDB(t)
	repo := NewUsuarioRepository(db)
	ctx := context.Background()

	u := &model.Usuario{
		Username: "baja", PasswordHash: "h", Salt: "s",
		NombreCompleto: "Se Va", Role: model.RolSecretario,
		Permisos: "ventas", Activo: true, FechaCreacion: time.Now(),
	}
	require.NoError(t, repo.Create(ctx, u))
	require.NoError(t, repo.SoftDelete(ctx, u.ID))

	_, err := repo.FindActivoByUsername(ctx, "baja")
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	// The row itself survives (soft delete, not removal).
	kept, err := repo.FindByID(ctx, u.ID)
	require.NoError(t, err)
	assert.False(t, kept.Activo)
}

func TestUsuarioApplyPatch(t *testing.T) {
	db := newTestDB(t)
	repo := NewUsuarioRepository(db)
	ctx := context.Background()

	u := &model.Usuario{
		Username: "parche", PasswordHash: "h", Salt: "s",
		NombreCompleto: "Antes", Role: model.RolSecretario,
		Permisos: "ventas", Activo: true, FechaCreacion: time.Now(),
	}
	require.NoError(t, repo.Create(ctx, u))

	require.NoError(t, repo.ApplyPatch(ctx, u.ID, map[string]interface{}{
		"nombre_completo": "Después",
		"permisos":        "ventas,secretarios",
	}))
	// Empty patch is a no-op, not an error.
	require.NoError(t, repo.ApplyPatch(ctx, u.ID, nil))

	got, err := repo.FindByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "Después", got.NombreCompleto)
	assert.Equal(t, "ventas,secretarios", got.Permisos)
	assert.Equal(t, "parche", got.Username)
}

func TestSesionDeactivateIdempotent(t *testing.T) {
	db := newTestDB(t)
	repo := NewSesionRepository(db)
	ctx := context.Background()

	s := &model.Sesion{
		UserID: 1, Token: "tok-abc", IPAddress: "127.0.0.1",
		FechaInicio: time.Now(), FechaExpiracion: time.Now().Add(24 * time.Hour),
		Activa: true,
	}
	require.NoError(t, repo.Create(ctx, s))

	revocada, err := repo.IsRevocada(ctx, "tok-abc")
	require.NoError(t, err)
	assert.False(t, revocada)

	// Deactivating twice in a row is a no-op the second time; both succeed.
	require.NoError(t, repo.Deactivate(ctx, "tok-abc"))
	require.NoError(t, repo.Deactivate(ctx, "tok-abc"))

	revocada, err = repo.IsRevocada(ctx, "tok-abc")
	require.NoError(t, err)
	assert.True(t, revocada)

	// Unknown token: no-op success, not revoked.
	require.NoError(t, repo.Deactivate(ctx, "tok-desconocido"))
	revocada, err = repo.IsRevocada(ctx, "tok-desconocido")
	require.NoError(t, err)
	assert.False(t, revocada)
}

func TestLogAccesoAppend(t *testing.T) {
	db := newTestDB(t)
	repo := NewLogAccesoRepository(db)
	ctx := context.Background()

	userID := int64(9)
	require.NoError(t, repo.Insert(ctx, &model.LogAcceso{
		UserID: &userID, Username: "alguien",
		Accion: model.AccionLoginExitoso, IPAddress: "10.0.0.1",
		Fecha: time.Now(), Exitoso: true,
	}))
	require.NoError(t, repo.Insert(ctx, &model.LogAcceso{
		Username: "desconocido",
		Accion:   model.AccionLoginFallido, IPAddress: "10.0.0.2",
		Fecha: time.Now(), Exitoso: false,
	}))

	var count int64
	require.NoError(t, db.Model(&model.LogAcceso{}).Count(&count).Error)
	assert.EqualValues(t, 2, count)
}

func TestIsBusy(t *testing.T) {
	assert.True(t, IsBusy(errors.New("database is locked")))
	assert.True(t, IsBusy(errors.New("sqlite: database table is locked")))
	assert.False(t, IsBusy(errors.New("UNIQUE constraint failed: usuarios.username")))
	assert.False(t, IsBusy(nil))
}

func TestIsDuplicate(t *testing.T) {
	assert.True(t, IsDuplicate(errors.New("UNIQUE constraint failed: usuarios.username")))
	assert.False(t, IsDuplicate(errors.New("database is locked")))
	assert.False(t, IsDuplicate(nil))
}
