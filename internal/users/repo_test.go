package users

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/campuskart/campuskart-backend/pkg/enums"
)

func setupUsersTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	require.NoError(t, err)

	schema := `
CREATE TABLE IF NOT EXISTS users (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  email TEXT NOT NULL UNIQUE,
  password_hash TEXT NOT NULL,
  class TEXT NOT NULL,
  phone TEXT NOT NULL,
  role TEXT NOT NULL DEFAULT 'member',
  created_at DATETIME,
  updated_at DATETIME
);`
	require.NoError(t, db.Exec(schema).Error)
	return db
}

func TestCreateIfAbsentInsertsOnce(t *testing.T) {
	db := setupUsersTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	dto := CreateUserDTO{
		Name:         "Asha Verma",
		Email:        "asha.verma@example.edu",
		PasswordHash: "digest",
		Class:        "CSE-3",
		Phone:        "9876500001",
	}

	created, err := repo.CreateIfAbsent(ctx, dto)
	require.NoError(t, err)
	assert.Equal(t, enums.UserRoleMember, created.Role)
	assert.NotEqual(t, "", created.ID.String())

	_, err = repo.CreateIfAbsent(ctx, dto)
	require.ErrorIs(t, err, ErrEmailTaken)

	var count int64
	require.NoError(t, db.Table("users").Where("email = ?", dto.Email).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestFindByEmail(t *testing.T) {
	db := setupUsersTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	created, err := repo.CreateIfAbsent(ctx, CreateUserDTO{
		Name:         "Ravi Nair",
		Email:        "ravi.nair@example.edu",
		PasswordHash: "digest",
		Class:        "ECE-2",
		Phone:        "9876500002",
		Role:         enums.UserRoleAdmin,
	})
	require.NoError(t, err)

	found, err := repo.FindByEmail(ctx, "ravi.nair@example.edu")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
	assert.Equal(t, enums.UserRoleAdmin, found.Role)

	_, err = repo.FindByEmail(ctx, "missing@example.edu")
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestFindByID(t *testing.T) {
	db := setupUsersTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	created, err := repo.CreateIfAbsent(ctx, CreateUserDTO{
		Name:         "Meera Iyer",
		Email:        "meera.iyer@example.edu",
		PasswordHash: "digest",
		Class:        "ME-1",
		Phone:        "9876500003",
	})
	require.NoError(t, err)

	found, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Meera Iyer", found.Name)
}
