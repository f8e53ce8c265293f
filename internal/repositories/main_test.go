package repositories_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"workwise_backend/internal/database"
	"workwise_backend/internal/models"
)

// newTestDB opens a throwaway in-memory database with the full schema.
// Single connection so the memory database survives connection reuse.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, username, email string) *models.User {
	t.Helper()

	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: "x",
		Role:         models.RoleUser,
		IsActive:     true,
		CreatedAt:    "2026-01-01T00:00:00Z",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}
