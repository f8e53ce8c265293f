package repositories_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"workwise_backend/internal/models"
	"workwise_backend/internal/repositories"
)

func TestResetCodeRepository_IssueAndVerify(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	repo := repositories.NewResetCodeRepository(db)
	user := createTestUser(t, db, "alice", "alice@example.com")

	issued, err := repo.Issue(user.ID, user.Email, "123456", 15*time.Minute)
	require.NoError(t, err)
	assert.NotZero(t, issued.ID)

	row, err := repo.FindValid(user.Email, "123456")
	require.NoError(t, err)
	assert.Equal(t, issued.ID, row.ID)

	// Verify never consumes; a second check still passes.
	_, err = repo.FindValid(user.Email, "123456")
	assert.NoError(t, err)

	_, err = repo.FindValid(user.Email, "654321")
	assert.ErrorIs(t, err, repositories.ErrResetCodeInvalid)

	_, err = repo.FindValid("other@example.com", "123456")
	assert.ErrorIs(t, err, repositories.ErrResetCodeInvalid)
}

func TestResetCodeRepository_IssueSupersedes(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	repo := repositories.NewResetCodeRepository(db)
	user := createTestUser(t, db, "bob", "bob@example.com")

	_, err := repo.Issue(user.ID, user.Email, "111111", 15*time.Minute)
	require.NoError(t, err)
	_, err = repo.Issue(user.ID, user.Email, "222222", 15*time.Minute)
	require.NoError(t, err)

	_, err = repo.FindValid(user.Email, "111111")
	assert.ErrorIs(t, err, repositories.ErrResetCodeInvalid, "older code must stop verifying")

	_, err = repo.FindValid(user.Email, "222222")
	assert.NoError(t, err, "only the newest code verifies")
}

func TestResetCodeRepository_ExpiredCode(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	repo := repositories.NewResetCodeRepository(db)
	user := createTestUser(t, db, "carol", "carol@example.com")

	_, err := repo.Issue(user.ID, user.Email, "333333", -1*time.Minute)
	require.NoError(t, err)

	_, err = repo.FindValid(user.Email, "333333")
	assert.ErrorIs(t, err, repositories.ErrResetCodeInvalid)
}

func TestResetCodeRepository_Consume(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	repo := repositories.NewResetCodeRepository(db)
	userRepo := repositories.NewUserRepository(db)
	user := createTestUser(t, db, "dave", "dave@example.com")

	_, err := repo.Issue(user.ID, user.Email, "444444", 15*time.Minute)
	require.NoError(t, err)

	require.NoError(t, repo.Consume(user.Email, "444444", "fresh-hash"))

	updated, err := userRepo.FindByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "fresh-hash", updated.PasswordHash)
	assert.NotNil(t, updated.UpdatedAt)

	// Single use: the consumed code neither verifies nor consumes again.
	_, err = repo.FindValid(user.Email, "444444")
	assert.ErrorIs(t, err, repositories.ErrResetCodeInvalid)
	assert.ErrorIs(t, repo.Consume(user.Email, "444444", "other-hash"),
		repositories.ErrResetCodeInvalid)

	unchanged, err := userRepo.FindByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "fresh-hash", unchanged.PasswordHash)
}

func TestResetCodeRepository_Consume_InvalidCode(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	repo := repositories.NewResetCodeRepository(db)
	user := createTestUser(t, db, "erin", "erin@example.com")

	err := repo.Consume(user.Email, "999999", "hash")
	assert.ErrorIs(t, err, repositories.ErrResetCodeInvalid)

	unchanged, findErr := repositories.NewUserRepository(db).FindByID(user.ID)
	require.NoError(t, findErr)
	assert.Equal(t, "x", unchanged.PasswordHash, "failed consume must not touch the password")
}

func TestResetCodeRepository_DeleteOlderThan(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	repo := repositories.NewResetCodeRepository(db)
	user := createTestUser(t, db, "frank", "frank@example.com")

	stale := &models.PasswordResetCode{
		UserID:    user.ID,
		Email:     user.Email,
		Code:      "000001",
		CreatedAt: time.Now().UTC().Add(-48 * time.Hour).Format(time.RFC3339),
		ExpiresAt: time.Now().UTC().Add(-47 * time.Hour).Format(time.RFC3339),
	}
	require.NoError(t, db.Create(stale).Error)

	_, err := repo.Issue(user.ID, user.Email, "000002", 15*time.Minute)
	require.NoError(t, err)

	deleted, err := repo.DeleteOlderThan(time.Now().UTC().Add(-24 * time.Hour))
	require.NoError(t, err)
	assert.EqualValues(t, 1, deleted)

	var remaining int64
	require.NoError(t, db.Model(&models.PasswordResetCode{}).Count(&remaining).Error)
	assert.EqualValues(t, 1, remaining, "recent codes survive the sweep")
}
