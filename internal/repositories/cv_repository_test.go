package repositories_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"workwise_backend/internal/models"
	"workwise_backend/internal/repositories"
)

func createTestCV(t *testing.T, db *gorm.DB, userID uint, name string) *models.CV {
	t.Helper()

	repo := repositories.NewCVRepository(db)
	cv := &models.CV{
		UserID:   userID,
		CVName:   name,
		FilePath: "cvs/" + name + ".pdf",
	}
	require.NoError(t, repo.Create(cv))
	return cv
}

func countPrimary(t *testing.T, db *gorm.DB, userID uint) int64 {
	t.Helper()

	var count int64
	require.NoError(t, db.Model(&models.CV{}).
		Where("user_id = ? AND is_primary = ?", userID, 1).
		Count(&count).Error)
	return count
}

func TestCVRepository_SetPrimary(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	repo := repositories.NewCVRepository(db)
	user := createTestUser(t, db, "alice", "alice@example.com")

	first := createTestCV(t, db, user.ID, "first")
	second := createTestCV(t, db, user.ID, "second")
	third := createTestCV(t, db, user.ID, "third")

	require.NoError(t, repo.SetPrimary(user.ID, first.ID))
	assert.EqualValues(t, 1, countPrimary(t, db, user.ID))

	// Promoting another CV demotes the previous one.
	require.NoError(t, repo.SetPrimary(user.ID, second.ID))
	assert.EqualValues(t, 1, countPrimary(t, db, user.ID))

	promoted, err := repo.FindOwned(second.ID, user.ID)
	require.NoError(t, err)
	assert.True(t, promoted.IsPrimary)

	demoted, err := repo.FindOwned(first.ID, user.ID)
	require.NoError(t, err)
	assert.False(t, demoted.IsPrimary)

	untouched, err := repo.FindOwned(third.ID, user.ID)
	require.NoError(t, err)
	assert.False(t, untouched.IsPrimary)
}

func TestCVRepository_Create_PrimaryFlagDemotesOthers(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	repo := repositories.NewCVRepository(db)
	user := createTestUser(t, db, "erin", "erin@example.com")

	first := createTestCV(t, db, user.ID, "resume1")
	require.NoError(t, repo.SetPrimary(user.ID, first.ID))

	// Inserting a primary-flagged CV takes the flag over.
	second := &models.CV{
		UserID:    user.ID,
		CVName:    "resume2",
		FilePath:  "cvs/resume2.pdf",
		IsPrimary: true,
	}
	require.NoError(t, repo.Create(second))

	assert.EqualValues(t, 1, countPrimary(t, db, user.ID))

	promoted, err := repo.FindOwned(second.ID, user.ID)
	require.NoError(t, err)
	assert.True(t, promoted.IsPrimary)

	demoted, err := repo.FindOwned(first.ID, user.ID)
	require.NoError(t, err)
	assert.False(t, demoted.IsPrimary)
}

func TestCVRepository_SetPrimary_MissingRollsBack(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	repo := repositories.NewCVRepository(db)
	user := createTestUser(t, db, "bob", "bob@example.com")

	cv := createTestCV(t, db, user.ID, "only")
	require.NoError(t, repo.SetPrimary(user.ID, cv.ID))

	// A failed promotion must not leave the owner without a primary.
	err := repo.SetPrimary(user.ID, 9999)
	assert.ErrorIs(t, err, repositories.ErrCVNotFound)

	still, err := repo.FindOwned(cv.ID, user.ID)
	require.NoError(t, err)
	assert.True(t, still.IsPrimary, "rollback must restore the cleared flag")
}

func TestCVRepository_SetPrimary_ForeignCV(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	repo := repositories.NewCVRepository(db)
	owner := createTestUser(t, db, "carol", "carol@example.com")
	intruder := createTestUser(t, db, "mallory", "mallory@example.com")

	cv := createTestCV(t, db, owner.ID, "private")

	err := repo.SetPrimary(intruder.ID, cv.ID)
	assert.ErrorIs(t, err, repositories.ErrCVNotFound, "foreign CV must look missing")

	unchanged, err := repo.FindOwned(cv.ID, owner.ID)
	require.NoError(t, err)
	assert.False(t, unchanged.IsPrimary)
}

func TestCVRepository_Delete_OwnerScoped(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	repo := repositories.NewCVRepository(db)
	owner := createTestUser(t, db, "dave", "dave@example.com")
	other := createTestUser(t, db, "eve", "eve@example.com")

	cv := createTestCV(t, db, owner.ID, "doc")

	assert.ErrorIs(t, repo.Delete(cv.ID, other.ID), repositories.ErrCVNotFound)

	require.NoError(t, repo.Delete(cv.ID, owner.ID))
	_, err := repo.FindOwned(cv.ID, owner.ID)
	assert.ErrorIs(t, err, repositories.ErrCVNotFound)
}

func TestCVRepository_FindByUser_NewestFirst(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	repo := repositories.NewCVRepository(db)
	user := createTestUser(t, db, "frank", "frank@example.com")

	old := &models.CV{UserID: user.ID, CVName: "old", FilePath: "a", UploadedAt: "2026-01-01T00:00:00Z"}
	recent := &models.CV{UserID: user.ID, CVName: "recent", FilePath: "b", UploadedAt: "2026-06-01T00:00:00Z"}
	require.NoError(t, repo.Create(old))
	require.NoError(t, repo.Create(recent))

	cvs, err := repo.FindByUser(user.ID)
	require.NoError(t, err)
	require.Len(t, cvs, 2)
	assert.Equal(t, "recent", cvs[0].CVName)
	assert.Equal(t, "old", cvs[1].CVName)
}
