package repositories_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"workwise_backend/internal/models"
	"workwise_backend/internal/repositories"
	"workwise_backend/internal/services/dto"
)

func boolPtr(b bool) *bool { return &b }

func createTestQualification(t *testing.T, db *gorm.DB, userID uint) *models.Qualification {
	t.Helper()

	repo := repositories.NewQualificationRepository(db)
	end := "2024-12-01"
	qual := &models.Qualification{
		UserID:            userID,
		QualificationType: "degree",
		Institution:       "Victoria University",
		QualificationName: "BSc Computer Science",
		StartDate:         strPtr("2021-02-01"),
		EndDate:           &end,
	}
	require.NoError(t, repo.Create(qual))
	return qual
}

func TestQualificationRepository_Update_PartialPatch(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	repo := repositories.NewQualificationRepository(db)
	user := createTestUser(t, db, "alice", "alice@example.com")
	qual := createTestQualification(t, db, user.ID)

	err := repo.Update(qual.ID, user.ID, &dto.QualificationPatch{
		GradeOrGpa: strPtr("A+"),
	})
	require.NoError(t, err)

	updated, err := repo.FindOwned(qual.ID, user.ID)
	require.NoError(t, err)
	require.NotNil(t, updated.GradeOrGpa)
	assert.Equal(t, "A+", *updated.GradeOrGpa)
	assert.Equal(t, "Victoria University", updated.Institution, "unpatched fields keep their values")
	require.NotNil(t, updated.EndDate)
}

func TestQualificationRepository_Update_EmptyPatch(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	repo := repositories.NewQualificationRepository(db)
	user := createTestUser(t, db, "bob", "bob@example.com")
	qual := createTestQualification(t, db, user.ID)

	err := repo.Update(qual.ID, user.ID, &dto.QualificationPatch{})
	assert.ErrorIs(t, err, repositories.ErrNoFieldsToUpdate)

	// Empty patch against a missing row still reports the no-op, not
	// not-found.
	err = repo.Update(9999, user.ID, &dto.QualificationPatch{})
	assert.ErrorIs(t, err, repositories.ErrNoFieldsToUpdate)
}

func TestQualificationRepository_Update_CurrentClearsEndDate(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	repo := repositories.NewQualificationRepository(db)
	user := createTestUser(t, db, "carol", "carol@example.com")
	qual := createTestQualification(t, db, user.ID)

	err := repo.Update(qual.ID, user.ID, &dto.QualificationPatch{
		IsCurrent: boolPtr(true),
	})
	require.NoError(t, err)

	updated, err := repo.FindOwned(qual.ID, user.ID)
	require.NoError(t, err)
	assert.True(t, updated.IsCurrent)
	assert.Nil(t, updated.EndDate, "a current qualification has no end date")
}

func TestQualificationRepository_Update_OwnerScoped(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	repo := repositories.NewQualificationRepository(db)
	owner := createTestUser(t, db, "dave", "dave@example.com")
	other := createTestUser(t, db, "eve", "eve@example.com")
	qual := createTestQualification(t, db, owner.ID)

	err := repo.Update(qual.ID, other.ID, &dto.QualificationPatch{
		Institution: strPtr("hijacked"),
	})
	assert.ErrorIs(t, err, repositories.ErrQualificationNotFound)

	unchanged, err := repo.FindOwned(qual.ID, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, "Victoria University", unchanged.Institution)
}

func TestQualificationRepository_Delete(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	repo := repositories.NewQualificationRepository(db)
	user := createTestUser(t, db, "frank", "frank@example.com")
	qual := createTestQualification(t, db, user.ID)

	assert.ErrorIs(t, repo.Delete(qual.ID, user.ID+1), repositories.ErrQualificationNotFound)

	require.NoError(t, repo.Delete(qual.ID, user.ID))
	assert.ErrorIs(t, repo.Delete(qual.ID, user.ID), repositories.ErrQualificationNotFound)
}

func TestQualificationRepository_FindByUser_OngoingFirst(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	repo := repositories.NewQualificationRepository(db)
	user := createTestUser(t, db, "grace", "grace@example.com")

	finished := createTestQualification(t, db, user.ID)
	ongoing := &models.Qualification{
		UserID:            user.ID,
		QualificationType: "certificate",
		Institution:       "Online Academy",
		QualificationName: "Cloud Practitioner",
		StartDate:         strPtr("2026-01-01"),
		IsCurrent:         true,
	}
	require.NoError(t, repo.Create(ongoing))

	quals, err := repo.FindByUser(user.ID)
	require.NoError(t, err)
	require.Len(t, quals, 2)
	assert.Equal(t, finished.ID, quals[0].ID, "completed qualifications sort before ongoing ones")
	assert.Equal(t, ongoing.ID, quals[1].ID)
}
