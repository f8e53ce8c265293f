package repositories

import (
	"errors"

	"workwise_backend/internal/models"

	"gorm.io/gorm"
)

var ErrCVNotFound = errors.New("cv not found")

type CVRepository interface {
	FindByUser(userID uint) ([]models.CV, error)
	FindOwned(cvID, userID uint) (*models.CV, error)
	Create(cv *models.CV) error
	Delete(cvID, userID uint) error
	SetPrimary(userID, cvID uint) error
}

type CVRepositoryImpl struct {
	db *gorm.DB
}

func NewCVRepository(db *gorm.DB) CVRepository {
	return &CVRepositoryImpl{db: db}
}

func (r *CVRepositoryImpl) FindByUser(userID uint) ([]models.CV, error) {
	var cvs []models.CV
	err := r.db.Where("user_id = ?", userID).
		Order("uploaded_at DESC").
		Find(&cvs).Error
	return cvs, err
}

// FindOwned filters by both the record id and the owning user, so a CV
// belonging to someone else looks exactly like a missing one.
func (r *CVRepositoryImpl) FindOwned(cvID, userID uint) (*models.CV, error) {
	var cv models.CV
	err := r.db.Where("cv_id = ? AND user_id = ?", cvID, userID).First(&cv).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCVNotFound
		}
		return nil, err
	}
	return &cv, nil
}

// Create inserts the CV. A record flagged primary demotes every other
// CV the owner holds inside the same transaction, so an upload claiming
// the flag lands with exactly one primary in place.
func (r *CVRepositoryImpl) Create(cv *models.CV) error {
	if cv.UploadedAt == "" {
		cv.UploadedAt = nowUTC()
	}

	if !cv.IsPrimary {
		return r.db.Create(cv).Error
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.CV{}).
			Where("user_id = ?", cv.UserID).
			Update("is_primary", boolToInt(false)).Error; err != nil {
			return err
		}
		return tx.Create(cv).Error
	})
}

func (r *CVRepositoryImpl) Delete(cvID, userID uint) error {
	result := r.db.Where("cv_id = ? AND user_id = ?", cvID, userID).Delete(&models.CV{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCVNotFound
	}
	return nil
}

// SetPrimary clears every primary flag the owner holds and then sets the
// target, as one transaction. The whole operation reports not-found when
// the target row (scoped by id AND owner) did not match; the clear step is
// rolled back with it.
func (r *CVRepositoryImpl) SetPrimary(userID, cvID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.CV{}).
			Where("user_id = ?", userID).
			Update("is_primary", boolToInt(false)).Error; err != nil {
			return err
		}

		result := tx.Model(&models.CV{}).
			Where("cv_id = ? AND user_id = ?", cvID, userID).
			Update("is_primary", boolToInt(true))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected != 1 {
			return ErrCVNotFound
		}
		return nil
	})
}
