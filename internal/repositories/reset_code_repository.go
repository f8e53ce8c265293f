package repositories

import (
	"errors"
	"time"

	"workwise_backend/internal/models"

	"gorm.io/gorm"
)

// ErrResetCodeInvalid covers every failed verify/consume: wrong code,
// expired, already used, or superseded. Callers get no finer detail.
var ErrResetCodeInvalid = errors.New("invalid or expired reset code")

type ResetCodeRepository interface {
	Issue(userID uint, email, code string, ttl time.Duration) (*models.PasswordResetCode, error)
	FindValid(email, code string) (*models.PasswordResetCode, error)
	Consume(email, code, newPasswordHash string) error
	DeleteOlderThan(cutoff time.Time) (int64, error)
}

type ResetCodeRepositoryImpl struct {
	db *gorm.DB
}

func NewResetCodeRepository(db *gorm.DB) ResetCodeRepository {
	return &ResetCodeRepositoryImpl{db: db}
}

// Issue supersedes every unused code for the email and persists the new
// one, as a single transaction. After it returns, only the new code can
// pass FindValid.
func (r *ResetCodeRepositoryImpl) Issue(userID uint, email, code string, ttl time.Duration) (*models.PasswordResetCode, error) {
	now := time.Now().UTC()
	row := &models.PasswordResetCode{
		UserID:    userID,
		Email:     email,
		Code:      code,
		CreatedAt: now.Format(time.RFC3339),
		ExpiresAt: now.Add(ttl).Format(time.RFC3339),
		IsUsed:    false,
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.PasswordResetCode{}).
			Where("email = ? AND is_used = ?", email, boolToInt(false)).
			Update("is_used", boolToInt(true)).Error; err != nil {
			return err
		}
		return tx.Create(row).Error
	})
	if err != nil {
		return nil, err
	}
	return row, nil
}

// FindValid is the verify predicate: exists, unused, unexpired. It never
// mutates state, so callers may run it repeatedly.
func (r *ResetCodeRepositoryImpl) FindValid(email, code string) (*models.PasswordResetCode, error) {
	return findValid(r.db, email, code)
}

func findValid(db *gorm.DB, email, code string) (*models.PasswordResetCode, error) {
	var row models.PasswordResetCode
	err := db.Where("email = ? AND code = ? AND is_used = ?", email, code, boolToInt(false)).
		Order("created_at DESC").
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrResetCodeInvalid
		}
		return nil, err
	}

	expiresAt, err := time.Parse(time.RFC3339, row.ExpiresAt)
	if err != nil {
		return nil, ErrResetCodeInvalid
	}
	if !time.Now().UTC().Before(expiresAt) {
		return nil, ErrResetCodeInvalid
	}
	return &row, nil
}

// Consume re-runs the verify predicate and, on success, overwrites the
// user's credential and marks the code used inside one transaction, so a
// crash cannot leave a consumed code with an unchanged password. Safe to
// retry: until the transaction commits, the code still verifies.
func (r *ResetCodeRepositoryImpl) Consume(email, code, newPasswordHash string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		row, err := findValid(tx, email, code)
		if err != nil {
			return err
		}

		result := tx.Model(&models.User{}).Where("email = ?", email).Updates(map[string]interface{}{
			"password_hash": newPasswordHash,
			"updated_at":    nowUTC(),
		})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrResetCodeInvalid
		}

		return tx.Model(&models.PasswordResetCode{}).
			Where("code_id = ?", row.ID).
			Update("is_used", boolToInt(true)).Error
	})
}

// DeleteOlderThan is the best-effort sweep. Correctness never depends on
// it; expired and used rows fail FindValid regardless.
func (r *ResetCodeRepositoryImpl) DeleteOlderThan(cutoff time.Time) (int64, error) {
	result := r.db.Where("created_at < ?", cutoff.UTC().Format(time.RFC3339)).
		Delete(&models.PasswordResetCode{})
	return result.RowsAffected, result.Error
}
