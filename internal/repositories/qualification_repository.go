package repositories

import (
	"errors"

	"workwise_backend/internal/models"
	"workwise_backend/internal/services/dto"

	"gorm.io/gorm"
)

var ErrQualificationNotFound = errors.New("qualification not found")

type QualificationRepository interface {
	FindByUser(userID uint) ([]models.Qualification, error)
	FindOwned(qualificationID, userID uint) (*models.Qualification, error)
	Create(qualification *models.Qualification) error
	Update(qualificationID, userID uint, patch *dto.QualificationPatch) error
	Delete(qualificationID, userID uint) error
}

type QualificationRepositoryImpl struct {
	db *gorm.DB
}

func NewQualificationRepository(db *gorm.DB) QualificationRepository {
	return &QualificationRepositoryImpl{db: db}
}

func (r *QualificationRepositoryImpl) FindByUser(userID uint) ([]models.Qualification, error) {
	var quals []models.Qualification
	err := r.db.Where("user_id = ?", userID).
		Order("end_date IS NULL, end_date DESC, start_date DESC").
		Find(&quals).Error
	return quals, err
}

func (r *QualificationRepositoryImpl) FindOwned(qualificationID, userID uint) (*models.Qualification, error) {
	var qual models.Qualification
	err := r.db.Where("qualification_id = ? AND user_id = ?", qualificationID, userID).
		First(&qual).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQualificationNotFound
		}
		return nil, err
	}
	return &qual, nil
}

func (r *QualificationRepositoryImpl) Create(qualification *models.Qualification) error {
	if qualification.CreatedAt == "" {
		qualification.CreatedAt = nowUTC()
	}
	return r.db.Create(qualification).Error
}

// Update writes only the patch fields that are present. An empty patch is
// ErrNoFieldsToUpdate, never ErrQualificationNotFound: the two cases mean
// different things to callers. The statement is scoped by id AND owner.
func (r *QualificationRepositoryImpl) Update(qualificationID, userID uint, patch *dto.QualificationPatch) error {
	updates := qualificationColumns(patch)
	if len(updates) == 0 {
		return ErrNoFieldsToUpdate
	}

	result := r.db.Model(&models.Qualification{}).
		Where("qualification_id = ? AND user_id = ?", qualificationID, userID).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrQualificationNotFound
	}
	return nil
}

func (r *QualificationRepositoryImpl) Delete(qualificationID, userID uint) error {
	result := r.db.Where("qualification_id = ? AND user_id = ?", qualificationID, userID).
		Delete(&models.Qualification{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrQualificationNotFound
	}
	return nil
}

// qualificationColumns maps wire fields to storage columns. IsCurrent is
// written as 0/1 explicitly; a current qualification also forces end_date
// to NULL (the service pre-clears EndDate in the patch for that case).
func qualificationColumns(patch *dto.QualificationPatch) map[string]interface{} {
	updates := make(map[string]interface{})
	if patch.QualificationType != nil {
		updates["qualification_type"] = *patch.QualificationType
	}
	if patch.Institution != nil {
		updates["institution"] = *patch.Institution
	}
	if patch.FieldOfStudy != nil {
		updates["field_of_study"] = *patch.FieldOfStudy
	}
	if patch.QualificationName != nil {
		updates["qualification_name"] = *patch.QualificationName
	}
	if patch.StartDate != nil {
		updates["start_date"] = *patch.StartDate
	}
	if patch.EndDate != nil {
		updates["end_date"] = *patch.EndDate
	}
	if patch.IsCurrent != nil {
		updates["is_current"] = boolToInt(*patch.IsCurrent)
		if *patch.IsCurrent {
			updates["end_date"] = nil
		}
	}
	if patch.GradeOrGpa != nil {
		updates["grade_or_gpa"] = *patch.GradeOrGpa
	}
	if patch.Description != nil {
		updates["description"] = *patch.Description
	}
	return updates
}
