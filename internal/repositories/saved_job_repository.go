package repositories

import (
	"errors"

	"workwise_backend/internal/models"

	"gorm.io/gorm"
)

var ErrSavedJobNotFound = errors.New("saved job not found")

type SavedJobRepository interface {
	FindByUser(userID uint) ([]models.SavedJob, error)
	Create(job *models.SavedJob) error
	Delete(savedJobID, userID uint) error
	CountByUser(userID uint) (int64, error)
}

type SavedJobRepositoryImpl struct {
	db *gorm.DB
}

func NewSavedJobRepository(db *gorm.DB) SavedJobRepository {
	return &SavedJobRepositoryImpl{db: db}
}

func (r *SavedJobRepositoryImpl) FindByUser(userID uint) ([]models.SavedJob, error) {
	var jobs []models.SavedJob
	err := r.db.Where("user_id = ?", userID).
		Order("saved_at DESC").
		Find(&jobs).Error
	return jobs, err
}

func (r *SavedJobRepositoryImpl) Create(job *models.SavedJob) error {
	if job.SavedAt == "" {
		job.SavedAt = nowUTC()
	}
	return r.db.Create(job).Error
}

func (r *SavedJobRepositoryImpl) Delete(savedJobID, userID uint) error {
	result := r.db.Where("saved_job_id = ? AND user_id = ?", savedJobID, userID).
		Delete(&models.SavedJob{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSavedJobNotFound
	}
	return nil
}

func (r *SavedJobRepositoryImpl) CountByUser(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.SavedJob{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

type ApplicationRepository interface {
	FindByUser(userID uint) ([]models.JobApplication, error)
	Create(application *models.JobApplication) error
	CountByUser(userID uint) (int64, error)
}

type ApplicationRepositoryImpl struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &ApplicationRepositoryImpl{db: db}
}

func (r *ApplicationRepositoryImpl) FindByUser(userID uint) ([]models.JobApplication, error) {
	var apps []models.JobApplication
	err := r.db.Where("user_id = ?", userID).
		Order("application_date DESC").
		Find(&apps).Error
	return apps, err
}

func (r *ApplicationRepositoryImpl) Create(application *models.JobApplication) error {
	if application.ApplicationDate == "" {
		application.ApplicationDate = nowUTC()
	}
	if application.Status == "" {
		application.Status = "pending"
	}
	return r.db.Create(application).Error
}

func (r *ApplicationRepositoryImpl) CountByUser(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.JobApplication{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}
