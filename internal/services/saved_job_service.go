package services

import (
	"workwise_backend/internal/models"
	"workwise_backend/internal/repositories"
	"workwise_backend/internal/services/dto"
	"workwise_backend/pkg/apperrors"
)

type SavedJobService interface {
	List(userID uint) ([]dto.SavedJobResponse, error)
	Save(userID uint, req *dto.SavedJobCreateRequest) (*dto.SavedJobResponse, error)
	Delete(savedJobID, userID uint) error
}

type SavedJobServiceImpl struct {
	savedJobRepo repositories.SavedJobRepository
}

func NewSavedJobService(savedJobRepo repositories.SavedJobRepository) SavedJobService {
	return &SavedJobServiceImpl{savedJobRepo: savedJobRepo}
}

func (s *SavedJobServiceImpl) List(userID uint) ([]dto.SavedJobResponse, error) {
	jobs, err := s.savedJobRepo.FindByUser(userID)
	if err != nil {
		return nil, apperrors.StoreError(err)
	}
	return dto.SavedJobsFromModels(jobs), nil
}

func (s *SavedJobServiceImpl) Save(userID uint, req *dto.SavedJobCreateRequest) (*dto.SavedJobResponse, error) {
	job := &models.SavedJob{
		UserID:         userID,
		JobTitle:       req.JobTitle,
		CompanyName:    req.CompanyName,
		JobLocation:    req.JobLocation,
		SalaryRange:    req.SalaryRange,
		JobDescription: req.JobDescription,
	}

	if err := s.savedJobRepo.Create(job); err != nil {
		return nil, apperrors.StoreError(err)
	}
	return dto.SavedJobFromModel(job), nil
}

func (s *SavedJobServiceImpl) Delete(savedJobID, userID uint) error {
	if err := s.savedJobRepo.Delete(savedJobID, userID); err != nil {
		if apperrors.Is(err, repositories.ErrSavedJobNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.StoreError(err)
	}
	return nil
}

type ApplicationService interface {
	List(userID uint) ([]dto.ApplicationResponse, error)
	Create(userID uint, req *dto.ApplicationCreateRequest) (*dto.ApplicationResponse, error)
}

type ApplicationServiceImpl struct {
	appRepo repositories.ApplicationRepository
}

func NewApplicationService(appRepo repositories.ApplicationRepository) ApplicationService {
	return &ApplicationServiceImpl{appRepo: appRepo}
}

func (s *ApplicationServiceImpl) List(userID uint) ([]dto.ApplicationResponse, error) {
	apps, err := s.appRepo.FindByUser(userID)
	if err != nil {
		return nil, apperrors.StoreError(err)
	}
	return dto.ApplicationsFromModels(apps), nil
}

func (s *ApplicationServiceImpl) Create(userID uint, req *dto.ApplicationCreateRequest) (*dto.ApplicationResponse, error) {
	app := &models.JobApplication{
		UserID:      userID,
		JobTitle:    req.JobTitle,
		CompanyName: req.CompanyName,
		Notes:       req.Notes,
	}

	if err := s.appRepo.Create(app); err != nil {
		return nil, apperrors.StoreError(err)
	}
	return dto.ApplicationFromModel(app), nil
}
