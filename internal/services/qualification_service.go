package services

import (
	"workwise_backend/internal/models"
	"workwise_backend/internal/repositories"
	"workwise_backend/internal/services/dto"
	"workwise_backend/pkg/apperrors"
)

type QualificationService interface {
	List(userID uint) ([]dto.QualificationResponse, error)
	Create(userID uint, req *dto.QualificationCreateRequest) (*dto.QualificationResponse, error)
	Update(qualificationID, userID uint, patch *dto.QualificationPatch) (*dto.QualificationResponse, error)
	Delete(qualificationID, userID uint) error
}

type QualificationServiceImpl struct {
	qualRepo repositories.QualificationRepository
}

func NewQualificationService(qualRepo repositories.QualificationRepository) QualificationService {
	return &QualificationServiceImpl{qualRepo: qualRepo}
}

func (s *QualificationServiceImpl) List(userID uint) ([]dto.QualificationResponse, error) {
	quals, err := s.qualRepo.FindByUser(userID)
	if err != nil {
		return nil, apperrors.StoreError(err)
	}
	return dto.QualificationsFromModels(quals), nil
}

func (s *QualificationServiceImpl) Create(userID uint, req *dto.QualificationCreateRequest) (*dto.QualificationResponse, error) {
	qual := &models.Qualification{
		UserID:            userID,
		QualificationType: req.QualificationType,
		Institution:       req.Institution,
		FieldOfStudy:      req.FieldOfStudy,
		QualificationName: req.QualificationName,
		StartDate:         req.StartDate,
		EndDate:           req.EndDate,
		IsCurrent:         req.IsCurrent,
		GradeOrGpa:        req.GradeOrGpa,
		Description:       req.Description,
	}

	// An ongoing qualification has no end date.
	if qual.IsCurrent {
		qual.EndDate = nil
	}

	if err := s.qualRepo.Create(qual); err != nil {
		return nil, apperrors.StoreError(err)
	}
	return dto.QualificationFromModel(qual), nil
}

// Update applies a partial update scoped to the owner. An empty patch is
// rejected so clients learn their request carried nothing.
func (s *QualificationServiceImpl) Update(qualificationID, userID uint, patch *dto.QualificationPatch) (*dto.QualificationResponse, error) {
	err := s.qualRepo.Update(qualificationID, userID, patch)
	if err != nil {
		switch {
		case apperrors.Is(err, repositories.ErrNoFieldsToUpdate):
			return nil, apperrors.ErrNoOpUpdate(err, "qualifications")
		case apperrors.Is(err, repositories.ErrQualificationNotFound):
			return nil, apperrors.ErrNotFound(err)
		default:
			return nil, apperrors.StoreError(err)
		}
	}

	qual, err := s.qualRepo.FindOwned(qualificationID, userID)
	if err != nil {
		return nil, apperrors.StoreError(err)
	}
	return dto.QualificationFromModel(qual), nil
}

func (s *QualificationServiceImpl) Delete(qualificationID, userID uint) error {
	if err := s.qualRepo.Delete(qualificationID, userID); err != nil {
		if apperrors.Is(err, repositories.ErrQualificationNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.StoreError(err)
	}
	return nil
}
