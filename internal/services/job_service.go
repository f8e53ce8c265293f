package services

import (
	"workwise_backend/internal/models"
	"workwise_backend/internal/repositories"
	"workwise_backend/internal/services/dto"
	"workwise_backend/pkg/apperrors"
)

// Default and maximum page sizes for listing and search endpoints.
const (
	defaultJobPageSize = 20
	maxJobPageSize     = 100
)

type JobService interface {
	CreateBusiness(req *dto.BusinessCreateRequest) (*dto.BusinessResponse, error)
	ListBusinesses() ([]dto.BusinessResponse, error)

	CreateJob(req *dto.JobCreateRequest) (*dto.JobResponse, error)
	GetJob(jobID uint) (*dto.JobDetailResponse, error)
	ListActive(limit, offset int) ([]dto.JobListingResponse, error)
	Search(query *dto.JobSearchQuery) ([]dto.JobListingResponse, error)
}

type JobServiceImpl struct {
	jobRepo repositories.JobRepository
}

func NewJobService(jobRepo repositories.JobRepository) JobService {
	return &JobServiceImpl{jobRepo: jobRepo}
}

func (s *JobServiceImpl) CreateBusiness(req *dto.BusinessCreateRequest) (*dto.BusinessResponse, error) {
	business := &models.Business{
		BusinessName: req.BusinessName,
		Industry:     req.Industry,
		Location:     req.Location,
		Website:      req.Website,
		Description:  req.Description,
	}

	if err := s.jobRepo.CreateBusiness(business); err != nil {
		return nil, apperrors.StoreError(err)
	}
	return dto.BusinessFromModel(business), nil
}

func (s *JobServiceImpl) ListBusinesses() ([]dto.BusinessResponse, error) {
	businesses, err := s.jobRepo.ListBusinesses()
	if err != nil {
		return nil, apperrors.StoreError(err)
	}

	out := make([]dto.BusinessResponse, 0, len(businesses))
	for i := range businesses {
		out = append(out, *dto.BusinessFromModel(&businesses[i]))
	}
	return out, nil
}

// CreateJob requires the business to exist; a job can never point at a
// missing business.
func (s *JobServiceImpl) CreateJob(req *dto.JobCreateRequest) (*dto.JobResponse, error) {
	if _, err := s.jobRepo.FindBusinessByID(req.BusinessID); err != nil {
		if apperrors.Is(err, repositories.ErrBusinessNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.StoreError(err)
	}

	job := &models.Job{
		BusinessID:      req.BusinessID,
		JobTitle:        req.JobTitle,
		JobDescription:  req.JobDescription,
		JobLocation:     req.JobLocation,
		SalaryRange:     req.SalaryRange,
		EmploymentType:  req.EmploymentType,
		WorkArrangement: req.WorkArrangement,
		IsActive:        true,
	}

	if err := s.jobRepo.CreateJob(job); err != nil {
		return nil, apperrors.StoreError(err)
	}
	return dto.JobFromModel(job), nil
}

func (s *JobServiceImpl) GetJob(jobID uint) (*dto.JobDetailResponse, error) {
	listing, err := s.jobRepo.FindListingByID(jobID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.StoreError(err)
	}
	return dto.JobDetailFromModel(listing), nil
}

func (s *JobServiceImpl) ListActive(limit, offset int) ([]dto.JobListingResponse, error) {
	limit, offset = clampPage(limit, offset)

	listings, err := s.jobRepo.ActiveListings(limit, offset)
	if err != nil {
		return nil, apperrors.StoreError(err)
	}
	return dto.JobListingsFromModels(listings), nil
}

func (s *JobServiceImpl) Search(query *dto.JobSearchQuery) ([]dto.JobListingResponse, error) {
	limit, offset := clampPage(query.Limit, query.Offset)

	listings, err := s.jobRepo.Search(repositories.JobSearchCriteria{
		Query:           query.Query,
		EmploymentType:  query.EmploymentType,
		WorkArrangement: query.WorkArrangement,
		Location:        query.Location,
		Limit:           limit,
		Offset:          offset,
	})
	if err != nil {
		return nil, apperrors.StoreError(err)
	}
	return dto.JobListingsFromModels(listings), nil
}

func clampPage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = defaultJobPageSize
	}
	if limit > maxJobPageSize {
		limit = maxJobPageSize
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
