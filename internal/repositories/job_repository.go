package repositories

import (
	"errors"

	"workwise_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrJobNotFound      = errors.New("job not found")
	ErrBusinessNotFound = errors.New("business not found")
)

// JobSearchCriteria narrows the active-jobs listing. Zero values mean
// "no filter".
type JobSearchCriteria struct {
	Query           string
	EmploymentType  string
	WorkArrangement string
	Location        string
	Limit           int
	Offset          int
}

type JobRepository interface {
	CreateBusiness(business *models.Business) error
	FindBusinessByID(businessID uint) (*models.Business, error)
	ListBusinesses() ([]models.Business, error)

	CreateJob(job *models.Job) error
	FindListingByID(jobID uint) (*models.JobListing, error)
	ActiveListings(limit, offset int) ([]models.JobListing, error)
	Search(criteria JobSearchCriteria) ([]models.JobListing, error)
}

type JobRepositoryImpl struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) JobRepository {
	return &JobRepositoryImpl{db: db}
}

func (r *JobRepositoryImpl) CreateBusiness(business *models.Business) error {
	if business.CreatedAt == "" {
		business.CreatedAt = nowUTC()
	}
	return r.db.Create(business).Error
}

func (r *JobRepositoryImpl) FindBusinessByID(businessID uint) (*models.Business, error) {
	var business models.Business
	err := r.db.First(&business, "business_id = ?", businessID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBusinessNotFound
		}
		return nil, err
	}
	return &business, nil
}

func (r *JobRepositoryImpl) ListBusinesses() ([]models.Business, error) {
	var businesses []models.Business
	err := r.db.Order("created_at DESC").Find(&businesses).Error
	return businesses, err
}

func (r *JobRepositoryImpl) CreateJob(job *models.Job) error {
	if job.DatePosted == "" {
		job.DatePosted = nowUTC()
	}
	return r.db.Create(job).Error
}

// listingSelect is the jobs↔businesses join every read query starts from.
func (r *JobRepositoryImpl) listingSelect() *gorm.DB {
	return r.db.Table("jobs").
		Select(`jobs.job_id, jobs.business_id, jobs.job_title, jobs.job_description,
			jobs.job_location, jobs.salary_range, jobs.employment_type,
			jobs.work_arrangement, jobs.date_posted,
			businesses.business_name, businesses.industry`).
		Joins("JOIN businesses ON businesses.business_id = jobs.business_id")
}

func (r *JobRepositoryImpl) FindListingByID(jobID uint) (*models.JobListing, error) {
	var listing models.JobListing
	err := r.listingSelect().
		Where("jobs.job_id = ?", jobID).
		Take(&listing).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &listing, nil
}

func (r *JobRepositoryImpl) ActiveListings(limit, offset int) ([]models.JobListing, error) {
	var listings []models.JobListing
	err := r.listingSelect().
		Where("jobs.is_active = ?", boolToInt(true)).
		Order("jobs.date_posted DESC").
		Limit(limit).Offset(offset).
		Find(&listings).Error
	return listings, err
}

func (r *JobRepositoryImpl) Search(criteria JobSearchCriteria) ([]models.JobListing, error) {
	query := r.listingSelect().Where("jobs.is_active = ?", boolToInt(true))

	if criteria.Query != "" {
		like := "%" + criteria.Query + "%"
		query = query.Where(
			"jobs.job_title LIKE ? OR jobs.job_description LIKE ? OR businesses.business_name LIKE ?",
			like, like, like,
		)
	}
	if criteria.EmploymentType != "" {
		query = query.Where("jobs.employment_type = ?", criteria.EmploymentType)
	}
	if criteria.WorkArrangement != "" {
		query = query.Where("jobs.work_arrangement = ?", criteria.WorkArrangement)
	}
	if criteria.Location != "" {
		query = query.Where("jobs.job_location LIKE ?", "%"+criteria.Location+"%")
	}

	var listings []models.JobListing
	err := query.Order("jobs.date_posted DESC").
		Limit(criteria.Limit).Offset(criteria.Offset).
		Find(&listings).Error
	return listings, err
}
