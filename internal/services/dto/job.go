package dto

import "workwise_backend/internal/models"

type BusinessCreateRequest struct {
	BusinessName string  `json:"businessName" binding:"required" validate:"required"`
	Industry     *string `json:"industry"`
	Location     *string `json:"location"`
	Website      *string `json:"website"`
	Description  *string `json:"description"`
}

type BusinessResponse struct {
	BusinessID   uint    `json:"businessId"`
	BusinessName string  `json:"businessName"`
	Industry     *string `json:"industry"`
	Location     *string `json:"location"`
	Website      *string `json:"website"`
	Description  *string `json:"description"`
	CreatedAt    string  `json:"createdAt"`
}

type JobCreateRequest struct {
	BusinessID      uint    `json:"businessId" binding:"required" validate:"required"`
	JobTitle        string  `json:"jobTitle" binding:"required" validate:"required"`
	JobDescription  *string `json:"jobDescription"`
	JobLocation     *string `json:"jobLocation"`
	SalaryRange     *string `json:"salaryRange"`
	EmploymentType  *string `json:"employmentType" validate:"omitempty,oneof=full-time part-time contract internship"`
	WorkArrangement *string `json:"workArrangement" validate:"omitempty,oneof=on-site remote hybrid"`
}

type JobResponse struct {
	JobID           uint    `json:"jobId"`
	BusinessID      uint    `json:"businessId"`
	JobTitle        string  `json:"jobTitle"`
	JobDescription  *string `json:"jobDescription"`
	JobLocation     *string `json:"jobLocation"`
	SalaryRange     *string `json:"salaryRange"`
	EmploymentType  *string `json:"employmentType"`
	WorkArrangement *string `json:"workArrangement"`
	IsActive        bool    `json:"isActive"`
	DatePosted      string  `json:"datePosted"`
}

type JobListingResponse struct {
	JobID           uint    `json:"jobId"`
	JobTitle        string  `json:"jobTitle"`
	BusinessName    string  `json:"businessName"`
	Industry        *string `json:"industry"`
	JobLocation     *string `json:"jobLocation"`
	SalaryRange     *string `json:"salaryRange"`
	EmploymentType  *string `json:"employmentType"`
	WorkArrangement *string `json:"workArrangement"`
	DatePosted      string  `json:"datePosted"`
}

type JobDetailResponse struct {
	JobListingResponse
	BusinessID     uint    `json:"businessId"`
	JobDescription *string `json:"jobDescription"`
}

// JobSearchQuery binds the search endpoint's query string.
type JobSearchQuery struct {
	Query           string `form:"query"`
	EmploymentType  string `form:"employment_type"`
	WorkArrangement string `form:"work_arrangement"`
	Location        string `form:"location"`
	Limit           int    `form:"limit"`
	Offset          int    `form:"offset"`
}

func BusinessFromModel(b *models.Business) *BusinessResponse {
	return &BusinessResponse{
		BusinessID:   b.ID,
		BusinessName: b.BusinessName,
		Industry:     b.Industry,
		Location:     b.Location,
		Website:      b.Website,
		Description:  b.Description,
		CreatedAt:    b.CreatedAt,
	}
}

func JobFromModel(j *models.Job) *JobResponse {
	return &JobResponse{
		JobID:           j.ID,
		BusinessID:      j.BusinessID,
		JobTitle:        j.JobTitle,
		JobDescription:  j.JobDescription,
		JobLocation:     j.JobLocation,
		SalaryRange:     j.SalaryRange,
		EmploymentType:  j.EmploymentType,
		WorkArrangement: j.WorkArrangement,
		IsActive:        j.IsActive,
		DatePosted:      j.DatePosted,
	}
}

func JobListingFromModel(l *models.JobListing) *JobListingResponse {
	return &JobListingResponse{
		JobID:           l.ID,
		JobTitle:        l.JobTitle,
		BusinessName:    l.BusinessName,
		Industry:        l.Industry,
		JobLocation:     l.JobLocation,
		SalaryRange:     l.SalaryRange,
		EmploymentType:  l.EmploymentType,
		WorkArrangement: l.WorkArrangement,
		DatePosted:      l.DatePosted,
	}
}

func JobListingsFromModels(listings []models.JobListing) []JobListingResponse {
	out := make([]JobListingResponse, 0, len(listings))
	for i := range listings {
		out = append(out, *JobListingFromModel(&listings[i]))
	}
	return out
}

func JobDetailFromModel(l *models.JobListing) *JobDetailResponse {
	return &JobDetailResponse{
		JobListingResponse: *JobListingFromModel(l),
		BusinessID:         l.BusinessID,
		JobDescription:     l.JobDescription,
	}
}
