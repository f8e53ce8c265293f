package dto

import "workwise_backend/internal/models"

type SavedJobCreateRequest struct {
	JobTitle       string  `json:"jobTitle" binding:"required" validate:"required"`
	CompanyName    string  `json:"companyName" binding:"required" validate:"required"`
	JobLocation    *string `json:"jobLocation"`
	SalaryRange    *string `json:"salaryRange"`
	JobDescription *string `json:"jobDescription"`
}

type SavedJobResponse struct {
	SavedJobID     uint    `json:"savedJobId"`
	UserID         uint    `json:"userId"`
	JobTitle       string  `json:"jobTitle"`
	CompanyName    string  `json:"companyName"`
	JobLocation    *string `json:"jobLocation"`
	SalaryRange    *string `json:"salaryRange"`
	JobDescription *string `json:"jobDescription"`
	SavedAt        string  `json:"savedAt"`
}

type ApplicationCreateRequest struct {
	JobTitle    string  `json:"jobTitle" binding:"required" validate:"required"`
	CompanyName string  `json:"companyName" binding:"required" validate:"required"`
	Notes       *string `json:"notes"`
}

type ApplicationResponse struct {
	ApplicationID   uint    `json:"applicationId"`
	UserID          uint    `json:"userId"`
	JobTitle        string  `json:"jobTitle"`
	CompanyName     string  `json:"companyName"`
	ApplicationDate string  `json:"applicationDate"`
	Status          string  `json:"status"`
	Notes           *string `json:"notes"`
}

func SavedJobFromModel(j *models.SavedJob) *SavedJobResponse {
	return &SavedJobResponse{
		SavedJobID:     j.ID,
		UserID:         j.UserID,
		JobTitle:       j.JobTitle,
		CompanyName:    j.CompanyName,
		JobLocation:    j.JobLocation,
		SalaryRange:    j.SalaryRange,
		JobDescription: j.JobDescription,
		SavedAt:        j.SavedAt,
	}
}

func SavedJobsFromModels(jobs []models.SavedJob) []SavedJobResponse {
	out := make([]SavedJobResponse, 0, len(jobs))
	for i := range jobs {
		out = append(out, *SavedJobFromModel(&jobs[i]))
	}
	return out
}

func ApplicationFromModel(a *models.JobApplication) *ApplicationResponse {
	return &ApplicationResponse{
		ApplicationID:   a.ID,
		UserID:          a.UserID,
		JobTitle:        a.JobTitle,
		CompanyName:     a.CompanyName,
		ApplicationDate: a.ApplicationDate,
		Status:          a.Status,
		Notes:           a.Notes,
	}
}

func ApplicationsFromModels(apps []models.JobApplication) []ApplicationResponse {
	out := make([]ApplicationResponse, 0, len(apps))
	for i := range apps {
		out = append(out, *ApplicationFromModel(&apps[i]))
	}
	return out
}
