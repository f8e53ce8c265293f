package dto

import "workwise_backend/internal/models"

type QualificationCreateRequest struct {
	QualificationType string  `json:"qualificationType" binding:"required" validate:"required"`
	Institution       string  `json:"institution" binding:"required" validate:"required"`
	FieldOfStudy      *string `json:"fieldOfStudy"`
	QualificationName string  `json:"qualificationName" binding:"required" validate:"required"`
	StartDate         *string `json:"startDate"`
	EndDate           *string `json:"endDate"`
	IsCurrent         bool    `json:"isCurrent"`
	GradeOrGpa        *string `json:"gradeOrGpa"`
	Description       *string `json:"description"`
}

// QualificationPatch is the typed partial-update payload. Only non-nil
// fields are written.
type QualificationPatch struct {
	QualificationType *string `json:"qualificationType"`
	Institution       *string `json:"institution"`
	FieldOfStudy      *string `json:"fieldOfStudy"`
	QualificationName *string `json:"qualificationName"`
	StartDate         *string `json:"startDate"`
	EndDate           *string `json:"endDate"`
	IsCurrent         *bool   `json:"isCurrent"`
	GradeOrGpa        *string `json:"gradeOrGpa"`
	Description       *string `json:"description"`
}

type QualificationResponse struct {
	QualificationID   uint    `json:"qualificationId"`
	UserID            uint    `json:"userId"`
	QualificationType string  `json:"qualificationType"`
	Institution       string  `json:"institution"`
	FieldOfStudy      *string `json:"fieldOfStudy"`
	QualificationName string  `json:"qualificationName"`
	StartDate         *string `json:"startDate"`
	EndDate           *string `json:"endDate"`
	IsCurrent         bool    `json:"isCurrent"`
	GradeOrGpa        *string `json:"gradeOrGpa"`
	Description       *string `json:"description"`
	CreatedAt         string  `json:"createdAt"`
}

func QualificationFromModel(q *models.Qualification) *QualificationResponse {
	return &QualificationResponse{
		QualificationID:   q.ID,
		UserID:            q.UserID,
		QualificationType: q.QualificationType,
		Institution:       q.Institution,
		FieldOfStudy:      q.FieldOfStudy,
		QualificationName: q.QualificationName,
		StartDate:         q.StartDate,
		EndDate:           q.EndDate,
		IsCurrent:         q.IsCurrent,
		GradeOrGpa:        q.GradeOrGpa,
		Description:       q.Description,
		CreatedAt:         q.CreatedAt,
	}
}

func QualificationsFromModels(quals []models.Qualification) []QualificationResponse {
	out := make([]QualificationResponse, 0, len(quals))
	for i := range quals {
		out = append(out, *QualificationFromModel(&quals[i]))
	}
	return out
}
