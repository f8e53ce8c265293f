package dto

import "workwise_backend/internal/models"

type CVResponse struct {
	CVID       uint    `json:"cvId"`
	UserID     uint    `json:"userId"`
	CVName     string  `json:"cvName"`
	FilePath   string  `json:"filePath"`
	FileSize   *int64  `json:"fileSize"`
	MimeType   *string `json:"mimeType"`
	IsPrimary  bool    `json:"isPrimary"`
	UploadedAt string  `json:"uploadedAt"`
}

type CVUploadResponse struct {
	CVID       uint   `json:"cvId"`
	CVName     string `json:"cvName"`
	FilePath   string `json:"filePath"`
	IsPrimary  bool   `json:"isPrimary"`
	UploadedAt string `json:"uploadedAt"`
}

func CVFromModel(cv *models.CV) *CVResponse {
	return &CVResponse{
		CVID:       cv.ID,
		UserID:     cv.UserID,
		CVName:     cv.CVName,
		FilePath:   cv.FilePath,
		FileSize:   cv.FileSize,
		MimeType:   cv.MimeType,
		IsPrimary:  cv.IsPrimary,
		UploadedAt: cv.UploadedAt,
	}
}

func CVsFromModels(cvs []models.CV) []CVResponse {
	out := make([]CVResponse, 0, len(cvs))
	for i := range cvs {
		out = append(out, *CVFromModel(&cvs[i]))
	}
	return out
}
