package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"workwise_backend/internal/config"
	"workwise_backend/internal/models"
	"workwise_backend/internal/repositories"
	"workwise_backend/internal/services/dto"
	"workwise_backend/internal/storage"
	"workwise_backend/pkg/apperrors"
)

type CVService interface {
	List(userID uint) ([]dto.CVResponse, error)
	Upload(ctx context.Context, userID uint, cvName string, isPrimary bool, header *multipart.FileHeader) (*dto.CVUploadResponse, error)
	Delete(ctx context.Context, cvID, userID uint) error
	SetPrimary(userID, cvID uint) (*dto.CVResponse, error)
}

type CVServiceImpl struct {
	cvRepo repositories.CVRepository
	store  storage.Storage
	cfg    *config.Config
}

func NewCVService(cvRepo repositories.CVRepository, store storage.Storage, cfg *config.Config) CVService {
	return &CVServiceImpl{cvRepo: cvRepo, store: store, cfg: cfg}
}

func (s *CVServiceImpl) List(userID uint) ([]dto.CVResponse, error) {
	cvs, err := s.cvRepo.FindByUser(userID)
	if err != nil {
		return nil, apperrors.StoreError(err)
	}
	return dto.CVsFromModels(cvs), nil
}

// Upload stores the document and records it. An upload flagged primary
// becomes the sole primary CV through the same clear-then-set rule as an
// explicit promotion; otherwise the flag defaults to false.
func (s *CVServiceImpl) Upload(ctx context.Context, userID uint, cvName string, isPrimary bool, header *multipart.FileHeader) (*dto.CVUploadResponse, error) {
	if header.Size > s.cfg.Upload.MaxSize {
		return nil, apperrors.ErrFileTooLarge
	}

	contentType := header.Header.Get("Content-Type")
	if !s.allowedType(contentType) {
		return nil, apperrors.ErrUnsupportedFileType
	}

	if cvName == "" {
		cvName = header.Filename
	}

	file, err := header.Open()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	defer file.Close()

	path := cvPath(userID, header.Filename)
	if err := s.store.Save(ctx, path, file, contentType); err != nil {
		return nil, apperrors.InternalError(err)
	}

	size := header.Size
	cv := &models.CV{
		UserID:    userID,
		CVName:    cvName,
		FilePath:  path,
		FileSize:  &size,
		MimeType:  &contentType,
		IsPrimary: isPrimary,
	}

	if err := s.cvRepo.Create(cv); err != nil {
		_ = s.store.Delete(ctx, path)
		return nil, apperrors.StoreError(err)
	}

	return &dto.CVUploadResponse{
		CVID:       cv.ID,
		CVName:     cv.CVName,
		FilePath:   cv.FilePath,
		IsPrimary:  cv.IsPrimary,
		UploadedAt: cv.UploadedAt,
	}, nil
}

func (s *CVServiceImpl) Delete(ctx context.Context, cvID, userID uint) error {
	cv, err := s.cvRepo.FindOwned(cvID, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrCVNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.StoreError(err)
	}

	if err := s.cvRepo.Delete(cvID, userID); err != nil {
		if apperrors.Is(err, repositories.ErrCVNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.StoreError(err)
	}

	// The row is gone; a stale object is tolerable.
	_ = s.store.Delete(ctx, cv.FilePath)
	return nil
}

func (s *CVServiceImpl) SetPrimary(userID, cvID uint) (*dto.CVResponse, error) {
	if err := s.cvRepo.SetPrimary(userID, cvID); err != nil {
		if apperrors.Is(err, repositories.ErrCVNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.StoreError(err)
	}

	cv, err := s.cvRepo.FindOwned(cvID, userID)
	if err != nil {
		return nil, apperrors.StoreError(err)
	}
	return dto.CVFromModel(cv), nil
}

func (s *CVServiceImpl) allowedType(contentType string) bool {
	for _, t := range s.cfg.Upload.AllowedTypes {
		if strings.EqualFold(t, contentType) {
			return true
		}
	}
	return false
}

func cvPath(userID uint, filename string) string {
	ext := filepath.Ext(filename)
	return fmt.Sprintf("cvs/%d/%s%s", userID, uuid.NewString(), ext)
}
