package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"workwise_backend/internal/config"
	"workwise_backend/internal/repositories"
	"workwise_backend/internal/services/dto"
	"workwise_backend/internal/storage"
	"workwise_backend/pkg/apperrors"
)

type ProfileService interface {
	GetProfile(userID uint) (*dto.UserProfileResponse, error)
	UpdateProfile(userID uint, patch *dto.UserProfilePatch) (*dto.UserProfileResponse, error)
	UploadProfileImage(ctx context.Context, userID uint, header *multipart.FileHeader) (*dto.ProfileImageResponse, error)
	GetStats(userID uint) (*dto.UserStatsResponse, error)
}

type ProfileServiceImpl struct {
	userRepo     repositories.UserRepository
	savedJobRepo repositories.SavedJobRepository
	appRepo      repositories.ApplicationRepository
	store        storage.Storage
	cfg          *config.Config
}

func NewProfileService(
	userRepo repositories.UserRepository,
	savedJobRepo repositories.SavedJobRepository,
	appRepo repositories.ApplicationRepository,
	store storage.Storage,
	cfg *config.Config,
) ProfileService {
	return &ProfileServiceImpl{
		userRepo:     userRepo,
		savedJobRepo: savedJobRepo,
		appRepo:      appRepo,
		store:        store,
		cfg:          cfg,
	}
}

func (s *ProfileServiceImpl) GetProfile(userID uint) (*dto.UserProfileResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.StoreError(err)
	}
	return dto.UserProfileFromModel(user), nil
}

// UpdateProfile applies the patch and returns the resulting profile. An
// empty patch is not an error at this level; the current profile comes
// back unchanged.
func (s *ProfileServiceImpl) UpdateProfile(userID uint, patch *dto.UserProfilePatch) (*dto.UserProfileResponse, error) {
	err := s.userRepo.UpdateProfile(userID, patch)
	if err != nil {
		switch {
		case apperrors.Is(err, repositories.ErrNoFieldsToUpdate):
			// fall through to the read below
		case apperrors.Is(err, repositories.ErrUserNotFound):
			return nil, apperrors.ErrNotFound(err)
		default:
			return nil, apperrors.StoreError(err)
		}
	}

	return s.GetProfile(userID)
}

func (s *ProfileServiceImpl) UploadProfileImage(ctx context.Context, userID uint, header *multipart.FileHeader) (*dto.ProfileImageResponse, error) {
	if header.Size > s.cfg.Upload.MaxSize {
		return nil, apperrors.ErrFileTooLarge
	}

	contentType := header.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		return nil, apperrors.ErrUnsupportedFileType
	}

	if _, err := s.userRepo.FindByID(userID); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.StoreError(err)
	}

	file, err := header.Open()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	defer file.Close()

	path := profileImagePath(userID, header.Filename)
	if err := s.store.Save(ctx, path, file, contentType); err != nil {
		return nil, apperrors.InternalError(err)
	}

	if err := s.userRepo.SetProfileImage(userID, path); err != nil {
		// best effort cleanup of the orphaned object
		_ = s.store.Delete(ctx, path)
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.StoreError(err)
	}

	url, err := s.store.GetURL(ctx, path)
	if err != nil {
		url = path
	}

	return &dto.ProfileImageResponse{
		UserID:       userID,
		ProfileImage: url,
		Message:      "Profile image updated.",
	}, nil
}

func (s *ProfileServiceImpl) GetStats(userID uint) (*dto.UserStatsResponse, error) {
	applications, err := s.appRepo.CountByUser(userID)
	if err != nil {
		return nil, apperrors.StoreError(err)
	}

	saved, err := s.savedJobRepo.CountByUser(userID)
	if err != nil {
		return nil, apperrors.StoreError(err)
	}

	return &dto.UserStatsResponse{
		ApplicationsCount: applications,
		SavedJobsCount:    saved,
	}, nil
}

func profileImagePath(userID uint, filename string) string {
	ext := filepath.Ext(filename)
	return fmt.Sprintf("profiles/%d/%s%s", userID, uuid.NewString(), ext)
}
