package services

import (
	"workwise_backend/internal/auth"
	"workwise_backend/internal/models"
	"workwise_backend/internal/repositories"
	"workwise_backend/internal/services/dto"
	"workwise_backend/pkg/apperrors"
)

type AuthService interface {
	Register(req *dto.RegisterRequest) (*dto.RegisterResponse, error)
	Login(req *dto.LoginRequest) (*dto.LoginResponse, error)
	ChangePassword(userID uint, req *dto.ChangePasswordRequest) error
	AdminCreateUser(req *dto.AdminCreateUserRequest) (*dto.RegisterResponse, error)
}

type AuthServiceImpl struct {
	userRepo repositories.UserRepository
}

func NewAuthService(userRepo repositories.UserRepository) AuthService {
	return &AuthServiceImpl{userRepo: userRepo}
}

// Register creates a regular account. Username and email must both be
// free; the check and the insert are not atomic, so the unique indexes
// are the real guarantee and a racing insert still maps to a conflict.
func (s *AuthServiceImpl) Register(req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.ErrWeakPassword
	}

	return s.createUser(req.Username, req.Email, req.Password, models.RoleUser)
}

func (s *AuthServiceImpl) Login(req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindByUsernameOrEmail(req.UsernameOrEmail)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.StoreError(err)
	}

	if !user.IsActive {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.LoginResponse{
		AccessToken: token,
		User:        dto.LoginUserFromModel(user),
	}, nil
}

func (s *AuthServiceImpl) ChangePassword(userID uint, req *dto.ChangePasswordRequest) error {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.StoreError(err)
	}

	if !auth.CheckPasswordHash(req.CurrentPassword, user.PasswordHash) {
		return apperrors.ErrInvalidCredentials
	}

	if err := auth.ValidatePassword(req.NewPassword); err != nil {
		return apperrors.ErrWeakPassword
	}

	hash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return apperrors.InternalError(err)
	}

	if err := s.userRepo.UpdatePassword(userID, hash); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.StoreError(err)
	}
	return nil
}

// AdminCreateUser lets an administrator provision accounts with an
// explicit role. Defaults to a regular user when role is empty.
func (s *AuthServiceImpl) AdminCreateUser(req *dto.AdminCreateUserRequest) (*dto.RegisterResponse, error) {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.ErrWeakPassword
	}

	role := req.Role
	if role == "" {
		role = models.RoleUser
	}

	return s.createUser(req.Username, req.Email, req.Password, role)
}

func (s *AuthServiceImpl) createUser(username, email, password, role string) (*dto.RegisterResponse, error) {
	taken, err := s.userRepo.ExistsByUsernameOrEmail(username, email)
	if err != nil {
		return nil, apperrors.StoreError(err)
	}
	if taken {
		return nil, apperrors.ErrConflict(repositories.ErrUserAlreadyExists,
			"users", "Username or email is already taken")
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		IsActive:     true,
	}

	if err := s.userRepo.Create(user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrConflict(err, "users", "Username or email is already taken")
		}
		return nil, apperrors.StoreError(err)
	}

	return dto.RegisterResponseFromModel(user), nil
}
