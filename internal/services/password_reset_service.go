package services

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"workwise_backend/internal/auth"
	"workwise_backend/internal/email"
	"workwise_backend/internal/logger"
	"workwise_backend/internal/repositories"
	"workwise_backend/internal/services/dto"
	"workwise_backend/pkg/apperrors"
)

// ResetCodeTTL is how long an issued code stays verifiable.
const ResetCodeTTL = 15 * time.Minute

// forgotPasswordMessage is returned whether or not the email has an
// account, so the endpoint cannot be used to probe registrations.
const forgotPasswordMessage = "If an account with that email exists, a reset code has been sent."

type PasswordResetService interface {
	Forgot(req *dto.ForgotPasswordRequest) *dto.MessageResponse
	Verify(req *dto.VerifyResetCodeRequest) (*dto.VerifyResetCodeResponse, error)
	Reset(req *dto.ResetPasswordRequest) (*dto.ResetPasswordResponse, error)
}

type PasswordResetServiceImpl struct {
	userRepo  repositories.UserRepository
	codeRepo  repositories.ResetCodeRepository
	emailProv email.Provider
}

func NewPasswordResetService(
	userRepo repositories.UserRepository,
	codeRepo repositories.ResetCodeRepository,
	emailProv email.Provider,
) PasswordResetService {
	return &PasswordResetServiceImpl{
		userRepo:  userRepo,
		codeRepo:  codeRepo,
		emailProv: emailProv,
	}
}

// Forgot issues and delivers a reset code when the email has an account.
// It never reports failure to the caller; delivery problems only get
// logged.
func (s *PasswordResetServiceImpl) Forgot(req *dto.ForgotPasswordRequest) *dto.MessageResponse {
	neutral := &dto.MessageResponse{Message: forgotPasswordMessage}

	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if !apperrors.Is(err, repositories.ErrUserNotFound) {
			logger.Error("failed to look up user for password reset", "error", err)
		}
		return neutral
	}

	code, err := generateResetCode()
	if err != nil {
		logger.Error("failed to generate reset code", "error", err)
		return neutral
	}

	if _, err := s.codeRepo.Issue(user.ID, user.Email, code, ResetCodeTTL); err != nil {
		logger.Error("failed to store reset code", "error", err)
		return neutral
	}

	if err := s.emailProv.SendResetCode(user.Email, user.Username, code, ResetCodeTTL); err != nil {
		logger.Error("failed to send reset code email", "error", err, "user_id", user.ID)
	}

	return neutral
}

// Verify checks the code without consuming it, so a client can validate
// before collecting the new password.
func (s *PasswordResetServiceImpl) Verify(req *dto.VerifyResetCodeRequest) (*dto.VerifyResetCodeResponse, error) {
	_, err := s.codeRepo.FindValid(req.Email, req.Code)
	if err != nil {
		if apperrors.Is(err, repositories.ErrResetCodeInvalid) {
			return nil, apperrors.ErrInvalidOrExpired(err)
		}
		return nil, apperrors.StoreError(err)
	}

	return &dto.VerifyResetCodeResponse{
		Valid:   true,
		Message: "Reset code is valid.",
	}, nil
}

// Reset consumes the code and writes the new password in one transaction.
// A code that passed Verify can still fail here if it was used or
// superseded in between.
func (s *PasswordResetServiceImpl) Reset(req *dto.ResetPasswordRequest) (*dto.ResetPasswordResponse, error) {
	if err := auth.ValidatePassword(req.NewPassword); err != nil {
		return nil, apperrors.ErrWeakPassword
	}

	hash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	if err := s.codeRepo.Consume(req.Email, req.Code, hash); err != nil {
		if apperrors.Is(err, repositories.ErrResetCodeInvalid) {
			return nil, apperrors.ErrInvalidOrExpired(err)
		}
		return nil, apperrors.StoreError(err)
	}

	logger.Info("password reset completed", "email", req.Email)

	return &dto.ResetPasswordResponse{
		Success: true,
		Message: "Password has been reset.",
	}, nil
}

// generateResetCode draws a uniform 6-digit code, zero padded, so every
// value from 000000 to 999999 is equally likely.
func generateResetCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
