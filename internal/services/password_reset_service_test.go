package services_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"workwise_backend/internal/auth"
	"workwise_backend/internal/database"
	"workwise_backend/internal/models"
	"workwise_backend/internal/repositories"
	"workwise_backend/internal/services"
	"workwise_backend/internal/services/dto"
	"workwise_backend/pkg/apperrors"
)

// capturingProvider records outgoing reset codes instead of sending them.
type capturingProvider struct {
	to   string
	code string
	ttl  time.Duration
	sent int
}

func (p *capturingProvider) SendResetCode(to, username, code string, ttl time.Duration) error {
	p.to = to
	p.code = code
	p.ttl = ttl
	p.sent++
	return nil
}

func newServiceTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, email, password string) *models.User {
	t.Helper()

	hash, err := auth.HashPassword(password)
	require.NoError(t, err)

	user := &models.User{
		Username:     "tester",
		Email:        email,
		PasswordHash: hash,
		Role:         models.RoleUser,
		IsActive:     true,
		CreatedAt:    "2026-01-01T00:00:00Z",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func newResetService(db *gorm.DB, provider *capturingProvider) services.PasswordResetService {
	return services.NewPasswordResetService(
		repositories.NewUserRepository(db),
		repositories.NewResetCodeRepository(db),
		provider,
	)
}

func TestPasswordReset_FullFlow(t *testing.T) {
	t.Parallel()
	db := newServiceTestDB(t)
	provider := &capturingProvider{}
	svc := newResetService(db, provider)
	user := seedUser(t, db, "alice@example.com", "old-password")

	resp := svc.Forgot(&dto.ForgotPasswordRequest{Email: user.Email})
	assert.Contains(t, resp.Message, "If an account")
	require.Equal(t, 1, provider.sent)
	assert.Equal(t, user.Email, provider.to)
	require.Len(t, provider.code, 6)
	// The announced validity must be the enforced one.
	assert.Equal(t, services.ResetCodeTTL, provider.ttl)

	verify, err := svc.Verify(&dto.VerifyResetCodeRequest{Email: user.Email, Code: provider.code})
	require.NoError(t, err)
	assert.True(t, verify.Valid)

	reset, err := svc.Reset(&dto.ResetPasswordRequest{
		Email:       user.Email,
		Code:        provider.code,
		NewPassword: "brand-new-password",
	})
	require.NoError(t, err)
	assert.True(t, reset.Success)

	var updated models.User
	require.NoError(t, db.First(&updated, "user_id = ?", user.ID).Error)
	assert.True(t, auth.CheckPasswordHash("brand-new-password", updated.PasswordHash))
	assert.False(t, auth.CheckPasswordHash("old-password", updated.PasswordHash))

	// The code is spent; a replay must fail.
	_, err = svc.Reset(&dto.ResetPasswordRequest{
		Email:       user.Email,
		Code:        provider.code,
		NewPassword: "another-password",
	})
	requireAppErrorCode(t, err, apperrors.CodeInvalidOrExpired)
}

func TestPasswordReset_Forgot_UnknownEmailIsNeutral(t *testing.T) {
	t.Parallel()
	db := newServiceTestDB(t)
	provider := &capturingProvider{}
	svc := newResetService(db, provider)

	resp := svc.Forgot(&dto.ForgotPasswordRequest{Email: "nobody@example.com"})
	assert.Contains(t, resp.Message, "If an account")
	assert.Zero(t, provider.sent, "no account, no email")
}

func TestPasswordReset_Verify_WrongCode(t *testing.T) {
	t.Parallel()
	db := newServiceTestDB(t)
	provider := &capturingProvider{}
	svc := newResetService(db, provider)
	user := seedUser(t, db, "bob@example.com", "password123")

	svc.Forgot(&dto.ForgotPasswordRequest{Email: user.Email})

	wrong := "000000"
	if provider.code == wrong {
		wrong = "000001"
	}
	_, err := svc.Verify(&dto.VerifyResetCodeRequest{Email: user.Email, Code: wrong})
	requireAppErrorCode(t, err, apperrors.CodeInvalidOrExpired)
}

func TestPasswordReset_NewRequestSupersedes(t *testing.T) {
	t.Parallel()
	db := newServiceTestDB(t)
	provider := &capturingProvider{}
	svc := newResetService(db, provider)
	user := seedUser(t, db, "carol@example.com", "password123")

	svc.Forgot(&dto.ForgotPasswordRequest{Email: user.Email})
	firstCode := provider.code
	svc.Forgot(&dto.ForgotPasswordRequest{Email: user.Email})
	secondCode := provider.code

	if firstCode != secondCode {
		_, err := svc.Verify(&dto.VerifyResetCodeRequest{Email: user.Email, Code: firstCode})
		requireAppErrorCode(t, err, apperrors.CodeInvalidOrExpired)
	}

	_, err := svc.Verify(&dto.VerifyResetCodeRequest{Email: user.Email, Code: secondCode})
	assert.NoError(t, err)
}

func TestPasswordReset_WeakNewPassword(t *testing.T) {
	t.Parallel()
	db := newServiceTestDB(t)
	provider := &capturingProvider{}
	svc := newResetService(db, provider)
	user := seedUser(t, db, "dave@example.com", "password123")

	svc.Forgot(&dto.ForgotPasswordRequest{Email: user.Email})

	_, err := svc.Reset(&dto.ResetPasswordRequest{
		Email:       user.Email,
		Code:        provider.code,
		NewPassword: "short",
	})
	require.Error(t, err)

	// Rejected before the code was consumed, so it still verifies.
	_, err = svc.Verify(&dto.VerifyResetCodeRequest{Email: user.Email, Code: provider.code})
	assert.NoError(t, err)
}

func requireAppErrorCode(t *testing.T, err error, code apperrors.ErrorCode) {
	t.Helper()

	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok, "expected an AppError, got %v", err)
	assert.Equal(t, code, appErr.Code)
}
