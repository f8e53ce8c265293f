package services

import (
	"gorm.io/gorm"

	"workwise_backend/internal/config"
	"workwise_backend/internal/email"
	"workwise_backend/internal/repositories"
	"workwise_backend/internal/storage"
)

// ServiceContainer holds every service the handlers depend on.
type ServiceContainer struct {
	AuthService          AuthService
	PasswordResetService PasswordResetService
	ProfileService       ProfileService
	CVService            CVService
	QualificationService QualificationService
	SavedJobService      SavedJobService
	ApplicationService   ApplicationService
	JobService           JobService
	UnionService         UnionService
}

// NewServiceContainer wires repositories, storage and email into the
// service layer.
func NewServiceContainer(db *gorm.DB, store storage.Storage, emailProv email.Provider, cfg *config.Config) *ServiceContainer {
	userRepo := repositories.NewUserRepository(db)
	cvRepo := repositories.NewCVRepository(db)
	qualRepo := repositories.NewQualificationRepository(db)
	savedJobRepo := repositories.NewSavedJobRepository(db)
	appRepo := repositories.NewApplicationRepository(db)
	jobRepo := repositories.NewJobRepository(db)
	unionRepo := repositories.NewUnionRepository(db)
	codeRepo := repositories.NewResetCodeRepository(db)

	return &ServiceContainer{
		AuthService:          NewAuthService(userRepo),
		PasswordResetService: NewPasswordResetService(userRepo, codeRepo, emailProv),
		ProfileService:       NewProfileService(userRepo, savedJobRepo, appRepo, store, cfg),
		CVService:            NewCVService(cvRepo, store, cfg),
		QualificationService: NewQualificationService(qualRepo),
		SavedJobService:      NewSavedJobService(savedJobRepo),
		ApplicationService:   NewApplicationService(appRepo),
		JobService:           NewJobService(jobRepo),
		UnionService:         NewUnionService(unionRepo, userRepo),
	}
}
