package handlers

import (
	"workwise_backend/internal/services"
	"workwise_backend/internal/validator"
)

// AppHandlers holds every handler the router mounts.
type AppHandlers struct {
	AuthHandler          *AuthHandler
	ProfileHandler       *ProfileHandler
	CVHandler            *CVHandler
	QualificationHandler *QualificationHandler
	SavedJobHandler      *SavedJobHandler
	JobHandler           *JobHandler
	UnionHandler         *UnionHandler
}

// NewAppHandlers builds the handler set on top of the service container.
func NewAppHandlers(svc *services.ServiceContainer) *AppHandlers {
	base := NewBaseHandler(validator.New())

	return &AppHandlers{
		AuthHandler:          NewAuthHandler(base, svc.AuthService, svc.PasswordResetService),
		ProfileHandler:       NewProfileHandler(base, svc.ProfileService),
		CVHandler:            NewCVHandler(base, svc.CVService),
		QualificationHandler: NewQualificationHandler(base, svc.QualificationService),
		SavedJobHandler:      NewSavedJobHandler(base, svc.SavedJobService, svc.ApplicationService),
		JobHandler:           NewJobHandler(base, svc.JobService),
		UnionHandler:         NewUnionHandler(base, svc.UnionService),
	}
}
