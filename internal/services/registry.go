package services

import (
	"careercode_backend/internal/auth"
	"careercode_backend/internal/events"
	"careercode_backend/internal/repositories"
)

// ServiceContainer содержит все сервисы приложения.
type ServiceContainer struct {
	JobService         JobService
	ApplicationService ApplicationService
	TokenService       *auth.TokenService
	IdentityVerifier   auth.IdentityVerifier
}

func NewServiceContainer(
	repos *repositories.Repositories,
	tokens *auth.TokenService,
	verifier auth.IdentityVerifier,
	publisher events.Publisher,
) *ServiceContainer {
	return &ServiceContainer{
		JobService:         NewJobService(repos.Jobs, repos.Applications),
		ApplicationService: NewApplicationService(repos.Applications, repos.Jobs, publisher),
		TokenService:       tokens,
		IdentityVerifier:   verifier,
	}
}
