package services

import (
	"context"
	"time"

	"careercode_backend/internal/events"
	"careercode_backend/internal/logger"
	"careercode_backend/internal/models"
	"careercode_backend/internal/repositories"
)

type ApplicationService interface {
	// ListForApplicant возвращает отклики кандидата,
	// обогащенные company, title и company_logo вакансии.
	ListForApplicant(ctx context.Context, email string) ([]models.Application, error)
	ListByJob(ctx context.Context, jobID string) ([]models.Application, error)
	CreateApplication(ctx context.Context, app *models.Application) (*models.InsertResult, error)
	UpdateStatus(ctx context.Context, id, status string) (*models.UpdateResult, error)
}

type ApplicationServiceImpl struct {
	applicationRepo repositories.ApplicationRepository
	jobRepo         repositories.JobRepository
	publisher       events.Publisher
	now             func() time.Time
}

func NewApplicationService(
	applicationRepo repositories.ApplicationRepository,
	jobRepo repositories.JobRepository,
	publisher events.Publisher,
) ApplicationService {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	return &ApplicationServiceImpl{
		applicationRepo: applicationRepo,
		jobRepo:         jobRepo,
		publisher:       publisher,
		now:             time.Now,
	}
}

func (s *ApplicationServiceImpl) ListForApplicant(ctx context.Context, email string) ([]models.Application, error) {
	apps, err := s.applicationRepo.ListByApplicant(ctx, email)
	if err != nil {
		return nil, storeError(err)
	}
	if err := EnrichApplicationsWithJobInfo(ctx, s.jobRepo, apps); err != nil {
		return nil, err
	}
	return apps, nil
}

func (s *ApplicationServiceImpl) ListByJob(ctx context.Context, jobID string) ([]models.Application, error) {
	apps, err := s.applicationRepo.ListByJob(ctx, jobID)
	if err != nil {
		return nil, storeError(err)
	}
	return apps, nil
}

func (s *ApplicationServiceImpl) CreateApplication(ctx context.Context, app *models.Application) (*models.InsertResult, error) {
	if err := s.applicationRepo.Create(ctx, app); err != nil {
		return nil, storeError(err)
	}
	logger.CtxInfo(ctx, "application created", "application_id", app.ID)

	event := events.Event{
		Type: events.TypeApplicationCreated,
		ID:   app.ID,
		At:   s.now().UTC(),
	}
	if app.JobID != nil {
		event.JobID = *app.JobID
	}
	if app.Status != nil {
		event.Status = *app.Status
	}
	s.publish(ctx, event)

	return &models.InsertResult{Acknowledged: true, InsertedID: app.ID}, nil
}

func (s *ApplicationServiceImpl) UpdateStatus(ctx context.Context, id, status string) (*models.UpdateResult, error) {
	matched, modified, err := s.applicationRepo.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, storeError(err)
	}

	if matched > 0 {
		s.publish(ctx, events.Event{
			Type:   events.TypeApplicationStatusChanged,
			ID:     id,
			Status: status,
			At:     s.now().UTC(),
		})
	}

	return &models.UpdateResult{
		Acknowledged:  true,
		MatchedCount:  matched,
		ModifiedCount: modified,
	}, nil
}

func (s *ApplicationServiceImpl) publish(ctx context.Context, event events.Event) {
	if err := s.publisher.Publish(ctx, event); err != nil {
		logger.CtxWarn(ctx, "failed to publish event", "type", event.Type, "error", err)
	}
}
