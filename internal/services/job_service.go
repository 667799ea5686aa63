package services

import (
	"context"

	"careercode_backend/internal/logger"
	"careercode_backend/internal/models"
	"careercode_backend/internal/repositories"
)

type JobService interface {
	// ListJobs возвращает все вакансии или только вакансии employerEmail, если он задан
	ListJobs(ctx context.Context, employerEmail string) ([]models.Job, error)
	// ListJobsWithApplicationCounts возвращает только вакансии работодателя
	// с application_count. Пустой employerEmail дает пустой список.
	ListJobsWithApplicationCounts(ctx context.Context, employerEmail string) ([]models.Job, error)
	// GetJob возвращает (nil, nil), если вакансии нет
	GetJob(ctx context.Context, id string) (*models.Job, error)
	CreateJob(ctx context.Context, job *models.Job) (*models.InsertResult, error)
}

type JobServiceImpl struct {
	jobRepo         repositories.JobRepository
	applicationRepo repositories.ApplicationRepository
}

func NewJobService(jobRepo repositories.JobRepository, applicationRepo repositories.ApplicationRepository) JobService {
	return &JobServiceImpl{
		jobRepo:         jobRepo,
		applicationRepo: applicationRepo,
	}
}

func (s *JobServiceImpl) ListJobs(ctx context.Context, employerEmail string) ([]models.Job, error) {
	jobs, err := s.jobRepo.List(ctx, repositories.JobFilter{EmployerEmail: employerEmail})
	if err != nil {
		return nil, storeError(err)
	}
	return jobs, nil
}

func (s *JobServiceImpl) ListJobsWithApplicationCounts(ctx context.Context, employerEmail string) ([]models.Job, error) {
	jobs, err := s.jobRepo.ListByEmployer(ctx, employerEmail)
	if err != nil {
		return nil, storeError(err)
	}
	if err := EnrichJobsWithApplicationCounts(ctx, s.applicationRepo, jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

func (s *JobServiceImpl) GetJob(ctx context.Context, id string) (*models.Job, error) {
	job, err := s.jobRepo.FindByID(ctx, id)
	if err != nil {
		return nil, storeError(err)
	}
	return job, nil
}

func (s *JobServiceImpl) CreateJob(ctx context.Context, job *models.Job) (*models.InsertResult, error) {
	if err := s.jobRepo.Create(ctx, job); err != nil {
		return nil, storeError(err)
	}
	logger.CtxInfo(ctx, "job created", "job_id", job.ID)
	return &models.InsertResult{Acknowledged: true, InsertedID: job.ID}, nil
}
