package services

import (
	"context"
	"errors"

	"careercode_backend/internal/logger"
	"careercode_backend/internal/models"
	"careercode_backend/internal/repositories"
	"careercode_backend/pkg/apperrors"
)

// EnrichApplicationsWithJobInfo копирует company, title и company_logo
// вакансии в каждый отклик. Запросы идут последовательно, по одному на
// отклик. Отклик без существующей вакансии или с некорректным jobId
// остается без данных вакансии. Любая другая ошибка хранилища прерывает
// всю пачку.
func EnrichApplicationsWithJobInfo(ctx context.Context, jobs repositories.JobRepository, apps []models.Application) error {
	for i := range apps {
		app := &apps[i]
		if app.JobID == nil {
			logger.CtxWarn(ctx, "application has no jobId, skipping enrichment", "application_id", app.ID)
			continue
		}

		job, err := jobs.FindByID(ctx, *app.JobID)
		if errors.Is(err, repositories.ErrInvalidID) {
			logger.CtxWarn(ctx, "application references a malformed jobId, skipping enrichment",
				"application_id", app.ID, "job_id", *app.JobID)
			continue
		}
		if err != nil {
			return apperrors.ErrEnrichmentFailed.WithError(err)
		}
		if job == nil {
			logger.CtxWarn(ctx, "application references a missing job, skipping enrichment",
				"application_id", app.ID, "job_id", *app.JobID)
			continue
		}

		app.Job = job.Summary()
	}
	return nil
}

// EnrichJobsWithApplicationCounts добавляет application_count к каждой
// вакансии, по одному подсчету на вакансию. Ноль - валидное значение.
func EnrichJobsWithApplicationCounts(ctx context.Context, apps repositories.ApplicationRepository, jobs []models.Job) error {
	for i := range jobs {
		count, err := apps.CountByJob(ctx, jobs[i].ID)
		if err != nil {
			return storeError(err)
		}
		jobs[i].ApplicationCount = &count
	}
	return nil
}
