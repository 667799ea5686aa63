package repositories

import (
	"context"
	"maps"
	"sync"
	"time"

	"careercode_backend/internal/models"

	"github.com/google/uuid"
)

// MemoryStore хранит обе коллекции в памяти процесса в порядке вставки.
// Используется драйвером "memory".
type MemoryStore struct {
	mu           sync.RWMutex
	jobs         []models.Job
	applications []models.Application
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

func cloneJob(j models.Job) models.Job {
	j.HREmail = cloneString(j.HREmail)
	j.Company = cloneString(j.Company)
	j.Title = cloneString(j.Title)
	j.CompanyLogo = cloneString(j.CompanyLogo)
	j.Fields = maps.Clone(j.Fields)
	j.ApplicationCount = nil
	return j
}

func cloneApplication(a models.Application) models.Application {
	a.JobID = cloneString(a.JobID)
	a.Applicant = cloneString(a.Applicant)
	a.Status = cloneString(a.Status)
	a.Fields = maps.Clone(a.Fields)
	a.Job = nil
	return a
}

func equals(s *string, v string) bool {
	return s != nil && *s == v
}

type memoryJobRepository struct {
	store *MemoryStore
}

func (r *memoryJobRepository) List(ctx context.Context, filter JobFilter) ([]models.Job, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	jobs := []models.Job{}
	for _, job := range r.store.jobs {
		if filter.EmployerEmail != "" && !equals(job.HREmail, filter.EmployerEmail) {
			continue
		}
		jobs = append(jobs, cloneJob(job))
	}
	return jobs, nil
}

func (r *memoryJobRepository) ListByEmployer(ctx context.Context, email string) ([]models.Job, error) {
	if email == "" {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return []models.Job{}, nil
	}
	return r.List(ctx, JobFilter{EmployerEmail: email})
}

func (r *memoryJobRepository) FindByID(ctx context.Context, id string) (*models.Job, error) {
	if !models.IsValidID(id) {
		return nil, ErrInvalidID
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, job := range r.store.jobs {
		if job.ID == id {
			j := cloneJob(job)
			return &j, nil
		}
	}
	return nil, nil
}

func (r *memoryJobRepository) Create(ctx context.Context, job *models.Job) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	job.ID = uuid.NewString()
	job.CreatedAt = time.Now()
	r.store.jobs = append(r.store.jobs, cloneJob(*job))
	return nil
}

type memoryApplicationRepository struct {
	store *MemoryStore
}

func (r *memoryApplicationRepository) filter(ctx context.Context, match func(models.Application) bool) ([]models.Application, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	apps := []models.Application{}
	for _, app := range r.store.applications {
		if match(app) {
			apps = append(apps, cloneApplication(app))
		}
	}
	return apps, nil
}

func (r *memoryApplicationRepository) ListByApplicant(ctx context.Context, email string) ([]models.Application, error) {
	return r.filter(ctx, func(a models.Application) bool { return equals(a.Applicant, email) })
}

func (r *memoryApplicationRepository) ListByJob(ctx context.Context, jobID string) ([]models.Application, error) {
	return r.filter(ctx, func(a models.Application) bool { return equals(a.JobID, jobID) })
}

func (r *memoryApplicationRepository) CountByJob(ctx context.Context, jobID string) (int64, error) {
	apps, err := r.ListByJob(ctx, jobID)
	if err != nil {
		return 0, err
	}
	return int64(len(apps)), nil
}

func (r *memoryApplicationRepository) Create(ctx context.Context, app *models.Application) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	now := time.Now()
	app.ID = uuid.NewString()
	app.CreatedAt = now
	app.UpdatedAt = now
	r.store.applications = append(r.store.applications, cloneApplication(*app))
	return nil
}

func (r *memoryApplicationRepository) UpdateStatus(ctx context.Context, id, status string) (int64, int64, error) {
	if !models.IsValidID(id) {
		return 0, 0, ErrInvalidID
	}
	if err := ctx.Err(); err != nil {
		return 0, 0, err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i := range r.store.applications {
		app := &r.store.applications[i]
		if app.ID != id {
			continue
		}
		if equals(app.Status, status) {
			return 1, 0, nil
		}
		app.Status = &status
		app.UpdatedAt = time.Now()
		return 1, 1, nil
	}
	return 0, 0, nil
}
