package repositories

import (
	"context"
	"errors"
	"time"

	"careercode_backend/internal/logger"
	"careercode_backend/internal/models"

	"gorm.io/gorm"
)

type jobRepository struct {
	db *gorm.DB
}

// NewJobRepository создает новый экземпляр JobRepository
func NewJobRepository(db *gorm.DB) JobRepository {
	return &jobRepository{db: db}
}

func (r *jobRepository) List(ctx context.Context, filter JobFilter) ([]models.Job, error) {
	if filter.EmployerEmail == "" {
		return r.find(ctx, r.db.WithContext(ctx))
	}
	return r.ListByEmployer(ctx, filter.EmployerEmail)
}

func (r *jobRepository) ListByEmployer(ctx context.Context, email string) ([]models.Job, error) {
	if email == "" {
		return []models.Job{}, nil
	}
	query := r.db.WithContext(ctx).Where(exactCompare(r.db, "hr_email", "="), email)
	return r.find(ctx, query)
}

func (r *jobRepository) find(ctx context.Context, query *gorm.DB) ([]models.Job, error) {
	start := time.Now()
	jobs := []models.Job{}
	err := query.Order("created_at").Find(&jobs).Error
	logger.DBLog("find", "jobs", time.Since(start), err)
	return jobs, err
}

func (r *jobRepository) FindByID(ctx context.Context, id string) (*models.Job, error) {
	if !models.IsValidID(id) {
		return nil, ErrInvalidID
	}
	start := time.Now()

	var job models.Job
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&job).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		logger.DBLog("findOne", "jobs", time.Since(start), nil)
		return nil, nil
	}
	logger.DBLog("findOne", "jobs", time.Since(start), err)
	if err != nil {
		return nil, err
	}
	return &job, nil
}

func (r *jobRepository) Create(ctx context.Context, job *models.Job) error {
	start := time.Now()
	err := r.db.WithContext(ctx).Create(job).Error
	logger.DBLog("insertOne", "jobs", time.Since(start), err)
	return err
}
