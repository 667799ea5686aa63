package repositories

import (
	"context"
	"time"

	"careercode_backend/internal/logger"
	"careercode_backend/internal/models"

	"gorm.io/gorm"
)

type applicationRepository struct {
	db *gorm.DB
}

// NewApplicationRepository создает новый экземпляр ApplicationRepository
func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &applicationRepository{db: db}
}

func (r *applicationRepository) ListByApplicant(ctx context.Context, email string) ([]models.Application, error) {
	return r.find(ctx, "applicant", email)
}

func (r *applicationRepository) ListByJob(ctx context.Context, jobID string) ([]models.Application, error) {
	return r.find(ctx, "job_id", jobID)
}

func (r *applicationRepository) find(ctx context.Context, column, value string) ([]models.Application, error) {
	start := time.Now()
	apps := []models.Application{}
	err := r.db.WithContext(ctx).
		Where(exactCompare(r.db, column, "="), value).
		Order("created_at").
		Find(&apps).Error
	logger.DBLog("find", "applications", time.Since(start), err)
	return apps, err
}

func (r *applicationRepository) CountByJob(ctx context.Context, jobID string) (int64, error) {
	start := time.Now()
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Application{}).
		Where(exactCompare(r.db, "job_id", "="), jobID).
		Count(&count).Error
	logger.DBLog("countDocuments", "applications", time.Since(start), err)
	return count, err
}

func (r *applicationRepository) Create(ctx context.Context, app *models.Application) error {
	start := time.Now()
	err := r.db.WithContext(ctx).Create(app).Error
	logger.DBLog("insertOne", "applications", time.Since(start), err)
	return err
}

func (r *applicationRepository) UpdateStatus(ctx context.Context, id, status string) (int64, int64, error) {
	if !models.IsValidID(id) {
		return 0, 0, ErrInvalidID
	}
	start := time.Now()
	db := r.db.WithContext(ctx)

	var matched int64
	if err := db.Model(&models.Application{}).Where("id = ?", id).Count(&matched).Error; err != nil {
		logger.DBLog("updateOne", "applications", time.Since(start), err)
		return 0, 0, err
	}
	if matched == 0 {
		logger.DBLog("updateOne", "applications", time.Since(start), nil)
		return 0, 0, nil
	}

	result := db.Model(&models.Application{}).
		Where("id = ?", id).
		Where("(status IS NULL OR "+exactCompare(r.db, "status", "<>")+")", status).
		Update("status", status)
	logger.DBLog("updateOne", "applications", time.Since(start), result.Error)
	if result.Error != nil {
		return 0, 0, result.Error
	}
	return matched, result.RowsAffected, nil
}
