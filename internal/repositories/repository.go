package repositories

import (
	"context"
	"errors"

	"careercode_backend/internal/models"
)

var (
	// ErrInvalidID - идентификатор не может адресовать ни один документ
	ErrInvalidID = errors.New("invalid identifier")
)

// JobFilter сужает выборку JobRepository.List. Нулевое значение - все вакансии.
type JobFilter struct {
	EmployerEmail string
}

// JobRepository определяет операции с коллекцией вакансий
type JobRepository interface {
	// List возвращает вакансии по фильтру в порядке вставки
	List(ctx context.Context, filter JobFilter) ([]models.Job, error)

	// ListByEmployer возвращает только вакансии с hr_email == email.
	// Пустой email не совпадает ни с одной вакансией.
	ListByEmployer(ctx context.Context, email string) ([]models.Job, error)

	// FindByID возвращает (nil, nil), если вакансии с таким id нет
	FindByID(ctx context.Context, id string) (*models.Job, error)

	// Create сохраняет вакансию как есть и заполняет ее ID
	Create(ctx context.Context, job *models.Job) error
}

// ApplicationRepository определяет операции с коллекцией откликов.
// Все сравнения строк побайтовые, с учетом регистра.
type ApplicationRepository interface {
	ListByApplicant(ctx context.Context, email string) ([]models.Application, error)

	// ListByJob сравнивает jobId как строку
	ListByJob(ctx context.Context, jobID string) ([]models.Application, error)

	CountByJob(ctx context.Context, jobID string) (int64, error)

	Create(ctx context.Context, app *models.Application) error

	// UpdateStatus меняет только поле status. matched = 0, если отклика
	// с таким id нет; modified = 0, если статус уже был таким.
	UpdateStatus(ctx context.Context, id, status string) (matched, modified int64, err error)
}
