package repositories

import (
	"context"

	"gorm.io/gorm"
)

// Repositories объединяет репозитории с общим подключением к хранилищу
type Repositories struct {
	Jobs         JobRepository
	Applications ApplicationRepository

	ping  func(ctx context.Context) error
	close func() error
}

// NewGormRepositories создает репозитории поверх открытого подключения gorm
func NewGormRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Jobs:         NewJobRepository(db),
		Applications: NewApplicationRepository(db),
		ping: func(ctx context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		},
		close: func() error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.Close()
		},
	}
}

// NewMemoryRepositories создает репозитории поверх нового хранилища в памяти
func NewMemoryRepositories() *Repositories {
	store := NewMemoryStore()
	return &Repositories{
		Jobs:         &memoryJobRepository{store: store},
		Applications: &memoryApplicationRepository{store: store},
		ping:         func(ctx context.Context) error { return ctx.Err() },
		close:        func() error { return nil },
	}
}

// Ping проверяет доступность хранилища
func (r *Repositories) Ping(ctx context.Context) error {
	return r.ping(ctx)
}

// Close закрывает подключение к хранилищу
func (r *Repositories) Close() error {
	return r.close()
}
