// Package events публикует события жизненного цикла откликов.
// Ошибка публикации логируется и не ломает запрос.
package events

import (
	"context"
	"time"
)

const (
	TypeApplicationCreated       = "application.created"
	TypeApplicationStatusChanged = "application.status_changed"
)

// Event - JSON сообщение, отправляемое в канал
type Event struct {
	Type   string    `json:"type"`
	ID     string    `json:"id"`
	JobID  string    `json:"job_id,omitempty"`
	Status string    `json:"status,omitempty"`
	At     time.Time `json:"at"`
}

// Publisher доставляет события подписчикам
type Publisher interface {
	Publish(ctx context.Context, event Event) error
	Close() error
}

// NopPublisher отбрасывает все события. Используется без брокера.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, Event) error { return nil }
func (NopPublisher) Close() error                         { return nil }
