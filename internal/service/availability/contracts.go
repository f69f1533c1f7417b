package availability

import (
	"context"
	"time"

	"github.com/m04kA/booking-calendar/internal/domain"
)

// WindowRepository интерфейс репозитория окон доступности
type WindowRepository interface {
	Create(ctx context.Context, window *domain.AvailabilityWindow) (*domain.AvailabilityWindow, error)
	GetByID(ctx context.Context, id int64) (*domain.AvailabilityWindow, error)
	List(ctx context.Context) ([]*domain.AvailabilityWindow, error)
	Update(ctx context.Context, window *domain.AvailabilityWindow) (*domain.AvailabilityWindow, error)
	Delete(ctx context.Context, id int64) error
}

// RangeValidator проверяет, что повторяющееся окно не переходит через полночь
type RangeValidator interface {
	ValidRecurringRange(w *domain.AvailabilityWindow) bool
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// EventPublisher получатель событий об изменениях
type EventPublisher interface {
	Publish(ctx context.Context, event domain.ChangeEvent) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
