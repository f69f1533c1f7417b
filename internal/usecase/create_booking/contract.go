package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/booking-calendar/internal/conflict"
	"github.com/m04kA/booking-calendar/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// ConflictChecker проверка интервала перед записью
type ConflictChecker interface {
	CanBook(ctx context.Context, start, end time.Time, excludeID *int64) (conflict.Decision, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// EventPublisher получатель событий об изменениях
type EventPublisher interface {
	Publish(ctx context.Context, event domain.ChangeEvent) error
}

// Metrics бизнес-метрики бронирований
type Metrics interface {
	IncBookingConflict(reason string)
	IncBookingCreated(status string)
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
