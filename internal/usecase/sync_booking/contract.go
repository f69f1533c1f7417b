package sync_booking

import (
	"context"
	"time"

	"github.com/m04kA/booking-calendar/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	SetExternalEventRef(ctx context.Context, id int64, ref string) error
}

// CalendarClient клиент внешнего календаря
type CalendarClient interface {
	SyncBooking(ctx context.Context, booking *domain.Booking) (string, error)
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
