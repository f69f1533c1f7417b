package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/booking-calendar/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// ActiveInRange получает неотмененные бронирования, пересекающиеся с [start, end)
	ActiveInRange(ctx context.Context, start, end time.Time, excludeID *int64) ([]*domain.Booking, error)
}

// WindowRepository интерфейс репозитория окон доступности
type WindowRepository interface {
	List(ctx context.Context) ([]*domain.AvailabilityWindow, error)
}

// CoverageIndex индекс покрытия интервалов окнами доступности
type CoverageIndex interface {
	Location() *time.Location
	SpanOn(w *domain.AvailabilityWindow, dayStart time.Time) (time.Time, time.Time, bool)
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
