package conflict

import (
	"context"
	"time"

	"github.com/m04kA/booking-calendar/internal/domain"
)

// BookingRepository источник активных бронирований
type BookingRepository interface {
	// ActiveInRange возвращает неотмененные бронирования, пересекающиеся с [start, end),
	// исключая excludeID (если задан)
	ActiveInRange(ctx context.Context, start, end time.Time, excludeID *int64) ([]*domain.Booking, error)
}

// WindowRepository источник окон доступности
type WindowRepository interface {
	// ListCoverageCandidates возвращает все окна, которые могут покрыть [start, end):
	// все повторяющиеся и разовые, содержащие интервал
	ListCoverageCandidates(ctx context.Context, start, end time.Time) ([]*domain.AvailabilityWindow, error)
}

// CoverageIndex проверка покрытия интервала окнами доступности
type CoverageIndex interface {
	IsCovered(s, e time.Time, windows []*domain.AvailabilityWindow) bool
}
