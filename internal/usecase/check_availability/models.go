package check_availability

import (
	"time"

	"github.com/m04kA/booking-calendar/internal/domain"
)

// Request модель запроса на пробную проверку интервала
type Request struct {
	Actor            domain.Actor
	Start            time.Time
	End              time.Time
	ExcludeBookingID *int64 // переносимое бронирование (опционально)
}

// Response результат проверки
type Response struct {
	Available   bool
	Reason      domain.ConflictReason
	Conflicting *domain.Booking
}
