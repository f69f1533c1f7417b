package sync_booking

import "github.com/m04kA/booking-calendar/internal/domain"

// Request модель запроса на синхронизацию бронирования
type Request struct {
	Actor     domain.Actor
	BookingID int64
}

// Response модель ответа
type Response struct {
	Booking          *domain.Booking
	ExternalEventRef string
}
