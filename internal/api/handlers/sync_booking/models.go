package sync_booking

import (
	"github.com/m04kA/booking-calendar/internal/service/bookings/models"
	syncBooking "github.com/m04kA/booking-calendar/internal/usecase/sync_booking"
)

// SyncBookingResponse HTTP response model
type SyncBookingResponse struct {
	Booking          *models.BookingResponse `json:"booking"`
	ExternalEventRef string                  `json:"externalEventRef"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *syncBooking.Response) *SyncBookingResponse {
	return &SyncBookingResponse{
		Booking:          models.FromDomainBooking(resp.Booking),
		ExternalEventRef: resp.ExternalEventRef,
	}
}
