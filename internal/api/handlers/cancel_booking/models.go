package cancel_booking

import (
	"github.com/m04kA/booking-calendar/internal/domain"
	"github.com/m04kA/booking-calendar/internal/service/bookings/models"
	updateBooking "github.com/m04kA/booking-calendar/internal/usecase/update_booking"
	"github.com/m04kA/booking-calendar/pkg/ptr"
)

// toUseCaseRequest запрос на перевод бронирования в статус canceled
func toUseCaseRequest(actor domain.Actor, bookingID int64) *updateBooking.Request {
	return &updateBooking.Request{
		Actor:     actor,
		BookingID: bookingID,
		Status:    ptr.Ptr(domain.StatusCanceled),
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *updateBooking.Response) *models.BookingResponse {
	return models.FromDomainBooking(resp.Booking)
}
