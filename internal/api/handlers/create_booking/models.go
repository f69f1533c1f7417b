package create_booking

import (
	"github.com/m04kA/booking-calendar/internal/api/handlers"
	"github.com/m04kA/booking-calendar/internal/domain"
	"github.com/m04kA/booking-calendar/internal/service/bookings/models"
	createBooking "github.com/m04kA/booking-calendar/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	Title string  `json:"title"`
	Notes *string `json:"notes,omitempty"`
	Start string  `json:"start"` // RFC 3339, "2025-03-10T10:00:00+03:00"
	End   string  `json:"end"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(actor domain.Actor) (*createBooking.Request, error) {
	start, err := handlers.ParseTime(r.Start)
	if err != nil {
		return nil, err
	}

	end, err := handlers.ParseTime(r.End)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		Actor: actor,
		Title: r.Title,
		Notes: r.Notes,
		Start: start,
		End:   end,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *models.BookingResponse {
	return models.FromDomainBooking(resp.Booking)
}
