package update_booking

import (
	"github.com/m04kA/booking-calendar/internal/api/handlers"
	"github.com/m04kA/booking-calendar/internal/domain"
	"github.com/m04kA/booking-calendar/internal/service/bookings/models"
	updateBooking "github.com/m04kA/booking-calendar/internal/usecase/update_booking"
)

// UpdateBookingRequest HTTP request model. Отсутствующие поля не меняются.
type UpdateBookingRequest struct {
	Title  *string `json:"title,omitempty"`
	Notes  *string `json:"notes,omitempty"` // "" очищает заметки
	Start  *string `json:"start,omitempty"`
	End    *string `json:"end,omitempty"`
	Status *string `json:"status,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UpdateBookingRequest) ToUseCaseRequest(actor domain.Actor, bookingID int64) (*updateBooking.Request, error) {
	start, err := handlers.ParseOptionalTime(r.Start)
	if err != nil {
		return nil, err
	}

	end, err := handlers.ParseOptionalTime(r.End)
	if err != nil {
		return nil, err
	}

	req := &updateBooking.Request{
		Actor:     actor,
		BookingID: bookingID,
		Title:     r.Title,
		Notes:     r.Notes,
		Start:     start,
		End:       end,
	}

	if r.Status != nil {
		status, err := models.ToDomainBookingStatus(*r.Status)
		if err != nil {
			return nil, err
		}
		req.Status = &status
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *updateBooking.Response) *models.BookingResponse {
	return models.FromDomainBooking(resp.Booking)
}
