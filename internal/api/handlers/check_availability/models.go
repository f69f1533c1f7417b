package check_availability

import (
	"github.com/m04kA/booking-calendar/internal/api/handlers"
	"github.com/m04kA/booking-calendar/internal/domain"
	checkAvailability "github.com/m04kA/booking-calendar/internal/usecase/check_availability"
)

// CheckAvailabilityRequest HTTP request model
type CheckAvailabilityRequest struct {
	Start            string `json:"start"`
	End              string `json:"end"`
	ExcludeBookingID *int64 `json:"excludeBookingId,omitempty"` // при переносе своего бронирования
}

// CheckAvailabilityResponse HTTP response model
type CheckAvailabilityResponse struct {
	Available          bool                         `json:"available"`
	Reason             string                       `json:"reason,omitempty"`
	ConflictingBooking *handlers.ConflictingBooking `json:"conflictingBooking,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CheckAvailabilityRequest) ToUseCaseRequest(actor domain.Actor) (*checkAvailability.Request, error) {
	start, err := handlers.ParseTime(r.Start)
	if err != nil {
		return nil, err
	}

	end, err := handlers.ParseTime(r.End)
	if err != nil {
		return nil, err
	}

	return &checkAvailability.Request{
		Actor:            actor,
		Start:            start,
		End:              end,
		ExcludeBookingID: r.ExcludeBookingID,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkAvailability.Response) *CheckAvailabilityResponse {
	out := &CheckAvailabilityResponse{
		Available: resp.Available,
		Reason:    string(resp.Reason),
	}
	if b := resp.Conflicting; b != nil {
		out.ConflictingBooking = &handlers.ConflictingBooking{
			ID:    b.ID,
			Title: b.Title,
			Start: b.Start.UTC(),
			End:   b.End.UTC(),
		}
	}
	return out
}
