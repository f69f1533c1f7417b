package update_booking

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/booking-calendar/internal/domain"
)

// validateRequest проверяет запрос без обращения к хранилищу
func validateRequest(req *Request) error {
	if req.Actor.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.BookingID <= 0 {
		return fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}

	if req.Title == nil && req.Notes == nil && req.Start == nil && req.End == nil && req.Status == nil {
		return fmt.Errorf("%w: nothing to update", ErrInvalidInput)
	}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return fmt.Errorf("%w: title must not be empty", ErrInvalidInput)
		}
		if utf8.RuneCountInString(title) > domain.MaxTitleLength {
			return fmt.Errorf("%w: title is longer than %d characters", ErrInvalidInput, domain.MaxTitleLength)
		}
	}

	if req.Notes != nil && utf8.RuneCountInString(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes are longer than %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	if req.Status != nil && !req.Status.IsValid() {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidInput, *req.Status)
	}

	return nil
}

// applyChanges возвращает копию current с примененными изменениями
// и признак того, что интервал изменился
func applyChanges(current *domain.Booking, req *Request) (*domain.Booking, bool, error) {
	next := *current

	if req.Title != nil {
		next.Title = strings.TrimSpace(*req.Title)
	}

	if req.Notes != nil {
		if strings.TrimSpace(*req.Notes) == "" {
			next.Notes = nil
		} else {
			notes := *req.Notes
			next.Notes = &notes
		}
	}

	if req.Status != nil {
		if !current.CanTransitionTo(*req.Status) {
			return nil, false, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current.Status, *req.Status)
		}
		next.Status = *req.Status
	}

	if req.Start != nil {
		next.Start = req.Start.UTC()
	}
	if req.End != nil {
		next.End = req.End.UTC()
	}

	intervalChanged := !next.Start.Equal(current.Start) || !next.End.Equal(current.End)
	if !intervalChanged {
		return &next, false, nil
	}

	if current.Status == domain.StatusCanceled {
		return nil, false, ErrBookingCanceled
	}

	if !next.Start.Before(next.End) {
		return nil, false, fmt.Errorf("%w: start must be before end", ErrInvalidInput)
	}

	return &next, true, nil
}
