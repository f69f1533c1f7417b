package get_available_slots

import (
	"fmt"
	"time"

	"github.com/m04kA/booking-calendar/internal/domain"
)

// validateRequest проверяет длительность и разбирает дату в зоне loc
func validateRequest(req *Request, loc *time.Location) (time.Time, int, error) {
	duration := req.DurationMinutes
	if duration == 0 {
		duration = domain.DefaultSlotDurationMinutes
	}
	if duration < 0 || duration > domain.MaxSlotDurationMinutes {
		return time.Time{}, 0, fmt.Errorf("%w: duration must be in 1..%d minutes", ErrInvalidInput, domain.MaxSlotDurationMinutes)
	}

	if req.Date == "" {
		return time.Time{}, 0, fmt.Errorf("%w: date is required", ErrInvalidDate)
	}
	day, err := time.ParseInLocation(DateFormat, req.Date, loc)
	if err != nil {
		return time.Time{}, 0, fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}

	return day, duration, nil
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(day, now time.Time) bool {
	now = now.In(day.Location())
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, day.Location())
	return day.Before(today)
}
