package availability

import (
	"fmt"
	"sort"

	"github.com/m04kA/booking-calendar/internal/domain"
)

// validateWindow проверяет окно перед записью и нормализует дни недели
func (s *Service) validateWindow(w *domain.AvailabilityWindow) error {
	if w.Start.IsZero() || w.End.IsZero() {
		return fmt.Errorf("%w: start and end are required", ErrInvalidInput)
	}

	if !w.Start.Before(w.End) {
		return fmt.Errorf("%w: start must be before end", ErrInvalidInput)
	}

	if !w.Recurring {
		w.DaysOfWeek = nil
		return nil
	}

	days, err := normalizeDays(w.DaysOfWeek)
	if err != nil {
		return err
	}
	w.DaysOfWeek = days

	if !s.ranges.ValidRecurringRange(w) {
		return fmt.Errorf("%w: recurring window must start and end on the same day", ErrInvalidInput)
	}

	return nil
}

// normalizeDays проверяет диапазон 0..6, убирает повторы и сортирует
func normalizeDays(days []int) ([]int, error) {
	seen := make(map[int]struct{}, len(days))
	out := make([]int, 0, len(days))
	for _, d := range days {
		if !domain.ValidWeekday(d) {
			return nil, fmt.Errorf("%w: day of week %d is out of range 0..6", ErrInvalidInput, d)
		}
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		out = append(out, d)
	}
	sort.Ints(out)
	return out, nil
}
