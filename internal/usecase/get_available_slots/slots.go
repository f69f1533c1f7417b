package get_available_slots

import (
	"sort"
	"time"

	"github.com/m04kA/booking-calendar/internal/domain"
)

// generateSlots нарезает каждое окно на указанную дату слотами фиксированной длины.
// Слоты строятся от начала окна, хвост короче slotDuration отбрасывается.
// Одинаковые слоты из пересекающихся окон объединяются.
func generateSlots(index CoverageIndex, windows []*domain.AvailabilityWindow, day time.Time, slotDuration time.Duration) []domain.FreeSlot {
	seen := make(map[int64]struct{})
	result := make([]domain.FreeSlot, 0)

	for _, w := range windows {
		if w == nil {
			continue
		}
		start, end, ok := index.SpanOn(w, day)
		if !ok {
			continue
		}

		for cur := start; !cur.Add(slotDuration).After(end); cur = cur.Add(slotDuration) {
			key := cur.UnixNano()
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			result = append(result, domain.FreeSlot{Start: cur, End: cur.Add(slotDuration)})
		}
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Start.Before(result[j].Start)
	})
	return result
}

// filterFree оставляет слоты, которые начинаются не раньше now и не пересекаются с активными бронированиями.
// Граничащие интервалы пересечением не считаются.
func filterFree(slots []domain.FreeSlot, bookings []*domain.Booking, now time.Time) []domain.FreeSlot {
	result := make([]domain.FreeSlot, 0, len(slots))

	for _, slot := range slots {
		if slot.Start.Before(now) {
			continue
		}
		if overlapsAny(slot, bookings) {
			continue
		}
		result = append(result, slot)
	}

	return result
}

func overlapsAny(slot domain.FreeSlot, bookings []*domain.Booking) bool {
	for _, b := range bookings {
		if b.IsActive() && b.Overlaps(slot.Start, slot.End) {
			return true
		}
	}
	return false
}
