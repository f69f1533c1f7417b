package events

import "github.com/m04kA/booking-calendar/internal/domain"

// Имена SSE событий
const (
	EventBookingUpdated      = "bookingUpdated"
	EventAvailabilityUpdated = "availabilityUpdated"
)

// eventName имя SSE события по типу сущности
func eventName(e domain.ChangeEvent) string {
	if e.EntityType == domain.EntityAvailability {
		return EventAvailabilityUpdated
	}
	return EventBookingUpdated
}
