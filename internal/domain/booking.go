package domain

import (
	"time"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCanceled  BookingStatus = "canceled"
)

// IsValid returns true if the status is one of the known statuses
func (s BookingStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCanceled:
		return true
	default:
		return false
	}
}

// Booking represents a reserved time interval [Start, End)
type Booking struct {
	ID     int64         `json:"id"`
	UserID int64         `json:"userId"`
	Title  string        `json:"title"`
	Notes  *string       `json:"notes,omitempty"`
	Start  time.Time     `json:"start"`
	End    time.Time     `json:"end"`
	Status BookingStatus `json:"status"`

	// ExternalEventRef is the event id in the synced external calendar, nil when not synced
	ExternalEventRef *string `json:"externalEventRef,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// IsActive returns true if the booking still occupies its interval
func (b *Booking) IsActive() bool {
	return b.Status != StatusCanceled
}

// IsSynced returns true if the booking was pushed to the external calendar
func (b *Booking) IsSynced() bool {
	return b.ExternalEventRef != nil && *b.ExternalEventRef != ""
}

// Overlaps returns true if the booking's interval intersects the half-open interval [start, end)
func (b *Booking) Overlaps(start, end time.Time) bool {
	return Overlaps(start, end, b.Start, b.End)
}

// CanTransitionTo returns true if the status change is allowed.
// Setting the current status again is always allowed and changes nothing.
func (b *Booking) CanTransitionTo(next BookingStatus) bool {
	if b.Status == next {
		return true
	}
	switch b.Status {
	case StatusPending:
		return next == StatusConfirmed || next == StatusCanceled
	case StatusConfirmed:
		return next == StatusCanceled
	default:
		return false
	}
}

// Overlaps reports whether half-open intervals [s1, e1) and [s2, e2) intersect.
// Touching intervals (e1 == s2) do not overlap.
func Overlaps(s1, e1, s2, e2 time.Time) bool {
	return s1.Before(e2) && e1.After(s2)
}

// BookingsFilter фильтр для списка всех бронирований (для администратора)
type BookingsFilter struct {
	UserID *int64         // Только бронирования пользователя (опционально)
	Status *BookingStatus // Фильтр по статусу (опционально)
	From   *time.Time     // Бронирования, заканчивающиеся после From (опционально)
	To     *time.Time     // Бронирования, начинающиеся до To (опционально)
}
