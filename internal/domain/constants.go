package domain

// Business validation constants
const (
	MaxTitleLength = 200
	MaxNotesLength = 2000
)

// ConflictReason why an interval cannot be booked
type ConflictReason string

const (
	ReasonOverlapsBooking     ConflictReason = "OVERLAPS_BOOKING"
	ReasonOutsideAvailability ConflictReason = "OUTSIDE_AVAILABILITY"
)

// ActiveStatuses список статусов, занимающих интервал
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
}
