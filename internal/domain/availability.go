package domain

import "time"

// AvailabilityWindow is an administrator-defined interval during which bookings may be placed.
//
// A one-time window is the absolute interval [Start, End].
// A recurring window repeats weekly on DaysOfWeek (0=Sunday..6=Saturday) and only the
// time-of-day of Start and End matters.
type AvailabilityWindow struct {
	ID         int64     `json:"id"`
	Start      time.Time `json:"start"`
	End        time.Time `json:"end"`
	Recurring  bool      `json:"recurring"`
	DaysOfWeek []int     `json:"daysOfWeek"`
	OwnerID    int64     `json:"ownerId"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// HasDay returns true if the recurring window repeats on the given weekday
func (w *AvailabilityWindow) HasDay(day time.Weekday) bool {
	for _, d := range w.DaysOfWeek {
		if d == int(day) {
			return true
		}
	}
	return false
}

// TimeOfDay returns the offset since midnight of t in loc
func TimeOfDay(t time.Time, loc *time.Location) time.Duration {
	t = t.In(loc)
	h, m, s := t.Clock()
	return time.Duration(h)*time.Hour +
		time.Duration(m)*time.Minute +
		time.Duration(s)*time.Second +
		time.Duration(t.Nanosecond())
}

// ValidWeekday returns true if d is in 0..6
func ValidWeekday(d int) bool {
	return d >= int(time.Sunday) && d <= int(time.Saturday)
}
