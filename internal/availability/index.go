// Package availability answers whether a time interval is fully covered by a configured availability window.
package availability

import (
	"time"

	"github.com/m04kA/booking-calendar/internal/domain"
)

// Index evaluates coverage of intervals by availability windows.
// Recurring windows are interpreted in the reference location loc.
type Index struct {
	loc *time.Location
}

// NewIndex creates an index for the given reference location (UTC when nil)
func NewIndex(loc *time.Location) *Index {
	if loc == nil {
		loc = time.UTC
	}
	return &Index{loc: loc}
}

// Location returns the reference location
func (i *Index) Location() *time.Location {
	return i.loc
}

// IsCovered reports whether a single window fully contains [s, e).
// A union of several windows does not count as coverage.
func (i *Index) IsCovered(s, e time.Time, windows []*domain.AvailabilityWindow) bool {
	return i.Covering(s, e, windows) != nil
}

// Covering returns the first window that fully contains [s, e), or nil
func (i *Index) Covering(s, e time.Time, windows []*domain.AvailabilityWindow) *domain.AvailabilityWindow {
	if !s.Before(e) {
		return nil
	}
	for _, w := range windows {
		if w == nil {
			continue
		}
		if i.covers(w, s, e) {
			return w
		}
	}
	return nil
}

func (i *Index) covers(w *domain.AvailabilityWindow, s, e time.Time) bool {
	if !w.Recurring {
		return !w.Start.After(s) && !w.End.Before(e)
	}
	return i.coversRecurring(w, s, e)
}

// coversRecurring compares only the weekday of s and the time-of-day of s and e in loc.
// The calendar dates of s and e are not compared with each other or with the window's
// stored instants, so e may fall on a later day as long as its time-of-day is within the window.
func (i *Index) coversRecurring(w *domain.AvailabilityWindow, s, e time.Time) bool {
	if !i.ValidRecurringRange(w) {
		return false
	}

	if !w.HasDay(s.In(i.loc).Weekday()) {
		return false
	}

	return domain.TimeOfDay(s, i.loc) >= domain.TimeOfDay(w.Start, i.loc) &&
		domain.TimeOfDay(e, i.loc) <= domain.TimeOfDay(w.End, i.loc)
}

// ValidRecurringRange reports whether the window's time-of-day start is strictly before its end.
// Ranges crossing midnight are not supported.
func (i *Index) ValidRecurringRange(w *domain.AvailabilityWindow) bool {
	return domain.TimeOfDay(w.Start, i.loc) < domain.TimeOfDay(w.End, i.loc)
}

// onDate places the wall-clock time of clock (in loc) on the calendar date of day
func (i *Index) onDate(day, clock time.Time) time.Time {
	c := clock.In(i.loc)
	y, m, d := day.Date()
	return time.Date(y, m, d, c.Hour(), c.Minute(), c.Second(), c.Nanosecond(), i.loc)
}

// SpanOn returns the part of window w that falls on the calendar day starting at dayStart (in loc).
// For a recurring window this is its occurrence on that day, for a one-time window the
// intersection with [dayStart, dayStart+1d). ok is false when nothing falls on the day.
func (i *Index) SpanOn(w *domain.AvailabilityWindow, dayStart time.Time) (start, end time.Time, ok bool) {
	day := dayStart.In(i.loc)
	y, m, d := day.Date()
	from := time.Date(y, m, d, 0, 0, 0, 0, i.loc)
	to := from.AddDate(0, 0, 1)

	if w.Recurring {
		if !i.ValidRecurringRange(w) || !w.HasDay(from.Weekday()) {
			return time.Time{}, time.Time{}, false
		}
		return i.onDate(from, w.Start), i.onDate(from, w.End), true
	}

	start, end = w.Start, w.End
	if start.Before(from) {
		start = from
	}
	if end.After(to) {
		end = to
	}
	if !start.Before(end) {
		return time.Time{}, time.Time{}, false
	}
	return start, end, true
}
