package domain

import "time"

// Slot generation limits
const (
	DefaultSlotDurationMinutes = 30
	MaxSlotDurationMinutes     = 24 * 60
)

// FreeSlot a bookable interval [Start, End) inside an availability window
type FreeSlot struct {
	Start time.Time
	End   time.Time
}

// Duration returns the slot length
func (s FreeSlot) Duration() time.Duration {
	return s.End.Sub(s.Start)
}
