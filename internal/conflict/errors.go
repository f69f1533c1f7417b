package conflict

import (
	"errors"
	"fmt"

	"github.com/m04kA/booking-calendar/internal/domain"
)

var (
	// ErrSlotOverlaps интервал пересекается с активным бронированием
	ErrSlotOverlaps = errors.New("conflict: slot overlaps an existing booking")

	// ErrOutsideAvailability интервал не покрыт ни одним окном доступности
	ErrOutsideAvailability = errors.New("conflict: slot is outside availability")

	// ErrStore ошибка чтения из хранилища во время проверки
	ErrStore = errors.New("conflict: failed to read state")
)

// Error отказ в бронировании с причиной. errors.Is работает с ErrSlotOverlaps / ErrOutsideAvailability.
type Error struct {
	Reason      domain.ConflictReason
	Conflicting *domain.Booking
}

func (e *Error) Error() string {
	if e.Conflicting != nil {
		return fmt.Sprintf("%s: booking id=%d %q [%s, %s)",
			e.Unwrap().Error(), e.Conflicting.ID, e.Conflicting.Title,
			e.Conflicting.Start.Format(timeLayout), e.Conflicting.End.Format(timeLayout))
	}
	return e.Unwrap().Error()
}

func (e *Error) Unwrap() error {
	if e.Reason == domain.ReasonOverlapsBooking {
		return ErrSlotOverlaps
	}
	return ErrOutsideAvailability
}

// AsError извлекает *Error из цепочки ошибок
func AsError(err error) (*Error, bool) {
	var ce *Error
	if errors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}
