// Package conflict decides whether a time interval may be booked.
package conflict

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/booking-calendar/internal/domain"
)

const timeLayout = time.RFC3339

// Decision результат проверки интервала
type Decision struct {
	Allowed bool
	Reason  domain.ConflictReason
	// Conflicting первое найденное пересекающееся бронирование (для ReasonOverlapsBooking)
	Conflicting *domain.Booking
}

// Err возвращает *Error для отказа или nil, если бронирование разрешено
func (d Decision) Err() error {
	if d.Allowed {
		return nil
	}
	return &Error{Reason: d.Reason, Conflicting: d.Conflicting}
}

// Checker единая точка проверки перед созданием или переносом бронирования.
// Сам по себе ничего не пишет: атомарность "проверка + запись" обеспечивает вызывающий
// код, выполняя CanBook и запись в одной транзакции.
type Checker struct {
	bookings BookingRepository
	windows  WindowRepository
	index    CoverageIndex
}

// NewChecker создает проверку конфликтов
func NewChecker(bookings BookingRepository, windows WindowRepository, index CoverageIndex) *Checker {
	return &Checker{
		bookings: bookings,
		windows:  windows,
		index:    index,
	}
}

// CanBook проверяет, можно ли занять [start, end).
// excludeID - бронирование, которое переносится, его собственный интервал не считается конфликтом.
// Ошибка возвращается только при сбое хранилища, отказ по бизнес-правилам - это Decision.Allowed == false.
func (c *Checker) CanBook(ctx context.Context, start, end time.Time, excludeID *int64) (Decision, error) {
	active, err := c.bookings.ActiveInRange(ctx, start, end, excludeID)
	if err != nil {
		return Decision{}, fmt.Errorf("%w: active bookings: %w", ErrStore, err)
	}

	if b := FirstOverlap(start, end, active, excludeID); b != nil {
		return Decision{Reason: domain.ReasonOverlapsBooking, Conflicting: b}, nil
	}

	windows, err := c.windows.ListCoverageCandidates(ctx, start, end)
	if err != nil {
		return Decision{}, fmt.Errorf("%w: availability windows: %w", ErrStore, err)
	}

	if !c.index.IsCovered(start, end, windows) {
		return Decision{Reason: domain.ReasonOutsideAvailability}, nil
	}

	return Decision{Allowed: true}, nil
}

// FirstOverlap возвращает первое активное бронирование (кроме excludeID), пересекающее [start, end).
// Фильтр хранилища по интервалу перепроверяется в памяти.
func FirstOverlap(start, end time.Time, bookings []*domain.Booking, excludeID *int64) *domain.Booking {
	for _, b := range bookings {
		if b == nil || !b.IsActive() {
			continue
		}
		if excludeID != nil && b.ID == *excludeID {
			continue
		}
		if b.Overlaps(start, end) {
			return b
		}
	}
	return nil
}

// Decider проверка интервала, реализуется *Checker
type Decider interface {
	CanBook(ctx context.Context, start, end time.Time, excludeID *int64) (Decision, error)
}

// CiteOverlap дополняет отказ OVERLAPS_BOOKING без конфликтующего бронирования
// (сработало ограничение bookings_no_overlap при записи) результатом повторной проверки.
// Вызывается после отката транзакции. Если повторная проверка не нашла пересечения
// или завершилась ошибкой, ce возвращается без изменений.
func CiteOverlap(ctx context.Context, d Decider, ce *Error, start, end time.Time, excludeID *int64) *Error {
	if ce == nil || ce.Reason != domain.ReasonOverlapsBooking || ce.Conflicting != nil {
		return ce
	}

	decision, err := d.CanBook(ctx, start, end, excludeID)
	if err != nil || decision.Conflicting == nil {
		return ce
	}

	return &Error{Reason: ce.Reason, Conflicting: decision.Conflicting}
}
