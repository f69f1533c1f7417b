package update_booking

import (
	"time"

	"github.com/m04kA/booking-calendar/internal/domain"
)

// Request модель частичного обновления бронирования. nil - поле не меняется.
type Request struct {
	Actor     domain.Actor
	BookingID int64
	Title     *string
	Notes     *string // пустая строка очищает заметки
	Start     *time.Time
	End       *time.Time
	Status    *domain.BookingStatus
}

// Response модель ответа с обновленным бронированием
type Response struct {
	Booking *domain.Booking
}
