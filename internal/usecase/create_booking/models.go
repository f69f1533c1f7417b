package create_booking

import (
	"time"

	"github.com/m04kA/booking-calendar/internal/domain"
)

// Request модель запроса на создание бронирования
type Request struct {
	Actor domain.Actor // Кто создает (владелец бронирования)
	Title string       // Название
	Notes *string      // Заметки (опционально)
	Start time.Time    // Начало интервала
	End   time.Time    // Конец интервала (не включается)
}

// Response модель ответа с созданным бронированием
type Response struct {
	Booking *domain.Booking
}
