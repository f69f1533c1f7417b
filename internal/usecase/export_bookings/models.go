package export_bookings

import (
	"bytes"

	"github.com/m04kA/booking-calendar/internal/domain"
)

// ContentType MIME-тип .xlsx
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Request модель запроса на выгрузку
type Request struct {
	Actor  domain.Actor
	Filter domain.BookingsFilter
}

// Response готовый файл
type Response struct {
	Content  *bytes.Buffer
	Filename string
	Rows     int
}
