package cancel_booking

import (
	"context"

	updateBooking "github.com/m04kA/booking-calendar/internal/usecase/update_booking"
)

// UpdateBookingUseCase отмена выполняется как смена статуса на canceled
type UpdateBookingUseCase interface {
	Execute(ctx context.Context, req *updateBooking.Request) (*updateBooking.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
