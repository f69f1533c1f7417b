package sync_booking

import (
	"context"

	syncBooking "github.com/m04kA/booking-calendar/internal/usecase/sync_booking"
)

type SyncBookingUseCase interface {
	Execute(ctx context.Context, req *syncBooking.Request) (*syncBooking.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
