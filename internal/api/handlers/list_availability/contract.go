package list_availability

import (
	"context"

	"github.com/m04kA/booking-calendar/internal/service/availability/models"
)

type AvailabilityService interface {
	List(ctx context.Context) (*models.WindowListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
