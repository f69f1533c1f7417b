package update_availability

import (
	"context"

	"github.com/m04kA/booking-calendar/internal/domain"
	"github.com/m04kA/booking-calendar/internal/service/availability/models"
)

type AvailabilityService interface {
	Update(ctx context.Context, actor domain.Actor, id int64, req *models.UpdateWindowRequest) (*models.WindowResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
