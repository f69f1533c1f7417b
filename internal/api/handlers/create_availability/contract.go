package create_availability

import (
	"context"

	"github.com/m04kA/booking-calendar/internal/domain"
	"github.com/m04kA/booking-calendar/internal/service/availability/models"
)

type AvailabilityService interface {
	Create(ctx context.Context, actor domain.Actor, req *models.CreateWindowRequest) (*models.WindowResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
