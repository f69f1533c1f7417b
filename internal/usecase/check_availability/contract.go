package check_availability

import (
	"context"
	"time"

	"github.com/m04kA/booking-calendar/internal/conflict"
)

// ConflictChecker проверка интервала
type ConflictChecker interface {
	CanBook(ctx context.Context, start, end time.Time, excludeID *int64) (conflict.Decision, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
