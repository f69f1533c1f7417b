package notify

import (
	"context"

	"github.com/m04kA/booking-calendar/internal/domain"
)

// Publisher доставляет событие об изменении подписчикам
type Publisher interface {
	Publish(ctx context.Context, event domain.ChangeEvent) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
