package events

import (
	"github.com/m04kA/booking-calendar/internal/notify"
)

// EventHub источник событий для подключенных сессий
type EventHub interface {
	Subscribe(sessionID string) *notify.Subscription
	Unsubscribe(sub *notify.Subscription)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
