package notify

import "errors"

var (
	// ErrMarshal возвращается, когда событие не удалось сериализовать
	ErrMarshal = errors.New("notify: failed to marshal event")

	// ErrPublish возвращается, когда брокер не принял событие
	ErrPublish = errors.New("notify: failed to publish event")
)
