package calendarsync

import "errors"

var (
	// ErrEventNotFound возвращается, когда событие во внешнем календаре не найдено
	ErrEventNotFound = errors.New("calendarsync client: event not found")

	// ErrUnauthorized возвращается, когда шлюз календаря отклонил авторизацию
	ErrUnauthorized = errors.New("calendarsync client: authorization rejected")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("calendarsync client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от шлюза
	ErrInvalidResponse = errors.New("calendarsync client: invalid response")
)
