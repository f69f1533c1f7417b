package check_availability

import "errors"

var (
	// ErrInvalidInput возвращается при некорректном интервале
	ErrInvalidInput = errors.New("check_availability: invalid input data")

	// ErrInternal возвращается при ошибке чтения состояния
	ErrInternal = errors.New("check_availability: internal error")
)
