package create_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)

// Отказ по пересечению или вне окон доступности возвращается как *conflict.Error
// (errors.Is с conflict.ErrSlotOverlaps / conflict.ErrOutsideAvailability).
