package sync_booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("sync_booking: booking not found")

	// ErrAccessDenied возвращается, когда пользователь не владелец и не администратор
	ErrAccessDenied = errors.New("sync_booking: access denied")

	// ErrBookingCanceled возвращается при попытке синхронизировать отмененное бронирование
	ErrBookingCanceled = errors.New("sync_booking: canceled booking cannot be synced")

	// ErrSyncDisabled возвращается, когда интеграция с календарем выключена
	ErrSyncDisabled = errors.New("sync_booking: calendar sync is disabled")

	// ErrSyncFailed возвращается, когда внешний календарь не принял событие
	ErrSyncFailed = errors.New("sync_booking: external calendar sync failed")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("sync_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("sync_booking: internal error")
)
