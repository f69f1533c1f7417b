package export_bookings

import "errors"

var (
	// ErrAccessDenied возвращается, когда выгрузку запрашивает не администратор
	ErrAccessDenied = errors.New("export_bookings: access denied")

	// ErrGenerate возвращается при ошибке формирования файла
	ErrGenerate = errors.New("export_bookings: failed to generate spreadsheet")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("export_bookings: internal error")
)
