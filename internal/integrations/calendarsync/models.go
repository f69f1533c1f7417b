package calendarsync

// EventTime момент начала или окончания события
type EventTime struct {
	DateTime string `json:"dateTime"` // RFC 3339
	TimeZone string `json:"timeZone"`
}

// Event событие внешнего календаря
type Event struct {
	ID          string    `json:"id,omitempty"`
	Summary     string    `json:"summary"`
	Description string    `json:"description"`
	Start       EventTime `json:"start"`
	End         EventTime `json:"end"`
	// ExternalID идентификатор бронирования на нашей стороне
	ExternalID string `json:"externalId,omitempty"`
}

// ErrorResponse модель ошибки от шлюза календаря
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
