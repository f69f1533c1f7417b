package get_available_slots

import "time"

// DateFormat формат даты в запросе
const DateFormat = "2006-01-02"

// Request модель запроса на получение свободных слотов
type Request struct {
	Date            string // Дата в формате YYYY-MM-DD, трактуется в опорной временной зоне
	DurationMinutes int    // Длительность слота, 0 означает значение по умолчанию
}

// Response модель ответа со списком свободных слотов
type Response struct {
	Date            time.Time // Начало запрошенного дня в опорной зоне
	DurationMinutes int
	Slots           []Slot
}

// Slot свободный интервал
type Slot struct {
	Start time.Time
	End   time.Time
}
