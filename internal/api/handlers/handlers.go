package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/booking-calendar/internal/conflict"
	"github.com/m04kA/booking-calendar/internal/domain"
	"github.com/m04kA/booking-calendar/internal/ical"
)

const (
	msgInternalError = "внутренняя ошибка сервера"
	msgSlotOverlaps  = "интервал пересекается с существующим бронированием"
	msgOutsideWindow = "интервал не попадает в окна доступности"

	// maxBodyBytes ограничение на размер JSON тела запроса
	maxBodyBytes = 1 << 20
)

// ErrorResponse тело ответа с ошибкой
type ErrorResponse struct {
	Error string `json:"error"`
}

// ConflictingBooking краткие данные бронирования, с которым возник конфликт
type ConflictingBooking struct {
	ID    int64     `json:"id"`
	Title string    `json:"title"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// ConflictResponse тело ответа 409
type ConflictResponse struct {
	Error              string              `json:"error"`
	Reason             string              `json:"reason"`
	ConflictingBooking *ConflictingBooking `json:"conflictingBooking,omitempty"`
}

// RespondJSON пишет JSON ответ с указанным статусом
func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	if payload == nil || status == http.StatusNoContent {
		w.WriteHeader(status)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// RespondError пишет ошибку в формате {"error": "..."}
func RespondError(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, ErrorResponse{Error: message})
}

func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadRequest, message)
}

func RespondUnauthorized(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusUnauthorized, message)
}

func RespondForbidden(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusForbidden, message)
}

func RespondNotFound(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusNotFound, message)
}

func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, msgInternalError)
}

// RespondConflict пишет 409 с причиной отказа и, если есть, конфликтующим бронированием
func RespondConflict(w http.ResponseWriter, ce *conflict.Error) {
	resp := ConflictResponse{
		Error:  msgOutsideWindow,
		Reason: string(ce.Reason),
	}
	if errors.Is(ce, conflict.ErrSlotOverlaps) {
		resp.Error = msgSlotOverlaps
	}
	if b := ce.Conflicting; b != nil {
		resp.ConflictingBooking = &ConflictingBooking{
			ID:    b.ID,
			Title: b.Title,
			Start: b.Start.UTC(),
			End:   b.End.UTC(),
		}
	}
	RespondJSON(w, http.StatusConflict, resp)
}

// DecodeJSON разбирает тело запроса. Неизвестные поля и пустое тело считаются ошибкой.
func DecodeJSON(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return errors.New("empty request body")
	}

	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return errors.New("empty request body")
		}
		return fmt.Errorf("decode json: %w", err)
	}
	return nil
}

// PathID разбирает положительный int64 из переменной маршрута
func PathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(mux.Vars(r)[name], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", name, err)
	}
	if id <= 0 {
		return 0, fmt.Errorf("%s must be positive, got %d", name, id)
	}
	return id, nil
}

// ParseTime разбирает момент времени в формате RFC 3339
func ParseTime(value string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse time %q: %w", value, err)
	}
	return t, nil
}

// ParseOptionalTime разбирает необязательный момент времени, пустая строка дает nil
func ParseOptionalTime(value *string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	t, err := ParseTime(*value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// WantsCalendar сообщает, запросил ли клиент iCalendar через заголовок Accept
func WantsCalendar(r *http.Request) bool {
	for _, part := range strings.Split(r.Header.Get("Accept"), ",") {
		mediaType, _, err := mime.ParseMediaType(strings.TrimSpace(part))
		if err == nil && mediaType == "text/calendar" {
			return true
		}
	}
	return false
}

// RespondCalendar пишет бронирования как .ics документ
func RespondCalendar(w http.ResponseWriter, filename string, bookings []*domain.Booking) error {
	w.Header().Set("Content-Type", ical.ContentType)
	w.Header().Set("Content-Disposition", mime.FormatMediaType("inline", map[string]string{"filename": filename}))
	w.WriteHeader(http.StatusOK)
	return ical.Encode(w, bookings, time.Now())
}
