package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/booking-calendar/internal/conflict"
	"github.com/m04kA/booking-calendar/internal/domain"
)

func TestRespondError(t *testing.T) {
	rec := httptest.NewRecorder()

	RespondNotFound(rec, "не найдено")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"error":"не найдено"}`, rec.Body.String())
}

func TestRespondJSON_NoContent(t *testing.T) {
	rec := httptest.NewRecorder()

	RespondJSON(rec, http.StatusNoContent, nil)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestRespondConflict(t *testing.T) {
	start := time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)

	t.Run("overlap carries booking", func(t *testing.T) {
		rec := httptest.NewRecorder()

		RespondConflict(rec, &conflict.Error{
			Reason:      domain.ReasonOverlapsBooking,
			Conflicting: &domain.Booking{ID: 7, Title: "Standup", Start: start, End: start.Add(time.Hour)},
		})

		require.Equal(t, http.StatusConflict, rec.Code)
		var body ConflictResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "OVERLAPS_BOOKING", body.Reason)
		assert.Equal(t, msgSlotOverlaps, body.Error)
		require.NotNil(t, body.ConflictingBooking)
		assert.Equal(t, int64(7), body.ConflictingBooking.ID)
		assert.Equal(t, "Standup", body.ConflictingBooking.Title)
		assert.True(t, body.ConflictingBooking.Start.Equal(start))
	})

	t.Run("outside availability", func(t *testing.T) {
		rec := httptest.NewRecorder()

		RespondConflict(rec, &conflict.Error{Reason: domain.ReasonOutsideAvailability})

		require.Equal(t, http.StatusConflict, rec.Code)
		assert.JSONEq(t, `{"error":"`+msgOutsideWindow+`","reason":"OUTSIDE_AVAILABILITY"}`, rec.Body.String())
	})
}

func TestDecodeJSON(t *testing.T) {
	type payload struct {
		Title string `json:"title"`
	}

	t.Run("ok", func(t *testing.T) {
		var p payload
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"title":"x"}`))
		require.NoError(t, DecodeJSON(r, &p))
		assert.Equal(t, "x", p.Title)
	})

	t.Run("unknown field", func(t *testing.T) {
		var p payload
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"title":"x","extra":1}`))
		assert.Error(t, DecodeJSON(r, &p))
	})

	t.Run("empty body", func(t *testing.T) {
		var p payload
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(""))
		assert.Error(t, DecodeJSON(r, &p))
	})
}

func TestPathID(t *testing.T) {
	r := mux.NewRouter()
	var (
		got int64
		err error
	)
	r.HandleFunc("/bookings/{bookingId}", func(w http.ResponseWriter, req *http.Request) {
		got, err = PathID(req, "bookingId")
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/bookings/15", nil))
	require.NoError(t, err)
	assert.Equal(t, int64(15), got)

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/bookings/abc", nil))
	assert.Error(t, err)

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/bookings/0", nil))
	assert.Error(t, err)
}

func TestParseTime(t *testing.T) {
	got, err := ParseTime("2025-03-10T10:00:00+03:00")
	require.NoError(t, err)
	assert.True(t, got.Equal(time.Date(2025, 3, 10, 7, 0, 0, 0, time.UTC)))

	_, err = ParseTime("2025-03-10 10:00")
	assert.Error(t, err)

	empty := ""
	none, err := ParseOptionalTime(&empty)
	require.NoError(t, err)
	assert.Nil(t, none)
}

func TestWantsCalendar(t *testing.T) {
	tests := []struct {
		accept string
		want   bool
	}{
		{"", false},
		{"application/json", false},
		{"text/calendar", true},
		{"application/json, text/calendar;q=0.9", true},
		{"*/*", false},
	}

	for _, tt := range tests {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("Accept", tt.accept)
		assert.Equal(t, tt.want, WantsCalendar(r), tt.accept)
	}
}
