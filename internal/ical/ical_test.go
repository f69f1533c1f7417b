package ical

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/booking-calendar/internal/domain"
	"github.com/m04kA/booking-calendar/pkg/ptr"
)

func TestEncode(t *testing.T) {
	moscow := time.FixedZone("MSK", 3*60*60)
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	bookings := []*domain.Booking{
		{
			ID:     7,
			Title:  "Sync; team, weekly",
			Notes:  ptr.Ptr("line1\nline2"),
			Start:  time.Date(2025, 3, 10, 13, 0, 0, 0, moscow),
			End:    time.Date(2025, 3, 10, 14, 0, 0, 0, moscow),
			Status: domain.StatusConfirmed,
		},
		nil,
		{ID: 8, Title: "Old", Start: now, End: now.Add(time.Hour), Status: domain.StatusCanceled},
	}

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, bookings, now))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "BEGIN:VCALENDAR\r\nVERSION:2.0\r\n"))
	assert.True(t, strings.HasSuffix(out, "END:VCALENDAR\r\n"))
	assert.Equal(t, 2, strings.Count(out, "BEGIN:VEVENT"))
	assert.Contains(t, out, "UID:booking-7@booking-calendar\r\n")
	assert.Contains(t, out, "DTSTART:20250310T100000Z\r\n")
	assert.Contains(t, out, "DTEND:20250310T110000Z\r\n")
	assert.Contains(t, out, `SUMMARY:Sync\; team\, weekly`+"\r\n")
	assert.Contains(t, out, `DESCRIPTION:line1\nline2`+"\r\n")
	assert.Contains(t, out, "STATUS:CONFIRMED\r\n")
	assert.Contains(t, out, "STATUS:CANCELLED\r\n")
	assert.NotContains(t, out, "LAST-MODIFIED")
}

func TestEncode_EmptyCalendar(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, Encode(&buf, nil, time.Now()))

	assert.Equal(t, "BEGIN:VCALENDAR\r\nVERSION:2.0\r\nPRODID:-//booking-calendar//RU\r\nCALSCALE:GREGORIAN\r\nEND:VCALENDAR\r\n", buf.String())
}

func TestLineWriter_Folds(t *testing.T) {
	var buf bytes.Buffer
	lw := &lineWriter{w: &buf}

	lw.line("SUMMARY:" + strings.Repeat("ж", 60))

	require.NoError(t, lw.err)
	for _, l := range strings.Split(strings.TrimSuffix(buf.String(), "\r\n"), "\r\n") {
		assert.LessOrEqual(t, len(l), maxLineLen)
		assert.True(t, strings.ToValidUTF8(l, "?") == l, "line split inside a rune: %q", l)
	}
	unfolded := strings.ReplaceAll(buf.String(), "\r\n ", "")
	assert.Equal(t, "SUMMARY:"+strings.Repeat("ж", 60)+"\r\n", unfolded)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestEncode_WriteError(t *testing.T) {
	assert.Error(t, Encode(failingWriter{}, nil, time.Now()))
}
