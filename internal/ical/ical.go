// Package ical renders bookings as an iCalendar (RFC 5545) document.
package ical

import (
	"fmt"
	"io"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/m04kA/booking-calendar/internal/domain"
)

const (
	// ContentType MIME тип iCalendar документа
	ContentType = "text/calendar; charset=utf-8"

	prodID      = "-//booking-calendar//RU"
	uidDomain   = "booking-calendar"
	stampLayout = "20060102T150405Z"
	maxLineLen  = 75
)

// Encode пишет VCALENDAR с одним VEVENT на каждое бронирование.
// Отмененные бронирования выводятся со STATUS:CANCELLED.
func Encode(w io.Writer, bookings []*domain.Booking, now time.Time) error {
	lw := &lineWriter{w: w}

	lw.line("BEGIN:VCALENDAR")
	lw.line("VERSION:2.0")
	lw.line("PRODID:" + prodID)
	lw.line("CALSCALE:GREGORIAN")

	for _, b := range bookings {
		if b == nil {
			continue
		}
		lw.line("BEGIN:VEVENT")
		lw.line(fmt.Sprintf("UID:booking-%d@%s", b.ID, uidDomain))
		lw.line("DTSTAMP:" + stamp(now))
		lw.line("DTSTART:" + stamp(b.Start))
		lw.line("DTEND:" + stamp(b.End))
		lw.line("SUMMARY:" + escapeText(b.Title))
		if b.Notes != nil && *b.Notes != "" {
			lw.line("DESCRIPTION:" + escapeText(*b.Notes))
		}
		lw.line("STATUS:" + eventStatus(b.Status))
		if !b.UpdatedAt.IsZero() {
			lw.line("LAST-MODIFIED:" + stamp(b.UpdatedAt))
		}
		lw.line("END:VEVENT")
	}

	lw.line("END:VCALENDAR")
	return lw.err
}

func stamp(t time.Time) string {
	return t.UTC().Format(stampLayout)
}

func eventStatus(s domain.BookingStatus) string {
	switch s {
	case domain.StatusConfirmed:
		return "CONFIRMED"
	case domain.StatusCanceled:
		return "CANCELLED"
	default:
		return "TENTATIVE"
	}
}

var textEscaper = strings.NewReplacer(
	`\`, `\\`,
	";", `\;`,
	",", `\,`,
	"\r\n", `\n`,
	"\n", `\n`,
)

func escapeText(s string) string {
	return textEscaper.Replace(s)
}

// lineWriter пишет строки с CRLF и складывает их по 75 октетов, не разрывая символы UTF-8
type lineWriter struct {
	w   io.Writer
	err error
}

func (lw *lineWriter) line(s string) {
	if lw.err != nil {
		return
	}

	limit := maxLineLen
	var sb strings.Builder
	for len(s) > limit {
		cut := limit
		for cut > 0 && !utf8.RuneStart(s[cut]) {
			cut--
		}
		sb.WriteString(s[:cut])
		sb.WriteString("\r\n ")
		s = s[cut:]
		// continuation lines start with a space that counts toward the limit
		limit = maxLineLen - 1
	}
	sb.WriteString(s)
	sb.WriteString("\r\n")

	_, lw.err = io.WriteString(lw.w, sb.String())
}
