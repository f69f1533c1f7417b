package calendarsync

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/m04kA/booking-calendar/internal/domain"
)

// Client клиент шлюза внешнего календаря
type Client struct {
	baseURL    string
	calendarID string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента
func NewClient(baseURL, calendarID string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		calendarID: calendarID,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// CreateEvent создает событие и возвращает его id во внешнем календаре
func (c *Client) CreateEvent(ctx context.Context, event *Event) (string, error) {
	endpoint := fmt.Sprintf("%s/calendars/%s/events", c.baseURL, url.PathEscape(c.calendarID))
	return c.send(ctx, http.MethodPost, endpoint, event)
}

// UpdateEvent перезаписывает существующее событие
func (c *Client) UpdateEvent(ctx context.Context, eventID string, event *Event) (string, error) {
	endpoint := fmt.Sprintf("%s/calendars/%s/events/%s",
		c.baseURL, url.PathEscape(c.calendarID), url.PathEscape(eventID))
	return c.send(ctx, http.MethodPut, endpoint, event)
}

// SyncBooking создает событие для бронирования или обновляет уже связанное.
// Если связанное событие удалено во внешнем календаре, создается новое.
func (c *Client) SyncBooking(ctx context.Context, booking *domain.Booking) (string, error) {
	event := EventFromBooking(booking)

	if booking.IsSynced() {
		c.log.Info("Updating calendar event %s for booking id=%d", *booking.ExternalEventRef, booking.ID)
		id, err := c.UpdateEvent(ctx, *booking.ExternalEventRef, event)
		if err == nil {
			return id, nil
		}
		if !errors.Is(err, ErrEventNotFound) {
			return "", err
		}
		c.log.Warn("Calendar event %s for booking id=%d is gone, creating a new one", *booking.ExternalEventRef, booking.ID)
	}

	c.log.Info("Creating calendar event for booking id=%d", booking.ID)
	return c.CreateEvent(ctx, event)
}

// EventFromBooking описание события по бронированию
func EventFromBooking(b *domain.Booking) *Event {
	description := ""
	if b.Notes != nil {
		description = *b.Notes
	}
	return &Event{
		Summary:     b.Title,
		Description: description,
		Start:       EventTime{DateTime: b.Start.UTC().Format(time.RFC3339), TimeZone: "UTC"},
		End:         EventTime{DateTime: b.End.UTC().Format(time.RFC3339), TimeZone: "UTC"},
		ExternalID:  fmt.Sprintf("booking-%d", b.ID),
	}
}

func (c *Client) send(ctx context.Context, method, endpoint string, event *Event) (string, error) {
	body, err := json.Marshal(event)
	if err != nil {
		return "", fmt.Errorf("%w: failed to encode event: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
		// Продолжаем обработку
	case http.StatusUnauthorized, http.StatusForbidden:
		return "", ErrUnauthorized
	case http.StatusNotFound:
		return "", ErrEventNotFound
	default:
		var apiErr ErrorResponse
		raw, _ := io.ReadAll(resp.Body)
		if json.Unmarshal(raw, &apiErr) == nil && apiErr.Message != "" {
			return "", fmt.Errorf("%w: status %d: %s", ErrInvalidResponse, resp.StatusCode, apiErr.Message)
		}
		return "", fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(raw))
	}

	var created Event
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return "", fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	if created.ID == "" {
		return "", fmt.Errorf("%w: event id is empty", ErrInvalidResponse)
	}

	return created.ID, nil
}
