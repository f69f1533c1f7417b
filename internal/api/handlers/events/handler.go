package events

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/m04kA/booking-calendar/internal/api/handlers"
	"github.com/m04kA/booking-calendar/internal/api/middleware"
)

const (
	msgMissingUserID     = "отсутствует ID пользователя"
	msgStreamUnsupported = "потоковая передача не поддерживается"

	// DefaultHeartbeat период комментариев-пингов, чтобы прокси не закрывали соединение
	DefaultHeartbeat = 25 * time.Second
)

type Handler struct {
	hub       EventHub
	heartbeat time.Duration
	logger    Logger
}

func NewHandler(hub EventHub, heartbeat time.Duration, logger Logger) *Handler {
	if heartbeat <= 0 {
		heartbeat = DefaultHeartbeat
	}
	return &Handler{
		hub:       hub,
		heartbeat: heartbeat,
		logger:    logger,
	}
}

// Handle GET /api/v1/events
// Server-sent events об изменениях бронирований и окон. Сессия берется из X-Session-ID
// или параметра ?session=, собственные изменения сессии ей не отправляются.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		h.logger.Warn("GET /events - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	rc := http.NewResponseController(w)
	if _, ok := w.(http.Flusher); !ok {
		h.logger.Error("GET /events - ResponseWriter does not support flushing")
		handlers.RespondError(w, http.StatusInternalServerError, msgStreamUnsupported)
		return
	}
	// Поток живет дольше WriteTimeout сервера
	_ = rc.SetWriteDeadline(time.Time{})

	sessionID := actor.SessionID
	if sessionID == "" {
		sessionID = r.URL.Query().Get("session")
	}

	sub := h.hub.Subscribe(sessionID)
	defer h.hub.Unsubscribe(sub)

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)
	_ = rc.Flush()

	h.logger.Info("GET /events - Stream opened: user_id=%d, session=%q, subscription=%s", actor.UserID, sessionID, sub.ID)

	ticker := time.NewTicker(h.heartbeat)
	defer ticker.Stop()

	for {
		select {
		case <-r.Context().Done():
			h.logger.Info("GET /events - Stream closed: subscription=%s", sub.ID)
			return

		case <-ticker.C:
			if _, err := fmt.Fprint(w, ": ping\n\n"); err != nil {
				h.logger.Warn("GET /events - Heartbeat failed: subscription=%s, error=%v", sub.ID, err)
				return
			}
			_ = rc.Flush()

		case event, ok := <-sub.C:
			if !ok {
				return
			}
			data, err := json.Marshal(event)
			if err != nil {
				h.logger.Error("GET /events - Failed to encode event %s: %v", event.ID, err)
				continue
			}
			if _, err := fmt.Fprintf(w, "id: %s\nevent: %s\ndata: %s\n\n", event.ID, eventName(event), data); err != nil {
				h.logger.Warn("GET /events - Write failed: subscription=%s, error=%v", sub.ID, err)
				return
			}
			_ = rc.Flush()
		}
	}
}
