package notify

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/m04kA/booking-calendar/internal/domain"
)

// DefaultBuffer размер очереди событий одного подписчика по умолчанию
const DefaultBuffer = 32

// Subscription подписка одной клиентской сессии на события
type Subscription struct {
	ID        string
	SessionID string
	C         <-chan domain.ChangeEvent

	ch   chan domain.ChangeEvent
	once sync.Once
}

// Hub раздает события подключенным сессиям внутри процесса.
// Сессия не получает собственные события (OriginSession == SessionID).
// Медленный подписчик не блокирует публикацию: событие для него отбрасывается.
type Hub struct {
	mu     sync.RWMutex
	subs   map[string]*Subscription
	buffer int
	logger Logger
}

// NewHub создает хаб
func NewHub(buffer int, logger Logger) *Hub {
	if buffer <= 0 {
		buffer = DefaultBuffer
	}
	return &Hub{
		subs:   make(map[string]*Subscription),
		buffer: buffer,
		logger: logger,
	}
}

// Subscribe регистрирует сессию. Вызывающий обязан вызвать Unsubscribe.
func (h *Hub) Subscribe(sessionID string) *Subscription {
	ch := make(chan domain.ChangeEvent, h.buffer)
	sub := &Subscription{
		ID:        uuid.NewString(),
		SessionID: sessionID,
		C:         ch,
		ch:        ch,
	}

	h.mu.Lock()
	h.subs[sub.ID] = sub
	h.mu.Unlock()

	return sub
}

// Unsubscribe удаляет подписку и закрывает её канал
func (h *Hub) Unsubscribe(sub *Subscription) {
	h.mu.Lock()
	delete(h.subs, sub.ID)
	h.mu.Unlock()

	sub.once.Do(func() { close(sub.ch) })
}

// Count количество активных подписок
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}

// Publish отправляет событие всем сессиям, кроме инициатора
func (h *Hub) Publish(_ context.Context, event domain.ChangeEvent) error {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, sub := range h.subs {
		if event.OriginSession != "" && sub.SessionID == event.OriginSession {
			continue
		}
		select {
		case sub.ch <- event:
		default:
			h.logger.Warn("Hub: subscriber %s (session=%q) is slow, event %s dropped", sub.ID, sub.SessionID, event.ID)
		}
	}
	return nil
}
