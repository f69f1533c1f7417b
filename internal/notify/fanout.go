package notify

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/booking-calendar/internal/domain"
	"github.com/m04kA/booking-calendar/pkg/metrics"
)

// Sink именованный получатель событий (имя идет в метку метрики)
type Sink struct {
	Name      string
	Publisher Publisher
}

// Fanout отправляет событие во все подключенные получатели.
// Ошибка одного получателя не мешает остальным, итоговая ошибка объединяет все сбои.
type Fanout struct {
	sinks   []Sink
	metrics *metrics.Metrics
}

// NewFanout создает рассылку по получателям. m может быть nil.
func NewFanout(m *metrics.Metrics, sinks ...Sink) *Fanout {
	return &Fanout{sinks: sinks, metrics: m}
}

// Add добавляет получателя
func (f *Fanout) Add(name string, p Publisher) {
	f.sinks = append(f.sinks, Sink{Name: name, Publisher: p})
}

// Sinks имена подключенных получателей
func (f *Fanout) Sinks() []string {
	names := make([]string, 0, len(f.sinks))
	for _, s := range f.sinks {
		names = append(names, s.Name)
	}
	return names
}

// Publish отправляет событие каждому получателю
func (f *Fanout) Publish(ctx context.Context, event domain.ChangeEvent) error {
	var errs []error
	for _, s := range f.sinks {
		err := s.Publisher.Publish(ctx, event)
		f.observe(s.Name, err)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", s.Name, err))
		}
	}
	return errors.Join(errs...)
}

func (f *Fanout) observe(sink string, err error) {
	if f.metrics == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	f.metrics.EventsPublished.WithLabelValues(sink, result).Inc()
}

// LogPublisher пишет события в лог (получатель по умолчанию, когда брокеры не настроены)
type LogPublisher struct {
	logger Logger
}

// NewLogPublisher создает публикатор в лог
func NewLogPublisher(logger Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

// Publish пишет строку о событии
func (p *LogPublisher) Publish(_ context.Context, event domain.ChangeEvent) error {
	p.logger.Info("ChangeEvent: id=%s %s.%s entity=%d actor=%d",
		event.ID, event.EntityType, event.Action, event.EntityID, event.ActorID)
	return nil
}
