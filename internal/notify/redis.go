package notify

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/booking-calendar/internal/domain"
)

// RedisClient часть *redis.Client, нужная для публикации
type RedisClient interface {
	Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd
}

// RedisPublisher публикует события в канал Redis pub/sub
type RedisPublisher struct {
	client  RedisClient
	channel string
}

// NewRedisPublisher создает публикатор в Redis
func NewRedisPublisher(client RedisClient, channel string) *RedisPublisher {
	return &RedisPublisher{client: client, channel: channel}
}

// Publish сериализует событие в JSON и публикует его (PUBLISH channel payload)
func (p *RedisPublisher) Publish(ctx context.Context, event domain.ChangeEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMarshal, err)
	}

	if err := p.client.Publish(ctx, p.channel, payload).Err(); err != nil {
		return fmt.Errorf("%w: redis channel %s: %w", ErrPublish, p.channel, err)
	}
	return nil
}
