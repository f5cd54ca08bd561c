package notify

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/peopleops/onboarding-system/internal/core/ports"
)

const defaultChannel = "onboarding.lifecycle"

// RedisPublisher delivers lifecycle events to a Redis pub/sub channel for
// UI-refresh and downstream consumers.
type RedisPublisher struct {
	client  *redis.Client
	channel string
}

// NewRedisPublisher creates a publisher on the given channel; an empty
// channel name selects the default.
func NewRedisPublisher(client *redis.Client, channel string) *RedisPublisher {
	if channel == "" {
		channel = defaultChannel
	}
	return &RedisPublisher{client: client, channel: channel}
}

// Deliver marshals the event as JSON and publishes it.
func (p *RedisPublisher) Deliver(ctx context.Context, event ports.LifecycleEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal lifecycle event: %w", err)
	}
	if err := p.client.Publish(ctx, p.channel, payload).Err(); err != nil {
		return fmt.Errorf("publish lifecycle event: %w", err)
	}
	return nil
}
