package events

import (
	"context"

	"rental-booking/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

// RedisPublisher sends every reservation event to one pub/sub channel.
// Subscribers tell events apart by the newStatus field of the payload.
type RedisPublisher struct {
	client  redis.Cmdable
	channel string
}

func NewRedisPublisher(client redis.Cmdable, channel string) *RedisPublisher {
	return &RedisPublisher{client: client, channel: channel}
}

func (p *RedisPublisher) Publish(ctx context.Context, topic string, payload []byte) error {
	if err := p.client.Publish(ctx, p.channel, payload).Err(); err != nil {
		return errs.Wrapf(err, "publish %s to %s", topic, p.channel)
	}
	return nil
}
