package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"rental-booking/internal/infra/cache"
	"rental-booking/internal/infra/events"
	"rental-booking/internal/pkg/config"
	"rental-booking/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewRedisClient,
		NewCalendarCache,
		fx.Annotate(
			NewEventPublisher,
			fx.As(new(shared.EventPublisher)),
		),
	),
)

func NewRedisClient(lc fx.Lifecycle, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			slog.Info("redis client closed")
			return client.Close()
		},
	})
	return client, nil
}

// NewCalendarCache returns a nil cache when caching is switched off; the
// availability path then reads straight from PostgreSQL.
func NewCalendarCache(client *redis.Client, cfg config.BookingConfig) shared.CalendarCache {
	if !cfg.CalendarCacheOn {
		return nil
	}
	return cache.NewCalendarCache(client, cfg.CalendarCacheTTL)
}

func NewEventPublisher(client *redis.Client, cfg config.WorkerConfig) *events.RedisPublisher {
	return events.NewRedisPublisher(client, cfg.EventChannel)
}
