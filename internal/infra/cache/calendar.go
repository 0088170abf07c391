package cache

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"rental-booking/internal/domain/stay"
	"rental-booking/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "calendar:"

// CalendarCache stores occupied dates per listing window. Window keys embed the
// listing's generation counter; Invalidate bumps the counter, so an entry
// computed under an older generation is never read again and expires by TTL.
type CalendarCache struct {
	client redis.Cmdable
	ttl    time.Duration
}

func NewCalendarCache(client redis.Cmdable, ttl time.Duration) *CalendarCache {
	return &CalendarCache{client: client, ttl: ttl}
}

func GenerationKey(listingID uuid.UUID) string {
	return keyPrefix + listingID.String() + ":gen"
}

func WindowKey(listingID uuid.UUID, gen int64, from, to time.Time) string {
	return keyPrefix + listingID.String() + ":" + strconv.FormatInt(gen, 10) + ":" + stay.FormatDate(from) + ":" + stay.FormatDate(to)
}

// Generation returns 0 for a listing that was never invalidated.
func (c *CalendarCache) Generation(ctx context.Context, listingID uuid.UUID) (int64, error) {
	gen, err := c.client.Get(ctx, GenerationKey(listingID)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, errs.Wrap(err, "calendar cache generation")
	}
	return gen, nil
}

func (c *CalendarCache) Get(ctx context.Context, listingID uuid.UUID, gen int64, from, to time.Time) ([]time.Time, bool, error) {
	raw, err := c.client.Get(ctx, WindowKey(listingID, gen, from, to)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errs.Wrap(err, "calendar cache get")
	}

	var encoded []string
	if err := json.Unmarshal(raw, &encoded); err != nil {
		return nil, false, errs.Wrap(err, "calendar cache decode")
	}
	dates := make([]time.Time, 0, len(encoded))
	for _, s := range encoded {
		d, err := stay.ParseDate(s)
		if err != nil {
			return nil, false, errs.Wrap(err, "calendar cache decode")
		}
		dates = append(dates, d)
	}
	return dates, true, nil
}

func (c *CalendarCache) Set(ctx context.Context, listingID uuid.UUID, gen int64, from, to time.Time, dates []time.Time) error {
	encoded := make([]string, len(dates))
	for i, d := range dates {
		encoded[i] = stay.FormatDate(d)
	}
	raw, err := json.Marshal(encoded)
	if err != nil {
		return errs.Wrap(err, "calendar cache encode")
	}

	if err := c.client.Set(ctx, WindowKey(listingID, gen, from, to), raw, c.ttl).Err(); err != nil {
		return errs.Wrap(err, "calendar cache set")
	}
	return nil
}

func (c *CalendarCache) Invalidate(ctx context.Context, listingID uuid.UUID) error {
	if err := c.client.Incr(ctx, GenerationKey(listingID)).Err(); err != nil {
		return errs.Wrap(err, "calendar cache invalidate")
	}
	return nil
}
