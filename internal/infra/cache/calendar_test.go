//go:build unit

package cache_test

import (
	"context"
	"testing"
	"time"

	"rental-booking/internal/domain/stay"
	"rental-booking/internal/infra/cache"

	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := stay.ParseDate(s)
	require.NoError(t, err)
	return d
}

func TestCalendarCache_Generation(t *testing.T) {
	ctx := context.Background()
	listingID := uuid.New()
	genKey := cache.GenerationKey(listingID)

	t.Run("success: never invalidated", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		c := cache.NewCalendarCache(db, time.Minute)

		mock.ExpectGet(genKey).RedisNil()

		gen, err := c.Generation(ctx, listingID)

		require.NoError(t, err)
		assert.Zero(t, gen)
	})

	t.Run("success: current counter", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		c := cache.NewCalendarCache(db, time.Minute)

		mock.ExpectGet(genKey).SetVal("7")

		gen, err := c.Generation(ctx, listingID)

		require.NoError(t, err)
		assert.Equal(t, int64(7), gen)
	})

	t.Run("error: redis down", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		c := cache.NewCalendarCache(db, time.Minute)

		mock.ExpectGet(genKey).SetErr(assert.AnError)

		_, err := c.Generation(ctx, listingID)

		assert.ErrorIs(t, err, assert.AnError)
	})
}

func TestCalendarCache_Get(t *testing.T) {
	ctx := context.Background()
	listingID := uuid.New()
	from, to := day(t, "2025-03-01"), day(t, "2025-03-31")
	key := cache.WindowKey(listingID, 2, from, to)

	t.Run("success: hit decodes dates", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		c := cache.NewCalendarCache(db, time.Minute)

		mock.ExpectGet(key).SetVal(`["2025-03-02","2025-03-03"]`)

		dates, ok, err := c.Get(ctx, listingID, 2, from, to)

		require.NoError(t, err)
		assert.True(t, ok)
		require.Len(t, dates, 2)
		assert.Equal(t, "2025-03-02", stay.FormatDate(dates[0]))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("success: miss", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		c := cache.NewCalendarCache(db, time.Minute)

		mock.ExpectGet(key).RedisNil()

		dates, ok, err := c.Get(ctx, listingID, 2, from, to)

		require.NoError(t, err)
		assert.False(t, ok)
		assert.Nil(t, dates)
	})

	t.Run("error: corrupt payload", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		c := cache.NewCalendarCache(db, time.Minute)

		mock.ExpectGet(key).SetVal(`["03/02/2025"]`)

		_, ok, err := c.Get(ctx, listingID, 2, from, to)

		assert.Error(t, err)
		assert.False(t, ok)
	})

	t.Run("error: redis down", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		c := cache.NewCalendarCache(db, time.Minute)

		mock.ExpectGet(key).SetErr(assert.AnError)

		_, _, err := c.Get(ctx, listingID, 2, from, to)

		assert.ErrorIs(t, err, assert.AnError)
	})
}

func TestCalendarCache_SetAndInvalidate(t *testing.T) {
	ctx := context.Background()
	listingID := uuid.New()
	from, to := day(t, "2025-03-01"), day(t, "2025-03-31")

	t.Run("success: set writes the window under its generation", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		c := cache.NewCalendarCache(db, 5*time.Minute)

		mock.ExpectSet(cache.WindowKey(listingID, 4, from, to), []byte(`["2025-03-02"]`), 5*time.Minute).SetVal("OK")

		err := c.Set(ctx, listingID, 4, from, to, []time.Time{day(t, "2025-03-02")})

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("success: invalidate bumps the generation", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		c := cache.NewCalendarCache(db, 5*time.Minute)

		mock.ExpectIncr(cache.GenerationKey(listingID)).SetVal(5)

		require.NoError(t, c.Invalidate(ctx, listingID))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("success: a late write under an old generation is not read back", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		c := cache.NewCalendarCache(db, 5*time.Minute)

		mock.ExpectIncr(cache.GenerationKey(listingID)).SetVal(1)
		mock.ExpectSet(cache.WindowKey(listingID, 0, from, to), []byte(`[]`), 5*time.Minute).SetVal("OK")
		mock.ExpectGet(cache.GenerationKey(listingID)).SetVal("1")
		mock.ExpectGet(cache.WindowKey(listingID, 1, from, to)).RedisNil()

		require.NoError(t, c.Invalidate(ctx, listingID))
		require.NoError(t, c.Set(ctx, listingID, 0, from, to, []time.Time{}))
		gen, err := c.Generation(ctx, listingID)
		require.NoError(t, err)
		_, ok, err := c.Get(ctx, listingID, gen, from, to)

		require.NoError(t, err)
		assert.False(t, ok)
		assert.NotEqual(t, cache.WindowKey(listingID, 0, from, to), cache.WindowKey(listingID, gen, from, to))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("error: invalidate fails", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		c := cache.NewCalendarCache(db, 5*time.Minute)

		mock.ExpectIncr(cache.GenerationKey(listingID)).SetErr(assert.AnError)

		assert.ErrorIs(t, c.Invalidate(ctx, listingID), assert.AnError)
	})
}
