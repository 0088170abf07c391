//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"rental-booking/internal/usecase/queries"
	"rental-booking/tests/common/builder"
	queriesmock "rental-booking/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestReviewQueries_ListByListing(t *testing.T) {
	listingID := uuid.New()
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	items := make([]*queries.ReviewListItem, 3)
	for i := range items {
		items[i] = builder.NewReviewBuilder().WithListingID(listingID).
			WithCreatedAt(base.Add(-time.Duration(i) * time.Hour)).BuildListItem()
	}

	t.Run("success: extra row yields a cursor at the last returned item", func(t *testing.T) {
		store := queriesmock.NewMockReviewReadStore(gomock.NewController(t))
		store.EXPECT().FindByListingFirstPage(gomock.Any(), listingID, int32(3), nil, nil).Return(items, nil)

		q := queries.NewReviewQueries(store)
		got, next, err := q.ListByListing(context.Background(), listingID, queries.ReviewFilters{}, nil, 2)

		require.NoError(t, err)
		assert.Len(t, got, 2)
		require.NotNil(t, next)

		ts, id, err := queries.DecodeAfterCursor(next.After)
		require.NoError(t, err)
		assert.Equal(t, items[1].ID, id)
		assert.True(t, items[1].CreatedAt.Equal(ts))
	})

	t.Run("success: cursor resumes with keyset read", func(t *testing.T) {
		store := queriesmock.NewMockReviewReadStore(gomock.NewController(t))
		cursor := queries.EncodeAfterCursor(items[1].CreatedAt, items[1].ID)
		store.EXPECT().
			FindByListingKeyset(gomock.Any(), listingID, items[1].CreatedAt, items[1].ID, int32(3), nil, nil).
			Return(items[2:], nil)

		q := queries.NewReviewQueries(store)
		got, next, err := q.ListByListing(context.Background(), listingID, queries.ReviewFilters{}, &queries.Cursor{After: cursor}, 2)

		require.NoError(t, err)
		assert.Len(t, got, 1)
		assert.Nil(t, next)
	})

	t.Run("error: malformed cursor", func(t *testing.T) {
		store := queriesmock.NewMockReviewReadStore(gomock.NewController(t))

		q := queries.NewReviewQueries(store)
		_, _, err := q.ListByListing(context.Background(), listingID, queries.ReviewFilters{}, &queries.Cursor{After: "garbage"}, 2)

		assert.ErrorIs(t, err, queries.ErrInvalidCursor)
	})
}

func TestCursorRoundTrip(t *testing.T) {
	ts := time.Date(2025, 3, 1, 12, 30, 15, 123456000, time.UTC)
	id := uuid.New()

	gotTS, gotID, err := queries.DecodeAfterCursor(queries.EncodeAfterCursor(ts, id))

	require.NoError(t, err)
	assert.True(t, ts.Equal(gotTS))
	assert.Equal(t, id, gotID)
}

func TestValidateLimit(t *testing.T) {
	assert.Equal(t, queries.DefaultListLimit, queries.ValidateLimit(0))
	assert.Equal(t, 7, queries.ValidateLimit(7))
	assert.Equal(t, queries.MaxListLimit, queries.ValidateLimit(10_000))
}
