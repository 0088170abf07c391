//go:build unit

package readstore_test

import (
	"context"
	"testing"
	"time"

	"rental-booking/internal/infra"
	"rental-booking/internal/domain/money"
	"rental-booking/internal/infra/readstore"
	sqlc "rental-booking/internal/infra/sqlc/generated"
	"rental-booking/internal/usecase/queries"
	readstoremock "rental-booking/tests/mock/readstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func listingRow(hostID uuid.UUID) sqlc.Listings {
	now := time.Now()
	return sqlc.Listings{
		ID:                uuid.New(),
		HostID:            hostID,
		Title:             "Seaside Loft",
		Description:       "Two rooms by the beach",
		NightlyPriceCents: 10000,
		CleaningFeeCents:  2000,
		ServiceFeeBps:     1000,
		MinNights:         1,
		MaxNights:         pgtype.Int4{Int32: 14, Valid: true},
		MaxGuests:         4,
		Status:            "active",
		CreatedAt:         pgtype.Timestamptz{Time: now, Valid: true},
		UpdatedAt:         pgtype.Timestamptz{Time: now, Valid: true},
	}
}

func TestListingReadStore_FindByID(t *testing.T) {
	ctx := context.Background()
	row := listingRow(uuid.New())

	testCases := []struct {
		name       string
		mockRow    sqlc.Listings
		mockErr    error
		expectKind infra.RepositoryErrorKind
	}{
		{
			name:    "success: listing found",
			mockRow: row,
		},
		{
			name:       "error: listing not found",
			mockErr:    pgx.ErrNoRows,
			expectKind: infra.KindNotFound,
		},
		{
			name:       "error: database error",
			mockErr:    errDBConnectionLost,
			expectKind: infra.KindDBFailure,
		},
		{
			name: "error: negative price in row",
			mockRow: func() sqlc.Listings {
				r := row
				r.NightlyPriceCents = -1
				return r
			}(),
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := readstoremock.NewMockListingReadQueries(ctrl)
			store := readstore.NewListingReadStore(mockQueries, &mockDBTX{})

			mockQueries.EXPECT().GetListingByID(ctx, gomock.Any(), row.ID).Return(tc.mockRow, tc.mockErr)

			view, err := store.FindByID(ctx, row.ID)

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				assert.Nil(t, view)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, row.ID, view.ID)
			assert.Equal(t, "100.00", view.NightlyPrice.String())
			assert.Equal(t, "20.00", view.CleaningFee.String())
			assert.Equal(t, int64(1000), view.ServiceFeeRate.BasisPoints())
			require.NotNil(t, view.MaxNights)
			assert.Equal(t, 14, *view.MaxNights)
			assert.Equal(t, 4, view.MaxGuests)
		})
	}
}

func TestListingReadStore_ListByHost(t *testing.T) {
	ctx := context.Background()
	hostID := uuid.New()

	t.Run("success: maps every row", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := readstoremock.NewMockListingReadQueries(ctrl)
		store := readstore.NewListingReadStore(mockQueries, &mockDBTX{})

		withoutMax := listingRow(hostID)
		withoutMax.MaxNights = pgtype.Int4{}
		mockQueries.EXPECT().
			ListListingsByHost(ctx, gomock.Any(), sqlc.ListListingsByHostParams{HostID: hostID, Limit: 20, Offset: 40}).
			Return([]sqlc.Listings{listingRow(hostID), withoutMax}, nil)

		views, err := store.ListByHost(ctx, hostID, 20, 40)

		require.NoError(t, err)
		require.Len(t, views, 2)
		assert.NotNil(t, views[0].MaxNights)
		assert.Nil(t, views[1].MaxNights)
	})

	t.Run("error: database error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := readstoremock.NewMockListingReadQueries(ctrl)
		store := readstore.NewListingReadStore(mockQueries, &mockDBTX{})

		mockQueries.EXPECT().ListListingsByHost(ctx, gomock.Any(), gomock.Any()).Return(nil, errDBConnectionLost)

		views, err := store.ListByHost(ctx, hostID, 20, 0)

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
		assert.Nil(t, views)
	})
}

func TestListingReadStore_Search(t *testing.T) {
	ctx := context.Background()
	hostID := uuid.New()
	minPrice := money.MustFromCents(5000)
	maxPrice := money.MustFromCents(20000)

	testCases := []struct {
		name   string
		search queries.ListingSearch
		want   sqlc.SearchListingsParams
	}{
		{
			name:   "success: empty search sorts newest first",
			search: queries.ListingSearch{},
			want:   sqlc.SearchListingsParams{Sort: "created_desc", PageLimit: 20, PageOffset: 0},
		},
		{
			name: "success: every filter is bound",
			search: queries.ListingSearch{
				Guests:    3,
				HostID:    &hostID,
				MinPrice:  &minPrice,
				MaxPrice:  &maxPrice,
				SortBy:    queries.ListingSortPrice,
				SortOrder: queries.SortAsc,
			},
			want: sqlc.SearchListingsParams{
				MinGuests:  3,
				HostID:     pgtype.UUID{Bytes: hostID, Valid: true},
				MinPrice:   pgtype.Int8{Int64: 5000, Valid: true},
				MaxPrice:   pgtype.Int8{Int64: 20000, Valid: true},
				Sort:       "price_asc",
				PageLimit:  20,
				PageOffset: 0,
			},
		},
		{
			name:   "success: oldest first",
			search: queries.ListingSearch{SortBy: queries.ListingSortCreatedAt, SortOrder: queries.SortAsc},
			want:   sqlc.SearchListingsParams{Sort: "created_asc", PageLimit: 20, PageOffset: 0},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := readstoremock.NewMockListingReadQueries(ctrl)
			store := readstore.NewListingReadStore(mockQueries, &mockDBTX{})

			mockQueries.EXPECT().SearchListings(ctx, gomock.Any(), tc.want).Return([]sqlc.Listings{listingRow(hostID)}, nil)

			views, err := store.Search(ctx, tc.search, 20, 0)

			require.NoError(t, err)
			require.Len(t, views, 1)
			assert.Equal(t, hostID, views[0].HostID)
		})
	}

	t.Run("error: database error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := readstoremock.NewMockListingReadQueries(ctrl)
		store := readstore.NewListingReadStore(mockQueries, &mockDBTX{})

		mockQueries.EXPECT().SearchListings(ctx, gomock.Any(), gomock.Any()).Return(nil, errDBConnectionLost)

		views, err := store.Search(ctx, queries.ListingSearch{}, 20, 0)

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
		assert.Nil(t, views)
	})
}

func TestListingReadStore_Count(t *testing.T) {
	ctx := context.Background()

	t.Run("success: price bounds become nullable params", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := readstoremock.NewMockListingReadQueries(ctrl)
		store := readstore.NewListingReadStore(mockQueries, &mockDBTX{})

		maxPrice := money.MustFromCents(15000)
		mockQueries.EXPECT().
			CountListings(ctx, gomock.Any(), sqlc.CountListingsParams{MinGuests: 2, MaxPrice: pgtype.Int8{Int64: 15000, Valid: true}}).
			Return(int64(7), nil)

		total, err := store.Count(ctx, queries.ListingSearch{Guests: 2, MaxPrice: &maxPrice})

		require.NoError(t, err)
		assert.Equal(t, int64(7), total)
	})

	t.Run("error: database error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := readstoremock.NewMockListingReadQueries(ctrl)
		store := readstore.NewListingReadStore(mockQueries, &mockDBTX{})

		mockQueries.EXPECT().CountListings(ctx, gomock.Any(), gomock.Any()).Return(int64(0), errDBConnectionLost)

		_, err := store.Count(ctx, queries.ListingSearch{})

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}
