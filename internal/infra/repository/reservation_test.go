//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"rental-booking/internal/domain/reservation"
	"rental-booking/internal/domain/stay"
	"rental-booking/internal/infra"
	"rental-booking/internal/infra/repository"
	sqlc "rental-booking/internal/infra/sqlc/generated"
	"rental-booking/internal/pkg/pgconv"
	"rental-booking/internal/usecase/shared"
	"rental-booking/tests/common/builder"
	repositorymock "rental-booking/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func day(s string) time.Time {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return t
}

func reservationRow(id uuid.UUID, status string) sqlc.Reservations {
	now := time.Now()
	return sqlc.Reservations{
		ID:               id,
		ListingID:        uuid.New(),
		GuestID:          uuid.New(),
		HostID:           uuid.New(),
		CheckIn:          pgconv.DateToPgtype(day("2025-03-02")),
		CheckOut:         pgconv.DateToPgtype(day("2025-03-05")),
		Guests:           2,
		Status:           status,
		NightlyRateCents: 10000,
		Nights:           3,
		SubtotalCents:    30000,
		CleaningFeeCents: 2000,
		ServiceFeeBps:    1000,
		ServiceFeeCents:  3000,
		TotalCents:       35000,
		PaymentStatus:    "pending",
		CreatedAt:        pgconv.TimeToPgtype(now),
		UpdatedAt:        pgconv.TimeToPgtype(now),
	}
}

func TestReservationRepository_Create(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		queryErr   error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success: row inserted"},
		{
			name:       "error: exclusion constraint reports overlapping stay",
			queryErr:   &pgconn.PgError{Code: "23P01", Message: "conflicting key value violates exclusion constraint"},
			expectKind: infra.KindConflict,
		},
		{
			name:       "error: unknown listing",
			queryErr:   &pgconn.PgError{Code: "23503", Message: "violates foreign key constraint"},
			expectKind: infra.KindForeignKeyViolated,
		},
		{
			name:       "error: connection failure",
			queryErr:   errors.New("connection reset by peer"),
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			q := repositorymock.NewMockReservationWriteQueries(ctrl)
			repo := repository.NewReservationRepository(q)

			res := builder.NewReservationBuilder().WithStay("2025-03-02", "2025-03-05").BuildDomain()
			q.EXPECT().CreateReservation(ctx, gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateReservationParams) error {
					assert.Equal(t, res.ID(), arg.ID)
					assert.Equal(t, "pending", arg.Status)
					assert.Equal(t, int32(3), arg.Nights)
					return tc.queryErr
				})

			err := repo.Create(ctx, nil, res)
			if tc.expectKind == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, infra.IsKind(err, tc.expectKind), "got %v", err)
		})
	}
}

func TestReservationRepository_FindByIDForUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("success: row converted to aggregate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := repositorymock.NewMockReservationWriteQueries(ctrl)
		repo := repository.NewReservationRepository(q)

		id := uuid.New()
		q.EXPECT().GetReservationByIDForUpdate(ctx, gomock.Any(), id).Return(reservationRow(id, "confirmed"), nil)

		res, err := repo.FindByIDForUpdate(ctx, nil, id)
		require.NoError(t, err)
		assert.Equal(t, id, res.ID())
		assert.Equal(t, reservation.StatusConfirmed, res.Status())
		assert.Equal(t, 3, res.Stay().Nights())
	})

	t.Run("error: missing row is not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := repositorymock.NewMockReservationWriteQueries(ctrl)
		repo := repository.NewReservationRepository(q)

		q.EXPECT().GetReservationByIDForUpdate(ctx, gomock.Any(), gomock.Any()).Return(sqlc.Reservations{}, pgx.ErrNoRows)

		_, err := repo.FindByIDForUpdate(ctx, nil, uuid.New())
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("error: unknown status is a db failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := repositorymock.NewMockReservationWriteQueries(ctrl)
		repo := repository.NewReservationRepository(q)

		id := uuid.New()
		q.EXPECT().GetReservationByIDForUpdate(ctx, gomock.Any(), id).Return(reservationRow(id, "on_hold"), nil)

		_, err := repo.FindByIDForUpdate(ctx, nil, id)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestReservationRepository_ListInRange(t *testing.T) {
	ctx := context.Background()
	listingID := uuid.New()
	window, err := stay.NewRange(day("2025-03-01"), day("2025-03-10"))
	require.NoError(t, err)

	t.Run("success: rows become bookings", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := repositorymock.NewMockReservationWriteQueries(ctrl)
		repo := repository.NewReservationRepository(q)

		rowID := uuid.New()
		q.EXPECT().ListListingReservationsInRange(ctx, gomock.Any(), sqlc.ListListingReservationsInRangeParams{
			ListingID:  listingID,
			Statuses:   []string{"pending", "confirmed"},
			RangeStart: pgconv.DateToPgtype(day("2025-03-01")),
			RangeEnd:   pgconv.DateToPgtype(day("2025-03-10")),
		}).Return([]sqlc.ListListingReservationsInRangeRow{{
			ID:       rowID,
			CheckIn:  pgconv.DateToPgtype(day("2025-03-02")),
			CheckOut: pgconv.DateToPgtype(day("2025-03-05")),
			Status:   "confirmed",
		}}, nil)

		bookings, err := repo.ListInRange(ctx, nil, listingID, window, reservation.BlockingStatuses())
		require.NoError(t, err)
		require.Len(t, bookings, 1)
		assert.Equal(t, rowID, bookings[0].ReservationID)
		assert.Equal(t, reservation.StatusConfirmed, bookings[0].Status)
		assert.Equal(t, 3, bookings[0].Stay.Nights())
	})

	t.Run("error: inverted dates in storage", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := repositorymock.NewMockReservationWriteQueries(ctrl)
		repo := repository.NewReservationRepository(q)

		q.EXPECT().ListListingReservationsInRange(ctx, gomock.Any(), gomock.Any()).Return([]sqlc.ListListingReservationsInRangeRow{{
			ID:       uuid.New(),
			CheckIn:  pgconv.DateToPgtype(day("2025-03-05")),
			CheckOut: pgconv.DateToPgtype(day("2025-03-02")),
			Status:   "pending",
		}}, nil)

		_, err := repo.ListInRange(ctx, nil, listingID, window, reservation.BlockingStatuses())
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestReservationRepository_CompleteDue(t *testing.T) {
	ctx := context.Background()
	today := day("2025-03-10")
	now := today.Add(9 * time.Hour)

	t.Run("success: scoped to guest", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := repositorymock.NewMockReservationWriteQueries(ctrl)
		repo := repository.NewReservationRepository(q)

		guestID := uuid.New()
		done := sqlc.CompleteDueReservationsRow{ID: uuid.New(), ListingID: uuid.New(), GuestID: guestID, HostID: uuid.New(), PaymentStatus: "paid"}
		q.EXPECT().CompleteDueReservations(ctx, gomock.Any(), sqlc.CompleteDueReservationsParams{
			ToStatus:     "completed",
			Now:          pgconv.TimeToPgtype(now),
			FromStatuses: []string{"confirmed"},
			Today:        pgconv.DateToPgtype(today),
			GuestID:      pgconv.UUIDPtrToPgtype(&guestID),
			HostID:       pgconv.UUIDPtrToPgtype(nil),
			BatchSize:    50,
		}).Return([]sqlc.CompleteDueReservationsRow{done}, nil)

		out, err := repo.CompleteDue(ctx, nil, today, now, shared.CompletionScope{GuestID: &guestID, Limit: 50})
		require.NoError(t, err)
		require.Len(t, out, 1)
		assert.Equal(t, done.ID, out[0].ID)
		assert.Equal(t, "paid", out[0].PaymentStatus)
	})

	t.Run("error: query failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := repositorymock.NewMockReservationWriteQueries(ctrl)
		repo := repository.NewReservationRepository(q)

		q.EXPECT().CompleteDueReservations(ctx, gomock.Any(), gomock.Any()).Return(nil, errors.New("timeout"))

		_, err := repo.CompleteDue(ctx, nil, today, now, shared.CompletionScope{})
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}
