//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"

	"rental-booking/internal/infra"
	"rental-booking/internal/infra/repository"
	sqlc "rental-booking/internal/infra/sqlc/generated"
	"rental-booking/tests/common/builder"
	repositorymock "rental-booking/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestReviewRepository_Create(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		queryErr   error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success: review created"},
		{
			name:       "error: second review for the same stay",
			queryErr:   &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"},
			expectKind: infra.KindDuplicateKey,
		},
		{
			name:       "error: database failure",
			queryErr:   errors.New("database connection error"),
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			q := repositorymock.NewMockReviewWriteQueries(ctrl)
			repo := repository.NewReviewRepository(q)

			rev, err := builder.NewReviewBuilder().BuildDomain()
			require.NoError(t, err)

			q.EXPECT().CreateReview(ctx, gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateReviewParams) error {
					assert.Equal(t, rev.ID(), arg.ID)
					assert.Equal(t, rev.ReservationID(), arg.ReservationID)
					assert.Equal(t, int32(5), arg.Rating)
					return tc.queryErr
				})

			err = repo.Create(ctx, nil, rev)
			if tc.expectKind == "" {
				require.NoError(t, err)
				return
			}
			assert.True(t, infra.IsKind(err, tc.expectKind), "got %v", err)
		})
	}
}

func TestReviewRepository_FindByID(t *testing.T) {
	ctx := context.Background()

	t.Run("success: row converted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := repositorymock.NewMockReviewWriteQueries(ctrl)
		repo := repository.NewReviewRepository(q)

		b := builder.NewReviewBuilder()
		q.EXPECT().GetReviewByID(ctx, gomock.Any(), b.ID).Return(b.BuildInfra(), nil)

		rev, err := repo.FindByID(ctx, nil, b.ID)
		require.NoError(t, err)
		assert.Equal(t, b.ID, rev.ID())
		assert.Equal(t, b.GuestID, rev.GuestID())
		assert.Equal(t, b.ListingID, rev.ListingID())
	})

	t.Run("error: not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := repositorymock.NewMockReviewWriteQueries(ctrl)
		repo := repository.NewReviewRepository(q)

		q.EXPECT().GetReviewByID(ctx, gomock.Any(), gomock.Any()).Return(sqlc.Reviews{}, pgx.ErrNoRows)

		_, err := repo.FindByID(ctx, nil, uuid.New())
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("error: rating outside 1..5 in storage", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := repositorymock.NewMockReviewWriteQueries(ctrl)
		repo := repository.NewReviewRepository(q)

		row := builder.NewReviewBuilder().BuildInfra()
		row.Rating = 9
		q.EXPECT().GetReviewByID(ctx, gomock.Any(), row.ID).Return(row, nil)

		_, err := repo.FindByID(ctx, nil, row.ID)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestReviewRepository_UpdateDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("success: update forwards edited fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := repositorymock.NewMockReviewWriteQueries(ctrl)
		repo := repository.NewReviewRepository(q)

		rev, err := builder.NewReviewBuilder().BuildDomain()
		require.NoError(t, err)

		q.EXPECT().UpdateReview(ctx, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.UpdateReviewParams) error {
				assert.Equal(t, rev.ID(), arg.ID)
				assert.Equal(t, rev.Comment().String(), arg.Comment)
				return nil
			})

		require.NoError(t, repo.Update(ctx, nil, rev))
	})

	t.Run("error: delete failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := repositorymock.NewMockReviewWriteQueries(ctrl)
		repo := repository.NewReviewRepository(q)

		q.EXPECT().DeleteReview(ctx, gomock.Any(), gomock.Any()).Return(errors.New("boom"))

		err := repo.Delete(ctx, nil, uuid.New())
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}
