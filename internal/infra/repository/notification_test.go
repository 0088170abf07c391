//go:build unit

package repository_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"rental-booking/internal/infra"
	"rental-booking/internal/infra/repository"
	sqlc "rental-booking/internal/infra/sqlc/generated"
	"rental-booking/internal/pkg/pgconv"
	repositorymock "rental-booking/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNotificationRepository_ClaimDue(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 2, 1, 9, 0, 0, 0, time.UTC)
	lease := now.Add(5 * time.Minute)

	t.Run("success: lease and bounds reach the query", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := repositorymock.NewMockNotificationWriteQueries(ctrl)
		repo := repository.NewNotificationRepository(q)

		jobID := uuid.New()
		q.EXPECT().ClaimDueNotificationJobs(ctx, gomock.Any(), sqlc.ClaimDueNotificationJobsParams{
			LeaseUntil:  pgconv.TimeToPgtype(lease),
			Now:         pgconv.TimeToPgtype(now),
			MaxAttempts: 5,
			Limit:       50,
		}).Return([]sqlc.NotificationJobs{{
			ID:       jobID,
			Kind:     "reservation.pending",
			Topic:    "reservations",
			Payload:  []byte(`{"id":"x"}`),
			Attempts: 1,
			RunAt:    pgconv.TimeToPgtype(lease),
		}}, nil)

		jobs, err := repo.ClaimDue(ctx, nil, now, lease, 50, 5)

		require.NoError(t, err)
		require.Len(t, jobs, 1)
		assert.Equal(t, jobID, jobs[0].ID)
		assert.Equal(t, int32(1), jobs[0].Attempts)
		assert.True(t, lease.Equal(jobs[0].RunAt))
	})

	t.Run("error: serialization failure keeps its kind", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := repositorymock.NewMockNotificationWriteQueries(ctrl)
		repo := repository.NewNotificationRepository(q)

		q.EXPECT().ClaimDueNotificationJobs(ctx, gomock.Any(), gomock.Any()).Return(nil, &pgconn.PgError{Code: "40001"})

		jobs, err := repo.ClaimDue(ctx, nil, now, lease, 50, 5)

		require.Error(t, err)
		assert.Nil(t, jobs)
	})
}

func TestNotificationRepository_MarkFailed(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 2, 1, 9, 0, 0, 0, time.UTC)

	t.Run("success: long errors are truncated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := repositorymock.NewMockNotificationWriteQueries(ctrl)
		repo := repository.NewNotificationRepository(q)

		q.EXPECT().MarkNotificationJobFailed(ctx, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.MarkNotificationJobFailedParams) error {
				assert.Len(t, arg.LastError.String, 1000)
				assert.True(t, now.Add(time.Minute).Equal(arg.RunAt.Time))
				return nil
			})

		require.NoError(t, repo.MarkFailed(ctx, nil, uuid.New(), strings.Repeat("e", 1500), now.Add(time.Minute), now))
	})

	t.Run("error: database failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := repositorymock.NewMockNotificationWriteQueries(ctrl)
		repo := repository.NewNotificationRepository(q)

		q.EXPECT().MarkNotificationJobFailed(ctx, gomock.Any(), gomock.Any()).Return(&pgconn.PgError{Code: "08006"})

		err := repo.MarkFailed(ctx, nil, uuid.New(), "boom", now, now)

		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}
