package repository

import (
	"context"
	"time"

	"rental-booking/internal/infra"
	sqlc "rental-booking/internal/infra/sqlc/generated"
	"rental-booking/internal/pkg/pgconv"
	"rental-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

// Job errors longer than this are cut before storage.
const maxLastErrorLength = 1000

type NotificationWriteQueries interface {
	CreateNotificationJob(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateNotificationJobParams) error
	ClaimDueNotificationJobs(ctx context.Context, db sqlc.DBTX, arg sqlc.ClaimDueNotificationJobsParams) ([]sqlc.NotificationJobs, error)
	MarkNotificationJobSent(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkNotificationJobSentParams) error
	MarkNotificationJobFailed(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkNotificationJobFailedParams) error
}

type NotificationRepository struct {
	queries NotificationWriteQueries
}

func NewNotificationRepository(queries NotificationWriteQueries) *NotificationRepository {
	return &NotificationRepository{queries: queries}
}

func (r *NotificationRepository) Enqueue(ctx context.Context, tx sqlc.DBTX, job shared.NewNotificationJob) error {
	params := sqlc.CreateNotificationJobParams{
		Kind:    job.Kind,
		Topic:   job.Topic,
		Payload: job.Payload,
		Status:  shared.JobStatusQueued,
		RunAt:   pgconv.TimeToPgtype(job.RunAt),
	}

	if err := r.queries.CreateNotificationJob(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to create notification job", err)
	}

	return nil
}

// ClaimDue picks due jobs with SKIP LOCKED and moves their run_at to leaseUntil,
// so once the claim commits no other dispatcher sees them until the lease ends.
func (r *NotificationRepository) ClaimDue(ctx context.Context, tx sqlc.DBTX, now, leaseUntil time.Time, limit, maxAttempts int32) ([]shared.NotificationJob, error) {
	rows, err := r.queries.ClaimDueNotificationJobs(ctx, tx, sqlc.ClaimDueNotificationJobsParams{
		LeaseUntil:  pgconv.TimeToPgtype(leaseUntil),
		Now:         pgconv.TimeToPgtype(now),
		MaxAttempts: maxAttempts,
		Limit:       limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to claim notification jobs", err)
	}

	jobs := make([]shared.NotificationJob, len(rows))
	for i, row := range rows {
		jobs[i] = shared.NotificationJob{
			ID:       row.ID,
			Kind:     row.Kind,
			Topic:    row.Topic,
			Payload:  row.Payload,
			Attempts: row.Attempts,
			RunAt:    pgconv.TimeFromPgtype(row.RunAt),
		}
	}
	return jobs, nil
}

func (r *NotificationRepository) MarkSent(ctx context.Context, tx sqlc.DBTX, jobID uuid.UUID, now time.Time) error {
	err := r.queries.MarkNotificationJobSent(ctx, tx, sqlc.MarkNotificationJobSentParams{
		ID:        jobID,
		UpdatedAt: pgconv.TimeToPgtype(now),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to mark notification job sent", err)
	}
	return nil
}

func (r *NotificationRepository) MarkFailed(ctx context.Context, tx sqlc.DBTX, jobID uuid.UUID, lastError string, retryAt, now time.Time) error {
	if len(lastError) > maxLastErrorLength {
		lastError = lastError[:maxLastErrorLength]
	}

	err := r.queries.MarkNotificationJobFailed(ctx, tx, sqlc.MarkNotificationJobFailedParams{
		ID:        jobID,
		LastError: pgconv.StringToPgtype(lastError),
		RunAt:     pgconv.TimeToPgtype(retryAt),
		UpdatedAt: pgconv.TimeToPgtype(now),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to mark notification job failed", err)
	}
	return nil
}
