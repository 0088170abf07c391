package worker

import (
	"context"
	"log/slog"
	"time"

	"rental-booking/internal/usecase/commands"
	"rental-booking/internal/usecase/shared"
)

// CompletionJob marks stays whose checkout has passed as completed, in batches.
func CompletionJob(cmds commands.CompletionCommands, interval time.Duration, batch int32) Job {
	return Job{
		Name:     "reservation-completion",
		Interval: interval,
		Run: func(ctx context.Context) error {
			n, err := cmds.CompleteDue(ctx, shared.CompletionScope{Limit: batch})
			if err != nil {
				return err
			}
			if n > 0 {
				slog.InfoContext(ctx, "reservations completed", "count", n)
			}
			return nil
		},
	}
}

func IdempotencyPurgeJob(cmds commands.IdempotencyCommands, interval time.Duration) Job {
	return Job{
		Name:     "idempotency-purge",
		Interval: interval,
		Run: func(ctx context.Context) error {
			n, err := cmds.PurgeExpired(ctx)
			if err != nil {
				return err
			}
			if n > 0 {
				slog.InfoContext(ctx, "expired idempotency keys purged", "count", n)
			}
			return nil
		},
	}
}

func OutboxJob(cmds commands.OutboxCommands, interval time.Duration) Job {
	return Job{
		Name:     "outbox-dispatch",
		Interval: interval,
		Run: func(ctx context.Context) error {
			res, err := cmds.DispatchDue(ctx)
			if err != nil {
				return err
			}
			if res != nil && res.Failed > 0 {
				slog.WarnContext(ctx, "outbox delivery failures", "sent", res.Sent, "failed", res.Failed)
			}
			return nil
		},
	}
}
