package commands

import (
	"context"
	"log/slog"
	"time"

	"rental-booking/internal/pkg/clock"
	"rental-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

const maxRetryBackoff = 30 * time.Minute

// ClaimLease is how long a claimed job stays invisible to other dispatchers.
// Jobs whose outcome was never recorded become due again once it runs out.
const ClaimLease = 5 * time.Minute

type DispatchResult struct {
	Sent   int
	Failed int
}

// OutboxCommands publishes queued reservation events. Jobs are claimed in one
// short transaction, published with no transaction open, then marked in a
// second one. Delivery is at-least-once: a crash before marking re-sends the
// batch after ClaimLease.
type OutboxCommands interface {
	DispatchDue(ctx context.Context) (*DispatchResult, error)
}

type outboxCommandsImpl struct {
	uow         shared.UnitOfWork
	publisher   shared.EventPublisher
	clock       clock.Clock
	batchSize   int32
	maxAttempts int32
}

func NewOutboxCommands(uow shared.UnitOfWork, publisher shared.EventPublisher, clk clock.Clock, batchSize, maxAttempts int32) OutboxCommands {
	return &outboxCommandsImpl{
		uow:         uow,
		publisher:   publisher,
		clock:       clk,
		batchSize:   batchSize,
		maxAttempts: maxAttempts,
	}
}

func (uc *outboxCommandsImpl) DispatchDue(ctx context.Context) (*DispatchResult, error) {
	now := uc.clock.Now()

	var jobs []shared.NotificationJob
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		jobs, err = tx.Notifications().ClaimDue(ctx, tx.DB(), now, now.Add(ClaimLease), uc.batchSize, uc.maxAttempts)
		return err
	})
	if err != nil {
		return nil, err
	}
	if len(jobs) == 0 {
		return &DispatchResult{}, nil
	}

	failures := make(map[uuid.UUID]string, len(jobs))
	for _, job := range jobs {
		if perr := uc.publisher.Publish(ctx, job.Topic, job.Payload); perr != nil {
			slog.WarnContext(ctx, "event publish failed",
				"job_id", job.ID,
				"topic", job.Topic,
				"attempt", job.Attempts+1,
				"error", perr.Error())
			failures[job.ID] = perr.Error()
		}
	}

	var result DispatchResult
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		result = DispatchResult{}
		for _, job := range jobs {
			if msg, failed := failures[job.ID]; failed {
				retryAt := now.Add(RetryBackoff(job.Attempts))
				if err := tx.Notifications().MarkFailed(ctx, tx.DB(), job.ID, msg, retryAt, now); err != nil {
					return err
				}
				result.Failed++
				continue
			}
			if err := tx.Notifications().MarkSent(ctx, tx.DB(), job.ID, now); err != nil {
				return err
			}
			result.Sent++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// RetryBackoff doubles from 10s per previous attempt, capped at 30 minutes.
func RetryBackoff(attempts int32) time.Duration {
	d := 10 * time.Second
	for i := int32(0); i < attempts && d < maxRetryBackoff; i++ {
		d *= 2
	}
	return min(d, maxRetryBackoff)
}
