package commands

import (
	"context"

	"rental-booking/internal/domain/reservation"
	"rental-booking/internal/domain/stay"
	"rental-booking/internal/pkg/clock"
	"rental-booking/internal/usecase/shared"
)

// CompletionCommands completes confirmed stays whose check-out day has passed.
// It backs both the periodic sweep and the lazy pass run by reservation list reads.
type CompletionCommands interface {
	CompleteDue(ctx context.Context, scope shared.CompletionScope) (int, error)
}

type completionCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewCompletionCommands(uow shared.UnitOfWork, clk clock.Clock) CompletionCommands {
	return &completionCommandsImpl{uow: uow, clock: clk}
}

// COMPLETED still occupies the calendar, so no cache entry goes stale here.
func (uc *completionCommandsImpl) CompleteDue(ctx context.Context, scope shared.CompletionScope) (int, error) {
	now := uc.clock.Now()
	today := stay.Day(now)

	var completed int
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		done, err := tx.Reservations().CompleteDue(ctx, tx.DB(), today, now, scope)
		if err != nil {
			return err
		}
		for _, c := range done {
			ev := reservation.Event{
				ReservationID: c.ID,
				ListingID:     c.ListingID,
				GuestID:       c.GuestID,
				HostID:        c.HostID,
				Status:        reservation.StatusCompleted,
				PaymentStatus: c.PaymentStatus,
				OccurredAt:    now,
			}
			if err := enqueueEvent(ctx, tx, ev); err != nil {
				return err
			}
		}
		completed = len(done)
		return nil
	})
	if err != nil {
		return 0, shared.Classify(err)
	}
	return completed, nil
}
