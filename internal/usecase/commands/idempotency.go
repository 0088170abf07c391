package commands

import (
	"context"

	"rental-booking/internal/pkg/clock"
	"rental-booking/internal/usecase/shared"
)

type IdempotencyCommands interface {
	PurgeExpired(ctx context.Context) (int64, error)
}

type idempotencyCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewIdempotencyCommands(uow shared.UnitOfWork, clk clock.Clock) IdempotencyCommands {
	return &idempotencyCommandsImpl{uow: uow, clock: clk}
}

func (uc *idempotencyCommandsImpl) PurgeExpired(ctx context.Context) (int64, error) {
	var purged int64
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		n, err := tx.Idempotency().DeleteExpired(ctx, tx.DB(), uc.clock.Now())
		purged = n
		return err
	})
	return purged, err
}
