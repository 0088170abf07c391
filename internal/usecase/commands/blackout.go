package commands

import (
	"context"
	"time"

	"rental-booking/internal/domain/blackout"
	"rental-booking/internal/infra"
	"rental-booking/internal/pkg/clock"
	"rental-booking/internal/pkg/errs"
	"rental-booking/internal/usecase/queries"
	"rental-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type BlackoutCommands interface {
	BlockDate(ctx context.Context, listingID, hostID uuid.UUID, date time.Time, reason string) (*queries.BlackoutView, error)
	UnblockDate(ctx context.Context, listingID, hostID uuid.UUID, date time.Time) error
}

type blackoutCommandsImpl struct {
	uow   shared.UnitOfWork
	cache shared.CalendarCache
	clock clock.Clock
}

func NewBlackoutCommands(uow shared.UnitOfWork, cache shared.CalendarCache, clk clock.Clock) BlackoutCommands {
	return &blackoutCommandsImpl{uow: uow, cache: cache, clock: clk}
}

// BlockDate does not touch reservations already holding the night.
func (uc *blackoutCommandsImpl) BlockDate(ctx context.Context, listingID, hostID uuid.UUID, date time.Time, reason string) (*queries.BlackoutView, error) {
	b, err := blackout.NewBlackout(listingID, date, reason, uc.clock.Now())
	if err != nil {
		return nil, shared.Classify(err)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		l, err := tx.Listings().FindByID(ctx, tx.DB(), listingID)
		if err != nil {
			return err
		}
		if err := l.EnsureOwnedBy(hostID); err != nil {
			return err
		}
		if err := tx.Blackouts().Create(ctx, tx.DB(), b); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Mark(blackout.ErrAlreadyBlocked, shared.ErrConflict)
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, shared.Classify(err)
	}

	invalidateCalendar(ctx, uc.cache, listingID)
	return &queries.BlackoutView{
		ID:        b.ID(),
		ListingID: b.ListingID(),
		Date:      b.Date(),
		Reason:    b.Reason(),
		CreatedAt: b.CreatedAt(),
	}, nil
}

func (uc *blackoutCommandsImpl) UnblockDate(ctx context.Context, listingID, hostID uuid.UUID, date time.Time) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		l, err := tx.Listings().FindByID(ctx, tx.DB(), listingID)
		if err != nil {
			return err
		}
		if err := l.EnsureOwnedBy(hostID); err != nil {
			return err
		}
		if err := tx.Blackouts().Delete(ctx, tx.DB(), listingID, date); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(blackout.ErrNotBlocked, shared.ErrNotFound)
			}
			return err
		}
		return nil
	})
	if err != nil {
		return shared.Classify(err)
	}

	invalidateCalendar(ctx, uc.cache, listingID)
	return nil
}
