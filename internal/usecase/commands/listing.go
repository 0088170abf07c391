package commands

import (
	"context"

	"rental-booking/internal/domain/listing"
	"rental-booking/internal/domain/money"
	"rental-booking/internal/pkg/clock"
	"rental-booking/internal/pkg/patch"
	"rental-booking/internal/usecase/queries"
	"rental-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

// DefaultServiceFeeRate applies when a host does not set one.
const DefaultServiceFeeRate = "10.00"

// Amounts are decimal strings with at most two fraction digits.
type CreateListingInput struct {
	Title          string
	Description    string
	NightlyPrice   string
	CleaningFee    string
	ServiceFeeRate *string
	MinNights      int
	MaxNights      *int
	MaxGuests      int
}

// UpdateListingInput changes only the fields that are set.
type UpdateListingInput struct {
	Title          *string
	Description    *string
	NightlyPrice   *string
	CleaningFee    *string
	ServiceFeeRate *string
	MinNights      *int
	MaxNights      *int
	MaxGuests      *int
}

type ListingCommands interface {
	CreateListing(ctx context.Context, hostID uuid.UUID, in CreateListingInput) (*queries.ListingView, error)
	UpdateListing(ctx context.Context, id, hostID uuid.UUID, in UpdateListingInput) (*queries.ListingView, error)
	ChangeStatus(ctx context.Context, id, actorID uuid.UUID, actorRole, status string) (*queries.ListingView, error)
}

type listingCommandsImpl struct {
	uow     shared.UnitOfWork
	queries queries.ListingQueries
	clock   clock.Clock
}

func NewListingCommands(uow shared.UnitOfWork, listingQueries queries.ListingQueries, clk clock.Clock) ListingCommands {
	return &listingCommandsImpl{uow: uow, queries: listingQueries, clock: clk}
}

func (uc *listingCommandsImpl) CreateListing(ctx context.Context, hostID uuid.UUID, in CreateListingInput) (*queries.ListingView, error) {
	nightly, err := money.Parse(in.NightlyPrice)
	if err != nil {
		return nil, shared.Classify(err)
	}
	cleaning, err := money.Parse(in.CleaningFee)
	if err != nil {
		return nil, shared.Classify(err)
	}
	rate, err := money.ParseRate(patch.Coalesce(in.ServiceFeeRate, DefaultServiceFeeRate))
	if err != nil {
		return nil, shared.Classify(err)
	}

	l, err := listing.NewListing(hostID, listing.Params{
		Title:          in.Title,
		Description:    in.Description,
		NightlyPrice:   nightly,
		CleaningFee:    cleaning,
		ServiceFeeRate: rate,
		MinNights:      in.MinNights,
		MaxNights:      in.MaxNights,
		MaxGuests:      in.MaxGuests,
	}, uc.clock.Now())
	if err != nil {
		return nil, shared.Classify(err)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Listings().Create(ctx, tx.DB(), l)
	})
	if err != nil {
		return nil, shared.Classify(err)
	}
	return uc.queries.GetByID(ctx, l.ID())
}

// Existing reservations keep their price snapshot whatever changes here.
func (uc *listingCommandsImpl) UpdateListing(ctx context.Context, id, hostID uuid.UUID, in UpdateListingInput) (*queries.ListingView, error) {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		l, err := tx.Listings().FindByID(ctx, tx.DB(), id)
		if err != nil {
			return err
		}
		if err := l.EnsureOwnedBy(hostID); err != nil {
			return err
		}

		p := l.Params()
		patch.Apply(&p.Title, in.Title)
		patch.Apply(&p.Description, in.Description)
		if err := patch.ApplyMapped(&p.NightlyPrice, in.NightlyPrice, money.Parse); err != nil {
			return err
		}
		if err := patch.ApplyMapped(&p.CleaningFee, in.CleaningFee, money.Parse); err != nil {
			return err
		}
		if err := patch.ApplyMapped(&p.ServiceFeeRate, in.ServiceFeeRate, money.ParseRate); err != nil {
			return err
		}
		patch.Apply(&p.MinNights, in.MinNights)
		if in.MaxNights != nil {
			p.MaxNights = in.MaxNights
		}
		patch.Apply(&p.MaxGuests, in.MaxGuests)

		if err := l.Update(p, uc.clock.Now()); err != nil {
			return err
		}
		return tx.Listings().Update(ctx, tx.DB(), l)
	})
	if err != nil {
		return nil, shared.Classify(err)
	}
	return uc.queries.GetByID(ctx, id)
}

func (uc *listingCommandsImpl) ChangeStatus(ctx context.Context, id, actorID uuid.UUID, actorRole, status string) (*queries.ListingView, error) {
	to, err := listing.NewStatus(status)
	if err != nil {
		return nil, shared.Classify(err)
	}
	byAdmin := actorRole == queries.RoleAdmin

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		l, err := tx.Listings().FindByID(ctx, tx.DB(), id)
		if err != nil {
			return err
		}
		if !byAdmin {
			if err := l.EnsureOwnedBy(actorID); err != nil {
				return err
			}
		}
		if err := l.ChangeStatus(to, byAdmin, uc.clock.Now()); err != nil {
			return err
		}
		return tx.Listings().Update(ctx, tx.DB(), l)
	})
	if err != nil {
		return nil, shared.Classify(err)
	}
	return uc.queries.GetByID(ctx, id)
}
