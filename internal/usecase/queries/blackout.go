package queries

import (
	"context"
	"time"

	"rental-booking/internal/domain/stay"
	"rental-booking/internal/pkg/errs"
	"rental-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrListingAccess = errs.New("listing belongs to another host")

type BlackoutReadStore interface {
	ListByListing(ctx context.Context, listingID uuid.UUID, window stay.Range) ([]*BlackoutView, error)
}

type BlackoutQueries interface {
	List(ctx context.Context, actorID uuid.UUID, actorRole string, listingID uuid.UUID, from, to time.Time) ([]*BlackoutView, error)
}

type blackoutQueriesImpl struct {
	listings  ListingReadStore
	readStore BlackoutReadStore
}

func NewBlackoutQueries(listings ListingReadStore, readStore BlackoutReadStore) BlackoutQueries {
	return &blackoutQueriesImpl{listings: listings, readStore: readStore}
}

// List is restricted to the listing's host and admins.
func (q *blackoutQueriesImpl) List(ctx context.Context, actorID uuid.UUID, actorRole string, listingID uuid.UUID, from, to time.Time) ([]*BlackoutView, error) {
	window, err := stay.NewRange(from, to)
	if err != nil {
		return nil, shared.Classify(err)
	}

	l, err := q.listings.FindByID(ctx, listingID)
	if err != nil {
		return nil, shared.Classify(err)
	}
	if actorRole != RoleAdmin && l.HostID != actorID {
		return nil, errs.Mark(ErrListingAccess, shared.ErrUnauthorizedAction)
	}

	return q.readStore.ListByListing(ctx, listingID, window)
}
