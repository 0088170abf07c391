package converter

import (
	"rental-booking/internal/domain/listing"
	"rental-booking/internal/domain/money"
	sqlc "rental-booking/internal/infra/sqlc/generated"
	"rental-booking/internal/pkg/errs"
	"rental-booking/internal/pkg/pgconv"
)

func ListingToCreateParams(l *listing.Listing) sqlc.CreateListingParams {
	return sqlc.CreateListingParams{
		ID:                l.ID(),
		HostID:            l.HostID(),
		Title:             l.Title(),
		Description:       l.Description(),
		NightlyPriceCents: l.NightlyPrice().Cents(),
		CleaningFeeCents:  l.CleaningFee().Cents(),
		ServiceFeeBps:     pgconv.ClampInt32(int(l.ServiceFeeRate().BasisPoints())),
		MinNights:         pgconv.ClampInt32(l.MinNights()),
		MaxNights:         pgconv.IntPtrToPgtype(l.MaxNights()),
		MaxGuests:         pgconv.ClampInt32(l.MaxGuests()),
		Status:            l.Status().String(),
		CreatedAt:         pgconv.TimeToPgtype(l.CreatedAt()),
		UpdatedAt:         pgconv.TimeToPgtype(l.UpdatedAt()),
	}
}

func ListingToUpdateParams(l *listing.Listing) sqlc.UpdateListingParams {
	return sqlc.UpdateListingParams{
		ID:                l.ID(),
		Title:             l.Title(),
		Description:       l.Description(),
		NightlyPriceCents: l.NightlyPrice().Cents(),
		CleaningFeeCents:  l.CleaningFee().Cents(),
		ServiceFeeBps:     pgconv.ClampInt32(int(l.ServiceFeeRate().BasisPoints())),
		MinNights:         pgconv.ClampInt32(l.MinNights()),
		MaxNights:         pgconv.IntPtrToPgtype(l.MaxNights()),
		MaxGuests:         pgconv.ClampInt32(l.MaxGuests()),
		Status:            l.Status().String(),
		UpdatedAt:         pgconv.TimeToPgtype(l.UpdatedAt()),
	}
}

func ListingFromRow(row sqlc.Listings) (*listing.Listing, error) {
	status, err := listing.NewStatus(row.Status)
	if err != nil {
		return nil, errs.Wrapf(err, "listing %s", row.ID)
	}
	nightly, err := money.FromCents(row.NightlyPriceCents)
	if err != nil {
		return nil, errs.Wrap(err, "nightly price")
	}
	cleaning, err := money.FromCents(row.CleaningFeeCents)
	if err != nil {
		return nil, errs.Wrap(err, "cleaning fee")
	}
	rate, err := money.RateFromBasisPoints(int64(row.ServiceFeeBps))
	if err != nil {
		return nil, errs.Wrap(err, "service fee rate")
	}

	return listing.ReconstructListing(listing.Snapshot{
		ID:     row.ID,
		HostID: row.HostID,
		Params: listing.Params{
			Title:          row.Title,
			Description:    row.Description,
			NightlyPrice:   nightly,
			CleaningFee:    cleaning,
			ServiceFeeRate: rate,
			MinNights:      int(row.MinNights),
			MaxNights:      pgconv.IntPtrFromPgtype(row.MaxNights),
			MaxGuests:      int(row.MaxGuests),
		},
		Status:    status,
		CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt: pgconv.TimeFromPgtype(row.UpdatedAt),
	}), nil
}
