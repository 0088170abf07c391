package repository

import (
	"context"

	"rental-booking/internal/domain/listing"
	"rental-booking/internal/infra"
	"rental-booking/internal/infra/repository/converter"
	sqlc "rental-booking/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type ListingWriteQueries interface {
	CreateListing(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateListingParams) error
	UpdateListing(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateListingParams) error
	GetListingByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Listings, error)
	LockListingForBooking(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Listings, error)
}

type ListingRepository struct {
	queries ListingWriteQueries
}

func NewListingRepository(queries ListingWriteQueries) *ListingRepository {
	return &ListingRepository{queries: queries}
}

func (r *ListingRepository) Create(ctx context.Context, tx sqlc.DBTX, l *listing.Listing) error {
	if err := r.queries.CreateListing(ctx, tx, converter.ListingToCreateParams(l)); err != nil {
		return infra.WrapRepoErr("failed to create listing", err)
	}
	return nil
}

func (r *ListingRepository) Update(ctx context.Context, tx sqlc.DBTX, l *listing.Listing) error {
	if err := r.queries.UpdateListing(ctx, tx, converter.ListingToUpdateParams(l)); err != nil {
		return infra.WrapRepoErr("failed to update listing", err)
	}
	return nil
}

func (r *ListingRepository) FindByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*listing.Listing, error) {
	row, err := r.queries.GetListingByID(ctx, tx, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find listing", err)
	}
	return r.toDomain(row)
}

func (r *ListingRepository) LockForBooking(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*listing.Listing, error) {
	row, err := r.queries.LockListingForBooking(ctx, tx, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock listing", err)
	}
	return r.toDomain(row)
}

func (r *ListingRepository) toDomain(row sqlc.Listings) (*listing.Listing, error) {
	l, err := converter.ListingFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt listing row", err, infra.KindDBFailure)
	}
	return l, nil
}
