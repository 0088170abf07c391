package readstore

import (
	"context"

	"rental-booking/internal/infra"
	sqlc "rental-booking/internal/infra/sqlc/generated"
	"rental-booking/internal/pkg/pgconv"
	"rental-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ListingReadQueries interface {
	GetListingByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Listings, error)
	ListListingsByHost(ctx context.Context, db sqlc.DBTX, arg sqlc.ListListingsByHostParams) ([]sqlc.Listings, error)
	SearchListings(ctx context.Context, db sqlc.DBTX, arg sqlc.SearchListingsParams) ([]sqlc.Listings, error)
	CountListings(ctx context.Context, db sqlc.DBTX, arg sqlc.CountListingsParams) (int64, error)
}

type ListingReadStore struct {
	queries ListingReadQueries
	db      sqlc.DBTX
}

func NewListingReadStore(queries ListingReadQueries, db sqlc.DBTX) *ListingReadStore {
	return &ListingReadStore{queries: queries, db: db}
}

func (r *ListingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ListingView, error) {
	row, err := r.queries.GetListingByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get listing view by id", err)
	}
	return toListingView(row)
}

func (r *ListingReadStore) ListByHost(ctx context.Context, hostID uuid.UUID, limit, offset int32) ([]*queries.ListingView, error) {
	rows, err := r.queries.ListListingsByHost(ctx, r.db, sqlc.ListListingsByHostParams{
		HostID: hostID,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list listings by host", err)
	}

	return toListingViews(rows)
}

func (r *ListingReadStore) Search(ctx context.Context, search queries.ListingSearch, limit, offset int32) ([]*queries.ListingView, error) {
	filter := toCountListingsParams(search)
	rows, err := r.queries.SearchListings(ctx, r.db, sqlc.SearchListingsParams{
		MinGuests:  filter.MinGuests,
		HostID:     filter.HostID,
		MinPrice:   filter.MinPrice,
		MaxPrice:   filter.MaxPrice,
		Sort:       search.Order(),
		PageLimit:  limit,
		PageOffset: offset,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to search listings", err)
	}
	return toListingViews(rows)
}

func (r *ListingReadStore) Count(ctx context.Context, search queries.ListingSearch) (int64, error) {
	total, err := r.queries.CountListings(ctx, r.db, toCountListingsParams(search))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count listings", err)
	}
	return total, nil
}

func toCountListingsParams(search queries.ListingSearch) sqlc.CountListingsParams {
	params := sqlc.CountListingsParams{
		MinGuests: pgconv.ClampInt32(search.Guests),
		HostID:    pgconv.UUIDPtrToPgtype(search.HostID),
	}
	if search.MinPrice != nil {
		params.MinPrice = pgtype.Int8{Int64: search.MinPrice.Cents(), Valid: true}
	}
	if search.MaxPrice != nil {
		params.MaxPrice = pgtype.Int8{Int64: search.MaxPrice.Cents(), Valid: true}
	}
	return params
}

func toListingViews(rows []sqlc.Listings) ([]*queries.ListingView, error) {
	views := make([]*queries.ListingView, 0, len(rows))
	for _, row := range rows {
		v, err := toListingView(row)
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return views, nil
}

func toListingView(row sqlc.Listings) (*queries.ListingView, error) {
	terms, err := priceTerms(row.NightlyPriceCents, row.CleaningFeeCents, row.ServiceFeeBps)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt listing row", err, infra.KindDBFailure)
	}
	return &queries.ListingView{
		ID:             row.ID,
		HostID:         row.HostID,
		Title:          row.Title,
		Description:    row.Description,
		NightlyPrice:   terms.NightlyRate,
		CleaningFee:    terms.CleaningFee,
		ServiceFeeRate: terms.ServiceFeeRate,
		MinNights:      int(row.MinNights),
		MaxNights:      pgconv.IntPtrFromPgtype(row.MaxNights),
		MaxGuests:      int(row.MaxGuests),
		Status:         row.Status,
		CreatedAt:      pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:      pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}
