package readstore

import (
	"context"
	"time"

	"rental-booking/internal/infra"
	sqlc "rental-booking/internal/infra/sqlc/generated"
	"rental-booking/internal/pkg/pgconv"
	"rental-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReviewViewQueries interface {
	GetReviewViewByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetReviewViewByIDRow, error)
	GetReviewsByListingFirstPage(ctx context.Context, db sqlc.DBTX, arg sqlc.GetReviewsByListingFirstPageParams) ([]sqlc.GetReviewsByListingFirstPageRow, error)
	GetReviewsByListingKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.GetReviewsByListingKeysetParams) ([]sqlc.GetReviewsByListingKeysetRow, error)
	GetListingRatingStats(ctx context.Context, db sqlc.DBTX, listingID uuid.UUID) (sqlc.ListingRatingStats, error)
}

type ReviewReadStore struct {
	queries ReviewViewQueries
	db      sqlc.DBTX
}

func NewReviewReadStore(queries ReviewViewQueries, db sqlc.DBTX) *ReviewReadStore {
	return &ReviewReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ReviewReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReviewView, error) {
	row, err := r.queries.GetReviewViewByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get review view by id", err)
	}
	return &queries.ReviewView{
		ID:            row.ID,
		ReservationID: row.ReservationID,
		ListingID:     row.ListingID,
		ListingTitle:  row.ListingTitle,
		GuestID:       row.GuestID,
		GuestName:     row.GuestName,
		Rating:        row.Rating,
		Comment:       row.Comment,
		CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:     pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}

func (r *ReviewReadStore) FindByListingFirstPage(ctx context.Context, listingID uuid.UUID, limit int32, minRating, maxRating *int) ([]*queries.ReviewListItem, error) {
	rows, err := r.queries.GetReviewsByListingFirstPage(ctx, r.db, sqlc.GetReviewsByListingFirstPageParams{
		ListingID: listingID,
		MinRating: pgconv.IntPtrToPgtype(minRating),
		MaxRating: pgconv.IntPtrToPgtype(maxRating),
		Limit:     limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get reviews first page by listing", err)
	}

	items := make([]*queries.ReviewListItem, len(rows))
	for i, row := range rows {
		items[i] = toReviewListItem(row)
	}
	return items, nil
}

func (r *ReviewReadStore) FindByListingKeyset(ctx context.Context, listingID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32, minRating, maxRating *int) ([]*queries.ReviewListItem, error) {
	rows, err := r.queries.GetReviewsByListingKeyset(ctx, r.db, sqlc.GetReviewsByListingKeysetParams{
		ListingID: listingID,
		CreatedAt: pgconv.TimeToPgtype(lastCreatedAt),
		ID:        lastID,
		MinRating: pgconv.IntPtrToPgtype(minRating),
		MaxRating: pgconv.IntPtrToPgtype(maxRating),
		Limit:     limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get reviews keyset by listing", err)
	}

	items := make([]*queries.ReviewListItem, len(rows))
	for i, row := range rows {
		items[i] = toReviewListItem(sqlc.GetReviewsByListingFirstPageRow(row))
	}
	return items, nil
}

func (r *ReviewReadStore) GetListingRatingStats(ctx context.Context, listingID uuid.UUID) (*queries.ListingRatingStats, error) {
	row, err := r.queries.GetListingRatingStats(ctx, r.db, listingID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			// listing has no reviews yet
			return &queries.ListingRatingStats{ListingID: listingID}, nil
		}
		return nil, infra.WrapRepoErr("failed to get listing rating stats", err)
	}

	avg, err := pgconv.Float64FromNumeric(row.AverageRating)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt rating stats row", err, infra.KindDBFailure)
	}
	return &queries.ListingRatingStats{
		ListingID:     row.ListingID,
		TotalReviews:  row.TotalReviews,
		AverageRating: avg,
		Rating1Count:  row.Rating1Count,
		Rating2Count:  row.Rating2Count,
		Rating3Count:  row.Rating3Count,
		Rating4Count:  row.Rating4Count,
		Rating5Count:  row.Rating5Count,
		UpdatedAt:     pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}

func toReviewListItem(row sqlc.GetReviewsByListingFirstPageRow) *queries.ReviewListItem {
	return &queries.ReviewListItem{
		ID:            row.ID,
		ReservationID: row.ReservationID,
		GuestName:     row.GuestName,
		Rating:        row.Rating,
		Comment:       row.Comment,
		CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
	}
}
