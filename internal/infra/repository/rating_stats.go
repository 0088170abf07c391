package repository

import (
	"context"

	"rental-booking/internal/infra"
	sqlc "rental-booking/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type RatingStatsWriteQueries interface {
	RecalcListingRatingStats(ctx context.Context, db sqlc.DBTX, listingID uuid.UUID) error
}

type RatingStatsRepository struct {
	queries RatingStatsWriteQueries
}

func NewRatingStatsRepository(queries RatingStatsWriteQueries) *RatingStatsRepository {
	return &RatingStatsRepository{queries: queries}
}

func (r *RatingStatsRepository) Recalc(ctx context.Context, tx sqlc.DBTX, listingID uuid.UUID) error {
	if err := r.queries.RecalcListingRatingStats(ctx, tx, listingID); err != nil {
		return infra.WrapRepoErr("failed to recalculate listing rating stats", err)
	}
	return nil
}
