package repository

import (
	"context"

	"rental-booking/internal/domain/review"
	"rental-booking/internal/infra"
	"rental-booking/internal/infra/repository/converter"
	sqlc "rental-booking/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type ReviewWriteQueries interface {
	CreateReview(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateReviewParams) error
	UpdateReview(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateReviewParams) error
	DeleteReview(ctx context.Context, db sqlc.DBTX, id uuid.UUID) error
	GetReviewByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Reviews, error)
}

type ReviewRepository struct {
	queries ReviewWriteQueries
}

func NewReviewRepository(queries ReviewWriteQueries) *ReviewRepository {
	return &ReviewRepository{queries: queries}
}

func (r *ReviewRepository) Create(ctx context.Context, tx sqlc.DBTX, rev *review.Review) error {
	if err := r.queries.CreateReview(ctx, tx, converter.ReviewToCreateParams(rev)); err != nil {
		return infra.WrapRepoErr("failed to create review", err)
	}
	return nil
}

func (r *ReviewRepository) Update(ctx context.Context, tx sqlc.DBTX, rev *review.Review) error {
	if err := r.queries.UpdateReview(ctx, tx, converter.ReviewToUpdateParams(rev)); err != nil {
		return infra.WrapRepoErr("failed to update review", err)
	}
	return nil
}

func (r *ReviewRepository) Delete(ctx context.Context, tx sqlc.DBTX, reviewID uuid.UUID) error {
	if err := r.queries.DeleteReview(ctx, tx, reviewID); err != nil {
		return infra.WrapRepoErr("failed to delete review", err)
	}
	return nil
}

func (r *ReviewRepository) FindByID(ctx context.Context, tx sqlc.DBTX, reviewID uuid.UUID) (*review.Review, error) {
	row, err := r.queries.GetReviewByID(ctx, tx, reviewID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find review", err)
	}
	rev, err := converter.ReviewFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt review row", err, infra.KindDBFailure)
	}
	return rev, nil
}
