package converter

import (
	"rental-booking/internal/domain/review"
	sqlc "rental-booking/internal/infra/sqlc/generated"
	"rental-booking/internal/pkg/errs"
	"rental-booking/internal/pkg/pgconv"
)

func ReviewToCreateParams(r *review.Review) sqlc.CreateReviewParams {
	return sqlc.CreateReviewParams{
		ID:            r.ID(),
		ReservationID: r.ReservationID(),
		ListingID:     r.ListingID(),
		GuestID:       r.GuestID(),
		Rating:        pgconv.ClampInt32(r.Rating().Value()),
		Comment:       r.Comment().String(),
		CreatedAt:     pgconv.TimeToPgtype(r.CreatedAt()),
		UpdatedAt:     pgconv.TimeToPgtype(r.UpdatedAt()),
	}
}

func ReviewToUpdateParams(r *review.Review) sqlc.UpdateReviewParams {
	return sqlc.UpdateReviewParams{
		ID:        r.ID(),
		Rating:    pgconv.ClampInt32(r.Rating().Value()),
		Comment:   r.Comment().String(),
		UpdatedAt: pgconv.TimeToPgtype(r.UpdatedAt()),
	}
}

func ReviewFromRow(row sqlc.Reviews) (*review.Review, error) {
	rating, err := review.NewRating(int(row.Rating))
	if err != nil {
		return nil, errs.Wrapf(err, "review %s", row.ID)
	}
	comment, err := review.NewComment(row.Comment)
	if err != nil {
		return nil, errs.Wrapf(err, "review %s", row.ID)
	}
	return review.ReconstructReview(
		row.ID,
		row.GuestID,
		row.ListingID,
		row.ReservationID,
		rating,
		comment,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}
