package commands

import (
	"context"

	"rental-booking/internal/domain/review"
	"rental-booking/internal/infra"
	"rental-booking/internal/pkg/clock"
	"rental-booking/internal/pkg/errs"
	"rental-booking/internal/usecase/queries"
	"rental-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateReviewInput struct {
	ReservationID uuid.UUID
	Rating        int
	Comment       string
}

type UpdateReviewInput struct {
	Rating  *int
	Comment *string
}

type ReviewCommands interface {
	CreateReview(ctx context.Context, in CreateReviewInput, guestID uuid.UUID) (uuid.UUID, error)
	UpdateReview(ctx context.Context, reviewID uuid.UUID, in UpdateReviewInput, actorID uuid.UUID) error
	DeleteReview(ctx context.Context, reviewID, actorID uuid.UUID, actorRole string) error
}

type reviewCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewReviewCommands(uow shared.UnitOfWork, clk clock.Clock) ReviewCommands {
	return &reviewCommandsImpl{uow: uow, clock: clk}
}

// CreateReview accepts one review per completed stay.
func (uc *reviewCommandsImpl) CreateReview(ctx context.Context, in CreateReviewInput, guestID uuid.UUID) (uuid.UUID, error) {
	var createdID uuid.UUID
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		eligibility, err := tx.Reads().ReviewEligibility(ctx, in.ReservationID)
		if err != nil {
			return err
		}

		rev, err := review.NewReview(uuid.Nil, *eligibility, guestID, in.Rating, in.Comment, uc.clock.Now())
		if err != nil {
			return err
		}
		if err := tx.Reviews().Create(ctx, tx.DB(), rev); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Mark(review.ErrReviewAlreadyExists, shared.ErrConflict)
			}
			return err
		}
		createdID = rev.ID()
		return tx.RatingStats().Recalc(ctx, tx.DB(), rev.ListingID())
	})
	if err != nil {
		return uuid.Nil, shared.Classify(err)
	}
	return createdID, nil
}

func (uc *reviewCommandsImpl) UpdateReview(ctx context.Context, reviewID uuid.UUID, in UpdateReviewInput, actorID uuid.UUID) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rev, err := tx.Reviews().FindByID(ctx, tx.DB(), reviewID)
		if err != nil {
			return err
		}
		if err := rev.Edit(actorID, in.Rating, in.Comment, uc.clock.Now()); err != nil {
			return err
		}
		if err := tx.Reviews().Update(ctx, tx.DB(), rev); err != nil {
			return err
		}
		if in.Rating == nil {
			return nil
		}
		return tx.RatingStats().Recalc(ctx, tx.DB(), rev.ListingID())
	})
	return shared.Classify(err)
}

// Admins may delete any review; guests only their own.
func (uc *reviewCommandsImpl) DeleteReview(ctx context.Context, reviewID, actorID uuid.UUID, actorRole string) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rev, err := tx.Reviews().FindByID(ctx, tx.DB(), reviewID)
		if err != nil {
			return err
		}
		if actorRole != queries.RoleAdmin && rev.GuestID() != actorID {
			return review.ErrNotAuthor
		}
		if err := tx.Reviews().Delete(ctx, tx.DB(), reviewID); err != nil {
			return err
		}
		return tx.RatingStats().Recalc(ctx, tx.DB(), rev.ListingID())
	})
	return shared.Classify(err)
}
