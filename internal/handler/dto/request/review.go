package request

import (
	"rental-booking/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateReviewRequest struct {
	ReservationID uuid.UUID `json:"reservationId" binding:"required"`
	Rating        int       `json:"rating" binding:"required,min=1,max=5"`
	Comment       string    `json:"comment" binding:"required,notblank,max=1000"`
}

func (r *CreateReviewRequest) ToInput() commands.CreateReviewInput {
	return commands.CreateReviewInput{
		ReservationID: r.ReservationID,
		Rating:        r.Rating,
		Comment:       r.Comment,
	}
}

type UpdateReviewRequest struct {
	Rating  *int    `json:"rating" binding:"omitempty,min=1,max=5"`
	Comment *string `json:"comment" binding:"omitempty,notblank,max=1000"`
}

func (r *UpdateReviewRequest) ToInput() commands.UpdateReviewInput {
	return commands.UpdateReviewInput{Rating: r.Rating, Comment: r.Comment}
}
