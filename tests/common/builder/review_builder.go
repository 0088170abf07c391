//go:build unit || e2e

package builder

import (
	"time"

	"rental-booking/internal/domain/reservation"
	domreview "rental-booking/internal/domain/review"
	reqdto "rental-booking/internal/handler/dto/request"
	sqlc "rental-booking/internal/infra/sqlc/generated"
	"rental-booking/internal/pkg/pgconv"
	"rental-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReviewBuilder struct {
	ID            uuid.UUID
	GuestID       uuid.UUID
	GuestName     string
	ListingID     uuid.UUID
	ListingTitle  string
	ReservationID uuid.UUID
	Rating        int
	Comment       string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func NewReviewBuilder() *ReviewBuilder {
	now := time.Now()
	return &ReviewBuilder{
		ID:            uuid.New(),
		GuestID:       uuid.New(),
		GuestName:     "Test Guest",
		ListingID:     uuid.New(),
		ListingTitle:  "Seaside Loft",
		ReservationID: uuid.New(),
		Rating:        5,
		Comment:       "Spotless flat, great host",
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func (r *ReviewBuilder) With(mutate func(*ReviewBuilder)) *ReviewBuilder {
	mutate(r)
	return r
}

// Eligibility describes a completed stay by the builder's guest.
func (r *ReviewBuilder) Eligibility() domreview.Eligibility {
	return domreview.Eligibility{
		ReservationID: r.ReservationID,
		ListingID:     r.ListingID,
		GuestID:       r.GuestID,
		Status:        reservation.StatusCompleted,
	}
}

// Build methods
func (r *ReviewBuilder) BuildDomain() (*domreview.Review, error) {
	return domreview.NewReview(r.ID, r.Eligibility(), r.GuestID, r.Rating, r.Comment, r.CreatedAt)
}

func (r *ReviewBuilder) BuildInfra() sqlc.Reviews {
	return sqlc.Reviews{
		ID:            r.ID,
		ReservationID: r.ReservationID,
		ListingID:     r.ListingID,
		GuestID:       r.GuestID,
		Rating:        int32(r.Rating),
		Comment:       r.Comment,
		CreatedAt:     pgconv.TimeToPgtype(r.CreatedAt),
		UpdatedAt:     pgconv.TimeToPgtype(r.UpdatedAt),
	}
}

func (r *ReviewBuilder) BuildCreateRequestDTO() reqdto.CreateReviewRequest {
	return reqdto.CreateReviewRequest{
		ReservationID: r.ReservationID,
		Rating:        r.Rating,
		Comment:       r.Comment,
	}
}

func (r *ReviewBuilder) BuildUpdateRequestDTO() reqdto.UpdateReviewRequest {
	rating := r.Rating
	comment := r.Comment
	return reqdto.UpdateReviewRequest{
		Rating:  &rating,
		Comment: &comment,
	}
}

func (r *ReviewBuilder) BuildViewQuery() *queries.ReviewView {
	return &queries.ReviewView{
		ID:            r.ID,
		ReservationID: r.ReservationID,
		ListingID:     r.ListingID,
		ListingTitle:  r.ListingTitle,
		GuestID:       r.GuestID,
		GuestName:     r.GuestName,
		Rating:        int32(r.Rating),
		Comment:       r.Comment,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

func (r *ReviewBuilder) BuildListItem() *queries.ReviewListItem {
	return &queries.ReviewListItem{
		ID:            r.ID,
		ReservationID: r.ReservationID,
		GuestName:     r.GuestName,
		Rating:        int32(r.Rating),
		Comment:       r.Comment,
		CreatedAt:     r.CreatedAt,
	}
}

func (r *ReviewBuilder) BuildListingRatingStats() *queries.ListingRatingStats {
	return &queries.ListingRatingStats{
		ListingID:     r.ListingID,
		TotalReviews:  10,
		AverageRating: 4.2,
		Rating1Count:  1,
		Rating2Count:  1,
		Rating3Count:  2,
		Rating4Count:  3,
		Rating5Count:  3,
		UpdatedAt:     r.UpdatedAt,
	}
}

// Fluent builder methods
func (r *ReviewBuilder) WithGuestID(guestID uuid.UUID) *ReviewBuilder {
	r.GuestID = guestID
	return r
}

func (r *ReviewBuilder) WithListingID(listingID uuid.UUID) *ReviewBuilder {
	r.ListingID = listingID
	return r
}

func (r *ReviewBuilder) WithReservationID(reservationID uuid.UUID) *ReviewBuilder {
	r.ReservationID = reservationID
	return r
}

func (r *ReviewBuilder) WithRating(rating int) *ReviewBuilder {
	r.Rating = rating
	return r
}

func (r *ReviewBuilder) WithComment(comment string) *ReviewBuilder {
	r.Comment = comment
	return r
}

func (r *ReviewBuilder) WithCreatedAt(createdAt time.Time) *ReviewBuilder {
	r.CreatedAt = createdAt
	return r
}

func (r *ReviewBuilder) AsPoorRating() *ReviewBuilder {
	r.Rating = 1
	r.Comment = "Noisy street, broken heater"
	return r
}
