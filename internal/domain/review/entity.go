package review

import (
	"errors"
	"time"

	"rental-booking/internal/domain/reservation"

	"github.com/google/uuid"
)

var (
	ErrReservationNotEligible = errors.New("only completed stays can be reviewed")
	ErrNotReservationGuest    = errors.New("only the guest of the stay can review it")
	ErrReviewAlreadyExists    = errors.New("review already exists for this reservation")
	ErrNotAuthor              = errors.New("review belongs to another user")
)

type Review struct {
	id            uuid.UUID
	guestID       uuid.UUID
	listingID     uuid.UUID
	reservationID uuid.UUID
	rating        Rating
	comment       Comment
	createdAt     time.Time
	updatedAt     time.Time
}

// Eligibility is what a review needs to know about the stay it is attached to.
type Eligibility struct {
	ReservationID uuid.UUID
	ListingID     uuid.UUID
	GuestID       uuid.UUID
	Status        reservation.Status
}

func (e Eligibility) Check(reviewerID uuid.UUID) error {
	if e.GuestID != reviewerID {
		return ErrNotReservationGuest
	}
	if e.Status != reservation.StatusCompleted {
		return ErrReservationNotEligible
	}
	return nil
}

func NewReview(id uuid.UUID, stay Eligibility, reviewerID uuid.UUID, ratingValue int, commentText string, now time.Time) (*Review, error) {
	if err := stay.Check(reviewerID); err != nil {
		return nil, err
	}

	rating, err := NewRating(ratingValue)
	if err != nil {
		return nil, err
	}

	comment, err := NewComment(commentText)
	if err != nil {
		return nil, err
	}

	if id == uuid.Nil {
		id = uuid.New()
	}

	return &Review{
		id:            id,
		guestID:       reviewerID,
		listingID:     stay.ListingID,
		reservationID: stay.ReservationID,
		rating:        rating,
		comment:       comment,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

func ReconstructReview(id, guestID, listingID, reservationID uuid.UUID, rating Rating, comment Comment, createdAt, updatedAt time.Time) *Review {
	return &Review{
		id:            id,
		guestID:       guestID,
		listingID:     listingID,
		reservationID: reservationID,
		rating:        rating,
		comment:       comment,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

// Edit applies the non-nil fields.
func (r *Review) Edit(authorID uuid.UUID, rating *int, comment *string, now time.Time) error {
	if authorID != r.guestID {
		return ErrNotAuthor
	}
	if rating != nil {
		v, err := NewRating(*rating)
		if err != nil {
			return err
		}
		r.rating = v
	}
	if comment != nil {
		c, err := NewComment(*comment)
		if err != nil {
			return err
		}
		r.comment = c
	}
	r.updatedAt = now
	return nil
}

func (r *Review) ID() uuid.UUID            { return r.id }
func (r *Review) GuestID() uuid.UUID       { return r.guestID }
func (r *Review) ListingID() uuid.UUID     { return r.listingID }
func (r *Review) ReservationID() uuid.UUID { return r.reservationID }
func (r *Review) Rating() Rating           { return r.rating }
func (r *Review) Comment() Comment         { return r.comment }
func (r *Review) CreatedAt() time.Time     { return r.createdAt }
func (r *Review) UpdatedAt() time.Time     { return r.updatedAt }
