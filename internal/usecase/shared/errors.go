package shared

import (
	"errors"

	"rental-booking/internal/domain/blackout"
	"rental-booking/internal/domain/listing"
	"rental-booking/internal/domain/money"
	"rental-booking/internal/domain/reservation"
	"rental-booking/internal/domain/review"
	"rental-booking/internal/domain/stay"
	"rental-booking/internal/domain/user"
	"rental-booking/internal/infra"
	"rental-booking/internal/pkg/errs"
)

// Error kinds reported by every usecase. Handlers switch on these with errors.Is.
var (
	ErrInvalidRange           = errs.New("invalid date range")
	ErrNotFound               = errs.New("not found")
	ErrUnavailable            = errs.New("dates are not available")
	ErrOverCapacity           = errs.New("guest count exceeds capacity")
	ErrUnauthorizedAction     = errs.New("action not allowed")
	ErrInvalidStateTransition = errs.New("invalid state transition")
	ErrStayLength             = errs.New("stay length not allowed")
	ErrValidation             = errs.New("domain validation error")
	ErrConflict               = errs.New("conflict")
)

var validationErrors = []error{
	reservation.ErrInvalidGuests,
	reservation.ErrTextTooLong,
	reservation.ErrInvalidPayment,
	reservation.ErrInvalidStatus,
	listing.ErrInvalidStatus,
	listing.ErrInvalidTitle,
	listing.ErrDescriptionTooLong,
	listing.ErrInvalidMinNights,
	listing.ErrInvalidMaxNights,
	listing.ErrInvalidMaxGuests,
	listing.ErrStatusNotAllowed,
	blackout.ErrReasonTooLong,
	review.ErrInvalidRating,
	review.ErrEmptyComment,
	review.ErrCommentTooLong,
	review.ErrReservationNotEligible,
	money.ErrInvalidAmount,
	money.ErrNegative,
	money.ErrInvalidRate,
	user.ErrInvalidEmail,
	user.ErrInvalidRole,
	user.ErrRoleNotSelfAssignable,
	user.ErrPasswordTooWeak,
	user.ErrInvalidFullName,
}

// Classify marks a domain or repository error with its usecase kind.
// Errors with no matching kind are returned unchanged.
func Classify(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, stay.ErrInvalidRange), errors.Is(err, stay.ErrInvalidDate):
		return errs.Mark(err, ErrInvalidRange)
	case errors.Is(err, listing.ErrOverCapacity):
		return errs.Mark(err, ErrOverCapacity)
	case errors.Is(err, listing.ErrNotBookable):
		return errs.Mark(err, ErrUnavailable)
	case errors.Is(err, listing.ErrStayTooShort), errors.Is(err, listing.ErrStayTooLong):
		return errs.Mark(err, ErrStayLength)
	case errors.Is(err, reservation.ErrUnauthorizedAction),
		errors.Is(err, reservation.ErrOwnListing),
		errors.Is(err, listing.ErrNotOwner),
		errors.Is(err, review.ErrNotReservationGuest),
		errors.Is(err, review.ErrNotAuthor):
		return errs.Mark(err, ErrUnauthorizedAction)
	case errors.Is(err, reservation.ErrInvalidStateTransition), errors.Is(err, reservation.ErrNotYetCompletable):
		return errs.Mark(err, ErrInvalidStateTransition)
	case infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(err, ErrNotFound)
	case infra.IsKind(err, infra.KindConflict):
		return errs.Mark(err, ErrUnavailable)
	case infra.IsKind(err, infra.KindDuplicateKey):
		return errs.Mark(err, ErrConflict)
	}

	for _, v := range validationErrors {
		if errors.Is(err, v) {
			return errs.Mark(err, ErrValidation)
		}
	}
	return err
}
