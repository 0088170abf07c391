package reservation

import (
	"errors"
	"strings"
	"time"

	"rental-booking/internal/domain/stay"
	"rental-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	MaxSpecialRequestsLength = 1000
	MaxReasonLength          = 500
	MaxPaymentFieldLength    = 100

	DefaultPaymentStatus = "pending"
)

var (
	ErrInvalidStatus          = errors.New("invalid reservation status")
	ErrInvalidStateTransition = errors.New("invalid reservation state transition")
	ErrUnauthorizedAction     = errors.New("action not allowed for this user")
	ErrInvalidGuests          = errors.New("guests must be at least 1")
	ErrOwnListing             = errors.New("hosts cannot book their own listing")
	ErrTextTooLong            = errors.New("text exceeds maximum length")
	ErrInvalidPayment         = errors.New("payment reference and status are required")
	ErrNotYetCompletable      = errors.New("reservation cannot complete before check-out has passed")
)

type Reservation struct {
	id                 uuid.UUID
	listingID          uuid.UUID
	guestID            uuid.UUID
	hostID             uuid.UUID
	stay               stay.Range
	guests             int
	status             Status
	price              PriceBreakdown
	paymentReference   *string
	paymentStatus      string
	specialRequests    string
	cancellationReason *string
	cancelledBy        *uuid.UUID
	createdAt          time.Time
	updatedAt          time.Time
	cancelledAt        *time.Time
}

type NewParams struct {
	ListingID       uuid.UUID
	GuestID         uuid.UUID
	HostID          uuid.UUID
	Stay            stay.Range
	Guests          int
	Price           PriceBreakdown
	SpecialRequests string
}

// NewReservation builds a pending request. Capacity and availability are checked by the caller.
func NewReservation(p NewParams, now time.Time) (*Reservation, error) {
	if p.Guests < 1 {
		return nil, ErrInvalidGuests
	}
	if p.GuestID == p.HostID {
		return nil, ErrOwnListing
	}
	requests := strings.TrimSpace(p.SpecialRequests)
	if len(requests) > MaxSpecialRequestsLength {
		return nil, errs.Wrap(ErrTextTooLong, "special requests")
	}

	return &Reservation{
		id:              uuid.New(),
		listingID:       p.ListingID,
		guestID:         p.GuestID,
		hostID:          p.HostID,
		stay:            p.Stay,
		guests:          p.Guests,
		status:          StatusPending,
		price:           p.Price,
		paymentStatus:   DefaultPaymentStatus,
		specialRequests: requests,
		createdAt:       now,
		updatedAt:       now,
	}, nil
}

type Snapshot struct {
	ID                 uuid.UUID
	ListingID          uuid.UUID
	GuestID            uuid.UUID
	HostID             uuid.UUID
	Stay               stay.Range
	Guests             int
	Status             Status
	Price              PriceBreakdown
	PaymentReference   *string
	PaymentStatus      string
	SpecialRequests    string
	CancellationReason *string
	CancelledBy        *uuid.UUID
	CreatedAt          time.Time
	UpdatedAt          time.Time
	CancelledAt        *time.Time
}

func ReconstructReservation(s Snapshot) *Reservation {
	return &Reservation{
		id:                 s.ID,
		listingID:          s.ListingID,
		guestID:            s.GuestID,
		hostID:             s.HostID,
		stay:               s.Stay,
		guests:             s.Guests,
		status:             s.Status,
		price:              s.Price,
		paymentReference:   s.PaymentReference,
		paymentStatus:      s.PaymentStatus,
		specialRequests:    s.SpecialRequests,
		cancellationReason: s.CancellationReason,
		cancelledBy:        s.CancelledBy,
		createdAt:          s.CreatedAt,
		updatedAt:          s.UpdatedAt,
		cancelledAt:        s.CancelledAt,
	}
}

func (r *Reservation) Confirm(actorID uuid.UUID, now time.Time) error {
	if actorID != r.hostID {
		return ErrUnauthorizedAction
	}
	return r.transitionTo(StatusConfirmed, now)
}

func (r *Reservation) Reject(actorID uuid.UUID, reason string, now time.Time) error {
	if actorID != r.hostID {
		return ErrUnauthorizedAction
	}
	trimmed, err := optionalReason(reason)
	if err != nil {
		return err
	}
	if err := r.transitionTo(StatusRejected, now); err != nil {
		return err
	}
	r.cancellationReason = trimmed
	return nil
}

func (r *Reservation) Cancel(actorID uuid.UUID, reason string, now time.Time) error {
	if actorID != r.guestID && actorID != r.hostID {
		return ErrUnauthorizedAction
	}
	trimmed, err := optionalReason(reason)
	if err != nil {
		return err
	}
	if err := r.transitionTo(StatusCancelled, now); err != nil {
		return err
	}
	r.cancellationReason = trimmed
	r.cancelledBy = &actorID
	r.cancelledAt = &now
	return nil
}

// Complete is driven by the system once check-out lies before today.
func (r *Reservation) Complete(today, now time.Time) error {
	if !r.stay.CheckOut().Before(stay.Day(today)) {
		return ErrNotYetCompletable
	}
	return r.transitionTo(StatusCompleted, now)
}

func (r *Reservation) RecordPayment(reference, status string, now time.Time) error {
	reference, status = strings.TrimSpace(reference), strings.TrimSpace(status)
	if reference == "" || status == "" {
		return ErrInvalidPayment
	}
	if len(reference) > MaxPaymentFieldLength || len(status) > MaxPaymentFieldLength {
		return errs.Wrap(ErrTextTooLong, "payment")
	}
	r.paymentReference = &reference
	r.paymentStatus = status
	r.updatedAt = now
	return nil
}

func (r *Reservation) transitionTo(to Status, now time.Time) error {
	if !r.status.CanTransitionTo(to) {
		return errs.Mark(errs.Newf("cannot move reservation from %s to %s", r.status, to), ErrInvalidStateTransition)
	}
	r.status = to
	r.updatedAt = now
	return nil
}

func optionalReason(reason string) (*string, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, nil
	}
	if len(reason) > MaxReasonLength {
		return nil, errs.Wrap(ErrTextTooLong, "reason")
	}
	return &reason, nil
}

func (r *Reservation) IsParticipant(userID uuid.UUID) bool {
	return userID == r.guestID || userID == r.hostID
}

func (r *Reservation) Event(occurredAt time.Time) Event {
	return Event{
		ReservationID: r.id,
		ListingID:     r.listingID,
		GuestID:       r.guestID,
		HostID:        r.hostID,
		Status:        r.status,
		PaymentStatus: r.paymentStatus,
		OccurredAt:    occurredAt,
	}
}

func (r *Reservation) ID() uuid.UUID               { return r.id }
func (r *Reservation) ListingID() uuid.UUID        { return r.listingID }
func (r *Reservation) GuestID() uuid.UUID          { return r.guestID }
func (r *Reservation) HostID() uuid.UUID           { return r.hostID }
func (r *Reservation) Stay() stay.Range            { return r.stay }
func (r *Reservation) Guests() int                 { return r.guests }
func (r *Reservation) Status() Status              { return r.status }
func (r *Reservation) Price() PriceBreakdown       { return r.price }
func (r *Reservation) PaymentReference() *string   { return r.paymentReference }
func (r *Reservation) PaymentStatus() string       { return r.paymentStatus }
func (r *Reservation) SpecialRequests() string     { return r.specialRequests }
func (r *Reservation) CancellationReason() *string { return r.cancellationReason }
func (r *Reservation) CancelledBy() *uuid.UUID     { return r.cancelledBy }
func (r *Reservation) CreatedAt() time.Time        { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time        { return r.updatedAt }
func (r *Reservation) CancelledAt() *time.Time     { return r.cancelledAt }
