package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"time"

	"rental-booking/internal/domain/availability"
	"rental-booking/internal/domain/listing"
	"rental-booking/internal/domain/reservation"
	"rental-booking/internal/domain/stay"
	"rental-booking/internal/pkg/clock"
	"rental-booking/internal/pkg/errs"
	"rental-booking/internal/usecase/queries"
	"rental-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

const createReservationEndpoint = "POST /api/reservations"

var (
	ErrDatesUnavailable      = errs.New("requested nights overlap another reservation or a blocked date")
	ErrOverlapsConfirmed     = errs.New("reservation overlaps an already confirmed stay")
	ErrIdempotencyInProgress = errs.New("idempotency in progress")
	ErrIdempotencyKeyReuse   = errs.New("idempotency key reused with a different request")
)

type CreateReservationInput struct {
	ListingID       uuid.UUID `json:"listingId"`
	CheckIn         time.Time `json:"checkIn"`
	CheckOut        time.Time `json:"checkOut"`
	Guests          int       `json:"guests"`
	SpecialRequests string    `json:"specialRequests"`
}

type CreateReservationResult struct {
	Reservation *queries.ReservationView
	IsReplayed  bool
}

type ReservationCommands interface {
	// CreateReservation treats a nil idempotency key as a one-off request.
	CreateReservation(ctx context.Context, in CreateReservationInput, guestID uuid.UUID, idempotencyKey *uuid.UUID) (*CreateReservationResult, error)
	ConfirmReservation(ctx context.Context, id, hostID uuid.UUID) (*queries.ReservationView, error)
	RejectReservation(ctx context.Context, id, hostID uuid.UUID, reason string) (*queries.ReservationView, error)
	CancelReservation(ctx context.Context, id, actorID uuid.UUID, reason string) (*queries.ReservationView, error)
	RecordPayment(ctx context.Context, id uuid.UUID, reference, status string) (*queries.ReservationView, error)
}

type reservationCommandsImpl struct {
	uow            shared.UnitOfWork
	queries        queries.ReservationQueries
	cache          shared.CalendarCache
	clock          clock.Clock
	idempotencyTTL time.Duration
}

func NewReservationCommands(
	uow shared.UnitOfWork,
	reservationQueries queries.ReservationQueries,
	cache shared.CalendarCache,
	clk clock.Clock,
	idempotencyTTL time.Duration,
) ReservationCommands {
	return &reservationCommandsImpl{
		uow:            uow,
		queries:        reservationQueries,
		cache:          cache,
		clock:          clk,
		idempotencyTTL: idempotencyTTL,
	}
}

func (uc *reservationCommandsImpl) CreateReservation(
	ctx context.Context,
	in CreateReservationInput,
	guestID uuid.UUID,
	idempotencyKey *uuid.UUID,
) (*CreateReservationResult, error) {
	want, err := stay.NewRange(in.CheckIn, in.CheckOut)
	if err != nil {
		return nil, shared.Classify(err)
	}
	requestHash := calculateRequestHash(in)
	now := uc.clock.Now()

	var (
		createdID uuid.UUID
		replayID  *uuid.UUID
	)
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		createdID, replayID = uuid.Nil, nil

		if idempotencyKey != nil {
			replay, err := uc.claimIdempotencyKey(ctx, tx, *idempotencyKey, guestID, requestHash, now)
			if err != nil {
				return err
			}
			if replay != nil {
				replayID = replay
				return nil
			}
		}

		// Locking the listing row serialises every booking write for this listing.
		l, err := tx.Listings().LockForBooking(ctx, tx.DB(), in.ListingID)
		if err != nil {
			return err
		}
		if l.HostID() == guestID {
			return reservation.ErrOwnListing
		}
		if err := l.CheckBooking(want, in.Guests); err != nil {
			return err
		}
		if err := ensureAvailable(ctx, tx, l.ID(), want); err != nil {
			return err
		}

		price, err := reservation.CalculatePrice(priceTerms(l), want)
		if err != nil {
			return err
		}
		res, err := reservation.NewReservation(reservation.NewParams{
			ListingID:       l.ID(),
			GuestID:         guestID,
			HostID:          l.HostID(),
			Stay:            want,
			Guests:          in.Guests,
			Price:           price,
			SpecialRequests: in.SpecialRequests,
		}, now)
		if err != nil {
			return err
		}

		if err := tx.Reservations().Create(ctx, tx.DB(), res); err != nil {
			return err
		}
		if err := enqueueEvent(ctx, tx, res.Event(now)); err != nil {
			return err
		}
		if idempotencyKey != nil {
			if err := tx.Idempotency().MarkCompleted(ctx, tx.DB(), *idempotencyKey, guestID, calculateIDHash(res.ID()), res.ID()); err != nil {
				return err
			}
		}

		createdID = res.ID()
		return nil
	})
	if err != nil {
		return nil, classifyBookingErr(err)
	}

	if replayID != nil {
		view, err := uc.queries.GetByIDSystem(ctx, *replayID)
		if err != nil {
			return nil, err
		}
		return &CreateReservationResult{Reservation: view, IsReplayed: true}, nil
	}

	invalidateCalendar(ctx, uc.cache, in.ListingID)

	view, err := uc.queries.GetByIDSystem(ctx, createdID)
	if err != nil {
		return nil, err
	}
	return &CreateReservationResult{Reservation: view}, nil
}

// claimIdempotencyKey returns the reservation to replay, or nil when this request owns the key.
func (uc *reservationCommandsImpl) claimIdempotencyKey(
	ctx context.Context,
	tx shared.Tx,
	key, userID uuid.UUID,
	requestHash string,
	now time.Time,
) (*uuid.UUID, error) {
	expiresAt := now.Add(uc.idempotencyTTL)

	inserted, err := tx.Idempotency().TryInsert(ctx, tx.DB(), key, userID, createReservationEndpoint, requestHash, expiresAt)
	if err != nil {
		return nil, err
	}
	if inserted {
		return nil, nil
	}

	existing, err := tx.Idempotency().Get(ctx, tx.DB(), key, userID)
	if err != nil {
		return nil, err
	}

	if existing.Expired(now) {
		claimed, err := tx.Idempotency().ClaimExpired(ctx, tx.DB(), key, userID, requestHash, expiresAt, now)
		if err != nil {
			return nil, err
		}
		if !claimed {
			return nil, ErrIdempotencyInProgress
		}
		return nil, nil
	}

	if existing.RequestHash != requestHash {
		return nil, ErrIdempotencyKeyReuse
	}

	switch existing.Status {
	case shared.IdempotencyStatusCompleted:
		if existing.ResultReservationID == nil {
			return nil, errs.New("completed request missing result reservation ID")
		}
		return existing.ResultReservationID, nil
	case shared.IdempotencyStatusProcessing:
		return nil, ErrIdempotencyInProgress
	default:
		return nil, errs.Newf("invalid idempotency key status %q", existing.Status)
	}
}

func (uc *reservationCommandsImpl) ConfirmReservation(ctx context.Context, id, hostID uuid.UUID) (*queries.ReservationView, error) {
	now := uc.clock.Now()

	var listingID uuid.UUID
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		current, err := tx.Reservations().FindByID(ctx, tx.DB(), id)
		if err != nil {
			return err
		}
		// listing before reservation, the same order CreateReservation takes them in
		if _, err := tx.Listings().LockForBooking(ctx, tx.DB(), current.ListingID()); err != nil {
			return err
		}
		res, err := tx.Reservations().FindByIDForUpdate(ctx, tx.DB(), id)
		if err != nil {
			return err
		}
		if err := res.Confirm(hostID, now); err != nil {
			return err
		}

		confirmed, err := tx.Reservations().ListInRange(ctx, tx.DB(), res.ListingID(), res.Stay(), []reservation.Status{reservation.StatusConfirmed})
		if err != nil {
			return err
		}
		for b := range availability.Conflicts(res.Stay(), confirmed) {
			if b.ReservationID != res.ID() {
				return errs.Wrapf(ErrOverlapsConfirmed, "conflicts with %s", b.ReservationID)
			}
		}

		if err := tx.Reservations().UpdateStatus(ctx, tx.DB(), res); err != nil {
			return err
		}
		listingID = res.ListingID()
		return enqueueEvent(ctx, tx, res.Event(now))
	})
	if err != nil {
		return nil, classifyBookingErr(err)
	}

	invalidateCalendar(ctx, uc.cache, listingID)
	return uc.queries.GetByIDSystem(ctx, id)
}

func (uc *reservationCommandsImpl) RejectReservation(ctx context.Context, id, hostID uuid.UUID, reason string) (*queries.ReservationView, error) {
	return uc.transition(ctx, id, func(res *reservation.Reservation, now time.Time) error {
		return res.Reject(hostID, reason, now)
	})
}

func (uc *reservationCommandsImpl) CancelReservation(ctx context.Context, id, actorID uuid.UUID, reason string) (*queries.ReservationView, error) {
	return uc.transition(ctx, id, func(res *reservation.Reservation, now time.Time) error {
		return res.Cancel(actorID, reason, now)
	})
}

// transition applies a status change that frees nights, so it needs no overlap check.
func (uc *reservationCommandsImpl) transition(
	ctx context.Context,
	id uuid.UUID,
	apply func(res *reservation.Reservation, now time.Time) error,
) (*queries.ReservationView, error) {
	now := uc.clock.Now()

	var listingID uuid.UUID
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := tx.Reservations().FindByIDForUpdate(ctx, tx.DB(), id)
		if err != nil {
			return err
		}
		if err := apply(res, now); err != nil {
			return err
		}
		if err := tx.Reservations().UpdateStatus(ctx, tx.DB(), res); err != nil {
			return err
		}
		listingID = res.ListingID()
		return enqueueEvent(ctx, tx, res.Event(now))
	})
	if err != nil {
		return nil, shared.Classify(err)
	}

	invalidateCalendar(ctx, uc.cache, listingID)
	return uc.queries.GetByIDSystem(ctx, id)
}

func (uc *reservationCommandsImpl) RecordPayment(ctx context.Context, id uuid.UUID, reference, status string) (*queries.ReservationView, error) {
	now := uc.clock.Now()

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := tx.Reservations().FindByIDForUpdate(ctx, tx.DB(), id)
		if err != nil {
			return err
		}
		if err := res.RecordPayment(reference, status, now); err != nil {
			return err
		}
		return tx.Reservations().UpdatePayment(ctx, tx.DB(), res)
	})
	if err != nil {
		return nil, shared.Classify(err)
	}
	return uc.queries.GetByIDSystem(ctx, id)
}

func ensureAvailable(ctx context.Context, tx shared.Tx, listingID uuid.UUID, want stay.Range) error {
	bookings, err := tx.Reservations().ListInRange(ctx, tx.DB(), listingID, want, reservation.BlockingStatuses())
	if err != nil {
		return err
	}
	blackouts, err := tx.Blackouts().ListDates(ctx, tx.DB(), listingID, want)
	if err != nil {
		return err
	}
	if !availability.IsAvailable(want, bookings, blackouts) {
		return ErrDatesUnavailable
	}
	return nil
}

func priceTerms(l *listing.Listing) reservation.PriceTerms {
	return reservation.PriceTerms{
		NightlyRate:    l.NightlyPrice(),
		CleaningFee:    l.CleaningFee(),
		ServiceFeeRate: l.ServiceFeeRate(),
	}
}

func classifyBookingErr(err error) error {
	switch {
	case errs.Is(err, ErrDatesUnavailable), errs.Is(err, ErrOverlapsConfirmed):
		return errs.Mark(err, shared.ErrUnavailable)
	case errs.Is(err, ErrIdempotencyInProgress), errs.Is(err, ErrIdempotencyKeyReuse):
		return err
	}
	return shared.Classify(err)
}

func enqueueEvent(ctx context.Context, tx shared.Tx, ev reservation.Event) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return errs.Wrap(err, "encode reservation event")
	}
	return tx.Notifications().Enqueue(ctx, tx.DB(), shared.NewNotificationJob{
		Kind:    shared.JobKindReservationEvent,
		Topic:   ev.Type(),
		Payload: payload,
		RunAt:   ev.OccurredAt,
	})
}

// invalidateCalendar runs after commit; a stale cache entry expires on its own TTL.
func invalidateCalendar(ctx context.Context, cache shared.CalendarCache, listingID uuid.UUID) {
	if cache == nil || listingID == uuid.Nil {
		return
	}
	if err := cache.Invalidate(ctx, listingID); err != nil {
		slog.WarnContext(ctx, "calendar cache invalidation failed", "listing_id", listingID, "error", err.Error())
	}
}

func calculateRequestHash(in CreateReservationInput) string {
	data, _ := json.Marshal(in)
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

func calculateIDHash(id uuid.UUID) string {
	hash := sha256.Sum256([]byte(id.String()))
	return hex.EncodeToString(hash[:])
}
