package queries

import (
	"context"
	"log/slog"

	"rental-booking/internal/domain/reservation"
	"rental-booking/internal/domain/stay"
	"rental-booking/internal/pkg/clock"
	"rental-booking/internal/pkg/errs"
	"rental-booking/internal/pkg/pgconv"
	"rental-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

// Upper bound on reservations completed by a single list read.
const lazyCompletionBatch = 500

var ErrReservationAccess = errs.New("reservation access denied")

type ReservationReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	ListByGuest(ctx context.Context, guestID uuid.UUID, limit, offset int32) ([]*ReservationView, error)
	ListByHost(ctx context.Context, hostID uuid.UUID, limit, offset int32) ([]*ReservationView, error)
}

// ReservationCompleter moves stays whose check-out has passed to completed.
type ReservationCompleter interface {
	CompleteDue(ctx context.Context, scope shared.CompletionScope) (int, error)
}

type ReservationQueries interface {
	GetByID(ctx context.Context, actorID uuid.UUID, actorRole string, id uuid.UUID) (*ReservationView, error)
	// GetByIDSystem skips the participant check; used for idempotent replays and command results.
	GetByIDSystem(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	ListForGuest(ctx context.Context, guestID uuid.UUID, limit, offset int) ([]*ReservationView, error)
	ListForHost(ctx context.Context, hostID uuid.UUID, limit, offset int) (*HostReservations, error)
}

type reservationQueriesImpl struct {
	readStore ReservationReadStore
	completer ReservationCompleter
	clock     clock.Clock
}

func NewReservationQueries(readStore ReservationReadStore, completer ReservationCompleter, clk clock.Clock) ReservationQueries {
	return &reservationQueriesImpl{
		readStore: readStore,
		completer: completer,
		clock:     clk,
	}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, actorID uuid.UUID, actorRole string, id uuid.UUID) (*ReservationView, error) {
	view, err := q.GetByIDSystem(ctx, id)
	if err != nil {
		return nil, err
	}
	if actorRole != RoleAdmin && actorID != view.GuestID && actorID != view.HostID {
		return nil, errs.Mark(ErrReservationAccess, shared.ErrUnauthorizedAction)
	}
	return view, nil
}

func (q *reservationQueriesImpl) GetByIDSystem(ctx context.Context, id uuid.UUID) (*ReservationView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		return nil, shared.Classify(err)
	}
	return view, nil
}

func (q *reservationQueriesImpl) ListForGuest(ctx context.Context, guestID uuid.UUID, limit, offset int) ([]*ReservationView, error) {
	q.completeDue(ctx, shared.CompletionScope{GuestID: &guestID, Limit: lazyCompletionBatch})

	limit, offset = ValidateLimit(limit), max(offset, 0)
	return q.readStore.ListByGuest(ctx, guestID, pgconv.ClampInt32(limit), pgconv.ClampInt32(offset))
}

func (q *reservationQueriesImpl) ListForHost(ctx context.Context, hostID uuid.UUID, limit, offset int) (*HostReservations, error) {
	q.completeDue(ctx, shared.CompletionScope{HostID: &hostID, Limit: lazyCompletionBatch})

	limit, offset = ValidateLimit(limit), max(offset, 0)
	views, err := q.readStore.ListByHost(ctx, hostID, pgconv.ClampInt32(limit), pgconv.ClampInt32(offset))
	if err != nil {
		return nil, err
	}

	today := stay.Day(q.clock.Now())
	out := &HostReservations{
		Pending: []*ReservationView{},
		Ongoing: []*ReservationView{},
		Past:    []*ReservationView{},
	}
	for _, v := range views {
		switch reservation.BucketFor(v.Status, v.CheckOut, today) {
		case reservation.BucketPending:
			out.Pending = append(out.Pending, v)
		case reservation.BucketOngoing:
			out.Ongoing = append(out.Ongoing, v)
		default:
			out.Past = append(out.Past, v)
		}
	}
	return out, nil
}

// completeDue is the read-path fast lane of the completion sweep; a failure leaves
// the rows for the next sweep instead of failing the read.
func (q *reservationQueriesImpl) completeDue(ctx context.Context, scope shared.CompletionScope) {
	if q.completer == nil {
		return
	}
	n, err := q.completer.CompleteDue(ctx, scope)
	if err != nil {
		slog.WarnContext(ctx, "lazy completion failed", "error", err.Error())
		return
	}
	if n > 0 {
		slog.DebugContext(ctx, "reservations completed on read", "count", n)
	}
}
