package readstore

import (
	"context"

	"rental-booking/internal/domain/money"
	"rental-booking/internal/domain/reservation"
	"rental-booking/internal/infra"
	"rental-booking/internal/infra/repository/converter"
	sqlc "rental-booking/internal/infra/sqlc/generated"
	"rental-booking/internal/pkg/pgconv"
	"rental-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationViewQueries interface {
	GetReservationViewByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetReservationViewByIDRow, error)
	ListReservationsByGuest(ctx context.Context, db sqlc.DBTX, arg sqlc.ListReservationsByGuestParams) ([]sqlc.ListReservationsByGuestRow, error)
	ListReservationsByHost(ctx context.Context, db sqlc.DBTX, arg sqlc.ListReservationsByHostParams) ([]sqlc.ListReservationsByHostRow, error)
}

type ReservationReadStore struct {
	queries ReservationViewQueries
	db      sqlc.DBTX
}

func NewReservationReadStore(queries ReservationViewQueries, db sqlc.DBTX) *ReservationReadStore {
	return &ReservationReadStore{queries: queries, db: db}
}

func (r *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	row, err := r.queries.GetReservationViewByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get reservation view by id", err)
	}
	return toReservationView(row)
}

func (r *ReservationReadStore) ListByGuest(ctx context.Context, guestID uuid.UUID, limit, offset int32) ([]*queries.ReservationView, error) {
	rows, err := r.queries.ListReservationsByGuest(ctx, r.db, sqlc.ListReservationsByGuestParams{
		GuestID: guestID,
		Limit:   limit,
		Offset:  offset,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations by guest", err)
	}

	views := make([]*queries.ReservationView, 0, len(rows))
	for _, row := range rows {
		v, err := toReservationView(sqlc.GetReservationViewByIDRow(row))
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return views, nil
}

func (r *ReservationReadStore) ListByHost(ctx context.Context, hostID uuid.UUID, limit, offset int32) ([]*queries.ReservationView, error) {
	rows, err := r.queries.ListReservationsByHost(ctx, r.db, sqlc.ListReservationsByHostParams{
		HostID: hostID,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations by host", err)
	}

	views := make([]*queries.ReservationView, 0, len(rows))
	for _, row := range rows {
		v, err := toReservationView(sqlc.GetReservationViewByIDRow(row))
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return views, nil
}

// The three view queries select identical columns, so their rows convert into one another.
func toReservationView(row sqlc.GetReservationViewByIDRow) (*queries.ReservationView, error) {
	status, err := reservation.ParseStatus(row.Status)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt reservation row", err, infra.KindDBFailure)
	}
	price, err := converter.PriceFromColumns(row.NightlyRateCents, row.Nights, row.SubtotalCents, row.CleaningFeeCents, row.ServiceFeeBps, row.ServiceFeeCents, row.TotalCents)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt reservation price", err, infra.KindDBFailure)
	}

	return &queries.ReservationView{
		ID:                 row.ID,
		ListingID:          row.ListingID,
		ListingTitle:       row.ListingTitle,
		GuestID:            row.GuestID,
		GuestName:          row.GuestName,
		HostID:             row.HostID,
		HostName:           row.HostName,
		CheckIn:            pgconv.DateFromPgtype(row.CheckIn),
		CheckOut:           pgconv.DateFromPgtype(row.CheckOut),
		Guests:             int(row.Guests),
		Status:             status,
		Price:              price,
		PaymentReference:   pgconv.StringPtrFromPgtype(row.PaymentReference),
		PaymentStatus:      row.PaymentStatus,
		SpecialRequests:    row.SpecialRequests,
		CancellationReason: pgconv.StringPtrFromPgtype(row.CancellationReason),
		CancelledAt:        pgconv.TimePtrFromPgtype(row.CancelledAt),
		CreatedAt:          pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:          pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}

func priceTerms(nightlyCents, cleaningCents int64, feeBps int32) (reservation.PriceTerms, error) {
	nightly, err := money.FromCents(nightlyCents)
	if err != nil {
		return reservation.PriceTerms{}, err
	}
	cleaning, err := money.FromCents(cleaningCents)
	if err != nil {
		return reservation.PriceTerms{}, err
	}
	rate, err := money.RateFromBasisPoints(int64(feeBps))
	if err != nil {
		return reservation.PriceTerms{}, err
	}
	return reservation.PriceTerms{NightlyRate: nightly, CleaningFee: cleaning, ServiceFeeRate: rate}, nil
}
