package readstore

import (
	"context"
	"time"

	"rental-booking/internal/domain/availability"
	"rental-booking/internal/domain/reservation"
	"rental-booking/internal/domain/stay"
	"rental-booking/internal/infra"
	sqlc "rental-booking/internal/infra/sqlc/generated"
	"rental-booking/internal/pkg/pgconv"
	"rental-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type OccupancyQueries interface {
	ListListingReservationsInRange(ctx context.Context, db sqlc.DBTX, arg sqlc.ListListingReservationsInRangeParams) ([]sqlc.ListListingReservationsInRangeRow, error)
	ListBlackoutDatesInRange(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBlackoutDatesInRangeParams) ([]sqlc.BlackoutDates, error)
}

// OccupancyReadStore serves the availability check, the calendar and the blackout list.
type OccupancyReadStore struct {
	queries OccupancyQueries
	db      sqlc.DBTX
}

func NewOccupancyReadStore(queries OccupancyQueries, db sqlc.DBTX) *OccupancyReadStore {
	return &OccupancyReadStore{queries: queries, db: db}
}

func (r *OccupancyReadStore) Bookings(ctx context.Context, listingID uuid.UUID, window stay.Range, statuses []reservation.Status) ([]availability.Booking, error) {
	rows, err := r.queries.ListListingReservationsInRange(ctx, r.db, sqlc.ListListingReservationsInRangeParams{
		ListingID:  listingID,
		Statuses:   reservation.Strings(statuses),
		RangeStart: pgconv.DateToPgtype(window.CheckIn()),
		RangeEnd:   pgconv.DateToPgtype(window.CheckOut()),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to read listing occupancy", err)
	}

	out := make([]availability.Booking, 0, len(rows))
	for _, row := range rows {
		status, err := reservation.ParseStatus(row.Status)
		if err != nil {
			return nil, infra.WrapRepoErr("corrupt reservation row", err, infra.KindDBFailure)
		}
		nights, err := stay.NewRange(pgconv.DateFromPgtype(row.CheckIn), pgconv.DateFromPgtype(row.CheckOut))
		if err != nil {
			return nil, infra.WrapRepoErr("corrupt reservation row", err, infra.KindDBFailure)
		}
		out = append(out, availability.Booking{ReservationID: row.ID, Stay: nights, Status: status})
	}
	return out, nil
}

func (r *OccupancyReadStore) BlackoutDates(ctx context.Context, listingID uuid.UUID, window stay.Range) ([]time.Time, error) {
	rows, err := r.blackouts(ctx, listingID, window)
	if err != nil {
		return nil, err
	}
	dates := make([]time.Time, len(rows))
	for i, row := range rows {
		dates[i] = pgconv.DateFromPgtype(row.Date)
	}
	return dates, nil
}

func (r *OccupancyReadStore) ListByListing(ctx context.Context, listingID uuid.UUID, window stay.Range) ([]*queries.BlackoutView, error) {
	rows, err := r.blackouts(ctx, listingID, window)
	if err != nil {
		return nil, err
	}
	views := make([]*queries.BlackoutView, len(rows))
	for i, row := range rows {
		views[i] = &queries.BlackoutView{
			ID:        row.ID,
			ListingID: row.ListingID,
			Date:      pgconv.DateFromPgtype(row.Date),
			Reason:    pgconv.StringPtrFromPgtype(row.Reason),
			CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}
	return views, nil
}

func (r *OccupancyReadStore) blackouts(ctx context.Context, listingID uuid.UUID, window stay.Range) ([]sqlc.BlackoutDates, error) {
	rows, err := r.queries.ListBlackoutDatesInRange(ctx, r.db, sqlc.ListBlackoutDatesInRangeParams{
		ListingID:  listingID,
		RangeStart: pgconv.DateToPgtype(window.CheckIn()),
		RangeEnd:   pgconv.DateToPgtype(window.CheckOut()),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list blackout dates", err)
	}
	return rows, nil
}
