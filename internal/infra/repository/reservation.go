package repository

import (
	"context"
	"time"

	"rental-booking/internal/domain/availability"
	"rental-booking/internal/domain/reservation"
	"rental-booking/internal/domain/stay"
	"rental-booking/internal/infra"
	"rental-booking/internal/infra/repository/converter"
	sqlc "rental-booking/internal/infra/sqlc/generated"
	"rental-booking/internal/pkg/pgconv"
	"rental-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type ReservationWriteQueries interface {
	CreateReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateReservationParams) error
	GetReservationByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Reservations, error)
	GetReservationByIDForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Reservations, error)
	UpdateReservationStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateReservationStatusParams) error
	UpdateReservationPayment(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateReservationPaymentParams) error
	ListListingReservationsInRange(ctx context.Context, db sqlc.DBTX, arg sqlc.ListListingReservationsInRangeParams) ([]sqlc.ListListingReservationsInRangeRow, error)
	CompleteDueReservations(ctx context.Context, db sqlc.DBTX, arg sqlc.CompleteDueReservationsParams) ([]sqlc.CompleteDueReservationsRow, error)
}

type ReservationRepository struct {
	queries ReservationWriteQueries
}

func NewReservationRepository(queries ReservationWriteQueries) *ReservationRepository {
	return &ReservationRepository{queries: queries}
}

func (r *ReservationRepository) Create(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) error {
	if err := r.queries.CreateReservation(ctx, tx, converter.ReservationToCreateParams(res)); err != nil {
		return infra.WrapRepoErr("failed to create reservation", err)
	}
	return nil
}

func (r *ReservationRepository) FindByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*reservation.Reservation, error) {
	row, err := r.queries.GetReservationByID(ctx, tx, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find reservation", err)
	}
	return toReservation(row)
}

func (r *ReservationRepository) FindByIDForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*reservation.Reservation, error) {
	row, err := r.queries.GetReservationByIDForUpdate(ctx, tx, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock reservation", err)
	}
	return toReservation(row)
}

func (r *ReservationRepository) UpdateStatus(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) error {
	if err := r.queries.UpdateReservationStatus(ctx, tx, converter.ReservationToStatusParams(res)); err != nil {
		return infra.WrapRepoErr("failed to update reservation status", err)
	}
	return nil
}

func (r *ReservationRepository) UpdatePayment(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) error {
	if err := r.queries.UpdateReservationPayment(ctx, tx, converter.ReservationToPaymentParams(res)); err != nil {
		return infra.WrapRepoErr("failed to update reservation payment", err)
	}
	return nil
}

func (r *ReservationRepository) ListInRange(ctx context.Context, tx sqlc.DBTX, listingID uuid.UUID, window stay.Range, statuses []reservation.Status) ([]availability.Booking, error) {
	params := sqlc.ListListingReservationsInRangeParams{
		ListingID:  listingID,
		Statuses:   reservation.Strings(statuses),
		RangeStart: pgconv.DateToPgtype(window.CheckIn()),
		RangeEnd:   pgconv.DateToPgtype(window.CheckOut()),
	}

	rows, err := r.queries.ListListingReservationsInRange(ctx, tx, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations in range", err)
	}

	bookings := make([]availability.Booking, 0, len(rows))
	for _, row := range rows {
		status, err := reservation.ParseStatus(row.Status)
		if err != nil {
			return nil, infra.WrapRepoErr("corrupt reservation row", err, infra.KindDBFailure)
		}
		nights, err := stay.NewRange(pgconv.DateFromPgtype(row.CheckIn), pgconv.DateFromPgtype(row.CheckOut))
		if err != nil {
			return nil, infra.WrapRepoErr("corrupt reservation row", err, infra.KindDBFailure)
		}
		bookings = append(bookings, availability.Booking{ReservationID: row.ID, Stay: nights, Status: status})
	}
	return bookings, nil
}

// CompleteDue moves every confirmed reservation whose check-out is before today to completed.
func (r *ReservationRepository) CompleteDue(ctx context.Context, tx sqlc.DBTX, today, now time.Time, scope shared.CompletionScope) ([]shared.CompletedReservation, error) {
	params := sqlc.CompleteDueReservationsParams{
		ToStatus:     reservation.StatusCompleted.String(),
		Now:          pgconv.TimeToPgtype(now),
		FromStatuses: reservation.Strings(reservation.SourceStates(reservation.StatusCompleted)),
		Today:        pgconv.DateToPgtype(today),
		GuestID:      pgconv.UUIDPtrToPgtype(scope.GuestID),
		HostID:       pgconv.UUIDPtrToPgtype(scope.HostID),
		BatchSize:    scope.Limit,
	}

	rows, err := r.queries.CompleteDueReservations(ctx, tx, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to complete due reservations", err)
	}

	done := make([]shared.CompletedReservation, len(rows))
	for i, row := range rows {
		done[i] = shared.CompletedReservation{
			ID:            row.ID,
			ListingID:     row.ListingID,
			GuestID:       row.GuestID,
			HostID:        row.HostID,
			PaymentStatus: row.PaymentStatus,
		}
	}
	return done, nil
}

func toReservation(row sqlc.Reservations) (*reservation.Reservation, error) {
	res, err := converter.ReservationFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt reservation row", err, infra.KindDBFailure)
	}
	return res, nil
}
