package repository

import (
	"context"
	"time"

	"rental-booking/internal/domain/blackout"
	"rental-booking/internal/domain/stay"
	"rental-booking/internal/infra"
	sqlc "rental-booking/internal/infra/sqlc/generated"
	"rental-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type BlackoutWriteQueries interface {
	CreateBlackoutDate(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBlackoutDateParams) error
	DeleteBlackoutDate(ctx context.Context, db sqlc.DBTX, arg sqlc.DeleteBlackoutDateParams) (int64, error)
	ListBlackoutDatesInRange(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBlackoutDatesInRangeParams) ([]sqlc.BlackoutDates, error)
}

type BlackoutRepository struct {
	queries BlackoutWriteQueries
}

func NewBlackoutRepository(queries BlackoutWriteQueries) *BlackoutRepository {
	return &BlackoutRepository{queries: queries}
}

func (r *BlackoutRepository) Create(ctx context.Context, tx sqlc.DBTX, b *blackout.Blackout) error {
	params := sqlc.CreateBlackoutDateParams{
		ID:        b.ID(),
		ListingID: b.ListingID(),
		Date:      pgconv.DateToPgtype(b.Date()),
		Reason:    pgconv.StringPtrToPgtype(b.Reason()),
		CreatedAt: pgconv.TimeToPgtype(b.CreatedAt()),
	}
	if err := r.queries.CreateBlackoutDate(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to create blackout date", err)
	}
	return nil
}

func (r *BlackoutRepository) Delete(ctx context.Context, tx sqlc.DBTX, listingID uuid.UUID, date time.Time) error {
	n, err := r.queries.DeleteBlackoutDate(ctx, tx, sqlc.DeleteBlackoutDateParams{
		ListingID: listingID,
		Date:      pgconv.DateToPgtype(date),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to delete blackout date", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("blackout date not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *BlackoutRepository) ListDates(ctx context.Context, tx sqlc.DBTX, listingID uuid.UUID, window stay.Range) ([]time.Time, error) {
	rows, err := r.queries.ListBlackoutDatesInRange(ctx, tx, sqlc.ListBlackoutDatesInRangeParams{
		ListingID:  listingID,
		RangeStart: pgconv.DateToPgtype(window.CheckIn()),
		RangeEnd:   pgconv.DateToPgtype(window.CheckOut()),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list blackout dates", err)
	}

	dates := make([]time.Time, len(rows))
	for i, row := range rows {
		dates[i] = pgconv.DateFromPgtype(row.Date)
	}
	return dates, nil
}
