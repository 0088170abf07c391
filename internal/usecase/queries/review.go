package queries

import (
	"context"
	"time"

	"rental-booking/internal/pkg/errs"
	"rental-booking/internal/pkg/pgconv"
	"rental-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrInvalidCursor = errs.New("invalid cursor")

type ReviewView struct {
	ID            uuid.UUID
	ReservationID uuid.UUID
	ListingID     uuid.UUID
	ListingTitle  string
	GuestID       uuid.UUID
	GuestName     string
	Rating        int32
	Comment       string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type ReviewListItem struct {
	ID            uuid.UUID
	ReservationID uuid.UUID
	GuestName     string
	Rating        int32
	Comment       string
	CreatedAt     time.Time
}

type ListingRatingStats struct {
	ListingID     uuid.UUID
	TotalReviews  int32
	AverageRating float64
	Rating1Count  int32
	Rating2Count  int32
	Rating3Count  int32
	Rating4Count  int32
	Rating5Count  int32
	UpdatedAt     time.Time
}

type ReviewFilters struct {
	MinRating *int
	MaxRating *int
}

type ReviewReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReviewView, error)
	FindByListingFirstPage(ctx context.Context, listingID uuid.UUID, limit int32, minRating, maxRating *int) ([]*ReviewListItem, error)
	FindByListingKeyset(ctx context.Context, listingID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32, minRating, maxRating *int) ([]*ReviewListItem, error)
	GetListingRatingStats(ctx context.Context, listingID uuid.UUID) (*ListingRatingStats, error)
}

type ReviewQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ReviewView, error)
	ListByListing(ctx context.Context, listingID uuid.UUID, filters ReviewFilters, cursor *Cursor, limit int) ([]*ReviewListItem, *Cursor, error)
	GetListingRatingStats(ctx context.Context, listingID uuid.UUID) (*ListingRatingStats, error)
}

type reviewQueriesImpl struct {
	repo ReviewReadStore
}

func NewReviewQueries(repo ReviewReadStore) ReviewQueries {
	return &reviewQueriesImpl{repo: repo}
}

func (q *reviewQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ReviewView, error) {
	rv, err := q.repo.FindByID(ctx, id)
	if err != nil {
		return nil, shared.Classify(err)
	}
	return rv, nil
}

func (q *reviewQueriesImpl) ListByListing(ctx context.Context, listingID uuid.UUID, filters ReviewFilters, cursor *Cursor, limit int) ([]*ReviewListItem, *Cursor, error) {
	limit = ValidateLimit(limit)
	fetch := pgconv.ClampInt32(limit + 1)

	var rows []*ReviewListItem
	var err error
	if cursor == nil || cursor.After == "" {
		rows, err = q.repo.FindByListingFirstPage(ctx, listingID, fetch, filters.MinRating, filters.MaxRating)
	} else {
		lastCreatedAt, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, errs.Mark(derr, ErrInvalidCursor)
		}
		rows, err = q.repo.FindByListingKeyset(ctx, listingID, lastCreatedAt, lastID, fetch, filters.MinRating, filters.MaxRating)
	}
	if err != nil {
		return nil, nil, err
	}

	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
		rows = rows[:limit]
	}
	return rows, next, nil
}

func (q *reviewQueriesImpl) GetListingRatingStats(ctx context.Context, listingID uuid.UUID) (*ListingRatingStats, error) {
	return q.repo.GetListingRatingStats(ctx, listingID)
}
