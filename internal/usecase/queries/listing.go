package queries

import (
	"context"

	"rental-booking/internal/domain/money"
	"rental-booking/internal/pkg/errs"
	"rental-booking/internal/pkg/pgconv"
	"rental-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	ListingSortPrice     = "price"
	ListingSortCreatedAt = "created_at"
	SortAsc              = "asc"
	SortDesc             = "desc"
)

var ErrInvalidSearch = errs.New("invalid listing search")

// ListingSearch filters the public catalogue. Only active listings are ever returned.
type ListingSearch struct {
	Guests    int
	HostID    *uuid.UUID
	MinPrice  *money.Money
	MaxPrice  *money.Money
	SortBy    string
	SortOrder string
}

// Order folds SortBy and SortOrder into one key such as "price_asc".
func (s ListingSearch) Order() string {
	by, order := s.SortBy, s.SortOrder
	if by == "" {
		by = ListingSortCreatedAt
	}
	if order == "" {
		order = SortDesc
	}
	if by == ListingSortCreatedAt {
		by = "created"
	}
	return by + "_" + order
}

func (s ListingSearch) validate() error {
	if s.Guests < 0 {
		return errs.Wrap(ErrInvalidSearch, "guests must not be negative")
	}
	if s.MinPrice != nil && s.MaxPrice != nil && s.MinPrice.Cents() > s.MaxPrice.Cents() {
		return errs.Wrap(ErrInvalidSearch, "minPrice must not exceed maxPrice")
	}
	switch s.SortBy {
	case "", ListingSortPrice, ListingSortCreatedAt:
	default:
		return errs.Wrapf(ErrInvalidSearch, "unsupported sortBy %q", s.SortBy)
	}
	switch s.SortOrder {
	case "", SortAsc, SortDesc:
	default:
		return errs.Wrapf(ErrInvalidSearch, "unsupported sortOrder %q", s.SortOrder)
	}
	return nil
}

type ListingPage struct {
	Items   []*ListingView
	Total   int64
	Page    int
	PerPage int
}

func (p *ListingPage) Pages() int {
	if p.PerPage <= 0 || p.Total == 0 {
		return 0
	}
	return int((p.Total + int64(p.PerPage) - 1) / int64(p.PerPage))
}

type ListingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ListingView, error)
	ListByHost(ctx context.Context, hostID uuid.UUID, limit, offset int32) ([]*ListingView, error)
	Search(ctx context.Context, search ListingSearch, limit, offset int32) ([]*ListingView, error)
	Count(ctx context.Context, search ListingSearch) (int64, error)
}

type ListingQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ListingView, error)
	ListByHost(ctx context.Context, hostID uuid.UUID, limit, offset int) ([]*ListingView, error)
	Search(ctx context.Context, search ListingSearch, page, perPage int) (*ListingPage, error)
}

type listingQueriesImpl struct {
	readStore ListingReadStore
}

func NewListingQueries(readStore ListingReadStore) ListingQueries {
	return &listingQueriesImpl{readStore: readStore}
}

func (q *listingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ListingView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		return nil, shared.Classify(err)
	}
	return view, nil
}

func (q *listingQueriesImpl) ListByHost(ctx context.Context, hostID uuid.UUID, limit, offset int) ([]*ListingView, error) {
	limit = ValidateLimit(limit)
	if offset < 0 {
		offset = 0
	}
	return q.readStore.ListByHost(ctx, hostID, pgconv.ClampInt32(limit), pgconv.ClampInt32(offset))
}

func (q *listingQueriesImpl) Search(ctx context.Context, search ListingSearch, page, perPage int) (*ListingPage, error) {
	if err := search.validate(); err != nil {
		return nil, errs.Mark(err, shared.ErrValidation)
	}
	perPage = ValidateLimit(perPage)
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * perPage

	total, err := q.readStore.Count(ctx, search)
	if err != nil {
		return nil, err
	}
	result := &ListingPage{Items: []*ListingView{}, Total: total, Page: page, PerPage: perPage}
	if int64(offset) >= total {
		return result, nil
	}

	items, err := q.readStore.Search(ctx, search, pgconv.ClampInt32(perPage), pgconv.ClampInt32(offset))
	if err != nil {
		return nil, err
	}
	result.Items = append(result.Items, items...)
	return result, nil
}
