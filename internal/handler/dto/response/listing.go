package response

import (
	"time"

	"rental-booking/internal/domain/money"
	"rental-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ListingResponse struct {
	ID             uuid.UUID `json:"id"`
	HostID         uuid.UUID `json:"hostId"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	NightlyPrice   string    `json:"nightlyPrice"`
	CleaningFee    string    `json:"cleaningFee"`
	ServiceFeeRate string    `json:"serviceFeeRate"`
	MinNights      int       `json:"minNights"`
	MaxNights      *int      `json:"maxNights,omitempty"`
	MaxGuests      int       `json:"maxGuests"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// moneyConverters render amounts and rates as fixed two-decimal strings.
var moneyConverters = copier.Option{
	Converters: []copier.TypeConverter{
		{
			SrcType: money.Money{},
			DstType: copier.String,
			Fn:      func(src any) (any, error) { return src.(money.Money).String(), nil },
		},
		{
			SrcType: money.Rate{},
			DstType: copier.String,
			Fn:      func(src any) (any, error) { return src.(money.Rate).String(), nil },
		},
	},
}

func FromListingView(v *queries.ListingView) (*ListingResponse, error) {
	var out ListingResponse
	if err := copier.CopyWithOption(&out, v, moneyConverters); err != nil {
		return nil, err
	}
	return &out, nil
}

func FromListingViews(views []*queries.ListingView) ([]*ListingResponse, error) {
	out := make([]*ListingResponse, 0, len(views))
	for _, v := range views {
		r, err := FromListingView(v)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

type ListingSearchResponse struct {
	Listings    []*ListingResponse `json:"listings"`
	Total       int64              `json:"total"`
	Pages       int                `json:"pages"`
	CurrentPage int                `json:"currentPage"`
	PerPage     int                `json:"perPage"`
}

func FromListingPage(page *queries.ListingPage) (*ListingSearchResponse, error) {
	items, err := FromListingViews(page.Items)
	if err != nil {
		return nil, err
	}
	return &ListingSearchResponse{
		Listings:    items,
		Total:       page.Total,
		Pages:       page.Pages(),
		CurrentPage: page.Page,
		PerPage:     page.PerPage,
	}, nil
}
