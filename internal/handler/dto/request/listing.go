package request

import (
	"rental-booking/internal/domain/money"
	"rental-booking/internal/usecase/commands"
	"rental-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

// Amounts are decimal strings such as "100.00".
type CreateListingRequest struct {
	Title          string  `json:"title" binding:"required,notblank,max=200"`
	Description    string  `json:"description" binding:"max=5000"`
	NightlyPrice   string  `json:"nightlyPrice" binding:"required,amount"`
	CleaningFee    string  `json:"cleaningFee" binding:"omitempty,amount"`
	ServiceFeeRate *string `json:"serviceFeeRate" binding:"omitempty,amount"`
	MinNights      int     `json:"minNights" binding:"omitempty,min=1"`
	MaxNights      *int    `json:"maxNights" binding:"omitempty,min=1"`
	MaxGuests      int     `json:"maxGuests" binding:"required,min=1"`
}

func (r *CreateListingRequest) ToInput() commands.CreateListingInput {
	cleaning := r.CleaningFee
	if cleaning == "" {
		cleaning = "0.00"
	}
	minNights := r.MinNights
	if minNights == 0 {
		minNights = 1
	}
	return commands.CreateListingInput{
		Title:          r.Title,
		Description:    r.Description,
		NightlyPrice:   r.NightlyPrice,
		CleaningFee:    cleaning,
		ServiceFeeRate: r.ServiceFeeRate,
		MinNights:      minNights,
		MaxNights:      r.MaxNights,
		MaxGuests:      r.MaxGuests,
	}
}

type UpdateListingRequest struct {
	Title          *string `json:"title" binding:"omitempty,notblank,max=200"`
	Description    *string `json:"description" binding:"omitempty,max=5000"`
	NightlyPrice   *string `json:"nightlyPrice" binding:"omitempty,amount"`
	CleaningFee    *string `json:"cleaningFee" binding:"omitempty,amount"`
	ServiceFeeRate *string `json:"serviceFeeRate" binding:"omitempty,amount"`
	MinNights      *int    `json:"minNights" binding:"omitempty,min=1"`
	MaxNights      *int    `json:"maxNights" binding:"omitempty,min=1"`
	MaxGuests      *int    `json:"maxGuests" binding:"omitempty,min=1"`
}

func (r *UpdateListingRequest) ToInput() commands.UpdateListingInput {
	return commands.UpdateListingInput{
		Title:          r.Title,
		Description:    r.Description,
		NightlyPrice:   r.NightlyPrice,
		CleaningFee:    r.CleaningFee,
		ServiceFeeRate: r.ServiceFeeRate,
		MinNights:      r.MinNights,
		MaxNights:      r.MaxNights,
		MaxGuests:      r.MaxGuests,
	}
}

type ChangeListingStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=active inactive pending suspended"`
}

type ListingSearchQuery struct {
	Guests    int    `form:"guests" binding:"omitempty,min=1"`
	MinPrice  string `form:"minPrice" binding:"omitempty,amount"`
	MaxPrice  string `form:"maxPrice" binding:"omitempty,amount"`
	HostID    string `form:"hostId" binding:"omitempty,uuid"`
	SortBy    string `form:"sortBy" binding:"omitempty,oneof=price created_at"`
	SortOrder string `form:"sortOrder" binding:"omitempty,oneof=asc desc"`
	Page      int    `form:"page" binding:"omitempty,min=1"`
	PerPage   int    `form:"perPage" binding:"omitempty,min=1,max=200"`
}

func (q *ListingSearchQuery) ToSearch() (queries.ListingSearch, error) {
	search := queries.ListingSearch{
		Guests:    q.Guests,
		SortBy:    q.SortBy,
		SortOrder: q.SortOrder,
	}
	if q.HostID != "" {
		id, err := uuid.Parse(q.HostID)
		if err != nil {
			return queries.ListingSearch{}, err
		}
		search.HostID = &id
	}
	if q.MinPrice != "" {
		m, err := money.Parse(q.MinPrice)
		if err != nil {
			return queries.ListingSearch{}, err
		}
		search.MinPrice = &m
	}
	if q.MaxPrice != "" {
		m, err := money.Parse(q.MaxPrice)
		if err != nil {
			return queries.ListingSearch{}, err
		}
		search.MaxPrice = &m
	}
	return search, nil
}
