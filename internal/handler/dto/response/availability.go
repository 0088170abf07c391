package response

import (
	"rental-booking/internal/domain/stay"
	"rental-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type AvailabilityResponse struct {
	ListingID uuid.UUID        `json:"listingId"`
	CheckIn   string           `json:"checkIn"`
	CheckOut  string           `json:"checkOut"`
	Available bool             `json:"available"`
	Pricing   *PricingResponse `json:"pricing,omitempty"`
}

func FromAvailabilityView(v *queries.AvailabilityView) *AvailabilityResponse {
	resp := &AvailabilityResponse{
		ListingID: v.ListingID,
		CheckIn:   stay.FormatDate(v.CheckIn),
		CheckOut:  stay.FormatDate(v.CheckOut),
		Available: v.Available,
	}
	if v.Pricing != nil {
		p := FromPriceBreakdown(*v.Pricing)
		resp.Pricing = &p
	}
	return resp
}

type CalendarResponse struct {
	ListingID     uuid.UUID `json:"listingId"`
	From          string    `json:"from"`
	To            string    `json:"to"`
	OccupiedDates []string  `json:"occupiedDates"`
}

func FromCalendarView(v *queries.CalendarView) *CalendarResponse {
	dates := make([]string, len(v.OccupiedDates))
	for i, d := range v.OccupiedDates {
		dates[i] = stay.FormatDate(d)
	}
	return &CalendarResponse{
		ListingID:     v.ListingID,
		From:          stay.FormatDate(v.From),
		To:            stay.FormatDate(v.To),
		OccupiedDates: dates,
	}
}

type BlackoutResponse struct {
	ID     uuid.UUID `json:"id"`
	Date   string    `json:"date"`
	Reason *string   `json:"reason,omitempty"`
}

func FromBlackoutView(v *queries.BlackoutView) *BlackoutResponse {
	return &BlackoutResponse{ID: v.ID, Date: stay.FormatDate(v.Date), Reason: v.Reason}
}

func FromBlackoutViews(views []*queries.BlackoutView) []*BlackoutResponse {
	out := make([]*BlackoutResponse, len(views))
	for i, v := range views {
		out[i] = FromBlackoutView(v)
	}
	return out
}
