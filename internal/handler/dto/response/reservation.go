package response

import (
	"time"

	"rental-booking/internal/domain/stay"
	"rental-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationResponse struct {
	ID                 uuid.UUID       `json:"id"`
	ListingID          uuid.UUID       `json:"listingId"`
	ListingTitle       string          `json:"listingTitle"`
	GuestID            uuid.UUID       `json:"guestId"`
	GuestName          string          `json:"guestName"`
	HostID             uuid.UUID       `json:"hostId"`
	HostName           string          `json:"hostName"`
	CheckIn            string          `json:"checkIn"`
	CheckOut           string          `json:"checkOut"`
	Guests             int             `json:"guests"`
	Status             string          `json:"status"`
	Pricing            PricingResponse `json:"pricing"`
	PaymentReference   *string         `json:"paymentReference,omitempty"`
	PaymentStatus      string          `json:"paymentStatus"`
	SpecialRequests    string          `json:"specialRequests,omitempty"`
	CancellationReason *string         `json:"cancellationReason,omitempty"`
	CancelledAt        *time.Time      `json:"cancelledAt,omitempty"`
	CreatedAt          time.Time       `json:"createdAt"`
	UpdatedAt          time.Time       `json:"updatedAt"`
}

func FromReservationView(v *queries.ReservationView) *ReservationResponse {
	return &ReservationResponse{
		ID:                 v.ID,
		ListingID:          v.ListingID,
		ListingTitle:       v.ListingTitle,
		GuestID:            v.GuestID,
		GuestName:          v.GuestName,
		HostID:             v.HostID,
		HostName:           v.HostName,
		CheckIn:            stay.FormatDate(v.CheckIn),
		CheckOut:           stay.FormatDate(v.CheckOut),
		Guests:             v.Guests,
		Status:             v.Status.String(),
		Pricing:            FromPriceBreakdown(v.Price),
		PaymentReference:   v.PaymentReference,
		PaymentStatus:      v.PaymentStatus,
		SpecialRequests:    v.SpecialRequests,
		CancellationReason: v.CancellationReason,
		CancelledAt:        v.CancelledAt,
		CreatedAt:          v.CreatedAt,
		UpdatedAt:          v.UpdatedAt,
	}
}

func FromReservationViews(views []*queries.ReservationView) []*ReservationResponse {
	out := make([]*ReservationResponse, len(views))
	for i, v := range views {
		out[i] = FromReservationView(v)
	}
	return out
}

type HostReservationsResponse struct {
	Pending []*ReservationResponse `json:"pending"`
	Ongoing []*ReservationResponse `json:"ongoing"`
	Past    []*ReservationResponse `json:"past"`
}

func FromHostReservations(h *queries.HostReservations) *HostReservationsResponse {
	return &HostReservationsResponse{
		Pending: FromReservationViews(h.Pending),
		Ongoing: FromReservationViews(h.Ongoing),
		Past:    FromReservationViews(h.Past),
	}
}
