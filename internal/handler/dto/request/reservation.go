package request

import (
	"rental-booking/internal/domain/stay"
	"rental-booking/internal/usecase/commands"

	"github.com/google/uuid"
)

// Dates are calendar days formatted as YYYY-MM-DD.
type CreateReservationRequest struct {
	ListingID       uuid.UUID `json:"listingId" binding:"required"`
	CheckIn         string    `json:"checkIn" binding:"required,isodate"`
	CheckOut        string    `json:"checkOut" binding:"required,isodate"`
	Guests          int       `json:"guests" binding:"required,min=1"`
	SpecialRequests string    `json:"specialRequests" binding:"max=1000"`
}

func (r *CreateReservationRequest) ToInput() (commands.CreateReservationInput, error) {
	checkIn, err := stay.ParseDate(r.CheckIn)
	if err != nil {
		return commands.CreateReservationInput{}, err
	}
	checkOut, err := stay.ParseDate(r.CheckOut)
	if err != nil {
		return commands.CreateReservationInput{}, err
	}
	return commands.CreateReservationInput{
		ListingID:       r.ListingID,
		CheckIn:         checkIn,
		CheckOut:        checkOut,
		Guests:          r.Guests,
		SpecialRequests: r.SpecialRequests,
	}, nil
}

// ReasonRequest is the optional body of reject and cancel.
type ReasonRequest struct {
	Reason string `json:"reason" binding:"max=500"`
}

type PaymentRequest struct {
	Reference string `json:"reference" binding:"required,notblank,max=100"`
	Status    string `json:"status" binding:"required,notblank,max=100"`
}

type StayQuery struct {
	CheckIn  string `form:"checkIn" binding:"required,isodate"`
	CheckOut string `form:"checkOut" binding:"required,isodate"`
}

type WindowQuery struct {
	From string `form:"from" binding:"required,isodate"`
	To   string `form:"to" binding:"required,isodate"`
}

type PageQuery struct {
	Limit  int `form:"limit" binding:"omitempty,min=1,max=200"`
	Offset int `form:"offset" binding:"omitempty,min=0"`
}
