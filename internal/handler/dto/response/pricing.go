package response

import (
	"rental-booking/internal/domain/reservation"
)

type PricingResponse struct {
	NightlyRate    string `json:"nightlyRate"`
	Nights         int    `json:"nights"`
	Subtotal       string `json:"subtotal"`
	CleaningFee    string `json:"cleaningFee"`
	ServiceFeeRate string `json:"serviceFeeRate"`
	ServiceFee     string `json:"serviceFee"`
	Total          string `json:"total"`
}

func FromPriceBreakdown(p reservation.PriceBreakdown) PricingResponse {
	return PricingResponse{
		NightlyRate:    p.NightlyRate.String(),
		Nights:         p.Nights,
		Subtotal:       p.Subtotal.String(),
		CleaningFee:    p.CleaningFee.String(),
		ServiceFeeRate: p.ServiceFeeRate.String(),
		ServiceFee:     p.ServiceFee.String(),
		Total:          p.Total.String(),
	}
}
