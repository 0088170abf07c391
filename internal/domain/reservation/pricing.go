package reservation

import (
	"rental-booking/internal/domain/money"
	"rental-booking/internal/domain/stay"
)

// PriceTerms are the listing's pricing inputs at the time of booking.
type PriceTerms struct {
	NightlyRate    money.Money
	CleaningFee    money.Money
	ServiceFeeRate money.Rate
}

type PriceBreakdown struct {
	NightlyRate    money.Money
	Nights         int
	Subtotal       money.Money
	CleaningFee    money.Money
	ServiceFeeRate money.Rate
	ServiceFee     money.Money
	Total          money.Money
}

func CalculatePrice(terms PriceTerms, r stay.Range) (PriceBreakdown, error) {
	nights := r.Nights()
	if nights <= 0 {
		return PriceBreakdown{}, stay.ErrInvalidRange
	}

	subtotal := terms.NightlyRate.Times(nights)
	serviceFee := subtotal.ApplyRate(terms.ServiceFeeRate)

	return PriceBreakdown{
		NightlyRate:    terms.NightlyRate,
		Nights:         nights,
		Subtotal:       subtotal,
		CleaningFee:    terms.CleaningFee,
		ServiceFeeRate: terms.ServiceFeeRate,
		ServiceFee:     serviceFee,
		Total:          subtotal.Add(terms.CleaningFee).Add(serviceFee),
	}, nil
}
