package converter

import (
	"rental-booking/internal/domain/money"
	"rental-booking/internal/domain/reservation"
	"rental-booking/internal/domain/stay"
	sqlc "rental-booking/internal/infra/sqlc/generated"
	"rental-booking/internal/pkg/errs"
	"rental-booking/internal/pkg/pgconv"
)

func ReservationToCreateParams(res *reservation.Reservation) sqlc.CreateReservationParams {
	price := res.Price()
	return sqlc.CreateReservationParams{
		ID:               res.ID(),
		ListingID:        res.ListingID(),
		GuestID:          res.GuestID(),
		HostID:           res.HostID(),
		CheckIn:          pgconv.DateToPgtype(res.Stay().CheckIn()),
		CheckOut:         pgconv.DateToPgtype(res.Stay().CheckOut()),
		Guests:           pgconv.ClampInt32(res.Guests()),
		Status:           res.Status().String(),
		NightlyRateCents: price.NightlyRate.Cents(),
		Nights:           pgconv.ClampInt32(price.Nights),
		SubtotalCents:    price.Subtotal.Cents(),
		CleaningFeeCents: price.CleaningFee.Cents(),
		ServiceFeeBps:    pgconv.ClampInt32(int(price.ServiceFeeRate.BasisPoints())),
		ServiceFeeCents:  price.ServiceFee.Cents(),
		TotalCents:       price.Total.Cents(),
		PaymentStatus:    res.PaymentStatus(),
		SpecialRequests:  res.SpecialRequests(),
		CreatedAt:        pgconv.TimeToPgtype(res.CreatedAt()),
		UpdatedAt:        pgconv.TimeToPgtype(res.UpdatedAt()),
	}
}

func ReservationToStatusParams(res *reservation.Reservation) sqlc.UpdateReservationStatusParams {
	return sqlc.UpdateReservationStatusParams{
		ID:                 res.ID(),
		Status:             res.Status().String(),
		CancellationReason: pgconv.StringPtrToPgtype(res.CancellationReason()),
		CancelledBy:        pgconv.UUIDPtrToPgtype(res.CancelledBy()),
		CancelledAt:        pgconv.TimePtrToPgtype(res.CancelledAt()),
		UpdatedAt:          pgconv.TimeToPgtype(res.UpdatedAt()),
	}
}

func ReservationToPaymentParams(res *reservation.Reservation) sqlc.UpdateReservationPaymentParams {
	return sqlc.UpdateReservationPaymentParams{
		ID:               res.ID(),
		PaymentReference: pgconv.StringPtrToPgtype(res.PaymentReference()),
		PaymentStatus:    res.PaymentStatus(),
		UpdatedAt:        pgconv.TimeToPgtype(res.UpdatedAt()),
	}
}

func ReservationFromRow(row sqlc.Reservations) (*reservation.Reservation, error) {
	status, err := reservation.ParseStatus(row.Status)
	if err != nil {
		return nil, errs.Wrapf(err, "reservation %s", row.ID)
	}
	r, err := stay.NewRange(pgconv.DateFromPgtype(row.CheckIn), pgconv.DateFromPgtype(row.CheckOut))
	if err != nil {
		return nil, errs.Wrapf(err, "reservation %s", row.ID)
	}
	price, err := PriceFromColumns(row.NightlyRateCents, row.Nights, row.SubtotalCents, row.CleaningFeeCents, row.ServiceFeeBps, row.ServiceFeeCents, row.TotalCents)
	if err != nil {
		return nil, errs.Wrapf(err, "reservation %s", row.ID)
	}

	return reservation.ReconstructReservation(reservation.Snapshot{
		ID:                 row.ID,
		ListingID:          row.ListingID,
		GuestID:            row.GuestID,
		HostID:             row.HostID,
		Stay:               r,
		Guests:             int(row.Guests),
		Status:             status,
		Price:              price,
		PaymentReference:   pgconv.StringPtrFromPgtype(row.PaymentReference),
		PaymentStatus:      row.PaymentStatus,
		SpecialRequests:    row.SpecialRequests,
		CancellationReason: pgconv.StringPtrFromPgtype(row.CancellationReason),
		CancelledBy:        pgconv.UUIDPtrFromPgtype(row.CancelledBy),
		CreatedAt:          pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:          pgconv.TimeFromPgtype(row.UpdatedAt),
		CancelledAt:        pgconv.TimePtrFromPgtype(row.CancelledAt),
	}), nil
}

// PriceFromColumns rebuilds the stored snapshot without recalculating it.
func PriceFromColumns(nightlyCents int64, nights int32, subtotalCents, cleaningCents int64, feeBps int32, feeCents, totalCents int64) (reservation.PriceBreakdown, error) {
	rate, err := money.RateFromBasisPoints(int64(feeBps))
	if err != nil {
		return reservation.PriceBreakdown{}, err
	}
	amounts := []int64{nightlyCents, subtotalCents, cleaningCents, feeCents, totalCents}
	values := make([]money.Money, len(amounts))
	for i, c := range amounts {
		m, err := money.FromCents(c)
		if err != nil {
			return reservation.PriceBreakdown{}, err
		}
		values[i] = m
	}

	return reservation.PriceBreakdown{
		NightlyRate:    values[0],
		Nights:         int(nights),
		Subtotal:       values[1],
		CleaningFee:    values[2],
		ServiceFeeRate: rate,
		ServiceFee:     values[3],
		Total:          values[4],
	}, nil
}
