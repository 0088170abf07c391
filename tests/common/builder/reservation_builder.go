//go:build unit || e2e

package builder

import (
	"time"

	"rental-booking/internal/domain/money"
	"rental-booking/internal/domain/reservation"
	"rental-booking/internal/domain/stay"
	reqdto "rental-booking/internal/handler/dto/request"
	"rental-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationBuilder struct {
	ID        uuid.UUID
	ListingID uuid.UUID
	GuestID   uuid.UUID
	HostID    uuid.UUID
	CheckIn   string
	CheckOut  string
	Guests    int
	Status    reservation.Status
	CreatedAt time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		ID:        uuid.New(),
		ListingID: uuid.New(),
		GuestID:   uuid.New(),
		HostID:    uuid.New(),
		CheckIn:   "2025-03-01",
		CheckOut:  "2025-03-04",
		Guests:    2,
		Status:    reservation.StatusPending,
		CreatedAt: time.Now(),
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) WithStay(checkIn, checkOut string) *ReservationBuilder {
	b.CheckIn = checkIn
	b.CheckOut = checkOut
	return b
}

func (b *ReservationBuilder) WithStatus(status reservation.Status) *ReservationBuilder {
	b.Status = status
	return b
}

func (b *ReservationBuilder) ForListing(listingID, hostID uuid.UUID) *ReservationBuilder {
	b.ListingID = listingID
	b.HostID = hostID
	return b
}

func (b *ReservationBuilder) WithGuestID(id uuid.UUID) *ReservationBuilder {
	b.GuestID = id
	return b
}

func (b *ReservationBuilder) Stay() stay.Range {
	r, err := stay.ParseRange(b.CheckIn, b.CheckOut)
	if err != nil {
		panic(err)
	}
	return r
}

// Price uses the default listing terms: 100.00 a night, 20.00 cleaning, 10% fee.
func (b *ReservationBuilder) Price() reservation.PriceBreakdown {
	terms := reservation.PriceTerms{
		NightlyRate:    money.MustFromCents(10000),
		CleaningFee:    money.MustFromCents(2000),
		ServiceFeeRate: money.MustRate(1000),
	}
	p, err := reservation.CalculatePrice(terms, b.Stay())
	if err != nil {
		panic(err)
	}
	return p
}

// Build methods
func (b *ReservationBuilder) BuildDomain() *reservation.Reservation {
	return reservation.ReconstructReservation(reservation.Snapshot{
		ID:            b.ID,
		ListingID:     b.ListingID,
		GuestID:       b.GuestID,
		HostID:        b.HostID,
		Stay:          b.Stay(),
		Guests:        b.Guests,
		Status:        b.Status,
		Price:         b.Price(),
		PaymentStatus: reservation.DefaultPaymentStatus,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.CreatedAt,
	})
}

func (b *ReservationBuilder) BuildView() *queries.ReservationView {
	r := b.Stay()
	return &queries.ReservationView{
		ID:            b.ID,
		ListingID:     b.ListingID,
		ListingTitle:  "Seaside Loft",
		GuestID:       b.GuestID,
		GuestName:     "Test Guest",
		HostID:        b.HostID,
		HostName:      "Test Host",
		CheckIn:       r.CheckIn(),
		CheckOut:      r.CheckOut(),
		Guests:        b.Guests,
		Status:        b.Status,
		Price:         b.Price(),
		PaymentStatus: reservation.DefaultPaymentStatus,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.CreatedAt,
	}
}

func (b *ReservationBuilder) BuildCreateRequestDTO() reqdto.CreateReservationRequest {
	return reqdto.CreateReservationRequest{
		ListingID:       b.ListingID,
		CheckIn:         b.CheckIn,
		CheckOut:        b.CheckOut,
		Guests:          b.Guests,
		SpecialRequests: "Late arrival",
	}
}
