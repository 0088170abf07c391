package queries

import (
	"time"

	"rental-booking/internal/domain/money"
	"rental-booking/internal/domain/reservation"

	"github.com/google/uuid"
)

const (
	RoleGuest = "guest"
	RoleHost  = "host"
	RoleAdmin = "admin"
)

// ListingView represents read-optimized listing data
type ListingView struct {
	ID             uuid.UUID
	HostID         uuid.UUID
	Title          string
	Description    string
	NightlyPrice   money.Money
	CleaningFee    money.Money
	ServiceFeeRate money.Rate
	MinNights      int
	MaxNights      *int
	MaxGuests      int
	Status         string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (v *ListingView) PriceTerms() reservation.PriceTerms {
	return reservation.PriceTerms{
		NightlyRate:    v.NightlyPrice,
		CleaningFee:    v.CleaningFee,
		ServiceFeeRate: v.ServiceFeeRate,
	}
}

// ReservationView represents a reservation joined with listing and participant names
type ReservationView struct {
	ID                 uuid.UUID
	ListingID          uuid.UUID
	ListingTitle       string
	GuestID            uuid.UUID
	GuestName          string
	HostID             uuid.UUID
	HostName           string
	CheckIn            time.Time
	CheckOut           time.Time
	Guests             int
	Status             reservation.Status
	Price              reservation.PriceBreakdown
	PaymentReference   *string
	PaymentStatus      string
	SpecialRequests    string
	CancellationReason *string
	CancelledAt        *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// HostReservations groups a host's reservations the way the dashboard shows them.
type HostReservations struct {
	Pending []*ReservationView
	Ongoing []*ReservationView
	Past    []*ReservationView
}

type AvailabilityView struct {
	ListingID uuid.UUID
	CheckIn   time.Time
	CheckOut  time.Time
	Available bool
	// Pricing is set only when the stay can be booked.
	Pricing *reservation.PriceBreakdown
}

type CalendarView struct {
	ListingID     uuid.UUID
	From          time.Time
	To            time.Time
	OccupiedDates []time.Time
}

type BlackoutView struct {
	ID        uuid.UUID
	ListingID uuid.UUID
	Date      time.Time
	Reason    *string
	CreatedAt time.Time
}

// AuthorizedUserView represents read-optimized user data with authorization info
type AuthorizedUserView struct {
	ID        uuid.UUID
	Email     string
	FullName  string
	Role      string
	IsActive  bool
	LastLogin *time.Time
	CreatedAt time.Time
}
