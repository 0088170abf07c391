package reservation

import (
	"time"

	"github.com/google/uuid"
)

// Event is published after a reservation is created or changes status.
type Event struct {
	ReservationID uuid.UUID `json:"reservationId"`
	ListingID     uuid.UUID `json:"listingId"`
	GuestID       uuid.UUID `json:"guestId"`
	HostID        uuid.UUID `json:"hostId"`
	Status        Status    `json:"newStatus"`
	PaymentStatus string    `json:"paymentStatus"`
	OccurredAt    time.Time `json:"occurredAt"`
}

func (e Event) Type() string {
	return "reservation." + e.Status.String()
}
