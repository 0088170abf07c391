package blackout

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"rental-booking/internal/domain/stay"

	"github.com/google/uuid"
)

const MaxReasonLength = 255

var (
	ErrReasonTooLong  = errors.New("reason exceeds 255 characters")
	ErrAlreadyBlocked = errors.New("date is already blocked")
	ErrNotBlocked     = errors.New("date is not blocked")
)

// Blackout is a single night the host has taken off the market.
type Blackout struct {
	id        uuid.UUID
	listingID uuid.UUID
	date      time.Time
	reason    *string
	createdAt time.Time
}

func NewBlackout(listingID uuid.UUID, date time.Time, reason string, now time.Time) (*Blackout, error) {
	var r *string
	if trimmed := strings.TrimSpace(reason); trimmed != "" {
		if utf8.RuneCountInString(trimmed) > MaxReasonLength {
			return nil, ErrReasonTooLong
		}
		r = &trimmed
	}
	return &Blackout{
		id:        uuid.New(),
		listingID: listingID,
		date:      stay.Day(date),
		reason:    r,
		createdAt: now,
	}, nil
}

func ReconstructBlackout(id, listingID uuid.UUID, date time.Time, reason *string, createdAt time.Time) *Blackout {
	return &Blackout{id: id, listingID: listingID, date: date, reason: reason, createdAt: createdAt}
}

func (b *Blackout) ID() uuid.UUID        { return b.id }
func (b *Blackout) ListingID() uuid.UUID { return b.listingID }
func (b *Blackout) Date() time.Time      { return b.date }
func (b *Blackout) Reason() *string      { return b.reason }
func (b *Blackout) CreatedAt() time.Time { return b.createdAt }
