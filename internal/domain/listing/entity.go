package listing

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"rental-booking/internal/domain/money"
	"rental-booking/internal/domain/stay"

	"github.com/google/uuid"
)

const (
	MaxTitleLength       = 200
	MaxDescriptionLength = 5000
)

var (
	ErrInvalidStatus      = errors.New("invalid listing status")
	ErrInvalidTitle       = errors.New("title must be 1 to 200 characters")
	ErrDescriptionTooLong = errors.New("description exceeds maximum length")
	ErrInvalidMinNights   = errors.New("min nights must be at least 1")
	ErrInvalidMaxNights   = errors.New("max nights must not be less than min nights")
	ErrInvalidMaxGuests   = errors.New("max guests must be at least 1")
	ErrStatusNotAllowed   = errors.New("status change not allowed")
	ErrNotBookable        = errors.New("listing is not accepting reservations")
	ErrOverCapacity       = errors.New("guest count exceeds listing capacity")
	ErrStayTooShort       = errors.New("stay is shorter than the minimum nights")
	ErrStayTooLong        = errors.New("stay is longer than the maximum nights")
	ErrNotOwner           = errors.New("listing belongs to another host")
)

type Listing struct {
	id             uuid.UUID
	hostID         uuid.UUID
	title          string
	description    string
	nightlyPrice   money.Money
	cleaningFee    money.Money
	serviceFeeRate money.Rate
	minNights      int
	maxNights      *int
	maxGuests      int
	status         Status
	createdAt      time.Time
	updatedAt      time.Time
}

type Params struct {
	Title          string
	Description    string
	NightlyPrice   money.Money
	CleaningFee    money.Money
	ServiceFeeRate money.Rate
	MinNights      int
	MaxNights      *int
	MaxGuests      int
}

// NewListing starts every listing active; hosts deactivate it explicitly.
func NewListing(hostID uuid.UUID, p Params, now time.Time) (*Listing, error) {
	l := &Listing{
		id:        uuid.New(),
		hostID:    hostID,
		status:    StatusActive,
		createdAt: now,
		updatedAt: now,
	}
	if err := l.apply(p); err != nil {
		return nil, err
	}
	return l, nil
}

type Snapshot struct {
	ID        uuid.UUID
	HostID    uuid.UUID
	Params    Params
	Status    Status
	CreatedAt time.Time
	UpdatedAt time.Time
}

func ReconstructListing(s Snapshot) *Listing {
	return &Listing{
		id:             s.ID,
		hostID:         s.HostID,
		title:          s.Params.Title,
		description:    s.Params.Description,
		nightlyPrice:   s.Params.NightlyPrice,
		cleaningFee:    s.Params.CleaningFee,
		serviceFeeRate: s.Params.ServiceFeeRate,
		minNights:      s.Params.MinNights,
		maxNights:      s.Params.MaxNights,
		maxGuests:      s.Params.MaxGuests,
		status:         s.Status,
		createdAt:      s.CreatedAt,
		updatedAt:      s.UpdatedAt,
	}
}

// Update replaces the editable fields. Existing reservations keep their price snapshot.
func (l *Listing) Update(p Params, now time.Time) error {
	if err := l.apply(p); err != nil {
		return err
	}
	l.updatedAt = now
	return nil
}

func (l *Listing) ChangeStatus(to Status, byAdmin bool, now time.Time) error {
	if !to.IsValid() {
		return ErrInvalidStatus
	}
	if !byAdmin && (!to.HostSettable() || l.status == StatusSuspended) {
		return ErrStatusNotAllowed
	}
	l.status = to
	l.updatedAt = now
	return nil
}

func (l *Listing) apply(p Params) error {
	title := strings.TrimSpace(p.Title)
	if title == "" || utf8.RuneCountInString(title) > MaxTitleLength {
		return ErrInvalidTitle
	}
	description := strings.TrimSpace(p.Description)
	if utf8.RuneCountInString(description) > MaxDescriptionLength {
		return ErrDescriptionTooLong
	}
	if p.MinNights < 1 {
		return ErrInvalidMinNights
	}
	if p.MaxNights != nil && *p.MaxNights < p.MinNights {
		return ErrInvalidMaxNights
	}
	if p.MaxGuests < 1 {
		return ErrInvalidMaxGuests
	}

	l.title = title
	l.description = description
	l.nightlyPrice = p.NightlyPrice
	l.cleaningFee = p.CleaningFee
	l.serviceFeeRate = p.ServiceFeeRate
	l.minNights = p.MinNights
	l.maxNights = p.MaxNights
	l.maxGuests = p.MaxGuests
	return nil
}

// CheckBooking validates a stay request against the listing's own rules.
func (l *Listing) CheckBooking(r stay.Range, guests int) error {
	if !l.status.IsBookable() {
		return ErrNotBookable
	}
	if guests > l.maxGuests {
		return ErrOverCapacity
	}
	return l.CheckStayLength(r)
}

func (l *Listing) CheckStayLength(r stay.Range) error {
	n := r.Nights()
	if n < l.minNights {
		return ErrStayTooShort
	}
	if l.maxNights != nil && n > *l.maxNights {
		return ErrStayTooLong
	}
	return nil
}

func (l *Listing) EnsureOwnedBy(hostID uuid.UUID) error {
	if l.hostID != hostID {
		return ErrNotOwner
	}
	return nil
}

func (l *Listing) Params() Params {
	return Params{
		Title:          l.title,
		Description:    l.description,
		NightlyPrice:   l.nightlyPrice,
		CleaningFee:    l.cleaningFee,
		ServiceFeeRate: l.serviceFeeRate,
		MinNights:      l.minNights,
		MaxNights:      l.maxNights,
		MaxGuests:      l.maxGuests,
	}
}

func (l *Listing) ID() uuid.UUID              { return l.id }
func (l *Listing) HostID() uuid.UUID          { return l.hostID }
func (l *Listing) Title() string              { return l.title }
func (l *Listing) Description() string        { return l.description }
func (l *Listing) NightlyPrice() money.Money  { return l.nightlyPrice }
func (l *Listing) CleaningFee() money.Money   { return l.cleaningFee }
func (l *Listing) ServiceFeeRate() money.Rate { return l.serviceFeeRate }
func (l *Listing) MinNights() int             { return l.minNights }
func (l *Listing) MaxNights() *int            { return l.maxNights }
func (l *Listing) MaxGuests() int             { return l.maxGuests }
func (l *Listing) Status() Status             { return l.status }
func (l *Listing) CreatedAt() time.Time       { return l.createdAt }
func (l *Listing) UpdatedAt() time.Time       { return l.updatedAt }
