//go:build unit || e2e

package builder

import (
	"time"

	"rental-booking/internal/domain/listing"
	"rental-booking/internal/domain/money"
	reqdto "rental-booking/internal/handler/dto/request"
	sqlc "rental-booking/internal/infra/sqlc/generated"
	"rental-booking/internal/pkg/pgconv"
	"rental-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

// ListingBuilder defaults to 100.00 a night, 20.00 cleaning and a 10% service fee.
type ListingBuilder struct {
	ID            uuid.UUID
	HostID        uuid.UUID
	Title         string
	Description   string
	NightlyCents  int64
	CleaningCents int64
	ServiceFeeBps int64
	MinNights     int
	MaxNights     *int
	MaxGuests     int
	Status        string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func NewListingBuilder() *ListingBuilder {
	now := time.Now()
	return &ListingBuilder{
		ID:            uuid.New(),
		HostID:        uuid.New(),
		Title:         "Seaside Loft",
		Description:   "Two rooms by the beach",
		NightlyCents:  10000,
		CleaningCents: 2000,
		ServiceFeeBps: 1000,
		MinNights:     1,
		MaxGuests:     4,
		Status:        "active",
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func (b *ListingBuilder) With(mutate func(*ListingBuilder)) *ListingBuilder {
	mutate(b)
	return b
}

func (b *ListingBuilder) WithHostID(id uuid.UUID) *ListingBuilder {
	b.HostID = id
	return b
}

func (b *ListingBuilder) WithStatus(status string) *ListingBuilder {
	b.Status = status
	return b
}

func (b *ListingBuilder) WithMaxGuests(n int) *ListingBuilder {
	b.MaxGuests = n
	return b
}

func (b *ListingBuilder) WithNights(minNights int, maxNights *int) *ListingBuilder {
	b.MinNights = minNights
	b.MaxNights = maxNights
	return b
}

func (b *ListingBuilder) params() listing.Params {
	return listing.Params{
		Title:          b.Title,
		Description:    b.Description,
		NightlyPrice:   money.MustFromCents(b.NightlyCents),
		CleaningFee:    money.MustFromCents(b.CleaningCents),
		ServiceFeeRate: money.MustRate(b.ServiceFeeBps),
		MinNights:      b.MinNights,
		MaxNights:      b.MaxNights,
		MaxGuests:      b.MaxGuests,
	}
}

// Build methods
func (b *ListingBuilder) BuildDomain() *listing.Listing {
	return listing.ReconstructListing(listing.Snapshot{
		ID:        b.ID,
		HostID:    b.HostID,
		Params:    b.params(),
		Status:    listing.Status(b.Status),
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	})
}

func (b *ListingBuilder) BuildInfra() sqlc.Listings {
	return sqlc.Listings{
		ID:                b.ID,
		HostID:            b.HostID,
		Title:             b.Title,
		Description:       b.Description,
		NightlyPriceCents: b.NightlyCents,
		CleaningFeeCents:  b.CleaningCents,
		ServiceFeeBps:     int32(b.ServiceFeeBps),
		MinNights:         int32(b.MinNights),
		MaxNights:         pgconv.IntPtrToPgtype(b.MaxNights),
		MaxGuests:         int32(b.MaxGuests),
		Status:            b.Status,
		CreatedAt:         pgconv.TimeToPgtype(b.CreatedAt),
		UpdatedAt:         pgconv.TimeToPgtype(b.UpdatedAt),
	}
}

func (b *ListingBuilder) BuildView() *queries.ListingView {
	p := b.params()
	return &queries.ListingView{
		ID:             b.ID,
		HostID:         b.HostID,
		Title:          b.Title,
		Description:    b.Description,
		NightlyPrice:   p.NightlyPrice,
		CleaningFee:    p.CleaningFee,
		ServiceFeeRate: p.ServiceFeeRate,
		MinNights:      b.MinNights,
		MaxNights:      b.MaxNights,
		MaxGuests:      b.MaxGuests,
		Status:         b.Status,
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
}

func (b *ListingBuilder) BuildCreateRequestDTO() reqdto.CreateListingRequest {
	p := b.params()
	rate := p.ServiceFeeRate.String()
	return reqdto.CreateListingRequest{
		Title:          b.Title,
		Description:    b.Description,
		NightlyPrice:   p.NightlyPrice.String(),
		CleaningFee:    p.CleaningFee.String(),
		ServiceFeeRate: &rate,
		MinNights:      b.MinNights,
		MaxNights:      b.MaxNights,
		MaxGuests:      b.MaxGuests,
	}
}
