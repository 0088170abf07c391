package queries

import (
	"context"
	"log/slog"
	"time"

	"rental-booking/internal/domain/availability"
	"rental-booking/internal/domain/listing"
	"rental-booking/internal/domain/reservation"
	"rental-booking/internal/domain/stay"
	"rental-booking/internal/pkg/errs"
	"rental-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrCalendarWindowTooLarge = errs.New("calendar window too large")

// OccupancyReadStore reads what holds a listing's nights inside a window.
type OccupancyReadStore interface {
	Bookings(ctx context.Context, listingID uuid.UUID, window stay.Range, statuses []reservation.Status) ([]availability.Booking, error)
	BlackoutDates(ctx context.Context, listingID uuid.UUID, window stay.Range) ([]time.Time, error)
}

type AvailabilityQueries interface {
	CheckAvailability(ctx context.Context, listingID uuid.UUID, checkIn, checkOut time.Time) (*AvailabilityView, error)
	GetCalendar(ctx context.Context, listingID uuid.UUID, from, to time.Time) (*CalendarView, error)
}

type availabilityQueriesImpl struct {
	listings  ListingReadStore
	occupancy OccupancyReadStore
	cache     shared.CalendarCache
	maxDays   int
}

// NewAvailabilityQueries accepts a nil cache, in which case every calendar read hits the store.
func NewAvailabilityQueries(listings ListingReadStore, occupancy OccupancyReadStore, cache shared.CalendarCache, maxDays int) AvailabilityQueries {
	return &availabilityQueriesImpl{
		listings:  listings,
		occupancy: occupancy,
		cache:     cache,
		maxDays:   maxDays,
	}
}

func (q *availabilityQueriesImpl) CheckAvailability(ctx context.Context, listingID uuid.UUID, checkIn, checkOut time.Time) (*AvailabilityView, error) {
	want, err := stay.NewRange(checkIn, checkOut)
	if err != nil {
		return nil, shared.Classify(err)
	}

	view, err := q.listings.FindByID(ctx, listingID)
	if err != nil {
		return nil, shared.Classify(err)
	}

	bookings, err := q.occupancy.Bookings(ctx, listingID, want, reservation.BlockingStatuses())
	if err != nil {
		return nil, err
	}
	blackouts, err := q.occupancy.BlackoutDates(ctx, listingID, want)
	if err != nil {
		return nil, err
	}

	out := &AvailabilityView{
		ListingID: listingID,
		CheckIn:   want.CheckIn(),
		CheckOut:  want.CheckOut(),
		Available: listing.Status(view.Status).IsBookable() && availability.IsAvailable(want, bookings, blackouts),
	}
	if out.Available {
		price, err := reservation.CalculatePrice(view.PriceTerms(), want)
		if err != nil {
			return nil, shared.Classify(err)
		}
		out.Pricing = &price
	}
	return out, nil
}

func (q *availabilityQueriesImpl) GetCalendar(ctx context.Context, listingID uuid.UUID, from, to time.Time) (*CalendarView, error) {
	window, err := stay.NewRange(from, to)
	if err != nil {
		return nil, shared.Classify(err)
	}
	if q.maxDays > 0 && window.Nights() > q.maxDays {
		return nil, errs.Mark(errs.Wrapf(ErrCalendarWindowTooLarge, "max %d days", q.maxDays), shared.ErrInvalidRange)
	}

	if _, err := q.listings.FindByID(ctx, listingID); err != nil {
		return nil, shared.Classify(err)
	}

	out := &CalendarView{ListingID: listingID, From: window.CheckIn(), To: window.CheckOut()}

	cached := q.cache != nil
	var gen int64
	if cached {
		gen, err = q.cache.Generation(ctx, listingID)
		if err != nil {
			slog.WarnContext(ctx, "calendar cache generation read failed", "listing_id", listingID, "error", err.Error())
			cached = false
		}
	}

	if cached {
		dates, ok, err := q.cache.Get(ctx, listingID, gen, out.From, out.To)
		if err != nil {
			slog.WarnContext(ctx, "calendar cache read failed", "listing_id", listingID, "error", err.Error())
		} else if ok {
			out.OccupiedDates = dates
			return out, nil
		}
	}

	bookings, err := q.occupancy.Bookings(ctx, listingID, window, reservation.OccupyingStatuses())
	if err != nil {
		return nil, err
	}
	blackouts, err := q.occupancy.BlackoutDates(ctx, listingID, window)
	if err != nil {
		return nil, err
	}
	out.OccupiedDates = availability.OccupiedDates(window, bookings, blackouts)

	if cached {
		if err := q.cache.Set(ctx, listingID, gen, out.From, out.To, out.OccupiedDates); err != nil {
			slog.WarnContext(ctx, "calendar cache write failed", "listing_id", listingID, "error", err.Error())
		}
	}
	return out, nil
}
