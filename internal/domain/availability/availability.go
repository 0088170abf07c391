// Package availability answers whether nights of a listing are free, given the
// listing's reservations and blackout dates.
package availability

import (
	"iter"
	"slices"
	"time"

	"rental-booking/internal/domain/reservation"
	"rental-booking/internal/domain/stay"

	"github.com/google/uuid"
)

// Booking is the minimal view of a reservation the index needs.
type Booking struct {
	ReservationID uuid.UUID
	Stay          stay.Range
	Status        reservation.Status
}

// Conflicts yields bookings whose status blocks and whose nights overlap want.
func Conflicts(want stay.Range, bookings []Booking) iter.Seq[Booking] {
	return func(yield func(Booking) bool) {
		for _, b := range bookings {
			if b.Status.Blocks() && b.Stay.Overlaps(want) {
				if !yield(b) {
					return
				}
			}
		}
	}
}

func IsAvailable(want stay.Range, bookings []Booking, blackouts []time.Time) bool {
	for range Conflicts(want, bookings) {
		return false
	}
	return !slices.ContainsFunc(blackouts, want.Contains)
}

// OccupiedDates returns the sorted, de-duplicated nights inside window taken by
// occupying bookings or blacked out.
func OccupiedDates(window stay.Range, bookings []Booking, blackouts []time.Time) []time.Time {
	seen := make(map[time.Time]struct{})
	var out []time.Time
	add := func(d time.Time) {
		if _, ok := seen[d]; ok {
			return
		}
		seen[d] = struct{}{}
		out = append(out, d)
	}

	for _, b := range bookings {
		if !b.Status.Occupies() {
			continue
		}
		clipped, ok := b.Stay.Clip(window)
		if !ok {
			continue
		}
		for d := range clipped.EachNight() {
			add(d)
		}
	}
	for _, d := range blackouts {
		if window.Contains(d) {
			add(stay.Day(d))
		}
	}

	slices.SortFunc(out, func(a, b time.Time) int { return a.Compare(b) })
	return out
}
