//go:build unit

package availability_test

import (
	"testing"
	"time"

	"rental-booking/internal/domain/availability"
	"rental-booking/internal/domain/reservation"
	"rental-booking/internal/domain/stay"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rng(t *testing.T, in, out string) stay.Range {
	t.Helper()
	r, err := stay.ParseRange(in, out)
	require.NoError(t, err)
	return r
}

func day(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := stay.ParseDate(s)
	require.NoError(t, err)
	return d
}

func booking(t *testing.T, in, out string, status reservation.Status) availability.Booking {
	return availability.Booking{ReservationID: uuid.New(), Stay: rng(t, in, out), Status: status}
}

func TestIsAvailable(t *testing.T) {
	existing := []availability.Booking{
		booking(t, "2024-03-01", "2024-03-05", reservation.StatusConfirmed),
	}

	t.Run("隣接する滞在は予約可能", func(t *testing.T) {
		assert.True(t, availability.IsAvailable(rng(t, "2024-03-05", "2024-03-08"), existing, nil))
	})

	t.Run("重なる滞在は予約不可", func(t *testing.T) {
		assert.False(t, availability.IsAvailable(rng(t, "2024-03-04", "2024-03-06"), existing, nil))
	})

	t.Run("拒否・キャンセルはブロックしない", func(t *testing.T) {
		released := []availability.Booking{
			booking(t, "2024-03-01", "2024-03-05", reservation.StatusRejected),
			booking(t, "2024-03-01", "2024-03-05", reservation.StatusCancelled),
			booking(t, "2024-03-01", "2024-03-05", reservation.StatusCompleted),
		}
		assert.True(t, availability.IsAvailable(rng(t, "2024-03-02", "2024-03-03"), released, nil))
	})

	t.Run("pendingもブロックする", func(t *testing.T) {
		pending := []availability.Booking{booking(t, "2024-03-10", "2024-03-12", reservation.StatusPending)}
		assert.False(t, availability.IsAvailable(rng(t, "2024-03-11", "2024-03-13"), pending, nil))
	})

	t.Run("ブラックアウト日を含むと予約不可", func(t *testing.T) {
		blackouts := []time.Time{day(t, "2024-03-20")}
		assert.False(t, availability.IsAvailable(rng(t, "2024-03-19", "2024-03-21"), nil, blackouts))
		// check-out day itself is not a night of the stay
		assert.True(t, availability.IsAvailable(rng(t, "2024-03-18", "2024-03-20"), nil, blackouts))
	})
}

func TestConflicts(t *testing.T) {
	a := booking(t, "2024-03-01", "2024-03-05", reservation.StatusPending)
	b := booking(t, "2024-03-03", "2024-03-07", reservation.StatusConfirmed)
	c := booking(t, "2024-03-10", "2024-03-12", reservation.StatusConfirmed)

	var got []uuid.UUID
	for x := range availability.Conflicts(rng(t, "2024-03-04", "2024-03-06"), []availability.Booking{a, b, c}) {
		got = append(got, x.ReservationID)
	}
	assert.Equal(t, []uuid.UUID{a.ReservationID, b.ReservationID}, got)
}

func TestOccupiedDates(t *testing.T) {
	bookings := []availability.Booking{
		booking(t, "2024-02-28", "2024-03-02", reservation.StatusConfirmed),
		booking(t, "2024-03-01", "2024-03-03", reservation.StatusPending),
		booking(t, "2024-03-05", "2024-03-06", reservation.StatusCompleted),
		booking(t, "2024-03-07", "2024-03-09", reservation.StatusCancelled),
	}
	blackouts := []time.Time{day(t, "2024-03-04"), day(t, "2024-03-02"), day(t, "2024-04-10")}

	got := availability.OccupiedDates(rng(t, "2024-03-01", "2024-03-10"), bookings, blackouts)

	var formatted []string
	for _, d := range got {
		formatted = append(formatted, stay.FormatDate(d))
	}
	assert.Equal(t, []string{"2024-03-01", "2024-03-02", "2024-03-04", "2024-03-05"}, formatted)
}
