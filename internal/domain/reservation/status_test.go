//go:build unit

package reservation_test

import (
	"testing"

	"rental-booking/internal/domain/reservation"

	"github.com/stretchr/testify/assert"
)

func TestStatusTransitions(t *testing.T) {
	all := []reservation.Status{
		reservation.StatusPending,
		reservation.StatusConfirmed,
		reservation.StatusRejected,
		reservation.StatusCancelled,
		reservation.StatusCompleted,
	}
	allowed := map[reservation.Status][]reservation.Status{
		reservation.StatusPending:   {reservation.StatusConfirmed, reservation.StatusRejected, reservation.StatusCancelled},
		reservation.StatusConfirmed: {reservation.StatusCompleted, reservation.StatusCancelled},
	}

	for _, from := range all {
		for _, to := range all {
			want := false
			for _, a := range allowed[from] {
				if a == to {
					want = true
				}
			}
			assert.Equalf(t, want, from.CanTransitionTo(to), "%s -> %s", from, to)
		}
	}

	t.Run("終端状態", func(t *testing.T) {
		assert.False(t, reservation.StatusPending.IsTerminal())
		assert.False(t, reservation.StatusConfirmed.IsTerminal())
		assert.True(t, reservation.StatusRejected.IsTerminal())
		assert.True(t, reservation.StatusCancelled.IsTerminal())
		assert.True(t, reservation.StatusCompleted.IsTerminal())
	})

	t.Run("SourceStates", func(t *testing.T) {
		assert.Equal(t, []reservation.Status{reservation.StatusConfirmed}, reservation.SourceStates(reservation.StatusCompleted))
		assert.Equal(t,
			[]reservation.Status{reservation.StatusPending, reservation.StatusConfirmed},
			reservation.SourceStates(reservation.StatusCancelled))
		assert.Empty(t, reservation.SourceStates(reservation.StatusPending))
	})

	t.Run("ブロックと占有", func(t *testing.T) {
		assert.True(t, reservation.StatusPending.Blocks())
		assert.True(t, reservation.StatusConfirmed.Blocks())
		assert.False(t, reservation.StatusCompleted.Blocks())
		assert.True(t, reservation.StatusCompleted.Occupies())
		assert.False(t, reservation.StatusRejected.Occupies())
		assert.False(t, reservation.StatusCancelled.Occupies())
	})
}

func TestParseStatus(t *testing.T) {
	s, err := reservation.ParseStatus("confirmed")
	assert.NoError(t, err)
	assert.Equal(t, reservation.StatusConfirmed, s)

	_, err = reservation.ParseStatus("CONFIRMED")
	assert.ErrorIs(t, err, reservation.ErrInvalidStatus)
}
