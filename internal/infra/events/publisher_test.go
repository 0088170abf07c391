//go:build unit

package events_test

import (
	"context"
	"testing"

	"rental-booking/internal/infra/events"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
)

func TestRedisPublisher_Publish(t *testing.T) {
	ctx := context.Background()
	payload := []byte(`{"reservationId":"r-1","newStatus":"confirmed"}`)

	t.Run("success: publishes on the configured channel", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		p := events.NewRedisPublisher(db, "reservation.events")

		mock.ExpectPublish("reservation.events", payload).SetVal(1)

		assert.NoError(t, p.Publish(ctx, "reservation.confirmed", payload))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("error: redis failure is wrapped", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		p := events.NewRedisPublisher(db, "reservation.events")

		mock.ExpectPublish("reservation.events", payload).SetErr(assert.AnError)

		err := p.Publish(ctx, "reservation.confirmed", payload)

		assert.ErrorIs(t, err, assert.AnError)
		assert.Contains(t, err.Error(), "reservation.confirmed")
	})
}
