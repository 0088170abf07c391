//go:build unit

package commands_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"rental-booking/internal/domain/reservation"
	sqlc "rental-booking/internal/infra/sqlc/generated"
	"rental-booking/internal/pkg/clock"
	"rental-booking/internal/usecase/commands"
	"rental-booking/internal/usecase/shared"
	sharedmock "rental-booking/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCompletionCommands_CompleteDue(t *testing.T) {
	ctx := context.Background()

	t.Run("success: completes due stays and queues a completed event for each", func(t *testing.T) {
		m := newTxMocks(t)
		uc := commands.NewCompletionCommands(m.uow, clock.NewMockClock(testNow))
		guestID := uuid.New()
		scope := shared.CompletionScope{GuestID: &guestID, Limit: 10}
		done := []shared.CompletedReservation{
			{ID: uuid.New(), ListingID: uuid.New(), GuestID: guestID, HostID: uuid.New(), PaymentStatus: "paid"},
			{ID: uuid.New(), ListingID: uuid.New(), GuestID: guestID, HostID: uuid.New(), PaymentStatus: "pending"},
		}

		m.reservations.EXPECT().CompleteDue(ctx, m.db, time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), testNow, scope).Return(done, nil)
		var topics []string
		m.notifications.EXPECT().Enqueue(ctx, m.db, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, job shared.NewNotificationJob) error {
				var ev reservation.Event
				require.NoError(t, json.Unmarshal(job.Payload, &ev))
				assert.Equal(t, reservation.StatusCompleted, ev.Status)
				topics = append(topics, job.Topic)
				return nil
			}).Times(2)

		n, err := uc.CompleteDue(ctx, scope)

		require.NoError(t, err)
		assert.Equal(t, 2, n)
		assert.Equal(t, []string{"reservation.completed", "reservation.completed"}, topics)
	})

	t.Run("error: repository failure rolls back and reports nothing completed", func(t *testing.T) {
		m := newTxMocks(t)
		uc := commands.NewCompletionCommands(m.uow, clock.NewMockClock(testNow))

		m.reservations.EXPECT().CompleteDue(ctx, m.db, gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("connection reset"))

		n, err := uc.CompleteDue(ctx, shared.CompletionScope{})

		require.Error(t, err)
		assert.Zero(t, n)
	})
}

// trackTx counts transactions on m.uow and reports whether one is open.
func trackTx(t *testing.T, m *txMocks) (open func() bool, count func() int) {
	var inTx bool
	var n int
	m.uow = sharedmock.NewMockUnitOfWork(gomock.NewController(t))
	m.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			n++
			inTx = true
			defer func() { inTx = false }()
			return fn(ctx, m.tx)
		}).AnyTimes()
	return func() bool { return inTx }, func() int { return n }
}

func TestOutboxCommands_DispatchDue(t *testing.T) {
	ctx := context.Background()
	lease := testNow.Add(commands.ClaimLease)

	t.Run("success: sent and failed jobs are marked separately", func(t *testing.T) {
		m := newTxMocks(t)
		publisher := sharedmock.NewMockEventPublisher(gomock.NewController(t))
		uc := commands.NewOutboxCommands(m.uow, publisher, clock.NewMockClock(testNow), 50, 5)

		ok := shared.NotificationJob{ID: uuid.New(), Topic: "reservation.pending", Payload: []byte(`{}`)}
		bad := shared.NotificationJob{ID: uuid.New(), Topic: "reservation.confirmed", Payload: []byte(`{}`), Attempts: 2}

		m.notifications.EXPECT().ClaimDue(ctx, m.db, testNow, lease, int32(50), int32(5)).Return([]shared.NotificationJob{ok, bad}, nil)
		publisher.EXPECT().Publish(ctx, ok.Topic, ok.Payload).Return(nil)
		publisher.EXPECT().Publish(ctx, bad.Topic, bad.Payload).Return(errors.New("redis unavailable"))
		m.notifications.EXPECT().MarkSent(ctx, m.db, ok.ID, testNow).Return(nil)
		m.notifications.EXPECT().MarkFailed(ctx, m.db, bad.ID, "redis unavailable", testNow.Add(40*time.Second), testNow).Return(nil)

		result, err := uc.DispatchDue(ctx)

		require.NoError(t, err)
		assert.Equal(t, &commands.DispatchResult{Sent: 1, Failed: 1}, result)
	})

	t.Run("success: publishing happens between two transactions", func(t *testing.T) {
		m := newTxMocks(t)
		inTx, txCount := trackTx(t, m)
		publisher := sharedmock.NewMockEventPublisher(gomock.NewController(t))
		uc := commands.NewOutboxCommands(m.uow, publisher, clock.NewMockClock(testNow), 50, 5)

		job := shared.NotificationJob{ID: uuid.New(), Topic: "reservation.pending", Payload: []byte(`{}`)}

		gomock.InOrder(
			m.notifications.EXPECT().ClaimDue(ctx, m.db, testNow, lease, int32(50), int32(5)).
				DoAndReturn(func(context.Context, sqlc.DBTX, time.Time, time.Time, int32, int32) ([]shared.NotificationJob, error) {
					assert.True(t, inTx(), "claim runs inside a transaction")
					return []shared.NotificationJob{job}, nil
				}),
			publisher.EXPECT().Publish(ctx, job.Topic, job.Payload).
				DoAndReturn(func(context.Context, string, []byte) error {
					assert.False(t, inTx(), "publish must not hold a transaction open")
					assert.Equal(t, 1, txCount(), "claim is committed before publishing")
					return nil
				}),
			m.notifications.EXPECT().MarkSent(ctx, m.db, job.ID, testNow).
				DoAndReturn(func(context.Context, sqlc.DBTX, uuid.UUID, time.Time) error {
					assert.True(t, inTx(), "marking runs inside a transaction")
					return nil
				}),
		)

		result, err := uc.DispatchDue(ctx)

		require.NoError(t, err)
		assert.Equal(t, &commands.DispatchResult{Sent: 1}, result)
		assert.Equal(t, 2, txCount())
	})

	t.Run("success: nothing due opens a single transaction", func(t *testing.T) {
		m := newTxMocks(t)
		_, txCount := trackTx(t, m)
		publisher := sharedmock.NewMockEventPublisher(gomock.NewController(t))
		uc := commands.NewOutboxCommands(m.uow, publisher, clock.NewMockClock(testNow), 50, 5)

		m.notifications.EXPECT().ClaimDue(ctx, m.db, testNow, lease, int32(50), int32(5)).Return(nil, nil)

		result, err := uc.DispatchDue(ctx)

		require.NoError(t, err)
		assert.Equal(t, &commands.DispatchResult{}, result)
		assert.Equal(t, 1, txCount())
	})

	t.Run("error: claim failure publishes nothing", func(t *testing.T) {
		m := newTxMocks(t)
		publisher := sharedmock.NewMockEventPublisher(gomock.NewController(t))
		uc := commands.NewOutboxCommands(m.uow, publisher, clock.NewMockClock(testNow), 50, 5)

		m.notifications.EXPECT().ClaimDue(ctx, m.db, testNow, lease, int32(50), int32(5)).Return(nil, errors.New("connection reset"))

		result, err := uc.DispatchDue(ctx)

		require.Error(t, err)
		assert.Nil(t, result)
	})

	t.Run("error: marking failure is reported after publishing", func(t *testing.T) {
		m := newTxMocks(t)
		publisher := sharedmock.NewMockEventPublisher(gomock.NewController(t))
		uc := commands.NewOutboxCommands(m.uow, publisher, clock.NewMockClock(testNow), 50, 5)

		job := shared.NotificationJob{ID: uuid.New(), Topic: "reservation.pending", Payload: []byte(`{}`)}
		m.notifications.EXPECT().ClaimDue(ctx, m.db, testNow, lease, int32(50), int32(5)).Return([]shared.NotificationJob{job}, nil)
		publisher.EXPECT().Publish(ctx, job.Topic, job.Payload).Return(nil)
		m.notifications.EXPECT().MarkSent(ctx, m.db, job.ID, testNow).Return(errors.New("connection reset"))

		result, err := uc.DispatchDue(ctx)

		require.Error(t, err)
		assert.Nil(t, result)
	})
}

func TestRetryBackoff(t *testing.T) {
	assert.Equal(t, 10*time.Second, commands.RetryBackoff(0))
	assert.Equal(t, 20*time.Second, commands.RetryBackoff(1))
	assert.Equal(t, 80*time.Second, commands.RetryBackoff(3))
	assert.Equal(t, 30*time.Minute, commands.RetryBackoff(20))
}

func TestIdempotencyCommands_PurgeExpired(t *testing.T) {
	ctx := context.Background()
	m := newTxMocks(t)
	uc := commands.NewIdempotencyCommands(m.uow, clock.NewMockClock(testNow))

	m.idempotency.EXPECT().DeleteExpired(ctx, m.db, testNow).Return(int64(7), nil)

	n, err := uc.PurgeExpired(ctx)

	require.NoError(t, err)
	assert.Equal(t, int64(7), n)
}
