//go:build unit

package commands_test

import (
	"context"
	"testing"

	"rental-booking/internal/infra"
	sqlc "rental-booking/internal/infra/sqlc/generated"
	"rental-booking/internal/usecase/shared"
	sharedmock "rental-booking/tests/mock/shared"

	"github.com/jackc/pgx/v5"
	"go.uber.org/mock/gomock"
)

// txMocks wires a mocked unit of work whose Within runs fn against one mocked Tx.
type txMocks struct {
	uow           *sharedmock.MockUnitOfWork
	tx            *sharedmock.MockTx
	reads         *sharedmock.MockCommandReads
	listings      *sharedmock.MockListingRepository
	reservations  *sharedmock.MockReservationRepository
	blackouts     *sharedmock.MockBlackoutRepository
	reviews       *sharedmock.MockReviewRepository
	ratingStats   *sharedmock.MockRatingStatsRepository
	idempotency   *sharedmock.MockIdempotencyRepository
	notifications *sharedmock.MockNotificationRepository
	users         *sharedmock.MockUserRepository
	cache         *sharedmock.MockCalendarCache
	db            sqlc.DBTX
}

func newTxMocks(t *testing.T) *txMocks {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := &txMocks{
		uow:           sharedmock.NewMockUnitOfWork(ctrl),
		tx:            sharedmock.NewMockTx(ctrl),
		reads:         sharedmock.NewMockCommandReads(ctrl),
		listings:      sharedmock.NewMockListingRepository(ctrl),
		reservations:  sharedmock.NewMockReservationRepository(ctrl),
		blackouts:     sharedmock.NewMockBlackoutRepository(ctrl),
		reviews:       sharedmock.NewMockReviewRepository(ctrl),
		ratingStats:   sharedmock.NewMockRatingStatsRepository(ctrl),
		idempotency:   sharedmock.NewMockIdempotencyRepository(ctrl),
		notifications: sharedmock.NewMockNotificationRepository(ctrl),
		users:         sharedmock.NewMockUserRepository(ctrl),
		cache:         sharedmock.NewMockCalendarCache(ctrl),
	}

	m.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, m.tx)
		}).AnyTimes()
	m.uow.EXPECT().CommandReads().Return(m.reads).AnyTimes()

	m.tx.EXPECT().DB().Return(m.db).AnyTimes()
	m.tx.EXPECT().Reads().Return(m.reads).AnyTimes()
	m.tx.EXPECT().Listings().Return(m.listings).AnyTimes()
	m.tx.EXPECT().Reservations().Return(m.reservations).AnyTimes()
	m.tx.EXPECT().Blackouts().Return(m.blackouts).AnyTimes()
	m.tx.EXPECT().Reviews().Return(m.reviews).AnyTimes()
	m.tx.EXPECT().RatingStats().Return(m.ratingStats).AnyTimes()
	m.tx.EXPECT().Idempotency().Return(m.idempotency).AnyTimes()
	m.tx.EXPECT().Notifications().Return(m.notifications).AnyTimes()
	m.tx.EXPECT().Users().Return(m.users).AnyTimes()

	return m
}

func notFoundErr() error {
	return infra.WrapRepoErr("row not found", pgx.ErrNoRows)
}
