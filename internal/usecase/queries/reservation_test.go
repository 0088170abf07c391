//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"

	"rental-booking/internal/domain/reservation"
	"rental-booking/internal/pkg/clock"
	"rental-booking/internal/usecase/queries"
	"rental-booking/internal/usecase/shared"
	"rental-booking/tests/common/builder"
	queriesmock "rental-booking/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestReservationQueries_ListForGuest(t *testing.T) {
	t.Run("success: past checkout is completed before the list is read", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockReservationReadStore(ctrl)
		completer := queriesmock.NewMockReservationCompleter(ctrl)
		guestID := uuid.New()
		completed := builder.NewReservationBuilder().WithGuestID(guestID).
			WithStay("2025-01-10", "2025-01-12").WithStatus(reservation.StatusCompleted).BuildView()

		gomock.InOrder(
			completer.EXPECT().CompleteDue(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, scope shared.CompletionScope) (int, error) {
					require.NotNil(t, scope.GuestID)
					assert.Equal(t, guestID, *scope.GuestID)
					assert.Nil(t, scope.HostID)
					return 1, nil
				}),
			store.EXPECT().ListByGuest(gomock.Any(), guestID, int32(queries.DefaultListLimit), int32(0)).
				Return([]*queries.ReservationView{completed}, nil),
		)

		q := queries.NewReservationQueries(store, completer, clock.NewMockClock(testNow))
		got, err := q.ListForGuest(context.Background(), guestID, 0, 0)

		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, reservation.StatusCompleted, got[0].Status)
	})

	t.Run("success: completion failure still returns the list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockReservationReadStore(ctrl)
		completer := queriesmock.NewMockReservationCompleter(ctrl)
		guestID := uuid.New()
		completer.EXPECT().CompleteDue(gomock.Any(), gomock.Any()).Return(0, errors.New("lock timeout"))
		store.EXPECT().ListByGuest(gomock.Any(), guestID, int32(queries.MaxListLimit), int32(5)).Return(nil, nil)

		q := queries.NewReservationQueries(store, completer, clock.NewMockClock(testNow))
		_, err := q.ListForGuest(context.Background(), guestID, 1000, 5)

		require.NoError(t, err)
	})
}

func TestReservationQueries_ListForHost(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockReservationReadStore(ctrl)
	completer := queriesmock.NewMockReservationCompleter(ctrl)
	hostID := uuid.New()

	pending := builder.NewReservationBuilder().WithStay("2025-03-01", "2025-03-04").BuildView()
	upcoming := builder.NewReservationBuilder().WithStay("2025-03-10", "2025-03-12").
		WithStatus(reservation.StatusConfirmed).BuildView()
	inHouse := builder.NewReservationBuilder().WithStay("2025-01-30", "2025-02-01").
		WithStatus(reservation.StatusConfirmed).BuildView()
	cancelled := builder.NewReservationBuilder().WithStay("2025-03-01", "2025-03-04").
		WithStatus(reservation.StatusCancelled).BuildView()
	completed := builder.NewReservationBuilder().WithStay("2025-01-01", "2025-01-04").
		WithStatus(reservation.StatusCompleted).BuildView()

	completer.EXPECT().CompleteDue(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, scope shared.CompletionScope) (int, error) {
			require.NotNil(t, scope.HostID)
			assert.Equal(t, hostID, *scope.HostID)
			return 0, nil
		})
	store.EXPECT().ListByHost(gomock.Any(), hostID, gomock.Any(), gomock.Any()).
		Return([]*queries.ReservationView{pending, upcoming, inHouse, cancelled, completed}, nil)

	q := queries.NewReservationQueries(store, completer, clock.NewMockClock(testNow))
	got, err := q.ListForHost(context.Background(), hostID, 50, 0)

	require.NoError(t, err)
	assert.Equal(t, []*queries.ReservationView{pending}, got.Pending)
	assert.Equal(t, []*queries.ReservationView{upcoming, inHouse}, got.Ongoing)
	assert.Equal(t, []*queries.ReservationView{cancelled, completed}, got.Past)
}

func TestReservationQueries_GetByID(t *testing.T) {
	view := builder.NewReservationBuilder().BuildView()

	testCases := []struct {
		name    string
		actorID uuid.UUID
		role    string
		wantErr error
	}{
		{name: "success: guest", actorID: view.GuestID, role: queries.RoleGuest},
		{name: "success: host", actorID: view.HostID, role: queries.RoleHost},
		{name: "success: admin", actorID: uuid.New(), role: queries.RoleAdmin},
		{name: "error: stranger", actorID: uuid.New(), role: queries.RoleGuest, wantErr: shared.ErrUnauthorizedAction},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			store := queriesmock.NewMockReservationReadStore(gomock.NewController(t))
			store.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)

			q := queries.NewReservationQueries(store, nil, clock.NewMockClock(testNow))
			got, err := q.GetByID(context.Background(), tc.actorID, tc.role, view.ID)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, view, got)
		})
	}

	t.Run("error: unknown reservation", func(t *testing.T) {
		store := queriesmock.NewMockReservationReadStore(gomock.NewController(t))
		store.EXPECT().FindByID(gomock.Any(), gomock.Any()).Return(nil, notFoundErr())

		q := queries.NewReservationQueries(store, nil, clock.NewMockClock(testNow))
		_, err := q.GetByID(context.Background(), uuid.New(), queries.RoleAdmin, uuid.New())

		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}
