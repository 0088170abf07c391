//go:build e2e

package reservation_test

import (
	"fmt"
	"net/http"
	"testing"

	"rental-booking/internal/domain/user"
	"rental-booking/internal/handler/dto/request"
	"rental-booking/internal/handler/dto/response"
	"rental-booking/tests/common/authtest"
	"rental-booking/tests/common/dbtest"
	"rental-booking/tests/common/httptest"
	"rental-booking/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const reservationsURL = "/api/reservations"

type reservationSuite struct {
	e2e.SharedSuite

	hostID     uuid.UUID
	hostToken  string
	guestID    uuid.UUID
	guestToken string
	otherToken string
	listingID  uuid.UUID
}

func TestReservationSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(reservationSuite))
}

func (s *reservationSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
	t := s.T()

	s.hostID, s.hostToken = authtest.CreateAndLogin(t, s.DB, s.Router, "host@example.com", user.RoleHost.String())
	s.guestID, s.guestToken = authtest.CreateAndLogin(t, s.DB, s.Router, "guest@example.com", user.RoleGuest.String())
	_, s.otherToken = authtest.CreateAndLogin(t, s.DB, s.Router, "other@example.com", user.RoleGuest.String())
	s.listingID = dbtest.CreateTestListing(t, s.DB, s.hostID, dbtest.DefaultListing())
}

func (s *reservationSuite) book(token, checkIn, checkOut string, guests int) *response.ReservationResponse {
	t := s.T()
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, request.CreateReservationRequest{
		ListingID: s.listingID,
		CheckIn:   checkIn,
		CheckOut:  checkOut,
		Guests:    guests,
	}, token)
	var res response.ReservationResponse
	httptest.AssertSuccessResponse(t, w, http.StatusCreated, &res)
	return &res
}

func (s *reservationSuite) transition(id uuid.UUID, action, token string) int {
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
		fmt.Sprintf("%s/%s/%s", reservationsURL, id, action), nil, token)
	return w.Code
}

func (s *reservationSuite) TestCreate() {
	s.Run("success: price breakdown for three nights", func() {
		res := s.book(s.guestToken, "2030-03-02", "2030-03-05", 2)

		require.Equal(s.T(), "pending", res.Status)
		require.Equal(s.T(), 3, res.Pricing.Nights)
		require.Equal(s.T(), "300.00", res.Pricing.Subtotal)
		require.Equal(s.T(), "20.00", res.Pricing.CleaningFee)
		require.Equal(s.T(), "30.00", res.Pricing.ServiceFee)
		require.Equal(s.T(), "350.00", res.Pricing.Total)
		require.Equal(s.T(), s.hostID, res.HostID)
	})

	s.Run("success: stay starting on another stay's checkout day", func() {
		s.book(s.guestToken, "2030-03-02", "2030-03-05", 1)
		res := s.book(s.otherToken, "2030-03-05", "2030-03-07", 1)
		require.Equal(s.T(), "pending", res.Status)
	})

	s.Run("error: overlapping an existing stay", func() {
		s.book(s.guestToken, "2030-03-02", "2030-03-05", 1)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, reservationsURL, request.CreateReservationRequest{
			ListingID: s.listingID, CheckIn: "2030-03-04", CheckOut: "2030-03-06", Guests: 1,
		}, s.otherToken)
		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "not available")
	})

	s.Run("error: over capacity", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, reservationsURL, request.CreateReservationRequest{
			ListingID: s.listingID, CheckIn: "2030-04-01", CheckOut: "2030-04-02", Guests: 9,
		}, s.guestToken)
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnprocessableEntity, "capacity")
	})

	s.Run("error: checkout not after checkin", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, reservationsURL, request.CreateReservationRequest{
			ListingID: s.listingID, CheckIn: "2030-04-02", CheckOut: "2030-04-02", Guests: 1,
		}, s.guestToken)
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "date range")
	})

	s.Run("error: unknown listing", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, reservationsURL, request.CreateReservationRequest{
			ListingID: uuid.New(), CheckIn: "2030-04-01", CheckOut: "2030-04-02", Guests: 1,
		}, s.guestToken)
		require.Equal(s.T(), http.StatusNotFound, w.Code, w.Body.String())
	})

	s.Run("error: blocked date", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
			fmt.Sprintf("/api/listings/%s/blackouts", s.listingID),
			request.BlockDateRequest{Date: "2030-05-03"}, s.hostToken)
		require.Equal(s.T(), http.StatusCreated, w.Code, w.Body.String())

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, reservationsURL, request.CreateReservationRequest{
			ListingID: s.listingID, CheckIn: "2030-05-01", CheckOut: "2030-05-05", Guests: 1,
		}, s.guestToken)
		require.Equal(s.T(), http.StatusConflict, w.Code, w.Body.String())
	})
}

func (s *reservationSuite) TestPriceSnapshot() {
	s.Run("success: listing price change leaves existing reservations untouched", func() {
		t := s.T()
		original := s.book(s.guestToken, "2030-07-01", "2030-07-04", 2)
		require.Equal(t, "350.00", original.Pricing.Total)

		nightly, cleaning, rate := "150.00", "50.00", "12.00"
		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, fmt.Sprintf("/api/listings/%s", s.listingID),
			request.UpdateListingRequest{NightlyPrice: &nightly, CleaningFee: &cleaning, ServiceFeeRate: &rate}, s.hostToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf("%s/%s", reservationsURL, original.ID), nil, s.guestToken)
		var reread response.ReservationResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &reread)
		require.Equal(t, original.Pricing, reread.Pricing)

		require.Equal(t, http.StatusOK, s.transition(original.ID, "confirm", s.hostToken))
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf("%s/%s", reservationsURL, original.ID), nil, s.hostToken)
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &reread)
		require.Equal(t, original.Pricing, reread.Pricing)

		fresh := s.book(s.otherToken, "2030-07-10", "2030-07-13", 1)
		require.Equal(t, "100.00", original.Pricing.NightlyRate)
		require.Equal(t, "150.00", fresh.Pricing.NightlyRate)
		require.Equal(t, "554.00", fresh.Pricing.Total)
	})
}

func (s *reservationSuite) TestIdempotentCreate() {
	s.Run("success: replay returns the same reservation", func() {
		t := s.T()
		key := uuid.NewString()
		body := request.CreateReservationRequest{ListingID: s.listingID, CheckIn: "2030-06-01", CheckOut: "2030-06-03", Guests: 1}

		first := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, reservationsURL, body, s.guestToken,
			map[string]string{"Idempotency-Key": key})
		var created response.ReservationResponse
		httptest.AssertSuccessResponse(t, first, http.StatusCreated, &created)

		second := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, reservationsURL, body, s.guestToken,
			map[string]string{"Idempotency-Key": key})
		var replayed response.ReservationResponse
		httptest.AssertSuccessResponse(t, second, http.StatusOK, &replayed)
		require.Equal(t, created.ID, replayed.ID)

		var count int
		require.NoError(t, s.DB.QueryRow(t.Context(), "SELECT count(*) FROM reservations").Scan(&count))
		require.Equal(t, 1, count)
	})

	s.Run("error: key reused with a different body", func() {
		t := s.T()
		key := uuid.NewString()
		headers := map[string]string{"Idempotency-Key": key}

		w := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, reservationsURL,
			request.CreateReservationRequest{ListingID: s.listingID, CheckIn: "2030-06-01", CheckOut: "2030-06-03", Guests: 1},
			s.guestToken, headers)
		require.Equal(t, http.StatusCreated, w.Code)

		w = httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, reservationsURL,
			request.CreateReservationRequest{ListingID: s.listingID, CheckIn: "2030-07-01", CheckOut: "2030-07-03", Guests: 1},
			s.guestToken, headers)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code, w.Body.String())
	})
}

func (s *reservationSuite) TestLifecycle() {
	s.Run("success: host confirms a pending stay", func() {
		res := s.book(s.guestToken, "2030-03-02", "2030-03-05", 1)
		require.Equal(s.T(), http.StatusOK, s.transition(res.ID, "confirm", s.hostToken))

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, reservationsURL+"/"+res.ID.String(), nil, s.guestToken)
		var got response.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &got)
		require.Equal(s.T(), "confirmed", got.Status)
	})

	s.Run("error: confirmed stay cannot be confirmed again", func() {
		res := s.book(s.guestToken, "2030-03-02", "2030-03-05", 1)
		require.Equal(s.T(), http.StatusOK, s.transition(res.ID, "confirm", s.hostToken))
		require.Equal(s.T(), http.StatusConflict, s.transition(res.ID, "confirm", s.hostToken))
	})

	s.Run("error: another host cannot confirm", func() {
		t := s.T()
		_, otherHost := authtest.CreateAndLogin(t, s.DB, s.Router, "host2@example.com", user.RoleHost.String())
		res := s.book(s.guestToken, "2030-03-02", "2030-03-05", 1)
		require.Equal(t, http.StatusForbidden, s.transition(res.ID, "confirm", otherHost))
	})

	s.Run("error: guest cannot confirm", func() {
		res := s.book(s.guestToken, "2030-03-02", "2030-03-05", 1)
		require.Equal(s.T(), http.StatusForbidden, s.transition(res.ID, "confirm", s.guestToken))
	})

	s.Run("success: reject then cancel is refused", func() {
		res := s.book(s.guestToken, "2030-03-02", "2030-03-05", 1)
		require.Equal(s.T(), http.StatusOK, s.transition(res.ID, "reject", s.hostToken))
		require.Equal(s.T(), http.StatusConflict, s.transition(res.ID, "cancel", s.guestToken))
	})

	s.Run("success: cancelling frees the dates", func() {
		res := s.book(s.guestToken, "2030-03-02", "2030-03-05", 1)
		require.Equal(s.T(), http.StatusOK, s.transition(res.ID, "cancel", s.guestToken))

		again := s.book(s.otherToken, "2030-03-02", "2030-03-05", 1)
		require.Equal(s.T(), "pending", again.Status)
	})

	s.Run("error: stranger cannot cancel", func() {
		res := s.book(s.guestToken, "2030-03-02", "2030-03-05", 1)
		require.Equal(s.T(), http.StatusForbidden, s.transition(res.ID, "cancel", s.otherToken))
	})
}

func (s *reservationSuite) TestListings() {
	s.Run("success: past confirmed stay reads back as completed", func() {
		t := s.T()
		id := dbtest.CreateTestReservation(t, s.DB, s.listingID, s.guestID, "2020-01-10", "2020-01-12", "confirmed")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, reservationsURL+"/mine", nil, s.guestToken)
		var list []*response.ReservationResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &list)
		require.Len(t, list, 1)
		require.Equal(t, id, list[0].ID)
		require.Equal(t, "completed", list[0].Status)

		var stored string
		require.NoError(t, s.DB.QueryRow(t.Context(), "SELECT status FROM reservations WHERE id = $1", id).Scan(&stored))
		require.Equal(t, "completed", stored)
	})

	s.Run("success: host buckets", func() {
		t := s.T()
		pending := s.book(s.guestToken, "2030-03-02", "2030-03-05", 1)
		ongoing := dbtest.CreateTestReservation(t, s.DB, s.listingID, s.guestID, "2030-04-01", "2030-04-03", "confirmed")
		past := dbtest.CreateTestReservation(t, s.DB, s.listingID, s.guestID, "2020-01-01", "2020-01-03", "rejected")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, reservationsURL+"/host", nil, s.hostToken)
		var res response.HostReservationsResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)

		require.Len(t, res.Pending, 1)
		require.Equal(t, pending.ID, res.Pending[0].ID)
		require.Len(t, res.Ongoing, 1)
		require.Equal(t, ongoing, res.Ongoing[0].ID)
		require.Len(t, res.Past, 1)
		require.Equal(t, past, res.Past[0].ID)
	})

	s.Run("error: guest cannot read host view", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, reservationsURL+"/host", nil, s.guestToken)
		require.Equal(s.T(), http.StatusForbidden, w.Code)
	})
}

func (s *reservationSuite) TestAvailability() {
	s.Run("success: calendar reflects bookings and cache invalidation", func() {
		t := s.T()
		calendarURL := fmt.Sprintf("/api/listings/%s/calendar?from=2030-03-01&to=2030-03-08", s.listingID)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, calendarURL, nil, "")
		var before response.CalendarResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &before)
		require.Empty(t, before.OccupiedDates)

		s.book(s.guestToken, "2030-03-02", "2030-03-05", 1)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, calendarURL, nil, "")
		var after response.CalendarResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &after)
		require.Equal(t, []string{"2030-03-02", "2030-03-03", "2030-03-04"}, after.OccupiedDates)
	})

	s.Run("success: availability quote", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodGet,
			fmt.Sprintf("/api/listings/%s/availability?checkIn=2030-03-02&checkOut=2030-03-05", s.listingID), nil, "")
		var res response.AvailabilityResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		require.True(t, res.Available)
		require.NotNil(t, res.Pricing)
		require.Equal(t, "350.00", res.Pricing.Total)
	})
}
