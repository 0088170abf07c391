//go:build e2e

package review_test

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

const reviewsURL = "/api/reviews"

type reviewSuite struct {
	e2e.SharedSuite

	guestID    uuid.UUID
	guestToken string
	otherToken string
	listingID  uuid.UUID
}

func TestReviewSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(reviewSuite))
}

func (s *reviewSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
	t := s.T()

	hostID := dbtest.CreateTestUser(t, s.DB, "host@example.com", user.RoleHost.String())
	s.guestID, s.guestToken = authtest.CreateAndLogin(t, s.DB, s.Router, "guest@example.com", user.RoleGuest.String())
	_, s.otherToken = authtest.CreateAndLogin(t, s.DB, s.Router, "other@example.com", user.RoleGuest.String())
	s.listingID = dbtest.CreateTestListing(t, s.DB, hostID, dbtest.DefaultListing())
}

func (s *reviewSuite) postReview(token string, reservationID uuid.UUID, rating int) *response.ReviewResponse {
	t := s.T()
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, reviewsURL, request.CreateReviewRequest{
		ReservationID: reservationID,
		Rating:        rating,
		Comment:       "Quiet street, spotless kitchen.",
	}, token)
	var res response.ReviewResponse
	httptest.AssertSuccessResponse(t, w, http.StatusCreated, &res)
	return &res
}

func (s *reviewSuite) TestCreate() {
	s.Run("success: completed stay can be reviewed and stats update", func() {
		t := s.T()
		resID := dbtest.CreateTestReservation(t, s.DB, s.listingID, s.guestID, "2020-02-01", "2020-02-04", "completed")

		created := s.postReview(s.guestToken, resID, 4)
		require.Equal(t, int32(4), created.Rating)
		require.Equal(t, s.listingID.String(), created.ListingID)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet,
			fmt.Sprintf("/api/listings/%s/rating-stats", s.listingID), nil, "")
		var stats response.ListingRatingStatsResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &stats)
		require.Equal(t, int32(1), stats.TotalReviews)
		require.Equal(t, int32(1), stats.Rating4Count)
		require.InDelta(t, 4.0, stats.AverageRating, 0.001)
	})

	s.Run("error: pending stay cannot be reviewed", func() {
		resID := dbtest.CreateTestReservation(s.T(), s.DB, s.listingID, s.guestID, "2030-02-01", "2030-02-04", "pending")
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, reviewsURL, request.CreateReviewRequest{
			ReservationID: resID, Rating: 3, Comment: "Never went.",
		}, s.guestToken)
		require.Equal(s.T(), http.StatusUnprocessableEntity, w.Code, w.Body.String())
	})

	s.Run("error: only the guest may review", func() {
		resID := dbtest.CreateTestReservation(s.T(), s.DB, s.listingID, s.guestID, "2020-02-01", "2020-02-04", "completed")
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, reviewsURL, request.CreateReviewRequest{
			ReservationID: resID, Rating: 1, Comment: "Not my stay.",
		}, s.otherToken)
		require.Equal(s.T(), http.StatusForbidden, w.Code, w.Body.String())
	})

	s.Run("error: one review per stay", func() {
		resID := dbtest.CreateTestReservation(s.T(), s.DB, s.listingID, s.guestID, "2020-02-01", "2020-02-04", "completed")
		s.postReview(s.guestToken, resID, 4)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, reviewsURL, request.CreateReviewRequest{
			ReservationID: resID, Rating: 2, Comment: "Changed my mind.",
		}, s.guestToken)
		require.Equal(s.T(), http.StatusConflict, w.Code, w.Body.String())
	})
}

func (s *reviewSuite) TestListAndDelete() {
	s.Run("success: cursor pagination", func() {
		t := s.T()
		for i := range 3 {
			in := fmt.Sprintf("2020-0%d-01", i+1)
			out := fmt.Sprintf("2020-0%d-03", i+1)
			resID := dbtest.CreateTestReservation(t, s.DB, s.listingID, s.guestID, in, out, "completed")
			s.postReview(s.guestToken, resID, 5)
		}

		var page struct {
			Reviews    []response.ReviewListItemResponse `json:"reviews"`
			NextCursor *string                           `json:"next_cursor"`
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodGet,
			fmt.Sprintf("/api/listings/%s/reviews?limit=2", s.listingID), nil, "")
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &page)
		require.Len(t, page.Reviews, 2)
		require.NotNil(t, page.NextCursor)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet,
			fmt.Sprintf("/api/listings/%s/reviews?limit=2&after=%s", s.listingID, *page.NextCursor), nil, "")
		page.NextCursor = nil
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &page)
		require.Len(t, page.Reviews, 1)
		require.Nil(t, page.NextCursor)
	})

	s.Run("success: author deletes review", func() {
		t := s.T()
		resID := dbtest.CreateTestReservation(t, s.DB, s.listingID, s.guestID, "2020-02-01", "2020-02-04", "completed")
		created := s.postReview(s.guestToken, resID, 3)

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, reviewsURL+"/"+created.ID, nil, s.otherToken)
		require.Equal(t, http.StatusForbidden, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodDelete, reviewsURL+"/"+created.ID, nil, s.guestToken)
		require.Equal(t, http.StatusNoContent, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, reviewsURL+"/"+created.ID, nil, "")
		require.Equal(t, http.StatusNotFound, w.Code)
	})
}
