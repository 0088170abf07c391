//go:build unit

package api_test

import (
	"io"
	"net/http"
	nethttptest "net/http/httptest"
	"strings"
	"testing"

	"rental-booking/internal/domain/reservation"
	"rental-booking/internal/domain/user"
	"rental-booking/internal/handler/api"
	resdto "rental-booking/internal/handler/dto/response"
	"rental-booking/internal/handler/validation"
	"rental-booking/internal/pkg/errs"
	"rental-booking/internal/usecase/commands"
	"rental-booking/internal/usecase/queries"
	"rental-booking/internal/usecase/shared"
	"rental-booking/tests/common/builder"
	"rental-booking/tests/common/httptest"
	"rental-booking/tests/common/testutil"
	commandsmock "rental-booking/tests/mock/commands"
	queriesmock "rental-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReservationCommands
	mockQueries  *queriesmock.MockReservationQueries
	handler      *api.ReservationHandler
	userID       uuid.UUID
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.Require().NoError(validation.Register())
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReservationCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReservationQueries(s.mockCtrl)
	s.handler = api.NewReservationHandler(s.mockCommands, s.mockQueries)
	s.userID = uuid.New()

	authMiddleware := mockAuth(s.userID, user.RoleGuest)

	s.router.POST("/reservations", authMiddleware, s.handler.Create)
	s.router.GET("/reservations/mine", authMiddleware, s.handler.ListMine)
	s.router.GET("/reservations/host", authMiddleware, s.handler.ListForHost)
	s.router.GET("/reservations/:id", authMiddleware, s.handler.Get)
	s.router.POST("/reservations/:id/confirm", authMiddleware, s.handler.Confirm)
	s.router.POST("/reservations/:id/reject", authMiddleware, s.handler.Reject)
	s.router.POST("/reservations/:id/cancel", authMiddleware, s.handler.Cancel)
	s.router.PUT("/reservations/:id/payment", authMiddleware, s.handler.RecordPayment)
}

func (s *ReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

// mockAuth stands in for RequireAuth. Requests without an Authorization header get 401.
func mockAuth(userID uuid.UUID, role user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("user_id", userID)
		c.Set("user_role", role)
		c.Next()
	}
}

type testCaseReservation struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *ReservationHandlerTestSuite) TestCreate() {
	url := "/reservations"
	b := builder.NewReservationBuilder()
	reqBody := b.BuildCreateRequestDTO()
	view := b.BuildView()

	s.Run("success: returns 201 with the priced reservation", func() {
		s.mockCommands.EXPECT().
			CreateReservation(gomock.Any(), gomock.Any(), s.userID, (*uuid.UUID)(nil)).
			DoAndReturn(func(_ any, in commands.CreateReservationInput, _ uuid.UUID, _ *uuid.UUID) (*commands.CreateReservationResult, error) {
				s.Equal(b.ListingID, in.ListingID)
				s.Equal(3, int(in.CheckOut.Sub(in.CheckIn).Hours()/24))
				return &commands.CreateReservationResult{Reservation: view}, nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")

		var body resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal("pending", body.Status)
		s.Equal("2025-03-01", body.CheckIn)
		s.Equal("350.00", body.Pricing.Total)
	})

	s.Run("success: replay with same idempotency key returns 200", func() {
		key := uuid.New()
		s.mockCommands.EXPECT().
			CreateReservation(gomock.Any(), gomock.Any(), s.userID, &key).
			Return(&commands.CreateReservationResult{Reservation: view, IsReplayed: true}, nil)

		rec := performWithHeader(s.T(), s.router, http.MethodPost, url, reqBody, api.IdempotencyKeyHeader, key.String())

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 on malformed idempotency key", func() {
		rec := performWithHeader(s.T(), s.router, http.MethodPost, url, reqBody, api.IdempotencyKeyHeader, "not-a-uuid")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "idempotency")
	})

	s.Run("error: 401 without token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	validationCases := []testCaseReservation{
		{name: "missing listingId", mutate: testutil.Field("listingId", nil), expectCode: http.StatusUnprocessableEntity},
		{name: "malformed checkIn", mutate: testutil.Field("checkIn", "03/01/2025"), expectCode: http.StatusUnprocessableEntity},
		{name: "zero guests", mutate: testutil.Field("guests", 0), expectCode: http.StatusUnprocessableEntity},
		{name: "special requests too long", mutate: testutil.Field("specialRequests", strings.Repeat("a", 1001)), expectCode: http.StatusUnprocessableEntity},
		{name: "guests is a string", mutate: testutil.Field("guests", "two"), expectCode: http.StatusBadRequest},
	}
	for _, tc := range validationCases {
		s.Run("error: "+tc.name, func() {
			requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "token")
			s.Equal(tc.expectCode, rec.Code, rec.Body.String())
		})
	}

	usecaseErrors := []struct {
		name string
		err  error
		code int
	}{
		{name: "overlapping stay", err: errs.Mark(commands.ErrDatesUnavailable, shared.ErrUnavailable), code: http.StatusConflict},
		{name: "too many guests", err: errs.Mark(errs.New("capacity"), shared.ErrOverCapacity), code: http.StatusUnprocessableEntity},
		{name: "check-out before check-in", err: errs.Mark(errs.New("range"), shared.ErrInvalidRange), code: http.StatusBadRequest},
		{name: "unknown listing", err: errs.Mark(errs.New("listing"), shared.ErrNotFound), code: http.StatusNotFound},
		{name: "own listing", err: errs.Mark(errs.New("own"), shared.ErrUnauthorizedAction), code: http.StatusForbidden},
		{name: "key reused with another body", err: commands.ErrIdempotencyKeyReuse, code: http.StatusUnprocessableEntity},
	}
	for _, tc := range usecaseErrors {
		s.Run("error: "+tc.name, func() {
			s.mockCommands.EXPECT().CreateReservation(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, tc.err)
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")
			httptest.AssertErrorResponse(s.T(), rec, tc.code, "")
		})
	}
}

// ================================================================================
// TestTransitions
// ================================================================================

func (s *ReservationHandlerTestSuite) TestTransitions() {
	b := builder.NewReservationBuilder()
	id := b.ID

	s.Run("success: confirm", func() {
		view := b.WithStatus(reservation.StatusConfirmed).BuildView()
		s.mockCommands.EXPECT().ConfirmReservation(gomock.Any(), id, s.userID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations/"+id.String()+"/confirm", nil, "token")

		var body resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("confirmed", body.Status)
	})

	s.Run("error: confirm overlapping a confirmed stay", func() {
		s.mockCommands.EXPECT().ConfirmReservation(gomock.Any(), id, s.userID).
			Return(nil, errs.Mark(commands.ErrOverlapsConfirmed, shared.ErrUnavailable))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations/"+id.String()+"/confirm", nil, "token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "not available")
	})

	s.Run("success: reject with reason", func() {
		view := b.WithStatus(reservation.StatusRejected).BuildView()
		s.mockCommands.EXPECT().RejectReservation(gomock.Any(), id, s.userID, "Dates no longer work").Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations/"+id.String()+"/reject",
			map[string]any{"reason": "Dates no longer work"}, "token")

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("success: cancel without body", func() {
		view := b.WithStatus(reservation.StatusCancelled).BuildView()
		s.mockCommands.EXPECT().CancelReservation(gomock.Any(), id, s.userID, "").Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations/"+id.String()+"/cancel", nil, "token")

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	for _, body := range []string{"", "  \n"} {
		s.Run("success: cancel with an empty chunked body", func() {
			view := b.WithStatus(reservation.StatusCancelled).BuildView()
			s.mockCommands.EXPECT().CancelReservation(gomock.Any(), id, s.userID, "").Return(view, nil)

			req := nethttptest.NewRequest(http.MethodPost, "/reservations/"+id.String()+"/cancel", io.NopCloser(strings.NewReader(body)))
			req.Header.Set("Content-Type", "application/json")
			req.Header.Set("Authorization", "Bearer token")
			s.Require().Equal(int64(-1), req.ContentLength)
			rec := nethttptest.NewRecorder()
			s.router.ServeHTTP(rec, req)

			httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
		})
	}

	s.Run("error: malformed reason body", func() {
		req := nethttptest.NewRequest(http.MethodPost, "/reservations/"+id.String()+"/reject", io.NopCloser(strings.NewReader(`{"reason":`)))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer token")
		rec := nethttptest.NewRecorder()
		s.router.ServeHTTP(rec, req)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: cancel a completed stay", func() {
		s.mockCommands.EXPECT().CancelReservation(gomock.Any(), id, s.userID, "").
			Return(nil, errs.Mark(errs.New("completed"), shared.ErrInvalidStateTransition))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations/"+id.String()+"/cancel", nil, "token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Invalid state transition")
	})

	s.Run("error: reason too long", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations/"+id.String()+"/reject",
			map[string]any{"reason": strings.Repeat("r", 501)}, "token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Validation failed")
	})

	s.Run("error: invalid id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations/abc/confirm", nil, "token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("success: record payment", func() {
		view := b.WithStatus(reservation.StatusConfirmed).BuildView()
		s.mockCommands.EXPECT().RecordPayment(gomock.Any(), id, "pi_123", "paid").Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/reservations/"+id.String()+"/payment",
			map[string]any{"reference": "pi_123", "status": "paid"}, "token")

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: blank payment reference", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/reservations/"+id.String()+"/payment",
			map[string]any{"reference": "   ", "status": "paid"}, "token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Validation failed")
	})
}

// ================================================================================
// TestQueries
// ================================================================================

func (s *ReservationHandlerTestSuite) TestQueries() {
	s.Run("success: get reservation", func() {
		view := builder.NewReservationBuilder().WithGuestID(s.userID).BuildView()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.userID, queries.RoleGuest, view.ID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/"+view.ID.String(), nil, "token")

		var body resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(view.ID, body.ID)
	})

	s.Run("error: get reservation of someone else", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.userID, queries.RoleGuest, id).
			Return(nil, errs.Mark(errs.New("not participant"), shared.ErrUnauthorizedAction))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/"+id.String(), nil, "token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "")
	})

	s.Run("success: guest list reports completed stays", func() {
		past := builder.NewReservationBuilder().WithStay("2025-01-01", "2025-01-05").
			WithStatus(reservation.StatusCompleted).BuildView()
		s.mockQueries.EXPECT().ListForGuest(gomock.Any(), s.userID, 0, 0).Return([]*queries.ReservationView{past}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/mine", nil, "token")

		var body []resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 1)
		s.Equal("completed", body[0].Status)
	})

	s.Run("success: host buckets", func() {
		pending := builder.NewReservationBuilder().BuildView()
		s.mockQueries.EXPECT().ListForHost(gomock.Any(), s.userID, 10, 0).
			Return(&queries.HostReservations{Pending: []*queries.ReservationView{pending}}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/host?limit=10", nil, "token")

		var body resdto.HostReservationsResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body.Pending, 1)
		s.Empty(body.Ongoing)
		s.Empty(body.Past)
	})

	s.Run("error: limit out of range", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/mine?limit=500", nil, "token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "")
	})
}
