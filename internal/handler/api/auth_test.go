//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"rental-booking/internal/domain/user"
	"rental-booking/internal/handler/api"
	resdto "rental-booking/internal/handler/dto/response"
	"rental-booking/internal/handler/validation"
	"rental-booking/internal/pkg/config"
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

type AuthHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAuthCommands
	mockQueries  *queriesmock.MockUserQueries
	userID       uuid.UUID
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.Require().NoError(validation.Register())
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAuthCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockUserQueries(s.mockCtrl)
	s.userID = uuid.New()

	cfg := config.Config{
		JWT:    config.JWTConfig{Secret: "secret", Duration: time.Hour},
		Cookie: config.CookieConfig{SameSite: "Lax"},
	}
	handler := api.NewAuthHandler(s.mockCommands, s.mockQueries, cfg)
	authMiddleware := mockAuth(s.userID, user.RoleGuest)

	s.router.POST("/auth/register", handler.Register)
	s.router.POST("/auth/login", handler.Login)
	s.router.POST("/auth/logout", authMiddleware, handler.Logout)
	s.router.GET("/auth/me", authMiddleware, handler.Me)
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) TestRegister() {
	reqBody := builder.NewAuthBuilder().AsHost().BuildRegisterDTO()

	s.Run("success: returns the new user id", func() {
		s.mockCommands.EXPECT().Register(gomock.Any(), commands.RegisterInput{
			Email:    reqBody.Email,
			Password: reqBody.Password,
			FullName: reqBody.FullName,
			Role:     "host",
		}).Return(s.userID, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/register", reqBody, "")

		var body resdto.RegisterResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(s.userID, body.ID)
	})

	s.Run("error: admin cannot be self-assigned", func() {
		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("role", "admin"))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/register", body, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Validation failed")
	})

	s.Run("error: short password", func() {
		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("password", "short"))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/register", body, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "")
	})

	s.Run("error: email already registered", func() {
		s.mockCommands.EXPECT().Register(gomock.Any(), gomock.Any()).
			Return(uuid.Nil, errs.Mark(commands.ErrEmailTaken, shared.ErrConflict))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/register", reqBody, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "")
	})
}

func (s *AuthHandlerTestSuite) TestLogin() {
	reqBody := builder.NewAuthBuilder().BuildDTO()

	s.Run("success: token in body and cookie", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), commands.LoginInput{Email: reqBody.Email, Password: reqBody.Password}).
			Return(&commands.LoginResult{UserID: s.userID, Role: "guest", AccessToken: "jwt-token"}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/login", reqBody, "")

		var body resdto.LoginResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("jwt-token", body.AccessToken)
		s.Equal("Bearer", body.TokenType)
		cookie := httptest.ExtractCookie(rec, "access_token")
		s.Require().NotNil(cookie)
		s.Equal("jwt-token", cookie.Value)
		s.True(cookie.HttpOnly)
	})

	s.Run("error: wrong password", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), gomock.Any()).Return(nil, commands.ErrInvalidCredentials)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/login", reqBody, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid email or password")
	})

	s.Run("error: inactive account", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), gomock.Any()).Return(nil, commands.ErrUserInactive)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/login", reqBody, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "inactive")
	})

	s.Run("error: malformed json", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/login", "not-an-object", "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})
}

func (s *AuthHandlerTestSuite) TestSession() {
	s.Run("success: logout clears the cookie", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/logout", nil, "token")

		s.Equal(http.StatusNoContent, rec.Code)
		cookie := httptest.ExtractCookie(rec, "access_token")
		s.Require().NotNil(cookie)
		s.Empty(cookie.Value)
	})

	s.Run("success: me", func() {
		view := builder.NewUserBuilder().WithID(s.userID).BuildReadModel()
		s.mockQueries.EXPECT().GetCurrentUser(gomock.Any(), s.userID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/auth/me", nil, "token")

		var body resdto.UserResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(s.userID, body.ID)
	})

	s.Run("error: me for a deactivated user", func() {
		s.mockQueries.EXPECT().GetCurrentUser(gomock.Any(), s.userID).Return(nil, queries.ErrUserInactive)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/auth/me", nil, "token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "")
	})
}
