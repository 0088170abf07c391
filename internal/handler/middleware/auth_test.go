//go:build unit

package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"rental-booking/internal/domain/user"
	"rental-booking/internal/handler/middleware"
	"rental-booking/internal/usecase"
	usecasemock "rental-booking/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newAuthRouter(t *testing.T, validator *usecasemock.MockTokenValidator, roles ...user.Role) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	m := middleware.NewAuthMiddleware(validator)
	r.GET("/protected", m.RequireAuth(), m.RequireRole(roles...), func(c *gin.Context) {
		id, _ := middleware.GetUserID(c)
		c.String(http.StatusOK, id.String())
	})
	return r
}

func TestAuthMiddleware(t *testing.T) {
	hostID := uuid.New()

	testCases := []struct {
		name       string
		header     string
		cookie     string
		setup      func(*usecasemock.MockTokenValidator)
		roles      []user.Role
		expectCode int
	}{
		{
			name:   "success: bearer token with matching role",
			header: "Bearer good",
			setup: func(v *usecasemock.MockTokenValidator) {
				v.EXPECT().ValidateToken(gomock.Any(), "good").Return(usecase.Identity{UserID: hostID, Role: user.RoleHost}, nil)
			},
			roles:      []user.Role{user.RoleHost},
			expectCode: http.StatusOK,
		},
		{
			name:   "success: cookie token wins over header",
			header: "Bearer ignored",
			cookie: "from-cookie",
			setup: func(v *usecasemock.MockTokenValidator) {
				v.EXPECT().ValidateToken(gomock.Any(), "from-cookie").Return(usecase.Identity{UserID: hostID, Role: user.RoleGuest}, nil)
			},
			roles:      []user.Role{user.RoleGuest},
			expectCode: http.StatusOK,
		},
		{
			name:   "success: admin passes any role check",
			header: "Bearer admin",
			setup: func(v *usecasemock.MockTokenValidator) {
				v.EXPECT().ValidateToken(gomock.Any(), "admin").Return(usecase.Identity{UserID: hostID, Role: user.RoleAdmin}, nil)
			},
			roles:      []user.Role{user.RoleHost},
			expectCode: http.StatusOK,
		},
		{
			name:       "error: missing token",
			setup:      func(*usecasemock.MockTokenValidator) {},
			expectCode: http.StatusUnauthorized,
		},
		{
			name:   "error: invalid token",
			header: "Bearer bad",
			setup: func(v *usecasemock.MockTokenValidator) {
				v.EXPECT().ValidateToken(gomock.Any(), "bad").Return(usecase.Identity{}, errors.New("expired"))
			},
			expectCode: http.StatusUnauthorized,
		},
		{
			name:   "error: guest on host route",
			header: "Bearer guest",
			setup: func(v *usecasemock.MockTokenValidator) {
				v.EXPECT().ValidateToken(gomock.Any(), "guest").Return(usecase.Identity{UserID: hostID, Role: user.RoleGuest}, nil)
			},
			roles:      []user.Role{user.RoleHost},
			expectCode: http.StatusForbidden,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			validator := usecasemock.NewMockTokenValidator(gomock.NewController(t))
			tc.setup(validator)
			roles := tc.roles
			if roles == nil {
				roles = []user.Role{user.RoleGuest, user.RoleHost}
			}
			r := newAuthRouter(t, validator, roles...)

			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			if tc.cookie != "" {
				req.AddCookie(&http.Cookie{Name: "access_token", Value: tc.cookie})
			}
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			assert.Equal(t, tc.expectCode, rec.Code)
		})
	}
}
