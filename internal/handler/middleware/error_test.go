//go:build unit

package middleware_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"rental-booking/internal/handler/httperr"
	"rental-booking/internal/handler/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestErrorHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	publicErr := func(status int, msg string) *gin.Error {
		resp := httperr.Response{Status: status}
		resp.Error.Message = msg
		return &gin.Error{Err: assert.AnError, Type: gin.ErrorTypePublic, Meta: resp}
	}

	testCases := []struct {
		name       string
		handler    gin.HandlerFunc
		expectCode int
		expectBody string
	}{
		{
			name: "success: newest public error is rendered",
			handler: func(c *gin.Context) {
				_ = c.Error(publicErr(http.StatusNotFound, "Not found"))
				_ = c.Error(publicErr(http.StatusConflict, "Conflict"))
			},
			expectCode: http.StatusConflict,
			expectBody: `{"error":{"message":"Conflict"}}`,
		},
		{
			name:       "success: bare error status gets the envelope",
			handler:    func(c *gin.Context) { c.Status(http.StatusForbidden) },
			expectCode: http.StatusForbidden,
			expectBody: `{"error":{"message":"Forbidden"}}`,
		},
		{
			name:       "success: no content passes through empty",
			handler:    func(c *gin.Context) { c.Status(http.StatusNoContent) },
			expectCode: http.StatusNoContent,
		},
		{
			name: "success: private errors are not exposed",
			handler: func(c *gin.Context) {
				_ = c.Error(assert.AnError)
			},
			expectCode: http.StatusInternalServerError,
			expectBody: `{"error":{"message":"Internal server error"}}`,
		},
		{
			name:       "success: written responses are left alone",
			handler:    func(c *gin.Context) { c.JSON(http.StatusCreated, gin.H{"id": "r-1"}) },
			expectCode: http.StatusCreated,
			expectBody: `{"id":"r-1"}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := gin.New()
			r.Use(middleware.ErrorHandler())
			r.GET("/", tc.handler)

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

			assert.Equal(t, tc.expectCode, w.Code)
			if tc.expectBody == "" {
				assert.Empty(t, w.Body.String())
				return
			}
			assert.JSONEq(t, tc.expectBody, w.Body.String())
		})
	}
}

func TestCustomRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })

	r := gin.New()
	r.Use(middleware.RequestLogger(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))), middleware.CustomRecovery())
	r.GET("/listings/:id", func(*gin.Context) { panic("boom") })

	t.Run("success: panic becomes a 500 envelope", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/listings/abc", nil)
		req.Header.Set(middleware.RequestIDHeader, "req-7")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error":{"message":"Internal server error"}}`, w.Body.String())
		assert.Contains(t, buf.String(), "request_id=req-7")
		assert.Contains(t, buf.String(), "route=/listings/:id")
	})

	t.Run("error: abort handler panics are re-raised", func(t *testing.T) {
		ra := gin.New()
		ra.Use(middleware.CustomRecovery())
		ra.GET("/", func(*gin.Context) { panic(http.ErrAbortHandler) })

		assert.PanicsWithValue(t, http.ErrAbortHandler, func() {
			ra.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		})
	})
}
