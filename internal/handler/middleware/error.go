package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"rental-booking/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

const internalErrorMessage = "Internal server error"

// ErrorHandler writes the response for requests whose handler left the body
// empty. The newest public error wins. A bare 4xx/5xx status gets the JSON
// error envelope, other statuses (204 etc.) are flushed as they are, and a
// handler that set nothing at all is reported as a 500.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}
		if resp, ok := lastPublicResponse(c.Errors); ok {
			c.JSON(resp.Status, resp)
			return
		}

		switch status := c.Writer.Status(); {
		case status >= http.StatusBadRequest:
			writeEnvelope(c, status, http.StatusText(status))
		case status != http.StatusOK:
			c.Writer.WriteHeaderNow()
		default:
			writeEnvelope(c, http.StatusInternalServerError, internalErrorMessage)
		}
	}
}

func lastPublicResponse(list []*gin.Error) (httperr.Response, bool) {
	for i := len(list) - 1; i >= 0; i-- {
		if !list[i].IsType(gin.ErrorTypePublic) {
			continue
		}
		if resp, ok := list[i].Meta.(httperr.Response); ok {
			return resp, true
		}
	}
	return httperr.Response{}, false
}

// CustomRecovery turns a handler panic into a logged 500. http.ErrAbortHandler
// is re-raised so net/http can drop the connection.
func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			slog.ErrorContext(c.Request.Context(), "handler panicked",
				"panic", rec,
				"method", c.Request.Method,
				"route", c.FullPath(),
				"request_id", GetRequestID(c),
				"stack", string(debug.Stack()))

			if c.Writer.Written() {
				c.Abort()
				return
			}
			writeEnvelope(c, http.StatusInternalServerError, internalErrorMessage)
		}()
		c.Next()
	}
}

func writeEnvelope(c *gin.Context, status int, message string) {
	resp := httperr.Response{Status: status}
	resp.Error.Message = message
	c.AbortWithStatusJSON(status, resp)
}
