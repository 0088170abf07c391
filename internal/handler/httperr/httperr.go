package httperr

import (
	"errors"
	"net/http"

	"rental-booking/internal/pkg/errs"

	"rental-booking/internal/usecase/commands"
	"rental-booking/internal/usecase/queries"
	"rental-booking/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

var (
	ErrUnauthenticated = errs.New("identity missing from request context")
	ErrInvalidID       = errs.New("invalid id")
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

type mapping struct {
	target  error
	status  int
	message string
}

// Order matters: idempotency and auth errors are checked before the generic kinds.
var mappings = []mapping{
	{ErrUnauthenticated, http.StatusUnauthorized, "Unauthorized"},
	{ErrInvalidID, http.StatusBadRequest, "Invalid id"},
	{commands.ErrIdempotencyInProgress, http.StatusConflict, "Request with this idempotency key is still being processed"},
	{commands.ErrIdempotencyKeyReuse, http.StatusUnprocessableEntity, "Idempotency key was used with a different request"},
	{commands.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid email or password"},
	{commands.ErrUserInactive, http.StatusForbidden, "Account is inactive"},
	{queries.ErrUserInactive, http.StatusForbidden, "Account is inactive"},
	{queries.ErrInvalidCursor, http.StatusBadRequest, "Invalid cursor"},
	{shared.ErrInvalidRange, http.StatusBadRequest, "Invalid date range"},
	{shared.ErrNotFound, http.StatusNotFound, "Not found"},
	{shared.ErrUnavailable, http.StatusConflict, "Dates are not available"},
	{shared.ErrOverCapacity, http.StatusUnprocessableEntity, "Guest count exceeds listing capacity"},
	{shared.ErrStayLength, http.StatusUnprocessableEntity, "Stay length is outside the listing's limits"},
	{shared.ErrUnauthorizedAction, http.StatusForbidden, "Action not allowed"},
	{shared.ErrInvalidStateTransition, http.StatusConflict, "Invalid state transition"},
	{shared.ErrConflict, http.StatusConflict, "Conflict"},
	{shared.ErrValidation, http.StatusUnprocessableEntity, "Validation failed"},
}

// Classify returns the HTTP status and public message for a usecase error.
func Classify(err error) (int, string) {
	for _, m := range mappings {
		if errors.Is(err, m.target) {
			return m.status, m.message
		}
	}
	return http.StatusInternalServerError, "Internal server error"
}

// AbortWithUsecaseError maps err through Classify. Client errors carry the error text as detail.
func AbortWithUsecaseError(c *gin.Context, err error) {
	status, msg := Classify(err)
	var detail any
	if status < http.StatusInternalServerError {
		detail = err.Error()
	}
	AbortWithError(c, status, err, msg, detail)
}

// AbortWithBindError answers 422 for failed validation tags and 400 for malformed input.
func AbortWithBindError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			fields[fe.Field()] = fe.Tag()
		}
		AbortWithError(c, http.StatusUnprocessableEntity, err, "Validation failed", fields)
		return
	}
	AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
}
