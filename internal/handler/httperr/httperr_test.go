//go:build unit

package httperr_test

import (
	"errors"
	"net/http"
	"testing"

	"rental-booking/internal/handler/httperr"
	"rental-booking/internal/pkg/errs"
	"rental-booking/internal/usecase/commands"
	"rental-booking/internal/usecase/shared"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	testCases := []struct {
		name   string
		err    error
		status int
	}{
		{name: "invalid range", err: errs.Mark(errors.New("check-in after check-out"), shared.ErrInvalidRange), status: http.StatusBadRequest},
		{name: "not found", err: errs.Mark(errors.New("no row"), shared.ErrNotFound), status: http.StatusNotFound},
		{name: "unavailable", err: errs.Mark(commands.ErrDatesUnavailable, shared.ErrUnavailable), status: http.StatusConflict},
		{name: "over capacity", err: errs.Mark(errors.New("too many"), shared.ErrOverCapacity), status: http.StatusUnprocessableEntity},
		{name: "stay length", err: errs.Mark(errors.New("too short"), shared.ErrStayLength), status: http.StatusUnprocessableEntity},
		{name: "unauthorized action", err: errs.Mark(errors.New("not host"), shared.ErrUnauthorizedAction), status: http.StatusForbidden},
		{name: "invalid transition", err: errs.Mark(errors.New("cancelled to confirmed"), shared.ErrInvalidStateTransition), status: http.StatusConflict},
		{name: "idempotency in progress", err: commands.ErrIdempotencyInProgress, status: http.StatusConflict},
		{name: "idempotency key reuse", err: commands.ErrIdempotencyKeyReuse, status: http.StatusUnprocessableEntity},
		{name: "bad credentials", err: commands.ErrInvalidCredentials, status: http.StatusUnauthorized},
		{name: "unknown", err: errors.New("boom"), status: http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			status, msg := httperr.Classify(tc.err)
			assert.Equal(t, tc.status, status)
			assert.NotEmpty(t, msg)
		})
	}
}
