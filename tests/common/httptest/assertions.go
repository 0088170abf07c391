//go:build unit || e2e

package httptest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ErrorBody mirrors the envelope written by httperr.AbortWithError.
type ErrorBody struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail json.RawMessage `json:"detail,omitempty"`
}

// Fields decodes Detail as the field-to-tag map of a failed binding.
func (b ErrorBody) Fields(t *testing.T) map[string]string {
	t.Helper()

	fields := map[string]string{}
	if len(b.Detail) == 0 {
		return fields
	}
	require.NoError(t, json.Unmarshal(b.Detail, &fields), "detail is not a field map: %s", b.Detail)
	return fields
}

func AssertSuccessResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, target any) {
	t.Helper()

	if !assert.Equal(t, expectedStatus, w.Code, "response: %s", w.Body.String()) {
		return
	}
	if target != nil && expectedStatus >= 200 && expectedStatus < 300 {
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), target), "response: %s", w.Body.String())
	}
}

// AssertErrorResponse checks the status and, when msg is set, that the public message contains it.
func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, msg string) ErrorBody {
	t.Helper()

	assert.Equal(t, expectedStatus, w.Code, "response: %s", w.Body.String())

	var body ErrorBody
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), "response: %s", w.Body.String())
	if msg != "" {
		assert.Contains(t, body.Error.Message, msg)
	}
	return body
}

// AssertValidationError expects a 422 whose detail names field as failing tag.
func AssertValidationError(t *testing.T, w *httptest.ResponseRecorder, field, tag string) {
	t.Helper()

	body := AssertErrorResponse(t, w, http.StatusUnprocessableEntity, "Validation failed")
	assert.Equal(t, tag, body.Fields(t)[field], "detail: %s", body.Detail)
}
