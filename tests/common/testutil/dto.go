//go:build unit || e2e

// Package testutil turns request DTOs into JSON maps so tests can send
// payloads the typed structs cannot express.
package testutil

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

// Mutation edits a request body after it has been flattened to JSON keys.
type Mutation func(body map[string]any)

// DtoMap round-trips v through its JSON tags and applies muts in order.
func DtoMap(t *testing.T, v any, muts ...Mutation) map[string]any {
	t.Helper()

	raw, err := json.Marshal(v)
	require.NoError(t, err)

	body := map[string]any{}
	require.NoError(t, json.Unmarshal(raw, &body))
	for _, mut := range muts {
		mut(body)
	}
	return body
}

// Field sets key to value. A nil value drops the key so the request omits it.
func Field(key string, value any) Mutation {
	return func(body map[string]any) {
		if value == nil {
			delete(body, key)
			return
		}
		body[key] = value
	}
}
