//go:build unit || e2e

package testutil

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

// Mutation edits a request body decoded into a generic map.
type Mutation func(body map[string]any)

// DtoMap turns a request DTO into its JSON object form so tests can send
// payloads the typed DTO cannot express (missing keys, wrong types).
func DtoMap(t *testing.T, dto any, muts ...Mutation) map[string]any {
	t.Helper()

	raw, err := json.Marshal(dto)
	require.NoError(t, err)

	body := map[string]any{}
	require.NoError(t, json.Unmarshal(raw, &body))

	for _, mutate := range muts {
		mutate(body)
	}
	return body
}

// Field sets key to value; a nil value removes the key.
func Field(key string, value any) Mutation {
	if value == nil {
		return Without(key)
	}
	return func(body map[string]any) {
		body[key] = value
	}
}

func Without(key string) Mutation {
	return func(body map[string]any) {
		delete(body, key)
	}
}
