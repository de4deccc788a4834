//go:build unit || e2e

package httptest

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

const jsonContentType = "application/json; charset=utf-8"

// AssertJSON checks that the handler answered with a JSON envelope.
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder) {
	t.Helper()
	assert.Equal(t, jsonContentType, w.Header().Get("Content-Type"), "response is not JSON: %s", w.Body.String())
}
