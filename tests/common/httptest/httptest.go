//go:build unit || e2e

package httptest

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

// PerformRequest sends body as JSON; a nil body sends no payload.
func PerformRequest(t *testing.T, router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	if body == nil {
		return serve(router, httptest.NewRequest(method, path, http.NoBody), false)
	}

	payload, err := json.Marshal(body)
	require.NoError(t, err, "encode request body")
	return serve(router, httptest.NewRequest(method, path, bytes.NewReader(payload)), true)
}

// PerformRawRequest sends body verbatim, for payloads that are not valid JSON.
func PerformRawRequest(t *testing.T, router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	return serve(router, httptest.NewRequest(method, path, bytes.NewBufferString(body)), true)
}

func serve(router http.Handler, req *http.Request, jsonBody bool) *httptest.ResponseRecorder {
	if jsonBody {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}
