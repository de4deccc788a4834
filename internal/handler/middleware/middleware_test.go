//go:build unit

package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/PandaPandaBE/oud-zwembad-booking-tool/internal/handler/httperr"
	"github.com/PandaPandaBE/oud-zwembad-booking-tool/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := NewLogger(config.LogConfig{
		Level:          "error",
		TimeZone:       "Europe/Amsterdam",
		TimeFormat:     "2006-01-02 15:04:05.000",
		TimeZoneOffset: 3600,
	})

	engine := gin.New()
	engine.Use(CustomRecovery())
	engine.Use(logger.LoggingMiddleware())
	engine.Use(ErrorHandler())
	return engine
}

func serve(engine *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestLoggingMiddleware_RequestID(t *testing.T) {
	engine := newTestEngine(t)
	engine.GET("/api/bookings", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"request_id": GetRequestID(c)})
	})

	t.Run("generated when absent", func(t *testing.T) {
		w := serve(engine, httptest.NewRequest(http.MethodGet, "/api/bookings", nil))

		require.Equal(t, http.StatusOK, w.Code)
		id := w.Header().Get(requestIDHeader)
		assert.NotEmpty(t, id)
		assert.JSONEq(t, `{"request_id":"`+id+`"}`, w.Body.String())
	})

	t.Run("inbound id is reused", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/bookings", nil)
		req.Header.Set(requestIDHeader, "frontend-42")

		w := serve(engine, req)

		assert.Equal(t, "frontend-42", w.Header().Get(requestIDHeader))
	})
}

func TestErrorHandler(t *testing.T) {
	engine := newTestEngine(t)
	engine.GET("/recorded", func(c *gin.Context) {
		_ = c.Error(gin.Error{
			Err:  errors.New("lookup failed"),
			Type: gin.ErrorTypePublic,
			Meta: httperr.Response{Status: http.StatusNotFound, Error: httperr.MsgNotFound},
		})
	})
	engine.GET("/silent", func(*gin.Context) {})
	engine.GET("/panic", func(*gin.Context) { panic("kapot") })

	t.Run("recorded public error is rendered", func(t *testing.T) {
		w := serve(engine, httptest.NewRequest(http.MethodGet, "/recorded", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"success":false,"error":"Reservering niet gevonden"}`, w.Body.String())
	})

	t.Run("handler without a response gets the generic envelope", func(t *testing.T) {
		w := serve(engine, httptest.NewRequest(http.MethodGet, "/silent", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"success":false,"error":"Interne serverfout"}`, w.Body.String())
	})

	t.Run("panic is recovered", func(t *testing.T) {
		w := serve(engine, httptest.NewRequest(http.MethodGet, "/panic", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"success":false,"error":"Interne serverfout"}`, w.Body.String())
	})
}

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"error":   slog.LevelError,
		"verbose": slog.LevelInfo,
	}
	for in, want := range cases {
		assert.Equal(t, want, parseLevel(in), in)
	}
}

func TestLevelForStatus(t *testing.T) {
	assert.Equal(t, slog.LevelInfo, levelForStatus(http.StatusCreated))
	assert.Equal(t, slog.LevelWarn, levelForStatus(http.StatusNotFound))
	assert.Equal(t, slog.LevelError, levelForStatus(http.StatusInternalServerError))
}
