package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"addressbook/config"
	deliverycontext "addressbook/internal/delivery/context"
	logs "addressbook/internal/infra/log"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEcho(buf *bytes.Buffer, debug bool) *echo.Echo {
	logger := slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	cfg := &config.Config{}
	cfg.Env.Debug = debug

	e := echo.New()
	e.Use(NewRequestIDMiddleware(logger).Process)
	e.Use(NewLoggerMiddleware(logger, cfg).Handle)

	return e
}

func TestRequestIDMiddleware(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
		keep     bool
	}{
		{name: "generated when missing"},
		{name: "kept from client", incoming: "abc-123", keep: true},
		{name: "replaced when too long", incoming: strings.Repeat("x", maxRequestIDLength+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			e := newTestEcho(&buf, false)

			var seenCtxID string
			var seenLogger *slog.Logger
			e.GET("/ping", func(c echo.Context) error {
				seenCtxID = deliverycontext.GetRequestIDFromContext(c.Request().Context())
				seenLogger = logs.FromContext(c.Request().Context(), nil)

				return c.NoContent(http.StatusNoContent)
			})

			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			if tt.incoming != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.incoming)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			got := rec.Header().Get(deliverycontext.HeaderXRequestID)
			require.NotEmpty(t, got)
			assert.Equal(t, got, seenCtxID)
			assert.NotNil(t, seenLogger)
			if tt.keep {
				assert.Equal(t, tt.incoming, got)
			} else {
				assert.NotEqual(t, tt.incoming, got)
			}
		})
	}
}

func TestLoggerMiddleware_LogsFinalStatus(t *testing.T) {
	var buf bytes.Buffer
	e := newTestEcho(&buf, true)
	e.GET("/items/:id", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusTeapot, "short and stout")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/items/7?q=rua", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)

	logged := buf.String()
	assert.Contains(t, logged, `"msg":"HTTP Request"`)
	assert.Contains(t, logged, `"status":418`)
	assert.Contains(t, logged, `"route":"/items/:id"`)
	assert.Contains(t, logged, `"query":"q=rua"`)
	assert.Contains(t, logged, `"level":"WARN"`)
	assert.Contains(t, logged, `"request_id":`)
}

func TestLoggerMiddleware_HidesQueryOutsideDebug(t *testing.T) {
	var buf bytes.Buffer
	e := newTestEcho(&buf, false)
	e.GET("/search", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/search?q=private", nil))

	logged := buf.String()
	assert.Contains(t, logged, `"level":"DEBUG"`)
	assert.NotContains(t, logged, "private")
}
