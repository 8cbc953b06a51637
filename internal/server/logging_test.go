package server

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/RecipeBook_Go/internal/logger"
)

// captureLogs routes the default logger into a buffer for the test
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	return &buf
}

func TestLoggingMiddleware_RedactsCredentials(t *testing.T) {
	buf := captureLogs(t)

	req := httptest.NewRequest(http.MethodPut, "/api/v1/recipes/r1", nil)
	req.Header.Set(HeaderAuthorization, "Bearer tok-abc")
	req.Header.Set(HeaderCookie, "session=cookie-token-123")
	req.Header.Set("User-Agent", "recipectl/test")
	loggingMiddleware(okHandler(http.StatusOK)).ServeHTTP(httptest.NewRecorder(), req)

	out := buf.String()
	require.Contains(t, out, LogMsgRequestHeaders)
	assert.Contains(t, out, logger.RedactedValue)
	assert.Contains(t, out, "recipectl/test")
	assert.NotContains(t, out, "tok-abc")
	assert.NotContains(t, out, "cookie-token-123")
	assert.Contains(t, out, "status=200")
}

func TestLoggingMiddleware_QuietOnProbes(t *testing.T) {
	buf := captureLogs(t)

	h := loggingMiddleware(okHandler(http.StatusOK))
	for _, path := range QuietPaths {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}
	assert.Empty(t, buf.String())
}
