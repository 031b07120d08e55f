package middleware

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoggingMiddleware(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		wantLevel string
	}{
		{name: "2xx logged as info", status: http.StatusOK, wantLevel: "level=INFO"},
		{name: "4xx logged as warn", status: http.StatusNotFound, wantLevel: "level=WARN"},
		{name: "5xx logged as error", status: http.StatusInternalServerError, wantLevel: "level=ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf strings.Builder
			logger := slog.New(slog.NewTextHandler(&buf, nil))

			handler := LoggingMiddleware(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte("body"))
			}))

			req := httptest.NewRequest(http.MethodGet, "/api/v1/tasks", nil)
			req.RemoteAddr = "10.0.0.1:1234"
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			logged := buf.String()
			assert.Contains(t, logged, tt.wantLevel)
			assert.Contains(t, logged, "/api/v1/tasks")
			assert.Contains(t, logged, "method=GET")
		})
	}
}

func TestLoggingMiddleware_DefaultStatus(t *testing.T) {
	var buf strings.Builder
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	// Handler пишет тело без явного WriteHeader
	handler := LoggingMiddleware(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("implicit ok"))
	}))

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Contains(t, buf.String(), "status=200")
	assert.Contains(t, buf.String(), "bytes_written=11")
}
