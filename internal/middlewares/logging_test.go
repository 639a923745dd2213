package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/sbilibin2017/podcast-network/internal/logger"
)

func observeLogs(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zap.InfoLevel)
	prev := logger.Log
	logger.Log = zap.New(core).Sugar()
	t.Cleanup(func() { logger.Log = prev })
	return logs
}

func TestLoggingMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		incomingID string
	}{
		{name: "implicit 200", body: "hello"},
		{name: "server error", status: http.StatusInternalServerError, body: "boom"},
		{name: "incoming request id reused", status: http.StatusCreated, body: "{}", incomingID: "req-123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logs := observeLogs(t)

			var seenID string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seenID = RequestIDFromContext(r.Context())
				if tt.status != 0 {
					w.WriteHeader(tt.status)
				}
				_, _ = w.Write([]byte(tt.body))
			})

			req := httptest.NewRequest(http.MethodPost, "/api/hosts", nil)
			if tt.incomingID != "" {
				req.Header.Set("X-Request-ID", tt.incomingID)
			}
			rr := httptest.NewRecorder()
			LoggingMiddleware(next).ServeHTTP(rr, req)

			wantStatus := tt.status
			if wantStatus == 0 {
				wantStatus = http.StatusOK
			}
			assert.Equal(t, wantStatus, rr.Code)
			assert.Equal(t, tt.body, rr.Body.String())

			require.NotEmpty(t, seenID)
			assert.Equal(t, seenID, rr.Header().Get("X-Request-ID"))
			if tt.incomingID != "" {
				assert.Equal(t, tt.incomingID, seenID)
			}

			entries := logs.FilterMessage("request").All()
			require.Len(t, entries, 1)
			fields := entries[0].ContextMap()
			assert.Equal(t, seenID, fields["request_id"])
			assert.Equal(t, http.MethodPost, fields["method"])
			assert.Equal(t, "/api/hosts", fields["uri"])
			assert.EqualValues(t, wantStatus, fields["status"])
			assert.EqualValues(t, len(tt.body), fields["response_size"])
		})
	}
}

func TestRequestIDFromContext_Missing(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Empty(t, RequestIDFromContext(req.Context()))
}
