package middleware_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/club-records/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/club-records/internal/platform/logging"
)

func TestLogging_LogsStartAndCompletion(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	handler := middleware.Logging(testLogger(&buf))(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"kinds":[]}`))
	}))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/records", http.NoBody)
	handler.ServeHTTP(rec, req)

	output := buf.String()
	for _, want := range []string{"request started", "request completed", "method=GET", "path=/api/v1/records", "status=200", "bytes=12", "duration="} {
		if !strings.Contains(output, want) {
			t.Errorf("log output missing %q: %s", want, output)
		}
	}
}

func TestLogging_EnrichesContextLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	handler := middleware.RequestID()(middleware.CorrelationID()(
		middleware.Logging(testLogger(&buf))(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
			logging.FromContext(r.Context()).Info("handler log")
		})),
	))

	req := httptest.NewRequest(http.MethodGet, "/test", http.NoBody)
	req.Header.Set("X-Request-ID", "req-log-test")
	req.Header.Set("X-Correlation-ID", "corr-log-test")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	var handlerLine string
	for line := range strings.SplitSeq(buf.String(), "\n") {
		if strings.Contains(line, "handler log") {
			handlerLine = line
		}
	}
	if handlerLine == "" {
		t.Fatalf("handler log not captured: %s", buf.String())
	}
	if !strings.Contains(handlerLine, "request_id=req-log-test") {
		t.Errorf("handler log missing request_id: %s", handlerLine)
	}
	if !strings.Contains(handlerLine, "correlation_id=corr-log-test") {
		t.Errorf("handler log missing correlation_id: %s", handlerLine)
	}
}

func TestLogging_CompletionLevelFollowsStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status    int
		wantLevel string
	}{
		{http.StatusCreated, "level=INFO"},
		{http.StatusBadRequest, "level=WARN"},
		{http.StatusBadGateway, "level=ERROR"},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			handler := middleware.Logging(testLogger(&buf))(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
			}))
			handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/x", http.NoBody))

			var completed string
			for line := range strings.SplitSeq(buf.String(), "\n") {
				if strings.Contains(line, "request completed") {
					completed = line
				}
			}
			if !strings.Contains(completed, tt.wantLevel) {
				t.Errorf("completion line = %q, want %s", completed, tt.wantLevel)
			}
		})
	}
}

func TestLogging_RecordsRoutePattern(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	r := chi.NewRouter()
	r.Use(middleware.Logging(testLogger(&buf)))
	r.Post("/api/v1/records/{kind}/validate", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/v1/records/club/validate", http.NoBody))

	if !strings.Contains(buf.String(), "route=/api/v1/records/{kind}/validate") {
		t.Errorf("log output missing route pattern: %s", buf.String())
	}
}

func TestLogging_RedactsSensitiveHeaders(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	handler := middleware.Logging(testLogger(&buf))(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))

	req := httptest.NewRequest(http.MethodGet, "/test", http.NoBody)
	req.Header.Set("Authorization", "Bearer sk-live-secret")
	req.Header.Set("X-Api-Key", "key-123")
	req.Header.Set("Cookie", "session=abc")
	req.Header.Add("Accept", "application/json")
	req.Header.Add("Accept", "application/problem+json")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	output := buf.String()
	for _, secret := range []string{"sk-live-secret", "key-123", "session=abc"} {
		if strings.Contains(output, secret) {
			t.Errorf("log output leaks %q: %s", secret, output)
		}
	}
	if !strings.Contains(output, "headers.Authorization=[REDACTED]") {
		t.Errorf("log output missing redacted Authorization: %s", output)
	}
	if !strings.Contains(output, "application/json,application/problem+json") {
		t.Errorf("log output missing joined Accept values: %s", output)
	}
}

func TestLogging_SkipsHeadersAboveDebug(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := logging.New("info", "text", &buf)
	handler := middleware.Logging(logger)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))

	req := httptest.NewRequest(http.MethodGet, "/test", http.NoBody)
	req.Header.Set("Accept", "application/json")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if strings.Contains(buf.String(), "request headers") {
		t.Errorf("headers logged at info level: %s", buf.String())
	}
}
