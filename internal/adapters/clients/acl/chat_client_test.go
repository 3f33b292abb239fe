package acl

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jsamuelsen11/club-records/internal/adapters/clients/acl/chat"
	"github.com/jsamuelsen11/club-records/internal/domain"
	"github.com/jsamuelsen11/club-records/internal/platform/config"
	"github.com/jsamuelsen11/club-records/internal/platform/httpclient"
	"github.com/jsamuelsen11/club-records/internal/ports"
)

// newTestClient points an httpclient.Client at baseURL with retries off.
func newTestClient(t *testing.T, baseURL string) *httpclient.Client {
	t.Helper()

	cfg := &config.ClientConfig{
		BaseURL: baseURL,
		Timeout: 5 * time.Second,
		Retry: config.RetryConfig{
			MaxAttempts:     1,
			InitialInterval: 10 * time.Millisecond,
			MaxInterval:     10 * time.Millisecond,
			Multiplier:      1,
		},
		CircuitBreaker: config.CircuitBreakerConfig{
			MaxFailures:   5,
			Timeout:       30 * time.Second,
			HalfOpenLimit: 1,
		},
	}
	return httpclient.New(cfg, "llm-api-test", nil, slog.New(slog.DiscardHandler),
		httpclient.WithBearerToken("sk-test"))
}

func writeJSON(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		t.Fatalf("failed to encode response: %v", err)
	}
}

func completion(content string) chat.ResponseDTO {
	return chat.ResponseDTO{
		ID:    "chatcmpl-123",
		Model: "gpt-4o-mini",
		Choices: []chat.ChoiceDTO{{
			Message:      chat.MessageDTO{Role: chat.RoleAssistant, Content: content},
			FinishReason: "stop",
		}},
		Usage: &chat.UsageDTO{TotalTokens: 42},
	}
}

func TestChatClient_FetchClub(t *testing.T) {
	t.Parallel()

	var got chat.RequestDTO
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != chat.CompletionsPath {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if auth := r.Header.Get("Authorization"); auth != "Bearer sk-test" {
			t.Errorf("Authorization = %q", auth)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decoding request: %v", err)
		}
		writeJSON(t, w, completion(`{"name":"Data Lovers","members":[{"id":1}]}`))
	}))
	defer ts.Close()

	client := NewChatClient(newTestClient(t, ts.URL), "gpt-4o-mini", nil)
	raw, err := client.FetchClub(context.Background(), ports.GenerationSpec{Companies: 3, Members: 5, Events: 3})
	if err != nil {
		t.Fatalf("FetchClub() error = %v", err)
	}

	if raw["name"] != "Data Lovers" {
		t.Errorf("name = %v, want %q", raw["name"], "Data Lovers")
	}
	if got.Model != "gpt-4o-mini" {
		t.Errorf("request model = %q", got.Model)
	}
	if len(got.Messages) != 2 {
		t.Errorf("request messages = %d, want 2", len(got.Messages))
	}
}

func TestChatClient_FetchClub_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		handler http.HandlerFunc
		wantErr error
	}{
		{
			name: "unauthorized",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"error":{"message":"Incorrect API key provided"}}`))
			},
			wantErr: domain.ErrForbidden,
		},
		{
			name: "upstream outage",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusServiceUnavailable)
			},
			wantErr: domain.ErrUnavailable,
		},
		{
			name: "model refusal",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				resp := completion("")
				resp.Choices[0].Message.Refusal = "no"
				writeJSON(t, w, resp)
			},
			wantErr: chat.ErrNoCompletion,
		},
		{
			name: "content is not json",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				writeJSON(t, w, completion("Sure! Here is a club."))
			},
			wantErr: domain.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ts := httptest.NewServer(tt.handler)
			defer ts.Close()

			client := NewChatClient(newTestClient(t, ts.URL), "gpt-4o-mini", nil)
			_, err := client.FetchClub(context.Background(), ports.GenerationSpec{Companies: 1, Members: 1})
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("FetchClub() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestChatClient_FetchClub_Unreachable(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.NotFoundHandler())
	url := ts.URL
	ts.Close()

	client := NewChatClient(newTestClient(t, url), "gpt-4o-mini", nil)
	_, err := client.FetchClub(context.Background(), ports.GenerationSpec{Members: 1})
	if !errors.Is(err, domain.ErrUnavailable) {
		t.Errorf("FetchClub() error = %v, want ErrUnavailable", err)
	}
}

func TestChatClient_Health(t *testing.T) {
	t.Parallel()

	client := NewChatClient(newTestClient(t, "http://localhost"), "gpt-4o-mini", nil)

	if got := client.Name(); got != "llm-api-test" {
		t.Errorf("Name() = %q, want %q", got, "llm-api-test")
	}
	if err := client.HealthCheck(context.Background()); err != nil {
		t.Errorf("HealthCheck() = %v, want nil for closed breaker", err)
	}
}
