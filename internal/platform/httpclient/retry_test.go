package httpclient

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/jsamuelsen11/club-records/internal/platform/config"
)

func TestRetryPolicy_Delay(t *testing.T) {
	t.Parallel()

	p := newRetryPolicy(config.RetryConfig{
		MaxAttempts:     5,
		InitialInterval: 100 * time.Millisecond,
		MaxInterval:     time.Second,
		Multiplier:      2,
	})

	tests := []struct {
		retry int
		base  time.Duration
	}{
		{1, 100 * time.Millisecond},
		{2, 200 * time.Millisecond},
		{3, 400 * time.Millisecond},
		{4, 800 * time.Millisecond},
		{8, time.Second}, // capped
	}
	for _, tt := range tests {
		lo := time.Duration(float64(tt.base) * (1 - jitter))
		hi := time.Duration(float64(tt.base) * (1 + jitter))
		for range 200 {
			if d := p.delay(tt.retry); d < lo || d > hi {
				t.Fatalf("delay(%d) = %v, want within [%v, %v]", tt.retry, d, lo, hi)
			}
		}
	}
}

func TestRetryPolicy_AttemptsFloor(t *testing.T) {
	t.Parallel()

	if p := newRetryPolicy(config.RetryConfig{}); p.attempts != 1 {
		t.Errorf("attempts = %d, want 1", p.attempts)
	}
}

func TestRetryPolicy_WaitPrefersHint(t *testing.T) {
	t.Parallel()

	p := retryPolicy{attempts: 3, initial: 10 * time.Millisecond, ceiling: time.Second, multiplier: 2}

	if got := p.wait(1, 300*time.Millisecond); got != 300*time.Millisecond {
		t.Errorf("wait(hint 300ms) = %v", got)
	}
	if got := p.wait(1, time.Minute); got != time.Second {
		t.Errorf("wait(hint 1m) = %v, want ceiling 1s", got)
	}
}

func TestRetryAfter(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		in   string
		want time.Duration
	}{
		{"", 0},
		{"3", 3 * time.Second},
		{"-4", 0},
		{"soon", 0},
		{now.Add(5 * time.Second).Format(http.TimeFormat), 5 * time.Second},
		{now.Add(-time.Minute).Format(http.TimeFormat), 0},
	}
	for _, tt := range tests {
		if got := retryAfter(tt.in, now); got != tt.want {
			t.Errorf("retryAfter(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestIsRetryable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err  error
		want bool
	}{
		{nil, false},
		{context.Canceled, false},
		{fmt.Errorf("dial: %w", context.DeadlineExceeded), false},
		{errors.New("connection reset by peer"), true},
	}
	for _, tt := range tests {
		if got := isRetryable(tt.err); got != tt.want {
			t.Errorf("isRetryable(%v) = %v, want %v", tt.err, got, tt.want)
		}
	}
}

func TestIsRetryableStatus(t *testing.T) {
	t.Parallel()

	for code, want := range map[int]bool{
		200: false, 400: false, 401: false, 404: false, 422: false,
		429: true, 500: true, 501: false, 502: true, 503: true, 504: true,
	} {
		if got := isRetryableStatus(code); got != want {
			t.Errorf("isRetryableStatus(%d) = %v, want %v", code, got, want)
		}
	}
}
