package httpclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"math/rand/v2"
	"net/http"
	"strconv"
	"time"

	"github.com/jsamuelsen11/club-records/internal/platform/config"
	"github.com/jsamuelsen11/club-records/internal/platform/logging"
)

// jitter is the maximum relative deviation applied to each delay.
const jitter = 0.25

type retryPolicy struct {
	attempts   int
	initial    time.Duration
	ceiling    time.Duration
	multiplier float64
}

func newRetryPolicy(cfg config.RetryConfig) retryPolicy {
	return retryPolicy{
		attempts:   max(cfg.MaxAttempts, 1),
		initial:    cfg.InitialInterval,
		ceiling:    cfg.MaxInterval,
		multiplier: cfg.Multiplier,
	}
}

// delay returns the wait before retry n (1 for the first retry): exponential
// growth capped at the ceiling, then jittered by up to ±25%.
func (p retryPolicy) delay(n int) time.Duration {
	d := float64(p.initial) * math.Pow(p.multiplier, float64(n-1))
	if p.ceiling > 0 {
		d = min(d, float64(p.ceiling))
	}
	d += d * jitter * (2*rand.Float64() - 1)
	return time.Duration(max(d, 0))
}

// wait picks the delay for retry n. A Retry-After hint from the upstream
// overrides the computed backoff but never exceeds the ceiling.
func (p retryPolicy) wait(n int, hint time.Duration) time.Duration {
	if hint <= 0 {
		return p.delay(n)
	}
	if p.ceiling > 0 {
		return min(hint, p.ceiling)
	}
	return hint
}

// send performs the HTTP exchange, retrying transport errors and retryable
// statuses. The body is buffered so it can be replayed.
func (c *Client) send(ctx context.Context, req *http.Request) (*http.Response, error) {
	body, err := snapshotBody(req)
	if err != nil {
		return nil, err
	}

	var (
		lastErr error
		hint    time.Duration
	)
	for attempt := 0; attempt < c.policy.attempts; attempt++ {
		if attempt > 0 {
			if err := c.pause(ctx, req, attempt, hint, lastErr); err != nil {
				return nil, err
			}
		}
		if body != nil {
			req.Body = io.NopCloser(bytes.NewReader(body))
			req.ContentLength = int64(len(body))
		}

		resp, err := c.http.Do(req)
		if err != nil {
			if !isRetryable(err) {
				return nil, err
			}
			lastErr, hint = err, 0
			continue
		}
		if !isRetryableStatus(resp.StatusCode) {
			return resp, nil
		}

		lastErr = fmt.Errorf("HTTP %d from %s", resp.StatusCode, c.serviceName)
		if attempt == c.policy.attempts-1 {
			return resp, lastErr
		}
		hint = retryAfter(resp.Header.Get("Retry-After"), time.Now())
		discard(resp)
	}
	return nil, lastErr
}

func (c *Client) pause(ctx context.Context, req *http.Request, attempt int, hint time.Duration, cause error) error {
	d := c.policy.wait(attempt, hint)

	logging.FromContext(ctx).WarnContext(ctx, "retrying HTTP request",
		slog.String("operation", "httpclient.Do"),
		slog.String("method", req.Method),
		slog.String("url", req.URL.String()),
		slog.String("peer_service", c.serviceName),
		slog.Int("attempt", attempt+1),
		slog.Int("max_attempts", c.policy.attempts),
		slog.Duration("backoff", d),
		slog.Any("error", cause),
	)

	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func snapshotBody(req *http.Request) ([]byte, error) {
	if req.Body == nil || req.Body == http.NoBody {
		return nil, nil
	}
	defer func() { _ = req.Body.Close() }()

	b, err := io.ReadAll(req.Body)
	if err != nil {
		return nil, fmt.Errorf("reading request body: %w", err)
	}
	return b, nil
}

// discard drains and closes a response so the connection can be reused.
func discard(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}

// retryAfter parses a Retry-After value given either as delta seconds or as
// an HTTP date. Unparseable or past values yield zero.
func retryAfter(v string, now time.Time) time.Duration {
	if v == "" {
		return 0
	}
	if secs, err := strconv.Atoi(v); err == nil {
		return time.Duration(max(secs, 0)) * time.Second
	}
	if at, err := http.ParseTime(v); err == nil {
		return max(at.Sub(now), 0)
	}
	return 0
}

// isRetryable reports whether a transport error is worth another attempt.
// Cancellation and deadlines are final.
func isRetryable(err error) bool {
	if err == nil {
		return false
	}
	return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}

// isRetryableStatus covers throttling and upstream failures. 501 is final.
func isRetryableStatus(code int) bool {
	switch {
	case code == http.StatusTooManyRequests:
		return true
	case code == http.StatusNotImplemented:
		return false
	default:
		return code >= http.StatusInternalServerError
	}
}
