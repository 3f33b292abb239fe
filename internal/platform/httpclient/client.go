// Package httpclient is the instrumented HTTP client used for outbound calls
// to the chat-completions API. Every call runs through the same pipeline:
//
//	circuit breaker -> rate limiter -> headers -> span -> retry -> transport
//
// Construction:
//
//	client := httpclient.New(&cfg.Client, "llm-api", metrics, logger,
//	    httpclient.WithBearerToken(cfg.Generator.APIKey))
//
// The returned *http.Response (possibly alongside an error once retries are
// exhausted) has an open body that the caller must close.
package httpclient

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"

	"github.com/jsamuelsen11/club-records/internal/platform/config"
	"github.com/jsamuelsen11/club-records/internal/platform/telemetry"
)

const tracerName = "github.com/jsamuelsen11/club-records/internal/platform/httpclient"

// Client wraps *http.Client with resilience and telemetry.
type Client struct {
	http        *http.Client
	baseURL     string
	serviceName string
	headers     http.Header
	breaker     *gobreaker.CircuitBreaker[*http.Response]
	limiter     *rate.Limiter // nil when unlimited
	policy      retryPolicy
	metrics     *telemetry.Metrics
	logger      *slog.Logger
}

// Option customizes a Client.
type Option func(*Client)

// WithBearerToken sends "Authorization: Bearer <token>" on every request.
// An empty token is ignored.
func WithBearerToken(token string) Option {
	return func(c *Client) {
		if token != "" {
			c.headers.Set("Authorization", "Bearer "+token)
		}
	}
}

// WithHeader sets a static header on every request.
func WithHeader(key, value string) Option {
	return func(c *Client) { c.headers.Set(key, value) }
}

// WithTransport replaces the underlying round tripper.
func WithTransport(rt http.RoundTripper) Option {
	return func(c *Client) { c.http.Transport = rt }
}

// New builds a Client from cfg. serviceName labels spans, metrics and the
// breaker. metrics may be nil.
func New(cfg *config.ClientConfig, serviceName string, metrics *telemetry.Metrics, logger *slog.Logger, opts ...Option) *Client {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	c := &Client{
		http:        &http.Client{Timeout: cfg.Timeout},
		baseURL:     cfg.BaseURL,
		serviceName: serviceName,
		headers:     make(http.Header),
		policy:      newRetryPolicy(cfg.Retry),
		metrics:     metrics,
		logger:      logger,
	}

	c.breaker = gobreaker.NewCircuitBreaker[*http.Response](gobreaker.Settings{
		Name:        serviceName,
		MaxRequests: clampUint32(cfg.CircuitBreaker.HalfOpenLimit),
		Timeout:     cfg.CircuitBreaker.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return int(counts.ConsecutiveFailures) >= cfg.CircuitBreaker.MaxFailures
		},
		// Caller cancellation says nothing about the upstream's health.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})

	if rl := cfg.RateLimit; rl.RequestsPerSecond > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(rl.RequestsPerSecond), max(rl.BurstSize, 1))
	}

	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Do sends req through the pipeline. ctx drives cancellation, tracing and
// request/correlation ID propagation.
func (c *Client) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	start := time.Now()

	// On exhausted retries the breaker sees the error but the caller still
	// gets the last response to translate.
	var last *http.Response
	resp, err := c.breaker.Execute(func() (*http.Response, error) {
		if c.limiter != nil {
			if err := c.limiter.Wait(ctx); err != nil {
				return nil, fmt.Errorf("rate limiter: %w", err)
			}
		}

		c.applyHeaders(ctx, req)

		spanCtx, span := c.startSpan(ctx, req)
		defer span.End()

		r, err := c.send(spanCtx, req.WithContext(spanCtx))
		endSpan(span, r, err)
		last = r
		return r, err
	})
	if resp == nil {
		resp = last
	}

	c.observe(ctx, req.Method, time.Since(start), resp, err)
	return resp, err
}

// BaseURL returns the configured base URL without a trailing slash.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Name identifies the upstream in health reports, spans and metrics.
func (c *Client) Name() string {
	return c.serviceName
}

// HealthCheck derives upstream health from the breaker state without making
// a network call: closed is healthy, half-open is degraded, open is failing.
func (c *Client) HealthCheck(_ context.Context) error {
	switch state := c.breaker.State(); state {
	case gobreaker.StateClosed:
		return nil
	case gobreaker.StateHalfOpen:
		return fmt.Errorf("%s: degraded (circuit breaker half-open)", c.serviceName)
	case gobreaker.StateOpen:
		return fmt.Errorf("%s: failing (circuit breaker open)", c.serviceName)
	default:
		return fmt.Errorf("%s: unknown circuit breaker state %v", c.serviceName, state)
	}
}

func (c *Client) startSpan(ctx context.Context, req *http.Request) (context.Context, trace.Span) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "HTTP "+req.Method+" "+c.serviceName,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.method", req.Method),
			attribute.String("http.url", req.URL.String()),
			attribute.String("peer.service", c.serviceName),
		),
	)
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))
	return ctx, span
}

func endSpan(span trace.Span, resp *http.Response, err error) {
	if resp != nil {
		span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
}

// observe runs outside the breaker so rejected calls are counted too.
func (c *Client) observe(ctx context.Context, method string, elapsed time.Duration, resp *http.Response, err error) {
	if c.metrics == nil {
		return
	}

	status, result := 0, "error"
	if resp != nil {
		status = resp.StatusCode
		if err == nil && status < http.StatusBadRequest {
			result = "success"
		}
	}
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		result = "circuit_open"
	}

	attrs := metric.WithAttributes(
		telemetry.AttrHTTPMethod.String(method),
		telemetry.AttrHTTPStatus.Int(status),
		telemetry.AttrPeerService.String(c.serviceName),
		telemetry.AttrResult.String(result),
	)
	c.metrics.ClientRequestDuration.Record(ctx, elapsed.Seconds(), attrs)
	c.metrics.ClientRequestTotal.Add(ctx, 1, attrs)
}

func clampUint32(v int) uint32 {
	switch {
	case v <= 0:
		return 0
	case v > math.MaxUint32:
		return math.MaxUint32
	default:
		return uint32(v)
	}
}
