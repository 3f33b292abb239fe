package acl

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/club-records/internal/domain"
	"github.com/jsamuelsen11/club-records/internal/platform/httpclient"
)

// Requester runs one JSON request/response exchange over httpclient.Client:
// encode, send, check status, translate errors, decode, close.
type Requester struct {
	client *httpclient.Client
	logger *slog.Logger
}

// NewRequester creates a Requester. A nil logger discards output.
func NewRequester(client *httpclient.Client, logger *slog.Logger) *Requester {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Requester{client: client, logger: logger}
}

// Do sends method to base URL + path. reqBody, when non-nil, is sent as JSON;
// respBody, when non-nil, receives the decoded response. Any status other
// than wantStatus is translated by TranslateHTTPError.
func (r *Requester) Do(ctx context.Context, method, path string, wantStatus int, reqBody, respBody any) error {
	var body io.Reader = http.NoBody
	if reqBody != nil {
		b, err := json.Marshal(reqBody)
		if err != nil {
			return fmt.Errorf("marshaling %s %s body: %w", method, path, err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, r.client.BaseURL()+path, body)
	if err != nil {
		return fmt.Errorf("creating %s request for %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if reqBody != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return r.execute(req, wantStatus, respBody)
}

// Name reports the upstream's identifier.
func (r *Requester) Name() string {
	return r.client.Name()
}

// HealthCheck reports the upstream's breaker-derived health.
func (r *Requester) HealthCheck(ctx context.Context) error {
	return r.client.HealthCheck(ctx)
}

func (r *Requester) execute(req *http.Request, wantStatus int, respBody any) error {
	ctx := req.Context()

	resp, err := r.client.Do(ctx, req)
	if resp != nil {
		defer r.closeBody(ctx, resp)
	}
	if err != nil {
		// Exhausted retries still carry the upstream's answer.
		if resp != nil && resp.StatusCode != wantStatus {
			return TranslateHTTPError(resp)
		}
		r.logger.ErrorContext(ctx, "request failed",
			slog.String("method", req.Method),
			slog.String("url", req.URL.String()),
			slog.Any("error", err),
		)
		if ctx.Err() != nil {
			return fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
		}
		return fmt.Errorf("%s %s: %w: %w", req.Method, req.URL.Path, domain.ErrUnavailable, err)
	}

	if resp.StatusCode != wantStatus {
		r.logger.ErrorContext(ctx, "unexpected status",
			slog.String("method", req.Method),
			slog.String("url", req.URL.String()),
			slog.Int("status", resp.StatusCode),
			slog.Int("want_status", wantStatus),
		)
		return TranslateHTTPError(resp)
	}

	if respBody == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(respBody); err != nil {
		return fmt.Errorf("decoding response from %s %s: %w", req.Method, req.URL.Path, err)
	}
	return nil
}

func (r *Requester) closeBody(ctx context.Context, resp *http.Response) {
	if err := resp.Body.Close(); err != nil {
		r.logger.WarnContext(ctx, "failed to close response body", slog.Any("error", err))
	}
}
