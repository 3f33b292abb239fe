package httpclient

import (
	"context"
	"net/http"
)

// Header names propagated from inbound requests.
const (
	HeaderRequestID     = "X-Request-ID"
	HeaderCorrelationID = "X-Correlation-ID"
)

type (
	requestIDKey     struct{}
	correlationIDKey struct{}
)

// WithRequestID stores the inbound request ID for propagation on outbound calls.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// WithCorrelationID stores the correlation ID for propagation on outbound calls.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDKey{}, id)
}

// RequestID returns the request ID stored by WithRequestID, if any.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// CorrelationID returns the correlation ID stored by WithCorrelationID, if any.
func CorrelationID(ctx context.Context) string {
	id, _ := ctx.Value(correlationIDKey{}).(string)
	return id
}

// applyHeaders sets the client's static headers, then the IDs found in ctx.
// Headers already present on req win over static ones.
func (c *Client) applyHeaders(ctx context.Context, req *http.Request) {
	for key, values := range c.headers {
		if req.Header.Get(key) == "" && len(values) > 0 {
			req.Header.Set(key, values[0])
		}
	}
	if id := RequestID(ctx); id != "" {
		req.Header.Set(HeaderRequestID, id)
	}
	if id := CorrelationID(ctx); id != "" {
		req.Header.Set(HeaderCorrelationID, id)
	}
}
