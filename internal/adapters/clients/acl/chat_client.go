package acl

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/club-records/internal/adapters/clients/acl/chat"
	"github.com/jsamuelsen11/club-records/internal/domain/record"
	"github.com/jsamuelsen11/club-records/internal/platform/httpclient"
	"github.com/jsamuelsen11/club-records/internal/ports"
)

var (
	_ ports.ClubSource    = (*ChatClient)(nil)
	_ ports.HealthChecker = (*ChatClient)(nil)
)

// ChatClient generates candidate clubs through a chat-completions API.
type ChatClient struct {
	req    *Requester
	model  string
	logger *slog.Logger
}

// NewChatClient creates a ChatClient that asks model for clubs.
func NewChatClient(client *httpclient.Client, model string, logger *slog.Logger) *ChatClient {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &ChatClient{
		req:    NewRequester(client, logger),
		model:  model,
		logger: logger,
	}
}

// FetchClub requests a club and returns the model's JSON answer, unvalidated.
func (c *ChatClient) FetchClub(ctx context.Context, spec ports.GenerationSpec) (record.Raw, error) {
	var resp chat.ResponseDTO
	if err := c.req.Do(ctx, http.MethodPost, chat.CompletionsPath, http.StatusOK,
		chat.ToRequest(c.model, spec), &resp); err != nil {
		return nil, err
	}

	attrs := []any{
		slog.String("completion_id", resp.ID),
		slog.String("model", resp.Model),
	}
	if resp.Usage != nil {
		attrs = append(attrs, slog.Int("total_tokens", resp.Usage.TotalTokens))
	}
	c.logger.DebugContext(ctx, "club completion received", attrs...)

	return chat.ToRaw(resp)
}

// Name returns the upstream identifier used by the health registry.
func (c *ChatClient) Name() string {
	return c.req.Name()
}

// HealthCheck reports upstream health from the circuit breaker state. It
// makes no network call, so a failing upstream never blocks readiness checks.
func (c *ChatClient) HealthCheck(ctx context.Context) error {
	return c.req.HealthCheck(ctx)
}
