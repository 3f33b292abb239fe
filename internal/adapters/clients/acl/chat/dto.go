// Package chat holds the wire shapes of an OpenAI-compatible chat-completions
// API and the translation between those shapes and the club domain.
package chat

// CompletionsPath is the chat-completions endpoint relative to the base URL.
const CompletionsPath = "/v1/chat/completions"

// Message roles.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// RequestDTO is the body of a chat-completions call.
type RequestDTO struct {
	Model          string             `json:"model"`
	Messages       []MessageDTO       `json:"messages"`
	ResponseFormat *ResponseFormatDTO `json:"response_format,omitempty"`
	Temperature    *float64           `json:"temperature,omitempty"`
}

// MessageDTO is one conversation turn.
type MessageDTO struct {
	Role    string `json:"role"`
	Content string `json:"content"`
	// Refusal is set by the API instead of Content when the model declines.
	Refusal string `json:"refusal,omitempty"`
}

// ResponseFormatDTO constrains the completion's output.
type ResponseFormatDTO struct {
	Type       string         `json:"type"`
	JSONSchema *JSONSchemaDTO `json:"json_schema,omitempty"`
}

// JSONSchemaDTO is a structured-output schema. With Strict set the API only
// returns documents matching Schema.
type JSONSchemaDTO struct {
	Name   string         `json:"name"`
	Strict bool           `json:"strict"`
	Schema map[string]any `json:"schema"`
}

// ResponseDTO is a chat-completions result.
type ResponseDTO struct {
	ID      string      `json:"id"`
	Model   string      `json:"model"`
	Choices []ChoiceDTO `json:"choices"`
	Usage   *UsageDTO   `json:"usage,omitempty"`
}

// ChoiceDTO is one candidate completion.
type ChoiceDTO struct {
	Index        int        `json:"index"`
	Message      MessageDTO `json:"message"`
	FinishReason string     `json:"finish_reason"`
}

// UsageDTO reports token accounting.
type UsageDTO struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}
