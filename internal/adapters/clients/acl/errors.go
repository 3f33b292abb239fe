// Package acl is the anti-corruption layer between the chat-completions API
// and the club domain. Wire shapes and prompt construction live in acl/chat;
// the client, request plumbing and error mapping live here.
package acl

import (
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/jsamuelsen11/club-records/internal/domain"
)

const maxErrorBodySize = 1 << 20

// errorBody accepts both shapes an upstream may answer with: RFC 7807
// problem details, or the {"error": {...}} envelope of chat-completion APIs.
type errorBody struct {
	Detail string        `json:"detail"`
	Errors []errorDetail `json:"errors"`
	Error  *apiError     `json:"error"`
}

type errorDetail struct {
	Location string `json:"location"`
	Message  string `json:"message"`
}

type apiError struct {
	Message string `json:"message"`
	Type    string `json:"type"`
	Param   string `json:"param"`
	Code    any    `json:"code"`
}

func (b errorBody) detail() string {
	if b.Detail != "" {
		return b.Detail
	}
	if b.Error != nil {
		return b.Error.Message
	}
	return ""
}

// TranslateHTTPError maps an upstream error response to a domain error.
// Field-level details on 400/422 become a *domain.ValidationError.
func TranslateHTTPError(resp *http.Response) error {
	body := parseErrorBody(resp)

	detail := body.detail()
	if detail == "" {
		detail = http.StatusText(resp.StatusCode)
	}

	switch code := resp.StatusCode; {
	case code == http.StatusNotFound:
		return fmt.Errorf("%s: %w", detail, domain.ErrNotFound)
	case code == http.StatusBadRequest || code == http.StatusUnprocessableEntity:
		if verr := toValidationError(body); verr != nil {
			return verr
		}
		return fmt.Errorf("%s: %w", detail, domain.ErrValidation)
	case code == http.StatusConflict:
		return fmt.Errorf("%s: %w", detail, domain.ErrConflict)
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		return fmt.Errorf("%s: %w", detail, domain.ErrForbidden)
	case code == http.StatusTooManyRequests || code >= http.StatusInternalServerError:
		return fmt.Errorf("%s: %w", detail, domain.ErrUnavailable)
	default:
		return fmt.Errorf("unexpected status %d: %s", code, detail)
	}
}

func parseErrorBody(resp *http.Response) errorBody {
	if resp.Body == nil {
		return errorBody{}
	}
	mt, _, err := mime.ParseMediaType(resp.Header.Get("Content-Type"))
	if err != nil || (mt != "application/problem+json" && mt != "application/json") {
		return errorBody{}
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
	if err != nil {
		return errorBody{}
	}
	var b errorBody
	if err := json.Unmarshal(raw, &b); err != nil {
		return errorBody{}
	}
	return b
}

// toValidationError converts field details to violations, stripping the
// "body." location prefix. An upstream param error counts as one field.
func toValidationError(b errorBody) *domain.ValidationError {
	var violations []domain.Violation
	for _, d := range b.Errors {
		violations = append(violations, domain.Violation{
			Kind:    domain.KindField,
			Path:    strings.TrimPrefix(d.Location, "body."),
			Rule:    "upstream",
			Message: d.Message,
		})
	}
	if len(violations) == 0 && b.Error != nil && b.Error.Param != "" {
		violations = append(violations, domain.Violation{
			Kind:    domain.KindField,
			Path:    b.Error.Param,
			Rule:    "upstream",
			Message: b.Error.Message,
		})
	}
	if len(violations) == 0 {
		return nil
	}
	return &domain.ValidationError{Violations: violations}
}
