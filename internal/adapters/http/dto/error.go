package dto

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sort"

	"github.com/jsamuelsen11/club-records/internal/domain"
)

// ContentTypeProblem is the media type of every error body.
const ContentTypeProblem = "application/problem+json"

// ErrBodyTooLarge is reported when a request body exceeds server.max_body_bytes.
var ErrBodyTooLarge = errors.New("request body too large")

// ErrorResponse represents an RFC 9457 Problem Details response.
type ErrorResponse struct {
	Type     string        `json:"type"`
	Title    string        `json:"title"`
	Status   int           `json:"status"`
	Detail   string        `json:"detail,omitempty"`
	Instance string        `json:"instance,omitempty"`
	Errors   []ErrorDetail `json:"errors,omitempty"`
}

// ErrorDetail is one violation inside an ErrorResponse. Location is the
// violation path prefixed with "body.", or just "body" for record-level rules.
type ErrorDetail struct {
	Location string          `json:"location"`
	Message  string          `json:"message"`
	Rule     string          `json:"rule,omitempty"`
	Kind     string          `json:"kind,omitempty"`
	Fields   []string        `json:"fields,omitempty"`
	Value    any             `json:"value,omitempty"`
	Variants []VariantDetail `json:"variants,omitempty"`
}

// VariantDetail explains why one candidate shape of a union was rejected.
type VariantDetail struct {
	Variant string        `json:"variant"`
	Errors  []ErrorDetail `json:"errors"`
}

// NewErrorResponse creates an RFC 9457 ErrorResponse from a domain error.
// The request is used to populate the instance field with the request URI.
// Unclassified errors are reported without their message so internal detail
// never leaks to clients.
func NewErrorResponse(r *http.Request, err error) ErrorResponse {
	status := domainErrorToStatus(err)

	resp := ErrorResponse{
		Type:     "about:blank",
		Title:    http.StatusText(status),
		Status:   status,
		Detail:   err.Error(),
		Instance: r.RequestURI,
	}

	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		resp.Detail = summarize(verr)
		resp.Errors = ViolationDetails(verr.Violations)
	case status == http.StatusInternalServerError:
		resp.Detail = "internal server error"
	}

	return resp
}

// WriteErrorResponse writes an RFC 9457 error response for the given domain
// error with the application/problem+json content type.
func WriteErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	writeProblem(w, r, NewErrorResponse(r, err))
}

// WriteStatus writes a problem response for a protocol-level status that has
// no domain error behind it, such as 404 for an unknown route or 405.
func WriteStatus(w http.ResponseWriter, r *http.Request, status int, detail string) {
	writeProblem(w, r, ErrorResponse{
		Type:     "about:blank",
		Title:    http.StatusText(status),
		Status:   status,
		Detail:   detail,
		Instance: r.RequestURI,
	})
}

func writeProblem(w http.ResponseWriter, r *http.Request, resp ErrorResponse) {
	w.Header().Set("Content-Type", ContentTypeProblem)
	w.WriteHeader(resp.Status)

	if encErr := json.NewEncoder(w).Encode(resp); encErr != nil {
		slog.ErrorContext(r.Context(), "failed to encode error response",
			slog.Any("error", encErr),
		)
	}
}

// ViolationDetails converts violations to ErrorDetail entries sorted by
// location. Entries sharing a location keep their original order.
func ViolationDetails(vs []domain.Violation) []ErrorDetail {
	details := make([]ErrorDetail, 0, len(vs))
	for _, v := range vs {
		details = append(details, violationDetail(v))
	}
	sort.SliceStable(details, func(i, j int) bool {
		return details[i].Location < details[j].Location
	})
	return details
}

func violationDetail(v domain.Violation) ErrorDetail {
	d := ErrorDetail{
		Location: location(v.Path),
		Message:  v.Message,
		Rule:     v.Rule,
		Kind:     string(v.Kind),
		Fields:   v.Fields,
		Value:    v.Value,
	}
	for _, vf := range v.Variants {
		d.Variants = append(d.Variants, VariantDetail{
			Variant: vf.Variant,
			Errors:  ViolationDetails(vf.Violations),
		})
	}
	return d
}

func location(path string) string {
	if path == "" {
		return "body"
	}
	return "body." + path
}

func summarize(verr *domain.ValidationError) string {
	if n := len(verr.Violations); n != 1 {
		return fmt.Sprintf("%d validation errors", n)
	}
	return verr.Violations[0].String()
}

// domainErrorToStatus maps domain sentinel errors to HTTP status codes.
func domainErrorToStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, domain.ErrUnavailable):
		return http.StatusBadGateway
	case errors.Is(err, ErrBodyTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}
