package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/club-records/internal/adapters/http/dto"
	"github.com/jsamuelsen11/club-records/internal/domain"
	"github.com/jsamuelsen11/club-records/internal/domain/record"
)

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", slog.Any("error", err))
	}
}

// readBody reads the whole request body. The size cap is applied upstream
// by middleware.BodyLimit; hitting it surfaces as dto.ErrBodyTooLarge.
func readBody(r *http.Request) ([]byte, error) {
	data, err := io.ReadAll(r.Body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, fmt.Errorf("%w: limit is %d bytes", dto.ErrBodyTooLarge, tooLarge.Limit)
		}
		return nil, domain.NewFieldError("", "unreadable request body")
	}
	return data, nil
}

// decodeRaw reads the request body as an untyped record mapping. Invalid JSON
// is reported as a validation error rather than a transport failure.
func decodeRaw(w http.ResponseWriter, r *http.Request) (record.Raw, bool) {
	data, err := readBody(r)
	if err == nil {
		var raw record.Raw
		if raw, err = record.DecodeJSON(data); err == nil {
			return raw, true
		}
	}
	dto.WriteErrorResponse(w, r, err)
	return nil, false
}

// decodeJSONBody decodes the request body as a single JSON value into dst,
// keeping numbers as json.Number. An empty body leaves dst untouched when optional is set.
// On failure it writes a 400 error response and returns false.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst any, optional bool) bool {
	data, err := readBody(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return false
	}
	if optional && len(bytes.TrimSpace(data)) == 0 {
		return true
	}

	if err := record.DecodeStrict(data, dst); err != nil {
		dto.WriteErrorResponse(w, r, record.JSONError("invalid JSON", err))
		return false
	}
	return true
}

// validatable is implemented by request DTOs that support validation.
type validatable interface {
	Validate() error
}

// decodeAndValidate decodes the JSON request body into dst and validates it.
// On decode or validation failure it writes an error response and returns false.
func decodeAndValidate[T validatable](w http.ResponseWriter, r *http.Request, dst T, optional bool) bool {
	if !decodeJSONBody(w, r, dst, optional) {
		return false
	}
	if err := dst.Validate(); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return false
	}
	return true
}
