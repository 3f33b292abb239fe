// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"errors"

	"github.com/jsamuelsen11/club-records/internal/domain"
	"github.com/jsamuelsen11/club-records/internal/domain/club"
	"github.com/jsamuelsen11/club-records/internal/ports"
)

// KindsResponse lists the record kinds the service can validate.
type KindsResponse struct {
	Kinds []string `json:"kinds"`
	Count int      `json:"count"`
}

// ToKindsResponse wraps a kind list.
func ToKindsResponse(kinds []string) KindsResponse {
	if kinds == nil {
		kinds = []string{}
	}
	return KindsResponse{Kinds: kinds, Count: len(kinds)}
}

// RecordResponse carries one validated record.
type RecordResponse struct {
	Kind   string `json:"kind"`
	Record any    `json:"record"`
}

// BatchResponse reports per-item outcomes of a batch validation, in input
// order.
type BatchResponse struct {
	Kind    string        `json:"kind"`
	Results []BatchResult `json:"results"`
	Valid   int           `json:"valid"`
	Invalid int           `json:"invalid"`
}

// BatchResult is the outcome for the item at Index. Exactly one of Record
// and Errors is set.
type BatchResult struct {
	Index  int           `json:"index"`
	Valid  bool          `json:"valid"`
	Record any           `json:"record,omitempty"`
	Errors []ErrorDetail `json:"errors,omitempty"`
}

// ToBatchResponse converts batch items to an HTTP response DTO. It fails
// with the first item error that is not a validation failure, since such an
// error (cancellation, deadline) invalidates the batch as a whole.
func ToBatchResponse(kind string, items []ports.BatchItem) (BatchResponse, error) {
	resp := BatchResponse{
		Kind:    kind,
		Results: make([]BatchResult, len(items)),
	}

	for i, item := range items {
		res := BatchResult{Index: item.Index}
		if item.Err == nil {
			res.Valid = true
			res.Record = item.Record
			resp.Valid++
			resp.Results[i] = res
			continue
		}

		var verr *domain.ValidationError
		if !errors.As(item.Err, &verr) {
			return BatchResponse{}, item.Err
		}
		res.Errors = ViolationDetails(verr.Violations)
		resp.Invalid++
		resp.Results[i] = res
	}

	return resp, nil
}

// ClubResponse carries a generated and validated club.
type ClubResponse struct {
	Club *club.Club `json:"club"`
}
