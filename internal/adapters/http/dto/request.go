package dto

import (
	"fmt"

	"github.com/jsamuelsen11/club-records/internal/domain"
	"github.com/jsamuelsen11/club-records/internal/domain/record"
	"github.com/jsamuelsen11/club-records/internal/ports"
)

// BatchRequest is the JSON body of a batch validation call.
type BatchRequest struct {
	Items []record.Raw `json:"items"`
}

// Validate checks that the items list is present. An empty list is allowed.
// Returns a *domain.ValidationError if any checks fail.
func (r *BatchRequest) Validate() error {
	if r.Items == nil {
		return &domain.ValidationError{Violations: []domain.Violation{{
			Kind:    domain.KindField,
			Path:    "items",
			Rule:    "required",
			Message: domain.MsgRequired,
		}}}
	}
	for i, item := range r.Items {
		if item == nil {
			return domain.NewFieldError(fmt.Sprintf("items[%d]", i), "must be a JSON object")
		}
	}
	return nil
}

// GenerateClubRequest is the JSON body of a club generation call. Omitted
// counts fall back to the configured defaults.
type GenerateClubRequest struct {
	Companies *int `json:"companies,omitempty"`
	Members   *int `json:"members,omitempty"`
	Events    *int `json:"events,omitempty"`
}

// Validate rejects negative counts. Upper bounds are enforced by the
// generation service. Returns a *domain.ValidationError if any checks fail.
func (r *GenerateClubRequest) Validate() error {
	var vs []domain.Violation
	for _, c := range []struct {
		name string
		n    *int
	}{{"companies", r.Companies}, {"members", r.Members}, {"events", r.Events}} {
		if c.n != nil && *c.n < 0 {
			vs = append(vs, domain.Violation{
				Kind:    domain.KindField,
				Path:    c.name,
				Rule:    "gte",
				Message: "must be greater than or equal to 0",
				Value:   *c.n,
			})
		}
	}
	if len(vs) > 0 {
		return &domain.ValidationError{Violations: vs}
	}
	return nil
}

// ToSpec converts the request to a ports.GenerationSpec. Omitted counts
// become zero so the service applies its defaults.
func (r *GenerateClubRequest) ToSpec() ports.GenerationSpec {
	deref := func(p *int) int {
		if p == nil {
			return 0
		}
		return *p
	}
	return ports.GenerationSpec{
		Companies: deref(r.Companies),
		Members:   deref(r.Members),
		Events:    deref(r.Events),
	}
}
