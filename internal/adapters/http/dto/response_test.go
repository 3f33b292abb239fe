package dto_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/jsamuelsen11/club-records/internal/adapters/http/dto"
	"github.com/jsamuelsen11/club-records/internal/domain"
	"github.com/jsamuelsen11/club-records/internal/ports"
)

func TestToKindsResponse(t *testing.T) {
	t.Parallel()

	got := dto.ToKindsResponse([]string{"club", "company"})
	if got.Count != 2 {
		t.Errorf("Count = %d, want 2", got.Count)
	}

	empty := dto.ToKindsResponse(nil)
	data, err := json.Marshal(empty)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(data) != `{"kinds":[],"count":0}` {
		t.Errorf("JSON = %s, want an empty array", data)
	}
}

func TestToBatchResponse(t *testing.T) {
	t.Parallel()

	items := []ports.BatchItem{
		{Index: 0, Record: map[string]string{"name": "Ada"}},
		{Index: 1, Err: domain.NewFieldError("email", "must be a valid email address")},
		{Index: 2, Record: map[string]string{"name": "Grace"}},
	}

	got, err := dto.ToBatchResponse("person", items)
	if err != nil {
		t.Fatalf("ToBatchResponse() error = %v", err)
	}

	if got.Kind != "person" {
		t.Errorf("Kind = %q, want %q", got.Kind, "person")
	}
	if got.Valid != 2 || got.Invalid != 1 {
		t.Errorf("Valid/Invalid = %d/%d, want 2/1", got.Valid, got.Invalid)
	}
	if len(got.Results) != 3 {
		t.Fatalf("len(Results) = %d, want 3", len(got.Results))
	}

	bad := got.Results[1]
	if bad.Valid || bad.Record != nil {
		t.Errorf("Results[1] = %+v, want invalid without record", bad)
	}
	if len(bad.Errors) != 1 || bad.Errors[0].Location != "body.email" {
		t.Errorf("Results[1].Errors = %+v", bad.Errors)
	}
	if !got.Results[2].Valid || got.Results[2].Index != 2 {
		t.Errorf("Results[2] = %+v", got.Results[2])
	}
}

func TestToBatchResponse_AbortsOnNonValidationError(t *testing.T) {
	t.Parallel()

	items := []ports.BatchItem{
		{Index: 0, Record: "ok"},
		{Index: 1, Err: context.Canceled},
	}

	_, err := dto.ToBatchResponse("person", items)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("ToBatchResponse() error = %v, want context.Canceled", err)
	}
}
