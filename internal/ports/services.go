package ports

import (
	"context"

	"github.com/jsamuelsen11/club-records/internal/domain/club"
	"github.com/jsamuelsen11/club-records/internal/domain/record"
)

// RecordService validates raw payloads against the record catalog.
// Implemented by the application layer; called by inbound adapters.
type RecordService interface {
	// Kinds returns the catalog's record kind names in sorted order.
	Kinds() []string

	// Validate constructs a record of the named kind from raw.
	// Returns domain.ErrNotFound for an unknown kind and a
	// *domain.ValidationError listing every violation otherwise.
	Validate(ctx context.Context, kind string, raw record.Raw) (any, error)

	// ValidateBatch validates each item independently. Results are returned
	// in input order. Returns a hard error only for request-level failures
	// (unknown kind, oversized batch); per-item failures live in BatchItem.Err.
	ValidateBatch(ctx context.Context, kind string, items []record.Raw) ([]BatchItem, error)
}

// BatchItem is the outcome of validating one element of a batch.
type BatchItem struct {
	Index  int
	Record any
	Err    error
}

// ClubService generates clubs from an external source and validates them.
type ClubService interface {
	// Generate fetches a candidate club and validates it as a whole.
	// A club that fails validation is returned as *domain.ValidationError.
	Generate(ctx context.Context, spec GenerationSpec) (*club.Club, error)
}

// GenerationSpec sets how many of each entity a generated club should hold.
// Zero fields fall back to the configured defaults.
type GenerationSpec struct {
	Companies int
	Members   int
	Events    int
}
