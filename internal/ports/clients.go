package ports

import (
	"context"

	"github.com/jsamuelsen11/club-records/internal/domain/record"
)

// ClubSource produces a candidate club as an unvalidated raw mapping.
// Implemented by the chat-completions ACL adapter.
type ClubSource interface {
	// FetchClub asks the source for a club shaped by spec. The result has
	// not been validated; callers pass it to club.Parse.
	// Returns domain.ErrUnavailable when the source cannot be reached.
	FetchClub(ctx context.Context, spec GenerationSpec) (record.Raw, error)
}
