package repository

import (
	"context"

	"chainsync/internal/domain/entity"
)

// StopListRepository defines the persistence operations for the external
// contact stop list.
type StopListRepository interface {
	// UpsertBatch replaces the stored entry of each phone with the incoming
	// one (last-call date and do-not-call flag both come from the feed).
	UpsertBatch(ctx context.Context, entries []entity.StopListEntry) error
}
