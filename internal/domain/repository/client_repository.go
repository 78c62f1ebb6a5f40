package repository

import (
	"context"
	"errors"

	"chainsync/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrClientNotFound is a domain-specific error returned when a client is not found.
var ErrClientNotFound = errors.New("client not found")

// ClientRepository defines the persistence operations for cumulative client
// records.
type ClientRepository interface {
	// UpsertBatch merges an aggregated batch of client rows into the store.
	// On phone conflict the counters are added to the stored values, and the
	// unit association and last-order fields are replaced only when the
	// incoming last-order timestamp is strictly newer. The merge itself is
	// intentionally additive, not idempotent: replay protection is the
	// orchestrator's watermark, not this method.
	UpsertBatch(ctx context.Context, unitID uuid.UUID, rows []entity.ClientRow) error

	// FindByPhone retrieves a single client record.
	FindByPhone(ctx context.Context, phone string) (*entity.Client, error)
}
