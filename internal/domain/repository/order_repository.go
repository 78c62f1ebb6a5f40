package repository

import (
	"context"

	"chainsync/internal/domain/entity"

	"github.com/google/uuid"
)

// OrderRepository defines the persistence operations for the append-only
// order log.
type OrderRepository interface {
	// InsertBatch inserts normalized order rows for the unit. Rows whose
	// (unit, date, number) key already exists are silently discarded, making
	// re-fetches of overlapping window edges safe. Returns the number of rows
	// actually inserted.
	InsertBatch(ctx context.Context, unitID uuid.UUID, rows []entity.OrderRow) (int, error)

	// CountByUnit returns the number of stored orders for a unit.
	CountByUnit(ctx context.Context, unitID uuid.UUID) (int64, error)
}
