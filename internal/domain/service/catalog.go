package service

import (
	"context"

	"chainsync/internal/domain/entity"
)

// UnitCatalog exposes the chain's public unit directory. Entries are already
// filtered to approved, currently open units.
type UnitCatalog interface {
	// FetchUnits returns the catalog for the configured country.
	FetchUnits(ctx context.Context) ([]entity.CatalogUnit, error)
}
