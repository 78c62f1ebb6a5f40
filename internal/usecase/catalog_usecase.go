package usecase

import "context"

// CatalogUsecase keeps the local unit directory aligned with the chain's
// public catalog.
type CatalogUsecase interface {
	// RefreshUnits pulls the public catalog and upserts it into the unit
	// table. Returns the number of catalog entries applied.
	RefreshUnits(ctx context.Context) (int, error)
}
