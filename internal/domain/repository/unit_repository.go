// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"
	"time"

	"chainsync/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUnitNotFound is a domain-specific error returned when a unit is not found.
var ErrUnitNotFound = errors.New("unit not found")

// UnitRepository defines the standard operations for unit persistence.
type UnitRepository interface {
	// FindNeedingSync returns the active units whose watermark is behind the
	// current local day, ordered by external id.
	FindNeedingSync(ctx context.Context) ([]*entity.Unit, error)

	// FindByExternalID retrieves a unit by its portal identifier.
	FindByExternalID(ctx context.Context, countryCode string, externalID int) (*entity.Unit, error)

	// UpsertCatalog refreshes catalog-owned fields (uuid, name, tz shift) for
	// the given country, inserting unknown units as inactive.
	UpsertCatalog(ctx context.Context, countryCode string, units []entity.CatalogUnit) error

	// AdvanceWatermark moves the unit's last-synced marker forward. Callers
	// must run this inside the same transaction as the data merge it reflects.
	AdvanceWatermark(ctx context.Context, unitID uuid.UUID, through time.Time) error
}
