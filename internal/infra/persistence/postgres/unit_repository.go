package postgres

import (
	"context"
	"time"

	"chainsync/internal/domain/entity"
	"chainsync/internal/domain/repository"
	"chainsync/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// unitRepository implements the domain.UnitRepository interface using GORM.
type unitRepository struct {
	db *gorm.DB
}

// NewUnitRepository is the constructor for unitRepository.
func NewUnitRepository(db *gorm.DB) repository.UnitRepository {
	return &unitRepository{db: db}
}

// FindNeedingSync returns active, credentialed units whose watermark may be
// behind their local yesterday. The filter overselects on purpose (a unit in
// a zone ahead of UTC can still be caught up); the orchestrator makes the
// final per-unit decision against the unit's own timezone.
func (repo *unitRepository) FindNeedingSync(ctx context.Context) ([]*entity.Unit, error) {
	var unitMs []*model.UnitModel
	err := repo.db.WithContext(ctx).
		Where("is_active AND login <> ''").
		Where("synced_through IS NULL OR synced_through < CURRENT_DATE").
		Order("external_id").
		Find(&unitMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list units needing sync")
	}

	units := make([]*entity.Unit, 0, len(unitMs))
	for _, unitM := range unitMs {
		units = append(units, toUnitDomain(unitM))
	}

	return units, nil
}

// FindByExternalID retrieves a unit by its portal identifier.
func (repo *unitRepository) FindByExternalID(ctx context.Context, countryCode string, externalID int) (*entity.Unit, error) {
	var unitM model.UnitModel
	err := repo.db.WithContext(ctx).
		Where("country_code = ? AND external_id = ?", countryCode, externalID).
		First(&unitM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUnitNotFound
		}

		return nil, errors.Wrap(err, "failed to find unit by external id")
	}

	return toUnitDomain(&unitM), nil
}

// UpsertCatalog refreshes the catalog-owned fields of each unit. Unknown
// units are inserted inactive with no credentials; operators activate them
// and fill the login pair by hand.
func (repo *unitRepository) UpsertCatalog(ctx context.Context, countryCode string, units []entity.CatalogUnit) error {
	if len(units) == 0 {
		return nil
	}

	unitMs := make([]*model.UnitModel, 0, len(units))
	for _, unit := range units {
		unitMs = append(unitMs, &model.UnitModel{
			CountryCode: countryCode,
			ExternalID:  unit.ExternalID,
			CatalogUUID: unit.CatalogUUID,
			Name:        unit.Name,
			TZShift:     unit.TZShift,
		})
	}

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "country_code"}, {Name: "external_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"catalog_uuid", "name", "tz_shift", "updated_at"}),
		}).
		Create(&unitMs).Error
	if err != nil {
		return errors.Wrap(err, "failed to upsert unit catalog")
	}

	return nil
}

// AdvanceWatermark moves the unit's last-synced marker forward.
func (repo *unitRepository) AdvanceWatermark(ctx context.Context, unitID uuid.UUID, through time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UnitModel{}).
		Where("id = ?", unitID).
		Update("synced_through", through)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to advance sync watermark")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUnitNotFound
	}

	return nil
}

// toUnitDomain converts a GORM UnitModel to a domain Unit entity.
func toUnitDomain(data *model.UnitModel) *entity.Unit {
	if data == nil {
		return nil
	}

	return &entity.Unit{
		ID:              data.ID,
		CountryCode:     data.CountryCode,
		ExternalID:      data.ExternalID,
		CatalogUUID:     data.CatalogUUID,
		Name:            data.Name,
		TZShift:         data.TZShift,
		Login:           data.Login,
		Password:        data.Password,
		IsActive:        data.IsActive,
		FirstActiveDate: data.FirstActiveDate,
		SyncedThrough:   data.SyncedThrough,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}
