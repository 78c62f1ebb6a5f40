package postgres

import (
	"context"

	"chainsync/internal/domain/entity"
	"chainsync/internal/domain/repository"
	"chainsync/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// stopListRepository implements the domain.StopListRepository interface using GORM.
type stopListRepository struct {
	db *gorm.DB
}

// NewStopListRepository is the constructor for stopListRepository.
func NewStopListRepository(db *gorm.DB) repository.StopListRepository {
	return &stopListRepository{db: db}
}

// UpsertBatch replaces the stored entry of each phone with the incoming one.
// The feed is authoritative for both the last-call date and the do-not-call
// flag.
func (repo *stopListRepository) UpsertBatch(ctx context.Context, entries []entity.StopListEntry) error {
	if len(entries) == 0 {
		return nil
	}

	entryMs := make([]*model.StopListModel, 0, len(entries))
	for _, entry := range entries {
		entryMs = append(entryMs, &model.StopListModel{
			Phone:        entry.Phone,
			LastCallDate: entry.LastCallDate,
			DoNotCall:    entry.DoNotCall,
		})
	}

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "phone"}},
			DoUpdates: clause.AssignmentColumns([]string{"last_call_date", "do_not_call", "updated_at"}),
		}).
		Create(&entryMs).Error
	if err != nil {
		return errors.Wrap(err, "failed to upsert stop-list batch")
	}

	return nil
}
