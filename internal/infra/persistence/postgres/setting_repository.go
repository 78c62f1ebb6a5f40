package postgres

import (
	"context"

	"chainsync/internal/domain/repository"
	"chainsync/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// settingRepository implements the domain.SettingRepository interface using GORM.
type settingRepository struct {
	db *gorm.DB
}

// NewSettingRepository is the constructor for settingRepository.
func NewSettingRepository(db *gorm.DB) repository.SettingRepository {
	return &settingRepository{db: db}
}

// Get returns the value stored under key.
func (repo *settingRepository) Get(ctx context.Context, key string) (string, error) {
	var settingM model.SettingModel
	err := repo.db.WithContext(ctx).
		Where("key = ?", key).
		First(&settingM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", repository.ErrSettingNotFound
		}

		return "", errors.Wrap(err, "failed to read setting")
	}

	return settingM.Value, nil
}

// Set stores value under key, overwriting any previous value.
func (repo *settingRepository) Set(ctx context.Context, key, value string) error {
	settingM := &model.SettingModel{Key: key, Value: value}

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(settingM).Error
	if err != nil {
		return errors.Wrap(err, "failed to write setting")
	}

	return nil
}
