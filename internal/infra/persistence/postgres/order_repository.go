package postgres

import (
	"context"

	"chainsync/internal/domain/entity"
	"chainsync/internal/domain/repository"
	"chainsync/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// orderRepository implements the domain.OrderRepository interface using GORM.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

// InsertBatch appends normalized order rows, silently discarding rows whose
// (unit, date, number) key already exists. Returns the number actually
// inserted.
func (repo *orderRepository) InsertBatch(ctx context.Context, unitID uuid.UUID, rows []entity.OrderRow) (int, error) {
	if len(rows) == 0 {
		return 0, nil
	}

	orderMs := make([]*model.OrderModel, 0, len(rows))
	for _, row := range rows {
		orderMs = append(orderMs, &model.OrderModel{
			UnitID:     unitID,
			HeadUnit:   row.HeadUnit,
			Department: row.Department,
			Date:       row.Date,
			Number:     row.Number,
			Type:       int(row.Type),
			Status:     int(row.Status),
			Phone:      row.Phone,
			Amount:     row.Amount,
		})
	}

	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "unit_id"}, {Name: "date"}, {Name: "number"}},
			DoNothing: true,
		}).
		Create(&orderMs)
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to insert order batch")
	}

	return int(result.RowsAffected), nil
}

// CountByUnit returns the number of stored orders for a unit.
func (repo *orderRepository) CountByUnit(ctx context.Context, unitID uuid.UUID) (int64, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("unit_id = ?", unitID).
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to count orders by unit")
	}

	return count, nil
}
