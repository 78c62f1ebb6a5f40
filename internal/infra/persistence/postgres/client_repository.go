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

// clientRepository implements the domain.ClientRepository interface using GORM.
type clientRepository struct {
	db *gorm.DB
}

// NewClientRepository is the constructor for clientRepository.
func NewClientRepository(db *gorm.DB) repository.ClientRepository {
	return &clientRepository{db: db}
}

// UpsertBatch merges aggregated client rows. On phone conflict the counters
// are added to the stored values; the unit association and last-order fields
// switch to the incoming row only when its last order is strictly newer. The
// first-order fields stay as first written.
func (repo *clientRepository) UpsertBatch(ctx context.Context, unitID uuid.UUID, rows []entity.ClientRow) error {
	if len(rows) == 0 {
		return nil
	}
	rows = coalesceByPhone(rows)

	clientMs := make([]*model.ClientModel, 0, len(rows))
	for _, row := range rows {
		clientMs = append(clientMs, &model.ClientModel{
			Phone:             row.Phone,
			UnitID:            unitID,
			FirstOrderAt:      row.FirstOrderAt,
			FirstOrderCity:    row.FirstOrderCity,
			FirstOrderChannel: int(row.FirstOrderChannel),
			LastOrderAt:       row.LastOrderAt,
			LastOrderCity:     row.LastOrderCity,
			OrderCount:        row.OrderCount,
			OrderSum:          row.OrderSum,
		})
	}

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "phone"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"unit_id":         gorm.Expr("CASE WHEN excluded.last_order_at > clients.last_order_at THEN excluded.unit_id ELSE clients.unit_id END"),
				"last_order_at":   gorm.Expr("CASE WHEN excluded.last_order_at > clients.last_order_at THEN excluded.last_order_at ELSE clients.last_order_at END"),
				"last_order_city": gorm.Expr("CASE WHEN excluded.last_order_at > clients.last_order_at THEN excluded.last_order_city ELSE clients.last_order_city END"),
				"order_count":     gorm.Expr("clients.order_count + excluded.order_count"),
				"order_sum":       gorm.Expr("clients.order_sum + excluded.order_sum"),
				"updated_at":      gorm.Expr("NOW()"),
			}),
		}).
		Create(&clientMs).Error
	if err != nil {
		return errors.Wrap(err, "failed to upsert client batch")
	}

	return nil
}

// coalesceByPhone collapses rows sharing a phone into one row per phone. The
// aggregator groups by the full first-order key, so a phone whose first-order
// fields differ between portal rows arrives here more than once — and a
// single multi-row ON CONFLICT DO UPDATE must not touch the same target row
// twice (PostgreSQL rejects that with SQLSTATE 21000). Counters are summed,
// the last-order fields follow the newest last order, the first-order fields
// the earliest first order.
func coalesceByPhone(rows []entity.ClientRow) []entity.ClientRow {
	index := make(map[string]int, len(rows))
	out := make([]entity.ClientRow, 0, len(rows))
	for _, row := range rows {
		i, ok := index[row.Phone]
		if !ok {
			index[row.Phone] = len(out)
			out = append(out, row)

			continue
		}

		merged := out[i]
		merged.OrderCount += row.OrderCount
		merged.OrderSum += row.OrderSum
		if row.LastOrderAt.After(merged.LastOrderAt) {
			merged.LastOrderAt = row.LastOrderAt
			merged.LastOrderCity = row.LastOrderCity
		}
		if row.FirstOrderAt.Before(merged.FirstOrderAt) {
			merged.FirstOrderAt = row.FirstOrderAt
			merged.FirstOrderCity = row.FirstOrderCity
			merged.FirstOrderChannel = row.FirstOrderChannel
		}
		out[i] = merged
	}

	return out
}

// FindByPhone retrieves a single client record.
func (repo *clientRepository) FindByPhone(ctx context.Context, phone string) (*entity.Client, error) {
	var clientM model.ClientModel
	err := repo.db.WithContext(ctx).
		Where("phone = ?", phone).
		First(&clientM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrClientNotFound
		}

		return nil, errors.Wrap(err, "failed to find client by phone")
	}

	return toClientDomain(&clientM), nil
}

// toClientDomain converts a GORM ClientModel to a domain Client entity.
func toClientDomain(data *model.ClientModel) *entity.Client {
	if data == nil {
		return nil
	}

	return &entity.Client{
		Phone:             data.Phone,
		UnitID:            data.UnitID,
		FirstOrderAt:      data.FirstOrderAt,
		FirstOrderCity:    data.FirstOrderCity,
		FirstOrderChannel: entity.OrderChannel(data.FirstOrderChannel),
		LastOrderAt:       data.LastOrderAt,
		LastOrderCity:     data.LastOrderCity,
		OrderCount:        data.OrderCount,
		OrderSum:          data.OrderSum,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}
