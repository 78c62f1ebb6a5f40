//go:build integration

package postgres

import (
	"context"
	"fmt"
	"os/exec"
	"testing"
	"time"

	"chainsync/internal/domain/entity"
	"chainsync/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// skipIfNoDocker skips the test when the Docker daemon is unreachable so the
// suite stays runnable on machines without container support.
func skipIfNoDocker(t *testing.T) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := exec.CommandContext(ctx, "docker", "info").Run(); err != nil {
		t.Skip("Skipping test: Docker not available")
	}
}

// startPostgres launches a disposable PostgreSQL container and returns a gorm
// handle with the sync schema migrated.
func startPostgres(t *testing.T) *gorm.DB {
	t.Helper()
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:16-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "chainsync",
				"POSTGRES_PASSWORD": "chainsync",
				"POSTGRES_DB":       "chainsync",
			},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("Warning: failed to terminate container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	dsn := fmt.Sprintf("host=%s port=%s user=chainsync password=chainsync dbname=chainsync sslmode=disable",
		host, port.Port())
	db, err := gorm.Open(pgdriver.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	// The deployed schema provides uuid_generate_v7 through an extension; the
	// bare container gets a stand-in so the column defaults migrate.
	require.NoError(t, db.Exec(
		`CREATE OR REPLACE FUNCTION uuid_generate_v7() RETURNS uuid AS 'SELECT gen_random_uuid()' LANGUAGE sql`,
	).Error)
	require.NoError(t, db.AutoMigrate(&model.ClientModel{}, &model.OrderModel{}))

	return db
}

func integrationClientRow(phone string, lastAt time.Time, count int, sum float64) entity.ClientRow {
	return entity.ClientRow{
		Phone:             phone,
		FirstOrderAt:      time.Date(2024, 1, 3, 12, 0, 0, 0, time.UTC),
		FirstOrderCity:    "Москва",
		FirstOrderChannel: entity.ChannelDelivery,
		LastOrderAt:       lastAt,
		LastOrderCity:     "Москва",
		OrderCount:        count,
		OrderSum:          sum,
	}
}

func TestClientRepositoryIntegration(t *testing.T) {
	skipIfNoDocker(t)

	db := startPostgres(t)
	repo := NewClientRepository(db)
	ctx := context.Background()
	unitID := uuid.New()
	lastAt := time.Date(2024, 1, 25, 18, 0, 0, 0, time.UTC)

	t.Run("double apply adds counters", func(t *testing.T) {
		// The upsert is deliberately not idempotent: re-applying a window
		// doubles the counters. Not fetching the same window twice is the
		// watermark's job.
		batch := []entity.ClientRow{integrationClientRow("+79260000001", lastAt, 3, 300)}
		require.NoError(t, repo.UpsertBatch(ctx, unitID, batch))
		require.NoError(t, repo.UpsertBatch(ctx, unitID, batch))

		stored, err := repo.FindByPhone(ctx, "+79260000001")
		require.NoError(t, err)
		assert.Equal(t, 6, stored.OrderCount)
		assert.InDelta(t, 600.0, stored.OrderSum, 0.001)
		assert.True(t, stored.LastOrderAt.Equal(lastAt))
	})

	t.Run("stale last order keeps stored fields", func(t *testing.T) {
		require.NoError(t, repo.UpsertBatch(ctx, unitID,
			[]entity.ClientRow{integrationClientRow("+79260000002", lastAt, 2, 200)}))

		stale := integrationClientRow("+79260000002", lastAt.Add(-10*24*time.Hour), 1, 100)
		stale.LastOrderCity = "Химки"
		require.NoError(t, repo.UpsertBatch(ctx, uuid.New(), []entity.ClientRow{stale}))

		stored, err := repo.FindByPhone(ctx, "+79260000002")
		require.NoError(t, err)
		assert.Equal(t, 3, stored.OrderCount, "counters add even when the row is stale")
		assert.True(t, stored.LastOrderAt.Equal(lastAt))
		assert.Equal(t, "Москва", stored.LastOrderCity)
		assert.Equal(t, unitID, stored.UnitID, "unit association follows the newest order")
	})

	t.Run("newer last order replaces fields and unit", func(t *testing.T) {
		require.NoError(t, repo.UpsertBatch(ctx, unitID,
			[]entity.ClientRow{integrationClientRow("+79260000003", lastAt, 2, 200)}))

		otherUnit := uuid.New()
		newer := integrationClientRow("+79260000003", lastAt.Add(5*24*time.Hour), 1, 100)
		newer.LastOrderCity = "Химки"
		require.NoError(t, repo.UpsertBatch(ctx, otherUnit, []entity.ClientRow{newer}))

		stored, err := repo.FindByPhone(ctx, "+79260000003")
		require.NoError(t, err)
		assert.Equal(t, 3, stored.OrderCount)
		assert.True(t, stored.LastOrderAt.Equal(newer.LastOrderAt))
		assert.Equal(t, "Химки", stored.LastOrderCity)
		assert.Equal(t, otherUnit, stored.UnitID)
	})

	t.Run("duplicate phone in one batch", func(t *testing.T) {
		// Two aggregation groups for one phone must not abort the statement
		// (ON CONFLICT DO UPDATE cannot touch a row twice).
		first := integrationClientRow("+79260000004", lastAt, 3, 2100)
		second := integrationClientRow("+79260000004", lastAt.Add(16*24*time.Hour), 2, 1500)
		second.FirstOrderAt = second.FirstOrderAt.Add(24 * time.Hour)
		require.NoError(t, repo.UpsertBatch(ctx, unitID, []entity.ClientRow{first, second}))

		stored, err := repo.FindByPhone(ctx, "+79260000004")
		require.NoError(t, err)
		assert.Equal(t, 5, stored.OrderCount)
		assert.InDelta(t, 3600.0, stored.OrderSum, 0.001)
		assert.True(t, stored.LastOrderAt.Equal(second.LastOrderAt))
	})
}

func TestOrderRepositoryIntegration(t *testing.T) {
	skipIfNoDocker(t)

	db := startPostgres(t)
	repo := NewOrderRepository(db)
	ctx := context.Background()
	unitID := uuid.New()

	row := entity.OrderRow{
		HeadUnit:   "Москва-1",
		Department: "Москва-1 Тверская",
		Date:       time.Date(2024, 1, 25, 15, 0, 0, 0, time.UTC),
		Number:     "101",
		Type:       entity.ChannelDelivery,
		Status:     entity.StatusCompleted,
		Phone:      "+79261234567",
		Amount:     700,
	}

	inserted, err := repo.InsertBatch(ctx, unitID, []entity.OrderRow{row})
	require.NoError(t, err)
	assert.Equal(t, 1, inserted)

	// Re-inserting the same (unit, date, number) key leaves exactly one row.
	inserted, err = repo.InsertBatch(ctx, unitID, []entity.OrderRow{row})
	require.NoError(t, err)
	assert.Zero(t, inserted)

	count, err := repo.CountByUnit(ctx, unitID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	// The same order number under another unit is a distinct key.
	otherUnit := uuid.New()
	inserted, err = repo.InsertBatch(ctx, otherUnit, []entity.OrderRow{row})
	require.NoError(t, err)
	assert.Equal(t, 1, inserted)
}
