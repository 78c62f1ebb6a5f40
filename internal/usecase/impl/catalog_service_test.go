package impl

import (
	"context"
	"testing"

	"chainsync/internal/domain/entity"
	mockRepo "chainsync/internal/mocks/repository"
	mockSvc "chainsync/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogService_RefreshUnits(t *testing.T) {
	ctx := context.Background()
	catalog := mockSvc.NewMockUnitCatalog(t)
	unitRepo := mockRepo.NewMockUnitRepository(t)

	units := []entity.CatalogUnit{
		{ExternalID: 243, CatalogUUID: "000d3a24", Name: "Москва-1", TZShift: 3},
		{ExternalID: 318, CatalogUUID: "000d3a91", Name: "Новосибирск-1", TZShift: 7},
	}
	catalog.EXPECT().FetchUnits(ctx).Return(units, nil)
	unitRepo.EXPECT().UpsertCatalog(ctx, "ru", units).Return(nil)

	s := NewCatalogService(catalog, unitRepo, newDiscardLogger(), "ru")

	count, err := s.RefreshUnits(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestCatalogService_EmptyCatalogSkipsUpsert(t *testing.T) {
	ctx := context.Background()
	catalog := mockSvc.NewMockUnitCatalog(t)
	unitRepo := mockRepo.NewMockUnitRepository(t)

	catalog.EXPECT().FetchUnits(ctx).Return(nil, nil)

	s := NewCatalogService(catalog, unitRepo, newDiscardLogger(), "ru")

	count, err := s.RefreshUnits(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestCatalogService_FetchFailure(t *testing.T) {
	ctx := context.Background()
	catalog := mockSvc.NewMockUnitCatalog(t)
	unitRepo := mockRepo.NewMockUnitRepository(t)

	catalog.EXPECT().FetchUnits(ctx).Return(nil, assert.AnError)

	s := NewCatalogService(catalog, unitRepo, newDiscardLogger(), "ru")

	_, err := s.RefreshUnits(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}
