package impl

import (
	"context"
	"log/slog"

	"chainsync/internal/domain/repository"
	"chainsync/internal/domain/service"
	"chainsync/internal/errors"
	"chainsync/internal/usecase"
)

type catalogService struct {
	catalog     service.UnitCatalog
	unitRepo    repository.UnitRepository
	logger      *slog.Logger
	countryCode string
}

// NewCatalogService creates the unit-catalog refresh service.
func NewCatalogService(
	catalog service.UnitCatalog,
	unitRepo repository.UnitRepository,
	logger *slog.Logger,
	countryCode string,
) usecase.CatalogUsecase {
	return &catalogService{
		catalog:     catalog,
		unitRepo:    unitRepo,
		logger:      logger,
		countryCode: countryCode,
	}
}

// RefreshUnits pulls the public catalog and applies it to the unit table.
// Catalog data only ever touches catalog-owned fields; credentials, the
// activation flag and the watermark are operator-owned and left alone.
func (s *catalogService) RefreshUnits(ctx context.Context) (int, error) {
	units, err := s.catalog.FetchUnits(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "fetch public unit catalog")
	}
	if len(units) == 0 {
		return 0, nil
	}

	if err := s.unitRepo.UpsertCatalog(ctx, s.countryCode, units); err != nil {
		return 0, errors.Wrap(err, "upsert unit catalog")
	}

	s.logger.Info("unit catalog refreshed",
		slog.String("country", s.countryCode),
		slog.Int("units", len(units)),
	)

	return len(units), nil
}
