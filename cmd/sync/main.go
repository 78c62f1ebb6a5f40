// Command sync runs one full synchronization pass: the public-catalog
// refresh, the per-unit report sync and the stop-list ingest, with operator
// alerting for whatever failed.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"chainsync/config"
	"chainsync/internal/domain/repository"
	"chainsync/internal/domain/service"
	logs "chainsync/internal/infra/log"
	"chainsync/internal/infra/notification"
	"chainsync/internal/infra/openapi"
	"chainsync/internal/infra/persistence/postgres"
	"chainsync/internal/infra/portal"
	"chainsync/internal/infra/storage"
	"chainsync/internal/usecase"
	"chainsync/internal/usecase/impl"
	"chainsync/internal/util"

	"go.uber.org/fx"
)

type runParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Config   *config.Config
	Logger   *slog.Logger
	Catalog  usecase.CatalogUsecase
	Sync     usecase.SyncUsecase
	StopList usecase.StopListUsecase `optional:"true"`
	Notifier service.Notifier        `optional:"true"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		fx.Invoke(
			runSync,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUnitRepository,
			postgres.NewClientRepository,
			postgres.NewOrderRepository,
			postgres.NewStopListRepository,
			postgres.NewSettingRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newPortalGateway,
			newUnitCatalog,
			newFeedStorage,
			newNotifier,
		),
	)
}

func newPortalGateway(cfg *config.Config, logger *slog.Logger) service.PortalGateway {
	return portal.NewGateway(portal.Config{
		AuthBaseURL:   cfg.Portal.AuthBaseURL,
		OfficeBaseURL: cfg.Portal.OfficeBaseURL,
		CountryCode:   cfg.Portal.CountryCode,
		Timeout:       cfg.Portal.Timeout,
	}, logger)
}

func newUnitCatalog(cfg *config.Config) service.UnitCatalog {
	return openapi.NewCatalog(openapi.Config{
		UnitInfoURL: cfg.Catalog.UnitInfoURL,
		Timeout:     cfg.Catalog.Timeout,
	})
}

// newFeedStorage creates the cloud-disk client when the feed is configured.
func newFeedStorage(cfg *config.Config, logger *slog.Logger) service.FeedStorage {
	if cfg.Storage == nil {
		return nil // The stop-list feed is optional.
	}

	return storage.NewDiskStorage(storage.Config{
		BaseURL: cfg.Storage.BaseURL,
		Token:   cfg.Storage.Token,
		Timeout: cfg.Storage.Timeout,
	}, logger)
}

// newNotifier creates the Telegram notifier when alerting is configured.
func newNotifier(cfg *config.Config, logger *slog.Logger) service.Notifier {
	if cfg.Telegram == nil {
		return nil // Alerting is optional.
	}

	return notification.NewTelegramNotifier(notification.TelegramConfig{
		BotToken: cfg.Telegram.BotToken,
		ChatID:   cfg.Telegram.ChatID,
		Timeout:  cfg.Telegram.Timeout,
	}, logger)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			newSyncUsecase,
			newCatalogUsecase,
			newStopListUsecase,
		),
	)
}

type syncUsecaseParams struct {
	fx.In

	Config    *config.Config
	Logger    *slog.Logger
	UnitRepo  repository.UnitRepository
	TxManager repository.TransactionManager
	Gateway   service.PortalGateway
}

func newSyncUsecase(params syncUsecaseParams) usecase.SyncUsecase {
	return impl.NewSyncService(
		params.UnitRepo,
		params.TxManager,
		params.Gateway,
		params.Logger,
		impl.SyncOptions{
			MaxWindowDays: params.Config.Sync.MaxWindowDays,
			Attempts:      params.Config.Sync.Attempts,
			Backoff:       params.Config.Sync.Backoff,
			PhonePrefix:   params.Config.Sync.PhonePrefix,
			HistoryDays:   params.Config.Sync.HistoryDays,
		},
	)
}

func newCatalogUsecase(cfg *config.Config, catalog service.UnitCatalog, unitRepo repository.UnitRepository, logger *slog.Logger) usecase.CatalogUsecase {
	return impl.NewCatalogService(catalog, unitRepo, logger, cfg.Catalog.CountryCode)
}

func newStopListUsecase(
	cfg *config.Config,
	feed service.FeedStorage,
	settingRepo repository.SettingRepository,
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.StopListUsecase {
	if feed == nil || cfg.Storage == nil {
		return nil
	}

	return impl.NewStopListService(feed, settingRepo, txManager, logger, cfg.Storage.StopListPath)
}

func runSync(ctx context.Context, params runParams) {
	params.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				run(ctx, params)

				if err := params.Shutdown(); err != nil {
					params.Logger.Error("Failed to shutdown gracefully", slog.Any("error", err))
					os.Exit(1)
				}
			}()

			return nil
		},
	})
}

// run executes the full pass. Stage failures are reported and the remaining
// stages still run; a broken catalog refresh must not block the report sync.
func run(ctx context.Context, params runParams) {
	started := time.Now()

	if count, err := params.Catalog.RefreshUnits(ctx); err != nil {
		params.Logger.Error("catalog refresh failed", slog.Any("error", err))
		alert(ctx, params, fmt.Sprintf("Catalog refresh failed: %v", err))
	} else {
		params.Logger.Info("catalog refresh finished", slog.Int("units", count))
	}

	results, err := params.Sync.SyncAll(ctx)
	if err != nil {
		params.Logger.Error("report sync failed", slog.Any("error", err))
		alert(ctx, params, fmt.Sprintf("Report sync failed: %v", err))
	}
	for _, result := range results {
		if result.Failed() {
			alert(ctx, params, fmt.Sprintf("Sync of %s (%d) failed in state %s: %v",
				result.Unit.Name, result.Unit.ExternalID, result.State, result.Err))
		}
	}

	if params.StopList != nil {
		if _, err := params.StopList.IngestStopList(ctx); err != nil {
			params.Logger.Error("stop-list ingest failed", slog.Any("error", err))
			alert(ctx, params, fmt.Sprintf("Stop-list ingest failed: %v", err))
		}
	}

	params.Logger.Info("sync run finished",
		slog.Int("units", len(results)),
		slog.String("elapsed", util.FormatDuration(time.Since(started))),
	)
}

func alert(ctx context.Context, params runParams, message string) {
	if params.Notifier == nil {
		return
	}

	if err := params.Notifier.Notify(ctx, message); err != nil {
		params.Logger.Warn("alert delivery failed", slog.Any("error", err))
	}
}
