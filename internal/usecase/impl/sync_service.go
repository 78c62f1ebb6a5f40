package impl

import (
	"context"
	"log/slog"
	"time"

	"chainsync/internal/domain/entity"
	"chainsync/internal/domain/repository"
	"chainsync/internal/domain/service"
	"chainsync/internal/errors"
	"chainsync/internal/usecase"
)

// SyncOptions tunes the orchestrator. Zero values fall back to the portal's
// known limits.
type SyncOptions struct {
	MaxWindowDays int           // Longest window the portal serves, default 30.
	Attempts      int           // Attempt budget per (unit, window, kind), default 5.
	Backoff       time.Duration // Fixed sleep between attempts, default 2s.
	PhonePrefix   string        // National phone prefix rows must carry, default "+79".
	HistoryDays   int           // Cap on how far back a never-synced unit backfills, default 550.
}

func (o SyncOptions) withDefaults() SyncOptions {
	if o.MaxWindowDays < 1 {
		o.MaxWindowDays = DefaultMaxWindowDays
	}
	if o.Attempts < 1 {
		o.Attempts = DefaultAttempts
	}
	if o.Backoff <= 0 {
		o.Backoff = DefaultBackoff
	}
	if o.PhonePrefix == "" {
		o.PhonePrefix = "+79"
	}
	if o.HistoryDays < 1 {
		o.HistoryDays = 550
	}

	return o
}

type syncService struct {
	unitRepo  repository.UnitRepository
	txManager repository.TransactionManager
	gateway   service.PortalGateway
	logger    *slog.Logger
	opts      SyncOptions
	retry     retryPolicy
	now       func() time.Time
}

// NewSyncService creates the sync orchestrator.
func NewSyncService(
	unitRepo repository.UnitRepository,
	txManager repository.TransactionManager,
	gateway service.PortalGateway,
	logger *slog.Logger,
	opts SyncOptions,
) usecase.SyncUsecase {
	return newSyncService(unitRepo, txManager, gateway, logger, opts)
}

func newSyncService(
	unitRepo repository.UnitRepository,
	txManager repository.TransactionManager,
	gateway service.PortalGateway,
	logger *slog.Logger,
	opts SyncOptions,
) *syncService {
	opts = opts.withDefaults()

	return &syncService{
		unitRepo:  unitRepo,
		txManager: txManager,
		gateway:   gateway,
		logger:    logger,
		opts:      opts,
		retry:     newRetryPolicy(opts.Attempts, opts.Backoff),
		now:       time.Now,
	}
}

// SyncAll processes every unit needing sync sequentially. One unit's failure
// never stops the run.
func (s *syncService) SyncAll(ctx context.Context) ([]usecase.UnitSyncResult, error) {
	units, err := s.unitRepo.FindNeedingSync(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list units needing sync")
	}

	results := make([]usecase.UnitSyncResult, 0, len(units))
	for _, unit := range units {
		result := s.SyncUnit(ctx, unit)
		results = append(results, result)

		if result.Failed() {
			s.logger.Error("unit sync failed",
				slog.String("unit", unit.Name),
				slog.Int("externalID", unit.ExternalID),
				slog.Any("error", result.Err),
			)

			continue
		}
		s.logger.Info("unit synced",
			slog.String("unit", unit.Name),
			slog.Int("externalID", unit.ExternalID),
			slog.Int("windows", result.WindowCount),
			slog.Int("clientRows", result.ClientRows),
			slog.Int("orderRows", result.OrderRows),
		)
	}

	return results, nil
}

// SyncUnit drives one unit end to end: interval computation, window plan,
// retried fetch+normalize per window, aggregation and the transactional
// commit that also advances the watermark.
func (s *syncService) SyncUnit(ctx context.Context, unit *entity.Unit) usecase.UnitSyncResult {
	result := usecase.UnitSyncResult{Unit: unit, State: usecase.SyncStatePending}

	start, end, ok := s.syncInterval(unit)
	result.Start, result.End = start, end
	if !ok {
		// Nothing new to fetch; the watermark already covers yesterday.
		result.State = usecase.SyncStateDone

		return result
	}

	windows, err := PlanWindows(start, end, s.opts.MaxWindowDays)
	if err != nil {
		return s.fail(result, err)
	}
	result.WindowCount = len(windows)

	session := s.gateway.NewSession(unit)
	defer session.Close()

	result.State = usecase.SyncStateAuthenticating
	if err := session.EnsureAuthenticated(ctx); err != nil {
		return s.fail(result, err)
	}

	clientBatches := make([][]entity.ClientRow, 0, len(windows))
	orderBatches := make([][]entity.OrderRow, 0, len(windows))
	for _, window := range windows {
		result.State = usecase.SyncStateFetching

		var clients []entity.ClientRow
		err := s.retry.run(ctx, entity.ReportClientsStatistic, window, end, func() error {
			table, fetchErr := session.FetchReport(ctx, entity.ReportClientsStatistic, window)
			if fetchErr != nil {
				return fetchErr
			}
			result.State = usecase.SyncStateNormalizing
			rows, normErr := normalizeClients(table, unit, window, s.opts.PhonePrefix)
			if normErr != nil {
				return normErr
			}
			clients = rows

			return nil
		})
		if err != nil {
			return s.fail(result, err)
		}

		result.State = usecase.SyncStateFetching

		var orders []entity.OrderRow
		err = s.retry.run(ctx, entity.ReportOrders, window, end, func() error {
			table, fetchErr := session.FetchReport(ctx, entity.ReportOrders, window)
			if fetchErr != nil {
				return fetchErr
			}
			result.State = usecase.SyncStateNormalizing
			rows, normErr := normalizeOrders(table, unit, window, s.opts.PhonePrefix)
			if normErr != nil {
				return normErr
			}
			orders = rows

			return nil
		})
		if err != nil {
			return s.fail(result, err)
		}

		clientBatches = append(clientBatches, clients)
		orderBatches = append(orderBatches, orders)
	}

	result.State = usecase.SyncStateAggregating
	canonicalClients := aggregateClients(clientBatches)
	canonicalOrders := concatOrders(orderBatches)
	result.ClientRows = len(canonicalClients)

	result.State = usecase.SyncStateCommitting
	err = s.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		if len(canonicalClients) > 0 {
			if err := repos.NewClientRepository().UpsertBatch(ctx, unit.ID, canonicalClients); err != nil {
				return errors.Wrap(err, "upsert client batch")
			}
		}
		if len(canonicalOrders) > 0 {
			inserted, err := repos.NewOrderRepository().InsertBatch(ctx, unit.ID, canonicalOrders)
			if err != nil {
				return errors.Wrap(err, "insert order batch")
			}
			result.OrderRows = inserted
		}

		return repos.NewUnitRepository().AdvanceWatermark(ctx, unit.ID, end)
	})
	if err != nil {
		return s.fail(result, err)
	}

	result.State = usecase.SyncStateDone

	return result
}

// syncInterval computes the unit's [start, end] in calendar days: from the
// day after the watermark (or the first-active date, capped by the history
// limit, when never synced) to yesterday in the unit's local time. ok is
// false when the unit is already caught up.
func (s *syncService) syncInterval(unit *entity.Unit) (start, end time.Time, ok bool) {
	localNow := s.now().In(unit.Location())
	end = time.Date(localNow.Year(), localNow.Month(), localNow.Day(), 0, 0, 0, 0, time.UTC).Add(-day)

	if unit.SyncedThrough != nil {
		start = truncateDay(*unit.SyncedThrough).Add(day)
	} else {
		start = truncateDay(unit.FirstActiveDate)
		if earliest := end.Add(-time.Duration(s.opts.HistoryDays-1) * day); start.Before(earliest) {
			start = earliest
		}
	}

	if start.After(end) {
		return start, end, false
	}

	return start, end, true
}

func (s *syncService) fail(result usecase.UnitSyncResult, err error) usecase.UnitSyncResult {
	result.State = usecase.SyncStateFailed
	result.Err = err

	return result
}
