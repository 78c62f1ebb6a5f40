package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"chainsync/internal/domain/entity"
	syncerrors "chainsync/internal/domain/errors"
	"chainsync/internal/domain/repository"
	mockRepo "chainsync/internal/mocks/repository"
	mockSvc "chainsync/internal/mocks/service"
	"chainsync/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fixedNow pins the clock to noon UTC on 2024-02-16; for a UTC+3 unit the
// local yesterday is 2024-02-15.
var fixedNow = time.Date(2024, 2, 16, 12, 0, 0, 0, time.UTC)

func newTestSyncService(t *testing.T, gateway *mockSvc.MockPortalGateway, txManager *mockRepo.MockTransactionManager) (*syncService, *mockRepo.MockUnitRepository) {
	t.Helper()
	unitRepo := mockRepo.NewMockUnitRepository(t)

	s := newSyncService(unitRepo, txManager, gateway, newDiscardLogger(), SyncOptions{
		Backoff: time.Millisecond,
	})
	s.now = func() time.Time { return fixedNow }

	return s, unitRepo
}

func backfillUnit() *entity.Unit {
	return &entity.Unit{
		ID:              uuid.New(),
		CountryCode:     "ru",
		ExternalID:      243,
		Name:            "Москва-1",
		TZShift:         3,
		Login:           "moscow1",
		Password:        "secret",
		IsActive:        true,
		FirstActiveDate: date(2024, 1, 1),
	}
}

func TestSyncService_SyncUnit_CaughtUp(t *testing.T) {
	gateway := mockSvc.NewMockPortalGateway(t)
	txManager := mockRepo.NewMockTransactionManager(t)
	s, _ := newTestSyncService(t, gateway, txManager)

	unit := backfillUnit()
	watermark := date(2024, 2, 15)
	unit.SyncedThrough = &watermark

	result := s.SyncUnit(context.Background(), unit)

	assert.Equal(t, usecase.SyncStateDone, result.State)
	assert.False(t, result.Failed())
	assert.Zero(t, result.WindowCount)
	// No session was opened and no transaction ran: the mocks verify that
	// through their expectations on cleanup.
}

func TestSyncService_SyncUnit_TwoWindowBackfill(t *testing.T) {
	ctx := context.Background()
	gateway := mockSvc.NewMockPortalGateway(t)
	txManager := mockRepo.NewMockTransactionManager(t)
	s, _ := newTestSyncService(t, gateway, txManager)

	unit := backfillUnit()
	window1 := entity.SyncWindow{Start: date(2024, 1, 1), End: date(2024, 1, 30)}
	window2 := entity.SyncWindow{Start: date(2024, 1, 31), End: date(2024, 2, 15)}

	session := mockSvc.NewMockReportSession(t)
	gateway.EXPECT().NewSession(unit).Return(session)
	session.EXPECT().EnsureAuthenticated(ctx).Return(nil)
	session.EXPECT().Close().Return()

	// Client +79261234567 spans both windows; the counters are per window and
	// must be summed, the last-order fields must follow the newest window.
	session.EXPECT().FetchReport(ctx, entity.ReportClientsStatistic, window1).Return(clientsTable(
		[]string{"+79261234567", "03.01.2024 12:00:00", "Москва", "Доставка", "25.01.2024 18:00:00", "Москва", "3", "2100"},
	), nil)
	session.EXPECT().FetchReport(ctx, entity.ReportClientsStatistic, window2).Return(clientsTable(
		[]string{"+79261234567", "03.01.2024 12:00:00", "Москва", "Доставка", "10.02.2024 19:30:00", "Химки", "2", "1500"},
		[]string{"+79269999999", "05.02.2024 11:00:00", "Москва", "Самовывоз", "05.02.2024 11:00:00", "Москва", "1", "800"},
	), nil)
	session.EXPECT().FetchReport(ctx, entity.ReportOrders, window1).Return(ordersTable(
		[]string{"Москва-1", "Москва-1 Тверская", "25.01.2024 18:00", "101", "Доставка", "+79261234567", "700", "Доставка"},
	), nil)
	session.EXPECT().FetchReport(ctx, entity.ReportOrders, window2).Return(ordersTable(
		[]string{"Москва-1", "Москва-1 Тверская", "10.02.2024 19:30", "102", "Доставка", "+79261234567", "750", "Доставка"},
	), nil)

	clientRepo := mockRepo.NewMockClientRepository(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	txUnitRepo := mockRepo.NewMockUnitRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewClientRepository().Return(clientRepo)
	factory.EXPECT().NewOrderRepository().Return(orderRepo)
	factory.EXPECT().NewUnitRepository().Return(txUnitRepo)

	var committedClients []entity.ClientRow
	clientRepo.EXPECT().
		UpsertBatch(ctx, unit.ID, mock.Anything).
		Run(func(_ context.Context, _ uuid.UUID, rows []entity.ClientRow) {
			committedClients = rows
		}).
		Return(nil)

	var committedOrders []entity.OrderRow
	orderRepo.EXPECT().
		InsertBatch(ctx, unit.ID, mock.Anything).
		Run(func(_ context.Context, _ uuid.UUID, rows []entity.OrderRow) {
			committedOrders = rows
		}).
		Return(2, nil)

	txUnitRepo.EXPECT().AdvanceWatermark(ctx, unit.ID, window2.End).Return(nil)

	txManager.EXPECT().
		Execute(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	result := s.SyncUnit(ctx, unit)

	require.False(t, result.Failed(), "sync failed: %v", result.Err)
	assert.Equal(t, usecase.SyncStateDone, result.State)
	assert.Equal(t, 2, result.WindowCount)
	assert.Equal(t, window1.Start, result.Start)
	assert.Equal(t, window2.End, result.End)
	assert.Equal(t, 2, result.ClientRows)
	assert.Equal(t, 2, result.OrderRows)

	require.Len(t, committedClients, 2)
	var merged *entity.ClientRow
	for i := range committedClients {
		if committedClients[i].Phone == "+79261234567" {
			merged = &committedClients[i]
		}
	}
	require.NotNil(t, merged)
	assert.Equal(t, 5, merged.OrderCount)
	assert.InDelta(t, 3600.0, merged.OrderSum, 0.001)
	assert.Equal(t, "Химки", merged.LastOrderCity)

	require.Len(t, committedOrders, 2)
	assert.Equal(t, "101", committedOrders[0].Number, "orders commit in chronological order")
	assert.Equal(t, "102", committedOrders[1].Number)
}

func TestSyncService_SyncUnit_EmptyBackfillWindowAccepted(t *testing.T) {
	ctx := context.Background()
	gateway := mockSvc.NewMockPortalGateway(t)
	txManager := mockRepo.NewMockTransactionManager(t)
	s, _ := newTestSyncService(t, gateway, txManager)

	unit := backfillUnit()
	window1 := entity.SyncWindow{Start: date(2024, 1, 1), End: date(2024, 1, 30)}
	window2 := entity.SyncWindow{Start: date(2024, 1, 31), End: date(2024, 2, 15)}

	session := mockSvc.NewMockReportSession(t)
	gateway.EXPECT().NewSession(unit).Return(session)
	session.EXPECT().EnsureAuthenticated(ctx).Return(nil)
	session.EXPECT().Close().Return()

	// The unit opened mid-interval: the first window's exports are empty and
	// that is acceptable because the window predates the sync end.
	session.EXPECT().FetchReport(ctx, entity.ReportClientsStatistic, window1).Return(clientsTable(), nil)
	session.EXPECT().FetchReport(ctx, entity.ReportOrders, window1).Return(ordersTable(), nil)
	session.EXPECT().FetchReport(ctx, entity.ReportClientsStatistic, window2).Return(clientsTable(
		[]string{"+79261234567", "05.02.2024 11:00:00", "Москва", "Доставка", "05.02.2024 11:00:00", "Москва", "1", "800"},
	), nil)
	session.EXPECT().FetchReport(ctx, entity.ReportOrders, window2).Return(ordersTable(), nil)

	clientRepo := mockRepo.NewMockClientRepository(t)
	txUnitRepo := mockRepo.NewMockUnitRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewClientRepository().Return(clientRepo)
	factory.EXPECT().NewUnitRepository().Return(txUnitRepo)

	clientRepo.EXPECT().UpsertBatch(ctx, unit.ID, mock.Anything).Return(nil)
	txUnitRepo.EXPECT().AdvanceWatermark(ctx, unit.ID, window2.End).Return(nil)

	txManager.EXPECT().
		Execute(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	result := s.SyncUnit(ctx, unit)

	require.False(t, result.Failed(), "sync failed: %v", result.Err)
	assert.Equal(t, 1, result.ClientRows)
	assert.Zero(t, result.OrderRows, "no order batch means no insert")
}

func TestSyncService_SyncUnit_AuthFailure(t *testing.T) {
	ctx := context.Background()
	gateway := mockSvc.NewMockPortalGateway(t)
	txManager := mockRepo.NewMockTransactionManager(t)
	s, _ := newTestSyncService(t, gateway, txManager)

	unit := backfillUnit()

	session := mockSvc.NewMockReportSession(t)
	gateway.EXPECT().NewSession(unit).Return(session)
	session.EXPECT().EnsureAuthenticated(ctx).Return(syncerrors.NewAuthError(unit.Name))
	session.EXPECT().Close().Return()

	result := s.SyncUnit(ctx, unit)

	assert.True(t, result.Failed())
	assert.Equal(t, usecase.SyncStateFailed, result.State)

	var authErr *syncerrors.AuthError
	assert.ErrorAs(t, result.Err, &authErr)
}

func TestSyncService_SyncAll_OneUnitFailureDoesNotStopTheRun(t *testing.T) {
	ctx := context.Background()
	gateway := mockSvc.NewMockPortalGateway(t)
	txManager := mockRepo.NewMockTransactionManager(t)
	s, unitRepo := newTestSyncService(t, gateway, txManager)

	failing := backfillUnit()
	caughtUp := backfillUnit()
	caughtUp.ExternalID = 244
	watermark := date(2024, 2, 15)
	caughtUp.SyncedThrough = &watermark

	unitRepo.EXPECT().FindNeedingSync(ctx).Return([]*entity.Unit{failing, caughtUp}, nil)

	session := mockSvc.NewMockReportSession(t)
	gateway.EXPECT().NewSession(failing).Return(session)
	session.EXPECT().EnsureAuthenticated(ctx).Return(syncerrors.NewAuthError(failing.Name))
	session.EXPECT().Close().Return()

	results, err := s.SyncAll(ctx)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.True(t, results[0].Failed())
	assert.False(t, results[1].Failed())
}

func TestSyncService_SyncAll_ListFailure(t *testing.T) {
	ctx := context.Background()
	gateway := mockSvc.NewMockPortalGateway(t)
	txManager := mockRepo.NewMockTransactionManager(t)
	s, unitRepo := newTestSyncService(t, gateway, txManager)

	unitRepo.EXPECT().FindNeedingSync(ctx).Return(nil, assert.AnError)

	_, err := s.SyncAll(ctx)
	require.Error(t, err)
}
