package impl

import (
	"context"
	"testing"
	"time"

	"chainsync/internal/domain/entity"
	syncerrors "chainsync/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testRetryPolicy returns a policy whose sleeps are counted instead of slept.
func testRetryPolicy(attempts int) (retryPolicy, *int) {
	sleeps := 0
	p := retryPolicy{
		attempts: attempts,
		backoff:  time.Second,
		sleep: func(context.Context, time.Duration) error {
			sleeps++

			return nil
		},
	}

	return p, &sleeps
}

func window(start, end time.Time) entity.SyncWindow {
	return entity.SyncWindow{Start: start, End: end}
}

func TestRetryPolicy_SucceedsFirstAttempt(t *testing.T) {
	p, sleeps := testRetryPolicy(5)
	w := window(date(2024, 1, 1), date(2024, 1, 30))

	calls := 0
	err := p.run(context.Background(), entity.ReportClientsStatistic, w, w.End, func() error {
		calls++

		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.Zero(t, *sleeps)
}

func TestRetryPolicy_RetriesTransientFailures(t *testing.T) {
	p, sleeps := testRetryPolicy(5)
	w := window(date(2024, 1, 1), date(2024, 1, 30))

	calls := 0
	err := p.run(context.Background(), entity.ReportClientsStatistic, w, w.End, func() error {
		calls++
		if calls < 3 {
			return syncerrors.NewResponseError(502)
		}

		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
	assert.Equal(t, 2, *sleeps)
}

func TestRetryPolicy_ExhaustsBudget(t *testing.T) {
	p, sleeps := testRetryPolicy(5)
	w := window(date(2024, 1, 1), date(2024, 1, 30))

	calls := 0
	err := p.run(context.Background(), entity.ReportClientsStatistic, w, w.End, func() error {
		calls++

		return syncerrors.NewTransportError(errors.New("connection reset"))
	})

	require.Error(t, err)
	var transportErr *syncerrors.TransportError
	assert.ErrorAs(t, err, &transportErr)
	assert.Equal(t, 5, calls)
	assert.Equal(t, 4, *sleeps, "no sleep after the final attempt")
}

func TestRetryPolicy_NonRetryablePropagatesImmediately(t *testing.T) {
	p, sleeps := testRetryPolicy(5)
	w := window(date(2024, 1, 1), date(2024, 1, 30))

	calls := 0
	err := p.run(context.Background(), entity.ReportClientsStatistic, w, w.End, func() error {
		calls++

		return syncerrors.NewAuthError("unit-1")
	})

	require.Error(t, err)
	var authErr *syncerrors.AuthError
	assert.ErrorAs(t, err, &authErr)
	assert.Equal(t, 1, calls)
	assert.Zero(t, *sleeps)
}

func TestRetryPolicy_EmptyAcceptedForBackfillWindow(t *testing.T) {
	// A clients window that ends before the overall sync end may be empty:
	// the unit simply did not exist yet.
	p, sleeps := testRetryPolicy(5)
	w := window(date(2024, 1, 1), date(2024, 1, 30))
	overallEnd := date(2024, 2, 15)

	calls := 0
	err := p.run(context.Background(), entity.ReportClientsStatistic, w, overallEnd, func() error {
		calls++

		return syncerrors.NewEmptyResultError(entity.ReportClientsStatistic.String(), w.Start, w.End)
	})

	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.Zero(t, *sleeps)
}

func TestRetryPolicy_EmptyAcceptedForTolerantKinds(t *testing.T) {
	// Order and promo exports are legitimately empty even on the final window.
	p, _ := testRetryPolicy(5)
	w := window(date(2024, 2, 1), date(2024, 2, 15))

	for _, kind := range []entity.ReportKind{entity.ReportOrders, entity.ReportPromoUsage} {
		t.Run(kind.String(), func(t *testing.T) {
			err := p.run(context.Background(), kind, w, w.End, func() error {
				return syncerrors.NewEmptyResultError(kind.String(), w.Start, w.End)
			})
			require.NoError(t, err)
		})
	}
}

func TestRetryPolicy_EmptyEscalatesOnFinalClientsWindow(t *testing.T) {
	// An empty clients statistic on the newest window means the fetch went
	// wrong, not that there were no clients; the budget applies.
	p, sleeps := testRetryPolicy(3)
	w := window(date(2024, 2, 1), date(2024, 2, 15))

	calls := 0
	err := p.run(context.Background(), entity.ReportClientsStatistic, w, w.End, func() error {
		calls++

		return syncerrors.NewEmptyResultError(entity.ReportClientsStatistic.String(), w.Start, w.End)
	})

	require.Error(t, err)
	var emptyErr *syncerrors.EmptyResultError
	assert.ErrorAs(t, err, &emptyErr)
	assert.Equal(t, 3, calls)
	assert.Equal(t, 2, *sleeps)
}

func TestRetryPolicy_CancelledDuringBackoff(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := retryPolicy{attempts: 5, backoff: time.Minute, sleep: sleepContext}
	w := window(date(2024, 1, 1), date(2024, 1, 30))

	calls := 0
	err := p.run(ctx, entity.ReportClientsStatistic, w, w.End, func() error {
		calls++

		return syncerrors.NewResponseError(503)
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls)
}
