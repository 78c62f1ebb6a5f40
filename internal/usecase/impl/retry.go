package impl

import (
	"context"
	"time"

	"chainsync/internal/domain/entity"
	syncerrors "chainsync/internal/domain/errors"
	"chainsync/internal/errors"
)

const (
	// DefaultAttempts is the bounded attempt budget per (unit, window, kind).
	DefaultAttempts = 5
	// DefaultBackoff is the fixed sleep between attempts.
	DefaultBackoff = 2 * time.Second
)

// retryPolicy wraps the fetch+normalize of one window in a bounded-attempt
// loop with differentiated handling per failure class.
type retryPolicy struct {
	attempts int
	backoff  time.Duration
	sleep    func(ctx context.Context, d time.Duration) error
}

func newRetryPolicy(attempts int, backoff time.Duration) retryPolicy {
	if attempts < 1 {
		attempts = DefaultAttempts
	}

	return retryPolicy{attempts: attempts, backoff: backoff, sleep: sleepContext}
}

// run invokes op until it succeeds or the policy gives up.
//
// An empty window is not a failure when the unit may simply not have existed
// yet: emptiness is accepted silently whenever the window ends before the
// overall sync end, and unconditionally for kinds that tolerate empty
// exports. Only the final window of a clients-statistic backfill escalates
// emptiness through the attempt budget. Non-retryable classes (rejected
// credentials, contract drift, invalid ranges) propagate immediately.
func (p retryPolicy) run(ctx context.Context, kind entity.ReportKind, window entity.SyncWindow, overallEnd time.Time, op func() error) error {
	attempts := p.attempts
	for {
		attempts--

		err := op()
		if err == nil {
			return nil
		}

		var emptyErr *syncerrors.EmptyResultError
		if errors.As(err, &emptyErr) {
			if kind.AcceptsEmptyResult() || window.End.Before(overallEnd) {
				return nil
			}
		} else if !syncerrors.IsRetryable(err) {
			return err
		}

		if attempts <= 0 {
			return err
		}
		if sleepErr := p.sleep(ctx, p.backoff); sleepErr != nil {
			return sleepErr
		}
	}
}

// sleepContext blocks for d or until ctx is cancelled.
func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "retry backoff interrupted")
	case <-timer.C:
		return nil
	}
}
