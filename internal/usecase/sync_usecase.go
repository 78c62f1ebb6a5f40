// Package usecase defines the application-layer interfaces and their
// input/output types. Implementations live in the impl subpackage.
package usecase

import (
	"context"
	"time"

	"chainsync/internal/domain/entity"
)

// SyncState tracks a unit's progress through one sync run.
type SyncState string

const (
	// SyncStatePending means the unit is queued but untouched.
	SyncStatePending SyncState = "pending"
	// SyncStateAuthenticating means the portal login is in flight.
	SyncStateAuthenticating SyncState = "authenticating"
	// SyncStateFetching means report windows are being retrieved.
	SyncStateFetching SyncState = "fetching"
	// SyncStateNormalizing means raw payloads are being typed and filtered.
	SyncStateNormalizing SyncState = "normalizing"
	// SyncStateAggregating means window batches are being merged.
	SyncStateAggregating SyncState = "aggregating"
	// SyncStateCommitting means the canonical batches are being persisted.
	SyncStateCommitting SyncState = "committing"
	// SyncStateDone is the only state that advances the watermark.
	SyncStateDone SyncState = "done"
	// SyncStateFailed is terminal; the watermark stays untouched so the next
	// run retries the same interval.
	SyncStateFailed SyncState = "failed"
)

// UnitSyncResult is the outcome of one unit's sync.
type UnitSyncResult struct {
	Unit        *entity.Unit
	State       SyncState
	Start       time.Time // First day of the synced interval.
	End         time.Time // Last day of the synced interval (the new watermark when Done).
	WindowCount int
	ClientRows  int // Canonical client rows handed to the upsert.
	OrderRows   int // Order rows actually inserted.
	Err         error
}

// Failed reports whether the unit's sync ended in a terminal error state.
func (r UnitSyncResult) Failed() bool {
	return r.State == SyncStateFailed
}

// SyncUsecase drives the windowed retrieval, normalization, aggregation and
// incremental upsert for every unit that needs it.
type SyncUsecase interface {
	// SyncAll processes all units needing sync sequentially. A failed unit
	// never stops the run; its result carries the error. The returned error
	// covers run-level failures only (e.g. the unit listing itself).
	SyncAll(ctx context.Context) ([]UnitSyncResult, error)

	// SyncUnit processes a single unit end to end.
	SyncUnit(ctx context.Context, unit *entity.Unit) UnitSyncResult
}
