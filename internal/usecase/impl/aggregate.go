package impl

import (
	"sort"

	"chainsync/internal/domain/entity"
)

// aggregateClients merges the normalized client batches of all windows into
// one canonical batch.
//
// The statistics export returns a client's complete first/last-order summary
// in every window overlapping their activity, so counters carried in several
// windows would double-count under naive concatenation. Grouping by the
// invariant first-order key isolates one row per window per client; only the
// per-window count and sum slices are summed. Last-order fields come from the
// row with the most recent last-order timestamp; the stable descending sort
// makes the tie-break deterministic (first encountered wins).
func aggregateClients(batches [][]entity.ClientRow) []entity.ClientRow {
	var all []entity.ClientRow
	for _, batch := range batches {
		all = append(all, batch...)
	}
	if len(all) == 0 {
		return nil
	}

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].LastOrderAt.After(all[j].LastOrderAt)
	})

	merged := make(map[entity.ClientGroupKey]int, len(all))
	out := make([]entity.ClientRow, 0, len(all))
	for _, row := range all {
		key := row.GroupKey()
		if idx, ok := merged[key]; ok {
			out[idx].OrderCount += row.OrderCount
			out[idx].OrderSum += row.OrderSum

			continue
		}
		merged[key] = len(out)
		out = append(out, row)
	}

	return out
}

// concatOrders flattens the per-window order batches in chronological order.
// No deduplication happens here: the persisted (unit, date, number) key makes
// re-fetched boundary rows idempotent downstream.
func concatOrders(batches [][]entity.OrderRow) []entity.OrderRow {
	var all []entity.OrderRow
	for _, batch := range batches {
		all = append(all, batch...)
	}

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Date.Before(all[j].Date)
	})

	return all
}
