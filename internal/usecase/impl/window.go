// Package impl contains the application-layer implementations: the window
// planner, the retry controller, the report normalizers, the chunk
// aggregator and the orchestrating services.
package impl

import (
	"fmt"
	"time"

	"chainsync/internal/domain/entity"
	syncerrors "chainsync/internal/domain/errors"
)

const day = 24 * time.Hour

// DefaultMaxWindowDays is the longest span the portal serves in one export
// request. Longer ranges are silently truncated server-side, so splitting is
// mandatory.
const DefaultMaxWindowDays = 30

// PlanWindows splits the inclusive [start, end] date interval into an ordered
// sequence of contiguous, non-overlapping windows of at most maxDays days
// covering the interval exactly once. The final window is clipped to end.
// Both bounds are truncated to UTC midnight first.
func PlanWindows(start, end time.Time, maxDays int) ([]entity.SyncWindow, error) {
	if maxDays < 1 {
		return nil, syncerrors.NewInvalidRangeError(fmt.Sprintf("max window days must be positive, got %d", maxDays))
	}

	start = truncateDay(start)
	end = truncateDay(end)
	if start.After(end) {
		return nil, syncerrors.NewInvalidRangeError(fmt.Sprintf(
			"start %s is after end %s", start.Format("2006-01-02"), end.Format("2006-01-02")))
	}

	span := time.Duration(maxDays) * day
	windows := make([]entity.SyncWindow, 0, int(end.Sub(start)/span)+1)
	for cursor := start; !cursor.After(end); cursor = cursor.Add(span) {
		windowEnd := cursor.Add(span - day)
		if windowEnd.After(end) {
			windowEnd = end
		}
		windows = append(windows, entity.SyncWindow{Start: cursor, End: windowEnd})
	}

	return windows, nil
}

// truncateDay drops the intra-day part of t, keeping the UTC calendar date.
func truncateDay(t time.Time) time.Time {
	t = t.UTC()

	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
