package impl

import (
	"testing"
	"time"

	"chainsync/internal/domain/entity"
	syncerrors "chainsync/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestPlanWindows_SingleWindow(t *testing.T) {
	windows, err := PlanWindows(date(2024, 1, 1), date(2024, 1, 10), 30)
	require.NoError(t, err)

	require.Len(t, windows, 1)
	assert.Equal(t, date(2024, 1, 1), windows[0].Start)
	assert.Equal(t, date(2024, 1, 10), windows[0].End)
	assert.Equal(t, 10, windows[0].Days())
}

func TestPlanWindows_SingleDay(t *testing.T) {
	windows, err := PlanWindows(date(2024, 3, 5), date(2024, 3, 5), 30)
	require.NoError(t, err)

	require.Len(t, windows, 1)
	assert.Equal(t, date(2024, 3, 5), windows[0].Start)
	assert.Equal(t, date(2024, 3, 5), windows[0].End)
	assert.Equal(t, 1, windows[0].Days())
}

func TestPlanWindows_SplitsAndClipsFinalWindow(t *testing.T) {
	windows, err := PlanWindows(date(2024, 1, 1), date(2024, 2, 15), 30)
	require.NoError(t, err)

	require.Len(t, windows, 2)
	assert.Equal(t, date(2024, 1, 1), windows[0].Start)
	assert.Equal(t, date(2024, 1, 30), windows[0].End)
	assert.Equal(t, date(2024, 1, 31), windows[1].Start)
	assert.Equal(t, date(2024, 2, 15), windows[1].End)
}

func TestPlanWindows_ExactMultiple(t *testing.T) {
	// 60 days split into two full 30-day windows, no runt at the end.
	windows, err := PlanWindows(date(2024, 1, 1), date(2024, 2, 29), 30)
	require.NoError(t, err)

	require.Len(t, windows, 2)
	assert.Equal(t, 30, windows[0].Days())
	assert.Equal(t, 30, windows[1].Days())
}

func TestPlanWindows_CoversIntervalExactlyOnce(t *testing.T) {
	start, end := date(2023, 7, 14), date(2024, 12, 31)
	windows, err := PlanWindows(start, end, 30)
	require.NoError(t, err)

	cursor := start
	for _, w := range windows {
		assert.Equal(t, cursor, w.Start, "windows must be contiguous")
		assert.False(t, w.End.Before(w.Start))
		assert.LessOrEqual(t, w.Days(), 30)
		cursor = w.End.Add(24 * time.Hour)
	}
	assert.Equal(t, end.Add(24*time.Hour), cursor, "last window must end at the interval end")
}

func TestPlanWindows_TruncatesIntraDayParts(t *testing.T) {
	windows, err := PlanWindows(
		time.Date(2024, 5, 1, 13, 45, 12, 0, time.UTC),
		time.Date(2024, 5, 3, 2, 0, 0, 0, time.UTC),
		30,
	)
	require.NoError(t, err)

	require.Len(t, windows, 1)
	assert.Equal(t, date(2024, 5, 1), windows[0].Start)
	assert.Equal(t, date(2024, 5, 3), windows[0].End)
}

func TestPlanWindows_RejectsInvalidRanges(t *testing.T) {
	tests := []struct {
		name    string
		start   time.Time
		end     time.Time
		maxDays int
	}{
		{name: "start after end", start: date(2024, 2, 1), end: date(2024, 1, 1), maxDays: 30},
		{name: "zero max days", start: date(2024, 1, 1), end: date(2024, 1, 2), maxDays: 0},
		{name: "negative max days", start: date(2024, 1, 1), end: date(2024, 1, 2), maxDays: -5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := PlanWindows(tt.start, tt.end, tt.maxDays)
			require.Error(t, err)

			var rangeErr *syncerrors.InvalidRangeError
			assert.ErrorAs(t, err, &rangeErr)
			assert.False(t, syncerrors.IsRetryable(err))
		})
	}
}

func TestSyncWindow_Days(t *testing.T) {
	w := entity.SyncWindow{Start: date(2024, 1, 1), End: date(2024, 1, 30)}
	assert.Equal(t, 30, w.Days())
}
