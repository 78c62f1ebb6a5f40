package entity

import "time"

// ReportKind identifies one of the portal's exportable reports. Each kind
// maps to its own endpoint, request schema and spreadsheet layout.
type ReportKind string

const (
	// ReportClientsStatistic is the per-client first/last order summary.
	ReportClientsStatistic ReportKind = "clients_statistic"
	// ReportPromoUsage is the promo code usage listing.
	ReportPromoUsage ReportKind = "promo_usage"
	// ReportOrders is the raw order listing.
	ReportOrders ReportKind = "orders"
)

// String returns the string representation of the ReportKind.
func (k ReportKind) String() string {
	return string(k)
}

// IsValid checks if the ReportKind is a valid value.
func (k ReportKind) IsValid() bool {
	switch k {
	case ReportClientsStatistic, ReportPromoUsage, ReportOrders:
		return true
	default:
		return false
	}
}

// AcceptsEmptyResult reports whether a window of this kind may legitimately
// contain no data rows. Promo usage and order exports are routinely empty for
// quiet periods; the clients statistic is only allowed to be empty for
// windows that predate the unit's opening.
func (k ReportKind) AcceptsEmptyResult() bool {
	return k == ReportPromoUsage || k == ReportOrders
}

// SkipRows returns the number of decorative header rows the portal prepends
// to this kind's spreadsheet before the column header row.
func (k ReportKind) SkipRows() int {
	switch k {
	case ReportClientsStatistic:
		return 10
	case ReportPromoUsage:
		return 4
	case ReportOrders:
		return 7
	default:
		return 0
	}
}

// RawTable is the untyped tabular payload of one window's export: the column
// header row plus every data row, cells kept verbatim as strings.
type RawTable struct {
	Columns []string
	Rows    [][]string
}

// Empty reports whether the table carries no data rows.
func (t *RawTable) Empty() bool {
	return t == nil || len(t.Rows) == 0
}

// Column returns the index of the named column, or -1 when absent.
func (t *RawTable) Column(name string) int {
	for i, col := range t.Columns {
		if col == name {
			return i
		}
	}

	return -1
}

// Cell returns the cell of the given row at the named column. Rows shorter
// than the header (trailing empty cells are not materialized by the
// spreadsheet reader) yield an empty string.
func (t *RawTable) Cell(row []string, name string) string {
	idx := t.Column(name)
	if idx < 0 || idx >= len(row) {
		return ""
	}

	return row[idx]
}

// SyncWindow is one inclusive [Start, End] date interval of a window plan.
// Both bounds are UTC midnights; the portal treats them as calendar dates.
type SyncWindow struct {
	Start time.Time
	End   time.Time
}

// Days returns the inclusive length of the window in days.
func (w SyncWindow) Days() int {
	return int(w.End.Sub(w.Start)/(24*time.Hour)) + 1
}
