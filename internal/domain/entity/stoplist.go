package entity

import "time"

// StopListEntry is one phone of the externally maintained contact stop list.
// The sync engine only ingests the feed; downstream reporting consults it.
type StopListEntry struct {
	Phone        string
	LastCallDate time.Time
	DoNotCall    bool
}
