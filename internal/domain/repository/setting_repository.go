package repository

import (
	"context"
	"errors"
)

// ErrSettingNotFound is returned when a configuration key has never been set.
var ErrSettingNotFound = errors.New("setting not found")

// Well-known setting keys.
const (
	// SettingStopListModified tracks the modification timestamp of the last
	// ingested stop-list workbook.
	SettingStopListModified = "StopListLastModifiedDate"
)

// SettingRepository is a small key-value store for auxiliary sync state that
// does not belong to any unit.
type SettingRepository interface {
	// Get returns the value stored under key, or ErrSettingNotFound.
	Get(ctx context.Context, key string) (string, error)

	// Set stores value under key, overwriting any previous value.
	Set(ctx context.Context, key, value string) error
}
