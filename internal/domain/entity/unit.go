// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// MinTZShift and MaxTZShift bound the whole-hour UTC offsets the chain
// operates in (Kaliningrad through Kamchatka).
const (
	MinTZShift = 2
	MaxTZShift = 12
)

// Unit is a single point of sale of the chain as registered in the back
// office. Units are created and refreshed by the public-catalog sync; the
// report sync only ever advances SyncedThrough.
type Unit struct {
	ID              uuid.UUID  // Internal identifier of the unit row.
	CountryCode     string     // Two-letter country code of the deployment, e.g. "ru".
	ExternalID      int        // The unit identifier used by the portal.
	CatalogUUID     string     // Identifier assigned by the public catalog API.
	Name            string     // Display name, matches the portal's department naming.
	TZShift         int        // Whole-hour UTC offset of the unit's local time.
	Login           string     // Portal credential pair for this unit's back office.
	Password        string
	IsActive        bool       // Inactive units are skipped by the sync run.
	FirstActiveDate time.Time  // The earliest date reports can exist for.
	SyncedThrough   *time.Time // Watermark: last date fully synced, nil if never synced.
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Location returns the fixed-offset location for the unit's local time.
func (u *Unit) Location() *time.Location {
	return time.FixedZone("", u.TZShift*60*60)
}

// HasValidTZShift reports whether the unit's offset is inside the supported
// timezone set.
func (u *Unit) HasValidTZShift() bool {
	return u.TZShift >= MinTZShift && u.TZShift <= MaxTZShift
}

// CatalogUnit is one entry of the public unit catalog, already filtered down
// to the fields the sync needs.
type CatalogUnit struct {
	ExternalID  int
	CatalogUUID string
	Name        string
	TZShift     int
}
