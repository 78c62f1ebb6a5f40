// Package service declares the outward-facing collaborator interfaces of the
// domain: the report portal, the unit catalog, the feed storage and the
// notification sink. Infrastructure packages provide the implementations.
package service

import (
	"context"

	"chainsync/internal/domain/entity"
)

// PortalGateway opens authenticated report sessions against the back office.
// One session serves exactly one unit's sync and is discarded afterwards;
// authentication state never outlives it.
type PortalGateway interface {
	// NewSession creates a fresh, unauthenticated session for the unit.
	NewSession(unit *entity.Unit) ReportSession
}

// ReportSession is one unit's portal session.
type ReportSession interface {
	// EnsureAuthenticated performs the lazy login. A credential rejection
	// surfaces as *syncerrors.AuthError, a connection failure as
	// *syncerrors.TransportError.
	EnsureAuthenticated(ctx context.Context) error

	// FetchReport requests the kind's export for the window and decodes the
	// returned spreadsheet into a raw table. It authenticates first when
	// needed. Non-success statuses surface as *syncerrors.ResponseError.
	FetchReport(ctx context.Context, kind entity.ReportKind, window entity.SyncWindow) (*entity.RawTable, error)

	// Close releases the session's connections.
	Close()
}
