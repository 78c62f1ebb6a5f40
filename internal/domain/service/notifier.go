package service

import "context"

// Notifier is the fire-and-forget alerting sink. The sync core only returns
// typed errors; the composition layer turns per-unit failures into messages.
type Notifier interface {
	// Notify delivers a plain-text message to the operators' channel.
	Notify(ctx context.Context, message string) error
}
