// Package errors defines the failure taxonomy of the report sync. Each type
// carries its retry semantics so the retry controller never has to inspect
// messages.
package errors

import (
	"fmt"
	"time"

	"chainsync/internal/errors"
)

// SyncError is the interface implemented by every sync failure class.
type SyncError interface {
	error
	Code() string    // Stable machine-readable failure code.
	Retryable() bool // Whether another attempt on the same window can succeed.
}

// IsRetryable reports whether err may be retried. Errors outside the sync
// taxonomy (transport hiccups surfaced by lower layers, decode failures from
// a half-written payload) are treated as retryable, matching the attempt
// budget semantics: only explicitly fatal classes short-circuit the loop.
func IsRetryable(err error) bool {
	var syncErr SyncError
	if errors.As(err, &syncErr) {
		return syncErr.Retryable()
	}

	return true
}

// AuthError means the portal rejected the unit's credentials. Fatal for the
// unit: retrying the same login cannot succeed.
type AuthError struct {
	Unit string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("portal rejected credentials for unit %q", e.Unit)
}

// Code returns the stable failure code.
func (e *AuthError) Code() string { return "AUTH_REJECTED" }

// Retryable reports the retry semantics of the error.
func (e *AuthError) Retryable() bool { return false }

// NewAuthError creates an AuthError carrying the unit identity.
func NewAuthError(unit string) *AuthError {
	return &AuthError{Unit: unit}
}

// TransportError wraps a connection-level failure (timeout, reset) of a
// portal call. Retryable.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("portal transport failure: %v", e.Err)
}

// Unwrap returns the wrapped transport failure.
func (e *TransportError) Unwrap() error { return e.Err }

// Code returns the stable failure code.
func (e *TransportError) Code() string { return "TRANSPORT" }

// Retryable reports the retry semantics of the error.
func (e *TransportError) Retryable() bool { return true }

// NewTransportError wraps err as a transport failure.
func NewTransportError(err error) *TransportError {
	return &TransportError{Err: err}
}

// ResponseError means the portal answered with a non-success HTTP status.
// Retryable: the portal routinely returns 5xx under load.
type ResponseError struct {
	Status int
}

func (e *ResponseError) Error() string {
	return fmt.Sprintf("portal returned status %d", e.Status)
}

// Code returns the stable failure code.
func (e *ResponseError) Code() string { return "BAD_RESPONSE" }

// Retryable reports the retry semantics of the error.
func (e *ResponseError) Retryable() bool { return true }

// NewResponseError creates a ResponseError for the given HTTP status.
func NewResponseError(status int) *ResponseError {
	return &ResponseError{Status: status}
}

// EmptyResultError means a window's payload contained zero data rows. The
// retry controller decides whether that is acceptable (the unit may not have
// existed yet during the window) or exhaustion-worthy.
type EmptyResultError struct {
	Kind        string
	WindowStart time.Time
	WindowEnd   time.Time
}

func (e *EmptyResultError) Error() string {
	return fmt.Sprintf("%s report is empty for %s..%s",
		e.Kind, e.WindowStart.Format("2006-01-02"), e.WindowEnd.Format("2006-01-02"))
}

// Code returns the stable failure code.
func (e *EmptyResultError) Code() string { return "EMPTY_RESULT" }

// Retryable reports the retry semantics of the error.
func (e *EmptyResultError) Retryable() bool { return true }

// NewEmptyResultError creates an EmptyResultError for the given kind and window.
func NewEmptyResultError(kind string, start, end time.Time) *EmptyResultError {
	return &EmptyResultError{Kind: kind, WindowStart: start, WindowEnd: end}
}

// InvalidRangeError means a window plan was requested for an impossible
// interval. A programmer or configuration error: never retried.
type InvalidRangeError struct {
	Reason string
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("invalid sync range: %s", e.Reason)
}

// Code returns the stable failure code.
func (e *InvalidRangeError) Code() string { return "INVALID_RANGE" }

// Retryable reports the retry semantics of the error.
func (e *InvalidRangeError) Retryable() bool { return false }

// NewInvalidRangeError creates an InvalidRangeError with the given reason.
func NewInvalidRangeError(reason string) *InvalidRangeError {
	return &InvalidRangeError{Reason: reason}
}

// DataContractError means the portal served a categorical value outside the
// fixed mapping. Schema drift must fail loudly instead of being absorbed as
// a wrong ordinal, so this is fatal and never retried.
type DataContractError struct {
	Column string
	Value  string
}

func (e *DataContractError) Error() string {
	return fmt.Sprintf("unmapped value %q in column %q", e.Value, e.Column)
}

// Code returns the stable failure code.
func (e *DataContractError) Code() string { return "DATA_CONTRACT" }

// Retryable reports the retry semantics of the error.
func (e *DataContractError) Retryable() bool { return false }

// NewDataContractError creates a DataContractError for the given column and value.
func NewDataContractError(column, value string) *DataContractError {
	return &DataContractError{Column: column, Value: value}
}
