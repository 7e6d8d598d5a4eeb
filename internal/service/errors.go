package service

import "errors"

var (
	// ErrSchema is wrapped by every deserialization failure: malformed JSON,
	// a missing collection, a non-numeric timestamp. Data is never coerced.
	ErrSchema = errors.New("snapshot schema error")

	// ErrNotConnected - sync was requested with no remote file selected or
	// no authenticated drive session.
	ErrNotConnected = errors.New("not connected to a remote file")

	// ErrSyncInProgress - a sync cycle is already running. A caller-visible
	// no-op signal, not a failure: the running cycle is unaffected.
	ErrSyncInProgress = errors.New("sync already in progress")

	// ErrConflictsPending - the merge detected conflicts and the cycle
	// halted before committing anything. Resolution via ResolveConflicts is
	// required before the next cycle can complete.
	ErrConflictsPending = errors.New("sync halted: conflicts pending resolution")

	// ErrAwaitingReconnect - the session expired and the engine refuses to
	// sync until an external reauthentication signal arrives.
	ErrAwaitingReconnect = errors.New("awaiting reconnect after session expiry")
)
