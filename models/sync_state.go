package models

// SyncState is the orchestrator's externally visible condition. It is derived
// state: only the remote file ref, the baseline snapshot and the session
// token are persisted, never the state itself.
type SyncState string

const (
	// SyncOffline - no drive connection established.
	SyncOffline SyncState = "offline"

	// SyncIdle - connected, unsynced local changes may exist.
	SyncIdle SyncState = "idle"

	// SyncSyncing - a sync cycle is in flight.
	SyncSyncing SyncState = "syncing"

	// SyncSynced - the last cycle committed and nothing changed since.
	SyncSynced SyncState = "synced"

	// SyncError - the last cycle failed; retried on the next trigger.
	SyncError SyncState = "error"

	// SyncAwaitingReconnect - a call discovered an expired session. No sync
	// runs until an external reauthentication signal arrives.
	SyncAwaitingReconnect SyncState = "awaitingReconnect"
)
