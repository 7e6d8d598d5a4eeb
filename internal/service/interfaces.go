package service

import (
	"context"

	"github.com/MKhiriev/recipe-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// MergeService reconciles three snapshots of the same dataset: the shared
// ancestor (base), the device's current state (local) and the drive's current
// state (remote). It is pure: no I/O, no clocks, no stored state.
type MergeService interface {
	// Merge performs a three-way merge. Undecidable divergences are returned
	// as conflicts; the merged snapshot holds the remote version of every
	// conflicting record until the caller resolves them.
	Merge(ctx context.Context, base, local, remote models.Snapshot) (models.MergeResult, error)

	// MergeWithPreference is Merge with a set of conflict keys
	// (collection/id) for which the local version silently wins instead of
	// raising a conflict.
	MergeWithPreference(ctx context.Context, base, local, remote models.Snapshot, preferLocal map[string]struct{}) (models.MergeResult, error)
}

// ClientSyncService drives the whole synchronization lifecycle of one device:
// connecting to a drive, selecting the remote snapshot file, running sync
// cycles, surfacing conflicts and recovering from session expiry.
//
// All methods are safe for concurrent use. At most one sync cycle runs at a
// time; overlapping requests observe ErrSyncInProgress.
type ClientSyncService interface {
	// Connect stores the drive access token and verifies it by fetching the
	// account info. On success the engine leaves the offline state.
	Connect(ctx context.Context, token string) (models.AccountInfo, error)

	// ListRemoteFolder lists a drive folder: subfolders plus the snapshot
	// files a device could attach to.
	ListRemoteFolder(ctx context.Context, parentID string) (models.FolderListing, error)

	// SelectRemoteFile attaches the engine to a snapshot file. For an
	// existing file the local cache is cleared and an immediate sync adopts
	// the remote data; for a new file the reference is stored and the first
	// sync will create it.
	SelectRemoteFile(ctx context.Context, ref models.RemoteFileRef, isNew bool) error

	// PerformSync runs one full sync cycle: download, merge, commit, upload.
	// Returns ErrSyncInProgress if a cycle is already running,
	// ErrConflictsPending if the merge halted on conflicts, and
	// ErrAwaitingReconnect after a session expiry.
	PerformSync(ctx context.Context) error

	// ResolveConflicts applies one direction to every pending conflict and
	// completes the halted cycle. A no-op when no conflicts are pending.
	ResolveConflicts(ctx context.Context, direction models.ResolveDirection) error

	// NotifyReauthenticated clears the awaiting-reconnect state after the
	// user signed in again and triggers a catch-up sync.
	NotifyReauthenticated(ctx context.Context, token string) error

	// DisconnectAndReset drops the session, forgets the remote file and
	// clears the local cache.
	DisconnectAndReset(ctx context.Context) error

	// NoteLocalChange flips a synced engine back to idle, reflecting that
	// unsynced local changes now exist. Called by the scheduler on every
	// watermark advance; a no-op in any other state.
	NoteLocalChange()

	// State reports the engine's current lifecycle state.
	State() models.SyncState

	// Conflicts returns the pending conflicts of the halted cycle, if any.
	Conflicts() []models.Conflict

	// LastSyncedAt returns the wall-clock time of the last successful cycle,
	// zero if none happened yet.
	LastSyncedAt() int64

	// Account returns the account info captured at Connect time.
	Account() models.AccountInfo

	// RemoteFile returns the currently selected snapshot file reference.
	RemoteFile() models.RemoteFileRef
}

// SyncScheduler turns local-change notifications into debounced PerformSync
// calls so that a burst of edits produces one upload.
type SyncScheduler interface {
	// Start launches the scheduler loop. It runs until Stop or ctx is done.
	Start(ctx context.Context)

	// NoteLocalChange records that local data changed. The first change after
	// a quiet period syncs immediately; further changes are absorbed into one
	// deferred cycle.
	NoteLocalChange()

	// Stop terminates the loop and waits for a in-flight cycle to finish.
	Stop()
}
