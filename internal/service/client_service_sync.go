// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/recipe-keeper/internal/adapter"
	"github.com/MKhiriev/recipe-keeper/internal/codec"
	"github.com/MKhiriev/recipe-keeper/internal/logger"
	"github.com/MKhiriev/recipe-keeper/internal/store"
	"github.com/MKhiriev/recipe-keeper/models"
)

// pendingCycle holds the inputs and outcome of a sync cycle that halted on
// conflicts. ResolveConflicts completes the cycle from this snapshot of the
// world instead of re-downloading; a later full cycle supersedes it.
type pendingCycle struct {
	ref    models.RemoteFileRef
	base   models.Snapshot
	local  models.Snapshot
	remote models.Snapshot
	merged models.Snapshot
}

type clientSyncService struct {
	drive  adapter.DriveAdapter
	cache  store.LocalStore
	merger MergeService
	logger *logger.Logger

	// now is the clock used for timestamps, replaceable in tests.
	now func() int64

	// syncing is the non-reentrant cycle guard. It is deliberately separate
	// from the state field: state transitions are not atomic with the guard
	// check, so two callers could both read "idle" and race. The guard is set
	// before the first provider call and cleared when the cycle fully
	// completes (success, conflict halt, or error).
	syncing atomic.Bool

	mu           sync.Mutex
	state        models.SyncState
	account      models.AccountInfo
	remoteRef    models.RemoteFileRef
	hasRemoteRef bool
	conflicts    []models.Conflict
	pending      *pendingCycle
	lastSyncedAt int64
}

// NewClientSyncService wires the sync orchestrator. The drive adapter is the
// only remote dependency; swapping the cloud vendor means passing a different
// implementation here.
func NewClientSyncService(drive adapter.DriveAdapter, cache store.LocalStore, merger MergeService, log *logger.Logger) ClientSyncService {
	return &clientSyncService{
		drive:  drive,
		cache:  cache,
		merger: merger,
		logger: log,
		now:    func() int64 { return time.Now().UnixMilli() },
		state:  models.SyncOffline,
	}
}

// Connect implements ClientSyncService.
func (s *clientSyncService) Connect(ctx context.Context, token string) (models.AccountInfo, error) {
	s.drive.SetToken(token)

	account, err := s.drive.GetAccountInfo(ctx)
	if err != nil {
		s.drive.SetToken("")
		s.logger.Error().Err(err).Msg("drive connection rejected")
		return models.AccountInfo{}, fmt.Errorf("connect: %w", err)
	}

	// Pick up the file reference persisted by an earlier session, if any.
	ref, hasRef, err := s.cache.RemoteRef(ctx)
	if err != nil {
		return models.AccountInfo{}, fmt.Errorf("connect: %w", err)
	}

	s.mu.Lock()
	s.account = account
	s.remoteRef = ref
	s.hasRemoteRef = hasRef
	s.state = models.SyncIdle
	s.mu.Unlock()

	s.logger.Info().Str("email", account.Email).Bool("has_remote_ref", hasRef).Msg("connected to drive")
	return account, nil
}

// ListRemoteFolder implements ClientSyncService.
func (s *clientSyncService) ListRemoteFolder(ctx context.Context, parentID string) (models.FolderListing, error) {
	var parent *models.FolderRef
	if parentID != "" {
		parent = &models.FolderRef{ID: parentID}
	}

	listing, err := s.drive.ListFolder(ctx, parent)
	if err != nil {
		if errors.Is(err, adapter.ErrSessionExpired) {
			s.enterAwaitingReconnect()
		}
		return models.FolderListing{}, fmt.Errorf("list folder: %w", err)
	}
	return listing, nil
}

// SelectRemoteFile implements ClientSyncService.
//
// Attaching to an existing file makes the remote authoritative: the local
// cache is cleared before the adopting sync. Attaching to a brand-new file
// keeps local data so the first cycle uploads it.
func (s *clientSyncService) SelectRemoteFile(ctx context.Context, ref models.RemoteFileRef, isNew bool) error {
	if !s.drive.IsAuthenticated() {
		return ErrNotConnected
	}

	if !isNew {
		if err := s.cache.ClearAll(ctx); err != nil {
			return fmt.Errorf("select remote file: %w", err)
		}
	}
	if err := s.cache.SaveRemoteRef(ctx, ref); err != nil {
		return fmt.Errorf("select remote file: %w", err)
	}

	s.mu.Lock()
	s.remoteRef = ref
	s.hasRemoteRef = true
	s.conflicts = nil
	s.pending = nil
	s.mu.Unlock()

	s.logger.Info().Str("file", ref.Name).Bool("new", isNew).Msg("remote file selected")
	return s.PerformSync(ctx)
}

// PerformSync implements ClientSyncService.
func (s *clientSyncService) PerformSync(ctx context.Context) error {
	if !s.syncing.CompareAndSwap(false, true) {
		return ErrSyncInProgress
	}
	defer s.syncing.Store(false)

	return s.runCycle(ctx)
}

// runCycle executes one download-merge-commit-upload pass. The caller holds
// the syncing guard.
func (s *clientSyncService) runCycle(ctx context.Context) error {
	if s.State() == models.SyncAwaitingReconnect {
		return ErrAwaitingReconnect
	}

	ref, hasRef, err := s.cache.RemoteRef(ctx)
	if err != nil {
		s.setState(models.SyncError)
		return fmt.Errorf("sync: %w", err)
	}
	if !hasRef || !s.drive.IsAuthenticated() {
		return ErrNotConnected
	}

	s.setState(models.SyncSyncing)
	s.logger.Debug().Str("file", ref.Name).Msg("sync cycle started")

	remote, err := s.fetchRemote(ctx, ref)
	if err != nil {
		return err
	}

	local, err := s.cache.GetSnapshot(ctx)
	if err != nil {
		s.setState(models.SyncError)
		return fmt.Errorf("sync: read local: %w", err)
	}
	base, hasBase, err := s.cache.Baseline(ctx)
	if err != nil {
		s.setState(models.SyncError)
		return fmt.Errorf("sync: read baseline: %w", err)
	}
	if !hasBase {
		base = models.EmptySnapshot(0)
	}

	result, err := s.merger.Merge(ctx, base, local, remote)
	if err != nil {
		s.setState(models.SyncError)
		return fmt.Errorf("sync: merge: %w", err)
	}

	if len(result.Conflicts) > 0 {
		s.mu.Lock()
		s.conflicts = result.Conflicts
		s.pending = &pendingCycle{ref: ref, base: base, local: local, remote: remote, merged: result.Merged}
		s.state = models.SyncIdle
		s.mu.Unlock()

		s.logger.Warn().Int("conflicts", len(result.Conflicts)).Msg("sync halted pending conflict resolution")
		return ErrConflictsPending
	}

	return s.commitMerge(ctx, ref, result.Merged)
}

// fetchRemote downloads, decompresses and deserializes the remote snapshot.
// A missing object (brand-new file, or a ref whose ID is still empty) yields
// an empty snapshot rather than an error.
func (s *clientSyncService) fetchRemote(ctx context.Context, ref models.RemoteFileRef) (models.Snapshot, error) {
	if !ref.Exists() {
		return models.EmptySnapshot(s.now()), nil
	}

	blob, err := s.drive.Download(ctx, ref)
	switch {
	case errors.Is(err, adapter.ErrNotFound):
		return models.EmptySnapshot(s.now()), nil
	case errors.Is(err, adapter.ErrSessionExpired):
		s.enterAwaitingReconnect()
		return models.Snapshot{}, ErrAwaitingReconnect
	case err != nil:
		s.setState(models.SyncError)
		return models.Snapshot{}, fmt.Errorf("sync: download: %w", err)
	}

	text, err := codec.Decompress(blob)
	if err != nil {
		s.setState(models.SyncError)
		return models.Snapshot{}, fmt.Errorf("sync: %w", err)
	}
	remote, err := DeserializeSnapshot(text)
	if err != nil {
		s.setState(models.SyncError)
		return models.Snapshot{}, fmt.Errorf("sync: %w", err)
	}
	return remote, nil
}

// commitMerge performs steps the cycle shares between the no-conflict path
// and conflict resolution: adopt the merged snapshot locally, upload it, and
// record it as the new baseline. The local replace happens first so a failed
// upload leaves the device ahead of the remote, which the next cycle repairs;
// the baseline is only advanced after the upload succeeds, so nothing is ever
// recorded as synced that the remote never saw.
func (s *clientSyncService) commitMerge(ctx context.Context, ref models.RemoteFileRef, merged models.Snapshot) error {
	if err := s.cache.ReplaceSnapshot(ctx, merged); err != nil {
		s.setState(models.SyncError)
		return fmt.Errorf("sync: commit local: %w", err)
	}

	text, err := SerializeSnapshot(merged)
	if err != nil {
		s.setState(models.SyncError)
		return fmt.Errorf("sync: %w", err)
	}
	blob, err := codec.Compress(text)
	if err != nil {
		s.setState(models.SyncError)
		return fmt.Errorf("sync: %w", err)
	}

	uploadedRef, err := s.drive.Upload(ctx, ref, blob)
	switch {
	case errors.Is(err, adapter.ErrSessionExpired):
		s.enterAwaitingReconnect()
		return ErrAwaitingReconnect
	case err != nil:
		s.setState(models.SyncError)
		return fmt.Errorf("sync: upload: %w", err)
	}

	// First upload of a new file assigns the drive ID; persist it so later
	// cycles target the same object.
	if err := s.cache.SaveRemoteRef(ctx, uploadedRef); err != nil {
		s.setState(models.SyncError)
		return fmt.Errorf("sync: persist remote ref: %w", err)
	}
	if err := s.cache.SaveBaseline(ctx, merged); err != nil {
		s.setState(models.SyncError)
		return fmt.Errorf("sync: persist baseline: %w", err)
	}

	s.mu.Lock()
	s.remoteRef = uploadedRef
	s.hasRemoteRef = true
	s.conflicts = nil
	s.pending = nil
	s.lastSyncedAt = s.now()
	s.state = models.SyncSynced
	s.mu.Unlock()

	s.logger.Info().Str("file", uploadedRef.Name).Int64("last_modified", merged.LastModified).Msg("sync cycle committed")
	return nil
}

// ResolveConflicts implements ClientSyncService.
//
// Resolution is bulk: the direction applies to every outstanding conflict of
// the most recent cycle, then the halted cycle's commit completes. Calling
// with no pending conflicts is a no-op.
func (s *clientSyncService) ResolveConflicts(ctx context.Context, direction models.ResolveDirection) error {
	if !s.syncing.CompareAndSwap(false, true) {
		return ErrSyncInProgress
	}
	defer s.syncing.Store(false)

	s.mu.Lock()
	pending := s.pending
	conflicts := s.conflicts
	s.mu.Unlock()

	if pending == nil || len(conflicts) == 0 {
		return nil
	}

	var merged models.Snapshot
	switch direction {
	case models.ResolveRemote:
		// The provisional merge already holds every remote version.
		merged = pending.merged

	case models.ResolveLocal:
		preferLocal := make(map[string]struct{}, len(conflicts))
		for _, c := range conflicts {
			preferLocal[c.Key()] = struct{}{}
		}
		result, err := s.merger.MergeWithPreference(ctx, pending.base, pending.local, pending.remote, preferLocal)
		if err != nil {
			s.setState(models.SyncError)
			return fmt.Errorf("resolve conflicts: %w", err)
		}
		merged = result.Merged

	default:
		return fmt.Errorf("resolve conflicts: unknown direction %q", direction)
	}

	s.logger.Info().Str("direction", string(direction)).Int("conflicts", len(conflicts)).Msg("resolving conflicts")
	return s.commitMerge(ctx, pending.ref, merged)
}

// NotifyReauthenticated implements ClientSyncService.
func (s *clientSyncService) NotifyReauthenticated(ctx context.Context, token string) error {
	s.drive.SetToken(token)

	account, err := s.drive.GetAccountInfo(ctx)
	if err != nil {
		s.drive.SetToken("")
		return fmt.Errorf("reauthenticate: %w", err)
	}

	s.mu.Lock()
	s.account = account
	if s.state == models.SyncAwaitingReconnect {
		s.state = models.SyncIdle
	}
	s.mu.Unlock()

	s.logger.Info().Str("email", account.Email).Msg("session restored, running catch-up sync")
	return s.PerformSync(ctx)
}

// DisconnectAndReset implements ClientSyncService.
func (s *clientSyncService) DisconnectAndReset(ctx context.Context) error {
	if err := s.cache.ClearAll(ctx); err != nil {
		return fmt.Errorf("disconnect: %w", err)
	}
	s.drive.SetToken("")

	s.mu.Lock()
	s.state = models.SyncOffline
	s.account = models.AccountInfo{}
	s.remoteRef = models.RemoteFileRef{}
	s.hasRemoteRef = false
	s.conflicts = nil
	s.pending = nil
	s.lastSyncedAt = 0
	s.mu.Unlock()

	s.logger.Info().Msg("disconnected from drive, local cache cleared")
	return nil
}

// NoteLocalChange implements ClientSyncService.
func (s *clientSyncService) NoteLocalChange() {
	s.mu.Lock()
	if s.state == models.SyncSynced {
		s.state = models.SyncIdle
	}
	s.mu.Unlock()
}

// State implements ClientSyncService.
func (s *clientSyncService) State() models.SyncState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Conflicts implements ClientSyncService. The returned slice is a copy.
func (s *clientSyncService) Conflicts() []models.Conflict {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Conflict, len(s.conflicts))
	copy(out, s.conflicts)
	return out
}

// LastSyncedAt implements ClientSyncService.
func (s *clientSyncService) LastSyncedAt() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSyncedAt
}

// Account implements ClientSyncService.
func (s *clientSyncService) Account() models.AccountInfo {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.account
}

// RemoteFile implements ClientSyncService.
func (s *clientSyncService) RemoteFile() models.RemoteFileRef {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.remoteRef
}

func (s *clientSyncService) setState(state models.SyncState) {
	s.mu.Lock()
	s.state = state
	s.mu.Unlock()
}

// enterAwaitingReconnect marks the session as lapsed. No sync attempt runs
// until NotifyReauthenticated delivers a fresh token; there is no automatic
// retry of authentication.
func (s *clientSyncService) enterAwaitingReconnect() {
	s.setState(models.SyncAwaitingReconnect)
	s.logger.Warn().Msg("session expired, awaiting reconnect")
}
