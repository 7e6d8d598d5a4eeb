// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store implements the client's local durable cache: the collections
// the UI edits, the last-synced baseline snapshot, and the remote file
// reference, all persisted in one SQLite database.
//
// The cache is the engine's source of local truth. Every record mutation
// advances the watermark (the maximum updated_at across all records)
// synchronously in the same transaction, so the sync orchestrator can detect
// unsynced changes without scanning collections.
package store

import (
	"context"

	"github.com/MKhiriev/recipe-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/local_store_mock.go -package=mock

// LocalStore is the collection-oriented persistent cache underneath the sync
// engine.
type LocalStore interface {
	// GetSnapshot reads all collections into one snapshot. LastModified is
	// the current watermark (or the read time when the cache is empty).
	GetSnapshot(ctx context.Context) (models.Snapshot, error)

	// ReplaceSnapshot atomically replaces every collection with the given
	// snapshot's contents. Used both for "adopt remote as local" and for
	// "commit merged result". Watermark observers are not notified: the
	// caller is the sync engine itself.
	ReplaceSnapshot(ctx context.Context, snapshot models.Snapshot) error

	// SaveRecord inserts or updates one record. An empty rec.ID gets a fresh
	// UUID, a zero rec.UpdatedAt gets the current time. Returns the stored
	// record and notifies watermark observers.
	SaveRecord(ctx context.Context, collection string, rec models.Record) (models.Record, error)

	// DeleteRecord soft-deletes a record: flips its deleted flag and bumps
	// updated_at to at. Fails with [ErrRecordNotFound] when the record does
	// not exist. Notifies watermark observers.
	DeleteRecord(ctx context.Context, collection, id string, at int64) error

	// Watermark returns the maximum updated_at across all records, or zero
	// when the cache is empty.
	Watermark(ctx context.Context) (int64, error)

	// OnWatermarkChange registers a callback invoked (on the mutating
	// goroutine) after every record create/update/delete with the new
	// watermark. The returned function unregisters the callback.
	OnWatermarkChange(fn func(watermark int64)) (unsubscribe func())

	// Baseline returns the last persisted baseline snapshot. The boolean is
	// false when no baseline has been recorded yet.
	Baseline(ctx context.Context) (models.Snapshot, bool, error)

	// SaveBaseline persists snapshot as the new baseline.
	SaveBaseline(ctx context.Context, snapshot models.Snapshot) error

	// RemoteRef returns the persisted remote file reference. The boolean is
	// false when no file has been selected yet.
	RemoteRef(ctx context.Context) (models.RemoteFileRef, bool, error)

	// SaveRemoteRef persists the remote file reference.
	SaveRemoteRef(ctx context.Context, ref models.RemoteFileRef) error

	// ClearAll wipes records, baseline and remote ref. Used when switching
	// to a different remote file or fully disconnecting.
	ClearAll(ctx context.Context) error
}
