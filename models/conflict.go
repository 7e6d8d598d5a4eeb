// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Conflict describes a record that was modified both locally and remotely
// since the last synced baseline, with differing results.
//
// Conflicts are ephemeral: the merge produces a fresh list every cycle, and
// the list is discarded once resolved or superseded by a later cycle. They
// are never persisted across restarts.
type Conflict struct {
	// ID is the conflicting record's ID.
	ID string

	// Collection names the collection the record belongs to.
	Collection string

	// DisplayName is the human-readable name shown in the resolution UI.
	DisplayName string

	// LocalModified is the local record's UpdatedAt.
	LocalModified int64

	// RemoteModified is the remote record's UpdatedAt.
	RemoteModified int64
}

// Key returns the collection-qualified identity of the conflicting record,
// unique across the whole snapshot.
func (c Conflict) Key() string {
	return c.Collection + "/" + c.ID
}

// ResolveDirection selects which side wins when resolving outstanding
// conflicts. Resolution is bulk: one direction applies to every conflict of
// the most recent cycle.
type ResolveDirection string

const (
	// ResolveLocal keeps the local version of every conflicting record.
	ResolveLocal ResolveDirection = "local"

	// ResolveRemote accepts the remote version of every conflicting record.
	ResolveRemote ResolveDirection = "remote"
)
