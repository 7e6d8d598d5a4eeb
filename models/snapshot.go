// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Names of the syncable collections. The set is fixed: a snapshot always
// carries all five, even when some are empty.
const (
	CollectionRecipes      = "recipes"
	CollectionMealPlans    = "mealplans"
	CollectionIngredients  = "ingredients"
	CollectionGroceryLists = "grocerylists"
	CollectionGroceryItems = "groceryitems"
)

// SnapshotVersion is the current version of the snapshot wire format.
const SnapshotVersion = 1

// CollectionNames returns the fixed collection set in canonical order.
// Callers must not mutate the returned slice.
func CollectionNames() []string {
	return []string{
		CollectionRecipes,
		CollectionMealPlans,
		CollectionIngredients,
		CollectionGroceryLists,
		CollectionGroceryItems,
	}
}

// Snapshot is a complete point-in-time capture of every collection. One and
// the same shape serves three roles during a sync cycle: the current local
// state, the last-synced baseline, and the freshly downloaded remote state.
type Snapshot struct {
	// Collections maps collection name to its full record set. Contains
	// exactly the keys from CollectionNames.
	Collections map[string][]Record

	// LastModified is the maximum UpdatedAt across all contained records,
	// or the snapshot-creation time when the snapshot is empty.
	LastModified int64

	// Version is the wire-format version, SnapshotVersion for snapshots
	// produced by this build.
	Version int
}

// EmptySnapshot returns a snapshot with all collections present and empty.
// now is used as LastModified since there are no records to derive it from.
func EmptySnapshot(now int64) Snapshot {
	collections := make(map[string][]Record, len(CollectionNames()))
	for _, name := range CollectionNames() {
		collections[name] = []Record{}
	}
	return Snapshot{Collections: collections, LastModified: now, Version: SnapshotVersion}
}

// IsEmpty reports whether the snapshot contains no records at all.
func (s Snapshot) IsEmpty() bool {
	for _, records := range s.Collections {
		if len(records) > 0 {
			return false
		}
	}
	return true
}

// MaxUpdatedAt returns the maximum UpdatedAt across all records, or zero for
// an empty snapshot.
func (s Snapshot) MaxUpdatedAt() int64 {
	var max int64
	for _, records := range s.Collections {
		for _, rec := range records {
			if rec.UpdatedAt > max {
				max = rec.UpdatedAt
			}
		}
	}
	return max
}

// Normalize recomputes LastModified from the contained records and stamps the
// current wire-format version. now is used when the snapshot is empty.
func (s *Snapshot) Normalize(now int64) {
	if max := s.MaxUpdatedAt(); max > 0 {
		s.LastModified = max
	} else {
		s.LastModified = now
	}
	s.Version = SnapshotVersion
}
