package service

import (
	"context"
	"sort"

	"github.com/MKhiriev/recipe-keeper/models"
)

// mergeService is the concrete implementation of MergeService.
// It performs a purely in-memory three-way comparison of snapshots; no
// storage layer or logger is required because the operation is stateless and
// produces no side effects. That keeps it exercisable by property tests
// without any provider or store.
type mergeService struct{}

// NewMergeService constructs a MergeService ready for use.
// Because the merge is a stateless, in-memory operation, no dependencies
// (storage, config, logger) are needed.
func NewMergeService() MergeService {
	return &mergeService{}
}

// Merge implements MergeService. See MergeWithPreference; a nil preference
// set means every undecidable divergence becomes a conflict.
func (m *mergeService) Merge(ctx context.Context, base, local, remote models.Snapshot) (models.MergeResult, error) {
	return m.MergeWithPreference(ctx, base, local, remote, nil)
}

// MergeWithPreference implements MergeService.
//
// Collections are reconciled independently, in canonical order, over the
// union of record IDs present in local and remote. Each ID is classified
// against its base record (absence in base means "no prior state"):
//
//   - unchanged on both sides: take either, no conflict;
//   - changed only locally: take local (the upload set);
//   - changed only remotely: take remote (the adoption set);
//   - changed on both sides with identical results: take either, no
//     conflict - independent edits that agree are not a divergence;
//   - changed on both sides with differing results: a conflict, unless the
//     record's key is in preferLocal (then local wins silently). The merged
//     snapshot provisionally holds the remote version; the caller must not
//     commit anything while conflicts are outstanding.
//
// A soft delete is an ordinary field-level change, so delete-vs-edit
// collisions surface as content conflicts like any other.
//
// ctx cancellation is checked once per collection so that callers can abort
// early on large datasets.
func (m *mergeService) MergeWithPreference(
	ctx context.Context,
	base, local, remote models.Snapshot,
	preferLocal map[string]struct{},
) (models.MergeResult, error) {
	merged := models.Snapshot{
		Collections: make(map[string][]models.Record, len(models.CollectionNames())),
	}
	var conflicts []models.Conflict

	for _, collection := range models.CollectionNames() {
		if err := ctx.Err(); err != nil {
			return models.MergeResult{}, err
		}

		baseIndex := indexRecords(base.Collections[collection])
		localIndex := indexRecords(local.Collections[collection])
		remoteIndex := indexRecords(remote.Collections[collection])

		mergedRecords := make([]models.Record, 0, len(localIndex)+len(remoteIndex))
		for _, id := range unionIDs(localIndex, remoteIndex) {
			baseRec, inBase := baseIndex[id]
			localRec, inLocal := localIndex[id]
			remoteRec, inRemote := remoteIndex[id]

			// ── One-sided presence: nothing to reconcile ────────────────
			if !inRemote {
				mergedRecords = append(mergedRecords, localRec)
				continue
			}
			if !inLocal {
				mergedRecords = append(mergedRecords, remoteRec)
				continue
			}

			localChanged := !inBase || !localRec.Equal(baseRec)
			remoteChanged := !inBase || !remoteRec.Equal(baseRec)

			switch {
			case !localChanged && !remoteChanged:
				mergedRecords = append(mergedRecords, localRec)

			case localChanged && !remoteChanged:
				mergedRecords = append(mergedRecords, localRec)

			case !localChanged && remoteChanged:
				mergedRecords = append(mergedRecords, remoteRec)

			case localRec.Equal(remoteRec):
				// Independent edits with identical results.
				mergedRecords = append(mergedRecords, localRec)

			default:
				if _, preferred := preferLocal[conflictKey(collection, id)]; preferred {
					mergedRecords = append(mergedRecords, localRec)
					continue
				}

				// Remote wins provisionally; the cycle halts before commit.
				mergedRecords = append(mergedRecords, remoteRec)
				conflicts = append(conflicts, models.Conflict{
					ID:             id,
					Collection:     collection,
					DisplayName:    localRec.DisplayName(),
					LocalModified:  localRec.UpdatedAt,
					RemoteModified: remoteRec.UpdatedAt,
				})
			}
		}

		merged.Collections[collection] = mergedRecords
	}

	merged.Version = models.SnapshotVersion
	if max := merged.MaxUpdatedAt(); max > 0 {
		merged.LastModified = max
	} else {
		// No records anywhere: fall back to the freshest input timestamp so
		// the result stays deterministic without consulting a clock.
		merged.LastModified = max3(base.LastModified, local.LastModified, remote.LastModified)
	}

	return models.MergeResult{Merged: merged, Conflicts: conflicts}, nil
}

func indexRecords(records []models.Record) map[string]models.Record {
	index := make(map[string]models.Record, len(records))
	for _, rec := range records {
		index[rec.ID] = rec
	}
	return index
}

// unionIDs returns the sorted union of the two indexes' keys. Sorting keeps
// the merge deterministic regardless of map iteration order.
func unionIDs(local, remote map[string]models.Record) []string {
	seen := make(map[string]struct{}, len(local)+len(remote))
	ids := make([]string, 0, len(local)+len(remote))
	for id := range local {
		if _, ok := seen[id]; !ok {
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}
	for id := range remote {
		if _, ok := seen[id]; !ok {
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}

func conflictKey(collection, id string) string {
	return collection + "/" + id
}

func max3(a, b, c int64) int64 {
	if b > a {
		a = b
	}
	if c > a {
		a = c
	}
	return a
}
