package models

// MergeResult is the outcome of a three-way reconciliation: the merged
// snapshot plus the conflicts the merge could not decide on its own.
//
// When Conflicts is non-empty the merged snapshot provisionally holds the
// remote version of every conflicting record; nothing is committed until the
// conflicts are resolved.
type MergeResult struct {
	Merged    Snapshot
	Conflicts []Conflict
}
