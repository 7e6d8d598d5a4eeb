package models

import "reflect"

// Record is a single syncable entity inside one of the collections: a recipe,
// a meal plan, an ingredient, a grocery list or a grocery list item.
//
// ID is immutable and unique within its collection. Deletion never removes the
// record; it flips Deleted and bumps UpdatedAt, so every device that syncs
// later can observe the tombstone.
type Record struct {
	// ID is the client-assigned UUID of the record. Never changes.
	ID string `json:"id"`

	// Fields holds the domain payload (name, servings, quantities, ...).
	// The sync engine treats it as an opaque document.
	Fields map[string]any `json:"fields"`

	// UpdatedAt is a unix-milliseconds timestamp, monotonic per record.
	UpdatedAt int64 `json:"updatedAt"`

	// Deleted marks the record as soft-deleted.
	Deleted bool `json:"deleted"`
}

// Equal reports whether two records are identical in all four attributes,
// including a deep comparison of the domain payload.
func (r Record) Equal(other Record) bool {
	return r.ID == other.ID &&
		r.UpdatedAt == other.UpdatedAt &&
		r.Deleted == other.Deleted &&
		reflect.DeepEqual(r.Fields, other.Fields)
}

// DisplayName returns the record's "name" field when present, falling back to
// the record ID. Used when presenting conflicts to the user.
func (r Record) DisplayName() string {
	if name, ok := r.Fields["name"].(string); ok && name != "" {
		return name
	}
	return r.ID
}
