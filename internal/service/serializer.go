// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/recipe-keeper/models"
)

// The snapshot wire format flattens the collections to the top level:
//
//	{ "recipes": [...], "mealplans": [...], ..., "lastModified": n, "version": n }
//
// encoding/json sorts map keys, so serialization is stable for equal input.

// SerializeSnapshot renders snapshot in the wire format.
func SerializeSnapshot(snapshot models.Snapshot) (string, error) {
	doc := make(map[string]any, len(snapshot.Collections)+2)
	for _, name := range models.CollectionNames() {
		records := snapshot.Collections[name]
		if records == nil {
			records = []models.Record{}
		}
		doc[name] = records
	}
	doc["lastModified"] = snapshot.LastModified
	doc["version"] = snapshot.Version

	raw, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("serialize snapshot: %w", err)
	}
	return string(raw), nil
}

// DeserializeSnapshot parses the wire format back into a snapshot. Structural
// problems fail with an error wrapping [ErrSchema]; values are never coerced.
func DeserializeSnapshot(text string) (models.Snapshot, error) {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal([]byte(text), &doc); err != nil {
		return models.Snapshot{}, fmt.Errorf("%w: malformed document: %w", ErrSchema, err)
	}

	snapshot := models.Snapshot{
		Collections: make(map[string][]models.Record, len(models.CollectionNames())),
	}

	for _, name := range models.CollectionNames() {
		raw, ok := doc[name]
		if !ok {
			return models.Snapshot{}, fmt.Errorf("%w: missing collection %q", ErrSchema, name)
		}
		var records []models.Record
		if err := json.Unmarshal(raw, &records); err != nil {
			return models.Snapshot{}, fmt.Errorf("%w: collection %q: %w", ErrSchema, name, err)
		}
		if records == nil {
			records = []models.Record{}
		}
		snapshot.Collections[name] = records
	}

	lastModified, err := requireInt64(doc, "lastModified")
	if err != nil {
		return models.Snapshot{}, err
	}
	version, err := requireInt64(doc, "version")
	if err != nil {
		return models.Snapshot{}, err
	}

	snapshot.LastModified = lastModified
	snapshot.Version = int(version)
	return snapshot, nil
}

func requireInt64(doc map[string]json.RawMessage, key string) (int64, error) {
	raw, ok := doc[key]
	if !ok {
		return 0, fmt.Errorf("%w: missing field %q", ErrSchema, key)
	}
	var value int64
	if err := json.Unmarshal(raw, &value); err != nil {
		return 0, fmt.Errorf("%w: field %q is not an integer: %w", ErrSchema, key, err)
	}
	return value, nil
}
