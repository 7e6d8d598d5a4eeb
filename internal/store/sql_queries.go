// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

// SQLite uses ? placeholders, squirrel's default.
var queryBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func buildSelectAllRecordsQuery() (string, []any, error) {
	query, args, err := queryBuilder.
		Select("collection", "id", "fields", "updated_at", "deleted").
		From("records").
		OrderBy("collection", "id").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: select all records: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildUpsertRecordQuery(collection, id, fields string, updatedAt int64, deleted bool) (string, []any, error) {
	query, args, err := queryBuilder.
		Insert("records").
		Columns("collection", "id", "fields", "updated_at", "deleted").
		Values(collection, id, fields, updatedAt, deleted).
		Suffix(`ON CONFLICT(collection, id) DO UPDATE SET
			fields = excluded.fields,
			updated_at = excluded.updated_at,
			deleted = excluded.deleted`).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: upsert record: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildSoftDeleteRecordQuery(collection, id string, at int64) (string, []any, error) {
	query, args, err := queryBuilder.
		Update("records").
		Set("deleted", true).
		Set("updated_at", at).
		Where(sq.Eq{"collection": collection, "id": id}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: soft delete record: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildSelectWatermarkQuery() (string, []any, error) {
	query, args, err := queryBuilder.
		Select("COALESCE(MAX(updated_at), 0)").
		From("records").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: select watermark: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildSelectMetaQuery(key string) (string, []any, error) {
	query, args, err := queryBuilder.
		Select("value").
		From("meta").
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: select meta: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildUpsertMetaQuery(key, value string) (string, []any, error) {
	query, args, err := queryBuilder.
		Insert("meta").
		Columns("key", "value").
		Values(key, value).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: upsert meta: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
