// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_buildSelectAllRecordsQuery_SQLContainsParts(t *testing.T) {
	query, args, err := buildSelectAllRecordsQuery()
	require.NoError(t, err)
	require.Empty(t, args)

	q := strings.ToLower(query)

	require.Contains(t, q, "select")
	require.Contains(t, q, "from records")
	require.Contains(t, q, "order by")

	// columns presence (key columns)
	for _, col := range []string{"collection", "id", "fields", "updated_at", "deleted"} {
		require.Contains(t, q, col)
	}
}

func Test_buildUpsertRecordQuery(t *testing.T) {
	query, args, err := buildUpsertRecordQuery("recipes", "r1", `{"name":"Borscht"}`, 100, false)
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.Contains(t, q, "insert into records")
	require.Contains(t, q, "on conflict(collection, id) do update")

	// placeholder format should be ? (SQLite)
	assert.Contains(t, query, "?")
	assert.NotContains(t, query, "$1")

	require.Len(t, args, 5)
	assert.Equal(t, "recipes", args[0])
	assert.Equal(t, "r1", args[1])
	assert.EqualValues(t, 100, args[3])
}

func Test_buildSoftDeleteRecordQuery(t *testing.T) {
	query, args, err := buildSoftDeleteRecordQuery("recipes", "r1", 200)
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.Contains(t, q, "update records")
	require.Contains(t, q, "set deleted")
	require.Contains(t, q, "where")

	assert.ElementsMatch(t, []any{true, int64(200), "recipes", "r1"}, args)
}

func Test_buildUpsertMetaQuery(t *testing.T) {
	query, args, err := buildUpsertMetaQuery("baseline", `{}`)
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.Contains(t, q, "insert into meta")
	require.Contains(t, q, "on conflict(key) do update")
	require.Len(t, args, 2)
}
