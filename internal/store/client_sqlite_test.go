// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/recipe-keeper/internal/logger"
	"github.com/MKhiriev/recipe-keeper/migrations"
	"github.com/MKhiriev/recipe-keeper/models"
)

// newTestStore создаёт стор поверх чистой in-memory базы
func newTestStore(t *testing.T) LocalStore {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, migrations.Migrate(db))
	return NewLocalStore(db, logger.Nop())
}

// ── SaveRecord / GetSnapshot ─────────────────────────────────────────────────

func TestSaveRecord_AssignsIDAndTimestamp(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	rec, err := s.SaveRecord(ctx, models.CollectionRecipes, models.Record{
		Fields: map[string]any{"name": "Borscht"},
	})
	require.NoError(t, err)

	assert.NotEmpty(t, rec.ID)
	assert.Positive(t, rec.UpdatedAt)
	assert.False(t, rec.Deleted)
}

func TestSaveRecord_RoundTripsThroughSnapshot(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	saved, err := s.SaveRecord(ctx, models.CollectionIngredients, models.Record{
		ID:        "i1",
		Fields:    map[string]any{"name": "beetroot", "unit": "kg"},
		UpdatedAt: 100,
	})
	require.NoError(t, err)

	snapshot, err := s.GetSnapshot(ctx)
	require.NoError(t, err)

	require.Len(t, snapshot.Collections[models.CollectionIngredients], 1)
	got := snapshot.Collections[models.CollectionIngredients][0]
	assert.True(t, saved.Equal(got), "stored %+v, read back %+v", saved, got)

	// остальные коллекции присутствуют, но пусты
	for _, name := range models.CollectionNames() {
		_, ok := snapshot.Collections[name]
		assert.True(t, ok, "collection %s missing", name)
	}
}

func TestSaveRecord_UnknownCollection(t *testing.T) {
	s := newTestStore(t)

	_, err := s.SaveRecord(context.Background(), "pets", models.Record{ID: "p1"})
	assert.ErrorIs(t, err, ErrUnknownCollection)
}

func TestGetSnapshot_EmptyCache(t *testing.T) {
	s := newTestStore(t)

	snapshot, err := s.GetSnapshot(context.Background())
	require.NoError(t, err)

	assert.True(t, snapshot.IsEmpty())
	assert.Positive(t, snapshot.LastModified, "empty snapshot carries creation time")
	assert.Equal(t, models.SnapshotVersion, snapshot.Version)
}

// ── DeleteRecord ─────────────────────────────────────────────────────────────

func TestDeleteRecord_SoftDeletes(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.SaveRecord(ctx, models.CollectionRecipes, models.Record{ID: "r1", UpdatedAt: 100})
	require.NoError(t, err)

	require.NoError(t, s.DeleteRecord(ctx, models.CollectionRecipes, "r1", 200))

	snapshot, err := s.GetSnapshot(ctx)
	require.NoError(t, err)

	// запись не удалена физически — это tombstone
	require.Len(t, snapshot.Collections[models.CollectionRecipes], 1)
	got := snapshot.Collections[models.CollectionRecipes][0]
	assert.True(t, got.Deleted)
	assert.EqualValues(t, 200, got.UpdatedAt)
}

func TestDeleteRecord_NotFound(t *testing.T) {
	s := newTestStore(t)

	err := s.DeleteRecord(context.Background(), models.CollectionRecipes, "ghost", 100)
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

// ── Watermark / observers ────────────────────────────────────────────────────

func TestWatermark_AdvancesWithMutations(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	w, err := s.Watermark(ctx)
	require.NoError(t, err)
	assert.Zero(t, w)

	_, err = s.SaveRecord(ctx, models.CollectionRecipes, models.Record{ID: "r1", UpdatedAt: 100})
	require.NoError(t, err)

	w, err = s.Watermark(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 100, w)

	require.NoError(t, s.DeleteRecord(ctx, models.CollectionRecipes, "r1", 250))

	w, err = s.Watermark(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 250, w)
}

func TestOnWatermarkChange_NotifiesAndUnsubscribes(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	var seen []int64
	unsubscribe := s.OnWatermarkChange(func(w int64) { seen = append(seen, w) })

	_, err := s.SaveRecord(ctx, models.CollectionRecipes, models.Record{ID: "r1", UpdatedAt: 100})
	require.NoError(t, err)
	_, err = s.SaveRecord(ctx, models.CollectionRecipes, models.Record{ID: "r2", UpdatedAt: 150})
	require.NoError(t, err)

	require.Equal(t, []int64{100, 150}, seen)

	unsubscribe()
	_, err = s.SaveRecord(ctx, models.CollectionRecipes, models.Record{ID: "r3", UpdatedAt: 999})
	require.NoError(t, err)
	assert.Len(t, seen, 2, "no notifications after unsubscribe")
}

func TestReplaceSnapshot_DoesNotNotifyObservers(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	notified := 0
	s.OnWatermarkChange(func(int64) { notified++ })

	snapshot := models.EmptySnapshot(100)
	snapshot.Collections[models.CollectionRecipes] = []models.Record{{ID: "r1", UpdatedAt: 100}}
	require.NoError(t, s.ReplaceSnapshot(ctx, snapshot))

	assert.Zero(t, notified, "sync commits must not re-trigger the scheduler")
}

// ── ReplaceSnapshot ──────────────────────────────────────────────────────────

func TestReplaceSnapshot_ReplacesEverything(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.SaveRecord(ctx, models.CollectionRecipes, models.Record{ID: "old", UpdatedAt: 50})
	require.NoError(t, err)

	snapshot := models.EmptySnapshot(300)
	snapshot.Collections[models.CollectionRecipes] = []models.Record{{ID: "new-1", UpdatedAt: 300}}
	snapshot.Collections[models.CollectionGroceryItems] = []models.Record{{ID: "g-1", UpdatedAt: 200, Deleted: true}}
	require.NoError(t, s.ReplaceSnapshot(ctx, snapshot))

	got, err := s.GetSnapshot(ctx)
	require.NoError(t, err)

	require.Len(t, got.Collections[models.CollectionRecipes], 1)
	assert.Equal(t, "new-1", got.Collections[models.CollectionRecipes][0].ID)
	require.Len(t, got.Collections[models.CollectionGroceryItems], 1)
	assert.True(t, got.Collections[models.CollectionGroceryItems][0].Deleted)
}

// ── Baseline / RemoteRef / ClearAll ──────────────────────────────────────────

func TestBaseline_PersistsAndReads(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, ok, err := s.Baseline(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	baseline := models.EmptySnapshot(100)
	baseline.Collections[models.CollectionRecipes] = []models.Record{
		{ID: "r1", Fields: map[string]any{"name": "Borscht"}, UpdatedAt: 100},
	}
	require.NoError(t, s.SaveBaseline(ctx, baseline))

	got, ok, err := s.Baseline(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.EqualValues(t, 100, got.LastModified)
	require.Len(t, got.Collections[models.CollectionRecipes], 1)
	assert.Equal(t, "r1", got.Collections[models.CollectionRecipes][0].ID)
}

func TestRemoteRef_PersistsAndReads(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, ok, err := s.RemoteRef(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	ref := models.RemoteFileRef{ID: "f-100", Name: "family.rcpbk.json.gz", Path: "/", Shared: true, ShareURL: "https://drive.example.com/s/abc"}
	require.NoError(t, s.SaveRemoteRef(ctx, ref))

	got, ok, err := s.RemoteRef(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, ref, got)
}

func TestClearAll_WipesRecordsAndMeta(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.SaveRecord(ctx, models.CollectionRecipes, models.Record{ID: "r1", UpdatedAt: 100})
	require.NoError(t, err)
	require.NoError(t, s.SaveRemoteRef(ctx, models.RemoteFileRef{ID: "f-1", Name: "a.rcpbk.json.gz"}))
	require.NoError(t, s.SaveBaseline(ctx, models.EmptySnapshot(100)))

	require.NoError(t, s.ClearAll(ctx))

	snapshot, err := s.GetSnapshot(ctx)
	require.NoError(t, err)
	assert.True(t, snapshot.IsEmpty())

	_, ok, err := s.RemoteRef(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = s.Baseline(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}
