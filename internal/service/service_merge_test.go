// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/recipe-keeper/models"
)

func snapshotWith(collection string, records ...models.Record) models.Snapshot {
	s := models.EmptySnapshot(0)
	s.Collections[collection] = records
	s.Normalize(0)
	return s
}

func recordByID(t *testing.T, s models.Snapshot, collection, id string) models.Record {
	t.Helper()
	for _, rec := range s.Collections[collection] {
		if rec.ID == id {
			return rec
		}
	}
	t.Fatalf("record %s/%s not found in snapshot", collection, id)
	return models.Record{}
}

// ── Классификация записей ────────────────────────────────────────────────────

func TestMerge_LocalOnlyChange_TakesLocal(t *testing.T) {
	// Scenario: запись отредактирована только локально, remote совпадает с base
	base := snapshotWith(models.CollectionRecipes,
		models.Record{ID: "r1", Fields: map[string]any{"name": "Borscht"}, UpdatedAt: 100})
	local := snapshotWith(models.CollectionRecipes,
		models.Record{ID: "r1", Fields: map[string]any{"name": "Borscht deluxe"}, UpdatedAt: 150})
	remote := snapshotWith(models.CollectionRecipes,
		models.Record{ID: "r1", Fields: map[string]any{"name": "Borscht"}, UpdatedAt: 100})

	result, err := NewMergeService().Merge(context.Background(), base, local, remote)
	require.NoError(t, err)

	assert.Empty(t, result.Conflicts)
	merged := recordByID(t, result.Merged, models.CollectionRecipes, "r1")
	assert.Equal(t, "Borscht deluxe", merged.Fields["name"])
	assert.EqualValues(t, 150, result.Merged.LastModified)
}

func TestMerge_RemoteOnlyChange_TakesRemote(t *testing.T) {
	base := snapshotWith(models.CollectionIngredients,
		models.Record{ID: "i1", Fields: map[string]any{"name": "salt"}, UpdatedAt: 100})
	local := snapshotWith(models.CollectionIngredients,
		models.Record{ID: "i1", Fields: map[string]any{"name": "salt"}, UpdatedAt: 100})
	remote := snapshotWith(models.CollectionIngredients,
		models.Record{ID: "i1", Fields: map[string]any{"name": "sea salt"}, UpdatedAt: 140})

	result, err := NewMergeService().Merge(context.Background(), base, local, remote)
	require.NoError(t, err)

	assert.Empty(t, result.Conflicts)
	merged := recordByID(t, result.Merged, models.CollectionIngredients, "i1")
	assert.Equal(t, "sea salt", merged.Fields["name"])
}

func TestMerge_BothChangedDifferently_EmitsConflict(t *testing.T) {
	// Scenario: обе стороны независимо правили одну запись разными значениями
	base := snapshotWith(models.CollectionIngredients,
		models.Record{ID: "i1", Fields: map[string]any{"name": "flour", "category": "baking"}, UpdatedAt: 100})
	local := snapshotWith(models.CollectionIngredients,
		models.Record{ID: "i1", Fields: map[string]any{"name": "rye flour", "category": "baking"}, UpdatedAt: 200})
	remote := snapshotWith(models.CollectionIngredients,
		models.Record{ID: "i1", Fields: map[string]any{"name": "flour", "category": "pantry"}, UpdatedAt: 180})

	result, err := NewMergeService().Merge(context.Background(), base, local, remote)
	require.NoError(t, err)

	require.Len(t, result.Conflicts, 1)
	conflict := result.Conflicts[0]
	assert.Equal(t, "i1", conflict.ID)
	assert.Equal(t, models.CollectionIngredients, conflict.Collection)
	assert.EqualValues(t, 200, conflict.LocalModified)
	assert.EqualValues(t, 180, conflict.RemoteModified)

	// до разрешения merged предварительно держит удалённую версию
	merged := recordByID(t, result.Merged, models.CollectionIngredients, "i1")
	assert.Equal(t, "pantry", merged.Fields["category"])
}

func TestMerge_IdenticalIndependentEdits_NoConflict(t *testing.T) {
	// обе стороны пришли к одному и тому же значению — расхождения нет
	base := snapshotWith(models.CollectionRecipes,
		models.Record{ID: "r1", Fields: map[string]any{"name": "Okroshka"}, UpdatedAt: 100})
	local := snapshotWith(models.CollectionRecipes,
		models.Record{ID: "r1", Fields: map[string]any{"name": "Okroshka on kefir"}, UpdatedAt: 170})
	remote := snapshotWith(models.CollectionRecipes,
		models.Record{ID: "r1", Fields: map[string]any{"name": "Okroshka on kefir"}, UpdatedAt: 160})

	result, err := NewMergeService().Merge(context.Background(), base, local, remote)
	require.NoError(t, err)

	assert.Empty(t, result.Conflicts)
}

func TestMerge_DeleteVersusEdit_IsContentConflict(t *testing.T) {
	// удаление — обычное изменение полей, коллизия с правкой даёт конфликт
	base := snapshotWith(models.CollectionGroceryLists,
		models.Record{ID: "l1", Fields: map[string]any{"name": "weekend"}, UpdatedAt: 100})
	local := snapshotWith(models.CollectionGroceryLists,
		models.Record{ID: "l1", Fields: map[string]any{"name": "weekend"}, UpdatedAt: 190, Deleted: true})
	remote := snapshotWith(models.CollectionGroceryLists,
		models.Record{ID: "l1", Fields: map[string]any{"name": "weekend big"}, UpdatedAt: 185})

	result, err := NewMergeService().Merge(context.Background(), base, local, remote)
	require.NoError(t, err)

	require.Len(t, result.Conflicts, 1)
	assert.Equal(t, "l1", result.Conflicts[0].ID)
}

func TestMerge_RecordAbsentInBase_OneSidedAdds(t *testing.T) {
	base := models.EmptySnapshot(0)
	local := snapshotWith(models.CollectionRecipes,
		models.Record{ID: "r-local", Fields: map[string]any{"name": "Shchi"}, UpdatedAt: 50})
	remote := snapshotWith(models.CollectionRecipes,
		models.Record{ID: "r-remote", Fields: map[string]any{"name": "Solyanka"}, UpdatedAt: 60})

	result, err := NewMergeService().Merge(context.Background(), base, local, remote)
	require.NoError(t, err)

	assert.Empty(t, result.Conflicts)
	assert.Len(t, result.Merged.Collections[models.CollectionRecipes], 2)
}

// ── Свойства ─────────────────────────────────────────────────────────────────

func TestMerge_Idempotence(t *testing.T) {
	// merged, использованный как новый base, не порождает новых конфликтов
	base := snapshotWith(models.CollectionRecipes,
		models.Record{ID: "r1", Fields: map[string]any{"name": "Kasha"}, UpdatedAt: 100})
	local := snapshotWith(models.CollectionRecipes,
		models.Record{ID: "r1", Fields: map[string]any{"name": "Buckwheat kasha"}, UpdatedAt: 150},
		models.Record{ID: "r2", Fields: map[string]any{"name": "Syrniki"}, UpdatedAt: 160})
	remote := snapshotWith(models.CollectionRecipes,
		models.Record{ID: "r1", Fields: map[string]any{"name": "Kasha"}, UpdatedAt: 100})

	svc := NewMergeService()
	first, err := svc.Merge(context.Background(), base, local, remote)
	require.NoError(t, err)
	require.Empty(t, first.Conflicts)

	second, err := svc.Merge(context.Background(), first.Merged, local, remote)
	require.NoError(t, err)
	assert.Empty(t, second.Conflicts)
}

func TestMerge_NoConflictMonotonicity(t *testing.T) {
	// local == base ⇒ результат совпадает с remote при любом remote
	shared := snapshotWith(models.CollectionMealPlans,
		models.Record{ID: "m1", Fields: map[string]any{"name": "week 34"}, UpdatedAt: 100})

	remotes := []models.Snapshot{
		models.EmptySnapshot(0),
		snapshotWith(models.CollectionMealPlans,
			models.Record{ID: "m1", Fields: map[string]any{"name": "week 35"}, UpdatedAt: 300}),
		snapshotWith(models.CollectionMealPlans,
			models.Record{ID: "m1", Fields: map[string]any{"name": "week 34"}, UpdatedAt: 100},
			models.Record{ID: "m2", Fields: map[string]any{"name": "week 36"}, UpdatedAt: 400}),
	}

	svc := NewMergeService()
	for _, remote := range remotes {
		result, err := svc.Merge(context.Background(), shared, shared, remote)
		require.NoError(t, err)
		assert.Empty(t, result.Conflicts)

		// remote без записи m1 — особый случай: запись есть только локально
		// и не менялась, она сохраняется; иначе результат равен remote
		for _, rec := range remote.Collections[models.CollectionMealPlans] {
			got := recordByID(t, result.Merged, models.CollectionMealPlans, rec.ID)
			assert.True(t, got.Equal(rec))
		}
	}
}

func TestMerge_ConflictSymmetry_AcrossCollections(t *testing.T) {
	// расхождение даёт конфликт независимо от того, в какой коллекции запись
	for _, collection := range models.CollectionNames() {
		t.Run(collection, func(t *testing.T) {
			base := snapshotWith(collection,
				models.Record{ID: "x", Fields: map[string]any{"name": "a"}, UpdatedAt: 100})
			local := snapshotWith(collection,
				models.Record{ID: "x", Fields: map[string]any{"name": "b"}, UpdatedAt: 200})
			remote := snapshotWith(collection,
				models.Record{ID: "x", Fields: map[string]any{"name": "c"}, UpdatedAt: 180})

			result, err := NewMergeService().Merge(context.Background(), base, local, remote)
			require.NoError(t, err)
			require.Len(t, result.Conflicts, 1)
			assert.Equal(t, collection, result.Conflicts[0].Collection)
		})
	}
}

func TestMerge_Deterministic(t *testing.T) {
	base := snapshotWith(models.CollectionRecipes,
		models.Record{ID: "r1", Fields: map[string]any{"name": "Vareniki"}, UpdatedAt: 100},
		models.Record{ID: "r2", Fields: map[string]any{"name": "Draniki"}, UpdatedAt: 110})
	local := snapshotWith(models.CollectionRecipes,
		models.Record{ID: "r2", Fields: map[string]any{"name": "Draniki with sour cream"}, UpdatedAt: 210},
		models.Record{ID: "r1", Fields: map[string]any{"name": "Vareniki"}, UpdatedAt: 100})
	remote := snapshotWith(models.CollectionRecipes,
		models.Record{ID: "r1", Fields: map[string]any{"name": "Vareniki with cherry"}, UpdatedAt: 190},
		models.Record{ID: "r2", Fields: map[string]any{"name": "Draniki"}, UpdatedAt: 110})

	svc := NewMergeService()
	first, err := svc.Merge(context.Background(), base, local, remote)
	require.NoError(t, err)
	second, err := svc.Merge(context.Background(), base, local, remote)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

// ── Предпочтение локальной версии ────────────────────────────────────────────

func TestMergeWithPreference_LocalWinsSilently(t *testing.T) {
	base := snapshotWith(models.CollectionIngredients,
		models.Record{ID: "i1", Fields: map[string]any{"name": "flour"}, UpdatedAt: 100})
	local := snapshotWith(models.CollectionIngredients,
		models.Record{ID: "i1", Fields: map[string]any{"name": "rye flour"}, UpdatedAt: 200})
	remote := snapshotWith(models.CollectionIngredients,
		models.Record{ID: "i1", Fields: map[string]any{"name": "wheat flour"}, UpdatedAt: 180})

	prefer := map[string]struct{}{models.CollectionIngredients + "/i1": {}}

	result, err := NewMergeService().MergeWithPreference(context.Background(), base, local, remote, prefer)
	require.NoError(t, err)

	assert.Empty(t, result.Conflicts)
	merged := recordByID(t, result.Merged, models.CollectionIngredients, "i1")
	assert.Equal(t, "rye flour", merged.Fields["name"])
}

func TestMergeWithPreference_UnlistedConflictStillRaised(t *testing.T) {
	base := snapshotWith(models.CollectionIngredients,
		models.Record{ID: "i1", Fields: map[string]any{"name": "flour"}, UpdatedAt: 100},
		models.Record{ID: "i2", Fields: map[string]any{"name": "sugar"}, UpdatedAt: 100})
	local := snapshotWith(models.CollectionIngredients,
		models.Record{ID: "i1", Fields: map[string]any{"name": "rye flour"}, UpdatedAt: 200},
		models.Record{ID: "i2", Fields: map[string]any{"name": "cane sugar"}, UpdatedAt: 210})
	remote := snapshotWith(models.CollectionIngredients,
		models.Record{ID: "i1", Fields: map[string]any{"name": "wheat flour"}, UpdatedAt: 180},
		models.Record{ID: "i2", Fields: map[string]any{"name": "brown sugar"}, UpdatedAt: 190})

	prefer := map[string]struct{}{models.CollectionIngredients + "/i1": {}}

	result, err := NewMergeService().MergeWithPreference(context.Background(), base, local, remote, prefer)
	require.NoError(t, err)

	require.Len(t, result.Conflicts, 1)
	assert.Equal(t, "i2", result.Conflicts[0].ID)
}

func TestMerge_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewMergeService().Merge(ctx, models.EmptySnapshot(0), models.EmptySnapshot(0), models.EmptySnapshot(0))
	require.ErrorIs(t, err, context.Canceled)
}
