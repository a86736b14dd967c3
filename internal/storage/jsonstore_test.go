package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/htaso/evaltracker/internal/evaluation"
)

func TestSanitizeFilename(t *testing.T) {
	assert.Equal(t, "Pat Doyle", SanitizeFilename("Pat Doyle"))
	assert.Equal(t, "ODay", SanitizeFilename("O'Day!"))
	assert.Equal(t, "a-b_c", SanitizeFilename("a-b_c/"))
	assert.Equal(t, "", SanitizeFilename("///"))
}

func TestSaveAndLoad(t *testing.T) {
	store := New(t.TempDir())

	rec := &evaluation.Record{
		EvaluatorName:  "Pat Doyle",
		TrainerName:    "Chris Smith",
		TrainingDate:   "2026-05-01",
		Recommendation: "Approved for Independent Evaluation",
	}

	path, err := store.Save(rec)
	require.NoError(t, err)
	assert.Contains(t, path, filepath.Join("Chris Smith", "Pat Doyle_"))

	loaded, err := store.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Pat Doyle", loaded.EvaluatorName)
	assert.Equal(t, "Chris Smith", loaded.TrainerName)
}

func TestSaveUnsafeNames(t *testing.T) {
	store := New(t.TempDir())

	path, err := store.Save(&evaluation.Record{TrainerName: "///", EvaluatorName: "###"})
	require.NoError(t, err)
	assert.Contains(t, path, filepath.Join("Unknown", "Unknown_"))
}

func TestListOrdersTrainersAndFiles(t *testing.T) {
	dir := t.TempDir()
	store := New(dir)

	write := func(trainer, name, body string) {
		require.NoError(t, os.MkdirAll(filepath.Join(dir, trainer), 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, trainer, name), []byte(body), 0o644))
	}

	write("Beta", "Doyle_20240101_090000.json", `{"evaluator_name": "Doyle", "trainer_name": "Beta"}`)
	write("Alpha", "Reese_20240101_090000.json", `{"evaluator_name": "Reese", "trainer_name": "Alpha"}`)
	write("Alpha", "Reese_20250101_090000.json", `{"evaluator_name": "Reese", "trainer_name": "Alpha"}`)

	entries, err := store.List()
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "Alpha", entries[0].Trainer)
	assert.Contains(t, entries[0].Path, "20250101", "newest file first within a trainer")
	assert.Equal(t, "Beta", entries[2].Trainer)
}

func TestListSkipsMalformedFiles(t *testing.T) {
	dir := t.TempDir()
	store := New(dir)

	require.NoError(t, os.MkdirAll(filepath.Join(dir, "Alpha"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Alpha", "bad.json"), []byte("{broken"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Alpha", "good.json"),
		[]byte(`{"evaluator_name": "Doyle"}`), 0o644))

	entries, err := store.List()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Doyle", entries[0].Evaluator)
}

func TestListMissingDirectory(t *testing.T) {
	store := New(filepath.Join(t.TempDir(), "nope"))

	entries, err := store.List()
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestListNormalizesLegacyRatings(t *testing.T) {
	dir := t.TempDir()
	store := New(dir)

	require.NoError(t, os.MkdirAll(filepath.Join(dir, "Alpha"), 0o755))
	legacy := `{"evaluator_name": "Doyle", "trainer_name": "Alpha", "ratings": {"foot_work": 4.0}}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Alpha", "Doyle_20240101_090000.json"),
		[]byte(legacy), 0o644))

	entries, err := store.List()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.InDelta(t, 4.0, entries[0].TotalScore, 1e-9)
	assert.InDelta(t, 5.0, entries[0].TotalPossible, 1e-9)
}
