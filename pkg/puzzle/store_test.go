package puzzle

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileYieldsEmptySet(t *testing.T) {
	st := NewStore(t.TempDir())
	set, err := st.Load()
	require.NoError(t, err)
	assert.Empty(t, set)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	st := NewStore(t.TempDir())

	set := Set{}
	set.Merge(Solution{Seed: 5, Target: 10, Expression: "(55 / 5.5)", Complexity: 10, UniqueOperators: 1})
	set.Merge(Solution{Seed: 5, Target: 1, Expression: "(5 / 5)", Complexity: 7, UniqueOperators: 1})
	set.Merge(Solution{Seed: 1, Target: 4, Expression: "((1 + 1) + (1 + 1))", Complexity: 19, UniqueOperators: 1})

	require.NoError(t, st.Save(set))

	loaded, err := st.Load()
	require.NoError(t, err)
	assert.Equal(t, set, loaded)
}

func TestSaveSeedWritesBothFiles(t *testing.T) {
	dir := t.TempDir()
	st := NewStore(dir)

	set := Set{}
	set.Merge(Solution{Seed: 3, Target: 9, Expression: "((3 * 3) * (3 / 3))", Complexity: 19, UniqueOperators: 2})
	require.NoError(t, st.SaveSeed(set, 3))

	_, err := os.Stat(filepath.Join(dir, "solutions", "seed_3_solutions.json"))
	assert.NoError(t, err)

	loaded, err := st.Load()
	require.NoError(t, err)
	assert.Equal(t, "((3 * 3) * (3 / 3))", loaded[3][9].Expression)
}

func TestSaveSeedFoldsIntoExistingCombined(t *testing.T) {
	st := NewStore(t.TempDir())

	first := Set{}
	first.Merge(Solution{Seed: 1, Target: 4, Expression: "((1 + 1) + (1 + 1))", Complexity: 19, UniqueOperators: 1})
	require.NoError(t, st.Save(first))

	second := Set{}
	second.Merge(Solution{Seed: 2, Target: 8, Expression: "((2 + 2) * (2 / 2))", Complexity: 19, UniqueOperators: 3})
	require.NoError(t, st.SaveSeed(second, 2))

	loaded, err := st.Load()
	require.NoError(t, err)
	assert.Equal(t, 2, loaded.Count())
	assert.NotEmpty(t, loaded[1][4].Expression)
	assert.NotEmpty(t, loaded[2][8].Expression)
}

func TestBackup(t *testing.T) {
	st := NewStore(t.TempDir())

	// Nothing to back up.
	path, err := st.Backup()
	require.NoError(t, err)
	assert.Empty(t, path)

	set := Set{}
	set.Merge(Solution{Seed: 5, Target: 1, Expression: "(5 / 5)", Complexity: 7, UniqueOperators: 1})
	require.NoError(t, st.Save(set))

	path, err = st.Backup()
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(path, ".json.bak"), "got %q", path)

	// The original is gone; loading starts fresh.
	loaded, err := st.Load()
	require.NoError(t, err)
	assert.Empty(t, loaded)

	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestLoadRejectsCorruptFile(t *testing.T) {
	dir := t.TempDir()
	st := NewStore(dir)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "puzzles"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "puzzles", "all_puzzles.json"), []byte("{nope"), 0o644))

	_, err := st.Load()
	assert.Error(t, err)
}
