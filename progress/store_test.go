package progress

import (
	"io/ioutil"
	"os"
	"path"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/truckmayhem/truckmayhem/game/challenge"
)

func tempFileStore(t *testing.T) *FileStore {
	t.Helper()

	dir, err := ioutil.TempDir("", "truck-sim-progress")
	require.NoError(t, err)
	t.Cleanup(func() { os.RemoveAll(dir) })

	return NewFileStore(path.Join(dir, DefaultFilename))
}

func stores(t *testing.T) map[string]Store {
	return map[string]Store{
		"memory": NewMemoryStore(),
		"file":   tempFileStore(t),
	}
}

func TestDefaults(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			scores, err := store.GetBestScores()
			require.NoError(t, err)
			assert.Empty(t, scores)

			levels, err := store.GetUnlockedLevels()
			require.NoError(t, err)
			assert.Equal(t, []int{FirstLevel}, levels)

			palettes, err := store.GetUnlockedPalettes()
			require.NoError(t, err)
			assert.Equal(t, []string{challenge.DefaultPalette}, palettes)

			selected, err := store.GetSelectedPalette()
			require.NoError(t, err)
			assert.Equal(t, challenge.DefaultPalette, selected)
		})
	}
}

func TestReadBack(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, store.SetBestScore(1, 1200))
			require.NoError(t, store.SetBestScore(3, 800))
			require.NoError(t, store.SetBestScore(1, 1500))
			require.NoError(t, store.SetUnlockedLevels([]int{2, 1}))
			require.NoError(t, store.SetUnlockedPalettes([]string{challenge.DefaultPalette, "ICE"}))
			require.NoError(t, store.SetSelectedPalette("ICE"))

			scores, err := store.GetBestScores()
			require.NoError(t, err)
			assert.Equal(t, map[int]int{1: 1500, 3: 800}, scores)

			levels, err := store.GetUnlockedLevels()
			require.NoError(t, err)
			assert.Equal(t, []int{1, 2}, levels)

			palettes, err := store.GetUnlockedPalettes()
			require.NoError(t, err)
			assert.Equal(t, []string{challenge.DefaultPalette, "ICE"}, palettes)

			selected, err := store.GetSelectedPalette()
			require.NoError(t, err)
			assert.Equal(t, "ICE", selected)
		})
	}
}

func TestUnknownPalette(t *testing.T) {
	store := NewMemoryStore()

	assert.Error(t, store.SetSelectedPalette("PLAID"))

	selected, err := store.GetSelectedPalette()
	require.NoError(t, err)
	assert.Equal(t, challenge.DefaultPalette, selected)
}

func TestFileStorePersists(t *testing.T) {
	store := tempFileStore(t)
	require.NoError(t, store.SetBestScore(2, 4200))
	require.NoError(t, store.SetUnlockedLevels([]int{1, 2, 3}))

	reopened := NewFileStore(store.GetFilename())

	scores, err := reopened.GetBestScores()
	require.NoError(t, err)
	assert.Equal(t, 4200, scores[2])

	levels, err := reopened.GetUnlockedLevels()
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, levels)

	data, err := ioutil.ReadFile(store.GetFilename())
	require.NoError(t, err)
	assert.Contains(t, string(data), KeyBestScores)
	assert.Contains(t, string(data), KeyUnlockedLevels)
}

func TestFileStoreInvalidJSON(t *testing.T) {
	store := tempFileStore(t)
	require.NoError(t, ioutil.WriteFile(store.GetFilename(), []byte("{not json"), 0644))

	_, err := store.GetBestScores()
	assert.Error(t, err)

	assert.Error(t, store.SetBestScore(1, 10))
}
