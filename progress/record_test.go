package progress

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/truckmayhem/truckmayhem/game/challenge"
	"github.com/truckmayhem/truckmayhem/game/mayhem"
	"github.com/truckmayhem/truckmayhem/game/score"
)

var maxedStats = score.Stats{
	Score:             100000,
	MaxCombo:          50,
	ObjectsDestroyed:  500,
	VehiclesDestroyed: 50,
	TotalFlips:        50,
	TotalAirTime:      500,
	GemsCollected:     500,
	HazardsHit:        50,
	FinishHealth:      100,
}

func completedManager(levelID int) *challenge.Manager {
	m := challenge.NewManager(levelID, rand.New(rand.NewSource(7)))
	m.CheckProgress(maxedStats)
	return m
}

func finished(levelID int, points int) mayhem.Result {
	return mayhem.Result{
		LevelID: levelID,
		Outcome: mayhem.OutcomeFinished,
		Stats:   score.Stats{Score: points},
	}
}

func TestRecordRun(t *testing.T) {
	store := NewMemoryStore()

	record, err := RecordRun(store, finished(1, 1000), nil)
	require.NoError(t, err)
	assert.True(t, record.NewBest)
	assert.Equal(t, 0, record.PreviousBest)
	assert.Equal(t, 2, record.UnlockedLevel)

	record, err = RecordRun(store, finished(1, 600), nil)
	require.NoError(t, err)
	assert.False(t, record.NewBest)
	assert.Equal(t, 1000, record.PreviousBest)
	assert.Equal(t, 0, record.UnlockedLevel)

	scores, err := store.GetBestScores()
	require.NoError(t, err)
	assert.Equal(t, 1000, scores[1])

	unlocked, err := IsLevelUnlocked(store, 2)
	require.NoError(t, err)
	assert.True(t, unlocked)
}

func TestRecordRunLastLevel(t *testing.T) {
	store := NewMemoryStore()

	record, err := RecordRun(store, finished(3, 10), nil)
	require.NoError(t, err)
	assert.Equal(t, 0, record.UnlockedLevel)

	levels, err := store.GetUnlockedLevels()
	require.NoError(t, err)
	assert.Equal(t, []int{FirstLevel}, levels)
}

func TestRecordRunNotFinished(t *testing.T) {
	for _, outcome := range []mayhem.Outcome{mayhem.OutcomeWrecked, mayhem.OutcomeFell, mayhem.OutcomeRunning} {
		t.Run(string(outcome), func(t *testing.T) {
			store := NewMemoryStore()
			result := finished(1, 5000)
			result.Outcome = outcome

			record, err := RecordRun(store, result, completedManager(1))
			require.NoError(t, err)
			assert.False(t, record.NewBest)
			assert.Empty(t, record.NewPalettes)

			scores, err := store.GetBestScores()
			require.NoError(t, err)
			assert.Empty(t, scores)

			palettes, err := store.GetUnlockedPalettes()
			require.NoError(t, err)
			assert.Equal(t, []string{challenge.DefaultPalette}, palettes)
		})
	}
}

func TestRecordRunReportsNewPalettesOnce(t *testing.T) {
	store := NewMemoryStore()
	manager := completedManager(2)
	require.Len(t, manager.CompletedThisRun(), 3)

	record, err := RecordRun(store, finished(2, 100), manager)
	require.NoError(t, err)
	assert.Len(t, record.NewPalettes, 3)
	assert.False(t, record.AllUnlocked)

	record, err = RecordRun(store, finished(2, 100), manager)
	require.NoError(t, err)
	assert.Empty(t, record.NewPalettes)

	palettes, err := store.GetUnlockedPalettes()
	require.NoError(t, err)
	assert.Len(t, palettes, 4)
}

func TestAllUnlocked(t *testing.T) {
	store := NewMemoryStore()

	ids := make([]string, 0, len(challenge.Palettes))
	for _, p := range challenge.Palettes {
		ids = append(ids, p.ID)
	}
	require.NoError(t, store.SetUnlockedPalettes(ids))

	record, err := RecordRun(store, finished(1, 100), nil)
	require.NoError(t, err)
	assert.True(t, record.AllUnlocked)
}
