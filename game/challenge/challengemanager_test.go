package challenge

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/truckmayhem/truckmayhem/game/score"
)

type memoryUnlocks struct {
	ids    []string
	writes int
}

func (m *memoryUnlocks) GetUnlockedPalettes() ([]string, error) {
	res := make([]string, len(m.ids))
	copy(res, m.ids)
	return res, nil
}

func (m *memoryUnlocks) SetUnlockedPalettes(ids []string) error {
	m.ids = ids
	m.writes++
	return nil
}

func TestGenerateDrawsDistinctChallenges(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		m := NewManager(2, rand.New(rand.NewSource(seed)))

		challenges := m.Challenges()
		require.Len(t, challenges, PerRun)

		seen := map[string]bool{}
		for _, ch := range challenges {
			assert.False(t, seen[ch.ID], "duplicate challenge %s", ch.ID)
			seen[ch.ID] = true
			assert.False(t, ch.Completed)
			assert.NotContains(t, ch.Text, "{n}")
		}
	}
}

func TestScaleTarget(t *testing.T) {
	byID := map[string]Definition{}
	for _, def := range Definitions {
		byID[def.ID] = def
	}

	tests := []struct {
		name  string
		def   Definition
		roll  float64
		level int
		want  float64
	}{
		{"score rounds to 500", byID["score_points"], 0.5, 1, 3000},
		{"score clamped to min", byID["score_points"], 0, 1, 2000},
		{"score on level 3", byID["score_points"], 1, 3, 6500},
		{"integer stat", byID["destroy_objects"], 0.5, 2, 13},
		{"integer stat clamped", byID["reach_combo"], 0, 1, 3},
		{"fractional min", Definition{MinN: 1.5, MaxN: 2.5}, 0.5, 2, 1.8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, ScaleTarget(tt.def, tt.roll, DifficultyScale(tt.level)), 1e-9)
		})
	}
}

func TestCheckProgressIsMonotonic(t *testing.T) {
	m := NewManager(1, rand.New(rand.NewSource(7)))
	challenges := m.Challenges()

	assert.Empty(t, m.CheckProgress(score.Stats{}))

	// all stats far above any target
	maxed := score.Stats{
		Score: 100000, ObjectsDestroyed: 1000, VehiclesDestroyed: 1000, TotalFlips: 1000,
		TotalAirTime: 1000, MaxCombo: 1000, GemsCollected: 1000, HazardsHit: 1000, FinishHealth: 100,
	}

	completed := m.CheckProgress(maxed)
	assert.Len(t, completed, len(challenges))

	// never reported twice, never reverts
	assert.Empty(t, m.CheckProgress(maxed))
	assert.Empty(t, m.CheckProgress(score.Stats{}))
	for _, ch := range m.Challenges() {
		assert.True(t, ch.Completed)
	}

	assert.Len(t, m.CompletedThisRun(), len(challenges))
}

func TestSaveUnlocksReportsOnlyNew(t *testing.T) {
	m := NewManager(1, rand.New(rand.NewSource(3)))
	challenges := m.Challenges()

	store := &memoryUnlocks{ids: []string{DefaultPalette, challenges[0].RewardID}}

	news, err := m.SaveUnlocks(store)
	assert.Nil(t, err)
	assert.Empty(t, news)
	assert.Equal(t, 0, store.writes)

	m.CheckProgress(score.Stats{
		Score: 100000, ObjectsDestroyed: 1000, VehiclesDestroyed: 1000, TotalFlips: 1000,
		TotalAirTime: 1000, MaxCombo: 1000, GemsCollected: 1000, HazardsHit: 1000, FinishHealth: 100,
	})

	news, err = m.SaveUnlocks(store)
	assert.Nil(t, err)
	assert.ElementsMatch(t, []string{challenges[1].RewardID, challenges[2].RewardID}, news)
	assert.Len(t, store.ids, 4)

	news, err = m.SaveUnlocks(store)
	assert.Nil(t, err)
	assert.Empty(t, news)
}

func TestPalettes(t *testing.T) {
	p, ok := GetPalette("GOLDEN")
	assert.True(t, ok)
	assert.Equal(t, "Gold Rush", p.Name)

	_, ok = GetPalette("NOPE")
	assert.False(t, ok)

	ids := []string{}
	for _, p := range Palettes {
		ids = append(ids, p.ID)
	}
	assert.True(t, AllUnlocked(ids))
	assert.False(t, AllUnlocked(ids[1:]))

	for _, def := range Definitions {
		_, ok := GetPalette(def.RewardID)
		assert.True(t, ok, def.RewardID)
	}
}
