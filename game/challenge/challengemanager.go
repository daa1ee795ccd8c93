package challenge

import (
	"math"
	"math/rand"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/truckmayhem/truckmayhem/common/utils/number"
	"github.com/truckmayhem/truckmayhem/game/score"
)

const PerRun = 3

type Challenge struct {
	ID        string        `json:"id" msgpack:"id"`
	Text      string        `json:"text" msgpack:"text"`
	Stat      score.StatKey `json:"stat" msgpack:"stat"`
	Target    float64       `json:"target" msgpack:"target"`
	RewardID  string        `json:"rewardId" msgpack:"rewardId"`
	Completed bool          `json:"completed" msgpack:"completed"`
}

// UnlockStore is the part of the progress store holding unlocked rewards
type UnlockStore interface {
	GetUnlockedPalettes() ([]string, error)
	SetUnlockedPalettes(ids []string) error
}

type Manager struct {
	levelID          int
	challenges       []*Challenge
	completedThisRun []*Challenge
}

// NewManager draws the challenges of a run; rng drives both the draw and the targets
func NewManager(levelID int, rng *rand.Rand) *Manager {
	m := &Manager{
		levelID: levelID,
	}

	pool := make([]Definition, len(Definitions))
	copy(pool, Definitions)
	rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })

	scale := DifficultyScale(levelID)
	for _, def := range pool[:PerRun] {
		target := ScaleTarget(def, rng.Float64(), scale)

		m.challenges = append(m.challenges, &Challenge{
			ID:       def.ID,
			Text:     strings.Replace(def.Text, "{n}", strconv.FormatFloat(target, 'f', -1, 64), 1),
			Stat:     def.Stat,
			Target:   target,
			RewardID: def.RewardID,
		})
	}

	return m
}

// DifficultyScale is 0.7 on level 1 and grows by 0.2 per level
func DifficultyScale(levelID int) float64 {
	return 0.7 + float64(levelID-1)*0.2
}

// ScaleTarget picks the target at roll (0..1) between MinN and MaxN, scales it
// and rounds it: to 500 for score-like values, to units for integer stats,
// to a tenth otherwise. The result is never below MinN.
func ScaleTarget(def Definition, roll float64, scale float64) float64 {
	raw := (def.MinN + roll*(def.MaxN-def.MinN)) * scale

	var n float64
	switch {
	case def.MinN >= 100:
		n = number.RoundTo(raw, 500)
	case math.Trunc(def.MinN) == def.MinN:
		n = math.Round(raw)
	default:
		n = math.Round(raw*10) / 10
	}

	return math.Max(def.MinN, n)
}

func (m *Manager) GetLevelID() int {
	return m.levelID
}

func (m *Manager) Challenges() []Challenge {
	return copyChallenges(m.challenges)
}

func (m *Manager) CompletedThisRun() []Challenge {
	return copyChallenges(m.completedThisRun)
}

// CheckProgress marks the challenges whose stat reached the target and
// returns those that completed during this call
func (m *Manager) CheckProgress(stats score.Stats) []Challenge {
	newlyCompleted := make([]*Challenge, 0)

	for _, ch := range m.challenges {
		if ch.Completed {
			continue
		}

		if stats.Value(ch.Stat) >= ch.Target {
			ch.Completed = true
			newlyCompleted = append(newlyCompleted, ch)
			m.completedThisRun = append(m.completedThisRun, ch)
		}
	}

	return copyChallenges(newlyCompleted)
}

// SaveUnlocks adds the rewards of the completed challenges to the store and
// returns the ones that were not unlocked before
func (m *Manager) SaveUnlocks(store UnlockStore) ([]string, error) {
	newUnlocks := make([]string, 0)
	if len(m.completedThisRun) == 0 {
		return newUnlocks, nil
	}

	unlocked, err := store.GetUnlockedPalettes()
	if err != nil {
		return newUnlocks, errors.Wrap(err, "could not read unlocked palettes")
	}

	known := make(map[string]bool, len(unlocked))
	for _, id := range unlocked {
		known[id] = true
	}

	for _, ch := range m.completedThisRun {
		if known[ch.RewardID] {
			continue
		}

		known[ch.RewardID] = true
		unlocked = append(unlocked, ch.RewardID)
		newUnlocks = append(newUnlocks, ch.RewardID)
	}

	if len(newUnlocks) == 0 {
		return newUnlocks, nil
	}

	if err := store.SetUnlockedPalettes(unlocked); err != nil {
		return []string{}, errors.Wrap(err, "could not save unlocked palettes")
	}

	return newUnlocks, nil
}

func copyChallenges(challenges []*Challenge) []Challenge {
	res := make([]Challenge, len(challenges))
	for i, ch := range challenges {
		res[i] = *ch
	}

	return res
}
