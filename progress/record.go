package progress

import (
	"github.com/pkg/errors"
	"github.com/truckmayhem/truckmayhem/game/challenge"
	"github.com/truckmayhem/truckmayhem/game/levels"
	"github.com/truckmayhem/truckmayhem/game/mayhem"
)

// RunRecord is what RecordRun changed in the store
type RunRecord struct {
	LevelID       int      `json:"levelId"`
	Score         int      `json:"score"`
	PreviousBest  int      `json:"previousBest"`
	NewBest       bool     `json:"newBest"`
	UnlockedLevel int      `json:"unlockedLevel,omitempty"`
	NewPalettes   []string `json:"newPalettes"`
	AllUnlocked   bool     `json:"allUnlocked"`
}

// RecordRun saves a finished run: best score, next level, palette unlocks.
// Runs that did not reach the finish leave the store untouched.
func RecordRun(store Store, result mayhem.Result, challenges *challenge.Manager) (RunRecord, error) {
	record := RunRecord{
		LevelID:     result.LevelID,
		Score:       result.Stats.Score,
		NewPalettes: make([]string, 0),
	}

	if !result.IsFinished() {
		return record, nil
	}

	scores, err := store.GetBestScores()
	if err != nil {
		return record, errors.Wrap(err, "could not record run")
	}

	record.PreviousBest = scores[result.LevelID]
	if result.Stats.Score > record.PreviousBest {
		if err := store.SetBestScore(result.LevelID, result.Stats.Score); err != nil {
			return record, errors.Wrap(err, "could not record run")
		}
		record.NewBest = true
	}

	if next := result.LevelID + 1; next <= levels.Count {
		unlocked, err := store.GetUnlockedLevels()
		if err != nil {
			return record, errors.Wrap(err, "could not record run")
		}

		if !containsLevel(unlocked, next) {
			if err := store.SetUnlockedLevels(append(unlocked, next)); err != nil {
				return record, errors.Wrap(err, "could not record run")
			}
			record.UnlockedLevel = next
		}
	}

	if challenges != nil {
		record.NewPalettes, err = challenges.SaveUnlocks(store)
		if err != nil {
			return record, errors.Wrap(err, "could not record run")
		}
	}

	palettes, err := store.GetUnlockedPalettes()
	if err != nil {
		return record, errors.Wrap(err, "could not record run")
	}
	record.AllUnlocked = challenge.AllUnlocked(palettes)

	return record, nil
}

// IsLevelUnlocked tells whether a level can be played
func IsLevelUnlocked(store Store, levelID int) (bool, error) {
	unlocked, err := store.GetUnlockedLevels()
	if err != nil {
		return false, err
	}

	return containsLevel(unlocked, levelID), nil
}

func containsLevel(ids []int, levelID int) bool {
	for _, id := range ids {
		if id == levelID {
			return true
		}
	}

	return false
}
