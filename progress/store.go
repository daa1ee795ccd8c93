package progress

import (
	"encoding/json"
	"sort"
	"strconv"
	"sync"

	"github.com/pkg/errors"
	"github.com/truckmayhem/truckmayhem/game/challenge"
)

// Storage keys, shared by every backend
const (
	KeyBestScores       = "mtm-best-scores"
	KeyUnlockedLevels   = "mtm-unlocked"
	KeyUnlockedPalettes = "mtm-palettes"
	KeySelectedPalette  = "mtm-palette-selected"
)

// FirstLevel is unlocked from the start
const FirstLevel = 1

// Store persists what survives a run
type Store interface {
	challenge.UnlockStore

	GetBestScores() (map[int]int, error)
	SetBestScore(levelID int, score int) error

	GetUnlockedLevels() ([]int, error)
	SetUnlockedLevels(levels []int) error

	GetSelectedPalette() (string, error)
	SetSelectedPalette(id string) error
}

// backend is a flat key-value document; values are JSON encoded
type backend interface {
	get(key string) ([]byte, bool, error)
	set(key string, value []byte) error
}

// kvStore implements Store on top of a backend
type kvStore struct {
	mutex   *sync.Mutex
	backend backend
}

func makeKVStore(b backend) kvStore {
	return kvStore{
		mutex:   &sync.Mutex{},
		backend: b,
	}
}

func (s kvStore) read(key string, value interface{}) (bool, error) {
	raw, ok, err := s.backend.get(key)
	if err != nil {
		return false, errors.Wrapf(err, "could not read %s", key)
	}

	if !ok {
		return false, nil
	}

	if err := json.Unmarshal(raw, value); err != nil {
		return false, errors.Wrapf(err, "invalid value for %s", key)
	}

	return true, nil
}

func (s kvStore) write(key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return errors.Wrapf(err, "could not encode %s", key)
	}

	return errors.Wrapf(s.backend.set(key, raw), "could not write %s", key)
}

func (s kvStore) GetBestScores() (map[int]int, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return s.bestScores()
}

// bestScores decodes the level => score object; JSON object keys are strings
func (s kvStore) bestScores() (map[int]int, error) {
	raw := make(map[string]int)
	if _, err := s.read(KeyBestScores, &raw); err != nil {
		return nil, err
	}

	scores := make(map[int]int, len(raw))
	for key, score := range raw {
		levelID, err := strconv.Atoi(key)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid level %q in %s", key, KeyBestScores)
		}

		scores[levelID] = score
	}

	return scores, nil
}

// SetBestScore overwrites the best score of a level
func (s kvStore) SetBestScore(levelID int, score int) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	scores, err := s.bestScores()
	if err != nil {
		return err
	}

	scores[levelID] = score

	raw := make(map[string]int, len(scores))
	for id, best := range scores {
		raw[strconv.Itoa(id)] = best
	}

	return s.write(KeyBestScores, raw)
}

func (s kvStore) GetUnlockedLevels() ([]int, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	levels := make([]int, 0)
	found, err := s.read(KeyUnlockedLevels, &levels)
	if err != nil {
		return nil, err
	}

	if !found {
		return []int{FirstLevel}, nil
	}

	return levels, nil
}

func (s kvStore) SetUnlockedLevels(levels []int) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	sorted := append([]int{}, levels...)
	sort.Ints(sorted)

	return s.write(KeyUnlockedLevels, sorted)
}

func (s kvStore) GetUnlockedPalettes() ([]string, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	palettes := make([]string, 0)
	found, err := s.read(KeyUnlockedPalettes, &palettes)
	if err != nil {
		return nil, err
	}

	if !found {
		return []string{challenge.DefaultPalette}, nil
	}

	return palettes, nil
}

func (s kvStore) SetUnlockedPalettes(ids []string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return s.write(KeyUnlockedPalettes, ids)
}

func (s kvStore) GetSelectedPalette() (string, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	selected := ""
	if _, err := s.read(KeySelectedPalette, &selected); err != nil {
		return challenge.DefaultPalette, err
	}

	if selected == "" {
		return challenge.DefaultPalette, nil
	}

	return selected, nil
}

// SetSelectedPalette only accepts palettes of the catalogue
func (s kvStore) SetSelectedPalette(id string) error {
	if _, ok := challenge.GetPalette(id); !ok {
		return errors.Errorf("unknown palette %q", id)
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	return s.write(KeySelectedPalette, id)
}
