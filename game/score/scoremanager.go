package score

import (
	"math"
	"time"

	"github.com/truckmayhem/truckmayhem/common/utils/number"
	"github.com/truckmayhem/truckmayhem/config"
	"github.com/truckmayhem/truckmayhem/game/entities"
)

const (
	FlipPoints = 500
	GemPoints  = 100
	// points per second spent in the air
	AirTimePoints = 60
)

type ScoreManager struct {
	cfg config.ComboConfig

	score           int
	combo           int
	comboMultiplier int
	comboTimer      time.Duration

	objectsDestroyed  int
	vehiclesDestroyed int
	totalFlips        int
	totalAirTime      float64
	maxCombo          int
	gemsCollected     int
	hazardsHit        int
	destructionPoints int
	flipPoints        int
	airTimePoints     int
	gemPoints         int
	finishHealth      float64
}

func NewScoreManager(cfg config.ComboConfig) *ScoreManager {
	return &ScoreManager{
		cfg:             cfg,
		comboMultiplier: 1,
	}
}

func (s *ScoreManager) GetScore() int {
	return s.score
}

func (s *ScoreManager) GetComboMultiplier() int {
	return s.comboMultiplier
}

func (s *ScoreManager) GetCombo() int {
	return s.combo
}

// AddDestructionPoints extends the combo then awards base points times the
// resulting multiplier
func (s *ScoreManager) AddDestructionPoints(base int, typ entities.DestructibleType) int {
	s.combo++
	s.comboMultiplier = s.multiplierFor(s.combo)
	if s.comboMultiplier > s.maxCombo {
		s.maxCombo = s.comboMultiplier
	}
	s.comboTimer = s.cfg.Timeout()

	points := int(math.Floor(float64(base) * float64(s.comboMultiplier)))
	s.score += points
	s.destructionPoints += points
	s.objectsDestroyed++

	if typ.IsVehicle() {
		s.vehiclesDestroyed++
	}

	return points
}

func (s *ScoreManager) multiplierFor(combo int) int {
	multiplier := 1 + combo/s.cfg.MultiplierStep
	if multiplier > s.cfg.MaxMultiplier {
		return s.cfg.MaxMultiplier
	}

	return multiplier
}

// AddFlipPoints does not touch the combo
func (s *ScoreManager) AddFlipPoints(flips int) int {
	points := int(math.Floor(float64(flips) * FlipPoints * float64(s.comboMultiplier)))
	s.score += points
	s.flipPoints += points
	s.totalFlips += flips

	return points
}

func (s *ScoreManager) AddAirTimePoints(seconds float64) int {
	points := int(math.Floor(seconds * AirTimePoints))
	s.score += points
	s.airTimePoints += points
	s.totalAirTime += seconds

	return points
}

func (s *ScoreManager) AddGemPoints() int {
	points := int(math.Floor(GemPoints * float64(s.comboMultiplier)))
	s.score += points
	s.gemPoints += points
	s.gemsCollected++

	return points
}

func (s *ScoreManager) AddHazardHit() {
	s.hazardsHit++
}

func (s *ScoreManager) SetFinishHealth(health float64) {
	s.finishHealth = health
}

// Tick runs the combo countdown; the combo falls back to x1 when it expires
func (s *ScoreManager) Tick(dt time.Duration) {
	if s.comboTimer <= 0 {
		return
	}

	s.comboTimer -= dt
	if s.comboTimer <= 0 {
		s.combo = 0
		s.comboMultiplier = 1
		s.comboTimer = 0
	}
}

func (s *ScoreManager) Stats() Stats {
	return Stats{
		Score:             s.score,
		Combo:             s.combo,
		ComboMultiplier:   s.comboMultiplier,
		ComboTimerMs:      number.DurationMs(s.comboTimer),
		ObjectsDestroyed:  s.objectsDestroyed,
		VehiclesDestroyed: s.vehiclesDestroyed,
		TotalFlips:        s.totalFlips,
		TotalAirTime:      s.totalAirTime,
		MaxCombo:          s.maxCombo,
		GemsCollected:     s.gemsCollected,
		HazardsHit:        s.hazardsHit,
		DestructionPoints: s.destructionPoints,
		FlipPoints:        s.flipPoints,
		AirTimePoints:     s.airTimePoints,
		GemPoints:         s.gemPoints,
		FinishHealth:      s.finishHealth,
	}
}
