package vehicle

import (
	"math"

	"github.com/truckmayhem/truckmayhem/common/utils/trigo"
	"github.com/truckmayhem/truckmayhem/game/physics"
)

// MinFlipFraction is the share of a full turn needed for a landing to count
// as a flip (about 120°)
const MinFlipFraction = 0.33

// Difficulty tunes how hard landings hurt
type Difficulty struct {
	LandingDamageThreshold float64 `json:"landingDamageThreshold"`
	LandingDamageMul       float64 `json:"landingDamageMul"`
	MaxLandingDamage       float64 `json:"maxLandingDamage"`
}

func DefaultDifficulty() Difficulty {
	return Difficulty{
		LandingDamageThreshold: 20,
		LandingDamageMul:       0.8,
		MaxLandingDamage:       15,
	}
}

// Landing summarizes the last air phase
type Landing struct {
	AirDuration float64 `json:"airDuration" msgpack:"airDuration"` // seconds
	Flips       int     `json:"flips" msgpack:"flips"`
	ImpactSpeed float64 `json:"impactSpeed" msgpack:"impactSpeed"`
	Damage      float64 `json:"damage" msgpack:"damage"`
}

// CountFlips converts the net rotation accumulated in the air into flips
func CountFlips(totalRotation float64) int {
	turns := math.Abs(totalRotation) / trigo.TwoPi
	if turns < MinFlipFraction {
		return 0
	}

	return int(math.Max(1, math.Round(turns)))
}

// LandingDamage is the damage taken when touching down at impactSpeed
// (vertical, world units per tick)
func LandingDamage(impactSpeed float64, difficulty Difficulty) float64 {
	if impactSpeed <= difficulty.LandingDamageThreshold {
		return 0
	}

	return math.Min(
		difficulty.MaxLandingDamage,
		math.Floor((impactSpeed-difficulty.LandingDamageThreshold)*difficulty.LandingDamageMul),
	)
}

// IsGrounded is true when a wheel touches the terrain or a destructible
func IsGrounded(pairs []physics.ContactPair) bool {
	for _, pair := range pairs {
		if pair.A.Part.IsWheel() && pair.B.IsGround() {
			return true
		}

		if pair.B.Part.IsWheel() && pair.A.IsGround() {
			return true
		}
	}

	return false
}
