package levels

import (
	"math"
	"sort"

	"github.com/truckmayhem/truckmayhem/common/utils/vector"
	"github.com/truckmayhem/truckmayhem/game/entities"
	"github.com/truckmayhem/truckmayhem/game/terrain"
	"github.com/truckmayhem/truckmayhem/game/vehicle"
)

// Count is the number of playable levels; the last one unlocks nothing
const Count = 3

type Difficulty struct {
	vehicle.Difficulty
	ObjectDensity float64 `json:"objectDensity"`
	GapFrequency  float64 `json:"gapFrequency"`
}

type StarThresholds struct {
	One   int `json:"one"`
	Two   int `json:"two"`
	Three int `json:"three"`
}

type Marker struct {
	X    float64 `json:"x"`
	Text string  `json:"text"`
}

// WaterZone spans [X1, X2]; the surface sits Depth below the higher bank
type WaterZone struct {
	X1    float64 `json:"x1"`
	X2    float64 `json:"x2"`
	Depth float64 `json:"depth"`
}

func (z WaterZone) SurfaceY(ground Ground) float64 {
	return math.Max(ground.HeightAt(z.X1), ground.HeightAt(z.X2)) + z.Depth
}

type Level struct {
	ID         int
	Name       string
	Subtitle   string
	Profile    terrain.Profile
	Difficulty Difficulty
	Stars      StarThresholds
	Markers    []Marker
	WaterZones []WaterZone

	Destructibles DestructibleGenerator
	Hazards       HazardGenerator
	Gems          GemGenerator
}

// GetStars rates a final score from 0 to 3
func (l Level) GetStars(score int) int {
	switch {
	case score >= l.Stars.Three:
		return 3
	case score >= l.Stars.Two:
		return 2
	case score >= l.Stars.One:
		return 1
	}

	return 0
}

// NextID is the level unlocked by finishing this one, 0 after the last
func (l Level) NextID() int {
	if l.ID >= Count {
		return 0
	}

	return l.ID + 1
}

func Get(id int) (Level, bool) {
	level, ok := catalog[id]
	return level, ok
}

func All() []Level {
	res := make([]Level, 0, len(catalog))
	for _, level := range catalog {
		res = append(res, level)
	}

	sort.Slice(res, func(i, j int) bool { return res[i].ID < res[j].ID })

	return res
}

var catalog = map[int]Level{
	1: {
		ID:       1,
		Name:     "JUNKYARD RAMPAGE",
		Subtitle: "Smash everything! Watch for hazards!",
		Profile:  junkyardProfile,
		Difficulty: Difficulty{
			Difficulty:    vehicle.Difficulty{LandingDamageThreshold: 20, LandingDamageMul: 0.8, MaxLandingDamage: 15},
			ObjectDensity: 1.0,
			GapFrequency:  0,
		},
		Stars: StarThresholds{One: 2000, Two: 6000, Three: 12000},
		Markers: []Marker{
			{350, "GO!"}, {1400, "RAMP"}, {3000, "DANGER"},
			{3800, "JUMP!"}, {6200, "MEGA RAMP"}, {7500, "FINISH >"},
		},
		WaterZones: []WaterZone{},

		Destructibles: destructibles(
			scan{start: 500, endMargin: 500, minStep: 70, maxStep: 160, maxSlope: 0.4, maxDrop: 80},
			[]weighted{
				{0.30, string(entities.Crate)},
				{0.55, string(entities.Barrel)},
				{0.72, string(entities.RockPile)},
				{0.92, string(entities.Vehicle)},
				{1, string(entities.Tank)},
			},
			func(t entities.DestructibleType, assets Assets) entities.DestructibleType {
				if t == entities.Vehicle && !assets.HasVehicleWrecks() {
					return entities.Crate
				}
				if t == entities.Tank && !assets.Tank {
					return entities.RockPile
				}
				return t
			},
		),
		Hazards: hazards(
			scan{start: 800, endMargin: 600, minStep: 350, maxStep: 700, maxSlope: 0.3, maxDrop: 80},
			[]weighted{
				{0.40, string(entities.SpikeStrip)},
				{0.65, string(entities.OilSlick)},
				{0.85, string(entities.Mine)},
				{1, string(entities.FirePit)},
			},
		),
		Gems: func(ground Ground, ctx PlacementContext) []vector.Vector2 {
			gems := scatteredGems(ground, ctx.Layout, 400, 180, 350, 30, 10, 50)
			floating := func(x float64) float64 { return ground.HeightAt(x) - 80 - ctx.Layout.Float64()*60 }
			gems = append(gems, arc(1650, 1850, 50, floating)...)
			gems = append(gems, arc(3850, 4050, 50, floating)...)
			return append(gems, arc(6350, 6700, 50, floating)...)
		},
	},
	2: {
		ID:       2,
		Name:     "MOUNTAIN MAYHEM",
		Subtitle: "Conquer the canyon! Avoid the traps!",
		Profile:  mountainProfile,
		Difficulty: Difficulty{
			Difficulty:    vehicle.Difficulty{LandingDamageThreshold: 18, LandingDamageMul: 1.0, MaxLandingDamage: 20},
			ObjectDensity: 1.2,
			GapFrequency:  0.1,
		},
		Stars: StarThresholds{One: 3000, Two: 8000, Three: 15000},
		Markers: []Marker{
			{350, "GO!"}, {900, "CLIMB"}, {1500, "CANYON!"},
			{2400, "LAUNCH"}, {4200, "STAIRCASE"}, {5400, "SUMMIT"},
			{5650, "MEGA JUMP!"}, {7200, "FINISH >"},
		},
		WaterZones: []WaterZone{},

		Destructibles: destructibles(
			scan{start: 400, endMargin: 500, minStep: 60, maxStep: 140, maxSlope: 0.5, maxDrop: 100},
			[]weighted{
				{0.20, string(entities.Crystal)},
				{0.35, string(entities.Plant)},
				{0.55, string(entities.RockPile)},
				{0.70, string(entities.Barrel)},
				{0.88, string(entities.Vehicle)},
				{1, string(entities.Tank)},
			},
			func(t entities.DestructibleType, assets Assets) entities.DestructibleType {
				switch {
				case t == entities.Crystal && !assets.Crystal:
					return entities.Crate
				case t == entities.Plant && !assets.Plant:
					return entities.Crate
				case t == entities.Vehicle && !assets.HasVehicleWrecks():
					return entities.RockPile
				case t == entities.Tank && !assets.Tank:
					return entities.RockPile
				}
				return t
			},
		),
		Hazards: hazards(
			scan{start: 600, endMargin: 600, minStep: 280, maxStep: 550, maxSlope: 0.4, maxDrop: 100},
			[]weighted{
				{0.25, string(entities.SpikeStrip)},
				{0.40, string(entities.OilSlick)},
				{0.60, string(entities.Mine)},
				{0.80, string(entities.FirePit)},
				{1, string(entities.TNT)},
			},
		),
		Gems: func(ground Ground, ctx PlacementContext) []vector.Vector2 {
			gems := scatteredGems(ground, ctx.Layout, 350, 150, 300, 35, 15, 70)
			gems = append(gems, arc(1800, 2300, 50, func(x float64) float64 { return ground.HeightAt(x) - 40 })...)
			return append(gems, arc(5100, 5350, 50, func(x float64) float64 { return ground.HeightAt(x) - 90 })...)
		},
	},
	3: {
		ID:       3,
		Name:     "URBAN ASSAULT",
		Subtitle: "Own the streets! Dodge the danger!",
		Profile:  urbanProfile,
		Difficulty: Difficulty{
			Difficulty:    vehicle.Difficulty{LandingDamageThreshold: 16, LandingDamageMul: 1.2, MaxLandingDamage: 25},
			ObjectDensity: 1.4,
			GapFrequency:  0.15,
		},
		Stars: StarThresholds{One: 4000, Two: 10000, Three: 20000},
		Markers: []Marker{
			{350, "GO!"}, {1200, "OVERPASS"}, {2000, "PIT!"},
			{2500, "LAUNCH"}, {4000, "GARAGE"}, {4800, "WRECKING YARD"},
			{5800, "MEGA RAMP"}, {7000, "FINISH >"},
		},
		WaterZones: []WaterZone{{X1: 2050, X2: 2450, Depth: 30}},

		Destructibles: destructibles(
			scan{start: 450, endMargin: 500, minStep: 50, maxStep: 120, maxSlope: 0.5, maxDrop: 100},
			[]weighted{
				{0.15, string(entities.Crate)},
				{0.35, string(entities.Barrel)},
				{0.50, string(entities.RockPile)},
				{0.80, string(entities.Vehicle)},
				{1, string(entities.Tank)},
			},
			func(t entities.DestructibleType, assets Assets) entities.DestructibleType {
				if t == entities.Vehicle && !assets.HasVehicleWrecks() {
					return entities.Crate
				}
				if t == entities.Tank && !assets.Tank {
					return entities.RockPile
				}
				return t
			},
		),
		Hazards: hazards(
			scan{start: 600, endMargin: 600, minStep: 320, maxStep: 550, maxSlope: 0.5, maxDrop: 100},
			[]weighted{
				{0.20, string(entities.SpikeStrip)},
				{0.35, string(entities.OilSlick)},
				{0.55, string(entities.Mine)},
				{0.75, string(entities.FirePit)},
				{1, string(entities.TNT)},
			},
		),
		Gems: func(ground Ground, ctx PlacementContext) []vector.Vector2 {
			gems := scatteredGems(ground, ctx.Layout, 400, 120, 260, 30, 10, 60)
			gems = append(gems, arc(1300, 1700, 40, func(x float64) float64 { return ground.HeightAt(x) - 60 })...)
			return append(gems, arc(6100, 6500, 45, func(x float64) float64 {
				return ground.GetBaseY() - 250 + math.Sin((x-6100)/400*math.Pi)*80
			})...)
		},
	},
}
