package levels

import (
	"hash/fnv"
	"math"
	"math/rand"
	"strconv"
	"time"

	"github.com/truckmayhem/truckmayhem/common/utils/vector"
	"github.com/truckmayhem/truckmayhem/game/entities"
)

// slopeProbe is the horizontal distance used to measure the local slope
const slopeProbe = 20

// Ground is the part of the terrain the generators read
type Ground interface {
	HeightAt(x float64) float64
	GetBaseY() float64
	GetLength() float64
}

// Assets tells which optional art variants the presentation layer has
// loaded; missing variants are replaced before placement
type Assets struct {
	VehicleWrecks int
	Tank          bool
	Crystal       bool
	Plant         bool
}

// HasVehicleWrecks is false when no wreck variant can be drawn
func (a Assets) HasVehicleWrecks() bool {
	return a.VehicleWrecks > 0
}

func FullAssets() Assets {
	return Assets{
		VehicleWrecks: 3,
		Tank:          true,
		Crystal:       true,
		Plant:         true,
	}
}

// PlacementContext carries the two random sources of a run: Layout is
// seeded per level and reproduces the same track every run, Hazard varies
// from run to run
type PlacementContext struct {
	Layout *rand.Rand
	Hazard *rand.Rand
	Assets Assets
}

type DestructiblePlacement struct {
	Position vector.Vector2
	Spec     entities.DestructibleSpec
	Variant  int // wreck art, 1-based; 0 when not a vehicle
}

type HazardPlacement struct {
	Position vector.Vector2
	Spec     entities.HazardSpec
}

type DestructibleGenerator func(ground Ground, ctx PlacementContext) []DestructiblePlacement
type HazardGenerator func(ground Ground, ctx PlacementContext) []HazardPlacement
type GemGenerator func(ground Ground, ctx PlacementContext) []vector.Vector2

// SeedFromString turns a fixed label into a generator seed
func SeedFromString(label string) int64 {
	h := fnv.New64a()
	h.Write([]byte(label))
	return int64(h.Sum64())
}

func NewLayoutRand(levelID int) *rand.Rand {
	return rand.New(rand.NewSource(SeedFromString(layoutSeeds[levelID])))
}

// NewHazardRand is seeded from the run clock so hazards move between runs
func NewHazardRand(levelID int, now time.Time) *rand.Rand {
	label := strconv.FormatInt(now.UnixNano(), 10) + "h" + strconv.Itoa(levelID)
	return rand.New(rand.NewSource(SeedFromString(label)))
}

func NewPlacementContext(levelID int, now time.Time, assets Assets) PlacementContext {
	return PlacementContext{
		Layout: NewLayoutRand(levelID),
		Hazard: NewHazardRand(levelID, now),
		Assets: assets,
	}
}

var layoutSeeds = map[int]string{
	1: "junkyard1",
	2: "mountain2",
	3: "urban3",
}

// between draws an integer in [min, max]
func between(rng *rand.Rand, min int, max int) float64 {
	return float64(min + rng.Intn(max-min+1))
}

// scan describes one pass of spot picking along the track
type scan struct {
	start     float64
	endMargin float64
	minStep   int
	maxStep   int
	maxSlope  float64
	maxDrop   float64 // spots lower than baseY+maxDrop are skipped
}

// each calls place with the terrain height of every suitable spot
func (s scan) each(ground Ground, rng *rand.Rand, place func(x float64, y float64)) {
	end := ground.GetLength() - s.endMargin
	for x := s.start; x < end; x += between(rng, s.minStep, s.maxStep) {
		y := ground.HeightAt(x)
		if math.Abs(ground.HeightAt(x+slopeProbe)-y)/slopeProbe > s.maxSlope {
			continue
		}

		if y > ground.GetBaseY()+s.maxDrop {
			continue
		}

		place(x, y)
	}
}

// weighted picks the first entry whose threshold is above roll
type weighted struct {
	below float64
	value string
}

func pick(table []weighted, roll float64) string {
	for _, entry := range table {
		if roll < entry.below {
			return entry.value
		}
	}

	return table[len(table)-1].value
}

// destructibles builds a generator from a spot scan, a type table and the
// replacements used when art is missing
func destructibles(s scan, table []weighted, fallback func(t entities.DestructibleType, assets Assets) entities.DestructibleType) DestructibleGenerator {
	return func(ground Ground, ctx PlacementContext) []DestructiblePlacement {
		placements := make([]DestructiblePlacement, 0)

		s.each(ground, ctx.Layout, func(x float64, y float64) {
			typ := fallback(entities.DestructibleType(pick(table, ctx.Layout.Float64())), ctx.Assets)
			spec := entities.DestructibleSpecs[typ]

			variant := 0
			if typ == entities.Vehicle && ctx.Assets.HasVehicleWrecks() {
				variant = 1 + ctx.Layout.Intn(ctx.Assets.VehicleWrecks)
			}

			placements = append(placements, DestructiblePlacement{
				Position: vector.MakeVector2(x, y-spec.Height/2-2),
				Spec:     spec,
				Variant:  variant,
			})
		})

		return placements
	}
}

func hazards(s scan, table []weighted) HazardGenerator {
	return func(ground Ground, ctx PlacementContext) []HazardPlacement {
		placements := make([]HazardPlacement, 0)

		s.each(ground, ctx.Hazard, func(x float64, y float64) {
			spec := entities.HazardSpecs[entities.HazardType(pick(table, ctx.Hazard.Float64()))]
			placements = append(placements, HazardPlacement{
				Position: vector.MakeVector2(x, y-spec.Height/2-1),
				Spec:     spec,
			})
		})

		return placements
	}
}

// scatteredGems drops one gem per step, floating `lift` plus a random
// extra above the ground
func scatteredGems(ground Ground, rng *rand.Rand, start float64, minStep int, maxStep int, lift float64, minExtra int, maxExtra int) []vector.Vector2 {
	gems := make([]vector.Vector2, 0)

	end := ground.GetLength() - 400
	for x := start; x < end; x += between(rng, minStep, maxStep) {
		gems = append(gems, vector.MakeVector2(x, ground.HeightAt(x)-lift-between(rng, minExtra, maxExtra)))
	}

	return gems
}

// arc places gems every step from `from` to `to` inclusive
func arc(from float64, to float64, step float64, y func(x float64) float64) []vector.Vector2 {
	gems := make([]vector.Vector2, 0)
	for x := from; x <= to; x += step {
		gems = append(gems, vector.MakeVector2(x, y(x)))
	}

	return gems
}
