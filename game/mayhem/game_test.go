package mayhem

import (
	"testing"
	"time"

	"github.com/bytearena/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/truckmayhem/truckmayhem/common/types"
	"github.com/truckmayhem/truckmayhem/common/utils/vector"
	"github.com/truckmayhem/truckmayhem/config"
	"github.com/truckmayhem/truckmayhem/game/contact"
	"github.com/truckmayhem/truckmayhem/game/entities"
	"github.com/truckmayhem/truckmayhem/game/levels"
	"github.com/truckmayhem/truckmayhem/game/terrain"
	"github.com/truckmayhem/truckmayhem/game/vehicle"
)

const tick = time.Second / 60

var clock = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

var chassis = types.MakeVehiclePartDescriptor(types.VehiclePart.Chassis, "truck")

func options(tweak func(*config.GameConfig)) Options {
	opts := DefaultOptions()
	opts.Clock = clock
	if tweak != nil {
		tweak(&opts.Config)
	}

	return opts
}

func newLevelGame(t *testing.T, id int) *Game {
	t.Helper()

	level, ok := levels.Get(id)
	require.True(t, ok)

	game := NewGame(level, options(nil))
	t.Cleanup(game.Destroy)

	return game
}

// emptyLevel is a flat track without any entity
func emptyLevel() levels.Level {
	return levels.Level{
		ID:         1,
		Name:       "TEST TRACK",
		Profile:    terrain.Flat,
		Difficulty: levels.Difficulty{Difficulty: vehicle.DefaultDifficulty()},
		Stars:      levels.StarThresholds{One: 100, Two: 200, Three: 300},
		Destructibles: func(levels.Ground, levels.PlacementContext) []levels.DestructiblePlacement {
			return nil
		},
		Hazards: func(levels.Ground, levels.PlacementContext) []levels.HazardPlacement {
			return nil
		},
		Gems: func(levels.Ground, levels.PlacementContext) []vector.Vector2 {
			return nil
		},
	}
}

func firstEntity(t *testing.T, g *Game, view *ecs.View) (*ecs.Entity, types.PhysicalBodyDescriptor) {
	t.Helper()

	results := view.Get()
	require.NotEmpty(t, results)

	body := g.castPhysicalBody(results[0].Components[g.physicalBodyComponent])
	return results[0].Entity, body.body.GetDescriptor()
}

func countEvents(events []Event, kind EventKind) int {
	n := 0
	for _, e := range events {
		if e.Kind == kind {
			n++
		}
	}

	return n
}

func TestNewGameBuildsTheLevel(t *testing.T) {
	game := newLevelGame(t, 1)

	assert.NotEmpty(t, game.GetID())
	assert.True(t, game.CountDestructibles() > 0)
	assert.True(t, game.CountHazards() > 0)
	assert.True(t, game.CountCollectibles() > 0)
	assert.Len(t, game.GetChallengeManager().Challenges(), 3)
	assert.Equal(t, OutcomeRunning, game.GetOutcome())

	world := game.GetWorld()
	entitiesCount := game.CountDestructibles() + game.CountHazards() + game.CountCollectibles()
	terrainCount := len(game.GetTerrain().Segments()) + len(game.GetTerrain().Walls())
	assert.Equal(t, entitiesCount+terrainCount+3, world.GetBodyCount())
	assert.Equal(t, 2, world.GetJointCount())

	game.Destroy()
	assert.Equal(t, 0, world.GetBodyCount())
	assert.Equal(t, 0, world.GetJointCount())
}

func TestSameClockSameLayout(t *testing.T) {
	a := newLevelGame(t, 2)
	b := newLevelGame(t, 2)

	assert.Equal(t, a.CountDestructibles(), b.CountDestructibles())
	assert.Equal(t, a.CountHazards(), b.CountHazards())
	assert.Equal(t, a.CountCollectibles(), b.CountCollectibles())
	assert.Equal(t, a.GetChallengeManager().Challenges(), b.GetChallengeManager().Challenges())
}

func TestTruckSettlesOnTheGround(t *testing.T) {
	game := NewGame(emptyLevel(), options(nil))
	defer game.Destroy()

	grounded := false
	for i := 0; i < 180 && !grounded; i++ {
		game.Step(tick, vehicle.Input{})
		grounded = game.GetTruck().IsGrounded()
	}

	assert.True(t, grounded)
	assert.False(t, game.IsOver())
	assert.Equal(t, 100.0, game.GetTruck().GetHealth())
}

func TestDestructibleIsDestroyedOnce(t *testing.T) {
	game := newLevelGame(t, 1)
	entity, descriptor := firstEntity(t, game, game.destructibleView)

	before := game.CountDestructibles()
	bodies := game.GetWorld().GetBodyCount()

	route := contact.Route{Part: chassis, Velocity: vector.MakeVector2(20, 0), Target: descriptor}
	systemBeginContacts(game, []contact.Route{route, route})
	systemActiveHazards(game, []contact.Route{route})

	events := game.PopEvents()
	assert.Equal(t, 1, countEvents(events, EventDestructibleDestroyed))
	assert.Equal(t, 1, countEvents(events, EventShake))
	assert.Equal(t, 1, game.GetStats().ObjectsDestroyed)
	assert.True(t, game.GetStats().Score > 0)

	// the body leaves the world right away, the entity at the end of the tick
	assert.Equal(t, bodies-1, game.GetWorld().GetBodyCount())
	assert.Equal(t, before, game.CountDestructibles())

	systemDeleteEntities(game)
	assert.Equal(t, before-1, game.CountDestructibles())
	assert.Nil(t, game.getEntity(descriptor.ID))
	assert.Nil(t, game.manager.GetEntityByID(entity.GetID()))

	systemBeginContacts(game, []contact.Route{route})
	assert.Empty(t, game.PopEvents())
	assert.Equal(t, bodies-1, game.GetWorld().GetBodyCount())
}

func TestSlowContactsDoNotDamage(t *testing.T) {
	game := newLevelGame(t, 1)
	_, descriptor := firstEntity(t, game, game.destructibleView)

	route := contact.Route{Part: chassis, Velocity: vector.MakeVector2(1, 0), Target: descriptor}
	systemBeginContacts(game, []contact.Route{route})

	assert.Empty(t, game.PopEvents())
	assert.Equal(t, 0, game.GetStats().ObjectsDestroyed)
}

func TestCollectibleIsCollectedOnce(t *testing.T) {
	game := newLevelGame(t, 1)
	_, descriptor := firstEntity(t, game, game.collectibleView)

	route := contact.Route{Part: chassis, Target: descriptor}
	systemBeginContacts(game, []contact.Route{route, route})

	events := game.PopEvents()
	require.Equal(t, 1, countEvents(events, EventCollectibleCollected))
	assert.Equal(t, 1, game.GetStats().GemsCollected)
	assert.Equal(t, 100, events[0].Points)
}

func TestHazardCooldown(t *testing.T) {
	game := newLevelGame(t, 1)

	for _, entityresult := range game.hazardView.Get() {
		hazard := game.castHazard(entityresult.Components[game.hazardComponent])
		descriptor := game.castPhysicalBody(entityresult.Components[game.physicalBodyComponent]).body.GetDescriptor()
		route := contact.Route{Part: chassis, Target: descriptor}

		health := game.GetTruck().GetHealth()
		if health <= 30 {
			break
		}

		// begin and active contact within the same tick hit once
		systemBeginContacts(game, []contact.Route{route})
		systemActiveHazards(game, []contact.Route{route, route})

		events := game.PopEvents()
		assert.Equal(t, 1, countEvents(events, EventHazardTriggered), string(hazard.GetType()))
		assert.InDelta(t, health-hazard.GetSpec().Damage, game.GetTruck().GetHealth(), 1e-9)

		if hazard.IsOneShot() {
			assert.True(t, hazard.IsDestroyed())
			assert.Contains(t, game.dying, entityresult.Entity.GetID())
		} else {
			game.now += hazard.GetSpec().Cooldown
			systemActiveHazards(game, []contact.Route{route})
			assert.Equal(t, 1, countEvents(game.PopEvents(), EventHazardTriggered))
		}
	}

	assert.True(t, game.GetStats().HazardsHit > 0)
}

func TestWrecked(t *testing.T) {
	game := NewGame(emptyLevel(), options(nil))
	defer game.Destroy()

	game.Step(tick, vehicle.Input{})
	game.PopEvents()

	game.GetTruck().TakeDamage(500)
	game.Step(tick, vehicle.Input{})

	assert.Equal(t, OutcomeWrecked, game.GetOutcome())
	assert.Equal(t, 1, countEvents(game.PopEvents(), EventRunEnded))

	// the run is frozen once over
	game.Step(tick, vehicle.Input{Forward: true})
	assert.Equal(t, 2, game.GetTick())
	assert.Empty(t, game.PopEvents())

	result := game.Result()
	assert.Equal(t, OutcomeWrecked, result.Outcome)
	assert.Equal(t, 0, result.Stars)
	assert.False(t, result.IsFinished())
}

func TestFell(t *testing.T) {
	game := NewGame(emptyLevel(), options(func(cfg *config.GameConfig) { cfg.Run.FallY = 0 }))
	defer game.Destroy()

	game.Step(tick, vehicle.Input{})
	assert.Equal(t, OutcomeFell, game.GetOutcome())
}

func TestFinish(t *testing.T) {
	game := NewGame(emptyLevel(), options(func(cfg *config.GameConfig) { cfg.Terrain.Length = 600 }))
	defer game.Destroy()

	require.Equal(t, 300.0, game.GetTerrain().FinishX())

	for i := 0; i < 1200 && !game.IsOver(); i++ {
		game.Step(tick, vehicle.Input{Forward: true})
	}

	require.Equal(t, OutcomeFinished, game.GetOutcome())

	result := game.Result()
	assert.True(t, result.IsFinished())
	assert.Equal(t, game.GetTruck().GetHealth(), result.Stats.FinishHealth)
	assert.True(t, result.Stats.FinishHealth > 0)
	assert.Equal(t, game.GetTime(), result.Duration)
}

func TestWater(t *testing.T) {
	game := newLevelGame(t, 3)
	require.Len(t, game.water, 1)

	zone := game.water[0]
	margin := game.cfg.Run.WaterSurfaceMargin

	cases := []struct {
		name     string
		position vector.Vector2
		inside   bool
	}{
		{"submerged", vector.MakeVector2(2200, zone.SurfaceY), true},
		{"at the margin", vector.MakeVector2(2200, zone.SurfaceY-margin), true},
		{"above", vector.MakeVector2(2200, zone.SurfaceY-margin-1), false},
		{"left bank", vector.MakeVector2(2049, zone.SurfaceY), false},
		{"right bank", vector.MakeVector2(2451, zone.SurfaceY), false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.inside, len(game.submergedIn(c.position)) == 1)
		})
	}
}

func TestFrame(t *testing.T) {
	game := newLevelGame(t, 1)
	game.Step(tick, vehicle.Input{})

	frame := game.Frame()
	assert.Equal(t, game.GetID(), frame.RunID)
	assert.Equal(t, 1, frame.Tick)
	assert.Equal(t, 100.0, frame.Truck.Health)
	require.NotEmpty(t, frame.Objects)

	radius := game.cfg.Run.FrameRadius
	truckX := frame.Truck.Position.GetX()
	for i, object := range frame.Objects {
		assert.True(t, object.Position.GetX() <= truckX+radius+object.Width)
		assert.NotEmpty(t, object.Kind)
		if i > 0 {
			assert.True(t, frame.Objects[i-1].Position.GetX()-frame.Objects[i-1].Width/2 <= object.Position.GetX()-object.Width/2+1e-6)
		}
		if object.Kind == types.PhysicalBodyKind.Destructible.String() {
			assert.NotEmpty(t, object.Type)
		}
	}
}

func TestDestroyedEntitiesLeaveTheFrame(t *testing.T) {
	game := newLevelGame(t, 1)

	var target *ecs.QueryResult
	for _, entityresult := range game.collectibleView.Get() {
		c := game.castCollectible(entityresult.Components[game.collectibleComponent])
		if c.GetPosition().GetX() < 150+game.cfg.Run.FrameRadius {
			target = entityresult
			break
		}
	}
	require.NotNil(t, target)

	descriptor := game.castPhysicalBody(target.Components[game.physicalBodyComponent]).body.GetDescriptor()
	inFrame := func() bool {
		for _, object := range game.Frame().Objects {
			if object.ID == descriptor.ID {
				return true
			}
		}
		return false
	}

	assert.True(t, inFrame())

	systemBeginContacts(game, []contact.Route{{Part: chassis, Target: descriptor}})
	assert.False(t, inFrame())

	systemDeleteEntities(game)
	assert.False(t, inFrame())
}

func TestLandingScoring(t *testing.T) {
	game := NewGame(emptyLevel(), options(nil))
	defer game.Destroy()

	cases := []struct {
		name    string
		landing vehicle.Landing
		points  int
	}{
		{"short hop", vehicle.Landing{AirDuration: 0.2, Flips: 1}, 0},
		{"air time", vehicle.Landing{AirDuration: 1}, 60},
		{"flip", vehicle.Landing{AirDuration: 1, Flips: 1}, 60 + 500},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			systemLanding(game, c.landing)

			events := game.PopEvents()
			require.Len(t, events, 1)
			assert.Equal(t, EventLanded, events[0].Kind)
			assert.Equal(t, c.points, events[0].Points)
		})
	}

	assert.Equal(t, 1, game.GetStats().TotalFlips)
}

func TestExplosionShake(t *testing.T) {
	game := NewGame(emptyLevel(), options(nil))
	defer game.Destroy()

	cases := []struct {
		explosion entities.Explosion
		intensity float64
		duration  time.Duration
	}{
		{entities.ExplosionLarge, 0.008, largeShakeDuration},
		{entities.ExplosionMedium, 0.005, mediumShakeDuration},
		{entities.ExplosionQuick, 0.002, smallShakeDuration},
	}

	for _, c := range cases {
		game.explosionShake(vector.MakeNullVector2(), c.explosion)

		events := game.PopEvents()
		require.Len(t, events, 1)
		require.NotNil(t, events[0].Feedback)
		assert.Equal(t, c.intensity, events[0].Feedback.Intensity)
		assert.Equal(t, c.duration, events[0].Feedback.Duration)
	}
}
