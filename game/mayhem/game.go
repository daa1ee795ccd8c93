package mayhem

import (
	"math/rand"
	"time"

	"github.com/bytearena/ecs"
	"github.com/dhconnelly/rtreego"
	uuid "github.com/satori/go.uuid"
	"github.com/truckmayhem/truckmayhem/common/utils"
	"github.com/truckmayhem/truckmayhem/config"
	"github.com/truckmayhem/truckmayhem/game/challenge"
	"github.com/truckmayhem/truckmayhem/game/levels"
	"github.com/truckmayhem/truckmayhem/game/physics"
	"github.com/truckmayhem/truckmayhem/game/score"
	"github.com/truckmayhem/truckmayhem/game/terrain"
	"github.com/truckmayhem/truckmayhem/game/vehicle"
)

const (
	largeShakeDuration  = 150 * time.Millisecond
	mediumShakeDuration = 80 * time.Millisecond
	smallShakeDuration  = 40 * time.Millisecond

	// refill granted by destructibles that do not define one
	defaultNitroRefill = 5
)

type Outcome string

const (
	OutcomeRunning  Outcome = ""
	OutcomeFinished Outcome = "finished"
	OutcomeWrecked  Outcome = "wrecked"
	OutcomeFell     Outcome = "fell"
)

type Options struct {
	Config config.GameConfig
	Assets levels.Assets

	// Clock seeds the per-run randomness (hazard layout, challenge draw);
	// zero means time.Now()
	Clock time.Time

	Debug bool
}

func DefaultOptions() Options {
	return Options{
		Config: config.Default(),
		Assets: levels.FullAssets(),
	}
}

type waterZone struct {
	X1       float64
	X2       float64
	SurfaceY float64
}

type Game struct {
	id      uuid.UUID
	level   levels.Level
	cfg     config.GameConfig
	debug   bool
	ticknum int
	now     time.Duration
	outcome Outcome

	world      *physics.World
	terrain    *terrain.Terrain
	truck      *vehicle.Truck
	score      *score.ScoreManager
	challenges *challenge.Manager

	manager *ecs.Manager

	physicalBodyComponent *ecs.Component
	destructibleComponent *ecs.Component
	hazardComponent       *ecs.Component
	collectibleComponent  *ecs.Component

	physicalView     *ecs.View
	destructibleView *ecs.View
	hazardView       *ecs.View
	collectibleView  *ecs.View

	// body descriptor id => entity
	ids   map[string]ecs.EntityID
	dying map[ecs.EntityID]*ecs.Entity

	spatial  *rtreego.Rtree
	spatials map[ecs.EntityID]*indexed
	water    []*waterZone

	events    []Event
	destroyed bool
}

func NewGame(level levels.Level, options Options) *Game {
	clock := options.Clock
	if clock.IsZero() {
		clock = time.Now()
	}

	manager := ecs.NewManager()

	game := &Game{
		id:     uuid.Must(uuid.NewV4()),
		level:  level,
		cfg:    options.Config,
		debug:  options.Debug,
		events: make([]Event, 0),

		manager: manager,

		physicalBodyComponent: manager.NewComponent(),
		destructibleComponent: manager.NewComponent(),
		hazardComponent:       manager.NewComponent(),
		collectibleComponent:  manager.NewComponent(),

		ids:      make(map[string]ecs.EntityID),
		dying:    make(map[ecs.EntityID]*ecs.Entity),
		spatial:  rtreego.NewTree(2, 25, 50),
		spatials: make(map[ecs.EntityID]*indexed),
	}

	game.physicalView = manager.CreateView(game.physicalBodyComponent)

	game.destructibleView = manager.CreateView(
		game.destructibleComponent,
		game.physicalBodyComponent,
	)

	game.hazardView = manager.CreateView(
		game.hazardComponent,
		game.physicalBodyComponent,
	)

	game.collectibleView = manager.CreateView(
		game.collectibleComponent,
		game.physicalBodyComponent,
	)

	game.physicalBodyComponent.SetDestructor(func(entity *ecs.Entity, data interface{}) {
		game.castPhysicalBody(data).body.Detach()
	})

	game.world = physics.NewWorld(game.cfg.Physics)

	game.terrain = terrain.New(game.cfg.Terrain, level.Profile)
	game.terrain.Build(game.world)

	game.truck = vehicle.NewTruck(
		game.world,
		game.id.String(),
		game.terrain.StartPosition(),
		game.cfg.Truck,
		level.Difficulty.Difficulty,
	)

	game.score = score.NewScoreManager(game.cfg.Combo)
	game.challenges = challenge.NewManager(level.ID, rand.New(rand.NewSource(clock.UnixNano())))

	initEntities(game, levels.NewPlacementContext(level.ID, clock, options.Assets))

	if game.debug {
		utils.DebugWithContext("mayhem", "run started", utils.Context{
			"run":   game.id.String(),
			"level": level.Name,
		})
	}

	return game
}

// initEntities lays out the level; layout draws happen in a fixed order so
// the track is the same on every run
func initEntities(game *Game, ctx levels.PlacementContext) {
	for _, placement := range game.level.Destructibles(game.terrain, ctx) {
		game.NewEntityDestructible(placement)
	}

	for _, position := range game.level.Gems(game.terrain, ctx) {
		game.NewEntityCollectible(position)
	}

	for _, placement := range game.level.Hazards(game.terrain, ctx) {
		game.NewEntityHazard(placement)
	}

	for _, zone := range game.level.WaterZones {
		game.newWaterZone(zone)
	}
}

func (g *Game) getEntity(descriptorID string, tagelements ...interface{}) *ecs.QueryResult {
	id, ok := g.ids[descriptorID]
	if !ok {
		return nil
	}

	return g.manager.GetEntityByID(id, tagelements...)
}

// markDying schedules the disposal of an entity at the end of the tick
func (g *Game) markDying(entity *ecs.Entity) {
	g.dying[entity.GetID()] = entity
}

func (g *Game) GetID() string {
	return g.id.String()
}

func (g *Game) GetLevel() levels.Level {
	return g.level
}

func (g *Game) GetTick() int {
	return g.ticknum
}

// GetTime is the simulated time elapsed since the start of the run
func (g *Game) GetTime() time.Duration {
	return g.now
}

func (g *Game) GetOutcome() Outcome {
	return g.outcome
}

func (g *Game) IsOver() bool {
	return g.outcome != OutcomeRunning
}

func (g *Game) GetTruck() *vehicle.Truck {
	return g.truck
}

func (g *Game) GetTerrain() *terrain.Terrain {
	return g.terrain
}

func (g *Game) GetWorld() *physics.World {
	return g.world
}

func (g *Game) GetStats() score.Stats {
	return g.score.Stats()
}

func (g *Game) GetChallengeManager() *challenge.Manager {
	return g.challenges
}

func (g *Game) CountDestructibles() int {
	return len(g.destructibleView.Get())
}

func (g *Game) CountHazards() int {
	return len(g.hazardView.Get())
}

func (g *Game) CountCollectibles() int {
	return len(g.collectibleView.Get())
}

// Destroy removes every body and joint of the run from the physics world
func (g *Game) Destroy() {
	if g.destroyed {
		return
	}

	g.destroyed = true

	remaining := make([]*ecs.Entity, 0)
	for _, entityresult := range g.physicalView.Get() {
		remaining = append(remaining, entityresult.Entity)
	}

	if len(remaining) > 0 {
		g.manager.DisposeEntities(remaining...)
	}

	g.ids = make(map[string]ecs.EntityID)
	g.dying = make(map[ecs.EntityID]*ecs.Entity)

	g.truck.Destroy()
	g.terrain.Destroy()
}
