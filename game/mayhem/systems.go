package mayhem

import (
	"time"

	"github.com/bytearena/ecs"
	"github.com/truckmayhem/truckmayhem/common/types"
	"github.com/truckmayhem/truckmayhem/common/utils"
	"github.com/truckmayhem/truckmayhem/game/contact"
	"github.com/truckmayhem/truckmayhem/game/entities"
	"github.com/truckmayhem/truckmayhem/game/vehicle"
)

// Step advances the run by one tick; it does nothing once the run is over
func (g *Game) Step(dt time.Duration, input vehicle.Input) {
	if g.IsOver() || g.destroyed {
		return
	}

	watch := utils.MakeStopwatch("mayhem::Step()")
	watch.Start("Step")

	g.ticknum++
	g.now += dt

	///////////////////////////////////////////////////////////////////////////
	// Physics, then a copy of the contacts of this tick
	///////////////////////////////////////////////////////////////////////////
	watch.Start("systemPhysics")
	g.world.Step(dt)
	begins := g.world.PopBeginContacts()
	active := g.world.ActiveContacts()
	watch.Stop("systemPhysics")

	///////////////////////////////////////////////////////////////////////////
	// Truck: ground state, landing, controls
	///////////////////////////////////////////////////////////////////////////
	watch.Start("systemTruck")
	landing, landed := g.truck.Update(active, input, dt, g.now)
	g.forwardTruckFeedback()
	if landed {
		systemLanding(g, landing)
	}
	watch.Stop("systemTruck")

	///////////////////////////////////////////////////////////////////////////
	// Contacts: edge triggered first, then hazards the truck is still touching
	///////////////////////////////////////////////////////////////////////////
	watch.Start("systemContacts")
	systemBeginContacts(g, contact.ClassifyAll(begins))
	systemActiveHazards(g, contact.ClassifyAll(active))
	watch.Stop("systemContacts")

	watch.Start("systemWater")
	systemWater(g)
	watch.Stop("systemWater")

	g.score.Tick(dt)

	watch.Start("systemChallenges")
	systemChallenges(g)
	watch.Stop("systemChallenges")

	systemTerminal(g)

	///////////////////////////////////////////////////////////////////////////
	// Entities destroyed during the tick are disposed last so that contacts
	// of this tick never point to a removed body
	///////////////////////////////////////////////////////////////////////////
	watch.Start("systemDeleteEntities")
	systemDeleteEntities(g)
	watch.Stop("systemDeleteEntities")

	watch.Stop("Step")

	if g.debug {
		utils.Debug("mayhem", watch.String())
	}
}

func systemLanding(g *Game, landing vehicle.Landing) {
	points := 0

	if landing.AirDuration > g.cfg.Run.MinAirTimeScored {
		points += g.score.AddAirTimePoints(landing.AirDuration)
		if landing.Flips > 0 {
			points += g.score.AddFlipPoints(landing.Flips)
		}
	}

	l := landing
	g.emit(Event{
		Kind:     EventLanded,
		Position: g.truck.GetPosition(),
		Points:   points,
		Damage:   landing.Damage,
		Landing:  &l,
	})
}

func systemBeginContacts(g *Game, routes []contact.Route) {
	for _, route := range routes {
		switch route.Target.Kind {
		case types.PhysicalBodyKind.Destructible:
			hitDestructible(g, route)
		case types.PhysicalBodyKind.Collectible:
			hitCollectible(g, route)
		case types.PhysicalBodyKind.Hazard:
			hitHazard(g, route)
		}
	}
}

func systemActiveHazards(g *Game, routes []contact.Route) {
	for _, route := range routes {
		if route.Target.Kind == types.PhysicalBodyKind.Hazard {
			hitHazard(g, route)
		}
	}
}

func hitDestructible(g *Game, route contact.Route) {
	qr := g.getEntity(route.Target.ID, g.destructibleComponent)
	if qr == nil {
		return
	}

	d := g.castDestructible(qr.Components[g.destructibleComponent])
	if d.IsDestroyed() {
		return
	}

	damage := entities.ImpactDamage(route.ImpactSpeed(), g.cfg.Run.ImpactSpeedMin)
	if reward, destroyed := d.Damage(damage); destroyed {
		onDestroyed(g, qr.Entity, reward)
	}
}

func onDestroyed(g *Game, entity *ecs.Entity, reward entities.Reward) {
	points := g.score.AddDestructionPoints(reward.Points, reward.Type)

	refill := reward.NitroRefill
	if refill <= 0 {
		refill = defaultNitroRefill
	}
	g.truck.Refuel(refill)

	g.emit(Event{
		Kind:            EventDestructibleDestroyed,
		Position:        reward.Position,
		Points:          points,
		ComboMultiplier: g.score.GetComboMultiplier(),
		Type:            string(reward.Type),
		Explosion:       reward.Explosion,
	})
	g.explosionShake(reward.Position, reward.Explosion)

	g.markDying(entity)
}

func hitCollectible(g *Game, route contact.Route) {
	qr := g.getEntity(route.Target.ID, g.collectibleComponent)
	if qr == nil {
		return
	}

	c := g.castCollectible(qr.Components[g.collectibleComponent])
	if !c.Collect() {
		return
	}

	g.emit(Event{
		Kind:     EventCollectibleCollected,
		Position: c.GetPosition(),
		Points:   g.score.AddGemPoints(),
	})

	g.markDying(qr.Entity)
}

func hitHazard(g *Game, route contact.Route) {
	qr := g.getEntity(route.Target.ID, g.hazardComponent)
	if qr == nil {
		return
	}

	h := g.castHazard(qr.Components[g.hazardComponent])
	damage, consumed := h.Hit(g.now)
	if damage <= 0 {
		return
	}

	g.truck.TakeDamage(damage)
	g.score.AddHazardHit()

	spec := h.GetSpec()
	g.emit(Event{
		Kind:      EventHazardTriggered,
		Position:  h.GetPosition(),
		Damage:    damage,
		Type:      string(spec.Type),
		Label:     spec.Label,
		Explosion: spec.Explosion,
	})

	if spec.Explosion != entities.ExplosionNone {
		g.explosionShake(h.GetPosition(), spec.Explosion)
	}

	if consumed {
		g.markDying(qr.Entity)
	}
}

func systemWater(g *Game) {
	for range g.submergedIn(g.truck.GetPosition()) {
		g.truck.Drain(g.cfg.Run.WaterDamagePerTick)
	}
}

func systemChallenges(g *Game) {
	for _, ch := range g.challenges.CheckProgress(g.score.Stats()) {
		completed := ch
		g.emit(Event{
			Kind:      EventChallengeCompleted,
			Position:  g.truck.GetPosition(),
			Challenge: &completed,
		})
	}
}

func systemTerminal(g *Game) {
	position := g.truck.GetPosition()

	switch {
	case g.truck.GetHealth() <= 0:
		g.outcome = OutcomeWrecked
	case position.GetY() > g.cfg.Run.FallY:
		g.outcome = OutcomeFell
	case position.GetX() >= g.terrain.FinishX():
		g.outcome = OutcomeFinished
		g.score.SetFinishHealth(g.truck.GetHealth())
		systemChallenges(g)
	default:
		return
	}

	g.emit(Event{
		Kind:     EventRunEnded,
		Position: position,
		Points:   g.score.GetScore(),
		Outcome:  g.outcome,
	})

	if g.debug {
		utils.DebugWithContext("mayhem", "run ended", utils.Context{
			"run":     g.id.String(),
			"outcome": string(g.outcome),
			"score":   g.score.GetScore(),
			"ticks":   g.ticknum,
		})
	}
}

func systemDeleteEntities(g *Game) {
	if len(g.dying) == 0 {
		return
	}

	entitiesToRemove := make([]*ecs.Entity, 0, len(g.dying))
	for id, entity := range g.dying {
		entitiesToRemove = append(entitiesToRemove, entity)
		g.unindex(id)
	}

	for descriptorID, id := range g.ids {
		if _, ok := g.dying[id]; ok {
			delete(g.ids, descriptorID)
		}
	}

	g.manager.DisposeEntities(entitiesToRemove...)
	g.dying = make(map[ecs.EntityID]*ecs.Entity)
}
