package mayhem

import (
	"github.com/bytearena/ecs"
	"github.com/truckmayhem/truckmayhem/common/types"
	"github.com/truckmayhem/truckmayhem/common/utils/vector"
	"github.com/truckmayhem/truckmayhem/game/entities"
	"github.com/truckmayhem/truckmayhem/game/levels"
	"github.com/truckmayhem/truckmayhem/game/physics"
)

// newEntityWithBody creates a static box tagged with the entity id and
// registers it for contact lookup and spatial queries
func (g *Game) newEntityWithBody(def physics.BodyDef, width float64, height float64) (*ecs.Entity, *physics.Body) {
	entity := g.manager.NewEntity()

	def.Descriptor.ID = entity.GetID().String()
	body := g.world.CreateBox(def, width, height)

	g.ids[def.Descriptor.ID] = entity.GetID()
	g.index(entity.GetID(), def.Descriptor, def.Position, width, height)

	entity.AddComponent(g.physicalBodyComponent, &physicalBody{
		body:   body,
		width:  width,
		height: height,
	})

	return entity, body
}

func (g *Game) NewEntityDestructible(placement levels.DestructiblePlacement) *ecs.Entity {
	spec := placement.Spec

	entity, body := g.newEntityWithBody(physics.BodyDef{
		Descriptor:  types.MakePhysicalBodyDescriptor(types.PhysicalBodyKind.Destructible, ""),
		Position:    placement.Position,
		Friction:    entities.DestructibleFriction,
		Restitution: entities.DestructibleRestitution,
	}, spec.Width, spec.Height)

	return entity.AddComponent(g.destructibleComponent, &destructible{
		Destructible: entities.NewDestructible(spec, placement.Position, body),
		variant:      placement.Variant,
	})
}

func (g *Game) NewEntityHazard(placement levels.HazardPlacement) *ecs.Entity {
	spec := placement.Spec

	entity, body := g.newEntityWithBody(physics.BodyDef{
		Descriptor:  types.MakePhysicalBodyDescriptor(types.PhysicalBodyKind.Hazard, ""),
		Position:    placement.Position,
		Friction:    spec.Friction,
		Restitution: entities.HazardRestitution,
		Sensor:      spec.Sensor,
	}, spec.Width, spec.Height)

	return entity.AddComponent(g.hazardComponent, entities.NewHazard(spec, placement.Position, body))
}

func (g *Game) NewEntityCollectible(position vector.Vector2) *ecs.Entity {
	entity, body := g.newEntityWithBody(physics.BodyDef{
		Descriptor: types.MakePhysicalBodyDescriptor(types.PhysicalBodyKind.Collectible, ""),
		Position:   position,
		Sensor:     true,
	}, entities.CollectibleSize, entities.CollectibleSize)

	return entity.AddComponent(g.collectibleComponent, entities.NewCollectible(position, body))
}

func (g *Game) newWaterZone(zone levels.WaterZone) {
	water := &waterZone{
		X1:       zone.X1,
		X2:       zone.X2,
		SurfaceY: zone.SurfaceY(g.terrain),
	}

	g.water = append(g.water, water)
	g.indexWater(water)
}
