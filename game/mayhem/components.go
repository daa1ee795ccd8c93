package mayhem

import (
	"github.com/truckmayhem/truckmayhem/game/entities"
	"github.com/truckmayhem/truckmayhem/game/physics"
)

type physicalBody struct {
	body   *physics.Body
	width  float64
	height float64
}

func (g *Game) castPhysicalBody(data interface{}) *physicalBody {
	return data.(*physicalBody)
}

type destructible struct {
	*entities.Destructible
	variant int
}

func (g *Game) castDestructible(data interface{}) *destructible {
	return data.(*destructible)
}

func (g *Game) castHazard(data interface{}) *entities.Hazard {
	return data.(*entities.Hazard)
}

func (g *Game) castCollectible(data interface{}) *entities.Collectible {
	return data.(*entities.Collectible)
}
