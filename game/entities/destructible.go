package entities

import (
	"math"

	"github.com/truckmayhem/truckmayhem/common/utils/vector"
)

// Reward is produced once, when a destructible is destroyed
type Reward struct {
	Position    vector.Vector2
	Type        DestructibleType
	Points      int
	Explosion   Explosion
	NitroRefill float64
}

type Destructible struct {
	spec      DestructibleSpec
	position  vector.Vector2
	health    int
	destroyed bool
	shape     Shape
}

func NewDestructible(spec DestructibleSpec, position vector.Vector2, shape Shape) *Destructible {
	health := spec.Health
	if health <= 0 {
		health = 1
	}

	return &Destructible{
		spec:     spec,
		position: position,
		health:   health,
		shape:    shapeOrNone(shape),
	}
}

func (d *Destructible) GetSpec() DestructibleSpec {
	return d.spec
}

func (d *Destructible) GetType() DestructibleType {
	return d.spec.Type
}

func (d *Destructible) GetPosition() vector.Vector2 {
	return d.position
}

func (d *Destructible) GetHealth() int {
	return d.health
}

func (d *Destructible) IsDestroyed() bool {
	return d.destroyed
}

// Damage removes health; the reward is returned by the call that destroys it
func (d *Destructible) Damage(amount int) (Reward, bool) {
	if d.destroyed || amount <= 0 {
		return Reward{}, false
	}

	d.health -= amount
	if d.health <= 0 {
		return d.Destroy()
	}

	return Reward{}, false
}

func (d *Destructible) Destroy() (Reward, bool) {
	if d.destroyed {
		return Reward{}, false
	}

	d.destroyed = true
	d.shape.Detach()

	return Reward{
		Position:    d.position,
		Type:        d.spec.Type,
		Points:      d.spec.Points,
		Explosion:   d.spec.Explosion,
		NitroRefill: d.spec.NitroRefill,
	}, true
}

// ImpactDamage converts the speed of a vehicle part hitting a destructible
// into damage; slow contacts deal nothing
func ImpactDamage(speed float64, minSpeed float64) int {
	if speed <= minSpeed {
		return 0
	}

	return int(math.Ceil(speed / 2))
}
