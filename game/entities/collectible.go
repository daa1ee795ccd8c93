package entities

import "github.com/truckmayhem/truckmayhem/common/utils/vector"

type Collectible struct {
	position  vector.Vector2
	collected bool
	shape     Shape
}

func NewCollectible(position vector.Vector2, shape Shape) *Collectible {
	return &Collectible{
		position: position,
		shape:    shapeOrNone(shape),
	}
}

func (c *Collectible) GetPosition() vector.Vector2 {
	return c.position
}

func (c *Collectible) IsCollected() bool {
	return c.collected
}

// Collect is true only for the first call
func (c *Collectible) Collect() bool {
	if c.collected {
		return false
	}

	c.collected = true
	c.shape.Detach()

	return true
}
