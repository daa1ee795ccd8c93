package entities

// Shape is the collision shape owned by an entity.
// Detach must remove it from the physics world; only the first call counts.
type Shape interface {
	Detach() bool
}

type noShape struct{}

func (noShape) Detach() bool { return false }

func shapeOrNone(shape Shape) Shape {
	if shape == nil {
		return noShape{}
	}

	return shape
}
