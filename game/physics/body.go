package physics

import (
	"github.com/ByteArena/box2d"
	"github.com/truckmayhem/truckmayhem/common/types"
	"github.com/truckmayhem/truckmayhem/common/utils/vector"
)

// Body is a Box2D body seen in game units
type Body struct {
	world      *World
	body       *box2d.B2Body
	descriptor types.PhysicalBodyDescriptor
	detached   bool
}

func newBody(world *World, body *box2d.B2Body, descriptor types.PhysicalBodyDescriptor) *Body {
	return &Body{
		world:      world,
		body:       body,
		descriptor: descriptor,
	}
}

func (b *Body) GetDescriptor() types.PhysicalBodyDescriptor {
	return b.descriptor
}

func (b *Body) IsDetached() bool {
	return b.detached
}

// Detach removes the body (and its joints) from the world.
// Only the first call has an effect; it returns false afterwards.
func (b *Body) Detach() bool {
	if b.detached {
		return false
	}

	b.detached = true
	b.world.b2world.DestroyBody(b.body)

	return true
}

func (b *Body) GetPosition() vector.Vector2 {
	if b.detached {
		return vector.MakeNullVector2()
	}

	return b.world.units.PositionFromB2(b.body.GetPosition())
}

func (b *Body) GetAngle() float64 {
	if b.detached {
		return 0
	}

	return b.body.GetAngle()
}

// GetVelocity is expressed in world units per tick
func (b *Body) GetVelocity() vector.Vector2 {
	if b.detached {
		return vector.MakeNullVector2()
	}

	return b.world.units.VelocityFromB2(b.body.GetLinearVelocity())
}

func (b *Body) SetVelocity(v vector.Vector2) *Body {
	if !b.detached {
		b.body.SetLinearVelocity(b.world.units.VelocityToB2(v))
	}

	return b
}

// GetAngularVelocity is expressed in rad/tick
func (b *Body) GetAngularVelocity() float64 {
	if b.detached {
		return 0
	}

	return b.world.units.AngularVelocityFromB2(b.body.GetAngularVelocity())
}

func (b *Body) SetAngularVelocity(w float64) *Body {
	if !b.detached {
		b.body.SetAngularVelocity(b.world.units.AngularVelocityToB2(w))
	}

	return b
}

// ApplyAcceleration pushes the body through its center of mass for the next
// step; a is expressed in world units per tick²
func (b *Body) ApplyAcceleration(a vector.Vector2) *Body {
	if !b.detached {
		accel := b.world.units.AccelerationToB2(a)
		force := box2d.MakeB2Vec2(accel.X*b.body.GetMass(), accel.Y*b.body.GetMass())
		b.body.ApplyForce(force, b.body.GetWorldCenter(), true)
	}

	return b
}

// ApplyAngularAcceleration applies a torque for the next step; alpha is
// expressed in rad/tick²
func (b *Body) ApplyAngularAcceleration(alpha float64) *Body {
	if !b.detached {
		b.body.ApplyTorque(b.world.units.AngularAccelerationToB2(alpha)*b.body.GetInertia(), true)
	}

	return b
}
