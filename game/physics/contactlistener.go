package physics

import (
	"github.com/ByteArena/box2d"
	"github.com/truckmayhem/truckmayhem/common/types"
	"github.com/truckmayhem/truckmayhem/common/utils/vector"
)

// ContactPair is a copy of a Box2D contact taken while it was valid.
// Velocities are expressed in world units per tick.
type ContactPair struct {
	A         types.PhysicalBodyDescriptor
	B         types.PhysicalBodyDescriptor
	VelocityA vector.Vector2
	VelocityB vector.Vector2
}

func (p ContactPair) Swap() ContactPair {
	return ContactPair{
		A:         p.B,
		B:         p.A,
		VelocityA: p.VelocityB,
		VelocityB: p.VelocityA,
	}
}

func makeContactPair(units Units, contact box2d.B2ContactInterface) (ContactPair, bool) {
	bodyA := contact.GetFixtureA().GetBody()
	bodyB := contact.GetFixtureB().GetBody()

	descriptorA, ok := bodyA.GetUserData().(types.PhysicalBodyDescriptor)
	if !ok {
		return ContactPair{}, false
	}

	descriptorB, ok := bodyB.GetUserData().(types.PhysicalBodyDescriptor)
	if !ok {
		return ContactPair{}, false
	}

	return ContactPair{
		A:         descriptorA,
		B:         descriptorB,
		VelocityA: units.VelocityFromB2(bodyA.GetLinearVelocity()),
		VelocityB: units.VelocityFromB2(bodyB.GetLinearVelocity()),
	}, true
}

type collisionListener struct { /* implements box2d.B2World.B2ContactListenerInterface */
	units       Units
	beginbuffer []ContactPair
}

func (listener *collisionListener) PopCollisions() []ContactPair {
	defer func() { listener.beginbuffer = make([]ContactPair, 0) }()
	return listener.beginbuffer
}

// Called when two fixtures begin to touch.
// The contact is copied right away: Box2D reuses contact objects once the step is over.
func (listener *collisionListener) BeginContact(contact box2d.B2ContactInterface) { // contact has to be backed by a pointer
	if pair, ok := makeContactPair(listener.units, contact); ok {
		listener.beginbuffer = append(listener.beginbuffer, pair)
	}
}

// Called when two fixtures cease to touch.
func (listener *collisionListener) EndContact(contact box2d.B2ContactInterface) { // contact has to be backed by a pointer
}

func (listener *collisionListener) PreSolve(contact box2d.B2ContactInterface, oldManifold box2d.B2Manifold) { // contact has to be backed by a pointer
}

func (listener *collisionListener) PostSolve(contact box2d.B2ContactInterface, impulse *box2d.B2ContactImpulse) { // contact has to be backed by a pointer
}

func newCollisionListener(units Units) *collisionListener {
	return &collisionListener{
		units:       units,
		beginbuffer: make([]ContactPair, 0),
	}
}
