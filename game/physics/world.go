package physics

import (
	"time"

	"github.com/ByteArena/box2d"
	"github.com/truckmayhem/truckmayhem/common/types"
	"github.com/truckmayhem/truckmayhem/common/utils/vector"
	"github.com/truckmayhem/truckmayhem/config"
)

type World struct {
	b2world            *box2d.B2World
	units              Units
	collisionListener  *collisionListener
	velocityIterations int
	positionIterations int
}

func NewWorld(cfg config.PhysicsConfig) *World {
	units := MakeUnits(cfg.PixelsPerMeter, cfg.TicksPerSecond)

	// y axis points down, as on screen
	gravity := box2d.MakeB2Vec2(0.0, units.LengthToB2(cfg.Gravity))
	b2world := box2d.MakeB2World(gravity)

	world := &World{
		b2world:            &b2world,
		units:              units,
		collisionListener:  newCollisionListener(units),
		velocityIterations: cfg.VelocityIterations,
		positionIterations: cfg.PositionIterations,
	}

	world.b2world.SetContactListener(world.collisionListener)

	return world
}

func (w *World) GetUnits() Units {
	return w.units
}

func (w *World) Step(dt time.Duration) {
	w.b2world.Step(dt.Seconds(), w.velocityIterations, w.positionIterations)
}

// PopBeginContacts returns the contacts that started during the last steps
// and clears the buffer
func (w *World) PopBeginContacts() []ContactPair {
	return w.collisionListener.PopCollisions()
}

// ActiveContacts enumerates the touching contacts of the world as of now.
// The returned pairs are copies; they stay valid when bodies are destroyed.
func (w *World) ActiveContacts() []ContactPair {
	pairs := make([]ContactPair, 0)

	for contact := w.b2world.GetContactList(); contact != nil; contact = contact.GetNext() {
		if !contact.IsTouching() || !contact.IsEnabled() {
			continue
		}

		if pair, ok := makeContactPair(w.units, contact); ok {
			pairs = append(pairs, pair)
		}
	}

	return pairs
}

func (w *World) GetBodyCount() int {
	return w.b2world.GetBodyCount()
}

func (w *World) GetJointCount() int {
	return w.b2world.GetJointCount()
}

type BodyDef struct {
	Descriptor  types.PhysicalBodyDescriptor
	Position    vector.Vector2 // center, world units
	Angle       float64
	Dynamic     bool
	Density     float64
	Friction    float64
	Restitution float64
	Sensor      bool
	GroupIndex  int16 // bodies sharing a negative group never collide together
}

func (w *World) createBody(def BodyDef) *box2d.B2Body {
	bodydef := box2d.MakeB2BodyDef()
	bodydef.Position = w.units.PositionToB2(def.Position)
	bodydef.Angle = def.Angle
	bodydef.AllowSleep = false

	if def.Dynamic {
		bodydef.Type = box2d.B2BodyType.B2_dynamicBody
	} else {
		bodydef.Type = box2d.B2BodyType.B2_staticBody
	}

	body := w.b2world.CreateBody(&bodydef)
	body.SetUserData(def.Descriptor)

	return body
}

func (w *World) attachFixture(body *box2d.B2Body, shape box2d.B2ShapeInterface, def BodyDef) {
	fixturedef := box2d.MakeB2FixtureDef()
	fixturedef.Shape = shape
	fixturedef.Density = def.Density
	fixturedef.Friction = def.Friction
	fixturedef.Restitution = def.Restitution
	fixturedef.IsSensor = def.Sensor
	fixturedef.Filter.GroupIndex = def.GroupIndex

	body.CreateFixtureFromDef(&fixturedef)
}

// CreateBox creates a rectangle body of the given size (world units)
func (w *World) CreateBox(def BodyDef, width float64, height float64) *Body {
	body := w.createBody(def)

	shape := box2d.MakeB2PolygonShape()
	shape.SetAsBox(w.units.LengthToB2(width/2), w.units.LengthToB2(height/2))
	w.attachFixture(body, &shape, def)

	return newBody(w, body, def.Descriptor)
}

// CreateCircle creates a circle body of the given radius (world units)
func (w *World) CreateCircle(def BodyDef, radius float64) *Body {
	body := w.createBody(def)

	shape := box2d.MakeB2CircleShape()
	shape.SetRadius(w.units.LengthToB2(radius))
	w.attachFixture(body, &shape, def)

	return newBody(w, body, def.Descriptor)
}

// CreateSuspension links the wheel to the chassis with a spring along the
// chassis vertical axis; the rest position is the current wheel position
func (w *World) CreateSuspension(chassis *Body, wheel *Body, frequencyHz float64, dampingRatio float64) *Joint {
	jointdef := box2d.MakeB2WheelJointDef()
	axis := box2d.MakeB2Vec2(0.0, 1.0)
	jointdef.Initialize(chassis.body, wheel.body, wheel.body.GetPosition(), axis)
	jointdef.FrequencyHz = frequencyHz
	jointdef.DampingRatio = dampingRatio
	jointdef.EnableMotor = false

	joint := w.b2world.CreateJoint(&jointdef)

	return &Joint{
		world: w,
		joint: joint,
	}
}

type Joint struct {
	world    *World
	joint    box2d.B2JointInterface
	detached bool
}

func (j *Joint) IsDetached() bool {
	return j.detached
}

// Detach removes the joint from the world; later calls are no-ops
func (j *Joint) Detach() bool {
	if j.detached {
		return false
	}

	j.detached = true
	j.world.b2world.DestroyJoint(j.joint)
	j.joint = nil

	return true
}
