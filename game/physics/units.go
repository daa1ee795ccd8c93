package physics

import (
	"github.com/ByteArena/box2d"
	"github.com/truckmayhem/truckmayhem/common/utils/vector"
)

// Units converts between game units and Box2D SI units.
// Game positions are expressed in world units (pixels), game velocities in
// world units per tick, angular velocities in rad/tick.
// Box2D works in meters, m/s and rad/s.
type Units struct {
	pixelsPerMeter float64
	ticksPerSecond float64
}

func MakeUnits(pixelsPerMeter float64, ticksPerSecond float64) Units {
	return Units{
		pixelsPerMeter: pixelsPerMeter,
		ticksPerSecond: ticksPerSecond,
	}
}

func (u Units) GetPixelsPerMeter() float64 {
	return u.pixelsPerMeter
}

func (u Units) GetTicksPerSecond() float64 {
	return u.ticksPerSecond
}

func (u Units) LengthToB2(l float64) float64 {
	return l / u.pixelsPerMeter
}

func (u Units) LengthFromB2(l float64) float64 {
	return l * u.pixelsPerMeter
}

func (u Units) PositionToB2(v vector.Vector2) box2d.B2Vec2 {
	return v.Scale(1 / u.pixelsPerMeter).ToB2Vec2()
}

func (u Units) PositionFromB2(v box2d.B2Vec2) vector.Vector2 {
	return vector.FromB2Vec2(v).Scale(u.pixelsPerMeter)
}

// VelocityToB2 converts world units/tick to m/s
func (u Units) VelocityToB2(v vector.Vector2) box2d.B2Vec2 {
	return v.Scale(u.ticksPerSecond / u.pixelsPerMeter).ToB2Vec2()
}

// VelocityFromB2 converts m/s to world units/tick
func (u Units) VelocityFromB2(v box2d.B2Vec2) vector.Vector2 {
	return vector.FromB2Vec2(v).Scale(u.pixelsPerMeter / u.ticksPerSecond)
}

func (u Units) AngularVelocityToB2(w float64) float64 {
	return w * u.ticksPerSecond
}

func (u Units) AngularVelocityFromB2(w float64) float64 {
	return w / u.ticksPerSecond
}

// AccelerationToB2 converts world units/tick² to m/s²
func (u Units) AccelerationToB2(a vector.Vector2) box2d.B2Vec2 {
	return a.Scale(u.ticksPerSecond * u.ticksPerSecond / u.pixelsPerMeter).ToB2Vec2()
}

// AngularAccelerationToB2 converts rad/tick² to rad/s²
func (u Units) AngularAccelerationToB2(alpha float64) float64 {
	return alpha * u.ticksPerSecond * u.ticksPerSecond
}
