package physics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/truckmayhem/truckmayhem/common/utils/vector"
)

func TestUnitsRoundTrip(t *testing.T) {
	units := MakeUnits(30, 60)

	pos := units.PositionFromB2(units.PositionToB2(vector.MakeVector2(150, 420)))
	assert.InDelta(t, 150, pos.GetX(), 1e-9)
	assert.InDelta(t, 420, pos.GetY(), 1e-9)

	// 10 world units per tick at 60 ticks/s is 600 units/s, 20 m/s
	v := units.VelocityToB2(vector.MakeVector2(10, 0))
	assert.InDelta(t, 20, v.X, 1e-9)
	back := units.VelocityFromB2(v)
	assert.InDelta(t, 10, back.GetX(), 1e-9)

	assert.InDelta(t, 24, units.AngularVelocityToB2(0.4), 1e-9)
	assert.InDelta(t, 0.4, units.AngularVelocityFromB2(24), 1e-9)

	a := units.AccelerationToB2(vector.MakeVector2(0.2, 0))
	assert.InDelta(t, 24, a.X, 1e-9)
}
