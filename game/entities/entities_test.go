package entities

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/truckmayhem/truckmayhem/common/utils/vector"
)

type countingShape struct {
	detached int
}

func (s *countingShape) Detach() bool {
	s.detached++
	return s.detached == 1
}

func TestDestructibleDestroyIsIdempotent(t *testing.T) {
	shape := &countingShape{}
	d := NewDestructible(DestructibleSpecs[RockPile], vector.MakeVector2(10, 20), shape)

	_, destroyed := d.Damage(1)
	assert.False(t, destroyed)
	assert.Equal(t, 1, d.GetHealth())

	reward, destroyed := d.Damage(1)
	assert.True(t, destroyed)
	assert.Equal(t, 50, reward.Points)
	assert.Equal(t, ExplosionMedium, reward.Explosion)
	assert.Equal(t, 8.0, reward.NitroRefill)
	assert.True(t, reward.Position.Equals(vector.MakeVector2(10, 20)))

	_, destroyed = d.Damage(5)
	assert.False(t, destroyed)
	_, destroyed = d.Destroy()
	assert.False(t, destroyed)

	assert.True(t, d.IsDestroyed())
	assert.Equal(t, 1, shape.detached)
}

func TestDestructibleOverkill(t *testing.T) {
	d := NewDestructible(DestructibleSpecs[Tank], vector.MakeNullVector2(), nil)

	reward, destroyed := d.Damage(9)
	assert.True(t, destroyed)
	assert.Equal(t, Tank, reward.Type)
	assert.True(t, reward.Type.IsVehicle())
}

func TestImpactDamage(t *testing.T) {
	tests := []struct {
		speed float64
		want  int
	}{
		{0.5, 0},
		{1.5, 0},
		{1.6, 1},
		{4, 2},
		{7.1, 4},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ImpactDamage(tt.speed, 1.5), "speed %v", tt.speed)
	}
}

func TestRepeatingHazardCooldown(t *testing.T) {
	shape := &countingShape{}
	h := NewHazard(HazardSpecs[SpikeStrip], vector.MakeNullVector2(), shape)
	cooldown := h.GetSpec().Cooldown

	start := 50 * time.Millisecond

	damage, consumed := h.Hit(start)
	assert.Equal(t, 12.0, damage)
	assert.False(t, consumed)

	damage, _ = h.Hit(start + cooldown - time.Millisecond)
	assert.Equal(t, 0.0, damage)

	damage, _ = h.Hit(start + cooldown)
	assert.Equal(t, 12.0, damage)

	assert.False(t, h.IsDestroyed())
	assert.Equal(t, 0, shape.detached)
}

func TestOneShotHazard(t *testing.T) {
	shape := &countingShape{}
	h := NewHazard(HazardSpecs[Mine], vector.MakeNullVector2(), shape)

	damage, consumed := h.Hit(time.Second)
	assert.Equal(t, 22.0, damage)
	assert.True(t, consumed)

	damage, consumed = h.Hit(2 * time.Second)
	assert.Equal(t, 0.0, damage)
	assert.False(t, consumed)

	assert.False(t, h.Destroy())
	assert.Equal(t, 1, shape.detached)
}

func TestCollectOnce(t *testing.T) {
	shape := &countingShape{}
	c := NewCollectible(vector.MakeVector2(5, 5), shape)

	assert.True(t, c.Collect())
	assert.False(t, c.Collect())
	assert.True(t, c.IsCollected())
	assert.Equal(t, 1, shape.detached)
}

func TestCatalog(t *testing.T) {
	for typ, spec := range DestructibleSpecs {
		assert.Equal(t, typ, spec.Type)
		assert.True(t, spec.Health >= 1)
	}

	for typ, spec := range HazardSpecs {
		assert.Equal(t, typ, spec.Type)
	}

	assert.True(t, HazardSpecs[OilSlick].Sensor)
	assert.True(t, HazardSpecs[FirePit].Sensor)
	assert.False(t, HazardSpecs[SpikeStrip].Sensor)
}
