package entities

import (
	"time"

	"github.com/truckmayhem/truckmayhem/common/utils/vector"
)

type Hazard struct {
	spec      HazardSpec
	position  vector.Vector2
	hasHit    bool
	lastHit   time.Duration
	destroyed bool
	shape     Shape
}

func NewHazard(spec HazardSpec, position vector.Vector2, shape Shape) *Hazard {
	return &Hazard{
		spec:     spec,
		position: position,
		shape:    shapeOrNone(shape),
	}
}

func (h *Hazard) GetSpec() HazardSpec {
	return h.spec
}

func (h *Hazard) GetType() HazardType {
	return h.spec.Type
}

func (h *Hazard) GetPosition() vector.Vector2 {
	return h.position
}

func (h *Hazard) IsOneShot() bool {
	return h.spec.Cooldown == 0
}

func (h *Hazard) IsDestroyed() bool {
	return h.destroyed
}

// Hit triggers the hazard at run time now.
// It returns the damage to deal (0 while cooling down or once destroyed) and
// whether this trigger consumed the hazard.
func (h *Hazard) Hit(now time.Duration) (float64, bool) {
	if h.destroyed {
		return 0, false
	}

	if h.spec.Cooldown > 0 && h.hasHit && now-h.lastHit < h.spec.Cooldown {
		return 0, false
	}

	h.hasHit = true
	h.lastHit = now

	if h.IsOneShot() {
		h.Destroy()
		return h.spec.Damage, true
	}

	return h.spec.Damage, false
}

func (h *Hazard) Destroy() bool {
	if h.destroyed {
		return false
	}

	h.destroyed = true
	h.shape.Detach()

	return true
}
