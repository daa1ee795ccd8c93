package contact

import (
	"github.com/truckmayhem/truckmayhem/common/types"
	"github.com/truckmayhem/truckmayhem/common/utils/vector"
	"github.com/truckmayhem/truckmayhem/game/physics"
)

// Route is a contact between a vehicle part and a game entity, oriented
// vehicle first
type Route struct {
	Part     types.PhysicalBodyDescriptor
	Velocity vector.Vector2 // vehicle part, world units per tick
	Target   types.PhysicalBodyDescriptor
}

func isEntity(descriptor types.PhysicalBodyDescriptor) bool {
	switch descriptor.Kind {
	case types.PhysicalBodyKind.Destructible,
		types.PhysicalBodyKind.Hazard,
		types.PhysicalBodyKind.Collectible:
		return true
	}

	return false
}

// Classify orients a contact pair; pairs that are not vehicle/entity are ignored
func Classify(pair physics.ContactPair) (Route, bool) {
	if pair.B.IsVehiclePart() && !pair.A.IsVehiclePart() {
		pair = pair.Swap()
	}

	if !pair.A.IsVehiclePart() || !isEntity(pair.B) {
		return Route{}, false
	}

	return Route{
		Part:     pair.A,
		Velocity: pair.VelocityA,
		Target:   pair.B,
	}, true
}

// ClassifyAll keeps the routed pairs, in order, and drops the others
func ClassifyAll(pairs []physics.ContactPair) []Route {
	routes := make([]Route, 0, len(pairs))
	for _, pair := range pairs {
		if route, ok := Classify(pair); ok {
			routes = append(routes, route)
		}
	}

	return routes
}

// ImpactSpeed is the speed of the vehicle part when the contact began
func (r Route) ImpactSpeed() float64 {
	return r.Velocity.Mag()
}
