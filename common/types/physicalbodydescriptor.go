package types

// PhysicalBodyDescriptor is set as UserData on Box2D physical bodies to be able to determine collider and collidee from Box2D contact callbacks
type PhysicalBodyDescriptor struct {
	Kind _physicalkind
	Part _vehiclepart
	ID   string
}

type _physicalkind string

func (k _physicalkind) String() string {
	switch k {
	case PhysicalBodyKind.Terrain:
		return "Terrain"
	case PhysicalBodyKind.Wall:
		return "Wall"
	case PhysicalBodyKind.Vehicle:
		return "Vehicle"
	case PhysicalBodyKind.Destructible:
		return "Destructible"
	case PhysicalBodyKind.Hazard:
		return "Hazard"
	case PhysicalBodyKind.Collectible:
		return "Collectible"
	}

	return "UnknownKind"
}

var PhysicalBodyKind = struct {
	Terrain      _physicalkind
	Wall         _physicalkind
	Vehicle      _physicalkind
	Destructible _physicalkind
	Hazard       _physicalkind
	Collectible  _physicalkind
}{
	Terrain:      _physicalkind("t"),
	Wall:         _physicalkind("w"),
	Vehicle:      _physicalkind("v"),
	Destructible: _physicalkind("d"),
	Hazard:       _physicalkind("h"),
	Collectible:  _physicalkind("c"),
}

type _vehiclepart string

func (p _vehiclepart) String() string {
	switch p {
	case VehiclePart.Chassis:
		return "Chassis"
	case VehiclePart.FrontWheel:
		return "FrontWheel"
	case VehiclePart.RearWheel:
		return "RearWheel"
	}

	return "None"
}

// IsWheel is true for both wheels of the vehicle
func (p _vehiclepart) IsWheel() bool {
	return p == VehiclePart.FrontWheel || p == VehiclePart.RearWheel
}

var VehiclePart = struct {
	None       _vehiclepart
	Chassis    _vehiclepart
	FrontWheel _vehiclepart
	RearWheel  _vehiclepart
}{
	None:       _vehiclepart(""),
	Chassis:    _vehiclepart("chassis"),
	FrontWheel: _vehiclepart("wheel-front"),
	RearWheel:  _vehiclepart("wheel-rear"),
}

func MakePhysicalBodyDescriptor(kind _physicalkind, id string) PhysicalBodyDescriptor {
	return PhysicalBodyDescriptor{
		Kind: kind,
		Part: VehiclePart.None,
		ID:   id,
	}
}

func MakeVehiclePartDescriptor(part _vehiclepart, id string) PhysicalBodyDescriptor {
	return PhysicalBodyDescriptor{
		Kind: PhysicalBodyKind.Vehicle,
		Part: part,
		ID:   id,
	}
}

// IsGround is true for the surfaces a wheel can stand on
func (d PhysicalBodyDescriptor) IsGround() bool {
	return d.Kind == PhysicalBodyKind.Terrain || d.Kind == PhysicalBodyKind.Destructible
}

func (d PhysicalBodyDescriptor) IsVehiclePart() bool {
	return d.Kind == PhysicalBodyKind.Vehicle
}
