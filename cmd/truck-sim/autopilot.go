package main

import (
	"math"

	"github.com/truckmayhem/truckmayhem/common/types"
	"github.com/truckmayhem/truckmayhem/game/mayhem"
	"github.com/truckmayhem/truckmayhem/game/vehicle"
)

const (
	// hazards closer than this ahead of the truck make it jump
	jumpLookahead = 140.0

	// boost is kept for long runs above this fuel level
	boostFuelReserve = 40.0

	levelingAngle = 0.15
)

// autopilot drives a run from its frames
type autopilot struct {
	manual bool
}

func (a autopilot) Input(frame mayhem.Frame) vehicle.Input {
	input := vehicle.Input{Forward: true}
	if a.manual {
		return input
	}

	truck := frame.Truck
	x := truck.Position.GetX()

	if truck.Grounded {
		input.Boost = truck.BoostFuel > boostFuelReserve && math.Abs(truck.Angle) < levelingAngle
		input.Jump = hazardAhead(frame, x)
		return input
	}

	// keep the chassis level in the air
	angle := math.Remainder(truck.Angle, 2*math.Pi)
	switch {
	case angle > levelingAngle:
		input.LeanBack = true
	case angle < -levelingAngle:
		input.LeanForward = true
	}

	return input
}

func hazardAhead(frame mayhem.Frame, x float64) bool {
	for _, object := range frame.Objects {
		if object.Kind != types.PhysicalBodyKind.Hazard.String() {
			continue
		}

		front := object.Position.GetX() - object.Width/2
		if front > x && front-x < jumpLookahead {
			return true
		}
	}

	return false
}
