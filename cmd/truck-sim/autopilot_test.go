package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/truckmayhem/truckmayhem/common/types"
	"github.com/truckmayhem/truckmayhem/common/utils/vector"
	"github.com/truckmayhem/truckmayhem/game/mayhem"
	"github.com/truckmayhem/truckmayhem/game/vehicle"
)

func truckAt(x float64, grounded bool, angle float64, fuel float64) mayhem.Frame {
	return mayhem.Frame{
		Truck: mayhem.TruckFrame{
			Position:  vector.MakeVector2(x, 400),
			Angle:     angle,
			Grounded:  grounded,
			BoostFuel: fuel,
		},
	}
}

func withHazard(frame mayhem.Frame, x float64) mayhem.Frame {
	frame.Objects = append(frame.Objects, mayhem.FrameObject{
		Kind:     types.PhysicalBodyKind.Hazard.String(),
		Position: vector.MakeVector2(x, 480),
		Width:    40,
	})

	return frame
}

func TestAutopilot(t *testing.T) {
	cases := []struct {
		name     string
		manual   bool
		frame    mayhem.Frame
		expected vehicle.Input
	}{
		{"manual", true, withHazard(truckAt(100, true, 0, 100), 200), vehicle.Input{Forward: true}},
		{"cruise", false, truckAt(100, true, 0, 10), vehicle.Input{Forward: true}},
		{"boost", false, truckAt(100, true, 0, 100), vehicle.Input{Forward: true, Boost: true}},
		{"no boost on a slope", false, truckAt(100, true, 0.4, 100), vehicle.Input{Forward: true}},
		{"jump over hazard", false, withHazard(truckAt(100, true, 0, 10), 200), vehicle.Input{Forward: true, Jump: true}},
		{"hazard behind", false, withHazard(truckAt(300, true, 0, 10), 200), vehicle.Input{Forward: true}},
		{"hazard far ahead", false, withHazard(truckAt(100, true, 0, 10), 600), vehicle.Input{Forward: true}},
		{"nose dipping in the air", false, truckAt(100, false, 0.5, 10), vehicle.Input{Forward: true, LeanBack: true}},
		{"nose rising in the air", false, truckAt(100, false, -0.5, 10), vehicle.Input{Forward: true, LeanForward: true}},
		{"level in the air", false, truckAt(100, false, 0.05, 10), vehicle.Input{Forward: true}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.expected, autopilot{manual: c.manual}.Input(c.frame))
		})
	}
}
