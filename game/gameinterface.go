package game

import (
	"time"

	"github.com/truckmayhem/truckmayhem/game/mayhem"
	"github.com/truckmayhem/truckmayhem/game/vehicle"
)

// Simulation is a run driven tick by tick by a host loop
type Simulation interface {
	GetID() string
	GetTick() int
	Step(dt time.Duration, input vehicle.Input)
	Frame() mayhem.Frame
	PopEvents() []mayhem.Event
	IsOver() bool
	Result() mayhem.Result
	Destroy()
}

var _ Simulation = (*mayhem.Game)(nil)

// Pilot chooses the input of the next tick from the last frame
type Pilot interface {
	Input(frame mayhem.Frame) vehicle.Input
}

// TickHandler receives every tick once stepped; an error stops the drive
type TickHandler func(frame mayhem.Frame, events []mayhem.Event) error

// Drive steps sim until it is over, maxTicks is reached or onTick fails.
// wait, when set, is called before every step to pace the run.
func Drive(sim Simulation, pilot Pilot, dt time.Duration, maxTicks int, wait func(), onTick TickHandler) error {
	frame := sim.Frame()

	for !sim.IsOver() && sim.GetTick() < maxTicks {
		if wait != nil {
			wait()
		}

		sim.Step(dt, pilot.Input(frame))

		frame = sim.Frame()
		if err := onTick(frame, sim.PopEvents()); err != nil {
			return err
		}
	}

	return nil
}
