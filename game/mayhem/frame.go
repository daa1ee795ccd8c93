package mayhem

import (
	"github.com/truckmayhem/truckmayhem/common/types"
	"github.com/truckmayhem/truckmayhem/common/utils/vector"
	"github.com/truckmayhem/truckmayhem/game/score"
)

type TruckFrame struct {
	Position   vector.Vector2 `json:"position" msgpack:"position"`
	Velocity   vector.Vector2 `json:"velocity" msgpack:"velocity"`
	Angle      float64        `json:"angle" msgpack:"angle"`
	FrontWheel vector.Vector2 `json:"frontWheel" msgpack:"frontWheel"`
	RearWheel  vector.Vector2 `json:"rearWheel" msgpack:"rearWheel"`
	Health     float64        `json:"health" msgpack:"health"`
	BoostFuel  float64        `json:"boostFuel" msgpack:"boostFuel"`
	Boosting   bool           `json:"boosting" msgpack:"boosting"`
	Grounded   bool           `json:"grounded" msgpack:"grounded"`
	AirTime    float64        `json:"airTime" msgpack:"airTime"`
}

type FrameObject struct {
	ID       string         `json:"id" msgpack:"id"`
	Kind     string         `json:"kind" msgpack:"kind"`
	Type     string         `json:"type,omitempty" msgpack:"type,omitempty"`
	Variant  int            `json:"variant,omitempty" msgpack:"variant,omitempty"`
	Position vector.Vector2 `json:"position" msgpack:"position"`
	Width    float64        `json:"width" msgpack:"width"`
	Height   float64        `json:"height" msgpack:"height"`
}

type WaterFrame struct {
	X1       float64 `json:"x1" msgpack:"x1"`
	X2       float64 `json:"x2" msgpack:"x2"`
	SurfaceY float64 `json:"surfaceY" msgpack:"surfaceY"`
}

// Frame is what a viewer needs to draw one tick around the truck
type Frame struct {
	RunID   string        `json:"runId" msgpack:"runId"`
	LevelID int           `json:"levelId" msgpack:"levelId"`
	Tick    int           `json:"tick" msgpack:"tick"`
	TimeMs  int64         `json:"timeMs" msgpack:"timeMs"`
	Truck   TruckFrame    `json:"truck" msgpack:"truck"`
	Objects []FrameObject `json:"objects" msgpack:"objects"`
	Water   []WaterFrame  `json:"water" msgpack:"water"`
	Stats   score.Stats   `json:"stats" msgpack:"stats"`
	Outcome Outcome       `json:"outcome,omitempty" msgpack:"outcome,omitempty"`
}

// Frame snapshots the truck and the live entities within the configured
// radius of it
func (g *Game) Frame() Frame {
	front, rear := g.truck.GetWheelPositions()
	position := g.truck.GetPosition()

	frame := Frame{
		RunID:   g.GetID(),
		LevelID: g.level.ID,
		Tick:    g.ticknum,
		TimeMs:  g.now.Milliseconds(),
		Truck: TruckFrame{
			Position:   position,
			Velocity:   g.truck.GetVelocity(),
			Angle:      g.truck.GetAngle(),
			FrontWheel: front,
			RearWheel:  rear,
			Health:     g.truck.GetHealth(),
			BoostFuel:  g.truck.GetBoostFuel(),
			Boosting:   g.truck.IsBoosting(),
			Grounded:   g.truck.IsGrounded(),
			AirTime:    g.truck.GetAirTime(),
		},
		Objects: make([]FrameObject, 0),
		Water:   make([]WaterFrame, 0),
		Stats:   g.score.Stats(),
		Outcome: g.outcome,
	}

	for _, entry := range g.near(position, g.cfg.Run.FrameRadius) {
		if entry.water != nil {
			frame.Water = append(frame.Water, WaterFrame{
				X1:       entry.water.X1,
				X2:       entry.water.X2,
				SurfaceY: entry.water.SurfaceY,
			})
			continue
		}

		if object, ok := g.frameObject(entry); ok {
			frame.Objects = append(frame.Objects, object)
		}
	}

	return frame
}

func (g *Game) frameObject(entry *indexed) (FrameObject, bool) {
	qr := g.manager.GetEntityByID(entry.entityID, g.physicalBodyComponent)
	if qr == nil {
		return FrameObject{}, false
	}

	if _, dying := g.dying[entry.entityID]; dying {
		return FrameObject{}, false
	}

	body := g.castPhysicalBody(qr.Components[g.physicalBodyComponent])
	object := FrameObject{
		ID:       entry.descriptor.ID,
		Kind:     entry.descriptor.Kind.String(),
		Position: body.body.GetPosition(),
		Width:    body.width,
		Height:   body.height,
	}

	switch entry.descriptor.Kind {
	case types.PhysicalBodyKind.Destructible:
		if dqr := g.manager.GetEntityByID(entry.entityID, g.destructibleComponent); dqr != nil {
			d := g.castDestructible(dqr.Components[g.destructibleComponent])
			object.Type = string(d.GetType())
			object.Variant = d.variant
		}
	case types.PhysicalBodyKind.Hazard:
		if hqr := g.manager.GetEntityByID(entry.entityID, g.hazardComponent); hqr != nil {
			object.Type = string(g.castHazard(hqr.Components[g.hazardComponent]).GetType())
		}
	}

	return object, true
}
