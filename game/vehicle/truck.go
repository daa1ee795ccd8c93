package vehicle

import (
	"math"
	"time"

	"github.com/truckmayhem/truckmayhem/common/types"
	"github.com/truckmayhem/truckmayhem/common/utils/trigo"
	"github.com/truckmayhem/truckmayhem/common/utils/vector"
	"github.com/truckmayhem/truckmayhem/config"
	"github.com/truckmayhem/truckmayhem/game/physics"
)

// all vehicle parts share this group so they never collide together
const collisionGroup int16 = -1

const (
	chassisFriction    = 0.5
	chassisRestitution = 0.1
	wheelRestitution   = 0.05
	reverseDecay       = 0.92
	reverseWheelFactor = 0.4
	reverseForceFactor = 0.5
	exhaustOffset      = 55
)

type Input struct {
	Forward     bool `json:"forward" msgpack:"f"`
	Reverse     bool `json:"reverse" msgpack:"r"`
	LeanBack    bool `json:"leanBack" msgpack:"lb"`
	LeanForward bool `json:"leanForward" msgpack:"lf"`
	Boost       bool `json:"boost" msgpack:"b"`
	Jump        bool `json:"jump" msgpack:"j"`
}

type Truck struct {
	cfg        config.TruckConfig
	difficulty Difficulty

	chassis     *physics.Body
	frontWheel  *physics.Body
	rearWheel   *physics.Body
	frontSpring *physics.Joint
	rearSpring  *physics.Joint

	health    float64
	boostFuel float64
	boosting  bool

	grounded      bool
	justLanded    bool
	airTime       float64 // seconds
	totalRotation float64
	lastAngle     float64
	flipCount     int
	lastLanding   Landing

	hasJumped    bool
	lastJumpTime time.Duration

	feedback  []Feedback
	destroyed bool
}

// NewTruck builds the chassis centered on position with both wheels hanging
// under it at suspension rest length
func NewTruck(world *physics.World, id string, position vector.Vector2, cfg config.TruckConfig, difficulty Difficulty) *Truck {
	t := &Truck{
		cfg:        cfg,
		difficulty: difficulty,
		health:     cfg.MaxHealth,
		boostFuel:  cfg.MaxBoostFuel,
		feedback:   make([]Feedback, 0),
	}

	t.chassis = world.CreateBox(physics.BodyDef{
		Descriptor:  types.MakeVehiclePartDescriptor(types.VehiclePart.Chassis, id),
		Position:    position,
		Dynamic:     true,
		Density:     cfg.ChassisDensity,
		Friction:    chassisFriction,
		Restitution: chassisRestitution,
		GroupIndex:  collisionGroup,
	}, cfg.ChassisWidth, cfg.ChassisHeight)

	wheelY := position.GetY() + cfg.ChassisHeight/2 + cfg.SuspensionRestLength
	makeWheel := func(part types.PhysicalBodyDescriptor, x float64) *physics.Body {
		return world.CreateCircle(physics.BodyDef{
			Descriptor:  part,
			Position:    vector.MakeVector2(x, wheelY),
			Dynamic:     true,
			Density:     cfg.WheelDensity,
			Friction:    cfg.WheelFriction,
			Restitution: wheelRestitution,
			GroupIndex:  collisionGroup,
		}, cfg.WheelRadius)
	}

	t.frontWheel = makeWheel(types.MakeVehiclePartDescriptor(types.VehiclePart.FrontWheel, id), position.GetX()+cfg.WheelOffsetX)
	t.rearWheel = makeWheel(types.MakeVehiclePartDescriptor(types.VehiclePart.RearWheel, id), position.GetX()-cfg.WheelOffsetX)

	t.frontSpring = world.CreateSuspension(t.chassis, t.frontWheel, cfg.SuspensionFrequencyHz, cfg.SuspensionDampingRatio)
	t.rearSpring = world.CreateSuspension(t.chassis, t.rearWheel, cfg.SuspensionFrequencyHz, cfg.SuspensionDampingRatio)

	t.lastAngle = t.chassis.GetAngle()

	return t
}

///////////////////////////////////////////////////////////////////////////
// Per tick update; runs after the physics step
///////////////////////////////////////////////////////////////////////////

// Update reads the contacts active after the last physics step, updates the
// air/ground state and applies the controls for the next step.
// It returns the landing when the truck touched down during this tick.
func (t *Truck) Update(contacts []physics.ContactPair, input Input, dt time.Duration, now time.Duration) (Landing, bool) {
	if t.destroyed {
		return Landing{}, false
	}

	wasGrounded := t.grounded
	t.grounded = IsGrounded(contacts)
	t.justLanded = false

	if t.grounded && !wasGrounded {
		t.land()
	}

	angle := t.chassis.GetAngle()
	if !t.grounded {
		t.airTime += dt.Seconds()
		t.totalRotation += trigo.ShortestAngleDiff(t.lastAngle, angle)
	}
	t.lastAngle = angle

	t.applyControls(input, dt, now)
	t.capSpeed()

	return t.lastLanding, t.justLanded
}

func (t *Truck) land() {
	t.justLanded = true

	flips := CountFlips(t.totalRotation)
	t.flipCount += flips

	impact := math.Abs(t.chassis.GetVelocity().GetY())
	damage := LandingDamage(impact, t.difficulty)
	if damage > 0 {
		t.health = math.Max(0, t.health-damage)
		t.emit(Feedback{
			Kind:      FeedbackShake,
			Duration:  shakeDuration,
			Intensity: shakeScale * math.Min(impact-t.difficulty.LandingDamageThreshold, 10),
		})
	}

	t.lastLanding = Landing{
		AirDuration: t.airTime,
		Flips:       flips,
		ImpactSpeed: impact,
		Damage:      damage,
	}

	t.airTime = 0
	t.totalRotation = 0
}

func (t *Truck) boostMultiplier() float64 {
	if t.boosting {
		return t.cfg.BoostMultiplier
	}

	return 1
}

func (t *Truck) applyControls(input Input, dt time.Duration, now time.Duration) {
	bm := t.boostMultiplier()

	if input.Forward {
		step, max := t.cfg.WheelSpeed*bm, t.cfg.MaxWheelSpeed*bm
		for _, wheel := range []*physics.Body{t.frontWheel, t.rearWheel} {
			if w := wheel.GetAngularVelocity(); w < max {
				wheel.SetAngularVelocity(math.Min(w+step, max))
			}
		}
		t.chassis.ApplyAcceleration(vector.MakeVector2(t.cfg.DriveAccel*bm, 0))

		count := 2
		if t.boosting {
			count = 5
		}
		t.emit(Feedback{
			Kind:     FeedbackExhaust,
			Position: t.exhaustPosition(),
			Count:    count,
		})
	}

	if input.Reverse {
		for _, wheel := range []*physics.Body{t.frontWheel, t.rearWheel} {
			wheel.SetAngularVelocity(wheel.GetAngularVelocity()*reverseDecay - t.cfg.WheelSpeed*reverseWheelFactor)
		}
		t.chassis.ApplyAcceleration(vector.MakeVector2(-t.cfg.DriveAccel*reverseForceFactor, 0))
	}

	leanFactor := 1.0
	if !t.grounded {
		leanFactor = t.cfg.AirLeanFactor
	}

	if input.LeanBack {
		t.chassis.ApplyAngularAcceleration(-t.cfg.LeanAngularAccel * leanFactor)
		if !t.grounded {
			t.chassis.SetAngularVelocity(math.Max(t.chassis.GetAngularVelocity()-t.cfg.AirSpinStep, -t.cfg.AirSpinMax))
		}
	}

	if input.LeanForward {
		t.chassis.ApplyAngularAcceleration(t.cfg.LeanAngularAccel * leanFactor)
		if !t.grounded {
			t.chassis.SetAngularVelocity(math.Min(t.chassis.GetAngularVelocity()+t.cfg.AirSpinStep, t.cfg.AirSpinMax))
		}
	}

	dtMs := float64(dt) / float64(time.Millisecond)
	t.boosting = input.Boost && t.boostFuel > 0
	if t.boosting {
		t.boostFuel = math.Max(0, t.boostFuel-dtMs*t.cfg.BoostDrainPerMs)
	} else {
		t.boostFuel = math.Min(t.cfg.MaxBoostFuel, t.boostFuel+dtMs*t.cfg.BoostRegenPerMs)
	}

	if input.Jump {
		t.jump(now)
	}
}

func (t *Truck) canJump(now time.Duration) bool {
	if !t.grounded || t.boostFuel < t.cfg.JumpFuelCost {
		return false
	}

	return !t.hasJumped || now-t.lastJumpTime >= t.cfg.JumpCooldown()
}

func (t *Truck) jump(now time.Duration) {
	if !t.canJump(now) {
		return
	}

	t.hasJumped = true
	t.lastJumpTime = now
	t.boostFuel -= t.cfg.JumpFuelCost

	vx := t.chassis.GetVelocity().GetX()
	t.chassis.SetVelocity(vector.MakeVector2(vx, -t.cfg.JumpVelocity))

	for _, wheel := range []*physics.Body{t.rearWheel, t.frontWheel} {
		wheel.SetVelocity(vector.MakeVector2(vx, -t.cfg.JumpVelocity*t.cfg.JumpWheelFactor))
		t.emit(Feedback{
			Kind:     FeedbackDust,
			Position: wheel.GetPosition().Add(vector.MakeVector2(0, 10)),
		})
	}
}

func (t *Truck) capSpeed() {
	max := t.cfg.MaxSpeed * t.boostMultiplier()
	v := t.chassis.GetVelocity()

	if math.Abs(v.GetX()) > max {
		t.chassis.SetVelocity(v.SetX(math.Copysign(max, v.GetX())))
	}
}

func (t *Truck) exhaustPosition() vector.Vector2 {
	angle := t.chassis.GetAngle()
	return t.chassis.GetPosition().Add(vector.MakeVector2(
		-exhaustOffset*math.Cos(angle),
		-exhaustOffset*math.Sin(angle)-10,
	))
}

///////////////////////////////////////////////////////////////////////////
// Damage and resources
///////////////////////////////////////////////////////////////////////////

// TakeDamage is a no-op once the truck is wrecked; health never goes below 0
func (t *Truck) TakeDamage(amount float64) {
	if t.health <= 0 || amount <= 0 {
		return
	}

	t.health = math.Max(0, t.health-amount)

	if amount >= t.cfg.DamageFeedbackMin {
		t.emit(Feedback{Kind: FeedbackFlash, Duration: flashDuration})
		t.emit(Feedback{
			Kind:      FeedbackShake,
			Duration:  shakeDuration,
			Intensity: shakeScale * math.Min(amount, 20),
		})
	}
}

// Drain removes health silently (water)
func (t *Truck) Drain(amount float64) {
	t.health = math.Max(0, t.health-amount)
}

func (t *Truck) Refuel(amount float64) {
	t.boostFuel = math.Min(t.cfg.MaxBoostFuel, t.boostFuel+amount)
}

///////////////////////////////////////////////////////////////////////////
// Getters
///////////////////////////////////////////////////////////////////////////

func (t *Truck) GetHealth() float64 {
	return t.health
}

func (t *Truck) GetBoostFuel() float64 {
	return t.boostFuel
}

func (t *Truck) IsBoosting() bool {
	return t.boosting
}

func (t *Truck) IsGrounded() bool {
	return t.grounded
}

func (t *Truck) JustLanded() bool {
	return t.justLanded
}

func (t *Truck) GetAirTime() float64 {
	return t.airTime
}

func (t *Truck) GetTotalRotation() float64 {
	return t.totalRotation
}

func (t *Truck) GetFlipCount() int {
	return t.flipCount
}

func (t *Truck) GetLastLanding() Landing {
	return t.lastLanding
}

func (t *Truck) GetPosition() vector.Vector2 {
	return t.chassis.GetPosition()
}

func (t *Truck) GetVelocity() vector.Vector2 {
	return t.chassis.GetVelocity()
}

func (t *Truck) GetAngle() float64 {
	return t.chassis.GetAngle()
}

// GetPartVelocity is the velocity of one of the truck bodies, in world units per tick
func (t *Truck) GetPartVelocity(part types.PhysicalBodyDescriptor) vector.Vector2 {
	switch part.Part {
	case types.VehiclePart.FrontWheel:
		return t.frontWheel.GetVelocity()
	case types.VehiclePart.RearWheel:
		return t.rearWheel.GetVelocity()
	}

	return t.chassis.GetVelocity()
}

func (t *Truck) GetWheelPositions() (vector.Vector2, vector.Vector2) {
	return t.frontWheel.GetPosition(), t.rearWheel.GetPosition()
}

// Destroy removes springs then bodies from the world
func (t *Truck) Destroy() {
	if t.destroyed {
		return
	}

	t.destroyed = true
	t.frontSpring.Detach()
	t.rearSpring.Detach()
	t.chassis.Detach()
	t.frontWheel.Detach()
	t.rearWheel.Detach()
}
