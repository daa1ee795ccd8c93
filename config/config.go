package config

import (
	"encoding/json"
	"io/ioutil"
	"os"
	"path"
	"time"

	"github.com/kardianos/osext"
	bettererrors "github.com/xtuc/better-errors"
)

// All lengths are world units (screen pixels); speeds are world units per
// reference tick (1/60 s); angular speeds are radians per reference tick.

type PhysicsConfig struct {
	TicksPerSecond     float64 `json:"ticksPerSecond"`
	PixelsPerMeter     float64 `json:"pixelsPerMeter"`
	Gravity            float64 `json:"gravity"` // world units per second²
	VelocityIterations int     `json:"velocityIterations"`
	PositionIterations int     `json:"positionIterations"`
}

type TerrainConfig struct {
	Length           float64 `json:"length"`
	Step             float64 `json:"step"`
	BaseY            float64 `json:"baseY"`
	SegmentThickness float64 `json:"segmentThickness"`
	Friction         float64 `json:"friction"`
}

type TruckConfig struct {
	ChassisWidth           float64 `json:"chassisWidth"`
	ChassisHeight          float64 `json:"chassisHeight"`
	ChassisDensity         float64 `json:"chassisDensity"`
	WheelRadius            float64 `json:"wheelRadius"`
	WheelDensity           float64 `json:"wheelDensity"`
	WheelFriction          float64 `json:"wheelFriction"`
	WheelOffsetX           float64 `json:"wheelOffsetX"`
	SuspensionRestLength   float64 `json:"suspensionRestLength"`
	SuspensionFrequencyHz  float64 `json:"suspensionFrequencyHz"`
	SuspensionDampingRatio float64 `json:"suspensionDampingRatio"`

	WheelSpeed       float64 `json:"wheelSpeed"`
	MaxWheelSpeed    float64 `json:"maxWheelSpeed"`
	DriveAccel       float64 `json:"driveAccel"`       // world units per tick²
	LeanAngularAccel float64 `json:"leanAngularAccel"` // radians per tick²
	AirLeanFactor    float64 `json:"airLeanFactor"`
	AirSpinStep      float64 `json:"airSpinStep"`
	AirSpinMax       float64 `json:"airSpinMax"`
	MaxSpeed         float64 `json:"maxSpeed"`
	BoostMultiplier  float64 `json:"boostMultiplier"`

	MaxHealth         float64 `json:"maxHealth"`
	MaxBoostFuel      float64 `json:"maxBoostFuel"`
	BoostDrainPerMs   float64 `json:"boostDrainPerMs"`
	BoostRegenPerMs   float64 `json:"boostRegenPerMs"`
	JumpVelocity      float64 `json:"jumpVelocity"`
	JumpWheelFactor   float64 `json:"jumpWheelFactor"`
	JumpFuelCost      float64 `json:"jumpFuelCost"`
	JumpCooldownMs    float64 `json:"jumpCooldownMs"`
	DamageFeedbackMin float64 `json:"damageFeedbackMin"`
}

func (t TruckConfig) JumpCooldown() time.Duration {
	return msToDuration(t.JumpCooldownMs)
}

type ComboConfig struct {
	TimeoutMs      float64 `json:"timeoutMs"`
	MultiplierStep int     `json:"multiplierStep"`
	MaxMultiplier  int     `json:"maxMultiplier"`
}

func (c ComboConfig) Timeout() time.Duration {
	return msToDuration(c.TimeoutMs)
}

type RunConfig struct {
	FallY              float64 `json:"fallY"`
	WaterDamagePerTick float64 `json:"waterDamagePerTick"`
	WaterSurfaceMargin float64 `json:"waterSurfaceMargin"`
	MinAirTimeScored   float64 `json:"minAirTimeScored"` // seconds
	ImpactSpeedMin     float64 `json:"impactSpeedMin"`
	FrameRadius        float64 `json:"frameRadius"`
}

type GameConfig struct {
	Physics PhysicsConfig `json:"physics"`
	Terrain TerrainConfig `json:"terrain"`
	Truck   TruckConfig   `json:"truck"`
	Combo   ComboConfig   `json:"combo"`
	Run     RunConfig     `json:"run"`
}

func Default() GameConfig {
	return GameConfig{
		Physics: PhysicsConfig{
			TicksPerSecond:     60,
			PixelsPerMeter:     30,
			Gravity:            1000,
			VelocityIterations: 8,
			PositionIterations: 3,
		},
		Terrain: TerrainConfig{
			Length:           8000,
			Step:             40,
			BaseY:            500,
			SegmentThickness: 60,
			Friction:         0.8,
		},
		Truck: TruckConfig{
			ChassisWidth:           120,
			ChassisHeight:          30,
			ChassisDensity:         2.7,
			WheelRadius:            22,
			WheelDensity:           1.8,
			WheelFriction:          1.2,
			WheelOffsetX:           46,
			SuspensionRestLength:   12,
			SuspensionFrequencyHz:  5,
			SuspensionDampingRatio: 0.5,

			WheelSpeed:       0.12,
			MaxWheelSpeed:    0.4,
			DriveAccel:       0.2,
			LeanAngularAccel: 0.0009,
			AirLeanFactor:    2.5,
			AirSpinStep:      0.02,
			AirSpinMax:       0.15,
			MaxSpeed:         22,
			BoostMultiplier:  2,

			MaxHealth:         100,
			MaxBoostFuel:      100,
			BoostDrainPerMs:   0.04,
			BoostRegenPerMs:   0.008,
			JumpVelocity:      10,
			JumpWheelFactor:   0.8,
			JumpFuelCost:      10,
			JumpCooldownMs:    500,
			DamageFeedbackMin: 5,
		},
		Combo: ComboConfig{
			TimeoutMs:      2000,
			MultiplierStep: 2,
			MaxMultiplier:  8,
		},
		Run: RunConfig{
			FallY:              850,
			WaterDamagePerTick: 0.3,
			WaterSurfaceMargin: 20,
			MinAirTimeScored:   0.3,
			ImpactSpeedMin:     1.5,
			FrameRadius:        900,
		},
	}
}

// Load overlays the JSON document at filename on top of Default()
func Load(filename string) (GameConfig, error) {
	gameconfig := Default()

	resolved := getAbsolutePath(filename)
	data, err := ioutil.ReadFile(resolved)
	if err != nil {
		return gameconfig, bettererrors.
			New("Could not read configuration").
			SetContext("file", resolved).
			With(bettererrors.NewFromErr(err))
	}

	if err := json.Unmarshal(data, &gameconfig); err != nil {
		return gameconfig, bettererrors.
			New("Invalid configuration").
			SetContext("file", resolved).
			With(bettererrors.NewFromErr(err))
	}

	if err := Validate(gameconfig); err != nil {
		return gameconfig, bettererrors.
			New("Invalid configuration").
			SetContext("file", resolved).
			With(err)
	}

	return gameconfig, nil
}

func Validate(c GameConfig) error {
	checks := []struct {
		ok    bool
		field string
	}{
		{c.Physics.TicksPerSecond > 0, "physics.ticksPerSecond"},
		{c.Physics.PixelsPerMeter > 0, "physics.pixelsPerMeter"},
		{c.Physics.VelocityIterations > 0, "physics.velocityIterations"},
		{c.Physics.PositionIterations > 0, "physics.positionIterations"},
		{c.Terrain.Length > 0, "terrain.length"},
		{c.Terrain.Step > 0, "terrain.step"},
		{c.Terrain.SegmentThickness > 0, "terrain.segmentThickness"},
		{c.Truck.ChassisWidth > 0 && c.Truck.ChassisHeight > 0, "truck.chassisWidth/chassisHeight"},
		{c.Truck.WheelRadius > 0, "truck.wheelRadius"},
		{c.Truck.MaxHealth > 0, "truck.maxHealth"},
		{c.Truck.MaxBoostFuel > 0, "truck.maxBoostFuel"},
		{c.Combo.MultiplierStep > 0, "combo.multiplierStep"},
		{c.Combo.MaxMultiplier >= 1, "combo.maxMultiplier"},
		{c.Combo.TimeoutMs > 0, "combo.timeoutMs"},
	}

	for _, check := range checks {
		if !check.ok {
			return bettererrors.
				NewFromString("Value must be provided and positive").
				SetContext("field", check.field)
		}
	}

	return nil
}

// getAbsolutePath resolves a relative path against the working directory,
// then against the folder of the running executable
func getAbsolutePath(filename string) string {
	if path.IsAbs(filename) {
		return filename
	}

	if _, err := os.Stat(filename); err == nil {
		return filename
	}

	exfolder, err := osext.ExecutableFolder()
	if err != nil {
		return filename
	}

	return path.Join(exfolder, filename)
}

func msToDuration(ms float64) time.Duration {
	return time.Duration(ms * float64(time.Millisecond))
}
