package entities

import (
	"time"
)

type Explosion string

const (
	ExplosionNone   Explosion = ""
	ExplosionQuick  Explosion = "quick"
	ExplosionSmall  Explosion = "small"
	ExplosionMedium Explosion = "medium"
	ExplosionLarge  Explosion = "large"
)

type DestructibleType string

const (
	Crate    DestructibleType = "CRATE"
	Barrel   DestructibleType = "BARREL"
	RockPile DestructibleType = "ROCK_PILE"
	Vehicle  DestructibleType = "VEHICLE"
	Tank     DestructibleType = "TANK"
	Crystal  DestructibleType = "CRYSTAL"
	Plant    DestructibleType = "PLANT"
)

// IsVehicle is true for the wrecks counted as destroyed vehicles
func (t DestructibleType) IsVehicle() bool {
	return t == Vehicle || t == Tank
}

type DestructibleSpec struct {
	Type        DestructibleType
	Width       float64
	Height      float64
	Health      int
	Points      int
	Explosion   Explosion
	NitroRefill float64
}

var DestructibleSpecs = map[DestructibleType]DestructibleSpec{
	Crate:    {Type: Crate, Width: 28, Height: 28, Health: 1, Points: 10, Explosion: ExplosionQuick, NitroRefill: 3},
	Barrel:   {Type: Barrel, Width: 22, Height: 30, Health: 1, Points: 25, Explosion: ExplosionSmall, NitroRefill: 5},
	RockPile: {Type: RockPile, Width: 36, Height: 28, Health: 2, Points: 50, Explosion: ExplosionMedium, NitroRefill: 8},
	Vehicle:  {Type: Vehicle, Width: 64, Height: 36, Health: 2, Points: 75, Explosion: ExplosionMedium, NitroRefill: 12},
	Tank:     {Type: Tank, Width: 72, Height: 44, Health: 4, Points: 150, Explosion: ExplosionLarge, NitroRefill: 25},
	Crystal:  {Type: Crystal, Width: 18, Height: 30, Health: 1, Points: 35, Explosion: ExplosionQuick, NitroRefill: 4},
	Plant:    {Type: Plant, Width: 24, Height: 28, Health: 1, Points: 15, Explosion: ExplosionQuick, NitroRefill: 2},
}

const (
	DestructibleFriction    = 0.5
	DestructibleRestitution = 0.1
)

type HazardType string

const (
	SpikeStrip HazardType = "SPIKE_STRIP"
	Mine       HazardType = "MINE"
	TNT        HazardType = "TNT"
	FirePit    HazardType = "FIRE_PIT"
	OilSlick   HazardType = "OIL_SLICK"
)

type HazardSpec struct {
	Type      HazardType
	Width     float64
	Height    float64
	Damage    float64
	Cooldown  time.Duration // 0: destroyed by its first trigger
	Explosion Explosion
	Sensor    bool
	Friction  float64
	Label     string
}

var HazardSpecs = map[HazardType]HazardSpec{
	SpikeStrip: {Type: SpikeStrip, Width: 48, Height: 14, Damage: 12, Cooldown: 800 * time.Millisecond, Explosion: ExplosionNone, Friction: 0.5, Label: "SPIKES!"},
	Mine:       {Type: Mine, Width: 22, Height: 18, Damage: 22, Cooldown: 0, Explosion: ExplosionMedium, Friction: 0.5, Label: "BOOM!"},
	TNT:        {Type: TNT, Width: 26, Height: 30, Damage: 28, Cooldown: 0, Explosion: ExplosionLarge, Friction: 0.5, Label: "TNT!"},
	FirePit:    {Type: FirePit, Width: 50, Height: 20, Damage: 0.4, Cooldown: 50 * time.Millisecond, Explosion: ExplosionNone, Sensor: true, Friction: 0.5, Label: ""},
	OilSlick:   {Type: OilSlick, Width: 60, Height: 10, Damage: 5, Cooldown: 600 * time.Millisecond, Explosion: ExplosionNone, Sensor: true, Friction: 0.01, Label: "SLIP!"},
}

const HazardRestitution = 0.1

const CollectibleSize = 24
