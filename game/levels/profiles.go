package levels

import (
	"math"

	"github.com/truckmayhem/truckmayhem/game/terrain"
)

// staircase climbs `steps` steps of `rise` over t in [0, 1]; each step ramps
// up during the first `ramp` fraction then stays flat
func staircase(t float64, steps float64, rise float64, ramp float64) float64 {
	sp := t * steps
	ss := math.Floor(sp)
	sf := sp - ss

	climb := rise
	if sf < ramp {
		climb = sf / ramp * rise
	}

	return ss*rise + climb - rise
}

// junkyardProfile: warmup bumps, first ramp, plateau, washboard, staircase,
// jump, rolling section, mega ramp
func junkyardProfile(baseY float64, step float64, length float64) []terrain.Point {
	return terrain.Sample(baseY, step, length, func(x float64) float64 {
		switch {
		case x <= 400:
			return baseY
		case x <= 1400:
			t := (x - 400) / 1000
			return baseY - 35*math.Sin(t*math.Pi*2.5) - 15*math.Sin(t*math.Pi*6)
		case x <= 1700:
			t := (x - 1400) / 300
			return baseY - 35 - t*110
		case x <= 1950:
			return baseY - 145
		case x <= 2300:
			t := (x - 1950) / 350
			return baseY - 145 + t*190
		case x <= 3000:
			t := (x - 2300) / 700
			return baseY + 45 - 20*math.Sin(t*math.Pi*5) - 8*math.Cos(t*math.Pi*11)
		case x <= 3800:
			t := (x - 3000) / 800
			return baseY - staircase(t, 4, 35, 0.3)
		case x <= 4100:
			t := (x - 3800) / 300
			return baseY - 100 + 180*math.Sin(t*math.Pi)
		case x <= 4400:
			return baseY - 100
		case x <= 5200:
			t := (x - 4400) / 800
			return baseY - 100 + t*150 + 25*math.Sin(t*math.Pi*6)
		case x <= 6200:
			t := (x - 5200) / 1000
			return baseY + 50 - 30*math.Sin(t*math.Pi*10) - 15*math.Sin(t*math.Pi*18)
		case x <= 6600:
			t := (x - 6200) / 400
			return baseY + 20 - t*160
		case x <= 6900:
			return baseY - 140
		case x <= 7500:
			t := (x - 6900) / 600
			return baseY - 140 + t*140
		}

		return baseY
	})
}

// mountainProfile: steep ramps, a canyon, long jumps and a summit
func mountainProfile(baseY float64, step float64, length float64) []terrain.Point {
	return terrain.Sample(baseY, step, length, func(x float64) float64 {
		switch {
		case x <= 350:
			return baseY
		case x <= 900:
			t := (x - 350) / 550
			return baseY - 30*math.Sin(t*math.Pi*2)
		case x <= 1200:
			t := (x - 900) / 300
			return baseY - t*160
		case x <= 1500:
			return baseY - 160
		case x <= 1750:
			t := (x - 1500) / 250
			return baseY - 160 + t*230
		case x <= 2400:
			t := (x - 1750) / 650
			return baseY + 70 - 18*math.Sin(t*math.Pi*7)
		case x <= 2650:
			t := (x - 2400) / 250
			return baseY + 70 - t*250
		case x <= 2900:
			return baseY - 180
		case x <= 3200:
			t := (x - 2900) / 300
			return baseY - 180 + t*150
		case x <= 4200:
			t := (x - 3200) / 1000
			return baseY - 30 - 40*math.Sin(t*math.Pi*6) - 20*math.Sin(t*math.Pi*13)
		case x <= 5000:
			t := (x - 4200) / 800
			return baseY - staircase(t, 5, 30, 0.35)
		case x <= 5400:
			return baseY - 120
		case x <= 5650:
			t := (x - 5400) / 250
			return baseY - 120 - t*80
		case x <= 6100:
			t := (x - 5650) / 450
			return baseY - 200 + 250*math.Sin(t*math.Pi*0.5)
		case x <= 7200:
			t := (x - 6100) / 1100
			return baseY + 50 - 25*math.Sin(t*math.Pi*8) + t*30
		case x <= 7500:
			t := (x - 7200) / 300
			return baseY + 80 - t*80
		}

		return baseY
	})
}

// urbanProfile: speed bumps, an overpass, a construction pit, a parking
// garage zigzag and a final mega ramp
func urbanProfile(baseY float64, step float64, length float64) []terrain.Point {
	return terrain.Sample(baseY, step, length, func(x float64) float64 {
		switch {
		case x <= 400:
			return baseY
		case x <= 1200:
			t := (x - 400) / 800
			return baseY - 12*math.Sin(t*math.Pi*8)
		case x <= 1500:
			t := (x - 1200) / 300
			return baseY - t*130
		case x <= 1800:
			return baseY - 130
		case x <= 2000:
			t := (x - 1800) / 200
			return baseY - 130 + t*180
		case x <= 2500:
			t := (x - 2000) / 500
			return baseY + 50 - 15*math.Sin(t*math.Pi*4)
		case x <= 2700:
			t := (x - 2500) / 200
			return baseY + 50 - t*200
		case x <= 3000:
			return baseY - 150
		case x <= 4000:
			t := (x - 3000) / 1000
			return baseY - 150 + t*120 + 20*math.Sin(t*math.Pi*3)
		case x <= 4800:
			t := (x - 4000) / 800
			sp := t * 6
			ss := math.Floor(sp)
			sf := sp - ss
			if int(ss)%2 == 0 {
				return baseY - 30 - sf*40 - ss*12
			}
			return baseY - 30 - (1-sf)*40 - ss*12
		case x <= 5800:
			t := (x - 4800) / 1000
			return baseY - 100 + 30*math.Sin(t*math.Pi*10) + 15*math.Cos(t*math.Pi*17)
		case x <= 6100:
			t := (x - 5800) / 300
			return baseY - 70 - t*130
		case x <= 6600:
			t := (x - 6100) / 500
			return baseY - 200 + 280*math.Sin(t*math.Pi*0.5)
		case x <= 7300:
			t := (x - 6600) / 700
			return baseY + 80 - t*80 - 10*math.Sin(t*math.Pi*5)
		}

		return baseY
	})
}
