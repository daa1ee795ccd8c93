package trigo

import (
	"math"
)

const TwoPi = math.Pi * 2

// ShortestAngleDiff returns the signed difference to - from wrapped into [-π, π]
func ShortestAngleDiff(from float64, to float64) float64 {
	delta := to - from
	return math.Atan2(math.Sin(delta), math.Cos(delta))
}

func DegreeToRadian(degree float64) float64 {
	return degree * math.Pi / 180.0
}

func RadianToDegree(radian float64) float64 {
	return radian * 180.0 / math.Pi
}
