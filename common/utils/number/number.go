package number

import (
	"math"
	"strconv"
	"time"
)

var epsilon float64 = 0.000001

func ToFixed(val float64, places int) (newVal float64) {
	roundOn := 0.5
	var round float64
	pow := math.Pow(10, float64(places))
	digit := pow * val
	_, div := math.Modf(digit)
	if div >= roundOn {
		round = math.Ceil(digit)
	} else {
		round = math.Floor(digit)
	}
	newVal = round / pow
	return
}

func FloatToStr(f float64, precision int) string {
	return strconv.FormatFloat(f, 'f', precision, 64)
}

func DurationMs(d time.Duration) float64 {
	return float64(d.Nanoseconds()) / 1000000.0
}

func IsZero(f float64) bool {
	return math.Abs(f) < epsilon
}

func Clamp(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}

// RoundTo rounds val to the nearest multiple of step (half away from zero)
func RoundTo(val float64, step float64) float64 {
	return math.Round(val/step) * step
}
