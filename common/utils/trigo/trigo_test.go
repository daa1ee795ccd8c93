package trigo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShortestAngleDiff(t *testing.T) {
	tests := []struct {
		name     string
		from, to float64
		want     float64
	}{
		{"small positive", 0, 0.1, 0.1},
		{"small negative", 0.1, 0, -0.1},
		{"wraps past pi", math.Pi - 0.05, -math.Pi + 0.05, 0.1},
		{"wraps past -pi", -math.Pi + 0.05, math.Pi - 0.05, -0.1},
		{"full turn is zero", 0, TwoPi, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, ShortestAngleDiff(tt.from, tt.to), 1e-9)
		})
	}
}

func TestDegreeRadian(t *testing.T) {
	assert.InDelta(t, math.Pi, DegreeToRadian(180), 1e-12)
	assert.InDelta(t, 90, RadianToDegree(math.Pi/2), 1e-12)
}
