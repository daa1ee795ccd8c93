package number

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestToFixed(t *testing.T) {
	assert.Equal(t, 1.3, ToFixed(1.25, 1))
	assert.Equal(t, 1.2, ToFixed(1.24, 1))
	assert.Equal(t, 7.0, ToFixed(7.0, 1))
}

func TestRoundTo(t *testing.T) {
	tests := []struct {
		val, step, want float64
	}{
		{2240, 500, 2000},
		{2250, 500, 2500},
		{5950, 500, 6000},
		{3.4, 1, 3},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, RoundTo(tt.val, tt.step))
	}
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.0, Clamp(-3, 0, 100))
	assert.Equal(t, 100.0, Clamp(130, 0, 100))
	assert.Equal(t, 42.0, Clamp(42, 0, 100))
}

func TestDurationMs(t *testing.T) {
	assert.Equal(t, 1500.0, DurationMs(1500*time.Millisecond))
}
