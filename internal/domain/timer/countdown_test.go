package timer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func repeat(d float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = d
	}
	return out
}

func TestCountdown_FinishesAtDuration(t *testing.T) {
	tests := []struct {
		name   string
		deltas []float64
		want   bool
	}{
		{"exact", []float64{1.0, 1.0, 1.0}, true},
		{"short", []float64{1.0, 1.0, 0.9}, false},
		{"overshoot", []float64{2.5, 2.5}, true},
		{"single large step", []float64{10}, true},
		{"no frames", nil, false},
		{"zero deltas", []float64{0, 0, 0}, false},
		// float64 sums of these fall just below 3.0
		{"10 x 0.3", repeat(0.3, 10), true},
		{"30 x 0.1", repeat(0.1, 30), true},
		{"300 x 0.01", repeat(0.01, 300), true},
		{"9 x 0.3", repeat(0.3, 9), false},
		{"299 x 0.01", repeat(0.01, 299), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCountdown(DefaultDuration)
			for _, d := range tt.deltas {
				c.Advance(d)
			}
			assert.Equal(t, tt.want, c.Finished())
		})
	}
}

func TestCountdown_ExactSumElapsed(t *testing.T) {
	c := NewCountdown(DefaultDuration)
	for _, d := range repeat(0.3, 10) {
		c.Advance(d)
	}
	assert.Equal(t, 3.0, c.Elapsed())
}

func TestCountdown_StaysFinished(t *testing.T) {
	c := NewCountdown(DefaultDuration)
	c.Advance(3.0)
	assert.True(t, c.Finished())

	for i := 0; i < 10; i++ {
		c.Advance(0.5)
		assert.True(t, c.Finished(), "should not auto-reset")
	}
	assert.InDelta(t, 8.0, c.Elapsed(), 1e-9)
}

func TestCountdown_NegativeDeltaIgnored(t *testing.T) {
	c := NewCountdown(DefaultDuration)
	c.Advance(1.0)
	c.Advance(-5.0)

	assert.InDelta(t, 1.0, c.Elapsed(), 1e-9)
	assert.False(t, c.Finished())
}

func TestCountdown_Duration(t *testing.T) {
	assert.Equal(t, 3.0, NewCountdown(DefaultDuration).Duration())
	assert.Equal(t, 1.5, NewCountdown(1.5).Duration())

	zero := NewCountdown(0)
	assert.True(t, zero.Finished())
	assert.True(t, NewCountdown(-2).Finished())
}
