package typist

import (
	"testing"
	"time"
)

func TestPauseRange(t *testing.T) {
	tests := []struct {
		name   string
		random float64
		want   time.Duration
	}{
		{name: "lower bound", random: 0, want: time.Second},
		{name: "midpoint", random: 0.5, want: 1500 * time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var slept time.Duration
			typ := NewWith(func(d time.Duration) { slept = d }, func() float64 { return tt.random })

			typ.Pause()

			if slept != tt.want {
				t.Errorf("slept = %v, want %v", slept, tt.want)
			}
		})
	}
}

func TestPauseStaysUnderTwoSeconds(t *testing.T) {
	var slept time.Duration
	typ := NewWith(func(d time.Duration) { slept = d }, func() float64 { return 0.999 })

	typ.Pause()

	if slept < time.Second || slept >= 2*time.Second {
		t.Errorf("slept = %v, want within [1s, 2s)", slept)
	}
}
