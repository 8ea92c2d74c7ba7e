package ppm

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTrackerFirstObservation(t *testing.T) {
	var tr IntervalTracker[uint32]

	_, ok := tr.Observe(12345)
	require.False(t, ok, "no reference point exists before the first pulse")

	d, ok := tr.Observe(12400)
	require.True(t, ok)
	require.Equal(t, uint32(55), d)
}

func TestTrackerIntervals32(t *testing.T) {
	tests := []struct {
		name string
		prev uint32
		now  uint32
		want uint32
	}{
		{"monotonic", 1000, 2500, 1500},
		{"zero interval", 1000, 1000, 0},
		{"wrap at max", math.MaxUint32 - 5, 10, 16},
		{"wrap mid-range", 0xFFFFFF00, 0x100, 0x200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var tr IntervalTracker[uint32]
			tr.Observe(tt.prev)
			d, ok := tr.Observe(tt.now)
			require.True(t, ok)
			require.Equal(t, tt.want, d)
		})
	}
}

func TestTrackerIntervals8(t *testing.T) {
	// An 8-bit counter wraps at 256: (256 - 250) + 10 = 16.
	var tr IntervalTracker[uint8]
	tr.Observe(250)
	d, ok := tr.Observe(10)
	require.True(t, ok)
	require.Equal(t, uint8(16), d)
}

func TestTrackerReset(t *testing.T) {
	var tr IntervalTracker[uint32]
	tr.Observe(100)
	tr.Reset()

	_, ok := tr.Observe(5000)
	require.False(t, ok, "reset must drop the reference point")

	d, ok := tr.Observe(5700)
	require.True(t, ok)
	require.Equal(t, uint32(700), d)
}
