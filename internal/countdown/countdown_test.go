package countdown

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeRemainingBreakdown(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		distance time.Duration
		want     Snapshot
	}{
		{
			name:     "one of each unit plus a stray millisecond",
			distance: 90_061_001 * time.Millisecond, // 1d 1h 1m 1.001s
			want:     Snapshot{Days: 1, Hours: 1, Minutes: 1, Seconds: 1},
		},
		{
			name:     "exactly at the target",
			distance: 0,
			want:     Snapshot{},
		},
		{
			name:     "sub-second remainder truncates to zero",
			distance: 999 * time.Millisecond,
			want:     Snapshot{},
		},
		{
			name:     "one second",
			distance: time.Second,
			want:     Snapshot{Seconds: 1},
		},
		{
			name:     "just under a day",
			distance: 24*time.Hour - time.Millisecond,
			want:     Snapshot{Hours: 23, Minutes: 59, Seconds: 59},
		},
		{
			name:     "large day count",
			distance: 365 * 24 * time.Hour,
			want:     Snapshot{Days: 365},
		},
		{
			name:     "one millisecond past the target",
			distance: -time.Millisecond,
			want:     Snapshot{Expired: true},
		},
		{
			name:     "well past the target reports unclamped units",
			distance: -(25*time.Hour + 30*time.Minute),
			want:     Snapshot{Days: -1, Hours: -1, Minutes: -30, Expired: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeRemaining(now.Add(tt.distance), now)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestComputeRemainingUnitRanges(t *testing.T) {
	// Sweep a spread of future offsets and check every unit stays inside
	// its natural modulus range while the countdown is active.
	now := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	offsets := []time.Duration{
		time.Millisecond,
		time.Second,
		59 * time.Second,
		time.Minute,
		61 * time.Minute,
		23*time.Hour + 59*time.Minute + 59*time.Second,
		24 * time.Hour,
		100*24*time.Hour + 7*time.Hour + 11*time.Minute + 42*time.Second,
	}

	for _, off := range offsets {
		snap := ComputeRemaining(now.Add(off), now)
		require.False(t, snap.Expired, "offset %s", off)
		assert.GreaterOrEqual(t, snap.Days, 0, "offset %s", off)
		assert.GreaterOrEqual(t, snap.Hours, 0, "offset %s", off)
		assert.LessOrEqual(t, snap.Hours, 23, "offset %s", off)
		assert.GreaterOrEqual(t, snap.Minutes, 0, "offset %s", off)
		assert.LessOrEqual(t, snap.Minutes, 59, "offset %s", off)
		assert.GreaterOrEqual(t, snap.Seconds, 0, "offset %s", off)
		assert.LessOrEqual(t, snap.Seconds, 59, "offset %s", off)
	}
}

func TestComputeRemainingIsPure(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	target := now.Add(42*time.Hour + 17*time.Minute)

	first := ComputeRemaining(target, now)
	second := ComputeRemaining(target, now)
	assert.Equal(t, first, second)
}

func TestComputeRemainingConsecutiveSeconds(t *testing.T) {
	// Two samples 1000 ms apart: seconds decrement by one, with rollover
	// falling out of the modulus arithmetic rather than any carry logic.
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	target := now.Add(2*time.Minute + 0*time.Second + 500*time.Millisecond)

	a := ComputeRemaining(target, now)
	b := ComputeRemaining(target, now.Add(time.Second))
	assert.Equal(t, 0, a.Seconds)
	assert.Equal(t, 59, b.Seconds)
	assert.Equal(t, a.Minutes-1, b.Minutes)
}

func TestPad2(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "00"},
		{7, "07"},
		{10, "10"},
		{23, "23"},
		{59, "59"},
		{365, "365"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Pad2(tt.in))
	}
}
