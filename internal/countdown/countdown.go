// Package countdown implements the time-remaining computation that drives
// the launchday display: whole days/hours/minutes/seconds until a fixed
// target instant, plus expiry detection.
package countdown

import (
	"fmt"
	"time"
)

// Millisecond spans for each display unit.
const (
	msPerSecond int64 = 1_000
	msPerMinute int64 = 60 * msPerSecond
	msPerHour   int64 = 60 * msPerMinute
	msPerDay    int64 = 24 * msPerHour
)

// Snapshot is the result of one remaining-time computation. Unit values are
// only meaningful when Expired is false; once the target has passed they go
// negative rather than being clamped, so callers must check Expired before
// rendering them.
type Snapshot struct {
	Days    int
	Hours   int
	Minutes int
	Seconds int
	Expired bool
}

// ComputeRemaining derives the whole-unit breakdown of target−now.
// Pure: same inputs always yield the same Snapshot.
//
// Expiry is strictly less-than-zero: at the exact target instant the
// countdown still reads 00:00:00:00 and is not expired.
func ComputeRemaining(target, now time.Time) Snapshot {
	distance := target.Sub(now).Milliseconds()
	return Snapshot{
		Days:    int(distance / msPerDay),
		Hours:   int((distance % msPerDay) / msPerHour),
		Minutes: int((distance % msPerHour) / msPerMinute),
		Seconds: int((distance % msPerMinute) / msPerSecond),
		Expired: distance < 0,
	}
}

// Pad2 formats a unit value as a two-character zero-padded decimal string.
// Values of three or more digits (large day counts) render at full width.
func Pad2(n int) string {
	return fmt.Sprintf("%02d", n)
}

// Clock abstracts time sampling so the engine can be driven by a fake
// clock in tests.
type Clock interface {
	Now() time.Time
}

// systemClock is the default Clock backed by time.Now.
type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns the wall clock.
func SystemClock() Clock { return systemClock{} }
