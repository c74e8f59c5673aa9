package tui

import "time"

// Message types for the Bubble Tea update loop.

// tickMsg fires every second to advance the countdown. The first one is
// emitted immediately from Init so the display never starts blank.
type tickMsg time.Time

// frameMsg advances the particle field, independent of the countdown
// cadence. Frames keep arriving after the countdown finishes.
type frameMsg time.Time

// audioStartedMsg reports the outcome of kicking off playback.
type audioStartedMsg struct{}
