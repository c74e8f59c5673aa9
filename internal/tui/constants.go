package tui

import "time"

// Package-level constants to avoid magic numbers and improve readability.
const (
	countdownTickSeconds = 1
	frameIntervalMS      = 50

	// boxGap separates the four unit panels.
	boxGap = 2
	// terminalBoxPadding is the breathing room around the expiry message.
	terminalBoxPadding = 1
	// progressBarWidth is the elapsed-window bar under the digits.
	progressBarWidth = 40

	countdownTickInterval = countdownTickSeconds * time.Second
	frameInterval         = frameIntervalMS * time.Millisecond
)
