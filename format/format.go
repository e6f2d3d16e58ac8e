// Package format holds the pure display-string helpers consumed by the HUD.
// No failure modes: negative input is clamped to zero.
package format

import (
	"fmt"
	"time"
)

// OrdinalDigits renders value as a zero-padded decimal string at least
// minWidth runes wide
func OrdinalDigits(value int, minWidth int) string {
	if value < 0 {
		value = 0
	}
	if minWidth < 1 {
		minWidth = 1
	}
	return fmt.Sprintf("%0*d", minWidth, value)
}

// ClockString renders a millisecond duration as "MM:SS". Durations of an
// hour or more keep counting minutes past 59.
func ClockString(ms int64) string {
	if ms < 0 {
		ms = 0
	}
	total := time.Duration(ms) * time.Millisecond
	minutes := int(total / time.Minute)
	seconds := int(total/time.Second) % 60
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}
