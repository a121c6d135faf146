// Package timefmt formats wall-clock instants into the display fields
// shown by the clock face.
package timefmt

import (
	"fmt"
	"time"
)

// Clock returns the 24-hour time of day as zero-padded "HH:MM:SS".
func Clock(t time.Time) string {
	return t.Format("15:04:05")
}

// Millis returns the sub-second component as zero-padded milliseconds,
// always exactly three digits.
func Millis(t time.Time) string {
	return fmt.Sprintf("%03d", t.Nanosecond()/int(time.Millisecond))
}

// Fields returns both display fields for a single instant.
func Fields(t time.Time) (clock, millis string) {
	return Clock(t), Millis(t)
}
