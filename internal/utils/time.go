package utils

import (
	"fmt"
	"time"
)

// FormatClock renders d as MM:SS.cc (centiseconds). Minutes are not capped, so
// a two hour run reads 120:00.00. Negative durations render as zero.
func FormatClock(d time.Duration) string {
	mmss, cs := SplitClock(d)
	return mmss + "." + cs
}

// SplitClock returns the MM:SS and centisecond parts of FormatClock separately,
// for views that style the fraction differently.
func SplitClock(d time.Duration) (string, string) {
	if d < 0 {
		d = 0
	}
	total := d.Milliseconds()
	m := total / 60000
	s := (total % 60000) / 1000
	cs := (total % 1000) / 10
	return fmt.Sprintf("%02d:%02d", m, s), fmt.Sprintf("%02d", cs)
}

// FormatSeconds renders a whole number of seconds as M:SS, used for config
// summaries (e.g. 180 -> 3:00).
func FormatSeconds(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
