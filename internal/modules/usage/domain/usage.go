package domain

import (
	"fmt"
	"time"

	"mindflow/internal/platform/calendar"
)

// ScreenTime is the persisted accumulator. Tracking is true while a
// foreground interval is open at SessionStart.
type ScreenTime struct {
	Total        time.Duration
	SessionStart time.Time
	Tracking     bool
	Date         calendar.Date
	HasDate      bool
}

// Elapsed is the open interval up to now, never negative.
func (s ScreenTime) Elapsed(now time.Time) time.Duration {
	if !s.Tracking {
		return 0
	}
	d := now.Sub(s.SessionStart)
	if d < 0 {
		return 0
	}
	return d
}

// Reading is the stored total plus any open interval.
func (s ScreenTime) Reading(now time.Time) time.Duration {
	total := s.Total
	if total < 0 {
		total = 0
	}
	return total + s.Elapsed(now)
}

// NeedsRollover reports whether the accumulator holds a day other than today.
func (s ScreenTime) NeedsRollover(today calendar.Date) bool {
	return !s.HasDate || !s.Date.Equal(today)
}

// FormatHM renders d as "Hh Mm" with minutes floored.
func FormatHM(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	minutes := int(d / time.Minute)
	return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
}
