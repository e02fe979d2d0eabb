package domain

import (
	"math"
	"regexp"
	"strconv"
)

const (
	// NeutralScore is reported when any input cannot be read.
	NeutralScore = 50

	focusSaturationMinutes      = 120.0
	screenTimeSaturationMinutes = 180.0
	notificationSaturation      = 50.0

	focusWeight        = 0.4
	screenTimeWeight   = 0.3
	notificationWeight = 0.3

	FallbackScreenTime = "0h 0m"
	FallbackGoal       = "25m"
)

// Score combines the day's inputs into a value in [0,100]. Focus counts up to
// two hours, screen time penalises up to three hours and notifications up to 50.
func Score(focusMinutes, screenTimeMinutes float64, notifications int) int {
	focus := math.Min(100, nonNegative(focusMinutes)/focusSaturationMinutes*100)
	screen := math.Max(0, 100-nonNegative(screenTimeMinutes)/screenTimeSaturationMinutes*100)
	notify := math.Max(0, 100-nonNegative(float64(notifications))/notificationSaturation*100)

	return int(math.Round(focus*focusWeight + screen*screenTimeWeight + notify*notificationWeight))
}

func nonNegative(v float64) float64 {
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	return v
}

var hmPattern = regexp.MustCompile(`(\d+)h\s+(\d+)m`)

// ParseHM reads minutes back from an "Hh Mm" string. Unparsable input is 0.
func ParseHM(s string) int {
	m := hmPattern.FindStringSubmatch(s)
	if m == nil {
		return 0
	}
	hours, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	minutes, err := strconv.Atoi(m[2])
	if err != nil {
		return 0
	}
	return hours*60 + minutes
}

type Band string

const (
	BandGood Band = "good"
	BandFair Band = "fair"
	BandLow  Band = "low"
)

func BandOf(score int) Band {
	switch {
	case score >= 80:
		return BandGood
	case score >= 60:
		return BandFair
	default:
		return BandLow
	}
}

// Wellness is the dashboard snapshot.
type Wellness struct {
	ScreenTime    string
	Notifications int
	SessionGoal   string
	FocusScore    int
	Band          Band
}
