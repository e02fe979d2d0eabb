package domain

import (
	"fmt"
	"math"
)

type Status string

const (
	StatusNoStreak  Status = "no_streak"
	StatusIncreased Status = "increased"
	StatusDecreased Status = "decreased"
	StatusBroken    Status = "broken"
)

func (s Status) Valid() bool {
	switch s {
	case StatusNoStreak, StatusIncreased, StatusDecreased, StatusBroken:
		return true
	}
	return false
}

// State mirrors the backend's streak record. Values are never computed
// locally; only Status is derived for display.
type State struct {
	CurrentStreak  int    `json:"current_streak"`
	LongestStreak  int    `json:"longest_streak"`
	Status         Status `json:"streak_status"`
	Message        string `json:"streak_message"`
	TodayCompleted int    `json:"today_completed"`
	TodayTotal     int    `json:"today_total"`
}

// DeriveStatus labels the move from previous to fresh. A drop to zero from a
// live streak is broken rather than decreased. Equal non-zero streaks keep the
// label reported with fresh, then the previous label, then increased.
func DeriveStatus(previous, fresh State) Status {
	oldStreak, newStreak := previous.CurrentStreak, fresh.CurrentStreak
	switch {
	case newStreak == 0 && oldStreak > 0:
		return StatusBroken
	case newStreak > oldStreak:
		return StatusIncreased
	case newStreak < oldStreak:
		return StatusDecreased
	case newStreak == 0:
		return StatusNoStreak
	}
	if fresh.Status.Valid() && fresh.Status != StatusNoStreak {
		return fresh.Status
	}
	if previous.Status.Valid() && previous.Status != StatusNoStreak {
		return previous.Status
	}
	return StatusIncreased
}

// CompletionPercent is completed/total as a percentage in [0,100]; zero when
// there are no tasks.
func CompletionPercent(completed, total int) float64 {
	if total <= 0 || completed <= 0 {
		return 0
	}
	return math.Min(100, float64(completed)/float64(total)*100)
}

func (s State) Percent() float64 {
	return CompletionPercent(s.TodayCompleted, s.TodayTotal)
}

// Inconsistencies lists violated invariants of mirrored data. They are
// reported, not repaired.
func Inconsistencies(s State) []string {
	var out []string
	if s.CurrentStreak < 0 || s.LongestStreak < 0 || s.TodayCompleted < 0 || s.TodayTotal < 0 {
		out = append(out, "negative counter")
	}
	if s.TodayCompleted > s.TodayTotal {
		out = append(out, fmt.Sprintf("today_completed %d > today_total %d", s.TodayCompleted, s.TodayTotal))
	}
	if s.CurrentStreak > s.LongestStreak {
		out = append(out, fmt.Sprintf("current_streak %d > longest_streak %d", s.CurrentStreak, s.LongestStreak))
	}
	return out
}

type Tone string

const (
	TonePositive Tone = "positive"
	ToneCaution  Tone = "caution"
	ToneAlert    Tone = "alert"
	ToneMuted    Tone = "muted"
)

// Theme picks the display message and tone for status.
func Theme(status Status) (string, Tone) {
	switch status {
	case StatusIncreased:
		return "Your streak is growing. Keep it up!", TonePositive
	case StatusDecreased:
		return "Your streak slipped. Finish today's tasks to climb back.", ToneCaution
	case StatusBroken:
		return "Streak broken. Start a new one today!", ToneAlert
	default:
		return "Complete all of today's tasks to start a streak.", ToneMuted
	}
}

type Task struct {
	ID          string
	Title       string
	Description string
	Category    string
	Completed   bool
}
