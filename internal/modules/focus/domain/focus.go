package domain

import (
	"fmt"
	"time"

	apperrors "mindflow/internal/platform/errors"
)

const DefaultGoal = "25m"

// ActiveFocus is a focus session that has been started and not yet ended.
type ActiveFocus struct {
	SessionID string    `json:"session_id"`
	StartedAt time.Time `json:"started_at"`
	Goal      string    `json:"goal"`
}

// Session is a completed focus session. Entries are append-only; entries of
// past days stay in the ledger and simply stop counting.
type Session struct {
	Timestamp time.Time `json:"timestamp"`
	Duration  float64   `json:"duration"`
}

// MinutesSince sums the durations of sessions stamped at or after since.
func MinutesSince(sessions []Session, since time.Time) float64 {
	total := 0.0
	for _, s := range sessions {
		if !s.Timestamp.Before(since) {
			total += s.Duration
		}
	}
	return total
}

// ValidateGoal accepts positive durations such as "25m" or "1h30m".
func ValidateGoal(goal string) error {
	d, err := time.ParseDuration(goal)
	if err != nil {
		return fmt.Errorf("%w: focus goal %q: %v", apperrors.ErrInvalidInput, goal, err)
	}
	if d <= 0 {
		return fmt.Errorf("%w: focus goal must be positive", apperrors.ErrInvalidInput)
	}
	return nil
}
