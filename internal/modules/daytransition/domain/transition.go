// Package domain holds the names and result types of the day transition.
package domain

import (
	"time"

	"mindflow/internal/platform/calendar"
)

const (
	// TaskName is the background task that re-runs the date check.
	TaskName = "MIDNIGHT_TRANSITION_TASK"
	// NotificationID is the daily alarm that fires at local midnight.
	NotificationID = "midnight-transition"
	// NotificationType is carried in the alarm payload under "type".
	NotificationType = "midnight-transition"

	MinTaskInterval = 15 * time.Minute
)

const (
	StepResetNotifications = "reset-notifications"
	StepResetScreenTime    = "reset-screen-time"
	StepRefreshDay         = "refresh-day"
	StepResetNoteFlag      = "reset-note-flag"
	StepRescheduleMidnight = "reschedule-midnight"
)

// Payload is the data attached to the midnight alarm.
func Payload() map[string]string {
	return map[string]string{"type": NotificationType}
}

// Result describes one date check. Failed lists the steps whose error was
// swallowed; the asynchronous refresh reports through the log only.
type Result struct {
	Transitioned bool
	Today        calendar.Date
	Previous     calendar.Date
	Failed       []string
}

// Due reports whether a check on today must run the transition. A missing
// last date and any different date, earlier or later, both count.
func Due(last calendar.Date, known bool, today calendar.Date) bool {
	return !known || !last.Equal(today)
}
