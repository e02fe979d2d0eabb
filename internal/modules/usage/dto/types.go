package dto

import "time"

type ScreenTimeOutput struct {
	Total        time.Duration
	Formatted    string
	Tracking     bool
	SessionStart time.Time
	// Added is the interval folded into Total by a Background call.
	Added time.Duration
}

type NotificationOutput struct {
	Count int
}
