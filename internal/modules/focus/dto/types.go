package dto

import "time"

type StartInput struct {
	Goal string
}

type StartOutput struct {
	SessionID string
	StartedAt time.Time
	Goal      string
}

type EndInput struct {
	SessionID string
}

type EndOutput struct {
	SessionID   string
	DurationMin int
	Recorded    bool
}

type ActiveFocusOutput struct {
	SessionID string
	StartedAt time.Time
	Goal      string
}

type RecordInput struct {
	Minutes float64
}

type SessionOutput struct {
	Timestamp time.Time
	Minutes   float64
}

type TodayOutput struct {
	Minutes  float64
	Sessions int
}
