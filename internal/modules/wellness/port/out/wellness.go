package out

import "context"

type FocusSource interface {
	TodayFocusMinutes(ctx context.Context) (float64, error)
	SessionGoal(ctx context.Context) (string, error)
}

type UsageSource interface {
	// ScreenTime returns the "Hh Mm" reading of today's screen time.
	ScreenTime(ctx context.Context) (string, error)
	NotificationCount(ctx context.Context) (int, error)
}
