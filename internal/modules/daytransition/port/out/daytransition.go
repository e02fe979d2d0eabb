package out

import (
	"context"
	"time"

	"mindflow/internal/platform/calendar"
)

type DateStore interface {
	LastActiveDate(ctx context.Context) (calendar.Date, bool, error)
	SetLastActiveDate(ctx context.Context, day calendar.Date) error
}

type NotificationResetter interface {
	ResetNotifications(ctx context.Context) error
}

type ScreenTimeResetter interface {
	ResetScreenTime(ctx context.Context) error
}

// DayRefresher asks the backend-of-record to roll the user's day over.
type DayRefresher interface {
	RefreshDay(ctx context.Context) error
}

type NoteFlagResetter interface {
	ResetFlag(ctx context.Context) error
}

type Scheduler interface {
	RegisterTask(ctx context.Context, name string, minInterval time.Duration, run func(context.Context) error) error
	UnregisterTask(ctx context.Context, name string) error
	ScheduleDaily(ctx context.Context, id string, hour, minute int, payload map[string]string, fire func(context.Context) error) (time.Time, error)
	Cancel(ctx context.Context, id string) error
}
