package out

import (
	"context"
	"time"

	"mindflow/internal/modules/usage/domain"
	"mindflow/internal/platform/calendar"
)

// ScreenTimeStore persists each field under its own key; no call spans keys.
type ScreenTimeStore interface {
	LoadScreenTime(ctx context.Context) (domain.ScreenTime, error)
	SaveTotal(ctx context.Context, total time.Duration) error
	SaveSessionStart(ctx context.Context, start time.Time) error
	ClearSessionStart(ctx context.Context) error
	SaveDate(ctx context.Context, date calendar.Date) error
}

type NotificationStore interface {
	LoadCount(ctx context.Context) (int, error)
	SaveCount(ctx context.Context, count int) error
}
