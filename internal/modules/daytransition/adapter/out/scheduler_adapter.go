package out

import (
	"context"
	"time"

	dtout "mindflow/internal/modules/daytransition/port/out"
	"mindflow/internal/platform/scheduler"
)

type SchedulerAdapter struct {
	scheduler *scheduler.Scheduler
}

func NewSchedulerAdapter(s *scheduler.Scheduler) dtout.Scheduler {
	return &SchedulerAdapter{scheduler: s}
}

func (a *SchedulerAdapter) RegisterTask(ctx context.Context, name string, minInterval time.Duration, run func(context.Context) error) error {
	return a.scheduler.RegisterTask(ctx, name, minInterval, run)
}

func (a *SchedulerAdapter) UnregisterTask(ctx context.Context, name string) error {
	return a.scheduler.UnregisterTask(ctx, name)
}

func (a *SchedulerAdapter) ScheduleDaily(ctx context.Context, id string, hour, minute int, payload map[string]string, fire func(context.Context) error) (time.Time, error) {
	alarm := scheduler.Alarm{ID: id, Hour: hour, Minute: minute, Payload: payload}
	return a.scheduler.ScheduleDaily(ctx, alarm, func(ctx context.Context, _ scheduler.Alarm) error {
		return fire(ctx)
	})
}

func (a *SchedulerAdapter) Cancel(ctx context.Context, id string) error {
	return a.scheduler.Cancel(ctx, id)
}
