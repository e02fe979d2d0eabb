package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"mindflow/internal/modules/daytransition/domain"
	dtout "mindflow/internal/modules/daytransition/port/out"
	"mindflow/internal/platform/calendar"
	"mindflow/internal/platform/clock"
)

const DefaultRefreshTimeout = 20 * time.Second

type Ports struct {
	Dates         dtout.DateStore
	Notifications dtout.NotificationResetter
	ScreenTime    dtout.ScreenTimeResetter
	Refresher     dtout.DayRefresher
	Notes         dtout.NoteFlagResetter
	Scheduler     dtout.Scheduler
}

type Options struct {
	WakeInterval   time.Duration
	MidnightHour   int
	MidnightMinute int
	RefreshTimeout time.Duration
}

// Coordinator runs the day transition at most once per local calendar day.
type Coordinator struct {
	clock clock.Clock
	ports Ports
	opts  Options
	log   *slog.Logger

	mu       sync.Mutex
	inflight sync.WaitGroup
}

type step struct {
	name string
	run  func(context.Context) error
}

func NewCoordinator(clock clock.Clock, ports Ports, opts Options, logger *slog.Logger) *Coordinator {
	if opts.RefreshTimeout <= 0 {
		opts.RefreshTimeout = DefaultRefreshTimeout
	}
	if opts.WakeInterval < domain.MinTaskInterval {
		opts.WakeInterval = domain.MinTaskInterval
	}
	return &Coordinator{clock: clock, ports: ports, opts: opts, log: logger.With("module", "daytransition")}
}

func (c *Coordinator) Initialize(ctx context.Context) (domain.Result, error) {
	if err := c.ports.Scheduler.RegisterTask(ctx, domain.TaskName, c.opts.WakeInterval, c.onWake); err != nil {
		c.log.ErrorContext(ctx, "register background task", slog.String("task", domain.TaskName), slog.Any("error", err))
	}
	if err := c.scheduleMidnight(ctx); err != nil {
		c.log.ErrorContext(ctx, "schedule midnight notification", slog.Any("error", err))
	}
	return c.CheckDateTransition(ctx)
}

// CheckDateTransition compares today with the last active date and runs the
// transition steps when they differ. The last active date is written only
// after every step has been attempted.
func (c *Coordinator) CheckDateTransition(ctx context.Context) (domain.Result, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	today := calendar.DateOf(c.clock.Now())
	last, known, err := c.ports.Dates.LastActiveDate(ctx)
	if err != nil {
		return domain.Result{Today: today}, fmt.Errorf("read last active date: %w", err)
	}
	result := domain.Result{Today: today, Previous: last}
	if !domain.Due(last, known, today) {
		return result, nil
	}

	result.Transitioned = true
	for _, s := range c.steps() {
		if err := c.runStep(ctx, s); err != nil {
			c.log.WarnContext(ctx, "transition step failed", slog.String("step", s.name), slog.Any("error", err))
			result.Failed = append(result.Failed, s.name)
		}
	}

	if err := c.ports.Dates.SetLastActiveDate(ctx, today); err != nil {
		return result, fmt.Errorf("write last active date: %w", err)
	}
	c.log.InfoContext(ctx, "day transition complete",
		slog.String("previous", formatDate(last, known)),
		slog.String("today", today.String()),
		slog.Int("failed_steps", len(result.Failed)),
	)
	return result, nil
}

// Cleanup removes the background task and the midnight alarm.
func (c *Coordinator) Cleanup(ctx context.Context) {
	if err := c.ports.Scheduler.UnregisterTask(ctx, domain.TaskName); err != nil {
		c.log.WarnContext(ctx, "unregister background task", slog.Any("error", err))
	}
	if err := c.ports.Scheduler.Cancel(ctx, domain.NotificationID); err != nil {
		c.log.WarnContext(ctx, "cancel midnight notification", slog.Any("error", err))
	}
}

func (c *Coordinator) Wait() {
	c.inflight.Wait()
}

func (c *Coordinator) steps() []step {
	return []step{
		{name: domain.StepResetNotifications, run: c.ports.Notifications.ResetNotifications},
		{name: domain.StepResetScreenTime, run: c.ports.ScreenTime.ResetScreenTime},
		{name: domain.StepRefreshDay, run: c.refreshInBackground},
		{name: domain.StepResetNoteFlag, run: c.ports.Notes.ResetFlag},
		{name: domain.StepRescheduleMidnight, run: c.scheduleMidnight},
	}
}

func (c *Coordinator) runStep(ctx context.Context, s step) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("step %s panicked: %v", s.name, r)
		}
	}()
	return s.run(ctx)
}

// refreshInBackground starts the backend refresh and returns at once. The
// request outlives ctx cancellation but not its own timeout.
func (c *Coordinator) refreshInBackground(ctx context.Context) error {
	c.inflight.Add(1)
	go func() {
		defer c.inflight.Done()
		rctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.opts.RefreshTimeout)
		defer cancel()
		s := step{name: domain.StepRefreshDay, run: c.ports.Refresher.RefreshDay}
		if err := c.runStep(rctx, s); err != nil {
			c.log.WarnContext(rctx, "transition step failed", slog.String("step", s.name), slog.Any("error", err))
		}
	}()
	return nil
}

func (c *Coordinator) scheduleMidnight(ctx context.Context) error {
	next, err := c.ports.Scheduler.ScheduleDaily(ctx, domain.NotificationID, c.opts.MidnightHour, c.opts.MidnightMinute, domain.Payload(), c.onWake)
	if err != nil {
		return err
	}
	c.log.DebugContext(ctx, "midnight notification scheduled", slog.Time("next", next))
	return nil
}

func (c *Coordinator) onWake(ctx context.Context) error {
	_, err := c.CheckDateTransition(ctx)
	return err
}

func formatDate(d calendar.Date, known bool) string {
	if !known {
		return "none"
	}
	return d.String()
}
