// Package scheduler runs named background tasks on a minimum interval and
// daily alarms at a local wall-clock time. Fire times are best effort.
package scheduler

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"mindflow/internal/platform/calendar"
	"mindflow/internal/platform/clock"
	apperrors "mindflow/internal/platform/errors"
)

// DefaultMinInterval is the shortest interval a task may ask for.
const DefaultMinInterval = 15 * time.Minute

type TaskFunc func(ctx context.Context) error

// Alarm fires once a day at Hour:Minute local time.
type Alarm struct {
	ID      string
	Hour    int
	Minute  int
	Payload map[string]string
}

type AlarmFunc func(ctx context.Context, alarm Alarm) error

// Mirror receives the registration state after every change. RemoveTask and
// RemoveAlarm drop entries left by another process.
type Mirror interface {
	SaveTasks(ctx context.Context, names []string) error
	SaveAlarms(ctx context.Context, next map[string]time.Time) error
	RemoveTask(ctx context.Context, name string) error
	RemoveAlarm(ctx context.Context, id string) error
}

type task struct {
	interval time.Duration
	fn       TaskFunc
	next     time.Time
}

type alarm struct {
	Alarm
	fn   AlarmFunc
	next time.Time
}

type Scheduler struct {
	clock       clock.Clock
	log         *slog.Logger
	mirror      Mirror
	minInterval time.Duration

	mu     sync.Mutex
	tasks  map[string]*task
	alarms map[string]*alarm
	wake   chan struct{}
}

type Option func(*Scheduler)

func WithMirror(m Mirror) Option {
	return func(s *Scheduler) { s.mirror = m }
}

func WithMinInterval(d time.Duration) Option {
	return func(s *Scheduler) { s.minInterval = d }
}

func New(clk clock.Clock, logger *slog.Logger, opts ...Option) *Scheduler {
	s := &Scheduler{
		clock:       clk,
		log:         logger.With("component", "scheduler"),
		minInterval: DefaultMinInterval,
		tasks:       map[string]*task{},
		alarms:      map[string]*alarm{},
		wake:        make(chan struct{}, 1),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// RegisterTask registers fn under name. A name that is already registered
// keeps its original registration and the call returns nil.
func (s *Scheduler) RegisterTask(ctx context.Context, name string, interval time.Duration, fn TaskFunc) error {
	if name == "" || fn == nil {
		return fmt.Errorf("%w: task name and func are required", apperrors.ErrInvalidInput)
	}
	if interval < s.minInterval {
		interval = s.minInterval
	}

	s.mu.Lock()
	if _, ok := s.tasks[name]; ok {
		s.mu.Unlock()
		s.log.DebugContext(ctx, "task already registered", slog.String("task", name))
		return nil
	}
	s.tasks[name] = &task{interval: interval, fn: fn, next: s.clock.Now().Add(interval)}
	names := s.taskNamesLocked()
	s.mu.Unlock()

	s.poke()
	s.log.InfoContext(ctx, "task registered", slog.String("task", name), slog.Duration("interval", interval))
	return s.saveTasks(ctx, names)
}

// UnregisterTask removes name from this scheduler and from the mirror, even
// when the registration was made by an earlier process.
func (s *Scheduler) UnregisterTask(ctx context.Context, name string) error {
	s.mu.Lock()
	if _, ok := s.tasks[name]; !ok {
		s.mu.Unlock()
		if s.mirror == nil {
			return nil
		}
		if err := s.mirror.RemoveTask(ctx, name); err != nil {
			return fmt.Errorf("mirror tasks: %w", err)
		}
		return nil
	}
	delete(s.tasks, name)
	names := s.taskNamesLocked()
	s.mu.Unlock()

	s.poke()
	s.log.InfoContext(ctx, "task unregistered", slog.String("task", name))
	return s.saveTasks(ctx, names)
}

// ScheduleDaily installs a, replacing any alarm with the same id, and returns
// its next fire time.
func (s *Scheduler) ScheduleDaily(ctx context.Context, a Alarm, fn AlarmFunc) (time.Time, error) {
	if a.ID == "" || fn == nil {
		return time.Time{}, fmt.Errorf("%w: alarm id and func are required", apperrors.ErrInvalidInput)
	}
	if a.Hour < 0 || a.Hour > 23 || a.Minute < 0 || a.Minute > 59 {
		return time.Time{}, fmt.Errorf("%w: alarm time %02d:%02d", apperrors.ErrInvalidInput, a.Hour, a.Minute)
	}

	next := calendar.NextLocalTime(s.clock.Now(), a.Hour, a.Minute)
	s.mu.Lock()
	s.alarms[a.ID] = &alarm{Alarm: a, fn: fn, next: next}
	snapshot := s.alarmTimesLocked()
	s.mu.Unlock()

	s.poke()
	s.log.InfoContext(ctx, "alarm scheduled", slog.String("alarm", a.ID), slog.Time("next", next))
	return next, s.saveAlarms(ctx, snapshot)
}

// Cancel removes alarm id here and from the mirror.
func (s *Scheduler) Cancel(ctx context.Context, id string) error {
	s.mu.Lock()
	if _, ok := s.alarms[id]; !ok {
		s.mu.Unlock()
		if s.mirror == nil {
			return nil
		}
		if err := s.mirror.RemoveAlarm(ctx, id); err != nil {
			return fmt.Errorf("mirror alarms: %w", err)
		}
		return nil
	}
	delete(s.alarms, id)
	snapshot := s.alarmTimesLocked()
	s.mu.Unlock()

	s.poke()
	s.log.InfoContext(ctx, "alarm cancelled", slog.String("alarm", id))
	return s.saveAlarms(ctx, snapshot)
}

// Next reports the next fire time of alarm id.
func (s *Scheduler) Next(id string) (time.Time, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.alarms[id]
	if !ok {
		return time.Time{}, false
	}
	return a.next, true
}

// Tasks lists registered task names in order.
func (s *Scheduler) Tasks() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.taskNamesLocked()
}

// Run fires due tasks and alarms until ctx is cancelled.
func (s *Scheduler) Run(ctx context.Context) error {
	timer := time.NewTimer(s.untilNext())
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-s.wake:
		case <-timer.C:
			s.fireDue(ctx)
		}
		if !timer.Stop() {
			select {
			case <-timer.C:
			default:
			}
		}
		timer.Reset(s.untilNext())
	}
}

func (s *Scheduler) untilNext() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()

	var earliest time.Time
	for _, t := range s.tasks {
		if earliest.IsZero() || t.next.Before(earliest) {
			earliest = t.next
		}
	}
	for _, a := range s.alarms {
		if earliest.IsZero() || a.next.Before(earliest) {
			earliest = a.next
		}
	}
	if earliest.IsZero() {
		return time.Hour
	}
	d := earliest.Sub(s.clock.Now())
	if d < 0 {
		return 0
	}
	return d
}

type dueTask struct {
	name string
	fn   TaskFunc
}

type dueAlarm struct {
	alarm Alarm
	fn    AlarmFunc
}

func (s *Scheduler) fireDue(ctx context.Context) {
	now := s.clock.Now()

	s.mu.Lock()
	var tasks []dueTask
	for name, t := range s.tasks {
		if !now.Before(t.next) {
			tasks = append(tasks, dueTask{name: name, fn: t.fn})
			t.next = now.Add(t.interval)
		}
	}
	var alarms []dueAlarm
	for _, a := range s.alarms {
		if !now.Before(a.next) {
			alarms = append(alarms, dueAlarm{alarm: a.Alarm, fn: a.fn})
			a.next = calendar.NextLocalTime(now, a.Hour, a.Minute)
		}
	}
	snapshot := s.alarmTimesLocked()
	s.mu.Unlock()

	slices.SortFunc(tasks, func(a, b dueTask) int { return cmp.Compare(a.name, b.name) })
	for _, t := range tasks {
		if err := t.fn(ctx); err != nil {
			s.log.WarnContext(ctx, "task failed", slog.String("task", t.name), slog.Any("error", err))
		}
	}
	for _, a := range alarms {
		s.log.InfoContext(ctx, "alarm fired", slog.String("alarm", a.alarm.ID), slog.Any("payload", a.alarm.Payload))
		if err := a.fn(ctx, a.alarm); err != nil {
			s.log.WarnContext(ctx, "alarm handler failed", slog.String("alarm", a.alarm.ID), slog.Any("error", err))
		}
	}
	if len(alarms) > 0 {
		if err := s.saveAlarms(ctx, snapshot); err != nil {
			s.log.WarnContext(ctx, "mirror alarms", slog.Any("error", err))
		}
	}
}

func (s *Scheduler) poke() {
	select {
	case s.wake <- struct{}{}:
	default:
	}
}

func (s *Scheduler) taskNamesLocked() []string {
	names := make([]string, 0, len(s.tasks))
	for name := range s.tasks {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func (s *Scheduler) alarmTimesLocked() map[string]time.Time {
	out := make(map[string]time.Time, len(s.alarms))
	for id, a := range s.alarms {
		out[id] = a.next
	}
	return out
}

func (s *Scheduler) saveTasks(ctx context.Context, names []string) error {
	if s.mirror == nil {
		return nil
	}
	if err := s.mirror.SaveTasks(ctx, names); err != nil {
		return fmt.Errorf("mirror tasks: %w", err)
	}
	return nil
}

func (s *Scheduler) saveAlarms(ctx context.Context, next map[string]time.Time) error {
	if s.mirror == nil {
		return nil
	}
	if err := s.mirror.SaveAlarms(ctx, next); err != nil {
		return fmt.Errorf("mirror alarms: %w", err)
	}
	return nil
}
