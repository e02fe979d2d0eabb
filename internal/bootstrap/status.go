package bootstrap

import (
	"context"
	"os"
	"slices"
	"syscall"
	"time"

	dtoutadapter "mindflow/internal/modules/daytransition/adapter/out"
	noteoutadapter "mindflow/internal/modules/note/adapter/out"
)

// AlarmStatus is one scheduled notification as last mirrored by a daemon.
type AlarmStatus struct {
	ID   string
	Next time.Time
}

type StatusReport struct {
	Today          string
	LastActiveDate string
	UserID         string
	ScreenTime     string
	Notifications  int
	NoteSubmitted  bool
	Tasks          []string
	Alarms         []AlarmStatus
	DaemonPID      int
	DaemonRunning  bool
}

// Status reads the persisted day-transition bookkeeping without changing it.
func (a *App) Status(ctx context.Context) (StatusReport, error) {
	report := StatusReport{
		Today:      a.clock.Now().Format("2006-01-02"),
		UserID:     a.Identity.UserID(ctx),
		ScreenTime: a.usage.FormattedScreenTime(ctx),
	}

	last, _, err := a.kv.Get(ctx, dtoutadapter.KeyLastActiveDate)
	if err != nil {
		return StatusReport{}, err
	}
	report.LastActiveDate = last

	count, err := a.usage.NotificationCount(ctx)
	if err != nil {
		return StatusReport{}, err
	}
	report.Notifications = count.Count

	flag, _, err := a.kv.Get(ctx, noteoutadapter.KeyDailyNoteSubmitted)
	if err != nil {
		return StatusReport{}, err
	}
	report.NoteSubmitted = flag == "true"

	pid, ok, err := a.pid.Read()
	if err != nil {
		return StatusReport{}, err
	}
	if ok {
		report.DaemonPID = pid
		report.DaemonRunning = processAlive(pid)
	}
	// Only a running daemon fires tasks and alarms.
	if !report.DaemonRunning {
		return report, nil
	}

	if report.Tasks, err = a.mirror.LoadTasks(ctx); err != nil {
		return StatusReport{}, err
	}
	alarms, err := a.mirror.LoadAlarms(ctx)
	if err != nil {
		return StatusReport{}, err
	}
	for id, next := range alarms {
		report.Alarms = append(report.Alarms, AlarmStatus{ID: id, Next: next})
	}
	slices.SortFunc(report.Alarms, func(x, y AlarmStatus) int { return x.Next.Compare(y.Next) })
	return report, nil
}

func processAlive(pid int) bool {
	proc, err := os.FindProcess(pid)
	if err != nil {
		return false
	}
	return proc.Signal(syscall.Signal(0)) == nil
}
