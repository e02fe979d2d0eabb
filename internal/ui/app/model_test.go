package app

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	dtdto "mindflow/internal/modules/daytransition/dto"
	focusdto "mindflow/internal/modules/focus/dto"
	notedto "mindflow/internal/modules/note/dto"
	streakdto "mindflow/internal/modules/streak/dto"
	usagedto "mindflow/internal/modules/usage/dto"
	wellnessdto "mindflow/internal/modules/wellness/dto"
	apperrors "mindflow/internal/platform/errors"
	"mindflow/internal/ui/components"
)

type fakePorts struct {
	foreground, background, checks, refreshes int
	started, ended                            int
	active                                    bool
	transitioned                              bool
	refreshErr                                error
	recorded                                  float64
	goal                                      string
	completed, notes                          []string
	notifications                             int
}

func (f *fakePorts) Snapshot(context.Context) wellnessdto.WellnessOutput {
	return wellnessdto.WellnessOutput{ScreenTime: "1h 5m", Notifications: 4, SessionGoal: "25m", FocusScore: 82, Band: "good"}
}

func (f *fakePorts) Current(context.Context) (streakdto.StreakOutput, error) {
	return streakdto.StreakOutput{Current: 3, Longest: 5, Message: "Your streak is growing.", Tone: "positive"}, nil
}

func (f *fakePorts) Refresh(context.Context) (streakdto.BoardOutput, error) {
	f.refreshes++
	if f.refreshErr != nil {
		return streakdto.BoardOutput{}, f.refreshErr
	}
	return streakdto.BoardOutput{
		Tasks:  []streakdto.TaskOutput{{ID: "1", Title: "Mindful breathing", Completed: true}},
		Streak: streakdto.StreakOutput{Current: 4, Longest: 5},
	}, nil
}

func (f *fakePorts) Foreground(context.Context) (usagedto.ScreenTimeOutput, error) {
	f.foreground++
	return usagedto.ScreenTimeOutput{Tracking: true}, nil
}

func (f *fakePorts) Background(context.Context) (usagedto.ScreenTimeOutput, error) {
	f.background++
	return usagedto.ScreenTimeOutput{}, nil
}

func (f *fakePorts) CheckDateTransition(context.Context) (dtdto.TransitionOutput, error) {
	f.checks++
	return dtdto.TransitionOutput{Transitioned: f.transitioned, Today: "2026-07-01"}, nil
}

func (f *fakePorts) Start(_ context.Context, _ focusdto.StartInput) (focusdto.StartOutput, error) {
	f.started++
	f.active = true
	return focusdto.StartOutput{SessionID: "s1", Goal: "25m"}, nil
}

func (f *fakePorts) End(_ context.Context, input focusdto.EndInput) (focusdto.EndOutput, error) {
	f.ended++
	f.active = false
	return focusdto.EndOutput{SessionID: input.SessionID, DurationMin: 12, Recorded: true}, nil
}

func (f *fakePorts) GetActive(context.Context) (focusdto.ActiveFocusOutput, error) {
	if !f.active {
		return focusdto.ActiveFocusOutput{}, apperrors.ErrNoActiveSession
	}
	return focusdto.ActiveFocusOutput{SessionID: "s1", StartedAt: time.Date(2026, 7, 1, 9, 0, 0, 0, time.UTC), Goal: "25m"}, nil
}

func (f *fakePorts) Record(_ context.Context, input focusdto.RecordInput) (focusdto.SessionOutput, error) {
	f.recorded += input.Minutes
	return focusdto.SessionOutput{Minutes: input.Minutes}, nil
}

func (f *fakePorts) SetGoal(_ context.Context, goal string) error {
	if _, err := time.ParseDuration(goal); err != nil {
		return apperrors.ErrInvalidInput
	}
	f.goal = goal
	return nil
}

func (f *fakePorts) CompleteTask(_ context.Context, input streakdto.CompleteInput) (streakdto.CompleteOutput, error) {
	f.completed = append(f.completed, input.TaskID)
	return streakdto.CompleteOutput{
		Task:   streakdto.TaskOutput{ID: input.TaskID, Title: "Mindful breathing", Completed: true},
		Streak: streakdto.StreakOutput{TodayCompleted: 1, TodayTotal: 3},
	}, nil
}

func (f *fakePorts) RecordNotification(context.Context) (usagedto.NotificationOutput, error) {
	f.notifications++
	return usagedto.NotificationOutput{Count: f.notifications}, nil
}

func (f *fakePorts) Submit(_ context.Context, input notedto.SubmitInput) (notedto.SubmitOutput, error) {
	if len(f.notes) > 0 {
		return notedto.SubmitOutput{}, apperrors.ErrDailyNoteSubmitted
	}
	f.notes = append(f.notes, input.Text)
	return notedto.SubmitOutput{ID: "n1"}, nil
}

func newTestModel(f *fakePorts) Model {
	return NewModel(Ports{Wellness: f, Streak: f, Usage: f, Transition: f, Focus: f, Note: f}, time.Minute)
}

func step(t *testing.T, m Model, msg tea.Msg) (Model, tea.Msg) {
	t.Helper()
	next, cmd := m.Update(msg)
	if cmd == nil {
		return next.(Model), nil
	}
	return next.(Model), cmd()
}

func TestFocusEventsDriveScreenTime(t *testing.T) {
	f := &fakePorts{}
	m := newTestModel(f)

	m, out := step(t, m, tea.FocusMsg{})
	if f.foreground != 1 {
		t.Fatalf("expected foreground call, got %d", f.foreground)
	}
	m, _ = step(t, m, out)
	if !m.tracking {
		t.Fatalf("expected tracking after foreground")
	}

	_, _ = step(t, m, tea.BlurMsg{})
	if f.background != 1 {
		t.Fatalf("expected background call, got %d", f.background)
	}
}

func TestQuitStopsTrackingFirst(t *testing.T) {
	f := &fakePorts{}
	m := newTestModel(f)

	m, out := step(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if !m.quitting || f.background != 1 {
		t.Fatalf("quit must background the tracker, quitting=%v background=%d", m.quitting, f.background)
	}
	_, out = step(t, m, out)
	if _, ok := out.(tea.QuitMsg); !ok {
		t.Fatalf("expected quit after background, got %T", out)
	}
}

func TestTickRunsDateCheckAndReload(t *testing.T) {
	f := &fakePorts{transitioned: true}
	m := newTestModel(f)

	next, cmd := m.Update(tickMsg(time.Now()))
	if cmd == nil {
		t.Fatalf("tick must schedule work")
	}
	m = next.(Model)
	check := m.checkCmd()()
	m, loaded := step(t, m, check)
	if f.checks != 1 {
		t.Fatalf("expected one date check, got %d", f.checks)
	}
	if m.status != "new day 2026-07-01" {
		t.Fatalf("unexpected status %q", m.status)
	}
	m, _ = step(t, m, loaded)
	if m.wellness.FocusScore != 82 || m.streak.Current != 3 {
		t.Fatalf("reload did not apply: %+v %+v", m.wellness, m.streak)
	}
	view := m.View()
	for _, want := range []string{"82", "1h 5m", "3 days"} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q:\n%s", want, view)
		}
	}
}

func TestRefreshKey(t *testing.T) {
	f := &fakePorts{}
	m := newTestModel(f)

	m, out := step(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	m, _ = step(t, m, out)
	if f.refreshes != 1 || m.streak.Current != 4 || len(m.tasks) != 1 {
		t.Fatalf("refresh not applied: refreshes=%d streak=%+v", f.refreshes, m.streak)
	}

	f.refreshErr = errors.New("backend down")
	m, out = step(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	m, _ = step(t, m, out)
	if m.streak.Current != 4 || !strings.Contains(m.status, "backend down") {
		t.Fatalf("failed refresh must keep the mirror: %+v %q", m.streak, m.status)
	}
}

func TestFocusToggle(t *testing.T) {
	f := &fakePorts{}
	m := newTestModel(f)

	m, out := step(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("f")})
	m, _ = step(t, m, out)
	if f.started != 1 || m.status != "focus started, goal 25m" {
		t.Fatalf("expected start, got started=%d status=%q", f.started, m.status)
	}

	m, out = step(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("f")})
	m, _ = step(t, m, out)
	if f.ended != 1 || m.status != "focus ended, 12 min recorded" {
		t.Fatalf("expected end, got ended=%d status=%q", f.ended, m.status)
	}
}

// press applies a key without running the returned command, which for the
// palette is only the cursor blink timer.
func press(m Model, msg tea.KeyMsg) Model {
	next, _ := m.Update(msg)
	return next.(Model)
}

func typeLine(t *testing.T, m Model, line string) (Model, tea.Msg) {
	t.Helper()
	m = press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(":")})
	if !m.palette.Visible() {
		t.Fatalf("palette did not open")
	}
	for _, r := range line {
		m = press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	m, submit := step(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.palette.Visible() {
		t.Fatalf("palette still open after enter")
	}
	m, action := step(t, m, submit)
	return step(t, m, action)
}

func TestPaletteCommands(t *testing.T) {
	f := &fakePorts{}
	m := newTestModel(f)

	m, _ = typeLine(t, m, "focus:record 25")
	if f.recorded != 25 || m.status != "recorded 25 focus minutes" {
		t.Fatalf("focus:record not applied: %v %q", f.recorded, m.status)
	}

	m, _ = typeLine(t, m, "focus:goal 45m")
	if f.goal != "45m" {
		t.Fatalf("goal not set: %q", f.goal)
	}

	m, _ = typeLine(t, m, "task:complete 2")
	if len(f.completed) != 1 || f.completed[0] != "2" || m.status != "completed Mindful breathing, today 1/3" {
		t.Fatalf("task:complete not applied: %v %q", f.completed, m.status)
	}

	m, _ = typeLine(t, m, "notify:record")
	if f.notifications != 1 || m.status != "1 notifications today" {
		t.Fatalf("notify:record not applied: %q", m.status)
	}

	m, _ = typeLine(t, m, "note:submit slept well")
	if len(f.notes) != 1 || f.notes[0] != "slept well" {
		t.Fatalf("note not submitted: %v", f.notes)
	}

	m, _ = typeLine(t, m, "day:check")
	if f.checks != 1 || m.status != "still 2026-07-01" {
		t.Fatalf("day:check not applied: %d %q", f.checks, m.status)
	}
}

func TestPaletteErrorsSurfaceInStatus(t *testing.T) {
	f := &fakePorts{notes: []string{"earlier"}}
	m := newTestModel(f)

	m, _ = typeLine(t, m, "note:submit again")
	if !strings.Contains(m.status, apperrors.ErrDailyNoteSubmitted.Error()) {
		t.Fatalf("expected duplicate note error, got %q", m.status)
	}

	m, _ = typeLine(t, m, "focus:record soon")
	if !strings.Contains(m.status, "needs minutes") {
		t.Fatalf("expected parse error, got %q", m.status)
	}

	m, _ = typeLine(t, m, "reader:open")
	if !strings.Contains(m.status, "unknown command") {
		t.Fatalf("expected unknown command, got %q", m.status)
	}
}

func TestPaletteSwallowsShortcuts(t *testing.T) {
	f := &fakePorts{}
	m := newTestModel(f)

	m = press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(":")})
	m = press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if m.quitting || f.background != 0 {
		t.Fatalf("q inside the palette must not quit")
	}
	m, out := step(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if _, ok := out.(components.PaletteCancelMsg); !ok {
		t.Fatalf("expected cancel, got %T", out)
	}
	if m.palette.Visible() {
		t.Fatalf("palette still open after esc")
	}
}
