package app

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	dtdto "mindflow/internal/modules/daytransition/dto"
	focusdto "mindflow/internal/modules/focus/dto"
	notedto "mindflow/internal/modules/note/dto"
	streakdto "mindflow/internal/modules/streak/dto"
	usagedto "mindflow/internal/modules/usage/dto"
	wellnessdto "mindflow/internal/modules/wellness/dto"
	apperrors "mindflow/internal/platform/errors"
	"mindflow/internal/ui/components"
	"mindflow/internal/ui/theme"
)

const commandTimeout = 15 * time.Second

// ─── ports ───────────────────────────────────────────────────────────────────

type wellnessPort interface {
	Snapshot(ctx context.Context) wellnessdto.WellnessOutput
}

type streakPort interface {
	Current(ctx context.Context) (streakdto.StreakOutput, error)
	Refresh(ctx context.Context) (streakdto.BoardOutput, error)
	CompleteTask(ctx context.Context, input streakdto.CompleteInput) (streakdto.CompleteOutput, error)
}

type usagePort interface {
	Foreground(ctx context.Context) (usagedto.ScreenTimeOutput, error)
	Background(ctx context.Context) (usagedto.ScreenTimeOutput, error)
	RecordNotification(ctx context.Context) (usagedto.NotificationOutput, error)
}

type transitionPort interface {
	CheckDateTransition(ctx context.Context) (dtdto.TransitionOutput, error)
}

type focusPort interface {
	Start(ctx context.Context, input focusdto.StartInput) (focusdto.StartOutput, error)
	End(ctx context.Context, input focusdto.EndInput) (focusdto.EndOutput, error)
	GetActive(ctx context.Context) (focusdto.ActiveFocusOutput, error)
	Record(ctx context.Context, input focusdto.RecordInput) (focusdto.SessionOutput, error)
	SetGoal(ctx context.Context, goal string) error
}

type notePort interface {
	Submit(ctx context.Context, input notedto.SubmitInput) (notedto.SubmitOutput, error)
}

// Ports groups what the dashboard reads and drives.
type Ports struct {
	Wellness   wellnessPort
	Streak     streakPort
	Usage      usagePort
	Transition transitionPort
	Focus      focusPort
	Note       notePort
}

// ─── async messages ───────────────────────────────────────────────────────────

type tickMsg time.Time

type loadedMsg struct {
	wellness  wellnessdto.WellnessOutput
	streak    streakdto.StreakOutput
	streakErr error
	active    focusdto.ActiveFocusOutput
	hasActive bool
}

type transitionMsg struct {
	out dtdto.TransitionOutput
	err error
}

type usageMsg struct {
	foreground bool
	out        usagedto.ScreenTimeOutput
	err        error
}

type refreshedMsg struct {
	board streakdto.BoardOutput
	err   error
}

// actionMsg reports a palette command. Every successful action reloads.
type actionMsg struct {
	status string
	err    error
}

type focusMsg struct {
	started *focusdto.StartOutput
	ended   *focusdto.EndOutput
	err     error
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the dashboard. Terminal focus drives the screen-time tracker and a
// periodic tick re-runs the date check and reloads every reading.
type Model struct {
	ports Ports
	tick  time.Duration

	wellness  wellnessdto.WellnessOutput
	streak    streakdto.StreakOutput
	tasks     []streakdto.TaskOutput
	active    focusdto.ActiveFocusOutput
	hasActive bool
	tracking  bool
	quitting  bool
	palette   components.Palette
	status    string
	width     int
}

func NewModel(ports Ports, tick time.Duration) Model {
	if tick <= 0 {
		tick = 30 * time.Second
	}
	return Model{ports: ports, tick: tick, palette: components.NewPalette(), status: "ready"}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.usageCmd(true), m.checkCmd(), m.tickCmd())
}

// ─── update ───────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// The palette intercepts all input while open.
	if _, isKey := msg.(tea.KeyMsg); isKey && m.palette.Visible() {
		var cmd tea.Cmd
		m.palette, cmd = m.palette.Update(msg)
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.palette.SetWidth(msg.Width)
		return m, nil

	case components.PaletteSubmitMsg:
		return m, m.executePalette(msg.Input)

	case components.PaletteCancelMsg:
		return m, nil

	case actionMsg:
		if msg.err != nil {
			m.status = msg.err.Error()
			return m, nil
		}
		m.status = msg.status
		return m, m.loadCmd()

	case tea.FocusMsg:
		return m, m.usageCmd(true)

	case tea.BlurMsg:
		return m, m.usageCmd(false)

	case tickMsg:
		return m, tea.Batch(m.checkCmd(), m.tickCmd())

	case transitionMsg:
		if msg.err != nil {
			m.status = "date check failed: " + msg.err.Error()
		} else if msg.out.Transitioned {
			m.status = "new day " + msg.out.Today
		}
		return m, m.loadCmd()

	case loadedMsg:
		m.wellness = msg.wellness
		m.active, m.hasActive = msg.active, msg.hasActive
		if msg.streakErr == nil {
			m.streak = msg.streak
		}
		return m, nil

	case usageMsg:
		if msg.err != nil {
			m.status = "screen time: " + msg.err.Error()
		} else {
			m.tracking = msg.out.Tracking
		}
		if !msg.foreground && m.quitting {
			return m, tea.Quit
		}
		return m, m.loadCmd()

	case refreshedMsg:
		if msg.err != nil {
			m.status = "streak refresh failed: " + msg.err.Error()
			return m, nil
		}
		m.streak, m.tasks = msg.board.Streak, msg.board.Tasks
		m.status = "streak refreshed"
		return m, nil

	case focusMsg:
		switch {
		case msg.err != nil:
			m.status = "focus: " + msg.err.Error()
		case msg.started != nil:
			m.status = "focus started, goal " + msg.started.Goal
		case msg.ended != nil:
			m.status = fmt.Sprintf("focus ended, %d min recorded", msg.ended.DurationMin)
		}
		return m, m.loadCmd()

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			if m.quitting {
				return m, tea.Quit
			}
			m.quitting = true
			m.status = "saving screen time…"
			return m, m.usageCmd(false)
		case "r":
			m.status = "refreshing streak…"
			return m, m.refreshCmd()
		case "f":
			return m, m.toggleFocusCmd()
		case ":":
			return m, m.palette.Open()
		}
	}
	return m, nil
}

// ─── view ─────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	if m.quitting {
		return theme.Muted.Render(m.status) + "\n"
	}

	score := theme.Band(m.wellness.Band).Render(fmt.Sprintf("%d", m.wellness.FocusScore))
	wellness := strings.Join([]string{
		theme.Title.Render("Focus score"),
		score + theme.Muted.Render(" / 100 "+m.wellness.Band),
		"",
		"Screen time   " + m.wellness.ScreenTime + trackingMark(m.tracking),
		fmt.Sprintf("Notifications %d", m.wellness.Notifications),
		"Session goal  " + m.wellness.SessionGoal,
		"Focus         " + m.focusLine(),
	}, "\n")

	streakLines := []string{
		theme.Title.Render("Streak"),
		theme.Hot.Render(fmt.Sprintf("%d days", m.streak.Current)) + theme.Muted.Render(fmt.Sprintf("  best %d", m.streak.Longest)),
		theme.Tone(m.streak.Tone).Render(m.streak.Message),
		fmt.Sprintf("Today %d/%d (%.0f%%)", m.streak.TodayCompleted, m.streak.TodayTotal, m.streak.Percent),
	}
	for _, t := range m.tasks {
		mark := "[ ]"
		if t.Completed {
			mark = "[x]"
		}
		streakLines = append(streakLines, fmt.Sprintf("%s %s %s", mark, t.ID, t.Title))
	}

	panes := lipgloss.JoinHorizontal(lipgloss.Top,
		theme.PaneActive.Render(wellness),
		theme.Pane.Render(strings.Join(streakLines, "\n")),
	)
	help := theme.Muted.Render("f focus · r refresh streak · : palette · q quit")
	bar := theme.Bar.Width(max(m.width, lipgloss.Width(panes))).Render(" " + m.status)
	if m.palette.Visible() {
		return lipgloss.JoinVertical(lipgloss.Left, panes, m.palette.View(), bar)
	}
	return lipgloss.JoinVertical(lipgloss.Left, panes, help, bar)
}

func (m Model) focusLine() string {
	if !m.hasActive {
		return "idle"
	}
	return fmt.Sprintf("running since %s (%s)", m.active.StartedAt.Format("15:04"), m.active.Goal)
}

func trackingMark(tracking bool) string {
	if tracking {
		return theme.Muted.Render(" ●")
	}
	return ""
}

// ─── palette ──────────────────────────────────────────────────────────────────

// executePalette runs one palette line. The verbs must stay in sync with the
// hints in components/palette.go.
func (m Model) executePalette(input string) tea.Cmd {
	verb, arg, _ := strings.Cut(strings.TrimSpace(input), " ")
	arg = strings.TrimSpace(arg)
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
		defer cancel()
		switch verb {
		case "":
			return actionMsg{status: m.status}
		case "focus:record":
			minutes, err := strconv.ParseFloat(arg, 64)
			if err != nil {
				return actionMsg{err: fmt.Errorf("focus:record needs minutes, got %q", arg)}
			}
			if _, err := m.ports.Focus.Record(ctx, focusdto.RecordInput{Minutes: minutes}); err != nil {
				return actionMsg{err: err}
			}
			return actionMsg{status: fmt.Sprintf("recorded %.0f focus minutes", minutes)}
		case "focus:goal":
			if err := m.ports.Focus.SetGoal(ctx, arg); err != nil {
				return actionMsg{err: err}
			}
			return actionMsg{status: "goal set to " + arg}
		case "task:complete":
			out, err := m.ports.Streak.CompleteTask(ctx, streakdto.CompleteInput{TaskID: arg})
			if err != nil {
				return actionMsg{err: err}
			}
			return actionMsg{status: fmt.Sprintf("completed %s, today %d/%d", out.Task.Title, out.Streak.TodayCompleted, out.Streak.TodayTotal)}
		case "notify:record":
			out, err := m.ports.Usage.RecordNotification(ctx)
			if err != nil {
				return actionMsg{err: err}
			}
			return actionMsg{status: fmt.Sprintf("%d notifications today", out.Count)}
		case "note:submit":
			if _, err := m.ports.Note.Submit(ctx, notedto.SubmitInput{Text: arg}); err != nil {
				return actionMsg{err: err}
			}
			return actionMsg{status: "note saved"}
		case "day:check":
			out, err := m.ports.Transition.CheckDateTransition(ctx)
			if err != nil {
				return actionMsg{err: err}
			}
			if out.Transitioned {
				return actionMsg{status: "new day " + out.Today}
			}
			return actionMsg{status: "still " + out.Today}
		default:
			return actionMsg{err: fmt.Errorf("unknown command %q", verb)}
		}
	}
}

// ─── async commands ───────────────────────────────────────────────────────────

func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(m.tick, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m Model) checkCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
		defer cancel()
		out, err := m.ports.Transition.CheckDateTransition(ctx)
		return transitionMsg{out: out, err: err}
	}
}

func (m Model) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
		defer cancel()
		msg := loadedMsg{wellness: m.ports.Wellness.Snapshot(ctx)}
		msg.streak, msg.streakErr = m.ports.Streak.Current(ctx)
		active, err := m.ports.Focus.GetActive(ctx)
		if err == nil {
			msg.active, msg.hasActive = active, true
		}
		return msg
	}
}

func (m Model) usageCmd(foreground bool) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
		defer cancel()
		if foreground {
			out, err := m.ports.Usage.Foreground(ctx)
			return usageMsg{foreground: true, out: out, err: err}
		}
		out, err := m.ports.Usage.Background(ctx)
		return usageMsg{out: out, err: err}
	}
}

func (m Model) refreshCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
		defer cancel()
		board, err := m.ports.Streak.Refresh(ctx)
		return refreshedMsg{board: board, err: err}
	}
}

func (m Model) toggleFocusCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
		defer cancel()
		active, err := m.ports.Focus.GetActive(ctx)
		switch {
		case errors.Is(err, apperrors.ErrNoActiveSession):
			out, err := m.ports.Focus.Start(ctx, focusdto.StartInput{})
			if err != nil {
				return focusMsg{err: err}
			}
			return focusMsg{started: &out}
		case err != nil:
			return focusMsg{err: err}
		}
		out, err := m.ports.Focus.End(ctx, focusdto.EndInput{SessionID: active.SessionID})
		if err != nil {
			return focusMsg{err: err}
		}
		return focusMsg{ended: &out}
	}
}
