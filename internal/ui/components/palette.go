package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"mindflow/internal/ui/theme"
)

// PaletteSubmitMsg carries the confirmed command line.
type PaletteSubmitMsg struct{ Input string }

// PaletteCancelMsg is emitted on esc.
type PaletteCancelMsg struct{}

var (
	paletteStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Peach).
			Background(theme.Mantle).
			Foreground(theme.Text).
			Padding(0, 1)

	verbStyle = lipgloss.NewStyle().Foreground(theme.Text)
	hintStyle = lipgloss.NewStyle().Foreground(theme.Subtext0)
)

type command struct {
	usage string
	about string
}

func (c command) verb() string {
	v, _, _ := strings.Cut(c.usage, " ")
	return v
}

// Verbs are dispatched by app.Model.executePalette.
var commands = []command{
	{"focus:record <minutes>", "log a finished focus session"},
	{"focus:goal <duration>", "set the daily focus goal, e.g. 2h30m"},
	{"task:complete <task-id>", "complete a daily task"},
	{"notify:record", "count one notification"},
	{"note:submit <text>", "write today's note"},
	{"day:check", "run the day-transition check now"},
}

// Palette is a one-line command prompt drawn under the dashboard.
type Palette struct {
	input   textinput.Model
	visible bool
	width   int
}

func NewPalette() Palette {
	ti := textinput.New()
	ti.Prompt = ": "
	ti.Placeholder = "command, tab to complete"
	ti.CharLimit = 512
	return Palette{input: ti}
}

func (p Palette) Visible() bool { return p.visible }

// Open clears the prompt and focuses it.
func (p *Palette) Open() tea.Cmd {
	p.visible = true
	p.input.SetValue("")
	return p.input.Focus()
}

func (p *Palette) SetWidth(w int) { p.width = w }

func (p Palette) Update(msg tea.Msg) (Palette, tea.Cmd) {
	if !p.visible {
		return p, nil
	}
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			p.close()
			return p, func() tea.Msg { return PaletteCancelMsg{} }
		case "enter":
			line := strings.TrimSpace(p.input.Value())
			p.close()
			return p, func() tea.Msg { return PaletteSubmitMsg{Input: line} }
		case "tab":
			if m := p.matches(); len(m) == 1 {
				p.input.SetValue(m[0].verb() + " ")
				p.input.CursorEnd()
			}
			return p, nil
		}
	}
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return p, cmd
}

func (p *Palette) close() {
	p.visible = false
	p.input.Blur()
}

// matches filters by the typed verb; once an argument is being typed only the
// exact verb stays listed.
func (p Palette) matches() []command {
	typed := strings.ToLower(strings.TrimLeft(p.input.Value(), " "))
	verb, _, hasArg := strings.Cut(typed, " ")
	var out []command
	for _, c := range commands {
		switch {
		case hasArg && c.verb() == verb:
			out = append(out, c)
		case !hasArg && strings.HasPrefix(c.verb(), verb):
			out = append(out, c)
		}
	}
	return out
}

func (p Palette) View() string {
	if !p.visible {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(p.input.View())
	for _, c := range p.matches() {
		sb.WriteString("\n  " + verbStyle.Render(c.usage) + hintStyle.Render("  "+c.about))
	}
	w := p.width
	if w < 24 {
		w = 64
	}
	return paletteStyle.Width(w - 2).Render(sb.String())
}
