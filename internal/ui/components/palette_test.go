package components

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func typeInto(p Palette, s string) Palette {
	for _, r := range s {
		p, _ = p.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return p
}

func TestPaletteFiltersByVerb(t *testing.T) {
	p := NewPalette()
	_ = p.Open()

	p = typeInto(p, "focus")
	if got := len(p.matches()); got != 2 {
		t.Fatalf("expected 2 focus commands, got %d", got)
	}
	p = typeInto(p, ":goal 1h")
	m := p.matches()
	if len(m) != 1 || m[0].verb() != "focus:goal" {
		t.Fatalf("expected only focus:goal while typing its argument, got %v", m)
	}
	if !strings.Contains(p.View(), "daily focus goal") {
		t.Fatalf("view should describe the matching command:\n%s", p.View())
	}
}

func TestPaletteTabCompletesUniqueVerb(t *testing.T) {
	p := NewPalette()
	_ = p.Open()

	p = typeInto(p, "note")
	p, _ = p.Update(tea.KeyMsg{Type: tea.KeyTab})
	if got := p.input.Value(); got != "note:submit " {
		t.Fatalf("tab should complete the verb, got %q", got)
	}

	p = typeInto(p, "good day")
	p, cmd := p.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if p.Visible() {
		t.Fatalf("enter should close the palette")
	}
	msg, ok := cmd().(PaletteSubmitMsg)
	if !ok || msg.Input != "note:submit good day" {
		t.Fatalf("unexpected submit %#v", msg)
	}
}

func TestPaletteIgnoresInputWhenClosed(t *testing.T) {
	p := NewPalette()
	p, cmd := p.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	if cmd != nil || p.input.Value() != "" || p.View() != "" {
		t.Fatalf("closed palette must ignore input")
	}
}
