package domain

import (
	"errors"
	"strings"
	"testing"

	apperrors "mindflow/internal/platform/errors"
)

func TestValidate(t *testing.T) {
	t.Parallel()
	if err := (Note{Text: "  \n "}).Validate(); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("blank text must be rejected, got %v", err)
	}
	if err := (Note{Text: "ok", Mood: 11}).Validate(); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("mood 11 must be rejected, got %v", err)
	}
	if err := (Note{Text: "ok"}).Validate(); err != nil {
		t.Fatalf("note without mood must be valid: %v", err)
	}
}

func TestTitle(t *testing.T) {
	t.Parallel()
	if got := (Note{Text: "\n Slept well \nthen ran"}).Title(); got != "Slept well" {
		t.Fatalf("unexpected title %q", got)
	}
	long := strings.Repeat("é", 80)
	if got := []rune((Note{Text: long}).Title()); len(got) != 60 {
		t.Fatalf("expected 60 runes, got %d", len(got))
	}
}
