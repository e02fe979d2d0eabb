package domain

import (
	"fmt"
	"strings"
	"time"

	apperrors "mindflow/internal/platform/errors"
)

const SchemaVersion = 1

// Note is one daily reflection. At most one is accepted per calendar day.
type Note struct {
	ID        string
	Text      string
	Mood      int
	CreatedAt time.Time
}

const (
	MinMood = 1
	MaxMood = 10
)

func (n Note) Validate() error {
	if strings.TrimSpace(n.Text) == "" {
		return fmt.Errorf("%w: note text is required", apperrors.ErrInvalidInput)
	}
	if n.Mood != 0 && (n.Mood < MinMood || n.Mood > MaxMood) {
		return fmt.Errorf("%w: mood must be in [%d,%d]", apperrors.ErrInvalidInput, MinMood, MaxMood)
	}
	return nil
}

// Title is the first line of the text, cut to 60 runes.
func (n Note) Title() string {
	line, _, _ := strings.Cut(strings.TrimSpace(n.Text), "\n")
	runes := []rune(strings.TrimSpace(line))
	if len(runes) > 60 {
		return string(runes[:60])
	}
	return string(runes)
}
