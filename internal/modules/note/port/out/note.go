package out

import (
	"context"

	"mindflow/internal/modules/note/domain"
	"mindflow/internal/platform/calendar"
)

type NoteStore interface {
	Save(ctx context.Context, note domain.Note) (string, error)
	ListDay(ctx context.Context, day calendar.Date) ([]domain.Note, error)
}

// FlagStore holds the DailyNoteFlag.
type FlagStore interface {
	Submitted(ctx context.Context) (bool, error)
	SetSubmitted(ctx context.Context, submitted bool) error
}
