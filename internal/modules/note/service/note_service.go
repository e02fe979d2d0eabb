package service

import (
	"context"
	"log/slog"

	"mindflow/internal/modules/note/domain"
	noteout "mindflow/internal/modules/note/port/out"
	"mindflow/internal/platform/calendar"
	"mindflow/internal/platform/clock"
	apperrors "mindflow/internal/platform/errors"
	"mindflow/internal/platform/id"
)

type NoteService struct {
	clock clock.Clock
	idGen id.Generator
	notes noteout.NoteStore
	flag  noteout.FlagStore
	log   *slog.Logger
}

func NewNoteService(clock clock.Clock, idGen id.Generator, notes noteout.NoteStore, flag noteout.FlagStore, logger *slog.Logger) *NoteService {
	return &NoteService{clock: clock, idGen: idGen, notes: notes, flag: flag, log: logger.With("module", "note")}
}

// Submit writes today's note and raises the flag. The flag is cleared by the
// day transition, not here.
func (s *NoteService) Submit(ctx context.Context, text string, mood int) (domain.Note, string, error) {
	note := domain.Note{Text: text, Mood: mood}
	if err := note.Validate(); err != nil {
		return domain.Note{}, "", err
	}
	submitted, err := s.flag.Submitted(ctx)
	if err != nil {
		return domain.Note{}, "", err
	}
	if submitted {
		return domain.Note{}, "", apperrors.ErrDailyNoteSubmitted
	}

	note.ID = s.idGen.New()
	note.CreatedAt = s.clock.Now()
	path, err := s.notes.Save(ctx, note)
	if err != nil {
		return domain.Note{}, "", err
	}
	if err := s.flag.SetSubmitted(ctx, true); err != nil {
		return domain.Note{}, "", err
	}
	s.log.InfoContext(ctx, "daily note submitted", slog.String("id", note.ID), slog.String("path", path))
	return note, path, nil
}

func (s *NoteService) Today(ctx context.Context) (bool, []domain.Note, error) {
	submitted, err := s.flag.Submitted(ctx)
	if err != nil {
		return false, nil, err
	}
	notes, err := s.notes.ListDay(ctx, calendar.DateOf(s.clock.Now()))
	if err != nil {
		return false, nil, err
	}
	return submitted, notes, nil
}

func (s *NoteService) ResetFlag(ctx context.Context) error {
	return s.flag.SetSubmitted(ctx, false)
}
