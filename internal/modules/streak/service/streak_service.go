package service

import (
	"context"
	"fmt"
	"log/slog"

	"mindflow/internal/modules/streak/domain"
	streakout "mindflow/internal/modules/streak/port/out"
	"mindflow/internal/platform/calendar"
	"mindflow/internal/platform/clock"
	apperrors "mindflow/internal/platform/errors"
)

type StreakService struct {
	clock   clock.Clock
	backend streakout.TaskBackend
	store   streakout.StateStore
	users   streakout.UserSource
	log     *slog.Logger
}

func NewStreakService(clock clock.Clock, backend streakout.TaskBackend, store streakout.StateStore, users streakout.UserSource, logger *slog.Logger) *StreakService {
	return &StreakService{
		clock:   clock,
		backend: backend,
		store:   store,
		users:   users,
		log:     logger.With("module", "streak"),
	}
}

// Refresh pulls today's board and replaces the mirror with it.
func (s *StreakService) Refresh(ctx context.Context) (streakout.Board, error) {
	previous := s.previous(ctx)
	board, err := s.backend.FetchBoard(ctx, s.users.UserID(ctx))
	if err != nil {
		return streakout.Board{}, fmt.Errorf("fetch tasks: %w", err)
	}
	board.State = s.mirror(ctx, previous, board.State)
	return board, nil
}

func (s *StreakService) CompleteTask(ctx context.Context, taskID string) (domain.Task, domain.State, error) {
	if taskID == "" {
		return domain.Task{}, domain.State{}, fmt.Errorf("%w: task id is required", apperrors.ErrInvalidInput)
	}
	previous := s.previous(ctx)
	task, fresh, err := s.backend.CompleteTask(ctx, s.users.UserID(ctx), taskID)
	if err != nil {
		return domain.Task{}, domain.State{}, fmt.Errorf("complete task %s: %w", taskID, err)
	}
	return task, s.mirror(ctx, previous, fresh), nil
}

// Current returns the last mirrored state, or a zero no_streak state before
// the first mirror.
func (s *StreakService) Current(ctx context.Context) (domain.State, error) {
	state, ok, err := s.store.Load(ctx)
	if err != nil {
		return domain.State{}, err
	}
	if !ok {
		msg, _ := domain.Theme(domain.StatusNoStreak)
		return domain.State{Status: domain.StatusNoStreak, Message: msg}, nil
	}
	return state, nil
}

func (s *StreakService) Calendar(ctx context.Context) (domain.State, []domain.CalendarDay, error) {
	board, err := s.Refresh(ctx)
	if err != nil {
		return domain.State{}, nil, err
	}
	today := calendar.DateOf(s.clock.Now())
	return board.State, domain.Calendar(today, board.CompletedDays), nil
}

func (s *StreakService) previous(ctx context.Context) domain.State {
	state, _, err := s.store.Load(ctx)
	if err != nil {
		s.log.WarnContext(ctx, "read mirrored streak, comparing against zero", slog.Any("error", err))
		return domain.State{}
	}
	return state
}

// mirror labels fresh against previous and stores it. A failed store write
// is logged; the fresh numbers are still returned to the caller.
func (s *StreakService) mirror(ctx context.Context, previous, fresh domain.State) domain.State {
	for _, problem := range domain.Inconsistencies(fresh) {
		s.log.WarnContext(ctx, "inconsistent streak from backend", slog.String("problem", problem))
	}
	reported := fresh.Status
	fresh.Status = domain.DeriveStatus(previous, fresh)
	// The server's text is kept only when it describes the derived status.
	if fresh.Message == "" || reported != fresh.Status {
		fresh.Message, _ = domain.Theme(fresh.Status)
	}
	if err := s.store.Save(ctx, fresh); err != nil {
		s.log.WarnContext(ctx, "store mirrored streak", slog.Any("error", err))
	}
	s.log.DebugContext(ctx, "streak mirrored",
		slog.Int("previous", previous.CurrentStreak),
		slog.Int("current", fresh.CurrentStreak),
		slog.String("status", string(fresh.Status)),
	)
	return fresh
}
