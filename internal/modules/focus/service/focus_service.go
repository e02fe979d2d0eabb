package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"mindflow/internal/modules/focus/domain"
	focusout "mindflow/internal/modules/focus/port/out"
	"mindflow/internal/platform/calendar"
	"mindflow/internal/platform/clock"
	apperrors "mindflow/internal/platform/errors"
	"mindflow/internal/platform/id"
)

type FocusService struct {
	clock  clock.Clock
	idGen  id.Generator
	ledger focusout.Ledger
	log    *slog.Logger
}

func NewFocusService(clock clock.Clock, idGen id.Generator, ledger focusout.Ledger, logger *slog.Logger) *FocusService {
	return &FocusService{clock: clock, idGen: idGen, ledger: ledger, log: logger.With("module", "focus")}
}

func (s *FocusService) Start(_ context.Context, goal string) (domain.ActiveFocus, error) {
	if err := domain.ValidateGoal(goal); err != nil {
		return domain.ActiveFocus{}, err
	}
	return domain.ActiveFocus{
		SessionID: s.idGen.New(),
		StartedAt: s.clock.Now(),
		Goal:      goal,
	}, nil
}

// End closes active and records its whole elapsed minutes. Sessions shorter
// than a minute are not recorded.
func (s *FocusService) End(ctx context.Context, active domain.ActiveFocus) (domain.Session, bool, error) {
	endedAt := s.clock.Now()
	minutes := int(endedAt.Sub(active.StartedAt).Minutes())
	if minutes <= 0 {
		return domain.Session{Timestamp: endedAt}, false, nil
	}
	session, err := s.Record(ctx, float64(minutes))
	if err != nil {
		return domain.Session{}, false, err
	}
	return session, true, nil
}

func (s *FocusService) Record(ctx context.Context, minutes float64) (domain.Session, error) {
	if minutes <= 0 {
		return domain.Session{}, fmt.Errorf("%w: focus minutes must be positive", apperrors.ErrInvalidInput)
	}
	session := domain.Session{
		Timestamp: s.clock.Now().Truncate(time.Millisecond),
		Duration:  minutes,
	}
	if err := s.ledger.Append(ctx, session); err != nil {
		return domain.Session{}, err
	}
	s.log.InfoContext(ctx, "focus session recorded", slog.Float64("minutes", minutes))
	return session, nil
}

// Today returns focus minutes and session count since local midnight.
func (s *FocusService) Today(ctx context.Context) (float64, int, error) {
	sessions, err := s.ledger.List(ctx)
	if err != nil {
		return 0, 0, err
	}
	start := calendar.DayStart(s.clock.Now())
	count := 0
	for _, session := range sessions {
		if !session.Timestamp.Before(start) {
			count++
		}
	}
	return domain.MinutesSince(sessions, start), count, nil
}
