package service

import (
	"context"
	"log/slog"

	"mindflow/internal/modules/wellness/domain"
	wellnessout "mindflow/internal/modules/wellness/port/out"
)

// WellnessService recomputes everything on each call; nothing is cached.
type WellnessService struct {
	focus wellnessout.FocusSource
	usage wellnessout.UsageSource
	log   *slog.Logger
}

func NewWellnessService(focus wellnessout.FocusSource, usage wellnessout.UsageSource, logger *slog.Logger) *WellnessService {
	return &WellnessService{focus: focus, usage: usage, log: logger.With("module", "wellness")}
}

func (s *WellnessService) FocusScore(ctx context.Context) int {
	focusMinutes, err := s.focus.TodayFocusMinutes(ctx)
	if err != nil {
		return s.neutral(ctx, "focus_minutes", err)
	}
	screenTime, err := s.usage.ScreenTime(ctx)
	if err != nil {
		return s.neutral(ctx, "screen_time", err)
	}
	notifications, err := s.usage.NotificationCount(ctx)
	if err != nil {
		return s.neutral(ctx, "notifications", err)
	}
	return domain.Score(focusMinutes, float64(domain.ParseHM(screenTime)), notifications)
}

func (s *WellnessService) Snapshot(ctx context.Context) domain.Wellness {
	screenTime, err := s.usage.ScreenTime(ctx)
	if err != nil {
		s.log.WarnContext(ctx, "read screen time", slog.Any("error", err))
		screenTime = domain.FallbackScreenTime
	}
	notifications, err := s.usage.NotificationCount(ctx)
	if err != nil {
		s.log.WarnContext(ctx, "read notification count", slog.Any("error", err))
		notifications = 0
	}
	goal, err := s.focus.SessionGoal(ctx)
	if err != nil || goal == "" {
		if err != nil {
			s.log.WarnContext(ctx, "read session goal", slog.Any("error", err))
		}
		goal = domain.FallbackGoal
	}
	score := s.FocusScore(ctx)
	return domain.Wellness{
		ScreenTime:    screenTime,
		Notifications: notifications,
		SessionGoal:   goal,
		FocusScore:    score,
		Band:          domain.BandOf(score),
	}
}

func (s *WellnessService) neutral(ctx context.Context, input string, err error) int {
	s.log.WarnContext(ctx, "focus score input unavailable, using neutral score",
		slog.String("input", input),
		slog.Any("error", err),
	)
	return domain.NeutralScore
}
