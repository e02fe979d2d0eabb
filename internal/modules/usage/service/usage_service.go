package service

import (
	"context"
	"log/slog"
	"time"

	"mindflow/internal/modules/usage/domain"
	usageout "mindflow/internal/modules/usage/port/out"
	"mindflow/internal/platform/calendar"
	"mindflow/internal/platform/clock"
)

type UsageService struct {
	clock         clock.Clock
	screen        usageout.ScreenTimeStore
	notifications usageout.NotificationStore
	log           *slog.Logger
}

func NewUsageService(clock clock.Clock, screen usageout.ScreenTimeStore, notifications usageout.NotificationStore, logger *slog.Logger) *UsageService {
	return &UsageService{
		clock:         clock,
		screen:        screen,
		notifications: notifications,
		log:           logger.With("module", "usage"),
	}
}

// Foreground opens a tracking interval. A tracker already tracking keeps its
// original start. The first foreground of a new day zeroes the total.
func (s *UsageService) Foreground(ctx context.Context) (domain.ScreenTime, error) {
	st, err := s.screen.LoadScreenTime(ctx)
	if err != nil {
		return domain.ScreenTime{}, err
	}
	if st.Tracking {
		return st, nil
	}

	now := s.clock.Now()
	today := calendar.DateOf(now)
	if st.NeedsRollover(today) {
		if err := s.screen.SaveTotal(ctx, 0); err != nil {
			return domain.ScreenTime{}, err
		}
		if err := s.screen.SaveDate(ctx, today); err != nil {
			return domain.ScreenTime{}, err
		}
		s.log.InfoContext(ctx, "screen time rolled over", slog.String("date", today.String()))
		st.Total, st.Date, st.HasDate = 0, today, true
	}

	if err := s.screen.SaveSessionStart(ctx, now); err != nil {
		return domain.ScreenTime{}, err
	}
	st.SessionStart, st.Tracking = now, true
	return st, nil
}

// Background folds the open interval into the total and returns the added
// duration. Idle trackers are left untouched.
func (s *UsageService) Background(ctx context.Context) (domain.ScreenTime, time.Duration, error) {
	st, err := s.screen.LoadScreenTime(ctx)
	if err != nil {
		return domain.ScreenTime{}, 0, err
	}
	if !st.Tracking {
		return st, 0, nil
	}

	now := s.clock.Now()
	elapsed := st.Elapsed(now)
	total := st.Reading(now)
	if err := s.screen.SaveTotal(ctx, total); err != nil {
		return domain.ScreenTime{}, 0, err
	}
	if err := s.screen.ClearSessionStart(ctx); err != nil {
		return domain.ScreenTime{}, 0, err
	}
	s.log.DebugContext(ctx, "screen time accumulated", slog.Duration("added", elapsed), slog.Duration("total", total))
	return domain.ScreenTime{Total: total, Date: st.Date, HasDate: st.HasDate}, elapsed, nil
}

func (s *UsageService) ScreenTime(ctx context.Context) (domain.ScreenTime, time.Duration, error) {
	st, err := s.screen.LoadScreenTime(ctx)
	if err != nil {
		return domain.ScreenTime{}, 0, err
	}
	return st, st.Reading(s.clock.Now()), nil
}

// ResetScreenTime zeroes the total for today. An open interval restarts now
// so time before the reset is not carried into the new day.
func (s *UsageService) ResetScreenTime(ctx context.Context) error {
	st, err := s.screen.LoadScreenTime(ctx)
	if err != nil {
		return err
	}
	now := s.clock.Now()
	if err := s.screen.SaveTotal(ctx, 0); err != nil {
		return err
	}
	if err := s.screen.SaveDate(ctx, calendar.DateOf(now)); err != nil {
		return err
	}
	if st.Tracking {
		if err := s.screen.SaveSessionStart(ctx, now); err != nil {
			return err
		}
	}
	return nil
}

func (s *UsageService) RecordNotification(ctx context.Context) (int, error) {
	count, err := s.notifications.LoadCount(ctx)
	if err != nil {
		return 0, err
	}
	count++
	if err := s.notifications.SaveCount(ctx, count); err != nil {
		return 0, err
	}
	return count, nil
}

func (s *UsageService) NotificationCount(ctx context.Context) (int, error) {
	return s.notifications.LoadCount(ctx)
}

func (s *UsageService) ResetNotifications(ctx context.Context) error {
	return s.notifications.SaveCount(ctx, 0)
}
