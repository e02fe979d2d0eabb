package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	focusout "mindflow/internal/modules/focus/adapter/out"
	focusdto "mindflow/internal/modules/focus/dto"
	focusin "mindflow/internal/modules/focus/port/in"
	"mindflow/internal/modules/focus/service"
	"mindflow/internal/modules/focus/usecase"
	apperrors "mindflow/internal/platform/errors"
	"mindflow/internal/platform/kvstore"
	"mindflow/internal/platform/logging"
)

type fakeClock struct {
	values []time.Time
	idx    int
}

func (f *fakeClock) Now() time.Time {
	if f.idx >= len(f.values) {
		return f.values[len(f.values)-1]
	}
	v := f.values[f.idx]
	f.idx++
	return v
}

type fakeID struct{}

func (fakeID) New() string { return "focus-1" }

func newInteractor(t *testing.T, clk *fakeClock, store kvstore.Store) focusin.Usecase {
	t.Helper()
	ledger := focusout.NewKVLedger(store)
	svc := service.NewFocusService(clk, fakeID{}, ledger, logging.Discard())
	return usecase.NewInteractor(svc, focusout.NewFileActiveFocusStore(t.TempDir()), ledger)
}

func TestFocusLifecycleRecordsWholeMinutes(t *testing.T) {
	t.Parallel()
	clk := &fakeClock{values: []time.Time{
		time.Date(2026, 2, 25, 10, 0, 0, 0, time.UTC),
		time.Date(2026, 2, 25, 10, 25, 40, 0, time.UTC),
		time.Date(2026, 2, 25, 10, 25, 40, 0, time.UTC),
		time.Date(2026, 2, 25, 11, 0, 0, 0, time.UTC),
	}}
	uc := newInteractor(t, clk, kvstore.NewMemoryStore())
	ctx := context.Background()

	start, err := uc.Start(ctx, focusdto.StartInput{})
	if err != nil {
		t.Fatalf("start focus: %v", err)
	}
	if start.Goal != "25m" {
		t.Fatalf("expected default goal 25m, got %q", start.Goal)
	}
	if _, err := uc.Start(ctx, focusdto.StartInput{}); !errors.Is(err, apperrors.ErrActiveSessionExists) {
		t.Fatalf("expected ErrActiveSessionExists, got %v", err)
	}

	end, err := uc.End(ctx, focusdto.EndInput{SessionID: start.SessionID})
	if err != nil {
		t.Fatalf("end focus: %v", err)
	}
	if !end.Recorded || end.DurationMin != 25 {
		t.Fatalf("expected 25 recorded minutes, got %+v", end)
	}
	if _, err := uc.GetActive(ctx); !errors.Is(err, apperrors.ErrNoActiveSession) {
		t.Fatalf("expected no active session after end, got %v", err)
	}

	today, err := uc.TodayMinutes(ctx)
	if err != nil {
		t.Fatalf("today minutes: %v", err)
	}
	if today.Minutes != 25 || today.Sessions != 1 {
		t.Fatalf("unexpected today totals %+v", today)
	}
}

func TestEndWithoutActiveSession(t *testing.T) {
	t.Parallel()
	clk := &fakeClock{values: []time.Time{time.Date(2026, 2, 25, 10, 0, 0, 0, time.UTC)}}
	uc := newInteractor(t, clk, kvstore.NewMemoryStore())

	if _, err := uc.End(context.Background(), focusdto.EndInput{}); !errors.Is(err, apperrors.ErrNoActiveSession) {
		t.Fatalf("expected ErrNoActiveSession, got %v", err)
	}
}

func TestEndRejectsMismatchedSession(t *testing.T) {
	t.Parallel()
	clk := &fakeClock{values: []time.Time{time.Date(2026, 2, 25, 10, 0, 0, 0, time.UTC)}}
	uc := newInteractor(t, clk, kvstore.NewMemoryStore())
	ctx := context.Background()

	if _, err := uc.Start(ctx, focusdto.StartInput{Goal: "50m"}); err != nil {
		t.Fatalf("start focus: %v", err)
	}
	if _, err := uc.End(ctx, focusdto.EndInput{SessionID: "other"}); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestTodayMinutesIgnoresYesterday(t *testing.T) {
	t.Parallel()
	clk := &fakeClock{values: []time.Time{
		time.Date(2026, 2, 24, 23, 30, 0, 0, time.UTC),
		time.Date(2026, 2, 25, 0, 10, 0, 0, time.UTC),
	}}
	uc := newInteractor(t, clk, kvstore.NewMemoryStore())
	ctx := context.Background()

	if _, err := uc.Record(ctx, focusdto.RecordInput{Minutes: 40}); err != nil {
		t.Fatalf("record yesterday: %v", err)
	}
	if _, err := uc.Record(ctx, focusdto.RecordInput{Minutes: 10}); err != nil {
		t.Fatalf("record today: %v", err)
	}
	today, err := uc.TodayMinutes(ctx)
	if err != nil {
		t.Fatalf("today minutes: %v", err)
	}
	if today.Minutes != 10 {
		t.Fatalf("expected 10 minutes today, got %v", today.Minutes)
	}
	if _, err := uc.Record(ctx, focusdto.RecordInput{Minutes: 0}); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for zero minutes, got %v", err)
	}
}

func TestGoalDefaultAndValidation(t *testing.T) {
	t.Parallel()
	clk := &fakeClock{values: []time.Time{time.Date(2026, 2, 25, 10, 0, 0, 0, time.UTC)}}
	uc := newInteractor(t, clk, kvstore.NewMemoryStore())
	ctx := context.Background()

	goal, err := uc.Goal(ctx)
	if err != nil || goal != "25m" {
		t.Fatalf("expected default goal, got %q (%v)", goal, err)
	}
	if err := uc.SetGoal(ctx, "tomorrow"); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if err := uc.SetGoal(ctx, "1h30m"); err != nil {
		t.Fatalf("set goal: %v", err)
	}
	goal, _ = uc.Goal(ctx)
	if goal != "1h30m" {
		t.Fatalf("expected stored goal, got %q", goal)
	}
}

func TestTodayMinutesSurfacesUnreadableLedger(t *testing.T) {
	t.Parallel()
	store := kvstore.NewMemoryStore()
	if err := store.Set(context.Background(), focusout.KeyFocusSessions, "{not json"); err != nil {
		t.Fatalf("seed: %v", err)
	}
	clk := &fakeClock{values: []time.Time{time.Date(2026, 2, 25, 10, 0, 0, 0, time.UTC)}}
	uc := newInteractor(t, clk, store)

	if _, err := uc.TodayMinutes(context.Background()); err == nil {
		t.Fatalf("expected error for malformed ledger")
	}
}
