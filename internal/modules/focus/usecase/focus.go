package usecase

import (
	"context"
	"errors"
	"fmt"

	"mindflow/internal/modules/focus/domain"
	focusdto "mindflow/internal/modules/focus/dto"
	focusin "mindflow/internal/modules/focus/port/in"
	focusout "mindflow/internal/modules/focus/port/out"
	"mindflow/internal/modules/focus/service"
	apperrors "mindflow/internal/platform/errors"
)

type Interactor struct {
	svc         *service.FocusService
	activeStore focusout.ActiveFocusStore
	goals       focusout.GoalStore
}

func NewInteractor(svc *service.FocusService, activeStore focusout.ActiveFocusStore, goals focusout.GoalStore) focusin.Usecase {
	return &Interactor{svc: svc, activeStore: activeStore, goals: goals}
}

func (i *Interactor) Start(ctx context.Context, input focusdto.StartInput) (focusdto.StartOutput, error) {
	_, err := i.activeStore.LoadActive(ctx)
	if err == nil {
		return focusdto.StartOutput{}, apperrors.ErrActiveSessionExists
	}
	if !errors.Is(err, apperrors.ErrNoActiveSession) {
		return focusdto.StartOutput{}, err
	}

	goal := input.Goal
	if goal == "" {
		goal, err = i.Goal(ctx)
		if err != nil {
			return focusdto.StartOutput{}, err
		}
	}

	active, err := i.svc.Start(ctx, goal)
	if err != nil {
		return focusdto.StartOutput{}, err
	}
	if err := i.activeStore.SaveActive(ctx, active); err != nil {
		return focusdto.StartOutput{}, err
	}
	return focusdto.StartOutput{SessionID: active.SessionID, StartedAt: active.StartedAt, Goal: active.Goal}, nil
}

func (i *Interactor) End(ctx context.Context, input focusdto.EndInput) (focusdto.EndOutput, error) {
	active, err := i.activeStore.LoadActive(ctx)
	if err != nil {
		return focusdto.EndOutput{}, err
	}
	if input.SessionID != "" && input.SessionID != active.SessionID {
		return focusdto.EndOutput{}, fmt.Errorf("%w: session id mismatch", apperrors.ErrInvalidInput)
	}

	session, recorded, err := i.svc.End(ctx, active)
	if err != nil {
		return focusdto.EndOutput{}, err
	}
	if err := i.activeStore.ClearActive(ctx); err != nil {
		return focusdto.EndOutput{}, err
	}
	return focusdto.EndOutput{
		SessionID:   active.SessionID,
		DurationMin: int(session.Duration),
		Recorded:    recorded,
	}, nil
}

func (i *Interactor) GetActive(ctx context.Context) (focusdto.ActiveFocusOutput, error) {
	active, err := i.activeStore.LoadActive(ctx)
	if err != nil {
		return focusdto.ActiveFocusOutput{}, err
	}
	return focusdto.ActiveFocusOutput{SessionID: active.SessionID, StartedAt: active.StartedAt, Goal: active.Goal}, nil
}

func (i *Interactor) Record(ctx context.Context, input focusdto.RecordInput) (focusdto.SessionOutput, error) {
	session, err := i.svc.Record(ctx, input.Minutes)
	if err != nil {
		return focusdto.SessionOutput{}, err
	}
	return focusdto.SessionOutput{Timestamp: session.Timestamp, Minutes: session.Duration}, nil
}

func (i *Interactor) TodayMinutes(ctx context.Context) (focusdto.TodayOutput, error) {
	minutes, count, err := i.svc.Today(ctx)
	if err != nil {
		return focusdto.TodayOutput{}, err
	}
	return focusdto.TodayOutput{Minutes: minutes, Sessions: count}, nil
}

func (i *Interactor) Goal(ctx context.Context) (string, error) {
	goal, ok, err := i.goals.LoadGoal(ctx)
	if err != nil {
		return "", err
	}
	if !ok || goal == "" {
		return domain.DefaultGoal, nil
	}
	return goal, nil
}

func (i *Interactor) SetGoal(ctx context.Context, goal string) error {
	if err := domain.ValidateGoal(goal); err != nil {
		return err
	}
	return i.goals.SaveGoal(ctx, goal)
}
