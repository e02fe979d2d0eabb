package in

import (
	"context"

	focusdto "mindflow/internal/modules/focus/dto"
	focusin "mindflow/internal/modules/focus/port/in"
)

type CLIHandler struct {
	usecase focusin.Usecase
}

func NewCLIHandler(usecase focusin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Start(ctx context.Context, goal string) (focusdto.StartOutput, error) {
	return h.usecase.Start(ctx, focusdto.StartInput{Goal: goal})
}

func (h CLIHandler) End(ctx context.Context, sessionID string) (focusdto.EndOutput, error) {
	return h.usecase.End(ctx, focusdto.EndInput{SessionID: sessionID})
}

func (h CLIHandler) GetActive(ctx context.Context) (focusdto.ActiveFocusOutput, error) {
	return h.usecase.GetActive(ctx)
}

func (h CLIHandler) Record(ctx context.Context, minutes float64) (focusdto.SessionOutput, error) {
	return h.usecase.Record(ctx, focusdto.RecordInput{Minutes: minutes})
}

func (h CLIHandler) Today(ctx context.Context) (focusdto.TodayOutput, error) {
	return h.usecase.TodayMinutes(ctx)
}

func (h CLIHandler) Goal(ctx context.Context) (string, error) {
	return h.usecase.Goal(ctx)
}

func (h CLIHandler) SetGoal(ctx context.Context, goal string) error {
	return h.usecase.SetGoal(ctx, goal)
}
