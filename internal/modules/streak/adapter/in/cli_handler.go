package in

import (
	"context"

	streakdto "mindflow/internal/modules/streak/dto"
	streakin "mindflow/internal/modules/streak/port/in"
)

type CLIHandler struct {
	usecase streakin.Usecase
}

func NewCLIHandler(usecase streakin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Show(ctx context.Context) (streakdto.StreakOutput, error) {
	return h.usecase.Current(ctx)
}

func (h CLIHandler) Refresh(ctx context.Context) (streakdto.BoardOutput, error) {
	return h.usecase.Refresh(ctx)
}

func (h CLIHandler) Complete(ctx context.Context, taskID string) (streakdto.CompleteOutput, error) {
	return h.usecase.CompleteTask(ctx, streakdto.CompleteInput{TaskID: taskID})
}

func (h CLIHandler) Garden(ctx context.Context) (streakdto.GardenOutput, error) {
	return h.usecase.Garden(ctx)
}

func (h CLIHandler) Calendar(ctx context.Context) (streakdto.CalendarOutput, error) {
	return h.usecase.Calendar(ctx)
}
