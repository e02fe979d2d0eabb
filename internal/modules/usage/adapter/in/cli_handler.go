package in

import (
	"context"

	usagedto "mindflow/internal/modules/usage/dto"
	usagein "mindflow/internal/modules/usage/port/in"
)

type CLIHandler struct {
	usecase usagein.Usecase
}

func NewCLIHandler(usecase usagein.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Foreground(ctx context.Context) (usagedto.ScreenTimeOutput, error) {
	return h.usecase.Foreground(ctx)
}

func (h CLIHandler) Background(ctx context.Context) (usagedto.ScreenTimeOutput, error) {
	return h.usecase.Background(ctx)
}

func (h CLIHandler) ScreenTime(ctx context.Context) (usagedto.ScreenTimeOutput, error) {
	return h.usecase.ScreenTime(ctx)
}

func (h CLIHandler) RecordNotification(ctx context.Context) (usagedto.NotificationOutput, error) {
	return h.usecase.RecordNotification(ctx)
}

func (h CLIHandler) NotificationCount(ctx context.Context) (usagedto.NotificationOutput, error) {
	return h.usecase.NotificationCount(ctx)
}
