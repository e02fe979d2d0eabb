package in

import (
	"context"

	"mindflow/internal/modules/usage/dto"
)

type Usecase interface {
	Foreground(ctx context.Context) (dto.ScreenTimeOutput, error)
	Background(ctx context.Context) (dto.ScreenTimeOutput, error)
	ScreenTime(ctx context.Context) (dto.ScreenTimeOutput, error)
	// FormattedScreenTime never fails; read errors render as "0h 0m".
	FormattedScreenTime(ctx context.Context) string
	ResetScreenTime(ctx context.Context) error

	RecordNotification(ctx context.Context) (dto.NotificationOutput, error)
	NotificationCount(ctx context.Context) (dto.NotificationOutput, error)
	ResetNotifications(ctx context.Context) error
}
