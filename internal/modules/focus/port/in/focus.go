package in

import (
	"context"

	"mindflow/internal/modules/focus/dto"
)

type Usecase interface {
	Start(ctx context.Context, input dto.StartInput) (dto.StartOutput, error)
	End(ctx context.Context, input dto.EndInput) (dto.EndOutput, error)
	GetActive(ctx context.Context) (dto.ActiveFocusOutput, error)
	Record(ctx context.Context, input dto.RecordInput) (dto.SessionOutput, error)
	TodayMinutes(ctx context.Context) (dto.TodayOutput, error)
	Goal(ctx context.Context) (string, error)
	SetGoal(ctx context.Context, goal string) error
}
