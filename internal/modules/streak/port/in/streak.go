package in

import (
	"context"

	"mindflow/internal/modules/streak/dto"
)

// Usecase mirrors the backend's streak record. Refresh and CompleteTask call
// the backend and return its errors; Current reads the last mirror only.
type Usecase interface {
	Refresh(ctx context.Context) (dto.BoardOutput, error)
	CompleteTask(ctx context.Context, input dto.CompleteInput) (dto.CompleteOutput, error)
	Current(ctx context.Context) (dto.StreakOutput, error)
	Garden(ctx context.Context) (dto.GardenOutput, error)
	Calendar(ctx context.Context) (dto.CalendarOutput, error)
}
