package in

import (
	"context"

	"mindflow/internal/modules/wellness/dto"
)

// Usecase never fails: unreadable inputs degrade to neutral values.
type Usecase interface {
	FocusScore(ctx context.Context) dto.ScoreOutput
	Snapshot(ctx context.Context) dto.WellnessOutput
}
