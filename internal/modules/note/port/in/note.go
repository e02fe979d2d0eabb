package in

import (
	"context"

	"mindflow/internal/modules/note/dto"
)

type Usecase interface {
	Submit(ctx context.Context, input dto.SubmitInput) (dto.SubmitOutput, error)
	Status(ctx context.Context) (dto.StatusOutput, error)
	ResetFlag(ctx context.Context) error
}
