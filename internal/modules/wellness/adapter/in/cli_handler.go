package in

import (
	"context"

	wellnessdto "mindflow/internal/modules/wellness/dto"
	wellnessin "mindflow/internal/modules/wellness/port/in"
)

type CLIHandler struct {
	usecase wellnessin.Usecase
}

func NewCLIHandler(usecase wellnessin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Score(ctx context.Context) wellnessdto.ScoreOutput {
	return h.usecase.FocusScore(ctx)
}

func (h CLIHandler) Snapshot(ctx context.Context) wellnessdto.WellnessOutput {
	return h.usecase.Snapshot(ctx)
}
