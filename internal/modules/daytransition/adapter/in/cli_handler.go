package in

import (
	"context"

	dtdto "mindflow/internal/modules/daytransition/dto"
	dtin "mindflow/internal/modules/daytransition/port/in"
)

type CLIHandler struct {
	usecase dtin.Usecase
}

func NewCLIHandler(usecase dtin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

// Check runs the date check and waits for the day refresh it may start.
func (h CLIHandler) Check(ctx context.Context) (dtdto.TransitionOutput, error) {
	out, err := h.usecase.CheckDateTransition(ctx)
	h.usecase.Wait()
	return out, err
}

func (h CLIHandler) Initialize(ctx context.Context) (dtdto.TransitionOutput, error) {
	out, err := h.usecase.Initialize(ctx)
	h.usecase.Wait()
	return out, err
}

func (h CLIHandler) Cleanup(ctx context.Context) {
	h.usecase.Cleanup(ctx)
}
