package in

import (
	"context"

	notedto "mindflow/internal/modules/note/dto"
	notein "mindflow/internal/modules/note/port/in"
)

type CLIHandler struct {
	usecase notein.Usecase
}

func NewCLIHandler(usecase notein.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Submit(ctx context.Context, text string, mood int) (notedto.SubmitOutput, error) {
	return h.usecase.Submit(ctx, notedto.SubmitInput{Text: text, Mood: mood})
}

func (h CLIHandler) Status(ctx context.Context) (notedto.StatusOutput, error) {
	return h.usecase.Status(ctx)
}
