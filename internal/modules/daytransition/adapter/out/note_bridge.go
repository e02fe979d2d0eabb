package out

import (
	"context"

	dtout "mindflow/internal/modules/daytransition/port/out"
	notein "mindflow/internal/modules/note/port/in"
)

type NoteBridge struct {
	notes notein.Usecase
}

func NewNoteBridge(notes notein.Usecase) dtout.NoteFlagResetter {
	return &NoteBridge{notes: notes}
}

func (b *NoteBridge) ResetFlag(ctx context.Context) error {
	return b.notes.ResetFlag(ctx)
}
