package usecase

import (
	"context"

	notedto "mindflow/internal/modules/note/dto"
	notein "mindflow/internal/modules/note/port/in"
	"mindflow/internal/modules/note/service"
)

type Interactor struct {
	svc *service.NoteService
}

func NewInteractor(svc *service.NoteService) notein.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Submit(ctx context.Context, input notedto.SubmitInput) (notedto.SubmitOutput, error) {
	note, path, err := i.svc.Submit(ctx, input.Text, input.Mood)
	if err != nil {
		return notedto.SubmitOutput{}, err
	}
	return notedto.SubmitOutput{ID: note.ID, Path: path}, nil
}

func (i *Interactor) Status(ctx context.Context) (notedto.StatusOutput, error) {
	submitted, notes, err := i.svc.Today(ctx)
	if err != nil {
		return notedto.StatusOutput{}, err
	}
	out := notedto.StatusOutput{Submitted: submitted, Notes: make([]notedto.NoteOutput, 0, len(notes))}
	for _, n := range notes {
		out.Notes = append(out.Notes, notedto.NoteOutput{ID: n.ID, Title: n.Title(), Mood: n.Mood, CreatedAt: n.CreatedAt})
	}
	return out, nil
}

func (i *Interactor) ResetFlag(ctx context.Context) error {
	return i.svc.ResetFlag(ctx)
}
