package usecase

import (
	"context"

	"mindflow/internal/modules/wellness/domain"
	wellnessdto "mindflow/internal/modules/wellness/dto"
	wellnessin "mindflow/internal/modules/wellness/port/in"
	"mindflow/internal/modules/wellness/service"
)

type Interactor struct {
	svc *service.WellnessService
}

func NewInteractor(svc *service.WellnessService) wellnessin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) FocusScore(ctx context.Context) wellnessdto.ScoreOutput {
	score := i.svc.FocusScore(ctx)
	return wellnessdto.ScoreOutput{Score: score, Band: string(domain.BandOf(score))}
}

func (i *Interactor) Snapshot(ctx context.Context) wellnessdto.WellnessOutput {
	w := i.svc.Snapshot(ctx)
	return wellnessdto.WellnessOutput{
		ScreenTime:    w.ScreenTime,
		Notifications: w.Notifications,
		SessionGoal:   w.SessionGoal,
		FocusScore:    w.FocusScore,
		Band:          string(w.Band),
	}
}
