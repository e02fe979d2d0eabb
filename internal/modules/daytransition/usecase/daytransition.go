package usecase

import (
	"context"

	"mindflow/internal/modules/daytransition/domain"
	dtdto "mindflow/internal/modules/daytransition/dto"
	dtin "mindflow/internal/modules/daytransition/port/in"
	"mindflow/internal/modules/daytransition/service"
)

type Interactor struct {
	coordinator *service.Coordinator
}

func NewInteractor(coordinator *service.Coordinator) dtin.Usecase {
	return &Interactor{coordinator: coordinator}
}

func (i *Interactor) Initialize(ctx context.Context) (dtdto.TransitionOutput, error) {
	res, err := i.coordinator.Initialize(ctx)
	return toOutput(res), err
}

func (i *Interactor) CheckDateTransition(ctx context.Context) (dtdto.TransitionOutput, error) {
	res, err := i.coordinator.CheckDateTransition(ctx)
	return toOutput(res), err
}

func (i *Interactor) Cleanup(ctx context.Context) {
	i.coordinator.Cleanup(ctx)
}

func (i *Interactor) Wait() {
	i.coordinator.Wait()
}

func toOutput(res domain.Result) dtdto.TransitionOutput {
	out := dtdto.TransitionOutput{Transitioned: res.Transitioned, FailedSteps: res.Failed}
	if !res.Today.IsZero() {
		out.Today = res.Today.String()
	}
	if !res.Previous.IsZero() {
		out.Previous = res.Previous.String()
	}
	return out
}
