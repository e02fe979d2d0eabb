package out

import (
	"context"

	focusin "mindflow/internal/modules/focus/port/in"
	wellnessout "mindflow/internal/modules/wellness/port/out"
)

type FocusBridge struct {
	focus focusin.Usecase
}

func NewFocusBridge(focus focusin.Usecase) wellnessout.FocusSource {
	return &FocusBridge{focus: focus}
}

func (b *FocusBridge) TodayFocusMinutes(ctx context.Context) (float64, error) {
	today, err := b.focus.TodayMinutes(ctx)
	if err != nil {
		return 0, err
	}
	return today.Minutes, nil
}

func (b *FocusBridge) SessionGoal(ctx context.Context) (string, error) {
	return b.focus.Goal(ctx)
}
