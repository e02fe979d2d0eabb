package out

import (
	"context"

	usagein "mindflow/internal/modules/usage/port/in"
	wellnessout "mindflow/internal/modules/wellness/port/out"
)

type UsageBridge struct {
	usage usagein.Usecase
}

func NewUsageBridge(usage usagein.Usecase) wellnessout.UsageSource {
	return &UsageBridge{usage: usage}
}

func (b *UsageBridge) ScreenTime(ctx context.Context) (string, error) {
	out, err := b.usage.ScreenTime(ctx)
	if err != nil {
		return "", err
	}
	return out.Formatted, nil
}

func (b *UsageBridge) NotificationCount(ctx context.Context) (int, error) {
	out, err := b.usage.NotificationCount(ctx)
	if err != nil {
		return 0, err
	}
	return out.Count, nil
}
