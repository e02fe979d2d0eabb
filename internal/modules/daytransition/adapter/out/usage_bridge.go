package out

import (
	"context"

	usagein "mindflow/internal/modules/usage/port/in"
)

// UsageBridge serves both tracker reset steps.
type UsageBridge struct {
	usage usagein.Usecase
}

func NewUsageBridge(usage usagein.Usecase) *UsageBridge {
	return &UsageBridge{usage: usage}
}

func (b *UsageBridge) ResetNotifications(ctx context.Context) error {
	return b.usage.ResetNotifications(ctx)
}

func (b *UsageBridge) ResetScreenTime(ctx context.Context) error {
	return b.usage.ResetScreenTime(ctx)
}
