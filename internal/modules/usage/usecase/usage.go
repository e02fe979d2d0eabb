package usecase

import (
	"context"
	"log/slog"
	"time"

	"mindflow/internal/modules/usage/domain"
	usagedto "mindflow/internal/modules/usage/dto"
	usagein "mindflow/internal/modules/usage/port/in"
	"mindflow/internal/modules/usage/service"
)

type Interactor struct {
	svc *service.UsageService
	log *slog.Logger
}

func NewInteractor(svc *service.UsageService, logger *slog.Logger) usagein.Usecase {
	return &Interactor{svc: svc, log: logger.With("module", "usage")}
}

func (i *Interactor) Foreground(ctx context.Context) (usagedto.ScreenTimeOutput, error) {
	st, err := i.svc.Foreground(ctx)
	if err != nil {
		return usagedto.ScreenTimeOutput{}, err
	}
	return toOutput(st, st.Total, 0), nil
}

func (i *Interactor) Background(ctx context.Context) (usagedto.ScreenTimeOutput, error) {
	st, added, err := i.svc.Background(ctx)
	if err != nil {
		return usagedto.ScreenTimeOutput{}, err
	}
	return toOutput(st, st.Total, added), nil
}

func (i *Interactor) ScreenTime(ctx context.Context) (usagedto.ScreenTimeOutput, error) {
	st, reading, err := i.svc.ScreenTime(ctx)
	if err != nil {
		return usagedto.ScreenTimeOutput{}, err
	}
	return toOutput(st, reading, 0), nil
}

func (i *Interactor) FormattedScreenTime(ctx context.Context) string {
	out, err := i.ScreenTime(ctx)
	if err != nil {
		i.log.WarnContext(ctx, "read screen time", slog.Any("error", err))
		return domain.FormatHM(0)
	}
	return out.Formatted
}

func (i *Interactor) ResetScreenTime(ctx context.Context) error {
	return i.svc.ResetScreenTime(ctx)
}

func (i *Interactor) RecordNotification(ctx context.Context) (usagedto.NotificationOutput, error) {
	count, err := i.svc.RecordNotification(ctx)
	if err != nil {
		return usagedto.NotificationOutput{}, err
	}
	return usagedto.NotificationOutput{Count: count}, nil
}

func (i *Interactor) NotificationCount(ctx context.Context) (usagedto.NotificationOutput, error) {
	count, err := i.svc.NotificationCount(ctx)
	if err != nil {
		return usagedto.NotificationOutput{}, err
	}
	return usagedto.NotificationOutput{Count: count}, nil
}

func (i *Interactor) ResetNotifications(ctx context.Context) error {
	return i.svc.ResetNotifications(ctx)
}

func toOutput(st domain.ScreenTime, total, added time.Duration) usagedto.ScreenTimeOutput {
	return usagedto.ScreenTimeOutput{
		Total:        total,
		Formatted:    domain.FormatHM(total),
		Tracking:     st.Tracking,
		SessionStart: st.SessionStart,
		Added:        added,
	}
}
