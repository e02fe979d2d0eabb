package out

import (
	"context"
	"log/slog"

	dtout "mindflow/internal/modules/daytransition/port/out"
	"mindflow/internal/platform/backend"
)

type userSource interface {
	UserID(ctx context.Context) string
}

type BackendRefresher struct {
	client *backend.Client
	users  userSource
	log    *slog.Logger
}

func NewBackendRefresher(client *backend.Client, users userSource, logger *slog.Logger) dtout.DayRefresher {
	return &BackendRefresher{client: client, users: users, log: logger.With("adapter", "day_refresher")}
}

func (r *BackendRefresher) RefreshDay(ctx context.Context) error {
	userID := r.users.UserID(ctx)
	resp, err := r.client.RefreshDay(ctx, userID)
	if err != nil {
		return err
	}
	r.log.InfoContext(ctx, "backend day refreshed", slog.String("user", userID), slog.Bool("refreshed", resp.Refreshed), slog.String("date", resp.Date))
	return nil
}
