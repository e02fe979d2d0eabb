package out

import (
	"context"

	"mindflow/internal/modules/streak/domain"
	"mindflow/internal/platform/calendar"
)

// Board is the backend's view of the user's day.
type Board struct {
	Tasks         []domain.Task
	State         domain.State
	CompletedDays []calendar.Date
}

type TaskBackend interface {
	FetchBoard(ctx context.Context, userID string) (Board, error)
	CompleteTask(ctx context.Context, userID, taskID string) (domain.Task, domain.State, error)
}

// StateStore keeps the last mirrored state. ok is false before the first mirror.
type StateStore interface {
	Load(ctx context.Context) (state domain.State, ok bool, err error)
	Save(ctx context.Context, state domain.State) error
}

type UserSource interface {
	UserID(ctx context.Context) string
}
