package out

import (
	"context"

	"mindflow/internal/modules/focus/domain"
)

type Ledger interface {
	Append(ctx context.Context, session domain.Session) error
	List(ctx context.Context) ([]domain.Session, error)
}

type ActiveFocusStore interface {
	SaveActive(ctx context.Context, active domain.ActiveFocus) error
	LoadActive(ctx context.Context) (domain.ActiveFocus, error)
	ClearActive(ctx context.Context) error
}

// GoalStore reports ok=false when no goal has been set.
type GoalStore interface {
	LoadGoal(ctx context.Context) (string, bool, error)
	SaveGoal(ctx context.Context, goal string) error
}
