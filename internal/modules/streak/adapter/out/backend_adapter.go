package out

import (
	"context"
	"log/slog"

	"mindflow/internal/modules/streak/domain"
	streakout "mindflow/internal/modules/streak/port/out"
	"mindflow/internal/platform/backend"
	"mindflow/internal/platform/calendar"
)

type BackendAdapter struct {
	client *backend.Client
	log    *slog.Logger
}

func NewBackendAdapter(client *backend.Client, logger *slog.Logger) streakout.TaskBackend {
	return &BackendAdapter{client: client, log: logger.With("adapter", "streak_backend")}
}

func (a *BackendAdapter) FetchBoard(ctx context.Context, userID string) (streakout.Board, error) {
	resp, err := a.client.GetTasks(ctx, userID)
	if err != nil {
		return streakout.Board{}, err
	}
	board := streakout.Board{
		Tasks: make([]domain.Task, 0, len(resp.Tasks)),
		State: toState(resp.StreakInfo),
	}
	for _, task := range resp.Tasks {
		board.Tasks = append(board.Tasks, toTask(task))
	}
	for _, raw := range resp.CompletedDays {
		d, err := calendar.ParseDate(raw)
		if err != nil {
			a.log.WarnContext(ctx, "skip malformed completed day", slog.String("value", raw))
			continue
		}
		board.CompletedDays = append(board.CompletedDays, d)
	}
	return board, nil
}

func (a *BackendAdapter) CompleteTask(ctx context.Context, userID, taskID string) (domain.Task, domain.State, error) {
	resp, err := a.client.CompleteTask(ctx, userID, taskID)
	if err != nil {
		return domain.Task{}, domain.State{}, err
	}
	return toTask(resp.Task), toState(resp.Progress), nil
}

func toTask(t backend.Task) domain.Task {
	return domain.Task{
		ID:          string(t.ID),
		Title:       t.Title,
		Description: t.Description,
		Category:    t.Category,
		Completed:   t.Completed,
	}
}

func toState(info backend.StreakInfo) domain.State {
	return domain.State{
		CurrentStreak:  info.CurrentStreak,
		LongestStreak:  info.LongestStreak,
		Status:         domain.Status(info.StreakStatus),
		Message:        info.StreakMessage,
		TodayCompleted: info.TodayCompleted,
		TodayTotal:     info.TodayTotal,
	}
}
