package usecase

import (
	"context"

	"mindflow/internal/modules/streak/domain"
	streakdto "mindflow/internal/modules/streak/dto"
	streakin "mindflow/internal/modules/streak/port/in"
	"mindflow/internal/modules/streak/service"
)

type Interactor struct {
	svc *service.StreakService
}

func NewInteractor(svc *service.StreakService) streakin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Refresh(ctx context.Context) (streakdto.BoardOutput, error) {
	board, err := i.svc.Refresh(ctx)
	if err != nil {
		return streakdto.BoardOutput{}, err
	}
	tasks := make([]streakdto.TaskOutput, 0, len(board.Tasks))
	for _, task := range board.Tasks {
		tasks = append(tasks, toTaskOutput(task))
	}
	return streakdto.BoardOutput{Tasks: tasks, Streak: toStreakOutput(board.State)}, nil
}

func (i *Interactor) CompleteTask(ctx context.Context, input streakdto.CompleteInput) (streakdto.CompleteOutput, error) {
	task, state, err := i.svc.CompleteTask(ctx, input.TaskID)
	if err != nil {
		return streakdto.CompleteOutput{}, err
	}
	return streakdto.CompleteOutput{Task: toTaskOutput(task), Streak: toStreakOutput(state)}, nil
}

func (i *Interactor) Current(ctx context.Context) (streakdto.StreakOutput, error) {
	state, err := i.svc.Current(ctx)
	if err != nil {
		return streakdto.StreakOutput{}, err
	}
	return toStreakOutput(state), nil
}

func (i *Interactor) Garden(ctx context.Context) (streakdto.GardenOutput, error) {
	state, err := i.svc.Current(ctx)
	if err != nil {
		return streakdto.GardenOutput{}, err
	}
	g := domain.GardenFor(state.CurrentStreak)
	return streakdto.GardenOutput{
		Streak:   g.Streak,
		Stage:    string(g.Stage),
		Progress: g.Progress,
		Leaves:   g.Leaves,
		Branches: g.Branches,
		Flowers:  g.Flowers,
		Fruit:    g.Fruit,
	}, nil
}

func (i *Interactor) Calendar(ctx context.Context) (streakdto.CalendarOutput, error) {
	state, days, err := i.svc.Calendar(ctx)
	if err != nil {
		return streakdto.CalendarOutput{}, err
	}
	out := streakdto.CalendarOutput{Current: state.CurrentStreak, Days: make([]streakdto.CalendarDayOutput, 0, len(days))}
	for _, d := range days {
		out.Days = append(out.Days, streakdto.CalendarDayOutput{Date: d.Date.String(), Status: string(d.Status)})
	}
	return out, nil
}

func toTaskOutput(task domain.Task) streakdto.TaskOutput {
	return streakdto.TaskOutput{ID: task.ID, Title: task.Title, Category: task.Category, Completed: task.Completed}
}

func toStreakOutput(state domain.State) streakdto.StreakOutput {
	_, tone := domain.Theme(state.Status)
	return streakdto.StreakOutput{
		Current:        state.CurrentStreak,
		Longest:        state.LongestStreak,
		Status:         string(state.Status),
		Message:        state.Message,
		Tone:           string(tone),
		TodayCompleted: state.TodayCompleted,
		TodayTotal:     state.TodayTotal,
		Percent:        state.Percent(),
	}
}
