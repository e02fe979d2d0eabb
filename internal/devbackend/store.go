// Package devbackend is an in-memory stand-in for the backend-of-record. It
// serves the same task and streak contract so the client can run locally.
package devbackend

import (
	"fmt"
	"slices"
	"strconv"
	"sync"

	"mindflow/internal/platform/backend"
	"mindflow/internal/platform/calendar"
	"mindflow/internal/platform/clock"
	apperrors "mindflow/internal/platform/errors"
)

var dailyTasks = []backend.Task{
	{ID: "1", Title: "Mindful breathing", Description: "Five minutes of slow breathing", Category: "mindfulness"},
	{ID: "2", Title: "Phone-free walk", Description: "Fifteen minutes outside without the phone", Category: "movement"},
	{ID: "3", Title: "Evening reflection", Description: "Write down one thing that went well", Category: "reflection"},
}

type userState struct {
	day           calendar.Date
	tasks         []backend.Task
	current       int
	longest       int
	status        string
	credited      calendar.Date
	completedDays []string
}

// Store keeps one userState per user id.
type Store struct {
	clock clock.Clock

	mu    sync.Mutex
	users map[string]*userState
}

func NewStore(clk clock.Clock) *Store {
	return &Store{clock: clk, users: map[string]*userState{}}
}

func (s *Store) Tasks(userID string) backend.TasksResponse {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.userLocked(userID)
	return backend.TasksResponse{
		Tasks:             slices.Clone(st.tasks),
		StreakInfo:        st.info(),
		CompletionSummary: st.summary(),
		CompletedDays:     slices.Clone(st.completedDays),
	}
}

// Complete marks taskID done. Finishing the last open task of the day
// extends the streak, once per day.
func (s *Store) Complete(userID, taskID string) (backend.CompleteResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.userLocked(userID)

	idx := slices.IndexFunc(st.tasks, func(t backend.Task) bool { return string(t.ID) == taskID })
	if idx < 0 {
		return backend.CompleteResponse{}, fmt.Errorf("%w: %s", apperrors.ErrTaskNotFound, taskID)
	}
	st.tasks[idx].Completed = true

	if st.allDone() && !st.credited.Equal(st.day) {
		st.current++
		st.longest = max(st.longest, st.current)
		st.status = "increased"
		st.credited = st.day
		st.completedDays = append(st.completedDays, st.day.String())
	}
	return backend.CompleteResponse{Task: st.tasks[idx], Progress: st.info()}, nil
}

// RefreshDay rolls the user over to today. The streak survives only when the
// previous day was fully completed and no day was skipped. Repeated calls on
// the same day change nothing.
func (s *Store) RefreshDay(userID string) backend.RefreshResponse {
	s.mu.Lock()
	defer s.mu.Unlock()
	today := calendar.DateOf(s.clock.Now())
	st, ok := s.users[userID]
	if !ok {
		s.users[userID] = newUserState(today)
		return backend.RefreshResponse{Refreshed: true, Date: today.String()}
	}
	if st.day.Equal(today) {
		return backend.RefreshResponse{Refreshed: false, Date: today.String()}
	}

	kept := st.credited.Equal(st.day) && st.day.AddDays(1).Equal(today)
	switch {
	case kept:
	case st.current > 0:
		st.current = 0
		st.status = "broken"
	default:
		st.status = "no_streak"
	}
	st.day = today
	st.tasks = freshTasks()
	return backend.RefreshResponse{Refreshed: true, Date: today.String()}
}

func (s *Store) userLocked(userID string) *userState {
	st, ok := s.users[userID]
	if !ok {
		st = newUserState(calendar.DateOf(s.clock.Now()))
		s.users[userID] = st
	}
	return st
}

func newUserState(day calendar.Date) *userState {
	return &userState{day: day, tasks: freshTasks(), status: "no_streak"}
}

func freshTasks() []backend.Task {
	return slices.Clone(dailyTasks)
}

func (st *userState) allDone() bool {
	return !slices.ContainsFunc(st.tasks, func(t backend.Task) bool { return !t.Completed })
}

func (st *userState) completed() int {
	n := 0
	for _, t := range st.tasks {
		if t.Completed {
			n++
		}
	}
	return n
}

func (st *userState) info() backend.StreakInfo {
	return backend.StreakInfo{
		CurrentStreak:  st.current,
		LongestStreak:  st.longest,
		StreakStatus:   st.status,
		StreakMessage:  strconv.Itoa(st.current) + " day streak",
		TodayCompleted: st.completed(),
		TodayTotal:     len(st.tasks),
	}
}

func (st *userState) summary() backend.CompletionSummary {
	done, total := st.completed(), len(st.tasks)
	pct := 0.0
	if total > 0 {
		pct = float64(done) / float64(total) * 100
	}
	return backend.CompletionSummary{Completed: done, Total: total, Percentage: pct}
}
