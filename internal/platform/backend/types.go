package backend

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// TaskID accepts both numeric and string ids on the wire.
type TaskID string

func (t *TaskID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = TaskID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("task id: %w", err)
	}
	if _, err := strconv.ParseInt(n.String(), 10, 64); err != nil {
		return fmt.Errorf("task id %s: %w", n, err)
	}
	*t = TaskID(n.String())
	return nil
}

// StreakInfo is the backend's streak and daily completion record.
type StreakInfo struct {
	CurrentStreak  int    `json:"current_streak"`
	LongestStreak  int    `json:"longest_streak"`
	StreakStatus   string `json:"streak_status"`
	StreakMessage  string `json:"streak_message"`
	TodayCompleted int    `json:"today_completed"`
	TodayTotal     int    `json:"today_total"`
}

type Task struct {
	ID          TaskID `json:"task_id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category,omitempty"`
	Completed   bool   `json:"completed"`
}

type CompletionSummary struct {
	Completed  int     `json:"completed"`
	Total      int     `json:"total"`
	Percentage float64 `json:"percentage"`
}

type TasksResponse struct {
	Tasks             []Task            `json:"tasks"`
	StreakInfo        StreakInfo        `json:"streak_info"`
	CompletionSummary CompletionSummary `json:"completion_summary"`
	CompletedDays     []string          `json:"completed_days,omitempty"`
}

type CompleteResponse struct {
	Task     Task       `json:"task"`
	Progress StreakInfo `json:"progress"`
}

type RefreshResponse struct {
	Refreshed bool   `json:"refreshed"`
	Date      string `json:"date"`
}
