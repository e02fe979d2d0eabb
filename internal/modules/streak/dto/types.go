package dto

type StreakOutput struct {
	Current        int
	Longest        int
	Status         string
	Message        string
	Tone           string
	TodayCompleted int
	TodayTotal     int
	Percent        float64
}

type TaskOutput struct {
	ID        string
	Title     string
	Category  string
	Completed bool
}

type BoardOutput struct {
	Tasks  []TaskOutput
	Streak StreakOutput
}

type CompleteInput struct {
	TaskID string
}

type CompleteOutput struct {
	Task   TaskOutput
	Streak StreakOutput
}

type GardenOutput struct {
	Streak   int
	Stage    string
	Progress float64
	Leaves   bool
	Branches bool
	Flowers  bool
	Fruit    bool
}

type CalendarDayOutput struct {
	Date   string
	Status string
}

type CalendarOutput struct {
	Current int
	Days    []CalendarDayOutput
}
