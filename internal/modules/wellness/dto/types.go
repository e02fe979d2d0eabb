package dto

type ScoreOutput struct {
	Score int
	Band  string
}

type WellnessOutput struct {
	ScreenTime    string
	Notifications int
	SessionGoal   string
	FocusScore    int
	Band          string
}
