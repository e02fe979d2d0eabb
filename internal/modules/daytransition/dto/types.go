package dto

type TransitionOutput struct {
	Transitioned bool
	Today        string
	Previous     string
	FailedSteps  []string
}
