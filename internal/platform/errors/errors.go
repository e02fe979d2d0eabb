package apperrors

import "errors"

var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrNoActiveSession     = errors.New("no active focus session")
	ErrActiveSessionExists = errors.New("focus session already active")
	ErrDailyNoteSubmitted  = errors.New("daily note already submitted today")
	ErrBackendUnavailable  = errors.New("backend unavailable")
	ErrTaskNotFound        = errors.New("task not found")
)
