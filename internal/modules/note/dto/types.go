package dto

import "time"

type SubmitInput struct {
	Text string
	Mood int
}

type SubmitOutput struct {
	ID   string
	Path string
}

type NoteOutput struct {
	ID        string
	Title     string
	Mood      int
	CreatedAt time.Time
}

type StatusOutput struct {
	Submitted bool
	Notes     []NoteOutput
}
