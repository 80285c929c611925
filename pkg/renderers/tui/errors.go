package tui

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("tui: aborted")
	// ErrDeclined is returned when the user answers no to the submit
	// confirmation.
	ErrDeclined = errors.New("tui: submission declined")
	// ErrTooManyAttempts is returned when validation keeps failing past the
	// configured attempt limit.
	ErrTooManyAttempts = errors.New("tui: too many invalid attempts")
	// ErrBusy is returned when the form is already submitting elsewhere.
	ErrBusy = errors.New("tui: form is submitting")
)
