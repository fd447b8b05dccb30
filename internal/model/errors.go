package model

import "errors"

// Invalid-input errors raised while constructing or scoring a task.
var (
	ErrEmptyName           = errors.New("task name is empty")
	ErrMissingDueDate      = errors.New("missing due date")
	ErrNonPositiveEstimate = errors.New("remaining estimate must be positive")
	ErrNegativeEstimate    = errors.New("time estimate must not be negative")
)
