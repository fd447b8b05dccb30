package task

import "errors"

// Domain-specific errors for the task package.
var (
	ErrEmptyName         = errors.New("task name is empty")
	ErrInvalidDueDate    = errors.New("due date could not be understood")
	ErrUnknownDependency = errors.New("dependency is not in the queue")
	ErrDuplicateName     = errors.New("a task with this name is already queued")
	ErrNothingToExport   = errors.New("no tasks to export")
)
