package cli

import (
	"context"
	"io"

	"task-prioritizer/internal/task"
	"task-prioritizer/pkg/log"
)

// Handler runs the task commands against a terminal.
type Handler interface {
	Add(ctx context.Context) (int, error)
	List(ctx context.Context) error
	Export(ctx context.Context, in task.ExportInput) error
}

type handler struct {
	l      log.Logger
	uc     task.UseCase
	prompt Prompter
	out    io.Writer
}

// New creates a CLI handler that reads answers from prompt and writes to out.
func New(l log.Logger, uc task.UseCase, prompt Prompter, out io.Writer) Handler {
	return &handler{
		l:      l,
		uc:     uc,
		prompt: prompt,
		out:    out,
	}
}
