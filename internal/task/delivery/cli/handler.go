package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"task-prioritizer/internal/task"
)

const (
	promptName         = "What do you need to do?"
	promptDescription  = "Short description:"
	promptCritical     = "Is this a critical task?"
	promptEstimate     = "How long will this take?"
	promptDueDate      = "When is it due?"
	promptDependencies = "Which queued tasks must come first? (comma separated)"
)

// isStopWord reports whether a name answer ends the intake loop.
func isStopWord(name string) bool {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "nothing", "done":
		return true
	}
	return false
}

func splitNames(s string) []string {
	var names []string
	for _, n := range strings.Split(s, ",") {
		if n = strings.TrimSpace(n); n != "" {
			names = append(names, n)
		}
	}
	return names
}

// Add shows the current queue, then asks for tasks until a stop word is
// given as the name. It returns how many tasks were queued.
func (h *handler) Add(ctx context.Context) (int, error) {
	if err := h.List(ctx); err != nil {
		return 0, err
	}

	added := 0
	for {
		in, ok, err := h.askTask()
		if err != nil {
			return added, err
		}
		if !ok {
			return added, nil
		}

		out, err := h.createWithRetry(ctx, in)
		if err != nil {
			if errors.Is(err, task.ErrDuplicateName) || errors.Is(err, task.ErrEmptyName) {
				fmt.Fprintln(h.out, errorStyle.Render(err.Error()))
				continue
			}
			return added, err
		}

		added++
		fmt.Fprintln(h.out, renderCreated(out.Task))
	}
}

// askTask collects one task. ok is false when the user is done.
func (h *handler) askTask() (task.CreateInput, bool, error) {
	name, err := h.prompt.Input(promptName, "or 'done'")
	if err != nil {
		return task.CreateInput{}, false, err
	}
	if isStopWord(name) {
		return task.CreateInput{}, false, nil
	}

	in := task.CreateInput{Name: strings.TrimSpace(name)}
	if in.Description, err = h.prompt.Input(promptDescription, ""); err != nil {
		return in, false, err
	}
	if in.Critical, err = h.prompt.Confirm(promptCritical); err != nil {
		return in, false, err
	}
	if in.TimeEstimate, err = h.prompt.Input(promptEstimate, "e.g. 1/2 day, 20 mins"); err != nil {
		return in, false, err
	}
	if in.DueDate, err = h.prompt.Input(promptDueDate, "e.g. in 8 days, 12-23, next friday"); err != nil {
		return in, false, err
	}
	deps, err := h.prompt.Input(promptDependencies, "")
	if err != nil {
		return in, false, err
	}
	in.Dependencies = splitNames(deps)

	return in, true, nil
}

// createWithRetry re-asks the field at fault until the task is accepted.
func (h *handler) createWithRetry(ctx context.Context, in task.CreateInput) (task.CreateOutput, error) {
	for {
		out, err := h.uc.Create(ctx, in)
		switch {
		case err == nil:
			return out, nil
		case errors.Is(err, task.ErrInvalidDueDate):
			fmt.Fprintln(h.out, errorStyle.Render(err.Error()))
			if in.DueDate, err = h.prompt.Input(promptDueDate, "e.g. in 8 days, 12-23, next friday"); err != nil {
				return out, err
			}
		case errors.Is(err, task.ErrUnknownDependency):
			fmt.Fprintln(h.out, errorStyle.Render(err.Error()))
			deps, err := h.prompt.Input(promptDependencies, "")
			if err != nil {
				return out, err
			}
			in.Dependencies = splitNames(deps)
		default:
			return out, err
		}
	}
}

// List prints the queue in work order.
func (h *handler) List(ctx context.Context) error {
	out, err := h.uc.List(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		return err
	}
	fmt.Fprintln(h.out, renderList(out.Tasks))
	return nil
}

// Export writes the queue to CSV and optionally the calendar.
func (h *handler) Export(ctx context.Context, in task.ExportInput) error {
	out, err := h.uc.Export(ctx, in)
	if err != nil {
		h.l.Errorf(ctx, "uc.Export: %v", err)
	}
	if out.Rows > 0 {
		fmt.Fprintln(h.out, renderExport(out))
	}
	return err
}
