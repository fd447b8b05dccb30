package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"task-prioritizer/internal/model"
	"task-prioritizer/internal/task"
	"task-prioritizer/pkg/duration"
)

// Create parses the raw fields, resolves dependencies by name and queues the task.
func (uc *implUseCase) Create(ctx context.Context, input task.CreateInput) (task.CreateOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return task.CreateOutput{}, task.ErrEmptyName
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	if _, exists := uc.queue.Find(name); exists {
		return task.CreateOutput{}, fmt.Errorf("%w: %q", task.ErrDuplicateName, name)
	}

	now := uc.now()

	rawEstimate := strings.TrimSpace(input.TimeEstimate)
	if rawEstimate == "" {
		rawEstimate = uc.cfg.DefaultEstimate
	}
	estimate, fallbackErr := duration.ParseStrict(rawEstimate)
	if fallbackErr != nil {
		uc.l.Debugf(ctx, "Create: estimate %q for %q defaulted to %v: %v", rawEstimate, name, estimate, fallbackErr)
	}

	rawDue := strings.TrimSpace(input.DueDate)
	if rawDue == "" {
		rawDue = uc.cfg.DefaultDue
	}
	due, err := uc.dateMath.Resolve(rawDue, now)
	if err != nil {
		uc.l.Warnf(ctx, "Create: due date %q for %q not understood: %v", rawDue, name, err)
		return task.CreateOutput{}, fmt.Errorf("%w: %q", task.ErrInvalidDueDate, rawDue)
	}
	uc.l.Debugf(ctx, "Create: due date %q resolved by %s to %s", rawDue, due.Strategy, due.AbsoluteTime)

	deps := make([]model.Task, 0, len(input.Dependencies))
	for _, depName := range input.Dependencies {
		depName = strings.TrimSpace(depName)
		if depName == "" {
			continue
		}
		dep, ok := uc.queue.Find(depName)
		if !ok {
			return task.CreateOutput{}, fmt.Errorf("%w: %q", task.ErrUnknownDependency, depName)
		}
		deps = append(deps, dep)
	}

	t, err := model.NewAt(model.Input{
		Name:         name,
		Description:  strings.TrimSpace(input.Description),
		Critical:     input.Critical,
		TimeEstimate: estimate,
		DueDate:      due.AbsoluteTime,
		Dependencies: deps,
	}, now)
	if err != nil {
		return task.CreateOutput{}, mapModelError(err)
	}

	if err := uc.queue.Insert(t); err != nil {
		return task.CreateOutput{}, err
	}

	uc.l.Infof(ctx, "Create: queued %s", t)

	return task.CreateOutput{Task: toItem(0, t)}, nil
}

// mapModelError maps construction errors onto the task domain's errors.
func mapModelError(err error) error {
	switch {
	case errors.Is(err, model.ErrEmptyName):
		return task.ErrEmptyName
	case errors.Is(err, model.ErrMissingDueDate):
		return fmt.Errorf("%w: %v", task.ErrInvalidDueDate, err)
	default:
		return err
	}
}
