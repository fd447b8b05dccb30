package usecase

import (
	"context"

	"task-prioritizer/internal/task"
)

// List returns the queue in work order, ranked from 1.
func (uc *implUseCase) List(ctx context.Context) (task.ListOutput, error) {
	uc.mu.Lock()
	sorted := uc.queue.Sorted()
	uc.mu.Unlock()

	items := toItems(sorted)
	uc.l.Debugf(ctx, "List: %d tasks", len(items))

	return task.ListOutput{Tasks: items, Count: len(items)}, nil
}
