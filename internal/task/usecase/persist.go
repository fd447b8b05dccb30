package usecase

import (
	"context"
	"fmt"

	"task-prioritizer/internal/model"
	"task-prioritizer/internal/task"
	"task-prioritizer/internal/task/repository"
)

// Load queues the stored tasks. Tasks whose name is already queued, or that
// fail validation, are skipped.
func (uc *implUseCase) Load(ctx context.Context) (task.LoadOutput, error) {
	if uc.repo == nil {
		return task.LoadOutput{}, nil
	}

	records, err := uc.listAll(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "Load: repo.List failed: %v", err)
		return task.LoadOutput{}, fmt.Errorf("load tasks: %w", err)
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	now := uc.now()
	var out task.LoadOutput
	for _, rec := range records {
		if _, exists := uc.queue.Find(rec.Name); exists {
			uc.l.Warnf(ctx, "Load: skipping duplicate %q", rec.Name)
			out.Skipped++
			continue
		}
		t, err := model.FromRecord(rec, now)
		if err != nil {
			uc.l.Warnf(ctx, "Load: skipping %q: %v", rec.Name, err)
			out.Skipped++
			continue
		}
		if err := uc.queue.Insert(t); err != nil {
			uc.l.Warnf(ctx, "Load: skipping %q: %v", rec.Name, err)
			out.Skipped++
			continue
		}
		out.Loaded++
	}

	uc.l.Infof(ctx, "Load: queued %d tasks, skipped %d", out.Loaded, out.Skipped)
	return out, nil
}

// listAll reads every stored record a page at a time.
func (uc *implUseCase) listAll(ctx context.Context) ([]model.Record, error) {
	var records []model.Record
	for {
		page, err := uc.repo.List(ctx, repository.ListOptions{Limit: loadPageSize, Offset: len(records)})
		if err != nil {
			return nil, err
		}
		records = append(records, page...)
		if len(page) < loadPageSize {
			return records, nil
		}
	}
}

// Save replaces the stored tasks with the queue in insertion order.
func (uc *implUseCase) Save(ctx context.Context) error {
	if uc.repo == nil {
		return nil
	}

	uc.mu.Lock()
	tasks := uc.queue.Tasks()
	uc.mu.Unlock()

	records := make([]model.Record, len(tasks))
	for i, t := range tasks {
		records[i] = t.Record()
	}

	if err := uc.repo.Replace(ctx, records); err != nil {
		uc.l.Errorf(ctx, "Save: repo.Replace failed: %v", err)
		return fmt.Errorf("save tasks: %w", err)
	}
	return nil
}
