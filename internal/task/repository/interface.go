package repository

import (
	"context"

	"task-prioritizer/internal/model"
)

// TaskRepository persists the queue's field sets.
type TaskRepository interface {
	// Replace stores records as the complete queue, in order.
	Replace(ctx context.Context, records []model.Record) error
	// List returns the stored records in the order they were saved.
	List(ctx context.Context, opt ListOptions) ([]model.Record, error)
	Close() error
}
