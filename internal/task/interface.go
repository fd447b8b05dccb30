package task

import "context"

// UseCase defines the business logic interface for the task domain.
type UseCase interface {
	// Create parses the raw estimate and due date, builds a task and queues it.
	Create(ctx context.Context, input CreateInput) (CreateOutput, error)

	// List returns the queue in priority order.
	List(ctx context.Context) (ListOutput, error)

	// Load reads persisted tasks into the queue.
	Load(ctx context.Context) (LoadOutput, error)

	// Save persists the queue, replacing what was stored before.
	Save(ctx context.Context) error

	// Export writes the ordered queue to CSV and, when configured, to the calendar.
	Export(ctx context.Context, input ExportInput) (ExportOutput, error)
}
