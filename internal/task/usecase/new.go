package usecase

import (
	"sync"
	"time"

	"task-prioritizer/internal/prioritizer"
	"task-prioritizer/internal/task"
	"task-prioritizer/internal/task/repository"
	"task-prioritizer/pkg/datemath"
	pkgLog "task-prioritizer/pkg/log"
)

type implUseCase struct {
	l        pkgLog.Logger
	repo     repository.TaskRepository
	calendar Calendar
	dateMath *datemath.Parser
	cfg      Config
	now      func() time.Time

	mu    sync.Mutex
	queue *prioritizer.Queue
}

// New creates a new task UseCase instance with an empty queue.
// repo and calendar may be nil; persistence and calendar export are then skipped.
func New(
	l pkgLog.Logger,
	repo repository.TaskRepository,
	calendar Calendar,
	dateMath *datemath.Parser,
	cfg Config,
) task.UseCase {
	return &implUseCase{
		l:        l,
		repo:     repo,
		calendar: calendar,
		dateMath: dateMath,
		cfg:      cfg.withDefaults(),
		now:      time.Now,
		queue:    &prioritizer.Queue{},
	}
}
