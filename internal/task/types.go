package task

import "time"

// CreateInput is a raw, human-entered task.
type CreateInput struct {
	Name         string
	Description  string
	Critical     bool
	TimeEstimate string   // e.g. "1/2 day"; empty uses the configured default
	DueDate      string   // e.g. "in 8 days"; empty uses the configured default
	Dependencies []string // names of tasks already in the queue
}

// Item is a queued task as presented to callers.
type Item struct {
	Rank              int
	Name              string
	Description       string
	Critical          bool
	TimeEstimate      time.Duration
	RemainingEstimate time.Duration
	DueDate           time.Time
	Priority          float64
	Dependencies      []string
}

// CreateOutput is the result of queuing a task.
type CreateOutput struct {
	Task Item
}

// ListOutput is the ordered queue.
type ListOutput struct {
	Tasks []Item
	Count int
}

// LoadOutput reports how many persisted tasks were queued.
type LoadOutput struct {
	Loaded  int
	Skipped int
}

// ExportInput controls where the ordered queue is written.
type ExportInput struct {
	CSVPath  string    // empty uses the configured path
	Calendar bool      // also create calendar events when a calendar is configured
	Start    time.Time // first event start; zero means now
}

// ScheduledEvent is one calendar block created for a task.
type ScheduledEvent struct {
	TaskName string
	Start    time.Time
	End      time.Time
	Link     string
}

// ExportOutput summarises an export.
type ExportOutput struct {
	CSVPath    string
	Rows       int
	Events     []ScheduledEvent
	EventCount int
}
