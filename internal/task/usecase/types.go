package usecase

import (
	"context"
	"time"

	"task-prioritizer/pkg/gcalendar"
)

// Calendar is the part of the Google Calendar client the export needs.
type Calendar interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
	ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error)
}

// Config holds the intake defaults and export settings.
type Config struct {
	DefaultEstimate string        // raw estimate used when none is entered
	DefaultDue      string        // raw due date used when none is entered
	CSVPath         string        // default CSV export path
	CalendarID      string        // Google Calendar id, "primary" when empty
	Timezone        string        // IANA zone sent with calendar events; empty relies on timestamp offsets
	MaxBlock        time.Duration // longest calendar block per task
}

// loadPageSize is how many stored tasks Load reads per repository call.
var loadPageSize = 200

const (
	busyLookahead   = 30 * 24 * time.Hour
	defaultEstimate = "20 minutes"
	defaultDue      = "in 1 year"
	defaultCSVPath  = "tasks.csv"
	defaultMaxBlock = 8 * time.Hour
)

func (c Config) withDefaults() Config {
	if c.DefaultEstimate == "" {
		c.DefaultEstimate = defaultEstimate
	}
	if c.DefaultDue == "" {
		c.DefaultDue = defaultDue
	}
	if c.CSVPath == "" {
		c.CSVPath = defaultCSVPath
	}
	if c.CalendarID == "" {
		c.CalendarID = "primary"
	}
	if c.MaxBlock <= 0 {
		c.MaxBlock = defaultMaxBlock
	}
	return c
}

// block is one scheduled slot of the export.
type block struct {
	start time.Time
	end   time.Time
}

var csvHeader = []string{
	"rank", "name", "description", "critical", "time_estimate",
	"remaining_estimate", "due_date", "priority", "dependencies",
}
