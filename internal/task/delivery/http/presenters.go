package http

import (
	"strings"
	"time"

	"task-prioritizer/internal/task"
	"task-prioritizer/pkg/response"
)

// --- Request DTOs ---

type createReq struct {
	Name         string   `json:"name"          binding:"required,max=255"`
	Description  string   `json:"description"   binding:"max=1000"`
	Critical     bool     `json:"critical"`
	TimeEstimate string   `json:"time_estimate" binding:"max=100"`
	DueDate      string   `json:"due_date"      binding:"max=100"`
	Dependencies []string `json:"dependencies"`
}

func (r createReq) validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return task.ErrEmptyName
	}
	return nil
}

func (r createReq) toInput() task.CreateInput {
	return task.CreateInput{
		Name:         r.Name,
		Description:  r.Description,
		Critical:     r.Critical,
		TimeEstimate: r.TimeEstimate,
		DueDate:      r.DueDate,
		Dependencies: r.Dependencies,
	}
}

// ---

// exportReq has no path field; HTTP exports always go to the configured file.
type exportReq struct {
	Calendar bool       `json:"calendar"`
	Start    *time.Time `json:"start"`
}

func (r exportReq) toInput() task.ExportInput {
	in := task.ExportInput{
		Calendar: r.Calendar,
	}
	if r.Start != nil {
		in.Start = *r.Start
	}
	return in
}

// --- Response DTOs ---

type itemResp struct {
	Rank              int               `json:"rank,omitempty"`
	Name              string            `json:"name"`
	Description       string            `json:"description,omitempty"`
	Critical          bool              `json:"critical"`
	TimeEstimate      response.Duration `json:"time_estimate"`
	RemainingEstimate response.Duration `json:"remaining_estimate"`
	DueDate           response.DateTime `json:"due_date"`
	Priority          float64           `json:"priority"`
	Dependencies      []string          `json:"dependencies,omitempty"`
}

func newItemResp(it task.Item) itemResp {
	return itemResp{
		Rank:              it.Rank,
		Name:              it.Name,
		Description:       it.Description,
		Critical:          it.Critical,
		TimeEstimate:      response.Duration(it.TimeEstimate),
		RemainingEstimate: response.Duration(it.RemainingEstimate),
		DueDate:           response.DateTime(it.DueDate),
		Priority:          it.Priority,
		Dependencies:      it.Dependencies,
	}
}

type createResp struct {
	Task itemResp `json:"task"`
}

func (h *handler) newCreateResp(o task.CreateOutput) createResp {
	return createResp{Task: newItemResp(o.Task)}
}

type listResp struct {
	Tasks []itemResp `json:"tasks"`
	Count int        `json:"count"`
}

func (h *handler) newListResp(o task.ListOutput) listResp {
	tasks := make([]itemResp, len(o.Tasks))
	for i, it := range o.Tasks {
		tasks[i] = newItemResp(it)
	}
	return listResp{Tasks: tasks, Count: o.Count}
}

type eventResp struct {
	TaskName string            `json:"task_name"`
	Start    response.DateTime `json:"start"`
	End      response.DateTime `json:"end"`
	Link     string            `json:"link,omitempty"`
}

type exportResp struct {
	CSVPath    string      `json:"csv_path"`
	Rows       int         `json:"rows"`
	Events     []eventResp `json:"events,omitempty"`
	EventCount int         `json:"event_count"`
}

func (h *handler) newExportResp(o task.ExportOutput) exportResp {
	events := make([]eventResp, len(o.Events))
	for i, e := range o.Events {
		events[i] = eventResp{
			TaskName: e.TaskName,
			Start:    response.DateTime(e.Start),
			End:      response.DateTime(e.End),
			Link:     e.Link,
		}
	}
	return exportResp{
		CSVPath:    o.CSVPath,
		Rows:       o.Rows,
		Events:     events,
		EventCount: o.EventCount,
	}
}
