package usecase

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"

	"task-prioritizer/internal/task"
	"task-prioritizer/pkg/gcalendar"
)

// Export writes the ordered queue to a CSV file and, when asked and a
// calendar is configured, books one calendar block per task in work order.
func (uc *implUseCase) Export(ctx context.Context, input task.ExportInput) (task.ExportOutput, error) {
	list, err := uc.List(ctx)
	if err != nil {
		return task.ExportOutput{}, err
	}
	if list.Count == 0 {
		return task.ExportOutput{}, task.ErrNothingToExport
	}

	path := input.CSVPath
	if path == "" {
		path = uc.cfg.CSVPath
	}
	if err := writeCSV(path, list.Tasks); err != nil {
		uc.l.Errorf(ctx, "Export: writeCSV failed: %v", err)
		return task.ExportOutput{}, err
	}
	uc.l.Infof(ctx, "Export: wrote %d tasks to %s", list.Count, path)

	out := task.ExportOutput{CSVPath: path, Rows: list.Count}
	if !input.Calendar {
		return out, nil
	}
	if uc.calendar == nil {
		uc.l.Warnf(ctx, "Export: calendar export requested but no calendar is configured")
		return out, nil
	}

	events, err := uc.book(ctx, list.Tasks, input)
	out.Events = events
	out.EventCount = len(events)
	return out, err
}

func (uc *implUseCase) book(ctx context.Context, items []task.Item, input task.ExportInput) ([]task.ScheduledEvent, error) {
	start := input.Start
	if start.IsZero() {
		start = uc.now()
	}

	busy, err := uc.calendar.ListEvents(ctx, gcalendar.ListEventsRequest{
		CalendarID: uc.cfg.CalendarID,
		TimeMin:    start,
		TimeMax:    start.Add(busyLookahead),
		Location:   uc.dateMath.Location(),
	})
	if err != nil {
		// booking still works, it just may overlap existing events
		uc.l.Warnf(ctx, "Export: calendar.ListEvents failed: %v", err)
	}
	busyBlocks := make([]block, 0, len(busy))
	for _, e := range busy {
		busyBlocks = append(busyBlocks, block{start: e.StartTime, end: e.EndTime})
	}

	blocks := schedule(items, start, uc.cfg.MaxBlock, busyBlocks)
	events := make([]task.ScheduledEvent, 0, len(items))
	for i, it := range items {
		req := gcalendar.CreateEventRequest{
			CalendarID:  uc.cfg.CalendarID,
			Summary:     it.Name,
			Description: it.Description,
			StartTime:   blocks[i].start,
			EndTime:     blocks[i].end,
			Timezone:    uc.cfg.Timezone,
		}
		if it.Critical {
			req.ColorID = gcalendar.ColorTomato
		}

		ev, err := uc.calendar.CreateEvent(ctx, req)
		if err != nil {
			uc.l.Errorf(ctx, "Export: calendar.CreateEvent failed for %q: %v", it.Name, err)
			return events, fmt.Errorf("create event for %q: %w", it.Name, err)
		}
		events = append(events, task.ScheduledEvent{
			TaskName: it.Name,
			Start:    blocks[i].start,
			End:      blocks[i].end,
			Link:     ev.HtmlLink,
		})
	}

	uc.l.Infof(ctx, "Export: booked %d calendar events", len(events))
	return events, nil
}

func writeCSV(path string, items []task.Item) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, it := range items {
		if err := w.Write(csvRow(it)); err != nil {
			return fmt.Errorf("write %q: %w", it.Name, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush %s: %w", path, err)
	}
	return f.Close()
}
