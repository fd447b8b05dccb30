package usecase

import (
	"strconv"
	"strings"
	"time"

	"task-prioritizer/internal/model"
	"task-prioritizer/internal/task"
)

func toItem(rank int, t model.Task) task.Item {
	deps := t.Dependencies()
	names := make([]string, len(deps))
	for i, d := range deps {
		names[i] = d.Name()
	}
	return task.Item{
		Rank:              rank,
		Name:              t.Name(),
		Description:       t.Description(),
		Critical:          t.Critical(),
		TimeEstimate:      t.TimeEstimate(),
		RemainingEstimate: t.RemainingEstimate(),
		DueDate:           t.DueDate(),
		Priority:          t.Priority(),
		Dependencies:      names,
	}
}

func toItems(tasks []model.Task) []task.Item {
	items := make([]task.Item, len(tasks))
	for i, t := range tasks {
		items[i] = toItem(i+1, t)
	}
	return items
}

func csvRow(it task.Item) []string {
	return []string{
		strconv.Itoa(it.Rank),
		it.Name,
		it.Description,
		strconv.FormatBool(it.Critical),
		it.TimeEstimate.String(),
		it.RemainingEstimate.String(),
		it.DueDate.Format(time.RFC3339),
		strconv.FormatFloat(it.Priority, 'f', 4, 64),
		strings.Join(it.Dependencies, ";"),
	}
}

// schedule lays the items out back to back from start. Each block lasts the
// remaining estimate capped at maxBlock and is pushed past any busy slot it
// would overlap.
func schedule(items []task.Item, start time.Time, maxBlock time.Duration, busy []block) []block {
	out := make([]block, len(items))
	cursor := start
	for i, it := range items {
		length := it.RemainingEstimate
		if length > maxBlock {
			length = maxBlock
		}
		b := block{start: cursor, end: cursor.Add(length)}
		for moved := true; moved; {
			moved = false
			for _, bz := range busy {
				if b.start.Before(bz.end) && bz.start.Before(b.end) {
					b = block{start: bz.end, end: bz.end.Add(length)}
					moved = true
				}
			}
		}
		out[i] = b
		cursor = b.end
	}
	return out
}
