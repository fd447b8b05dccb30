package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"task-prioritizer/internal/task"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginBottom(1)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99"))

	criticalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9")).
			Bold(true)

	itemStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))
)

const dueLayout = "Mon Jan 2 15:04"

func renderList(items []task.Item) string {
	if len(items) == 0 {
		return mutedStyle.Render("No tasks queued.")
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Here are your tasks (%d)", len(items))))
	b.WriteString("\n")
	b.WriteString(headerStyle.Render(fmt.Sprintf("%4s  %-30s  %-16s  %10s  %s", "#", "task", "due", "left", "after")))
	for _, it := range items {
		line := fmt.Sprintf("%4d  %-30s  %-16s  %10s  %s",
			it.Rank, truncate(it.Name, 30), it.DueDate.Format(dueLayout),
			shortDuration(it.RemainingEstimate), strings.Join(it.Dependencies, ", "))
		style := itemStyle
		if it.Critical {
			style = criticalStyle
		}
		b.WriteString("\n")
		b.WriteString(style.Render(line))
	}
	return b.String()
}

func renderCreated(it task.Item) string {
	return successStyle.Render(fmt.Sprintf("Queued %q: %s of work, due %s", it.Name,
		shortDuration(it.RemainingEstimate), it.DueDate.Format(dueLayout)))
}

func renderExport(out task.ExportOutput) string {
	msg := fmt.Sprintf("Wrote %d tasks to %s", out.Rows, out.CSVPath)
	if out.EventCount > 0 {
		msg += fmt.Sprintf(", booked %d calendar events", out.EventCount)
	}
	return successStyle.Render(msg)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

// shortDuration renders whole minutes, e.g. "2h", "1h30m", "20m".
func shortDuration(d time.Duration) string {
	d = d.Round(time.Minute)
	h, m := int(d.Hours()), int(d.Minutes())%60
	switch {
	case h == 0:
		return fmt.Sprintf("%dm", m)
	case m == 0:
		return fmt.Sprintf("%dh", h)
	}
	return fmt.Sprintf("%dh%dm", h, m)
}
