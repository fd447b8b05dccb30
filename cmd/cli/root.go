package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"task-prioritizer/config"
	"task-prioritizer/internal/task"
	cliDelivery "task-prioritizer/internal/task/delivery/cli"
	"task-prioritizer/internal/task/repository"
	sqliteRepo "task-prioritizer/internal/task/repository/sqlite"
	"task-prioritizer/internal/task/usecase"
	"task-prioritizer/pkg/datemath"
	"task-prioritizer/pkg/gcalendar"
	"task-prioritizer/pkg/log"
)

// app is what every subcommand runs against.
type app struct {
	l       log.Logger
	repo    repository.TaskRepository
	uc      task.UseCase
	handler cliDelivery.Handler
}

func newRootCmd() *cobra.Command {
	var a app

	root := &cobra.Command{
		Use:   "prioritizer",
		Short: "Order your tasks by how much slack they have left",
		Long: `Queue tasks with free-text estimates and due dates, then list them in
the order they should be worked on, or export them to CSV and Google Calendar.

Examples:
  prioritizer add
  prioritizer list
  prioritizer export --calendar --start "2024-05-02T09:00:00+07:00"
`,
		SilenceUsage: true,
	}

	root.AddCommand(newAddCmd(&a), newListCmd(&a), newExportCmd(&a))
	return root
}

func newAddCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "add",
		Short: "Interactively queue new tasks",
		Long:  "Ask for tasks one at a time until you answer 'done', 'nothing' or leave the name blank.",
		RunE: a.run(false, func(ctx context.Context) error {
			if !cliDelivery.IsInteractive() {
				return fmt.Errorf("add needs an interactive terminal")
			}
			added, err := a.handler.Add(ctx)
			a.l.Infof(ctx, "add: queued %d tasks", added)
			return err
		}),
	}
}

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show the queue in work order",
		RunE: a.run(false, func(ctx context.Context) error {
			return a.handler.List(ctx)
		}),
	}
}

func newExportCmd(a *app) *cobra.Command {
	var (
		csvPath  string
		calendar bool
		start    string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the ordered queue to CSV and optionally Google Calendar",
		RunE: a.run(true, func(ctx context.Context) error {
			in := task.ExportInput{CSVPath: csvPath, Calendar: calendar}
			if start != "" {
				t, err := time.Parse(time.RFC3339, start)
				if err != nil {
					return fmt.Errorf("--start must be RFC 3339: %w", err)
				}
				in.Start = t
			}
			return a.handler.Export(ctx, in)
		}),
	}

	cmd.Flags().StringVarP(&csvPath, "output", "o", "", "CSV file to write (default from config)")
	cmd.Flags().BoolVar(&calendar, "calendar", false, "Also book one calendar block per task")
	cmd.Flags().StringVar(&start, "start", "", "Start of the first calendar block, RFC 3339 (default now)")
	return cmd
}

// run wraps a subcommand body so the queue is loaded before it and saved
// after it, even when the body fails part way.
func (a *app) run(withCalendar bool, fn func(ctx context.Context) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if err := a.open(ctx, withCalendar); err != nil {
			return err
		}
		return errors.Join(fn(ctx), a.close(ctx))
	}
}

// open loads config and the stored queue. The calendar client is only built
// for commands that can use it.
func (a *app) open(ctx context.Context, withCalendar bool) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	a.l = log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	dateMathParser, err := datemath.NewParser(cfg.Prioritizer.Timezone)
	if err != nil {
		return err
	}

	a.repo, err = sqliteRepo.New(cfg.Storage.SQLitePath, a.l)
	if err != nil {
		return err
	}

	var cal usecase.Calendar
	if withCalendar && cfg.GoogleCalendar.CredentialsPath != "" {
		client, calErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath, cfg.GoogleCalendar.TokenPath)
		if calErr != nil {
			a.l.Warnf(ctx, "Google Calendar not available: %v", calErr)
		} else {
			cal = client
		}
	}

	a.uc = usecase.New(a.l, a.repo, cal, dateMathParser, usecase.Config{
		DefaultEstimate: cfg.Prioritizer.DefaultEstimate,
		DefaultDue:      cfg.Prioritizer.DefaultDue,
		CSVPath:         cfg.Export.CSVPath,
		CalendarID:      cfg.Export.CalendarID,
		Timezone:        cfg.Prioritizer.CalendarTimezone(),
		MaxBlock:        cfg.Export.MaxBlock,
	})
	if _, err := a.uc.Load(ctx); err != nil {
		a.repo.Close()
		return err
	}

	a.handler = cliDelivery.New(a.l, a.uc, cliDelivery.NewPrompter(), os.Stdout)
	return nil
}

// close saves the queue and releases the store.
func (a *app) close(ctx context.Context) error {
	defer a.repo.Close()
	return a.uc.Save(ctx)
}
