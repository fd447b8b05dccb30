package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"task-prioritizer/config"
	"task-prioritizer/internal/httpserver"
	sqliteRepo "task-prioritizer/internal/task/repository/sqlite"
	"task-prioritizer/internal/task/usecase"
	"task-prioritizer/pkg/datemath"
	"task-prioritizer/pkg/gcalendar"
	"task-prioritizer/pkg/log"
)

func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Task Prioritizer API...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. DateMath parser
	dateMathParser, err := datemath.NewParser(cfg.Prioritizer.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Prioritizer.Timezone, err)
		dateMathParser, _ = datemath.NewParser("UTC")
	}

	// 4. SQLite repository
	taskRepo, err := sqliteRepo.New(cfg.Storage.SQLitePath, logger)
	if err != nil {
		logger.Errorf(ctx, "Failed to open task store: %v", err)
		return
	}
	defer taskRepo.Close()

	// 5. Google Calendar client (optional)
	var calendar usecase.Calendar
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, calErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath, cfg.GoogleCalendar.TokenPath)
		if calErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
			logger.Warn(ctx, "Run `go run scripts/gcal-auth/main.go` to generate token.json")
		} else {
			calendar = calendarClient
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	// 6. Task UseCase
	taskUC := usecase.New(logger, taskRepo, calendar, dateMathParser, usecase.Config{
		DefaultEstimate: cfg.Prioritizer.DefaultEstimate,
		DefaultDue:      cfg.Prioritizer.DefaultDue,
		CSVPath:         cfg.Export.CSVPath,
		CalendarID:      cfg.Export.CalendarID,
		Timezone:        cfg.Prioritizer.CalendarTimezone(),
		MaxBlock:        cfg.Export.MaxBlock,
	})
	if _, err := taskUC.Load(ctx); err != nil {
		logger.Errorf(ctx, "Failed to load tasks: %v", err)
		return
	}

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		ShutdownTimeout: cfg.HTTPServer.ShutdownTimeout,
		RateLimitPerMin: cfg.RateLimit.PerMin,
		TaskUseCase:     taskUC,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
	}

	// 9. Persist the queue on the way out
	if err := taskUC.Save(context.Background()); err != nil {
		logger.Errorf(ctx, "Failed to save tasks: %v", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
