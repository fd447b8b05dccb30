package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"task-prioritizer/internal/model"
	"task-prioritizer/internal/task/repository"
	"task-prioritizer/internal/task/repository/sqlite"
	pkgLog "task-prioritizer/pkg/log"
)

func newTestRepo(t *testing.T) repository.TaskRepository {
	t.Helper()
	repo, err := sqlite.New(filepath.Join(t.TempDir(), "tasks.db"), pkgLog.NewNop())
	if err != nil {
		t.Fatalf("sqlite.New: %v", err)
	}
	t.Cleanup(func() { repo.Close() })
	return repo
}

func TestReplaceAndList(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	due := time.Date(2024, 5, 3, 17, 0, 0, 0, time.FixedZone("UTC+7", 7*3600))

	records := []model.Record{
		{
			Name:              "dep",
			TimeEstimate:      time.Hour,
			RemainingEstimate: time.Hour,
			DueDate:           due,
		},
		{
			Name:              "task",
			Description:       "with a dependency",
			Critical:          true,
			TimeEstimate:      3 * time.Hour,
			RemainingEstimate: 90 * time.Minute,
			DueDate:           due.AddDate(0, 0, 1),
			Dependencies: []model.Record{
				{Name: "dep", TimeEstimate: time.Hour, RemainingEstimate: time.Hour, DueDate: due},
			},
		},
	}

	if err := repo.Replace(ctx, records); err != nil {
		t.Fatalf("Replace: %v", err)
	}

	got, err := repo.List(ctx, repository.ListOptions{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("List returned %d records, want 2", len(got))
	}
	if got[0].Name != "dep" || got[1].Name != "task" {
		t.Errorf("order = [%s %s], want [dep task]", got[0].Name, got[1].Name)
	}

	task := got[1]
	if !task.Critical || task.Description != "with a dependency" {
		t.Errorf("fields not restored: %+v", task)
	}
	if task.RemainingEstimate != 90*time.Minute || task.TimeEstimate != 3*time.Hour {
		t.Errorf("estimates = %v/%v, want 3h/1h30m", task.TimeEstimate, task.RemainingEstimate)
	}
	if !task.DueDate.Equal(due.AddDate(0, 0, 1)) {
		t.Errorf("DueDate = %v, want %v", task.DueDate, due.AddDate(0, 0, 1))
	}
	if len(task.Dependencies) != 1 || task.Dependencies[0].Name != "dep" {
		t.Errorf("Dependencies = %+v, want [dep]", task.Dependencies)
	}
	if got[0].Dependencies != nil {
		t.Errorf("task without dependencies should restore nil, got %+v", got[0].Dependencies)
	}
}

func TestReplaceOverwrites(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	due := time.Date(2024, 5, 3, 0, 0, 0, 0, time.UTC)

	first := []model.Record{{Name: "a", TimeEstimate: time.Hour, RemainingEstimate: time.Hour, DueDate: due}}
	second := []model.Record{
		{Name: "b", TimeEstimate: time.Hour, RemainingEstimate: time.Hour, DueDate: due},
		{Name: "c", TimeEstimate: time.Hour, RemainingEstimate: time.Hour, DueDate: due},
	}

	if err := repo.Replace(ctx, first); err != nil {
		t.Fatalf("Replace first: %v", err)
	}
	if err := repo.Replace(ctx, second); err != nil {
		t.Fatalf("Replace second: %v", err)
	}

	got, err := repo.List(ctx, repository.ListOptions{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 2 || got[0].Name != "b" {
		t.Fatalf("List after overwrite = %+v", got)
	}

	page, err := repo.List(ctx, repository.ListOptions{Limit: 1, Offset: 1})
	if err != nil {
		t.Fatalf("List page: %v", err)
	}
	if len(page) != 1 || page[0].Name != "c" {
		t.Errorf("paged List = %+v, want [c]", page)
	}
}
