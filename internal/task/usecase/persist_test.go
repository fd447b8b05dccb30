package usecase

import (
	"context"
	"errors"
	"testing"

	"task-prioritizer/internal/task"
)

func TestSaveThenLoad(t *testing.T) {
	repo := &mockRepo{}
	ctx := context.Background()

	src := newTestUseCase(t, repo, nil, Config{})
	if _, err := src.Create(ctx, task.CreateInput{Name: "design", DueDate: "in 30 days"}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := src.Create(ctx, task.CreateInput{Name: "build", DueDate: "tomorrow", Dependencies: []string{"design"}}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := src.Save(ctx); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if len(repo.stored) != 2 {
		t.Fatalf("stored %d records, want 2", len(repo.stored))
	}

	dst := newTestUseCase(t, repo, nil, Config{})
	out, err := dst.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if out.Loaded != 2 || out.Skipped != 0 {
		t.Errorf("Load = %+v, want 2 loaded", out)
	}

	list, _ := dst.List(ctx)
	if list.Count != 2 || list.Tasks[0].Name != "design" {
		t.Errorf("restored order = %+v, want design first", list.Tasks)
	}
}

func TestLoad_SkipsDuplicates(t *testing.T) {
	repo := &mockRepo{}
	ctx := context.Background()

	uc := newTestUseCase(t, repo, nil, Config{})
	if _, err := uc.Create(ctx, task.CreateInput{Name: "a"}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := uc.Save(ctx); err != nil {
		t.Fatalf("Save: %v", err)
	}

	out, err := uc.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if out.Loaded != 0 || out.Skipped != 1 {
		t.Errorf("Load = %+v, want 1 skipped", out)
	}
}

func TestLoad_ReadsInPages(t *testing.T) {
	prev := loadPageSize
	loadPageSize = 2
	t.Cleanup(func() { loadPageSize = prev })

	repo := &mockRepo{}
	ctx := context.Background()

	src := newTestUseCase(t, repo, nil, Config{})
	for _, name := range []string{"a", "b", "c", "d", "e"} {
		if _, err := src.Create(ctx, task.CreateInput{Name: name}); err != nil {
			t.Fatalf("Create %s: %v", name, err)
		}
	}
	if err := src.Save(ctx); err != nil {
		t.Fatalf("Save: %v", err)
	}

	dst := newTestUseCase(t, repo, nil, Config{})
	out, err := dst.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if out.Loaded != 5 {
		t.Errorf("Load = %+v, want 5 loaded", out)
	}

	wantOffsets := []int{0, 2, 4}
	if len(repo.pages) != len(wantOffsets) {
		t.Fatalf("List called %d times, want %d: %+v", len(repo.pages), len(wantOffsets), repo.pages)
	}
	for i, opt := range repo.pages {
		if opt.Limit != 2 || opt.Offset != wantOffsets[i] {
			t.Errorf("page %d = %+v, want limit 2 offset %d", i, opt, wantOffsets[i])
		}
	}
}

func TestPersist_RepoErrors(t *testing.T) {
	boom := errors.New("disk full")
	ctx := context.Background()

	uc := newTestUseCase(t, &mockRepo{listErr: boom, saveErr: boom}, nil, Config{})
	if _, err := uc.Load(ctx); !errors.Is(err, boom) {
		t.Errorf("Load error = %v, want %v", err, boom)
	}
	if err := uc.Save(ctx); !errors.Is(err, boom) {
		t.Errorf("Save error = %v, want %v", err, boom)
	}
}

func TestPersist_NoRepository(t *testing.T) {
	uc := newTestUseCase(t, nil, nil, Config{})
	ctx := context.Background()

	if _, err := uc.Load(ctx); err != nil {
		t.Errorf("Load without repo: %v", err)
	}
	if err := uc.Save(ctx); err != nil {
		t.Errorf("Save without repo: %v", err)
	}
}
