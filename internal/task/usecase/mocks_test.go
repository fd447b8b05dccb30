package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"task-prioritizer/internal/model"
	"task-prioritizer/internal/task/repository"
	"task-prioritizer/pkg/datemath"
	"task-prioritizer/pkg/gcalendar"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// Mock repository for testing
type mockRepo struct {
	stored  []model.Record
	listErr error
	saveErr error
	pages   []repository.ListOptions
}

func (m *mockRepo) Replace(ctx context.Context, records []model.Record) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.stored = append([]model.Record(nil), records...)
	return nil
}

func (m *mockRepo) List(ctx context.Context, opt repository.ListOptions) ([]model.Record, error) {
	m.pages = append(m.pages, opt)
	if m.listErr != nil {
		return nil, m.listErr
	}
	out := m.stored
	if opt.Offset >= len(out) {
		return nil, nil
	}
	out = out[opt.Offset:]
	if opt.Limit > 0 && opt.Limit < len(out) {
		out = out[:opt.Limit]
	}
	return out, nil
}

func (m *mockRepo) Close() error { return nil }

// Mock calendar for testing
type mockCalendar struct {
	busy    []gcalendar.Event
	created []gcalendar.CreateEventRequest
	failOn  string
	listErr error
}

func (m *mockCalendar) CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error) {
	if req.Summary == m.failOn {
		return nil, errors.New("calendar unavailable")
	}
	m.created = append(m.created, req)
	return &gcalendar.Event{
		ID:        req.Summary,
		Summary:   req.Summary,
		HtmlLink:  "https://calendar.test/" + req.Summary,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}, nil
}

func (m *mockCalendar) ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error) {
	return m.busy, m.listErr
}

var testNow = time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

func newTestUseCase(t *testing.T, repo repository.TaskRepository, cal Calendar, cfg Config) *implUseCase {
	t.Helper()
	dm, err := datemath.NewParser("UTC")
	if err != nil {
		t.Fatalf("datemath.NewParser: %v", err)
	}
	uc := New(&mockLogger{}, repo, cal, dm, cfg).(*implUseCase)
	uc.now = func() time.Time { return testNow }
	return uc
}
