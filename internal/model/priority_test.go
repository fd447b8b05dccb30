package model_test

import (
	"errors"
	"math"
	"testing"
	"time"

	"task-prioritizer/internal/model"
)

func TestScore(t *testing.T) {
	// now is 09:00; the end of today is 14h59m59.999999999s away.
	endOfToday := time.Date(2024, 5, 1, 23, 59, 59, 999999999, time.UTC)
	slack := endOfToday.Sub(now)

	tests := []struct {
		name      string
		critical  bool
		remaining time.Duration
		due       time.Time
		want      float64
	}{
		{
			name:      "Non-critical due today",
			remaining: time.Hour,
			due:       now,
			want:      slack.Hours(),
		},
		{
			name:      "Critical due today",
			critical:  true,
			remaining: time.Hour,
			due:       now,
			want:      -slack.Hours(),
		},
		{
			name:      "Due time of day is ceiled to end of day",
			remaining: time.Hour,
			due:       time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
			want:      slack.Hours(),
		},
		{
			name:      "Overdue non-critical sorts last",
			remaining: time.Hour,
			due:       now.AddDate(0, 0, -2),
			want:      -(endOfToday.AddDate(0, 0, -2).Sub(now)).Hours(),
		},
		{
			name:      "Overdue critical sorts first",
			critical:  true,
			remaining: time.Hour,
			due:       now.AddDate(0, 0, -2),
			want:      (endOfToday.AddDate(0, 0, -2).Sub(now)).Hours(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := model.Score(tt.critical, tt.remaining, tt.due, now)
			if err != nil {
				t.Fatalf("Score() error = %v", err)
			}
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Score() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestScoreOverdueSignFlip(t *testing.T) {
	past := now.AddDate(0, 0, -1)

	critical, err := model.Score(true, time.Hour, past, now)
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	normal, err := model.Score(false, time.Hour, past, now)
	if err != nil {
		t.Fatalf("Score: %v", err)
	}

	if critical >= normal {
		t.Errorf("overdue critical (%f) should sort before overdue non-critical (%f)", critical, normal)
	}
	if normal <= 0 {
		t.Errorf("overdue non-critical should get a positive score, got %f", normal)
	}
}

func TestScoreZeroSlackCountsAsOverdue(t *testing.T) {
	due := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	atDeadline := time.Date(2024, 5, 1, 23, 59, 59, 999999999, time.UTC)

	critical, err := model.Score(true, time.Hour, due, atDeadline)
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	normal, err := model.Score(false, time.Hour, due, atDeadline)
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	if critical != 0 || normal != 0 {
		t.Errorf("zero slack should score 0 for both, got critical=%f normal=%f", critical, normal)
	}
}

func TestScoreInvalidInput(t *testing.T) {
	if _, err := model.Score(false, time.Hour, time.Time{}, now); !errors.Is(err, model.ErrMissingDueDate) {
		t.Errorf("zero due date: got %v, want ErrMissingDueDate", err)
	}
	if _, err := model.Score(false, 0, now, now); !errors.Is(err, model.ErrNonPositiveEstimate) {
		t.Errorf("zero remaining: got %v, want ErrNonPositiveEstimate", err)
	}
	if _, err := model.Score(true, -time.Minute, now, now); !errors.Is(err, model.ErrNonPositiveEstimate) {
		t.Errorf("negative remaining: got %v, want ErrNonPositiveEstimate", err)
	}
}

func TestCriticalBreaksTie(t *testing.T) {
	due := now.Add(time.Hour)
	a := mustTask(t, model.Input{Name: "A", Critical: true, TimeEstimate: time.Hour, DueDate: due})
	b := mustTask(t, model.Input{Name: "B", Critical: false, TimeEstimate: time.Hour, DueDate: due})

	if !a.Less(b) {
		t.Errorf("critical A (%f) should sort before non-critical B (%f)", a.Priority(), b.Priority())
	}
}
