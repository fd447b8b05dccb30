package model

import (
	"time"

	"task-prioritizer/pkg/datemath"
)

// Score computes a task's priority at instant now. Lower values sort first.
//
// The slack ratio is the time left until the end of the due day divided by
// the remaining effort. Critical tasks are negated so they lead at equal
// slack; once slack is used up (ratio <= 0) the sign flips, which puts
// overdue critical tasks first and overdue non-critical tasks last.
func Score(critical bool, remaining time.Duration, due time.Time, now time.Time) (float64, error) {
	if due.IsZero() {
		return 0, ErrMissingDueDate
	}
	if remaining <= 0 {
		return 0, ErrNonPositiveEstimate
	}

	slack := datemath.EndOfDay(due).Sub(now)
	ratio := slack.Seconds() / remaining.Seconds()

	modifier := 1.0
	if critical {
		modifier = -1.0
	}
	if ratio <= 0 {
		modifier = -modifier
	}

	return modifier * ratio, nil
}
