package model

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"task-prioritizer/pkg/duration"
)

// DefaultEstimate is the effort assumed when none is given.
const DefaultEstimate = duration.Default

// Comparable is anything that can be ordered against a Task.
type Comparable interface {
	Name() string
	Priority() float64
}

// Dependent is a Comparable that also lists the tasks it waits on.
type Dependent interface {
	Comparable
	Dependencies() []Task
}

// Input is the fully-resolved field set a Task is built from.
// Durations and dates must already be parsed.
type Input struct {
	Name        string
	Description string
	Critical    bool

	// TimeEstimate defaults to DefaultEstimate when zero.
	TimeEstimate time.Duration
	// RemainingEstimate defaults to TimeEstimate when zero.
	RemainingEstimate time.Duration
	// DueDate is required; the zero time means "unknown".
	DueDate time.Time

	// Dependencies are copied with Clone, so later changes to the
	// originals do not reach the new task.
	Dependencies []Task
}

// Task is an immutable unit of work with a priority computed once, at
// construction.
type Task struct {
	name              string
	description       string
	critical          bool
	timeEstimate      time.Duration
	remainingEstimate time.Duration
	dueDate           time.Time
	dependencies      []Task
	priority          float64
}

// New builds a task and scores it against the current time.
func New(in Input) (Task, error) {
	return NewAt(in, time.Now())
}

// NewAt builds a task and scores it against now.
func NewAt(in Input, now time.Time) (Task, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return Task{}, ErrEmptyName
	}
	if in.TimeEstimate < 0 || in.RemainingEstimate < 0 {
		return Task{}, fmt.Errorf("task %q: %w", name, ErrNegativeEstimate)
	}

	t := Task{
		name:              name,
		description:       in.Description,
		critical:          in.Critical,
		timeEstimate:      in.TimeEstimate,
		remainingEstimate: in.RemainingEstimate,
		dueDate:           in.DueDate,
	}
	if t.timeEstimate == 0 {
		t.timeEstimate = DefaultEstimate
	}
	if t.remainingEstimate == 0 {
		t.remainingEstimate = t.timeEstimate
	}

	if len(in.Dependencies) > 0 {
		t.dependencies = make([]Task, len(in.Dependencies))
		for i, dep := range in.Dependencies {
			t.dependencies[i] = dep.Clone()
		}
	}

	priority, err := Score(t.critical, t.remainingEstimate, t.dueDate, now)
	if err != nil {
		return Task{}, fmt.Errorf("task %q: %w", name, err)
	}
	t.priority = priority

	return t, nil
}

// Clone returns a deep copy of t, including its dependencies, all the way
// down. The priority snapshot is kept as is.
func (t Task) Clone() Task {
	c := t
	if t.dependencies != nil {
		c.dependencies = make([]Task, len(t.dependencies))
		for i, dep := range t.dependencies {
			c.dependencies[i] = dep.Clone()
		}
	}
	return c
}

func (t Task) Name() string                     { return t.name }
func (t Task) Description() string              { return t.description }
func (t Task) Critical() bool                   { return t.critical }
func (t Task) TimeEstimate() time.Duration      { return t.timeEstimate }
func (t Task) RemainingEstimate() time.Duration { return t.remainingEstimate }
func (t Task) DueDate() time.Time               { return t.dueDate }
func (t Task) Priority() float64                { return t.priority }

// Dependencies returns a copy of the tasks t waits on.
func (t Task) Dependencies() []Task {
	if len(t.dependencies) == 0 {
		return nil
	}
	out := make([]Task, len(t.dependencies))
	for i, dep := range t.dependencies {
		out[i] = dep.Clone()
	}
	return out
}

// Equal reports whether t and other share name and priority. Description,
// dates and dependencies do not take part.
func (t Task) Equal(other Comparable) bool {
	if isNil(other) {
		return false
	}
	return t.name == other.Name() && t.priority == other.Priority()
}

// DependsOn reports whether other is one of t's direct dependencies.
func (t Task) DependsOn(other Comparable) bool {
	if isNil(other) {
		return false
	}
	return slices.ContainsFunc(t.dependencies, func(dep Task) bool {
		return dep.Equal(other)
	})
}

// Less reports whether t sorts before other: always when t is one of
// other's dependencies, otherwise when its priority is lower.
func (t Task) Less(other Comparable) bool {
	if isNil(other) {
		return false
	}
	switch o := other.(type) {
	case *Task:
		if o.DependsOn(t) {
			return true
		}
	case Task:
		if o.DependsOn(t) {
			return true
		}
	case Dependent:
		if slices.ContainsFunc(o.Dependencies(), func(d Task) bool { return d.Equal(t) }) {
			return true
		}
	}
	return t.priority < other.Priority()
}

// isNil catches both an untyped nil and a nil *Task.
func isNil(c Comparable) bool {
	if c == nil {
		return true
	}
	p, ok := c.(*Task)
	return ok && p == nil
}

// String renders the task for logs.
func (t Task) String() string {
	return fmt.Sprintf("%s (priority=%.4f)", t.name, t.priority)
}
