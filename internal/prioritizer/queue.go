// Package prioritizer holds the working set of tasks and orders it.
package prioritizer

import (
	"errors"
	"fmt"

	"task-prioritizer/internal/model"
)

// ErrDependencyCycle is returned for tasks whose dependencies would make
// the queue's dependency graph cyclic. Such tasks are not inserted.
var ErrDependencyCycle = errors.New("dependency cycle")

// Queue is an insertion-ordered set of tasks. The zero value is ready to use.
type Queue struct {
	tasks []model.Task
}

// New returns a queue holding tasks, subject to the same rules as Insert.
func New(tasks ...model.Task) (*Queue, error) {
	q := &Queue{}
	items := make([]any, len(tasks))
	for i, t := range tasks {
		items[i] = t
	}
	return q, q.Insert(items...)
}

// Insert appends every model.Task (or non-nil *model.Task) in items.
// Other values are ignored. A task that would close a dependency cycle is
// skipped and reported in the returned error; the rest are still added.
func (q *Queue) Insert(items ...any) error {
	var errs []error
	for _, item := range items {
		var t model.Task
		switch v := item.(type) {
		case model.Task:
			t = v
		case *model.Task:
			if v == nil {
				continue
			}
			t = *v
		default:
			continue
		}

		if q.closesCycle(t) {
			errs = append(errs, fmt.Errorf("task %q: %w", t.Name(), ErrDependencyCycle))
			continue
		}
		q.tasks = append(q.tasks, t.Clone())
	}
	return errors.Join(errs...)
}

// Len returns the number of queued tasks.
func (q *Queue) Len() int {
	return len(q.tasks)
}

// Tasks returns the working set in insertion order.
func (q *Queue) Tasks() []model.Task {
	out := make([]model.Task, len(q.tasks))
	for i, t := range q.tasks {
		out[i] = t.Clone()
	}
	return out
}

// Find returns the first queued task called name.
func (q *Queue) Find(name string) (model.Task, bool) {
	for _, t := range q.tasks {
		if t.Name() == name {
			return t.Clone(), true
		}
	}
	return model.Task{}, false
}

// Sorted returns a new slice with the working set ordered so that every
// task comes after the queued tasks it depends on, and otherwise by
// ascending priority. Ties keep insertion order, so with no dependencies
// between queued tasks this is a stable sort by priority.
func (q *Queue) Sorted() []model.Task {
	n := len(q.tasks)
	blockers := make([]int, n)
	dependents := make([][]int, n)
	for i := range q.tasks {
		for j := range q.tasks {
			if i != j && q.tasks[i].DependsOn(q.tasks[j]) {
				blockers[i]++
				dependents[j] = append(dependents[j], i)
			}
		}
	}

	out := make([]model.Task, 0, n)
	done := make([]bool, n)
	for len(out) < n {
		next := -1
		for i := range q.tasks {
			if done[i] || blockers[i] > 0 {
				continue
			}
			if next == -1 || q.tasks[i].Priority() < q.tasks[next].Priority() {
				next = i
			}
		}
		if next == -1 {
			// only reachable with a cycle, which Insert rejects
			for i := range q.tasks {
				if !done[i] {
					out = append(out, q.tasks[i].Clone())
				}
			}
			break
		}
		done[next] = true
		out = append(out, q.tasks[next].Clone())
		for _, d := range dependents[next] {
			blockers[d]--
		}
	}

	return out
}

// closesCycle reports whether adding t would make some task reachable from
// itself through dependency edges.
func (q *Queue) closesCycle(t model.Task) bool {
	if t.DependsOn(t) {
		return true
	}

	all := append(q.Tasks(), t)

	edges := make([][]int, len(all))
	for i := range all {
		for j := range all {
			if i != j && all[i].DependsOn(all[j]) {
				edges[i] = append(edges[i], j)
			}
		}
	}

	const (
		unvisited = iota
		visiting
		visited
	)
	state := make([]int, len(all))
	var visit func(int) bool
	visit = func(i int) bool {
		state[i] = visiting
		for _, j := range edges[i] {
			if state[j] == visiting {
				return true
			}
			if state[j] == unvisited && visit(j) {
				return true
			}
		}
		state[i] = visited
		return false
	}
	for i := range all {
		if state[i] == unvisited && visit(i) {
			return true
		}
	}
	return false
}
