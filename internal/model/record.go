package model

import "time"

// Record is the plain field set a task is persisted and rebuilt from.
// The priority is not part of it: restoring a task scores it again.
type Record struct {
	Name              string        `json:"name"`
	Description       string        `json:"description"`
	Critical          bool          `json:"critical"`
	TimeEstimate      time.Duration `json:"time_estimate"`
	RemainingEstimate time.Duration `json:"remaining_estimate"`
	DueDate           time.Time     `json:"due_date"`
	Dependencies      []Record      `json:"dependencies,omitempty"`
}

// Record returns t's field set, dependencies included.
func (t Task) Record() Record {
	r := Record{
		Name:              t.name,
		Description:       t.description,
		Critical:          t.critical,
		TimeEstimate:      t.timeEstimate,
		RemainingEstimate: t.remainingEstimate,
		DueDate:           t.dueDate,
	}
	for _, dep := range t.dependencies {
		r.Dependencies = append(r.Dependencies, dep.Record())
	}
	return r
}

// FromRecord rebuilds a task and its dependencies, scoring all of them
// against the same instant so that equal records yield equal tasks.
func FromRecord(r Record, now time.Time) (Task, error) {
	deps := make([]Task, 0, len(r.Dependencies))
	for _, dr := range r.Dependencies {
		dep, err := FromRecord(dr, now)
		if err != nil {
			return Task{}, err
		}
		deps = append(deps, dep)
	}

	return NewAt(Input{
		Name:              r.Name,
		Description:       r.Description,
		Critical:          r.Critical,
		TimeEstimate:      r.TimeEstimate,
		RemainingEstimate: r.RemainingEstimate,
		DueDate:           r.DueDate,
		Dependencies:      deps,
	}, now)
}
