package estimate

import "sort"

// Selection tracks which labor tasks are chosen during one estimate-builder
// session, keyed by task name. Hour edits survive deselecting and reselecting
// the same task within the session; persisting or discarding that memory
// across sessions is the caller's concern.
type Selection struct {
	tasks map[string]LaborTask
	hours map[string]float64 // customized hours by task name
}

// NewSelection returns an empty task selection.
func NewSelection() *Selection {
	return &Selection{
		tasks: make(map[string]LaborTask),
		hours: make(map[string]float64),
	}
}

// Toggle flips membership for def's name. When the task becomes selected it
// starts from def, except that hours the user customized earlier in the
// session carry over.
func (s *Selection) Toggle(def LaborTask) {
	if _, ok := s.tasks[def.Name]; ok {
		delete(s.tasks, def.Name)
		return
	}

	task := def
	if h, ok := s.hours[def.Name]; ok {
		task.Hours = h
	}
	s.tasks[def.Name] = task
}

// SetHours records a customized hours value for the named task. The value is
// remembered even while the task is deselected.
func (s *Selection) SetHours(name string, hours float64) {
	hours = Sanitize(hours)
	s.hours[name] = hours

	if t, ok := s.tasks[name]; ok {
		t.Hours = hours
		s.tasks[name] = t
	}
}

// Contains reports whether the named task is currently selected.
func (s *Selection) Contains(name string) bool {
	_, ok := s.tasks[name]
	return ok
}

// Selected returns the selected tasks ordered by name.
func (s *Selection) Selected() []LaborTask {
	out := make([]LaborTask, 0, len(s.tasks))
	for _, t := range s.tasks {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Totals rolls up the selected tasks.
func (s *Selection) Totals(includeMaterials bool) ProjectTotals {
	return SumTasks(s.Selected(), includeMaterials)
}
