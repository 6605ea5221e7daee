package engine

import (
	"github.com/dreamer2trader-boop/MindForge/internal/storage"
)

// EligibleOn reports whether the task's recurrence matches the weekday
// (0=Sunday..6=Saturday). Daily and one-time tasks are always eligible; a
// selected-days task with an empty set is never eligible.
func EligibleOn(t storage.Task, weekday int) bool {
	switch Recurrence(t.Recurrence) {
	case RecurrenceDaily, RecurrenceOneTime:
		return true
	case RecurrenceSelectedDays:
		for _, d := range t.SelectedDays {
			if d == weekday {
				return true
			}
		}
		return false
	default:
		return false
	}
}

type StatusFilter string

const (
	StatusAny       StatusFilter = ""
	StatusPending   StatusFilter = "pending"
	StatusCompleted StatusFilter = "completed"
)

// Filter is a composable task view filter. Criteria apply in order:
// eligibility, categories, recurrences, completion status. Empty criteria
// impose no restriction.
type Filter struct {
	Weekday     *int
	Categories  []Category
	Recurrences []Recurrence
	Status      StatusFilter
}

func FilterTasks(tasks []storage.Task, f Filter) []storage.Task {
	out := make([]storage.Task, 0, len(tasks))
	for _, t := range tasks {
		if f.Weekday != nil && !EligibleOn(t, *f.Weekday) {
			continue
		}
		if len(f.Categories) > 0 && !containsCategory(f.Categories, Category(t.Category)) {
			continue
		}
		if len(f.Recurrences) > 0 && !containsRecurrence(f.Recurrences, Recurrence(t.Recurrence)) {
			continue
		}
		switch f.Status {
		case StatusPending:
			if t.Completed {
				continue
			}
		case StatusCompleted:
			if !t.Completed {
				continue
			}
		}
		out = append(out, t)
	}
	return out
}

func containsCategory(set []Category, c Category) bool {
	for _, v := range set {
		if v == c {
			return true
		}
	}
	return false
}

func containsRecurrence(set []Recurrence, r Recurrence) bool {
	for _, v := range set {
		if v == r {
			return true
		}
	}
	return false
}
