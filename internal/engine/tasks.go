package engine

import (
	"context"
	"sort"

	"github.com/dreamer2trader-boop/MindForge/internal/storage"
)

type AddTaskInput struct {
	Name         string
	Description  string
	Category     Category
	Recurrence   Recurrence
	SelectedDays []int
	Difficulty   Difficulty
}

func (s *Service) AddTask(ctx context.Context, in AddTaskInput) (*storage.Task, error) {
	name, err := normalizeName(in.Name)
	if err != nil {
		return nil, err
	}
	if !in.Difficulty.IsValid() {
		return nil, InvalidInputError{Reason: "difficulty must be between 1 and 5"}
	}
	cat := in.Category
	if !cat.IsValid() {
		cat = DefaultCategory
	}
	rec := in.Recurrence
	if !rec.IsValid() {
		rec = RecurrenceDaily
	}
	days, err := normalizeDays(rec, in.SelectedDays)
	if err != nil {
		return nil, err
	}

	var desc *string
	if in.Description != "" {
		desc = &in.Description
	}

	id, err := s.tasks.Insert(ctx, storage.TaskInsert{
		Name:         name,
		Description:  desc,
		Category:     string(cat),
		Recurrence:   string(rec),
		SelectedDays: days,
		Difficulty:   int(in.Difficulty),
	})
	if err != nil {
		return nil, err
	}
	return s.tasks.Get(ctx, id)
}

// EditTaskInput patches the mutable fields of a task. Nil fields are left
// as they are; changing the recurrence also replaces the weekday set.
type EditTaskInput struct {
	Name         *string
	Description  *string
	Category     *Category
	Recurrence   *Recurrence
	SelectedDays []int
	Difficulty   *Difficulty
}

func (s *Service) EditTask(ctx context.Context, id int64, in EditTaskInput) (*storage.Task, error) {
	t, err := s.tasks.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, NotFoundError{ID: id}
	}

	u := storage.TaskUpdate{}
	if in.Name != nil {
		name, err := normalizeName(*in.Name)
		if err != nil {
			return nil, err
		}
		u.Name = &name
	}
	if in.Description != nil {
		u.Description = in.Description
	}
	if in.Category != nil {
		if !in.Category.IsValid() {
			return nil, InvalidInputError{Reason: "unknown category"}
		}
		c := string(*in.Category)
		u.Category = &c
	}
	if in.Recurrence != nil {
		if !in.Recurrence.IsValid() {
			return nil, InvalidInputError{Reason: "unknown recurrence"}
		}
		days, err := normalizeDays(*in.Recurrence, in.SelectedDays)
		if err != nil {
			return nil, err
		}
		r := string(*in.Recurrence)
		u.Recurrence = &r
		u.SelectedDays = days
	}
	if in.Difficulty != nil {
		if !in.Difficulty.IsValid() {
			return nil, InvalidInputError{Reason: "difficulty must be between 1 and 5"}
		}
		d := int(*in.Difficulty)
		u.Difficulty = &d
	}

	if err := s.tasks.Update(ctx, id, u); err != nil {
		return nil, err
	}
	return s.tasks.Get(ctx, id)
}

func (s *Service) RemoveTask(ctx context.Context, id int64) (*storage.Task, error) {
	t, err := s.tasks.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, NotFoundError{ID: id}
	}
	if err := s.tasks.Delete(ctx, id); err != nil {
		return nil, err
	}
	return t, nil
}

// TasksForToday returns the tasks eligible on today's weekday in the
// reference zone, narrowed by the optional filter criteria.
func (s *Service) TasksForToday(ctx context.Context, f Filter) ([]storage.Task, error) {
	all, err := s.tasks.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	weekday := WeekdayOf(s.clock.Now())
	f.Weekday = &weekday
	return FilterTasks(all, f), nil
}

func normalizeDays(rec Recurrence, days []int) ([]int, error) {
	if rec != RecurrenceSelectedDays {
		return nil, nil
	}
	if len(days) == 0 {
		return nil, InvalidInputError{Reason: "selected-days recurrence needs at least one weekday"}
	}
	if !ValidWeekdays(days) {
		return nil, InvalidInputError{Reason: "weekdays must be between 0 (Sunday) and 6 (Saturday)"}
	}
	// Dedupe and sort for a stable stored form.
	seen := map[int]bool{}
	out := make([]int, 0, len(days))
	for _, d := range days {
		if !seen[d] {
			seen[d] = true
			out = append(out, d)
		}
	}
	sort.Ints(out)
	return out, nil
}
