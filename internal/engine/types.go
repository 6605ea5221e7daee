package engine

import (
	"fmt"
	"strings"
)

type Category string

const (
	CategoryPersonal    Category = "Personal"
	CategoryTrading     Category = "Trading"
	CategoryCareer      Category = "Career"
	CategoryMindfulness Category = "Mindfulness"
	CategoryWork        Category = "Work"
	CategoryHealth      Category = "Health"
	CategoryFitness     Category = "Fitness"
)

// Categories returns the fixed catalog in display order.
func Categories() []Category {
	return []Category{
		CategoryPersonal,
		CategoryTrading,
		CategoryCareer,
		CategoryMindfulness,
		CategoryWork,
		CategoryHealth,
		CategoryFitness,
	}
}

func (c Category) IsValid() bool {
	for _, v := range Categories() {
		if c == v {
			return true
		}
	}
	return false
}

// DefaultCategory is used when user input is missing/invalid.
const DefaultCategory Category = CategoryPersonal

func ParseCategory(input string) (Category, error) {
	s := strings.TrimSpace(strings.ToLower(input))
	if s == "" {
		return DefaultCategory, nil
	}
	for _, v := range Categories() {
		if s == strings.ToLower(string(v)) {
			return v, nil
		}
	}
	return "", InvalidInputError{Reason: fmt.Sprintf("unknown category %q", input)}
}

type Recurrence string

const (
	RecurrenceDaily        Recurrence = "daily"
	RecurrenceSelectedDays Recurrence = "selected_days"
	RecurrenceOneTime      Recurrence = "one_time"
)

func (r Recurrence) IsValid() bool {
	switch r {
	case RecurrenceDaily, RecurrenceSelectedDays, RecurrenceOneTime:
		return true
	default:
		return false
	}
}

func ParseRecurrence(input string) (Recurrence, error) {
	switch strings.TrimSpace(strings.ToLower(input)) {
	case "", "daily":
		return RecurrenceDaily, nil
	case "days", "selected", "selected_days", "selected-days":
		return RecurrenceSelectedDays, nil
	case "once", "one-time", "one_time", "onetime":
		return RecurrenceOneTime, nil
	default:
		return "", InvalidInputError{Reason: fmt.Sprintf("unknown recurrence %q", input)}
	}
}

type Difficulty int

const (
	DifficultyMin Difficulty = 1
	DifficultyMax Difficulty = 5
)

func (d Difficulty) IsValid() bool {
	return d >= DifficultyMin && d <= DifficultyMax
}

// BaseXP is the XP value of a completion before any streak bonus.
func (d Difficulty) BaseXP() int {
	return int(d) * 10
}

// ValidWeekdays reports whether every index is a weekday (0=Sunday..6=Saturday).
func ValidWeekdays(days []int) bool {
	for _, d := range days {
		if d < 0 || d > 6 {
			return false
		}
	}
	return true
}
