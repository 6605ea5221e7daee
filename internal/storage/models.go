package storage

import "time"

type Profile struct {
	Key            string
	Level          int
	XP             int
	XPToNext       int
	TotalXP        int
	CurrentStreak  int
	LongestStreak  int
	TotalCompleted int
	JoinedAt       time.Time
}

type Task struct {
	ID          int64
	Name        string
	Description *string
	Category    string
	Recurrence  string
	// SelectedDays holds weekday indices (0=Sunday..6=Saturday) for
	// selected-days recurrence. Stored as a JSON array.
	SelectedDays []int
	Difficulty   int
	Completed    bool
	CompletedAt  *time.Time
	CreatedAt    time.Time
}

// DailyStats is one archived calendar day in the reference zone.
// Rows are append-only; Day is the primary key.
type DailyStats struct {
	Day            string
	TasksCompleted int
	TotalTasks     int
	XPEarned       int
	Categories     map[string]int
}

type Achievement struct {
	ID         string
	Unlocked   bool
	UnlockedAt *time.Time
}

type TaskCompletion struct {
	ID          int64
	TaskID      int64
	CompletedAt time.Time
	XPAwarded   int
}
