package engine

import (
	"context"
	"time"
)

// AchievementDef is one entry of the fixed catalog. Unlocked is the
// predicate over the profile metrics current at evaluation time.
type AchievementDef struct {
	ID          string
	Title       string
	Description string
	Icon        string
	Unlocked    func(level, completed, streak int) bool
}

// Catalog returns the fixed 8-entry achievement catalog.
func Catalog() []AchievementDef {
	return []AchievementDef{
		{
			ID: "first-task", Title: "First Steps", Description: "Complete your first task", Icon: "🎯",
			Unlocked: func(_, completed, _ int) bool { return completed >= 1 },
		},
		{
			ID: "streak-3", Title: "Getting Started", Description: "Maintain a 3-day streak", Icon: "🔥",
			Unlocked: func(_, _, streak int) bool { return streak >= 3 },
		},
		{
			ID: "streak-7", Title: "One Week Warrior", Description: "Maintain a 7-day streak", Icon: "⚡",
			Unlocked: func(_, _, streak int) bool { return streak >= 7 },
		},
		{
			ID: "streak-30", Title: "Monthly Master", Description: "Maintain a 30-day streak", Icon: "💪",
			Unlocked: func(_, _, streak int) bool { return streak >= 30 },
		},
		{
			ID: "level-5", Title: "Rising Star", Description: "Reach level 5", Icon: "⭐",
			Unlocked: func(level, _, _ int) bool { return level >= 5 },
		},
		{
			ID: "level-10", Title: "Dedicated Achiever", Description: "Reach level 10", Icon: "🌟",
			Unlocked: func(level, _, _ int) bool { return level >= 10 },
		},
		{
			ID: "tasks-50", Title: "Task Crusher", Description: "Complete 50 tasks", Icon: "💥",
			Unlocked: func(_, completed, _ int) bool { return completed >= 50 },
		},
		{
			ID: "tasks-100", Title: "Century Club", Description: "Complete 100 tasks", Icon: "🏆",
			Unlocked: func(_, completed, _ int) bool { return completed >= 100 },
		},
	}
}

// AchievementStatus pairs a catalog entry with its persisted unlock state.
type AchievementStatus struct {
	AchievementDef
	Done       bool
	UnlockedAt *time.Time
}

// Achievements returns the whole catalog with unlock state for display.
func (s *Service) Achievements(ctx context.Context) ([]AchievementStatus, error) {
	rows, err := s.achievements.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]AchievementStatus, 0, 8)
	for _, def := range Catalog() {
		st := AchievementStatus{AchievementDef: def}
		if row, ok := rows[def.ID]; ok && row.Unlocked {
			st.Done = true
			st.UnlockedAt = row.UnlockedAt
		}
		out = append(out, st)
	}
	return out, nil
}

// evaluateAchievements runs one unlock pass after a completion event.
// Unlocks are monotonic; already-unlocked entries are skipped. Several
// entries can unlock in the same pass.
func (s *Service) evaluateAchievements(ctx context.Context, level, completed, streak int) ([]AchievementDef, error) {
	var unlocked []AchievementDef
	now := s.clock.Now()
	for _, def := range Catalog() {
		row, err := s.achievements.Get(ctx, def.ID)
		if err != nil {
			return nil, err
		}
		if row != nil && row.Unlocked {
			continue
		}
		if !def.Unlocked(level, completed, streak) {
			continue
		}
		if err := s.achievements.Unlock(ctx, def.ID, now); err != nil {
			return nil, err
		}
		unlocked = append(unlocked, def)
	}
	return unlocked, nil
}
