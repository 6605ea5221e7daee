package storage

import (
	"context"
	"database/sql"
	"fmt"
)

// RolloverApply carries every mutation of a single day rollover. It is
// applied in one transaction so readers never observe a partially rolled
// over state (stats archived but tasks not yet reset, or vice versa).
type RolloverApply struct {
	Records       []DailyStats
	CurrentStreak int
	LongestStreak int
	NewDayKey     string
}

func ApplyRollover(ctx context.Context, db *sql.DB, a RolloverApply) error {
	return WithTx(ctx, db, func(tx *sql.Tx) error {
		for _, rec := range a.Records {
			catJSON, err := marshalCategories(rec.Categories)
			if err != nil {
				return err
			}
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO daily_stats (day, tasks_completed, total_tasks, xp_earned, categories)
				VALUES (?, ?, ?, ?, ?)
				ON CONFLICT(day) DO NOTHING
			`, rec.Day, rec.TasksCompleted, rec.TotalTasks, rec.XPEarned, catJSON); err != nil {
				return fmt.Errorf("rollover stats insert: %w", err)
			}
		}

		// Completed one-time tasks are gone for good; their award history
		// goes with them.
		if _, err := tx.ExecContext(ctx, `
			DELETE FROM task_completions
			WHERE task_id IN (SELECT id FROM tasks WHERE recurrence = 'one_time' AND completed = 1)
		`); err != nil {
			return fmt.Errorf("rollover prune completions: %w", err)
		}
		if _, err := tx.ExecContext(ctx, `
			DELETE FROM tasks WHERE recurrence = 'one_time' AND completed = 1
		`); err != nil {
			return fmt.Errorf("rollover prune tasks: %w", err)
		}

		// The reset is uniform: recurrence only affects visibility, not
		// stored completion state.
		if _, err := tx.ExecContext(ctx, `
			UPDATE tasks SET completed = 0, completed_at = NULL
		`); err != nil {
			return fmt.Errorf("rollover reset tasks: %w", err)
		}

		if _, err := tx.ExecContext(ctx, `
			UPDATE profile SET current_streak = ?, longest_streak = ? WHERE key = ?
		`, a.CurrentStreak, a.LongestStreak, MainProfileKey); err != nil {
			return fmt.Errorf("rollover streak update: %w", err)
		}

		if _, err := tx.ExecContext(ctx, `
			INSERT INTO meta (key, value) VALUES (?, ?)
			ON CONFLICT(key) DO UPDATE SET value = excluded.value
		`, MetaLastRolloverDay, a.NewDayKey); err != nil {
			return fmt.Errorf("rollover day key: %w", err)
		}

		return nil
	})
}
