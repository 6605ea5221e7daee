package storage

import (
	"context"
	"database/sql"
	"fmt"
)

func Migrate(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS profile (
			key TEXT PRIMARY KEY,
			level INTEGER DEFAULT 1,
			xp INTEGER DEFAULT 0,
			xp_to_next INTEGER DEFAULT 100,
			total_xp INTEGER DEFAULT 0,
			current_streak INTEGER DEFAULT 0,
			longest_streak INTEGER DEFAULT 0,
			total_completed INTEGER DEFAULT 0,
			joined_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);`,
		`CREATE TABLE IF NOT EXISTS tasks (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			description TEXT,
			category TEXT NOT NULL,
			recurrence TEXT NOT NULL,
			selected_days TEXT,
			difficulty INTEGER DEFAULT 1,
			completed INTEGER DEFAULT 0,
			completed_at DATETIME,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);`,
		`CREATE TABLE IF NOT EXISTS daily_stats (
			day TEXT PRIMARY KEY,
			tasks_completed INTEGER NOT NULL,
			total_tasks INTEGER NOT NULL,
			xp_earned INTEGER NOT NULL,
			categories TEXT
		);`,
		`CREATE TABLE IF NOT EXISTS achievements (
			id TEXT PRIMARY KEY,
			unlocked INTEGER DEFAULT 0,
			unlocked_at DATETIME
		);`,
		// Per-completion award log; needed so uncompletion can deduct the
		// exact XP that was granted (including the streak bonus).
		`CREATE TABLE IF NOT EXISTS task_completions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			task_id INTEGER NOT NULL,
			completed_at DATETIME NOT NULL,
			xp_awarded INTEGER NOT NULL,
			FOREIGN KEY(task_id) REFERENCES tasks(id)
		);`,
		`CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_tasks_completed ON tasks(completed);`,
		`CREATE INDEX IF NOT EXISTS idx_task_completions_task_id ON task_completions(task_id, completed_at);`,
	}

	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
