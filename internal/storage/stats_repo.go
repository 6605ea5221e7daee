package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
)

type StatsRepo struct {
	db *sql.DB
}

func NewStatsRepo(db *sql.DB) *StatsRepo {
	return &StatsRepo{db: db}
}

// Insert appends a daily record. The day column is the primary key and a
// conflicting insert is ignored, so an at-least-once rollover trigger can
// never double-count a day.
func (r *StatsRepo) Insert(ctx context.Context, rec DailyStats) error {
	catJSON, err := marshalCategories(rec.Categories)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO daily_stats (day, tasks_completed, total_tasks, xp_earned, categories)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(day) DO NOTHING
	`, rec.Day, rec.TasksCompleted, rec.TotalTasks, rec.XPEarned, catJSON)
	if err != nil {
		return fmt.Errorf("stats insert: %w", err)
	}
	return nil
}

func (r *StatsRepo) Get(ctx context.Context, day string) (*DailyStats, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT day, tasks_completed, total_tasks, xp_earned, categories
		FROM daily_stats
		WHERE day = ?
	`, day)
	rec, err := scanStatsRow(row)
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// ListRecent returns up to n records, oldest first.
func (r *StatsRepo) ListRecent(ctx context.Context, n int) ([]DailyStats, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT day, tasks_completed, total_tasks, xp_earned, categories
		FROM daily_stats
		ORDER BY day DESC
		LIMIT ?
	`, n)
	if err != nil {
		return nil, fmt.Errorf("stats list: %w", err)
	}
	defer rows.Close()

	var out []DailyStats
	for rows.Next() {
		rec, err := scanStatsRow(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("stats rows: %w", err)
	}

	// Reverse into chronological order.
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out, nil
}

func marshalCategories(cats map[string]int) (*string, error) {
	if len(cats) == 0 {
		return nil, nil
	}
	data, err := json.Marshal(cats)
	if err != nil {
		return nil, fmt.Errorf("marshal categories: %w", err)
	}
	s := string(data)
	return &s, nil
}

func scanStatsRow(row scanner) (*DailyStats, error) {
	var (
		rec    DailyStats
		catRaw sql.NullString
	)
	if err := row.Scan(&rec.Day, &rec.TasksCompleted, &rec.TotalTasks, &rec.XPEarned, &catRaw); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("stats scan: %w", err)
	}
	if catRaw.Valid && catRaw.String != "" {
		if err := json.Unmarshal([]byte(catRaw.String), &rec.Categories); err != nil {
			return nil, fmt.Errorf("unmarshal categories: %w", err)
		}
	}
	return &rec, nil
}
