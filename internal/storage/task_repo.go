package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"
)

type TaskRepo struct {
	db *sql.DB
}

func NewTaskRepo(db *sql.DB) *TaskRepo {
	return &TaskRepo{db: db}
}

type TaskInsert struct {
	Name         string
	Description  *string
	Category     string
	Recurrence   string
	SelectedDays []int
	Difficulty   int
}

func (r *TaskRepo) Insert(ctx context.Context, in TaskInsert) (int64, error) {
	daysJSON, err := marshalDays(in.SelectedDays)
	if err != nil {
		return 0, err
	}

	res, err := r.db.ExecContext(ctx, `
		INSERT INTO tasks (name, description, category, recurrence, selected_days, difficulty)
		VALUES (?, ?, ?, ?, ?, ?)
	`, in.Name, in.Description, in.Category, in.Recurrence, daysJSON, in.Difficulty)
	if err != nil {
		return 0, fmt.Errorf("task insert: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("task last insert id: %w", err)
	}
	return id, nil
}

func (r *TaskRepo) Get(ctx context.Context, id int64) (*Task, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, description, category, recurrence, selected_days, difficulty, completed, completed_at, created_at
		FROM tasks
		WHERE id = ?
	`, id)
	return scanTaskRow(row)
}

func (r *TaskRepo) ListAll(ctx context.Context) ([]Task, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, description, category, recurrence, selected_days, difficulty, completed, completed_at, created_at
		FROM tasks
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("task list: %w", err)
	}
	defer rows.Close()

	var out []Task
	for rows.Next() {
		t, err := scanTaskRow(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("task list rows: %w", err)
	}
	return out, nil
}

// TaskUpdate replaces the mutable fields of a task. Nil fields are left
// untouched; SelectedDays is only rewritten when Recurrence is set.
type TaskUpdate struct {
	Name         *string
	Description  *string
	Category     *string
	Recurrence   *string
	SelectedDays []int
	Difficulty   *int
}

func (r *TaskRepo) Update(ctx context.Context, id int64, u TaskUpdate) error {
	t, err := r.Get(ctx, id)
	if err != nil {
		return err
	}
	if t == nil {
		return nil
	}

	if u.Name != nil {
		t.Name = *u.Name
	}
	if u.Description != nil {
		t.Description = u.Description
	}
	if u.Category != nil {
		t.Category = *u.Category
	}
	if u.Recurrence != nil {
		t.Recurrence = *u.Recurrence
		t.SelectedDays = u.SelectedDays
	}
	if u.Difficulty != nil {
		t.Difficulty = *u.Difficulty
	}

	daysJSON, err := marshalDays(t.SelectedDays)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, `
		UPDATE tasks
		SET name = ?, description = ?, category = ?, recurrence = ?, selected_days = ?, difficulty = ?
		WHERE id = ?
	`, t.Name, t.Description, t.Category, t.Recurrence, daysJSON, t.Difficulty, id)
	if err != nil {
		return fmt.Errorf("task update: %w", err)
	}
	return nil
}

func (r *TaskRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM task_completions WHERE task_id = ?`, id); err != nil {
		return fmt.Errorf("task delete completions: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id); err != nil {
		return fmt.Errorf("task delete: %w", err)
	}
	return nil
}

// SetCompleted stamps or clears the completion state. A nil completedAt
// clears the flag.
func (r *TaskRepo) SetCompleted(ctx context.Context, id int64, completedAt *time.Time) error {
	completed := 0
	if completedAt != nil {
		completed = 1
	}
	_, err := r.db.ExecContext(ctx, `UPDATE tasks SET completed = ?, completed_at = ? WHERE id = ?`, completed, completedAt, id)
	if err != nil {
		return fmt.Errorf("task set completed: %w", err)
	}
	return nil
}

func marshalDays(days []int) (*string, error) {
	if len(days) == 0 {
		return nil, nil
	}
	data, err := json.Marshal(days)
	if err != nil {
		return nil, fmt.Errorf("marshal selected days: %w", err)
	}
	s := string(data)
	return &s, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTaskRow(row scanner) (*Task, error) {
	var (
		id          int64
		name        string
		description sql.NullString
		category    string
		recurrence  string
		daysRaw     sql.NullString
		difficulty  int
		completed   int
		completedAt sql.NullTime
		createdAt   time.Time
	)

	if err := row.Scan(&id, &name, &description, &category, &recurrence, &daysRaw, &difficulty, &completed, &completedAt, &createdAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("task scan: %w", err)
	}

	var desc *string
	if description.Valid {
		v := description.String
		desc = &v
	}
	var comp *time.Time
	if completedAt.Valid {
		v := completedAt.Time
		comp = &v
	}
	var days []int
	if daysRaw.Valid && daysRaw.String != "" {
		if err := json.Unmarshal([]byte(daysRaw.String), &days); err != nil {
			return nil, fmt.Errorf("unmarshal selected days: %w", err)
		}
	}

	return &Task{
		ID:           id,
		Name:         name,
		Description:  desc,
		Category:     category,
		Recurrence:   recurrence,
		SelectedDays: days,
		Difficulty:   difficulty,
		Completed:    completed != 0,
		CompletedAt:  comp,
		CreatedAt:    createdAt,
	}, nil
}
