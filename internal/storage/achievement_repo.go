package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

type AchievementRepo struct {
	db *sql.DB
}

func NewAchievementRepo(db *sql.DB) *AchievementRepo {
	return &AchievementRepo{db: db}
}

// Get returns nil when the row is absent; an absent row means locked.
func (r *AchievementRepo) Get(ctx context.Context, id string) (*Achievement, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, unlocked, unlocked_at FROM achievements WHERE id = ?`, id)

	var (
		a          Achievement
		unlocked   int
		unlockedAt sql.NullTime
	)
	if err := row.Scan(&a.ID, &unlocked, &unlockedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("achievement get: %w", err)
	}
	a.Unlocked = unlocked != 0
	if unlockedAt.Valid {
		v := unlockedAt.Time
		a.UnlockedAt = &v
	}
	return &a, nil
}

// Unlock is monotonic: an already-unlocked row keeps its original stamp.
func (r *AchievementRepo) Unlock(ctx context.Context, id string, at time.Time) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO achievements (id, unlocked, unlocked_at) VALUES (?, 1, ?)
		ON CONFLICT(id) DO UPDATE SET unlocked = 1, unlocked_at = COALESCE(achievements.unlocked_at, excluded.unlocked_at)
	`, id, at)
	if err != nil {
		return fmt.Errorf("achievement unlock: %w", err)
	}
	return nil
}

func (r *AchievementRepo) ListAll(ctx context.Context) (map[string]Achievement, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, unlocked, unlocked_at FROM achievements`)
	if err != nil {
		return nil, fmt.Errorf("achievement list: %w", err)
	}
	defer rows.Close()

	out := make(map[string]Achievement)
	for rows.Next() {
		var (
			a          Achievement
			unlocked   int
			unlockedAt sql.NullTime
		)
		if err := rows.Scan(&a.ID, &unlocked, &unlockedAt); err != nil {
			return nil, fmt.Errorf("achievement scan: %w", err)
		}
		a.Unlocked = unlocked != 0
		if unlockedAt.Valid {
			v := unlockedAt.Time
			a.UnlockedAt = &v
		}
		out[a.ID] = a
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("achievement rows: %w", err)
	}
	return out, nil
}
