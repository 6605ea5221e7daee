package storage

import (
	"context"
	"database/sql"
	"fmt"
)

const MainProfileKey = "main_user"

type ProfileRepo struct {
	db *sql.DB
}

func NewProfileRepo(db *sql.DB) *ProfileRepo {
	return &ProfileRepo{db: db}
}

func (r *ProfileRepo) Get(ctx context.Context, key string) (*Profile, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT key, level, xp, xp_to_next, total_xp, current_streak, longest_streak, total_completed, joined_at
		FROM profile
		WHERE key = ?
	`, key)

	var p Profile
	if err := row.Scan(&p.Key, &p.Level, &p.XP, &p.XPToNext, &p.TotalXP, &p.CurrentStreak, &p.LongestStreak, &p.TotalCompleted, &p.JoinedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("profile get: %w", err)
	}
	return &p, nil
}

// GetOrCreateMain returns the single user profile, seeding defaults
// (level 1, 0 XP) on first use.
func (r *ProfileRepo) GetOrCreateMain(ctx context.Context) (*Profile, error) {
	p, err := r.Get(ctx, MainProfileKey)
	if err != nil {
		return nil, err
	}
	if p != nil {
		return p, nil
	}

	if _, err := r.db.ExecContext(ctx, `INSERT INTO profile (key) VALUES (?)`, MainProfileKey); err != nil {
		return nil, fmt.Errorf("profile insert: %w", err)
	}
	return r.Get(ctx, MainProfileKey)
}

func (r *ProfileRepo) Update(ctx context.Context, p *Profile) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE profile
		SET level = ?, xp = ?, xp_to_next = ?, total_xp = ?, current_streak = ?, longest_streak = ?, total_completed = ?
		WHERE key = ?
	`, p.Level, p.XP, p.XPToNext, p.TotalXP, p.CurrentStreak, p.LongestStreak, p.TotalCompleted, p.Key)
	if err != nil {
		return fmt.Errorf("profile update: %w", err)
	}
	return nil
}
