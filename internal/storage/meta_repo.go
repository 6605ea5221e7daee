package storage

import (
	"context"
	"database/sql"
	"fmt"
)

// MetaLastRolloverDay is the idempotency key guarding the daily rollover.
const MetaLastRolloverDay = "last_rollover_day"

type MetaRepo struct {
	db *sql.DB
}

func NewMetaRepo(db *sql.DB) *MetaRepo {
	return &MetaRepo{db: db}
}

func (r *MetaRepo) Get(ctx context.Context, key string) (string, bool, error) {
	row := r.db.QueryRowContext(ctx, `SELECT value FROM meta WHERE key = ?`, key)
	var v string
	if err := row.Scan(&v); err != nil {
		if err == sql.ErrNoRows {
			return "", false, nil
		}
		return "", false, fmt.Errorf("meta get: %w", err)
	}
	return v, true, nil
}

func (r *MetaRepo) Set(ctx context.Context, key, value string) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO meta (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("meta set: %w", err)
	}
	return nil
}
