package storage

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openStatsDB(t *testing.T) *StatsRepo {
	t.Helper()
	db, err := Open(context.Background(), filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewStatsRepo(db)
}

func TestStatsInsertIsConflictFree(t *testing.T) {
	repo := openStatsDB(t)
	ctx := context.Background()

	rec := DailyStats{
		Day:            "2026-03-02",
		TasksCompleted: 3,
		TotalTasks:     4,
		XPEarned:       90,
		Categories:     map[string]int{"Health": 2, "Work": 1},
	}
	require.NoError(t, repo.Insert(ctx, rec))

	// A second insert for the same day is silently ignored, never an error
	// and never an overwrite.
	dup := rec
	dup.TasksCompleted = 99
	require.NoError(t, repo.Insert(ctx, dup))

	got, err := repo.Get(ctx, "2026-03-02")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 3, got.TasksCompleted)
	assert.Equal(t, 90, got.XPEarned)
	assert.Equal(t, map[string]int{"Health": 2, "Work": 1}, got.Categories)
}

func TestStatsGetMissingReturnsNil(t *testing.T) {
	repo := openStatsDB(t)
	got, err := repo.Get(context.Background(), "1999-01-01")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStatsListRecentChronological(t *testing.T) {
	repo := openStatsDB(t)
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		require.NoError(t, repo.Insert(ctx, DailyStats{
			Day:            base.AddDate(0, 0, i).Format("2006-01-02"),
			TasksCompleted: i,
			TotalTasks:     5,
		}))
	}

	got, err := repo.ListRecent(ctx, 3)
	require.NoError(t, err)
	require.Len(t, got, 3)
	// The three newest days, oldest first.
	for i, rec := range got {
		want := base.AddDate(0, 0, 2+i).Format("2006-01-02")
		assert.Equal(t, want, rec.Day, fmt.Sprintf("index %d", i))
	}
}
