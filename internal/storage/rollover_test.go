package storage

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openFullDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := Open(context.Background(), filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestApplyRollover(t *testing.T) {
	db := openFullDB(t)
	ctx := context.Background()

	profiles := NewProfileRepo(db)
	tasks := NewTaskRepo(db)
	stats := NewStatsRepo(db)
	completions := NewCompletionRepo(db)
	meta := NewMetaRepo(db)

	p, err := profiles.GetOrCreateMain(ctx)
	require.NoError(t, err)
	p.CurrentStreak = 2
	p.LongestStreak = 6
	require.NoError(t, profiles.Update(ctx, p))

	now := time.Now()
	dailyID, err := tasks.Insert(ctx, TaskInsert{Name: "Daily", Category: "Health", Recurrence: "daily", Difficulty: 2})
	require.NoError(t, err)
	require.NoError(t, tasks.SetCompleted(ctx, dailyID, &now))

	onceID, err := tasks.Insert(ctx, TaskInsert{Name: "Once", Category: "Work", Recurrence: "one_time", Difficulty: 3})
	require.NoError(t, err)
	require.NoError(t, tasks.SetCompleted(ctx, onceID, &now))
	_, err = completions.Insert(ctx, onceID, now, 30)
	require.NoError(t, err)

	err = ApplyRollover(ctx, db, RolloverApply{
		Records: []DailyStats{{
			Day:            "2026-03-02",
			TasksCompleted: 2,
			TotalTasks:     2,
			XPEarned:       50,
		}},
		CurrentStreak: 3,
		LongestStreak: 6,
		NewDayKey:     "2026-03-03",
	})
	require.NoError(t, err)

	rec, err := stats.Get(ctx, "2026-03-02")
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, 2, rec.TasksCompleted)

	// Completed one-time task pruned along with its award history.
	got, err := tasks.Get(ctx, onceID)
	require.NoError(t, err)
	assert.Nil(t, got)
	last, err := completions.LastForTask(ctx, onceID)
	require.NoError(t, err)
	assert.Nil(t, last)

	// Recurring task survives with its completion state reset.
	got, err = tasks.Get(ctx, dailyID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.False(t, got.Completed)
	assert.Nil(t, got.CompletedAt)

	p, err = profiles.Get(ctx, MainProfileKey)
	require.NoError(t, err)
	assert.Equal(t, 3, p.CurrentStreak)
	assert.Equal(t, 6, p.LongestStreak)

	day, ok, err := meta.Get(ctx, MetaLastRolloverDay)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "2026-03-03", day)
}

func TestMetaSetOverwrites(t *testing.T) {
	db := openFullDB(t)
	ctx := context.Background()
	meta := NewMetaRepo(db)

	_, ok, err := meta.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, meta.Set(ctx, MetaLastRolloverDay, "2026-03-02"))
	require.NoError(t, meta.Set(ctx, MetaLastRolloverDay, "2026-03-03"))

	v, ok, err := meta.Get(ctx, MetaLastRolloverDay)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "2026-03-03", v)
}
