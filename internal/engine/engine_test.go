package engine

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/dreamer2trader-boop/MindForge/internal/storage"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

// mondayNoon is 2026-03-02 12:00 in the reference zone, a Monday.
var mondayNoon = time.Date(2026, 3, 2, 12, 0, 0, 0, ReferenceZone)

func newTestService(t *testing.T) (*Service, *fakeClock) {
	t.Helper()
	ctx := context.Background()
	db, err := storage.Open(ctx, filepath.Join(t.TempDir(), "mindforge-test.db"))
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	svc := NewService(db)
	clk := &fakeClock{now: mondayNoon}
	svc.clock = clk
	return svc, clk
}

func addTask(t *testing.T, svc *Service, in AddTaskInput) *storage.Task {
	t.Helper()
	task, err := svc.AddTask(context.Background(), in)
	if err != nil {
		t.Fatalf("add task: %v", err)
	}
	return task
}

func setStreak(t *testing.T, svc *Service, streak int) {
	t.Helper()
	ctx := context.Background()
	p, err := svc.Profile(ctx)
	if err != nil {
		t.Fatalf("profile: %v", err)
	}
	p.CurrentStreak = streak
	if p.LongestStreak < streak {
		p.LongestStreak = streak
	}
	if err := svc.profiles.Update(ctx, p); err != nil {
		t.Fatalf("update profile: %v", err)
	}
}

func TestAddTaskValidation(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	if _, err := svc.AddTask(ctx, AddTaskInput{Name: "   ", Difficulty: 3}); err == nil {
		t.Fatal("blank name accepted")
	}
	if _, err := svc.AddTask(ctx, AddTaskInput{Name: "x", Difficulty: 6}); err == nil {
		t.Fatal("difficulty 6 accepted")
	}
	if _, err := svc.AddTask(ctx, AddTaskInput{Name: "x", Difficulty: 2, Recurrence: RecurrenceSelectedDays}); err == nil {
		t.Fatal("empty selected-days set accepted")
	}
	if _, err := svc.AddTask(ctx, AddTaskInput{Name: "x", Difficulty: 2, Recurrence: RecurrenceSelectedDays, SelectedDays: []int{7}}); err == nil {
		t.Fatal("weekday 7 accepted")
	}

	task := addTask(t, svc, AddTaskInput{Name: "  Meditate  ", Difficulty: 2, Category: "Nonsense"})
	if task.Name != "Meditate" {
		t.Fatalf("name = %q, want trimmed", task.Name)
	}
	if task.Category != string(DefaultCategory) {
		t.Fatalf("category = %q, want default", task.Category)
	}
	if task.Recurrence != string(RecurrenceDaily) {
		t.Fatalf("recurrence = %q, want daily default", task.Recurrence)
	}

	days := addTask(t, svc, AddTaskInput{
		Name: "Gym", Difficulty: 4,
		Recurrence: RecurrenceSelectedDays, SelectedDays: []int{5, 1, 3, 1},
	})
	if len(days.SelectedDays) != 3 || days.SelectedDays[0] != 1 || days.SelectedDays[1] != 3 || days.SelectedDays[2] != 5 {
		t.Fatalf("selected days = %v, want deduped sorted [1 3 5]", days.SelectedDays)
	}
}

func TestEditTask(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	task := addTask(t, svc, AddTaskInput{Name: "Read", Difficulty: 2, Category: CategoryPersonal})

	name := "Read 20 pages"
	diff := Difficulty(3)
	got, err := svc.EditTask(ctx, task.ID, EditTaskInput{Name: &name, Difficulty: &diff})
	if err != nil {
		t.Fatalf("edit: %v", err)
	}
	if got.Name != name || got.Difficulty != 3 {
		t.Fatalf("edit result = %q/%d, want %q/3", got.Name, got.Difficulty, name)
	}
	if got.Category != string(CategoryPersonal) {
		t.Fatalf("untouched category changed to %q", got.Category)
	}

	rec := RecurrenceSelectedDays
	if _, err := svc.EditTask(ctx, task.ID, EditTaskInput{Recurrence: &rec}); err == nil {
		t.Fatal("recurrence change without weekdays accepted")
	}
	got, err = svc.EditTask(ctx, task.ID, EditTaskInput{Recurrence: &rec, SelectedDays: []int{0, 6}})
	if err != nil {
		t.Fatalf("edit recurrence: %v", err)
	}
	if got.Recurrence != string(RecurrenceSelectedDays) || len(got.SelectedDays) != 2 {
		t.Fatalf("recurrence edit = %q %v", got.Recurrence, got.SelectedDays)
	}

	if _, err := svc.EditTask(ctx, 9999, EditTaskInput{Name: &name}); !IsNotFound(err) {
		t.Fatalf("edit missing task err = %v, want not-found", err)
	}
}

func TestRemoveTask(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	task := addTask(t, svc, AddTaskInput{Name: "Old habit", Difficulty: 1})
	removed, err := svc.RemoveTask(ctx, task.ID)
	if err != nil {
		t.Fatalf("remove: %v", err)
	}
	if removed.ID != task.ID {
		t.Fatalf("removed id = %d, want %d", removed.ID, task.ID)
	}
	if _, err := svc.RemoveTask(ctx, task.ID); !IsNotFound(err) {
		t.Fatalf("second remove err = %v, want not-found", err)
	}
}

func TestCompleteAwardsStreakBonus(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	setStreak(t, svc, 7)
	task := addTask(t, svc, AddTaskInput{Name: "Journal", Difficulty: 3})

	res, err := svc.CompleteTask(ctx, task.ID)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	// 30 base, +15% streak bonus, integer math: 30*115/100 = 34.
	if res.XPAwarded != 34 {
		t.Fatalf("awarded = %d, want 34", res.XPAwarded)
	}
	if res.BonusPercent != 15 {
		t.Fatalf("bonus = %d, want 15", res.BonusPercent)
	}

	p, err := svc.Profile(ctx)
	if err != nil {
		t.Fatalf("profile: %v", err)
	}
	if p.TotalXP != 34 || p.TotalCompleted != 1 {
		t.Fatalf("profile after complete = %d XP / %d completed", p.TotalXP, p.TotalCompleted)
	}

	got, err := svc.tasks.Get(ctx, task.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !got.Completed || got.CompletedAt == nil {
		t.Fatal("task not stamped completed")
	}

	if _, err := svc.CompleteTask(ctx, task.ID); err == nil {
		t.Fatal("double completion accepted")
	}
	if _, err := svc.CompleteTask(ctx, 9999); !IsNotFound(err) {
		t.Fatalf("complete missing task err = %v, want not-found", err)
	}
}

func TestUncompleteRestoresExactXP(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	setStreak(t, svc, 14)
	task := addTask(t, svc, AddTaskInput{Name: "Deep work", Difficulty: 5})

	res, err := svc.CompleteTask(ctx, task.ID)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	// 50 base +30% = 65.
	if res.XPAwarded != 65 {
		t.Fatalf("awarded = %d, want 65", res.XPAwarded)
	}

	// Streak changes between complete and undo must not skew the refund.
	setStreak(t, svc, 0)

	undo, err := svc.UncompleteTask(ctx, task.ID)
	if err != nil {
		t.Fatalf("uncomplete: %v", err)
	}
	if undo.XPDeducted != 65 {
		t.Fatalf("deducted = %d, want the 65 originally awarded", undo.XPDeducted)
	}

	p, err := svc.Profile(ctx)
	if err != nil {
		t.Fatalf("profile: %v", err)
	}
	if p.TotalXP != 0 || p.TotalCompleted != 0 || p.Level != 1 {
		t.Fatalf("profile after undo = %d XP / %d completed / level %d, want zeros", p.TotalXP, p.TotalCompleted, p.Level)
	}

	got, err := svc.tasks.Get(ctx, task.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Completed || got.CompletedAt != nil {
		t.Fatal("task still completed after undo")
	}

	if _, err := svc.UncompleteTask(ctx, task.ID); err == nil {
		t.Fatal("undo of a pending task accepted")
	}
}

func TestLevelUpAndDown(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	// Ten difficulty-5 completions with no streak: 10 * 50 = 500 XP,
	// crossing the 100, 250 and 475 cumulative thresholds up to level 4.
	var ids []int64
	for i := 0; i < 10; i++ {
		task := addTask(t, svc, AddTaskInput{Name: "Sprint", Difficulty: 5})
		ids = append(ids, task.ID)
	}

	leveledUp := false
	for _, id := range ids {
		res, err := svc.CompleteTask(ctx, id)
		if err != nil {
			t.Fatalf("complete: %v", err)
		}
		if res.LevelUp {
			leveledUp = true
		}
	}
	if !leveledUp {
		t.Fatal("no completion reported a level up")
	}

	p, _ := svc.Profile(ctx)
	if p.Level != 4 || p.XP != 25 {
		t.Fatalf("profile = level %d xp %d, want level 4 xp 25", p.Level, p.XP)
	}

	// Dropping back to 450 total falls below the 475 threshold for level 4.
	undo, err := svc.UncompleteTask(ctx, ids[len(ids)-1])
	if err != nil {
		t.Fatalf("uncomplete: %v", err)
	}
	if !undo.LevelDown || undo.LevelAfter != 3 {
		t.Fatalf("undo = levelDown %v after %d, want level down to 3", undo.LevelDown, undo.LevelAfter)
	}
}

func TestAchievementsUnlockAndPersist(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	task := addTask(t, svc, AddTaskInput{Name: "Start", Difficulty: 1})
	res, err := svc.CompleteTask(ctx, task.ID)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if !hasAchievement(res.Unlocked, "first-task") {
		t.Fatalf("first completion unlocked %v, want first-task", achievementIDs(res.Unlocked))
	}

	// Unlocks never revert, even when the metric drops back below threshold.
	if _, err := svc.UncompleteTask(ctx, task.ID); err != nil {
		t.Fatalf("uncomplete: %v", err)
	}
	statuses, err := svc.Achievements(ctx)
	if err != nil {
		t.Fatalf("achievements: %v", err)
	}
	if !statusDone(statuses, "first-task") {
		t.Fatal("first-task re-locked after undo")
	}

	// Re-completing must not report a second unlock.
	res, err = svc.CompleteTask(ctx, task.ID)
	if err != nil {
		t.Fatalf("recomplete: %v", err)
	}
	if hasAchievement(res.Unlocked, "first-task") {
		t.Fatal("first-task unlocked twice")
	}
}

func TestTaskCrusherUnlocksAtFifty(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	p, err := svc.Profile(ctx)
	if err != nil {
		t.Fatalf("profile: %v", err)
	}
	p.TotalCompleted = 49
	if err := svc.profiles.Update(ctx, p); err != nil {
		t.Fatalf("update profile: %v", err)
	}

	task := addTask(t, svc, AddTaskInput{Name: "Fiftieth", Difficulty: 1})
	res, err := svc.CompleteTask(ctx, task.ID)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if !hasAchievement(res.Unlocked, "tasks-50") {
		t.Fatalf("50th completion unlocked %v, want tasks-50", achievementIDs(res.Unlocked))
	}
}

func TestStreakAchievementsViaRollover(t *testing.T) {
	svc, clk := newTestService(t)
	ctx := context.Background()

	setStreak(t, svc, 2)
	task := addTask(t, svc, AddTaskInput{Name: "Daily habit", Difficulty: 1})

	if _, err := svc.CheckRollover(ctx); err != nil {
		t.Fatalf("anchor: %v", err)
	}
	if _, err := svc.CompleteTask(ctx, task.ID); err != nil {
		t.Fatalf("complete: %v", err)
	}

	clk.now = clk.now.AddDate(0, 0, 1)
	res, err := svc.CheckRollover(ctx)
	if err != nil {
		t.Fatalf("rollover: %v", err)
	}
	if res.StreakAfter != 3 {
		t.Fatalf("streak = %d, want 3", res.StreakAfter)
	}

	// The streak achievement lands on the next completion pass.
	if _, err := svc.CompleteTask(ctx, task.ID); err != nil {
		t.Fatalf("complete after rollover: %v", err)
	}
	statuses, err := svc.Achievements(ctx)
	if err != nil {
		t.Fatalf("achievements: %v", err)
	}
	if !statusDone(statuses, "streak-3") {
		t.Fatal("streak-3 not unlocked at streak 3")
	}
}

func hasAchievement(defs []AchievementDef, id string) bool {
	for _, d := range defs {
		if d.ID == id {
			return true
		}
	}
	return false
}

func achievementIDs(defs []AchievementDef) []string {
	out := make([]string, 0, len(defs))
	for _, d := range defs {
		out = append(out, d.ID)
	}
	return out
}

func statusDone(statuses []AchievementStatus, id string) bool {
	for _, s := range statuses {
		if s.ID == id {
			return s.Done
		}
	}
	return false
}
