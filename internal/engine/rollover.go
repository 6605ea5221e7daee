package engine

import (
	"context"

	"github.com/dreamer2trader-boop/MindForge/internal/storage"
)

type RolloverResult struct {
	// Day is the current day key after the check.
	Day string
	// Processed is false when the check was a same-day no-op (or first run).
	Processed      bool
	ClosedDay      string
	Eligible       int
	Completed      int
	StreakAfter    int
	StreakExtended bool
	RemovedOneTime int
	SkippedDays    int
}

// CheckRollover compares today's day key in the reference zone with the
// persisted last-rollover day and, on mismatch, rolls the closing day over:
// archive its stats, update the streak, prune completed one-time tasks and
// reset completion state. The persisted day key makes the check idempotent
// under at-least-once ticks; all mutations land in one transaction.
func (s *Service) CheckRollover(ctx context.Context) (*RolloverResult, error) {
	now := s.clock.Now()
	today := DayKey(now)

	last, ok, err := s.meta.Get(ctx, storage.MetaLastRolloverDay)
	if err != nil {
		return nil, err
	}
	if !ok || last > today {
		// First run, or a day key from a clock that has since moved
		// backwards. Nothing has closed yet; just anchor today.
		if err := s.meta.Set(ctx, storage.MetaLastRolloverDay, today); err != nil {
			return nil, err
		}
		return &RolloverResult{Day: today}, nil
	}
	if last == today {
		return &RolloverResult{Day: today}, nil
	}

	closing, err := parseDayKey(last)
	if err != nil {
		if err := s.meta.Set(ctx, storage.MetaLastRolloverDay, today); err != nil {
			return nil, err
		}
		return &RolloverResult{Day: today}, nil
	}

	p, err := s.Profile(ctx)
	if err != nil {
		return nil, err
	}
	tasks, err := s.tasks.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	// Eligibility is judged on the closing day's weekday, not on "now":
	// the check usually runs after midnight.
	weekday := WeekdayOf(closing)
	eligible := FilterTasks(tasks, Filter{Weekday: &weekday})

	completed := 0
	xpEarned := 0
	categories := map[string]int{}
	for _, t := range eligible {
		if !t.Completed {
			continue
		}
		completed++
		xpEarned += Difficulty(t.Difficulty).BaseXP()
		categories[t.Category]++
	}

	// A day with nothing scheduled neither extends nor breaks the streak.
	streak, longest := p.CurrentStreak, p.LongestStreak
	extended := false
	if len(eligible) > 0 {
		if completed == len(eligible) {
			streak++
			extended = true
			if streak > longest {
				longest = streak
			}
		} else {
			streak = 0
		}
	}

	records := []storage.DailyStats{{
		Day:            last,
		TasksCompleted: completed,
		TotalTasks:     len(eligible),
		XPEarned:       xpEarned,
		Categories:     categories,
	}}

	removed := 0
	survivors := make([]storage.Task, 0, len(tasks))
	for _, t := range tasks {
		if Recurrence(t.Recurrence) == RecurrenceOneTime && t.Completed {
			removed++
			continue
		}
		survivors = append(survivors, t)
	}

	// Fully-skipped days (app not running at all): any such day with
	// eligible tasks had zero completions, so it breaks the streak and is
	// archived as an all-zero record.
	skipped := 0
	for d := closing.AddDate(0, 0, 1); DayKey(d) != today && skipped < 10_000; d = d.AddDate(0, 0, 1) {
		skipped++
		w := WeekdayOf(d)
		elig := 0
		for _, t := range survivors {
			if EligibleOn(t, w) {
				elig++
			}
		}
		if elig > 0 {
			streak = 0
			records = append(records, storage.DailyStats{Day: DayKey(d), TotalTasks: elig})
		}
	}

	if err := storage.ApplyRollover(ctx, s.db, storage.RolloverApply{
		Records:       records,
		CurrentStreak: streak,
		LongestStreak: longest,
		NewDayKey:     today,
	}); err != nil {
		return nil, err
	}

	return &RolloverResult{
		Day:            today,
		Processed:      true,
		ClosedDay:      last,
		Eligible:       len(eligible),
		Completed:      completed,
		StreakAfter:    streak,
		StreakExtended: extended && streak > 0,
		RemovedOneTime: removed,
		SkippedDays:    skipped,
	}, nil
}
