package engine

import (
	"context"
	"fmt"
)

type CompleteResult struct {
	TaskID       int64
	TaskName     string
	XPAwarded    int
	BonusPercent int
	LevelBefore  int
	LevelAfter   int
	LevelUp      bool
	Unlocked     []AchievementDef
}

type UncompleteResult struct {
	TaskID      int64
	TaskName    string
	XPDeducted  int
	LevelBefore int
	LevelAfter  int
	LevelDown   bool
}

// CompleteTask marks the task done and applies the full completion flow:
// XP with streak bonus, profile update, completion log, achievement pass,
// events. The streak bonus is read and applied in the same step as the XP
// write, so there is no stale-streak window.
func (s *Service) CompleteTask(ctx context.Context, id int64) (*CompleteResult, error) {
	p, err := s.Profile(ctx)
	if err != nil {
		return nil, err
	}
	levelBefore := p.Level

	t, err := s.tasks.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, NotFoundError{ID: id}
	}
	if t.Completed {
		return nil, fmt.Errorf("task %d is already completed", id)
	}

	base := Difficulty(t.Difficulty).BaseXP()
	bonus := StreakBonusPercent(p.CurrentStreak)
	awarded := base * (100 + bonus) / 100

	now := s.clock.Now()
	if err := s.tasks.SetCompleted(ctx, id, &now); err != nil {
		return nil, err
	}

	p.TotalXP += awarded
	p.TotalCompleted++
	applyDerived(p)
	if err := s.profiles.Update(ctx, p); err != nil {
		return nil, err
	}
	if _, err := s.completions.Insert(ctx, id, now, awarded); err != nil {
		return nil, err
	}

	unlocked, err := s.evaluateAchievements(ctx, p.Level, p.TotalCompleted, p.CurrentStreak)
	if err != nil {
		return nil, err
	}

	levelUp := p.Level > levelBefore
	s.notifier.TaskCompleted(t.Name, awarded, levelUp, p.Level)
	for _, a := range unlocked {
		s.notifier.AchievementUnlocked(a.Title)
	}

	return &CompleteResult{
		TaskID:       id,
		TaskName:     t.Name,
		XPAwarded:    awarded,
		BonusPercent: bonus,
		LevelBefore:  levelBefore,
		LevelAfter:   p.Level,
		LevelUp:      levelUp,
		Unlocked:     unlocked,
	}, nil
}

// UncompleteTask is the exact inverse of CompleteTask for the task's last
// completion: it deducts the XP that was actually awarded (bonus included)
// rather than recomputing from the possibly-changed streak. Achievements
// are not re-evaluated and never re-lock.
func (s *Service) UncompleteTask(ctx context.Context, id int64) (*UncompleteResult, error) {
	p, err := s.Profile(ctx)
	if err != nil {
		return nil, err
	}
	levelBefore := p.Level

	t, err := s.tasks.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, NotFoundError{ID: id}
	}
	if !t.Completed {
		return nil, fmt.Errorf("task %d is not completed", id)
	}

	xpLost := Difficulty(t.Difficulty).BaseXP()
	last, err := s.completions.LastForTask(ctx, id)
	if err != nil {
		return nil, err
	}
	if last != nil {
		xpLost = last.XPAwarded
	}

	if err := s.tasks.SetCompleted(ctx, id, nil); err != nil {
		return nil, err
	}
	if last != nil {
		if err := s.completions.Delete(ctx, last.ID); err != nil {
			return nil, err
		}
	}

	p.TotalXP -= xpLost
	if p.TotalCompleted > 0 {
		p.TotalCompleted--
	}
	applyDerived(p)
	if err := s.profiles.Update(ctx, p); err != nil {
		return nil, err
	}

	s.notifier.TaskUncompleted(t.Name, xpLost)

	return &UncompleteResult{
		TaskID:      id,
		TaskName:    t.Name,
		XPDeducted:  xpLost,
		LevelBefore: levelBefore,
		LevelAfter:  p.Level,
		LevelDown:   p.Level < levelBefore,
	}, nil
}
