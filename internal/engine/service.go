package engine

import (
	"context"
	"database/sql"
	"strings"

	"github.com/dreamer2trader-boop/MindForge/internal/storage"
)

// Service is the single-writer session over the profile, task store, stats
// log and achievement catalog. All mutations go through it; callers must
// not run concurrent mutations (see the watch command for the serialized
// tick loop).
type Service struct {
	db           *sql.DB
	profiles     *storage.ProfileRepo
	tasks        *storage.TaskRepo
	stats        *storage.StatsRepo
	achievements *storage.AchievementRepo
	completions  *storage.CompletionRepo
	meta         *storage.MetaRepo

	notifier Notifier
	clock    Clock
}

func NewService(db *sql.DB) *Service {
	return &Service{
		db:           db,
		profiles:     storage.NewProfileRepo(db),
		tasks:        storage.NewTaskRepo(db),
		stats:        storage.NewStatsRepo(db),
		achievements: storage.NewAchievementRepo(db),
		completions:  storage.NewCompletionRepo(db),
		meta:         storage.NewMetaRepo(db),
		notifier:     NopNotifier{},
		clock:        systemClock{},
	}
}

// SetNotifier installs the presentation-layer event sink.
func (s *Service) SetNotifier(n Notifier) {
	if n == nil {
		n = NopNotifier{}
	}
	s.notifier = n
}

func (s *Service) ProfileRepo() *storage.ProfileRepo         { return s.profiles }
func (s *Service) TaskRepo() *storage.TaskRepo               { return s.tasks }
func (s *Service) StatsRepo() *storage.StatsRepo             { return s.stats }
func (s *Service) AchievementRepo() *storage.AchievementRepo { return s.achievements }
func (s *Service) CompletionRepo() *storage.CompletionRepo   { return s.completions }

// Profile loads the user profile and heals any drift between the stored
// derived fields and the ones recomputed from total XP.
func (s *Service) Profile(ctx context.Context) (*storage.Profile, error) {
	p, err := s.profiles.GetOrCreateMain(ctx)
	if err != nil {
		return nil, err
	}
	level := LevelForTotalXP(p.TotalXP)
	currentXP, xpNeeded := LevelProgress(p.TotalXP)
	if p.Level != level || p.XP != currentXP || p.XPToNext != xpNeeded {
		p.Level = level
		p.XP = currentXP
		p.XPToNext = xpNeeded
		if err := s.profiles.Update(ctx, p); err != nil {
			return nil, err
		}
	}
	return p, nil
}

func applyDerived(p *storage.Profile) {
	if p.TotalXP < 0 {
		p.TotalXP = 0
	}
	p.Level = LevelForTotalXP(p.TotalXP)
	p.XP, p.XPToNext = LevelProgress(p.TotalXP)
}

func normalizeName(name string) (string, error) {
	n := strings.TrimSpace(name)
	if n == "" {
		return "", InvalidInputError{Reason: "task name is required"}
	}
	return n, nil
}
