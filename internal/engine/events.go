package engine

// Notifier receives gamification events for the presentation layer to
// render. The engine never formats or displays these itself.
type Notifier interface {
	TaskCompleted(name string, xpGained int, leveledUp bool, newLevel int)
	TaskUncompleted(name string, xpLost int)
	AchievementUnlocked(title string)
}

// NopNotifier drops all events.
type NopNotifier struct{}

func (NopNotifier) TaskCompleted(string, int, bool, int) {}
func (NopNotifier) TaskUncompleted(string, int)          {}
func (NopNotifier) AchievementUnlocked(string)           {}
