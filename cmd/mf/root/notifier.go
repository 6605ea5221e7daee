package root

import (
	"fmt"
	"io"

	"github.com/dreamer2trader-boop/MindForge/internal/ui"
)

// cliNotifier renders engine events as toast-like terminal lines.
type cliNotifier struct {
	w io.Writer
}

func (n cliNotifier) TaskCompleted(name string, xpGained int, leveledUp bool, newLevel int) {
	if leveledUp {
		fmt.Fprintf(n.w, "%s %s You're now level %d! +%d XP\n", ui.IconSparkle, ui.BadgeLevelUp, newLevel, xpGained)
		return
	}
	fmt.Fprintf(n.w, "%s +%d XP! %s completed!\n", ui.IconSparkle, xpGained, name)
}

func (n cliNotifier) TaskUncompleted(name string, xpLost int) {
	fmt.Fprintf(n.w, "%s Task unmarked. -%d XP\n", ui.IconUndo, xpLost)
}

func (n cliNotifier) AchievementUnlocked(title string) {
	fmt.Fprintf(n.w, "%s Achievement Unlocked: %s!\n", ui.IconTrophy, ui.Gold.Render(title))
}
