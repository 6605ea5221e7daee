package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dreamer2trader-boop/MindForge/internal/engine"
	"github.com/dreamer2trader-boop/MindForge/internal/ui"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show profile, streaks and achievements",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			p, err := svc.Profile(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconSparkle, "Profile"))
			fmt.Fprintln(out, ui.LabelValue("Level", fmt.Sprintf("%d · %s", p.Level, engine.LevelTitle(p.Level))))
			fmt.Fprintln(out, ui.XPBar(p.XP, p.XPToNext, 30))
			fmt.Fprintln(out, ui.LabelValue("Total XP", p.TotalXP))
			fmt.Fprintln(out, ui.LabelValue("Streak", fmt.Sprintf("%s %d (longest %d, bonus +%d%%)",
				ui.IconFlame, p.CurrentStreak, p.LongestStreak, engine.StreakBonusPercent(p.CurrentStreak))))
			fmt.Fprintln(out, ui.LabelValue("Tasks completed", p.TotalCompleted))

			score := engine.MentalStrengthScore(p.Level, p.CurrentStreak, p.TotalCompleted)
			fmt.Fprintln(out, ui.LabelValue("Mental strength", fmt.Sprintf("%s %d/100", ui.IconBrain, score)))
			fmt.Fprintln(out, ui.LabelValue("Joined", p.JoinedAt.In(engine.ReferenceZone).Format("2 Jan 2006")))
			fmt.Fprintln(out, "")

			achievements, err := svc.Achievements(ctx)
			if err != nil {
				return err
			}
			unlockedCount := 0
			for _, a := range achievements {
				if a.Done {
					unlockedCount++
				}
			}
			fmt.Fprintln(out, ui.H2.Render(fmt.Sprintf("%s Achievements (%d/%d)", ui.IconTrophy, unlockedCount, len(achievements))))
			for _, a := range achievements {
				if a.Done {
					fmt.Fprintf(out, "- %s %s %s\n", a.Icon, ui.Good.Render(a.Title), ui.Muted.Render(a.Description))
				} else {
					fmt.Fprintf(out, "- 🔒 %s %s\n", ui.Muted.Render(a.Title), ui.Muted.Render(a.Description))
				}
			}
			return nil
		},
	}

	return cmd
}
