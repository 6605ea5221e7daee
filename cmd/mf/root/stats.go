package root

import (
	"context"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/dreamer2trader-boop/MindForge/internal/storage"
	"github.com/dreamer2trader-boop/MindForge/internal/ui"
)

func newStatsCmd() *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show daily history and completion rates",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if days < 1 {
				days = 30
			}
			records, err := svc.StatsRepo().ListRecent(ctx, days)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(records) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("No history yet. Stats appear after your first day rolls over."))
				return nil
			}

			fmt.Fprintln(out, ui.Heading(ui.IconChart, "Daily history"))
			for _, rec := range records {
				line := fmt.Sprintf("%s  %d/%d done  %s",
					ui.Key.Render(rec.Day), rec.TasksCompleted, rec.TotalTasks,
					ui.Muted.Render(fmt.Sprintf("%d XP", rec.XPEarned)))
				if rec.TotalTasks > 0 && rec.TasksCompleted == rec.TotalTasks {
					line += " " + ui.IconDone
				}
				if cats := formatCategories(rec); cats != "" {
					line += "  " + ui.Muted.Render(cats)
				}
				fmt.Fprintln(out, line)
			}

			fmt.Fprintln(out, "")
			fmt.Fprintln(out, ui.LabelValue("Weekly rate", formatRate(records, 7)))
			fmt.Fprintln(out, ui.LabelValue("Monthly rate", formatRate(records, 30)))
			return nil
		},
	}

	cmd.Flags().IntVarP(&days, "days", "n", 30, "How many recent days to show")

	return cmd
}

func formatCategories(rec storage.DailyStats) string {
	if len(rec.Categories) == 0 {
		return ""
	}
	names := make([]string, 0, len(rec.Categories))
	for name := range rec.Categories {
		names = append(names, name)
	}
	sort.Strings(names)
	s := ""
	for i, name := range names {
		if i > 0 {
			s += " "
		}
		s += fmt.Sprintf("%s:%d", name, rec.Categories[name])
	}
	return s
}

// formatRate averages completion over the last n archived days.
func formatRate(records []storage.DailyStats, n int) string {
	if len(records) > n {
		records = records[len(records)-n:]
	}
	done, total := 0, 0
	for _, rec := range records {
		done += rec.TasksCompleted
		total += rec.TotalTasks
	}
	if total == 0 {
		return "n/a"
	}
	return fmt.Sprintf("%d%% (%d/%d over %d days)", done*100/total, done, total, len(records))
}
