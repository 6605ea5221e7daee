package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dreamer2trader-boop/MindForge/internal/engine"
	"github.com/dreamer2trader-boop/MindForge/internal/ui"
)

func newListCmd() *cobra.Command {
	var status string
	var categories []string
	var recurs []string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List today's tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			f := engine.Filter{}
			switch status {
			case "all", "":
				f.Status = engine.StatusAny
			case "pending":
				f.Status = engine.StatusPending
			case "done", "completed":
				f.Status = engine.StatusCompleted
			default:
				return fmt.Errorf("unknown status %q (all|pending|done)", status)
			}
			for _, c := range categories {
				cat, err := engine.ParseCategory(c)
				if err != nil {
					return err
				}
				f.Categories = append(f.Categories, cat)
			}
			for _, r := range recurs {
				rec, err := engine.ParseRecurrence(r)
				if err != nil {
					return err
				}
				f.Recurrences = append(f.Recurrences, rec)
			}

			tasks, err := svc.TasksForToday(ctx, f)
			if err != nil {
				return err
			}

			if len(tasks) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Nothing to show. Add a task with: mf add"))
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconTask, "Today"))
			for _, t := range tasks {
				line := fmt.Sprintf("%s #%d %s %s %s", ui.Checkbox(t.Completed), t.ID, t.Name, ui.Muted.Render(t.Category), ui.Stars(t.Difficulty))
				if t.Completed && t.CompletedAt != nil {
					line += " " + ui.Muted.Render("at "+engine.FormatClockTime(*t.CompletedAt))
				}
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&status, "status", "s", "all", "Status tab (all|pending|done)")
	cmd.Flags().StringSliceVarP(&categories, "category", "c", nil, "Filter by category (repeatable)")
	cmd.Flags().StringSliceVarP(&recurs, "recur", "r", nil, "Filter by recurrence (repeatable)")

	return cmd
}
