package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dreamer2trader-boop/MindForge/internal/engine"
	"github.com/dreamer2trader-boop/MindForge/internal/ui"
)

func newAddCmd() *cobra.Command {
	var desc string
	var category string
	var recur string
	var days []int
	var diff int

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a task",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("name is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			cat, err := engine.ParseCategory(category)
			if err != nil {
				return err
			}
			rec, err := engine.ParseRecurrence(recur)
			if err != nil {
				return err
			}

			t, err := svc.AddTask(ctx, engine.AddTaskInput{
				Name:         args[0],
				Description:  desc,
				Category:     cat,
				Recurrence:   rec,
				SelectedDays: days,
				Difficulty:   engine.Difficulty(diff),
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s Added #%d %s %s %s\n",
				ui.Good.Render(ui.IconTask), t.ID, t.Name, ui.Muted.Render(t.Category), ui.Stars(t.Difficulty))
			return nil
		},
	}

	cmd.Flags().StringVar(&desc, "desc", "", "Task description")
	cmd.Flags().StringVarP(&category, "category", "c", "", "Category (personal|trading|career|mindfulness|work|health|fitness)")
	cmd.Flags().StringVarP(&recur, "recur", "r", "daily", "Recurrence (daily|days|once)")
	cmd.Flags().IntSliceVar(&days, "days", nil, "Weekdays for --recur days (0=Sun..6=Sat)")
	cmd.Flags().IntVarP(&diff, "diff", "d", 1, "Difficulty (1-5, XP = difficulty×10)")

	return cmd
}
