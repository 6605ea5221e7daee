package root

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/dreamer2trader-boop/MindForge/internal/engine"
	"github.com/dreamer2trader-boop/MindForge/internal/ui"
)

func newEditCmd() *cobra.Command {
	var name string
	var desc string
	var category string
	var recur string
	var days []int
	var diff int

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a task's fields",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("id is required")
			}
			if _, err := strconv.ParseInt(args[0], 10, 64); err != nil {
				return errors.New("id must be an integer")
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

			id, _ := strconv.ParseInt(args[0], 10, 64)

			in := engine.EditTaskInput{}
			if cmd.Flags().Changed("name") {
				in.Name = &name
			}
			if cmd.Flags().Changed("desc") {
				in.Description = &desc
			}
			if cmd.Flags().Changed("category") {
				cat, err := engine.ParseCategory(category)
				if err != nil {
					return err
				}
				in.Category = &cat
			}
			if cmd.Flags().Changed("recur") {
				rec, err := engine.ParseRecurrence(recur)
				if err != nil {
					return err
				}
				in.Recurrence = &rec
				in.SelectedDays = days
			}
			if cmd.Flags().Changed("diff") {
				d := engine.Difficulty(diff)
				in.Difficulty = &d
			}

			t, err := svc.EditTask(ctx, id, in)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s Updated #%d %s %s %s\n",
				ui.Good.Render(ui.IconTask), t.ID, t.Name, ui.Muted.Render(t.Category), ui.Stars(t.Difficulty))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "New name")
	cmd.Flags().StringVar(&desc, "desc", "", "New description")
	cmd.Flags().StringVarP(&category, "category", "c", "", "New category")
	cmd.Flags().StringVarP(&recur, "recur", "r", "", "New recurrence (daily|days|once)")
	cmd.Flags().IntSliceVar(&days, "days", nil, "Weekdays for --recur days (0=Sun..6=Sat)")
	cmd.Flags().IntVarP(&diff, "diff", "d", 0, "New difficulty (1-5)")

	return cmd
}
