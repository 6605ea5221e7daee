package root

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/dreamer2trader-boop/MindForge/internal/ui"
)

func newDoneCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "done <id>",
		Short: "Complete a task",
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
			svc.SetNotifier(cliNotifier{w: cmd.OutOrStdout()})

			id, _ := strconv.ParseInt(args[0], 10, 64)
			res, err := svc.CompleteTask(ctx, id)
			if err != nil {
				return err
			}

			if res.BonusPercent > 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render(fmt.Sprintf("%s streak bonus +%d%%", ui.IconFlame, res.BonusPercent)))
			}
			return nil
		},
	}

	return cmd
}
