package root

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/dreamer2trader-boop/MindForge/internal/ui"
)

func newUndoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "undo <id>",
		Short: "Undo a task completion",
		Long: `Undo a completion by deducting exactly the XP it awarded
(including any streak bonus) and clearing the completed flag.`,
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
			res, err := svc.UncompleteTask(ctx, id)
			if err != nil {
				return err
			}

			if res.LevelDown {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Warn.Render(fmt.Sprintf("%s Level decreased: %d → %d", ui.IconWarn, res.LevelBefore, res.LevelAfter)))
			}
			return nil
		},
	}

	return cmd
}
