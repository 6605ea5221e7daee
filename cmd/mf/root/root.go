package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dreamer2trader-boop/MindForge/internal/ui"
)

const Version = "1.0.0"

var rootCmd = &cobra.Command{
	Use:           "mf",
	Short:         "MindForge: gamified daily task & habit tracker",
	Long:          "MindForge is a local-first task/habit tracker with XP, levels, streaks and achievements.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.AddCommand(
		newAddCmd(),
		newEditCmd(),
		newDoneCmd(),
		newUndoCmd(),
		newRmCmd(),
		newListCmd(),
		newStatusCmd(),
		newStatsCmd(),
		newWatchCmd(),
		newBoardCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
