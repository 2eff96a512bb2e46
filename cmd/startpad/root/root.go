package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/marcandregoldmann-prog/startpad-xp-revival/internal/ui"
)

const Version = "0.1.0"

var (
	flagConfig string
	flagDB     string
	flagDebug  bool
)

var rootCmd = &cobra.Command{
	Use:           "startpad",
	Short:         "Startpad — personal dashboard with XP progression",
	Long:          "Startpad is a local-first dashboard for tasks, habits, knowledge and focus work.\nEverything you finish earns XP, grows streaks and waters your garden.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file (default ~/.startpad/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&flagDB, "db", "", "Database file (default ~/.startpad.db)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Write a debug log to ~/.startpad/debug.log")

	rootCmd.AddCommand(
		newTaskCmd(),
		newHabitCmd(),
		newWissenCmd(),
		newDecideCmd(),
		newFocusCmd(),
		newGardenCmd(),
		newStatusCmd(),
		newBoardCmd(),
		newJournalCmd(),
		newChallengeCmd(),
		newPlanCmd(),
		newLinksCmd(),
		newProfileCmd(),
		newExportCmd(),
		newImportCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
