package root

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/marcandregoldmann-prog/startpad-xp-revival/internal/engine"
	"github.com/marcandregoldmann-prog/startpad-xp-revival/internal/ui"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show XP, level and streaks",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			// Reading stats counts as "opening the app": a broken streak
			// is zeroed here, not silently kept alive.
			stats, err := svc.CheckStreakReset(ctx)
			if err != nil {
				return err
			}
			todaysXP, err := svc.TodaysXP(ctx)
			if err != nil {
				return err
			}
			name, err := svc.Username(ctx)
			if err != nil {
				return err
			}

			title := "Startpad"
			if name != "" {
				title = "Hallo, " + name
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconSpark, title))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Level", stats.Level))
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
				ui.Key.Render("XP:"),
				ui.XPBar(engine.XPForCurrentLevel(stats.TotalXP), engine.XPToNextLevel(), 20),
				ui.Muted.Render(fmt.Sprintf("%d/%d (total %d)", engine.XPForCurrentLevel(stats.TotalXP), engine.XPToNextLevel(), stats.TotalXP)))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Streak", fmt.Sprintf("%s %d (best %d)", ui.IconStreak, stats.CurrentStreak, stats.LongestStreak)))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Completed tasks", stats.TotalCompletedTasks))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("XP today", todaysXP))

			if time.Now().Hour() >= 18 {
				done, err := svc.HasReflectionToday(ctx)
				if err != nil {
					return err
				}
				if !done {
					fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("✍️ No reflection yet — `startpad focus reflect <mood>`."))
				}
			}

			for _, hint := range svc.ContextHints() {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render(hint))
			}
			return nil
		},
	}

	return cmd
}
