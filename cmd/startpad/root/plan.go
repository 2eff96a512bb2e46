package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/marcandregoldmann-prog/startpad-xp-revival/internal/engine"
	"github.com/marcandregoldmann-prog/startpad-xp-revival/internal/ui"
)

func newPlanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Generate a schedule for today's open tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			tasks, err := svc.TodaysTasks(ctx)
			if err != nil {
				return err
			}
			var open []engine.Task
			for _, t := range tasks {
				done, err := svc.IsTaskCompletedToday(ctx, t.ID)
				if err != nil {
					return err
				}
				if !done {
					open = append(open, t)
				}
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading("🗓️", "Tagesplan"))
			for _, b := range engine.GenerateDailyPlan(open) {
				style := ui.Muted
				switch b.Type {
				case engine.BlockFocus:
					style = ui.Key
				case engine.BlockAdmin:
					style = ui.Warn
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", ui.Muted.Render(b.Time), style.Render(b.Activity))
			}
			return nil
		},
	}

	return cmd
}
