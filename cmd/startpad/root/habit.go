package root

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/marcandregoldmann-prog/startpad-xp-revival/internal/engine"
	"github.com/marcandregoldmann-prog/startpad-xp-revival/internal/ui"
)

func newHabitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "habit",
		Short: "Manage daily habits",
	}
	cmd.AddCommand(
		newHabitAddCmd(),
		newHabitListCmd(),
		newHabitToggleCmd(),
		newHabitRmCmd(),
	)
	return cmd
}

func newHabitAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a habit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			h, err := svc.AddHabit(ctx, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Added habit %q (+%d XP per day) — id %s\n",
				ui.IconHabit, h.Title, h.XP, ui.Muted.Render(h.ID))
			return nil
		},
	}

	return cmd
}

func newHabitListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List habits with streaks",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			habits, err := svc.Habits(ctx)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconHabit, "Habits"))
			if len(habits) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("No habits yet. Try: startpad habit add \"…\""))
				return nil
			}
			today := time.Now().Format("2006-01-02")
			for _, h := range habits {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s %d %s\n",
					ui.Checkbox(engine.IsHabitDoneToday(h, today)), h.Title,
					ui.IconStreak, h.Streak, ui.Muted.Render(h.ID))
			}
			return nil
		},
	}

	return cmd
}

func newHabitToggleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "toggle <id>",
		Short: "Mark a habit done for today, or undo today's mark",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			res, err := svc.ToggleHabit(ctx, args[0])
			if err != nil {
				return err
			}
			if res.Undone {
				fmt.Fprintf(cmd.OutOrStdout(), "%s Undid %q: %s, streak %d\n",
					ui.IconHabit, res.Habit.Title, ui.Warn.Render(fmt.Sprintf("-%d XP", res.Habit.XP)), res.Habit.Streak)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s: %s · %s %d\n",
				ui.IconDone, res.Habit.Title, ui.Good.Render(fmt.Sprintf("+%d XP", res.Habit.XP)),
				ui.IconStreak, res.Habit.Streak)
			return nil
		},
	}

	return cmd
}

func newHabitRmCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a habit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := svc.DeleteHabit(ctx, args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Habit deleted."))
			return nil
		},
	}

	return cmd
}
