package root

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/marcandregoldmann-prog/startpad-xp-revival/internal/engine"
	"github.com/marcandregoldmann-prog/startpad-xp-revival/internal/ui"
)

func newFocusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "focus",
		Short: "Run focus sessions",
	}
	cmd.AddCommand(
		newFocusStartCmd(),
		newFocusStopCmd(),
		newFocusStatusCmd(),
		newFocusDoneCmd(),
		newFocusWeekCmd(),
		newFocusReflectCmd(),
	)
	return cmd
}

func newFocusStartCmd() *cobra.Command {
	var minutes int
	var taskID string

	cmd := &cobra.Command{
		Use:   "start",
		Short: "Start a focus session",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cfg, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if !cmd.Flags().Changed("minutes") {
				minutes = cfg.FocusMinutes
			}
			sess, err := svc.StartFocus(ctx, minutes, taskID)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Focus started: %d minutes. Finish with `startpad focus done`.\n",
				ui.IconFocus, sess.Duration)
			return nil
		},
	}

	cmd.Flags().IntVarP(&minutes, "minutes", "m", engine.DefaultFocusMinutes, "Session length in minutes")
	cmd.Flags().StringVarP(&taskID, "task", "t", "", "Task to attach the session to")

	return cmd
}

func newFocusStopCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stop",
		Short: "Abandon the session without reward",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if _, err := svc.StopFocus(ctx); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Focus session stopped."))
			return nil
		},
	}

	return cmd
}

func newFocusStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the running session",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			sess, err := svc.FocusSession(ctx)
			if err != nil {
				return err
			}
			if !sess.Active {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("No active focus session."))
				return nil
			}
			remaining := engine.FocusRemaining(sess, time.Now())
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s of %d min remaining\n",
				ui.IconFocus, remaining.Round(time.Second), sess.Duration)
			if remaining == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render("Time is up — collect with `startpad focus done`."))
			}
			return nil
		},
	}

	return cmd
}

func newFocusDoneCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "done",
		Short: "Finish the session: collect XP and water the garden",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			res, err := svc.CompleteFocus(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Session complete: %s\n",
				ui.IconFocus, ui.Good.Render(fmt.Sprintf("+%d XP", engine.FocusCompletionXP)))
			if res.Water.Evolved > 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Gold.Render(ui.IconGarden+" A plant evolved!"))
			} else if res.Water.Watered > 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render(ui.IconGarden+" Garden watered."))
			}
			return nil
		},
	}

	return cmd
}

func newFocusWeekCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "week [text]",
		Short: "Show or set the weekly focus",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if len(args) == 0 {
				text, err := svc.WeeklyFocus(ctx)
				if err != nil {
					return err
				}
				if text == "" {
					fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("No weekly focus set."))
					return nil
				}
				fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Wochenfokus", text))
				return nil
			}

			text := strings.Join(args, " ")
			if err := svc.SetWeeklyFocus(ctx, text); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Wochenfokus", text))
			return nil
		},
	}

	return cmd
}

func newFocusReflectCmd() *cobra.Command {
	var note string

	cmd := &cobra.Command{
		Use:   "reflect <mood>",
		Short: "Save today's reflection (mood 1-5)",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("mood is required")
			}
			n, err := strconv.Atoi(args[0])
			if err != nil || n < 1 || n > 5 {
				return fmt.Errorf("mood must be 1-5")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			mood, _ := strconv.Atoi(args[0])
			r, err := svc.SaveReflection(ctx, mood, note)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Reflection saved for %s (mood %d/5)\n", ui.IconJournal, r.Date, r.Mood)
			return nil
		},
	}

	cmd.Flags().StringVarP(&note, "note", "n", "", "Free-text note")

	return cmd
}
