package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/marcandregoldmann-prog/startpad-xp-revival/internal/ui"
)

func newChallengeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "challenge",
		Short: "Daily mini challenge",
		RunE:  runChallengeShow,
	}

	cmd.AddCommand(newChallengeShowCmd(), newChallengeDoneCmd())

	return cmd
}

func runChallengeShow(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	svc, _, cleanup, err := openService(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	done, err := svc.IsChallengeDoneToday(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", ui.IconChallenge, ui.Checkbox(done), svc.DailyChallenge())
	return nil
}

func newChallengeShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show today's challenge",
		RunE:  runChallengeShow,
	}

	return cmd
}

func newChallengeDoneCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "done",
		Short: "Mark today's challenge as done",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := svc.MarkChallengeDone(ctx); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.IconDone, svc.DailyChallenge())
			return nil
		},
	}

	return cmd
}
