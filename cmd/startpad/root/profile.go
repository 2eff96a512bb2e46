package root

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/marcandregoldmann-prog/startpad-xp-revival/internal/ui"
)

func newProfileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show or change dashboard preferences",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			name, err := svc.Username(ctx)
			if err != nil {
				return err
			}
			accent, err := svc.AccentColor(ctx)
			if err != nil {
				return err
			}
			order, err := svc.WidgetOrder(ctx)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconSpark, "Profil"))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Name", name))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Accent", accent))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Widgets", strings.Join(order, ", ")))
			return nil
		},
	}

	cmd.AddCommand(
		newProfileNameCmd(),
		newProfileAccentCmd(),
		newProfileWidgetsCmd(),
	)

	return cmd
}

func newProfileNameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "name <name>",
		Short: "Set the greeting name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := svc.SetUsername(ctx, args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Name", args[0]))
			return nil
		},
	}

	return cmd
}

func newProfileAccentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "accent <color>",
		Short: "Set the accent color (ANSI 256 code)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := svc.SetAccentColor(ctx, args[0]); err != nil {
				return err
			}
			ui.SetAccent(args[0])
			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconSpark, "Accent updated"))
			return nil
		},
	}

	return cmd
}

func newProfileWidgetsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "widgets <name>...",
		Short: "Set the dashboard widget order",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := svc.SetWidgetOrder(ctx, args); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Widgets", strings.Join(args, ", ")))
			return nil
		},
	}

	return cmd
}
