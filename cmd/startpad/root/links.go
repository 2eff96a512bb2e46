package root

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/marcandregoldmann-prog/startpad-xp-revival/internal/engine"
	"github.com/marcandregoldmann-prog/startpad-xp-revival/internal/ui"
)

func newLinksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "links",
		Short: "Manage dashboard bookmarks",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			groups, err := svc.LinkGroups(ctx)
			if err != nil {
				return err
			}
			printLinkGroups(cmd, groups)
			return nil
		},
	}

	cmd.AddCommand(
		newLinksAddGroupCmd(),
		newLinksAddCmd(),
		newLinksRmCmd(),
		newLinksRmGroupCmd(),
		newLinksToggleCmd(),
		newLinksMoveCmd(),
	)

	return cmd
}

func printLinkGroups(cmd *cobra.Command, groups []engine.LinkGroup) {
	fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconLink, "Links"))
	for _, g := range groups {
		title := g.Emoji + " " + g.Title
		if g.Collapsed {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.H2.Render(title), ui.Muted.Render("(collapsed) "+g.ID))
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.H2.Render(title), ui.Muted.Render(g.ID))
		for _, l := range g.Links {
			fmt.Fprintf(cmd.OutOrStdout(), "  %s %s — %s %s\n", l.Emoji, l.Title, l.URL, ui.Muted.Render(l.ID))
		}
	}
}

func newLinksAddGroupCmd() *cobra.Command {
	var emoji, color string

	cmd := &cobra.Command{
		Use:   "add-group <title>",
		Short: "Add a link group",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			groups, err := svc.AddLinkGroup(ctx, args[0], emoji, color)
			if err != nil {
				return err
			}
			printLinkGroups(cmd, groups)
			return nil
		},
	}

	cmd.Flags().StringVarP(&emoji, "emoji", "e", "📁", "Group emoji")
	cmd.Flags().StringVarP(&color, "color", "c", "", "Group accent color")

	return cmd
}

func newLinksAddCmd() *cobra.Command {
	var emoji string

	cmd := &cobra.Command{
		Use:   "add <group-id> <title> <url>",
		Short: "Add a link to a group",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			groups, err := svc.AddLink(ctx, args[0], args[1], args[2], emoji)
			if err != nil {
				return err
			}
			printLinkGroups(cmd, groups)
			return nil
		},
	}

	cmd.Flags().StringVarP(&emoji, "emoji", "e", "🔗", "Link emoji")

	return cmd
}

func newLinksRmCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rm <group-id> <link-id>",
		Short: "Remove a link",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if _, err := svc.RemoveLink(ctx, args[0], args[1]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Link removed."))
			return nil
		},
	}

	return cmd
}

func newLinksRmGroupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rm-group <group-id>",
		Short: "Delete a group and its links",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if _, err := svc.DeleteLinkGroup(ctx, args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Group deleted."))
			return nil
		},
	}

	return cmd
}

func newLinksMoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move <from-index> <to-index>",
		Short: "Reorder groups (0-based positions)",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return fmt.Errorf("from and to positions are required")
			}
			for _, a := range args {
				if _, err := strconv.Atoi(a); err != nil {
					return fmt.Errorf("positions must be integers")
				}
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

			from, _ := strconv.Atoi(args[0])
			to, _ := strconv.Atoi(args[1])
			groups, err := svc.ReorderGroups(ctx, from, to)
			if err != nil {
				return err
			}
			printLinkGroups(cmd, groups)
			return nil
		},
	}

	return cmd
}

func newLinksToggleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "toggle <group-id>",
		Short: "Collapse or expand a group",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			groups, err := svc.ToggleGroupCollapse(ctx, args[0])
			if err != nil {
				return err
			}
			printLinkGroups(cmd, groups)
			return nil
		},
	}

	return cmd
}
