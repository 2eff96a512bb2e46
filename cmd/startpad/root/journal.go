package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/marcandregoldmann-prog/startpad-xp-revival/internal/engine"
	"github.com/marcandregoldmann-prog/startpad-xp-revival/internal/ui"
)

func newJournalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "journal",
		Short: "Keep a quick journal",
	}
	cmd.AddCommand(newJournalAddCmd(), newJournalListCmd())
	return cmd
}

func newJournalAddCmd() *cobra.Command {
	var typ string

	cmd := &cobra.Command{
		Use:   "add <text>",
		Short: "Add a journal entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			e, err := svc.AddJournalEntry(ctx, args[0], engine.JournalType(typ))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Saved (%s)\n", ui.IconJournal, e.Type)
			return nil
		},
	}

	cmd.Flags().StringVarP(&typ, "type", "t", string(engine.JournalReflection), "Entry type (reflection|gratitude|idea)")

	return cmd
}

func newJournalListCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List journal entries, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			entries, err := svc.JournalEntries(ctx)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconJournal, "Journal"))
			if len(entries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("No entries yet."))
				return nil
			}
			for i, e := range entries {
				if limit > 0 && i >= limit {
					break
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
					ui.Muted.Render(e.Date.Format("2006-01-02 15:04")), e.Content, ui.Muted.Render("("+string(e.Type)+")"))
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "l", 10, "Max entries to show (0 = all)")

	return cmd
}
