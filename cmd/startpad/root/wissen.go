package root

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/marcandregoldmann-prog/startpad-xp-revival/internal/engine"
	"github.com/marcandregoldmann-prog/startpad-xp-revival/internal/ui"
)

func newWissenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wissen",
		Short: "Track media and learning projects",
	}
	cmd.AddCommand(
		newWissenAddCmd(),
		newWissenListCmd(),
		newWissenStatusCmd(),
		newWissenRateCmd(),
		newWissenRmCmd(),
	)
	return cmd
}

func newWissenAddCmd() *cobra.Command {
	var category, typ, difficulty, url, notes string
	var tags []string

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a knowledge entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			e, err := svc.CreateWissenEntry(ctx, engine.WissenEntry{
				Title:      args[0],
				Type:       typ,
				Tags:       tags,
				URL:        url,
				Notes:      notes,
				Category:   engine.WissenCategory(category),
				Difficulty: engine.WissenDifficulty(difficulty),
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s Added %q (%s, %s) — id %s\n",
				ui.IconBook, e.Title, e.Category, e.Status, ui.Muted.Render(e.ID))
			return nil
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", string(engine.WissenMedien), "Category (Medien|Projekt)")
	cmd.Flags().StringVarP(&typ, "type", "t", "", "Type ("+strings.Join(engine.WissenTypes, "|")+")")
	cmd.Flags().StringVarP(&difficulty, "difficulty", "d", "", "Projekt difficulty (Klein|Mittel|Anspruchsvoll)")
	cmd.Flags().StringVarP(&url, "url", "u", "", "Source URL")
	cmd.Flags().StringSliceVar(&tags, "tag", nil, "Tag (repeatable)")
	cmd.Flags().StringVarP(&notes, "notes", "n", "", "Notes")

	return cmd
}

func newWissenListCmd() *cobra.Command {
	var status string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List knowledge entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			entries, err := svc.WissenEntries(ctx)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconBook, "Wissen"))
			printed := 0
			for _, e := range entries {
				if status != "" && !strings.EqualFold(status, string(e.Status)) {
					continue
				}
				meta := []string{string(e.Category), string(e.Status)}
				if e.Difficulty != "" {
					meta = append(meta, string(e.Difficulty))
				}
				if e.Rating > 0 {
					meta = append(meta, strings.Repeat("★", e.Rating))
				}
				fmt.Fprintf(cmd.OutOrStdout(), "- %s %s\n", e.Title, ui.Muted.Render("("+strings.Join(meta, ", ")+") "+e.ID))
				printed++
			}
			if printed == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("No entries."))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&status, "status", "s", "", "Filter by status (Geplant|Laufend|Beendet|Abgebrochen)")

	return cmd
}

func newWissenStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status <id> <status>",
		Short: "Move an entry through its lifecycle",
		Long:  "Valid statuses: Geplant, Laufend, Beendet, Abgebrochen.\nFinishing an entry (Beendet) awards XP once; leaving Beendet takes it back.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			before, err := svc.Stats(ctx)
			if err != nil {
				return err
			}

			st := engine.WissenStatus(args[1])
			e, err := svc.UpdateWissenEntry(ctx, args[0], engine.WissenUpdate{Status: &st})
			if err != nil {
				return err
			}

			after, err := svc.Stats(ctx)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s → %s\n", ui.IconBook, e.Title, e.Status)
			switch {
			case after.TotalXP > before.TotalXP:
				fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(fmt.Sprintf("+%d XP", after.TotalXP-before.TotalXP)))
			case after.TotalXP < before.TotalXP:
				fmt.Fprintln(cmd.OutOrStdout(), ui.Warn.Render(fmt.Sprintf("-%d XP", before.TotalXP-after.TotalXP)))
			}
			return nil
		},
	}

	return cmd
}

func newWissenRateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rate <id> <stars>",
		Short: "Rate an entry (0-5)",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return fmt.Errorf("id and stars are required")
			}
			n, err := strconv.Atoi(args[1])
			if err != nil || n < 0 || n > 5 {
				return fmt.Errorf("stars must be 0-5")
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

			stars, _ := strconv.Atoi(args[1])
			e, err := svc.UpdateWissenEntry(ctx, args[0], engine.WissenUpdate{Rating: &stars})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s: %s\n", ui.IconBook, e.Title, ui.Gold.Render(strings.Repeat("★", e.Rating)))
			return nil
		},
	}

	return cmd
}

func newWissenRmCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete an entry (reverses its XP if awarded)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := svc.DeleteWissenEntry(ctx, args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Entry deleted."))
			return nil
		},
	}

	return cmd
}
