package root

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/marcandregoldmann-prog/startpad-xp-revival/internal/engine"
	"github.com/marcandregoldmann-prog/startpad-xp-revival/internal/ui"
)

func newGardenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "garden",
		Short: "Show the focus garden",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			garden, err := svc.Garden(ctx)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconGarden, "Garten"))
			if len(garden) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Empty. Finish a focus session or `startpad garden plant`."))
				return nil
			}
			for _, p := range garden {
				glyph := engine.PlantArt[p.Type][p.Stage]
				line := fmt.Sprintf("%s %s — %s", glyph, p.Type, p.Stage)
				if p.Stage != engine.StageBlooming {
					line += ui.Muted.Render(fmt.Sprintf(" (%d min watered)", p.GrowthProgress))
				}
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render(fmt.Sprintf("%d/%d plants", len(garden), engine.MaxGardenSize)))
			return nil
		},
	}

	cmd.AddCommand(newGardenPlantCmd())

	return cmd
}

func newGardenPlantCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plant [species]",
		Short: "Plant a seed (" + strings.Join(engine.PlantSpecies, "|") + "; random when omitted)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			species := ""
			if len(args) == 1 {
				species = args[0]
			}
			p, err := svc.PlantSeed(ctx, species)
			if err != nil {
				return err
			}
			if p == nil {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Warn.Render("The garden is full."))
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Planted a %s %s\n", ui.IconGarden, p.Type, engine.PlantArt[p.Type][p.Stage])
			return nil
		},
	}

	return cmd
}
